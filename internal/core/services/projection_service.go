package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/paydesk/compchange/internal/apperrors"
	"github.com/paydesk/compchange/internal/core/domain"
	portsrepo "github.com/paydesk/compchange/internal/core/ports/repositories"
	portssvc "github.com/paydesk/compchange/internal/core/ports/services"
	"github.com/paydesk/compchange/internal/middleware"
)

// messageService derives department inbox and outbox views from the shared
// change request pool. Nothing here is persisted: every call projects the
// current pool, so a decision made by one department is immediately visible in
// every other department's view.
type messageService struct {
	changeRepo   portsrepo.ChangeReader
	employeeRepo portsrepo.EmployeeReader
	catalogRepo  portsrepo.CatalogReader
}

// NewMessageService creates a new MessageService.
func NewMessageService(
	changeRepo portsrepo.ChangeReader,
	employeeRepo portsrepo.EmployeeReader,
	catalogRepo portsrepo.CatalogReader,
) portssvc.MessageSvcFacade {
	return &messageService{
		changeRepo:   changeRepo,
		employeeRepo: employeeRepo,
		catalogRepo:  catalogRepo,
	}
}

// Ensure messageService implements the portssvc.MessageSvcFacade interface
var _ portssvc.MessageSvcFacade = (*messageService)(nil)

// GetInbox returns the changes currently awaiting the department's attention.
// Implements portssvc.MessageSvcFacade
func (s *messageService) GetInbox(ctx context.Context, department domain.Department) ([]domain.DepartmentMessage, error) {
	return s.project(ctx, department, s.inInbox)
}

// GetOutbox returns the changes the department has originated or decided.
// Implements portssvc.MessageSvcFacade
func (s *messageService) GetOutbox(ctx context.Context, department domain.Department) ([]domain.DepartmentMessage, error) {
	return s.project(ctx, department, s.inOutbox)
}

func (s *messageService) project(ctx context.Context, department domain.Department, include func(*domain.ChangeRequest, domain.Department) bool) ([]domain.DepartmentMessage, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	switch department {
	case domain.DepartmentHR, domain.DepartmentAccounting, domain.DepartmentAudit:
	default:
		return nil, fmt.Errorf("%w: unknown department %s", apperrors.ErrValidation, department)
	}

	changes, err := s.changeRepo.ListAllChanges(ctx)
	if err != nil {
		logger.Error("Failed to list change requests for projection", "department", department, "error", err)
		return nil, err
	}

	typeNames, err := s.changeTypeNames(ctx)
	if err != nil {
		logger.Error("Failed to load change type catalog for projection", "error", err)
		return nil, err
	}

	employeeNames := make(map[string]string)
	messages := make([]domain.DepartmentMessage, 0, len(changes))
	for i := range changes {
		c := &changes[i]
		if !include(c, department) {
			continue
		}
		name, ok := employeeNames[c.EmployeeID]
		if !ok {
			name, err = s.employeeName(ctx, c.EmployeeID)
			if err != nil {
				return nil, err
			}
			employeeNames[c.EmployeeID] = name
		}
		messages = append(messages, s.toMessage(c, department, name, typeNames[c.ChangeTypeID]))
	}

	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].SentAt.After(messages[j].SentAt)
	})
	return messages, nil
}

// inInbox reports whether a change belongs in the department's inbox.
// Accounting and Audit see exactly what awaits their decision; HR sees every
// request on which any decision has been rendered. A rejected request never
// reaches the Audit inbox because Audit's turn requires accounting approval.
func (s *messageService) inInbox(c *domain.ChangeRequest, department domain.Department) bool {
	switch department {
	case domain.DepartmentHR:
		return c.AccountingApproved != nil || c.AuditApproved != nil
	default:
		return c.AwaitsDecisionBy(department)
	}
}

// inOutbox reports whether a change belongs in the department's outbox: HR
// originated every request, the approvers appear once they have decided.
func (s *messageService) inOutbox(c *domain.ChangeRequest, department domain.Department) bool {
	switch department {
	case domain.DepartmentHR:
		return true
	case domain.DepartmentAccounting:
		return c.AccountingApproved != nil
	case domain.DepartmentAudit:
		return c.AuditApproved != nil
	default:
		return false
	}
}

func (s *messageService) toMessage(c *domain.ChangeRequest, viewer domain.Department, employeeName, typeName string) domain.DepartmentMessage {
	sender, recipient := s.route(c, viewer)
	return domain.DepartmentMessage{
		ChangeID:     c.ChangeID,
		EmployeeID:   c.EmployeeID,
		EmployeeName: employeeName,
		Direction:    c.Direction,
		Sender:       sender,
		Recipient:    recipient,
		Subject:      s.subject(c, employeeName, typeName),
		Body:         s.body(c),
		Status:       c.DisplayStatus(),
		SentAt:       c.CreatedAt,
	}
}

// route labels who a message is from and to, relative to the viewing
// department and the change's position in the approval chain.
func (s *messageService) route(c *domain.ChangeRequest, viewer domain.Department) (sender, recipient domain.Department) {
	switch viewer {
	case domain.DepartmentAccounting:
		return domain.DepartmentHR, domain.DepartmentAccounting
	case domain.DepartmentAudit:
		return domain.DepartmentAccounting, domain.DepartmentAudit
	default:
		// HR's inbox holds decision notices; its outbox holds submissions.
		if c.AuditApproved != nil {
			return domain.DepartmentAudit, domain.DepartmentHR
		}
		if c.AccountingApproved != nil {
			return domain.DepartmentAccounting, domain.DepartmentHR
		}
		return domain.DepartmentHR, domain.DepartmentAccounting
	}
}

func (s *messageService) subject(c *domain.ChangeRequest, employeeName, typeName string) string {
	if typeName == "" {
		typeName = string(c.Direction)
	}
	return fmt.Sprintf("%s request for %s", typeName, employeeName)
}

func (s *messageService) body(c *domain.ChangeRequest) string {
	var parts []string
	if c.Amount != nil {
		parts = append(parts, fmt.Sprintf("Amount: %s", c.Amount.StringFixed(0)))
	}
	if c.Percentage != nil {
		parts = append(parts, fmt.Sprintf("Percentage: %s%%", c.Percentage.String()))
	}
	if c.LetterNumber != "" {
		parts = append(parts, fmt.Sprintf("Letter: %s", c.LetterNumber))
	}
	if c.Notes != "" {
		parts = append(parts, c.Notes)
	}
	return strings.Join(parts, ". ")
}

func (s *messageService) changeTypeNames(ctx context.Context) (map[string]string, error) {
	types, err := s.catalogRepo.ListChangeTypes(ctx, nil)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(types))
	for i := range types {
		names[types[i].ChangeTypeID] = types[i].Name
	}
	return names, nil
}

func (s *messageService) employeeName(ctx context.Context, employeeID string) (string, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// A change may outlive its employee record; render it anyway.
			return employeeID, nil
		}
		return "", err
	}
	return employee.FullName, nil
}
