package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/paydesk/compchange/internal/apperrors"
	"github.com/paydesk/compchange/internal/core/domain"
	portsrepo "github.com/paydesk/compchange/internal/core/ports/repositories"
	portssvc "github.com/paydesk/compchange/internal/core/ports/services"
	"github.com/paydesk/compchange/internal/dto"
	"github.com/paydesk/compchange/internal/middleware"
	"github.com/paydesk/compchange/internal/utils/payroll"
)

// changeService orchestrates the lifecycle of compensation change requests:
// submission with pricing, the two-stage decision flow, stopping and deletion.
type changeService struct {
	changeRepo   portsrepo.ChangeRepositoryFacade
	employeeRepo portsrepo.EmployeeRepositoryFacade
	catalogRepo  portsrepo.CatalogRepositoryFacade
	pricingSvc   portssvc.PricingSvcFacade
}

// NewChangeService creates a new ChangeService.
func NewChangeService(
	changeRepo portsrepo.ChangeRepositoryFacade,
	employeeRepo portsrepo.EmployeeRepositoryFacade,
	catalogRepo portsrepo.CatalogRepositoryFacade,
	pricingSvc portssvc.PricingSvcFacade,
) portssvc.ChangeSvcFacade {
	return &changeService{
		changeRepo:   changeRepo,
		employeeRepo: employeeRepo,
		catalogRepo:  catalogRepo,
		pricingSvc:   pricingSvc,
	}
}

// Ensure changeService implements the portssvc.ChangeSvcFacade interface
var _ portssvc.ChangeSvcFacade = (*changeService)(nil)

// GetChangeByID retrieves a specific change request by its ID.
// Implements portssvc.ChangeReaderSvc
func (s *changeService) GetChangeByID(ctx context.Context, changeID string) (*domain.ChangeRequest, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	change, err := s.changeRepo.FindChangeByID(ctx, changeID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to get change request", "change_id", changeID, "error", err)
		}
		return nil, err
	}
	return change, nil
}

// ListChangesByEmployee retrieves an employee's change requests.
// Implements portssvc.ChangeReaderSvc
func (s *changeService) ListChangesByEmployee(ctx context.Context, employeeID string, activeOnly bool) ([]domain.ChangeRequest, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	if _, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID); err != nil {
		return nil, err
	}
	changes, err := s.changeRepo.ListChangesByEmployee(ctx, employeeID, activeOnly)
	if err != nil {
		logger.Error("Failed to list changes for employee", "employee_id", employeeID, "error", err)
		return nil, err
	}
	return changes, nil
}

// ListChanges retrieves a paginated list of change requests.
// Implements portssvc.ChangeReaderSvc
func (s *changeService) ListChanges(ctx context.Context, params dto.ListChangesParams) (*dto.ListChangesResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	changes, nextToken, err := s.changeRepo.ListChanges(ctx, limit, params.NextToken)
	if err != nil {
		logger.Error("Failed to list change requests", "error", err)
		return nil, err
	}
	return &dto.ListChangesResponse{
		Changes:   dto.ToChangeResponses(changes),
		NextToken: nextToken,
	}, nil
}

// SubmitChange prices and validates a proposed change and persists it pending.
// Implements portssvc.ChangeWriterSvc
func (s *changeService) SubmitChange(ctx context.Context, req dto.SubmitChangeRequest, requesterUserID string) (*domain.ChangeRequest, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	employee, err := s.employeeRepo.FindEmployeeByID(ctx, req.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to find employee %s: %w", req.EmployeeID, err)
	}
	if !employee.IsActive {
		return nil, fmt.Errorf("%w: employee %s is inactive", apperrors.ErrValidation, employee.EmployeeID)
	}

	changeType, err := s.catalogRepo.FindChangeTypeByID(ctx, req.ChangeTypeID)
	if err != nil {
		return nil, fmt.Errorf("failed to find change type %s: %w", req.ChangeTypeID, err)
	}
	if !changeType.IsActive {
		return nil, fmt.Errorf("%w: change type %s is inactive", apperrors.ErrValidation, changeType.ChangeTypeID)
	}

	var option *domain.ChangeOption
	if req.ChangeOptionID != nil {
		option, err = s.catalogRepo.FindChangeOptionByID(ctx, *req.ChangeOptionID)
		if err != nil {
			return nil, fmt.Errorf("failed to find change option %s: %w", *req.ChangeOptionID, err)
		}
		if !option.IsActive {
			return nil, fmt.Errorf("%w: change option %s is inactive", apperrors.ErrValidation, option.ChangeOptionID)
		}
	}

	// Pricing and the duplicate check both operate over the employee's
	// currently active changes. The repository repeats the duplicate check
	// under a row lock at insert time; this early check just fails fast.
	activeChanges, err := s.changeRepo.ListChangesByEmployee(ctx, employee.EmployeeID, true)
	if err != nil {
		logger.Error("Failed to list active changes for pricing", "employee_id", employee.EmployeeID, "error", err)
		return nil, err
	}
	if payroll.HasActiveOfType(activeChanges, changeType.ChangeTypeID) {
		return nil, fmt.Errorf("%w: employee %s already has an active change of type %s", apperrors.ErrDuplicate, employee.EmployeeID, changeType.ChangeTypeID)
	}

	entitlements, deductions := splitByDirection(activeChanges)

	var price domain.ResolvedPrice
	if req.Percentage != nil {
		price, err = s.pricingSvc.ResolveManualPercentage(*req.Percentage, *changeType, *employee, entitlements, deductions)
	} else {
		price, err = s.pricingSvc.ResolveAmount(option, *changeType, *employee, entitlements, deductions)
	}
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	change := domain.ChangeRequest{
		ChangeID:       uuid.NewString(),
		EmployeeID:     employee.EmployeeID,
		Direction:      changeType.Direction,
		ChangeTypeID:   changeType.ChangeTypeID,
		ChangeOptionID: req.ChangeOptionID,
		Amount:         price.Amount,
		Percentage:     price.Percentage,
		LetterNumber:   req.LetterNumber,
		LetterDate:     req.LetterDate,
		Notes:          req.Notes,

		// Both stages are always required; the tri-state approval flags
		// track progress through them.
		RequiresAccountingApproval: true,
		RequiresAuditApproval:      true,

		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     requesterUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: requesterUserID,
		},
	}

	if err := s.changeRepo.CreateChange(ctx, change); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, err
		}
		logger.Error("Failed to create change request", "employee_id", employee.EmployeeID, "change_type_id", changeType.ChangeTypeID, "error", err)
		return nil, fmt.Errorf("failed to create change request: %w", err)
	}

	logger.Info("Change request submitted",
		"change_id", change.ChangeID,
		"employee_id", change.EmployeeID,
		"change_type_id", change.ChangeTypeID,
		"direction", change.Direction,
		"requester_user_id", requesterUserID)
	return &change, nil
}

// Decide records one department's approval or rejection.
// Implements portssvc.ChangeWriterSvc
func (s *changeService) Decide(ctx context.Context, changeID string, department domain.Department, approve bool, deciderUserID string) (*domain.ChangeRequest, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if department != domain.DepartmentAccounting && department != domain.DepartmentAudit {
		return nil, fmt.Errorf("%w: department %s cannot decide change requests", apperrors.ErrForbidden, department)
	}

	change, err := s.changeRepo.FindChangeByID(ctx, changeID)
	if err != nil {
		return nil, err
	}
	if !change.AwaitsDecisionBy(department) {
		return nil, fmt.Errorf("%w: change request %s is not awaiting a %s decision (state %s)", apperrors.ErrConflict, changeID, department, change.State())
	}

	now := time.Now().UTC()
	if err := s.changeRepo.ApplyDecision(ctx, changeID, department, approve, deciderUserID, now); err != nil {
		if !errors.Is(err, apperrors.ErrConflict) && !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to apply decision", "change_id", changeID, "department", department, "error", err)
		}
		return nil, err
	}

	updated, err := s.changeRepo.FindChangeByID(ctx, changeID)
	if err != nil {
		return nil, err
	}

	logger.Info("Decision recorded",
		"change_id", changeID,
		"department", department,
		"approve", approve,
		"state", updated.State(),
		"decider_user_id", deciderUserID)
	return updated, nil
}

// StopChange marks a change stopped, leaving its approval history intact.
// Implements portssvc.ChangeWriterSvc
func (s *changeService) StopChange(ctx context.Context, changeID string, req dto.StopChangeRequest, userID string) (*domain.ChangeRequest, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	change, err := s.changeRepo.FindChangeByID(ctx, changeID)
	if err != nil {
		return nil, err
	}
	if change.IsStopped {
		// Stopping twice is a no-op; the original stop metadata wins.
		return change, nil
	}
	if change.DisplayStatus() == domain.StatusRejected {
		return nil, fmt.Errorf("%w: change request %s was rejected and cannot be stopped", apperrors.ErrConflict, changeID)
	}

	now := time.Now().UTC()
	if err := s.changeRepo.SetStopped(ctx, changeID, req.Reason, userID, now); err != nil {
		logger.Error("Failed to stop change request", "change_id", changeID, "error", err)
		return nil, err
	}

	updated, err := s.changeRepo.FindChangeByID(ctx, changeID)
	if err != nil {
		return nil, err
	}

	logger.Info("Change request stopped", "change_id", changeID, "reason", req.Reason, "user_id", userID)
	return updated, nil
}

// DeleteChange removes an undecided change request.
// Implements portssvc.ChangeWriterSvc
func (s *changeService) DeleteChange(ctx context.Context, changeID string, department domain.Department, userID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if department != domain.DepartmentHR {
		return fmt.Errorf("%w: only HR may delete change requests", apperrors.ErrForbidden)
	}

	change, err := s.changeRepo.FindChangeByID(ctx, changeID)
	if err != nil {
		return err
	}
	if change.AccountingApproved != nil || change.AuditApproved != nil {
		return fmt.Errorf("%w: change request %s already has a decision and cannot be deleted", apperrors.ErrConflict, changeID)
	}

	if err := s.changeRepo.DeleteChange(ctx, changeID); err != nil {
		logger.Error("Failed to delete change request", "change_id", changeID, "error", err)
		return err
	}

	logger.Info("Change request deleted", "change_id", changeID, "user_id", userID)
	return nil
}

// GetEffectiveFinalSalary computes base plus active entitlements minus active
// deductions for one employee.
// Implements portssvc.SalaryCalculatorSvc
func (s *changeService) GetEffectiveFinalSalary(ctx context.Context, employeeID string) (*dto.FinalSalaryResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	activeChanges, err := s.changeRepo.ListChangesByEmployee(ctx, employeeID, true)
	if err != nil {
		logger.Error("Failed to list active changes", "employee_id", employeeID, "error", err)
		return nil, err
	}

	entitlements, deductions := splitByDirection(activeChanges)
	totalEntitlements := payroll.ActiveAmountTotal(entitlements)
	totalDeductions := payroll.ActiveAmountTotal(deductions)

	return &dto.FinalSalaryResponse{
		EmployeeID:         employee.EmployeeID,
		BaseSalary:         employee.BaseSalary,
		TotalEntitlements:  totalEntitlements,
		TotalDeductions:    totalDeductions,
		FinalSalary:        payroll.EffectiveFinalSalary(employee.BaseSalary, entitlements, deductions),
		ActiveChangesCount: len(activeChanges),
	}, nil
}

// splitByDirection partitions changes into entitlements and deductions.
func splitByDirection(changes []domain.ChangeRequest) (entitlements, deductions []domain.ChangeRequest) {
	for i := range changes {
		switch changes[i].Direction {
		case domain.Entitlement:
			entitlements = append(entitlements, changes[i])
		case domain.Deduction:
			deductions = append(deductions, changes[i])
		}
	}
	return entitlements, deductions
}
