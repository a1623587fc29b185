package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/paydesk/compchange/internal/apperrors"
	"github.com/paydesk/compchange/internal/core/domain"
	portsrepo "github.com/paydesk/compchange/internal/core/ports/repositories"
	portssvc "github.com/paydesk/compchange/internal/core/ports/services"
	"github.com/paydesk/compchange/internal/dto"
	"github.com/paydesk/compchange/internal/middleware"
	"github.com/shopspring/decimal"
)

// employeeService manages the employee records the compensation core reads.
type employeeService struct {
	employeeRepo portsrepo.EmployeeRepositoryFacade
}

// NewEmployeeService creates a new EmployeeService.
func NewEmployeeService(employeeRepo portsrepo.EmployeeRepositoryFacade) portssvc.EmployeeSvcFacade {
	return &employeeService{employeeRepo: employeeRepo}
}

// Ensure employeeService implements the portssvc.EmployeeSvcFacade interface
var _ portssvc.EmployeeSvcFacade = (*employeeService)(nil)

// GetEmployeeByID retrieves an employee by ID.
// Implements portssvc.EmployeeReaderSvc
func (s *employeeService) GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	return s.employeeRepo.FindEmployeeByID(ctx, employeeID)
}

// ListEmployees retrieves a paginated list of employees.
// Implements portssvc.EmployeeReaderSvc
func (s *employeeService) ListEmployees(ctx context.Context, params dto.ListEmployeesParams) (*dto.ListEmployeesResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}
	employees, nextToken, err := s.employeeRepo.ListEmployees(ctx, limit, params.NextToken)
	if err != nil {
		logger.Error("Failed to list employees", "error", err)
		return nil, err
	}
	resp := dto.ToListEmployeesResponse(employees, nextToken)
	return &resp, nil
}

// CreateEmployee registers a new employee.
// Implements portssvc.EmployeeWriterSvc
func (s *employeeService) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest, creatorUserID string) (*domain.Employee, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.BaseSalary.LessThan(decimal.Zero) {
		return nil, fmt.Errorf("%w: base salary cannot be negative", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	employee := domain.Employee{
		EmployeeID:     uuid.NewString(),
		EmployeeNumber: req.EmployeeNumber,
		FullName:       req.FullName,
		BaseSalary:     req.BaseSalary,
		IsActive:       true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.employeeRepo.SaveEmployee(ctx, employee); err != nil {
		logger.Error("Failed to create employee", "employee_number", req.EmployeeNumber, "error", err)
		return nil, err
	}

	logger.Info("Employee created", "employee_id", employee.EmployeeID, "employee_number", employee.EmployeeNumber)
	return &employee, nil
}
