package services

import (
	"context"

	"github.com/paydesk/compchange/internal/core/domain"
	"github.com/paydesk/compchange/internal/dto"
)

// ChangeReaderSvc defines read operations for change request data
type ChangeReaderSvc interface {
	// GetChangeByID retrieves a specific change request by its ID.
	GetChangeByID(ctx context.Context, changeID string) (*domain.ChangeRequest, error)

	// ListChangesByEmployee retrieves an employee's change requests.
	ListChangesByEmployee(ctx context.Context, employeeID string, activeOnly bool) ([]domain.ChangeRequest, error)

	// ListChanges retrieves a paginated list of change requests.
	ListChanges(ctx context.Context, params dto.ListChangesParams) (*dto.ListChangesResponse, error)
}

// ChangeWriterSvc defines the lifecycle operations on change requests
type ChangeWriterSvc interface {
	// SubmitChange prices and validates a proposed change and persists it in
	// the pending state. Returns apperrors.ErrDuplicate when the employee
	// already holds an active change of the same type.
	SubmitChange(ctx context.Context, req dto.SubmitChangeRequest, requesterUserID string) (*domain.ChangeRequest, error)

	// Decide records one department's approval or rejection. Returns
	// apperrors.ErrConflict when the request is not awaiting that
	// department's decision.
	Decide(ctx context.Context, changeID string, department domain.Department, approve bool, deciderUserID string) (*domain.ChangeRequest, error)

	// StopChange marks a change stopped. Idempotent; approval flags are left
	// untouched so a stopped change keeps its approval history.
	StopChange(ctx context.Context, changeID string, req dto.StopChangeRequest, userID string) (*domain.ChangeRequest, error)

	// DeleteChange removes an undecided change request. Only its requester's
	// department (HR) may delete, and only before any decision was rendered.
	DeleteChange(ctx context.Context, changeID string, department domain.Department, userID string) error
}

// SalaryCalculatorSvc defines salary computations over an employee's changes
type SalaryCalculatorSvc interface {
	// GetEffectiveFinalSalary computes base salary plus active entitlements
	// minus active deductions for one employee.
	GetEffectiveFinalSalary(ctx context.Context, employeeID string) (*dto.FinalSalaryResponse, error)
}

// ChangeSvcFacade combines all change-request service interfaces
type ChangeSvcFacade interface {
	ChangeReaderSvc
	ChangeWriterSvc
	SalaryCalculatorSvc
}
