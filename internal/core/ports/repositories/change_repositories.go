package repositories

import (
	"context"
	"time"

	"github.com/paydesk/compchange/internal/core/domain"
)

// ChangeReader defines read operations for change request data
type ChangeReader interface {
	// FindChangeByID retrieves a specific change request by its unique identifier.
	FindChangeByID(ctx context.Context, changeID string) (*domain.ChangeRequest, error)

	// ListChangesByEmployee retrieves all change requests for one employee.
	// With activeOnly set, stopped and rejected requests are excluded.
	ListChangesByEmployee(ctx context.Context, employeeID string, activeOnly bool) ([]domain.ChangeRequest, error)

	// ListAllChanges retrieves the full change request pool. The department
	// view projections are computed over this set on every fetch.
	ListAllChanges(ctx context.Context) ([]domain.ChangeRequest, error)

	// ListChanges retrieves a paginated list of change requests using
	// token-based pagination. It returns the changes, a token for the next
	// page, and an error.
	ListChanges(ctx context.Context, limit int, nextToken *string) ([]domain.ChangeRequest, *string, error)
}

// ChangeWriter defines write operations for change request data
type ChangeWriter interface {
	// CreateChange persists a new change request. The duplicate-active-type
	// check runs inside the same database transaction as the insert, so two
	// concurrent submissions of the same type cannot both succeed.
	CreateChange(ctx context.Context, change domain.ChangeRequest) error

	// ApplyDecision records one department's approval or rejection. The update
	// is conditional on the request still awaiting that department's decision;
	// a request in any other state yields apperrors.ErrConflict and no change.
	ApplyDecision(ctx context.Context, changeID string, department domain.Department, approve bool, decidedBy string, decidedAt time.Time) error

	// SetStopped marks a change request stopped without touching its approval
	// flags. Stopping an already-stopped request is a no-op.
	SetStopped(ctx context.Context, changeID string, reason string, stoppedBy string, stoppedAt time.Time) error

	// DeleteChange removes a change request permanently.
	DeleteChange(ctx context.Context, changeID string) error
}

// ChangeRepositoryFacade combines all change-request repository interfaces
type ChangeRepositoryFacade interface {
	ChangeReader
	ChangeWriter
}
