package services

import (
	"context"

	"github.com/paydesk/compchange/internal/core/domain"
)

// MessageSvcFacade projects the shared change request pool into role-scoped
// inbox and outbox views. Projections are derived on every call and never
// persisted, so all departments see a consistent status for the same change.
type MessageSvcFacade interface {
	// GetInbox returns the changes currently awaiting the department's
	// attention, newest first.
	GetInbox(ctx context.Context, department domain.Department) ([]domain.DepartmentMessage, error)

	// GetOutbox returns the changes the department has already originated or
	// decided, with their current resolution, newest first.
	GetOutbox(ctx context.Context, department domain.Department) ([]domain.DepartmentMessage, error)
}
