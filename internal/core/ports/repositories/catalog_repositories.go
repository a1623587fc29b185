package repositories

import (
	"context"

	"github.com/paydesk/compchange/internal/core/domain"
)

// CatalogReader defines read operations for the change type/option catalogs
type CatalogReader interface {
	// FindChangeTypeByID retrieves a change type by its identifier.
	FindChangeTypeByID(ctx context.Context, changeTypeID string) (*domain.ChangeType, error)

	// ListChangeTypes retrieves change types, optionally filtered by direction.
	ListChangeTypes(ctx context.Context, direction *domain.ChangeDirection) ([]domain.ChangeType, error)

	// FindChangeOptionByID retrieves a change option by its identifier.
	FindChangeOptionByID(ctx context.Context, changeOptionID string) (*domain.ChangeOption, error)

	// ListChangeOptionsByType retrieves the options of a change type. With
	// activeOnly set, inactive options are excluded.
	ListChangeOptionsByType(ctx context.Context, changeTypeID string, activeOnly bool) ([]domain.ChangeOption, error)
}

// CatalogWriter defines write operations for the change type/option catalogs
type CatalogWriter interface {
	// SaveChangeType persists a new change type.
	SaveChangeType(ctx context.Context, changeType domain.ChangeType) error

	// SaveChangeOption persists a new change option.
	SaveChangeOption(ctx context.Context, option domain.ChangeOption) error
}

// CatalogRepositoryFacade combines all catalog repository interfaces
type CatalogRepositoryFacade interface {
	CatalogReader
	CatalogWriter
}
