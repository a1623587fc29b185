package services

import (
	"context"

	"github.com/paydesk/compchange/internal/core/domain"
	"github.com/paydesk/compchange/internal/dto"
)

// CatalogReaderSvc defines read operations over the change type/option catalogs
type CatalogReaderSvc interface {
	// GetChangeTypeByID retrieves a change type by its ID.
	GetChangeTypeByID(ctx context.Context, changeTypeID string) (*domain.ChangeType, error)

	// ListChangeTypes retrieves change types, optionally filtered by direction.
	ListChangeTypes(ctx context.Context, direction *domain.ChangeDirection) ([]domain.ChangeType, error)

	// GetChangeOptionByID retrieves a change option by its ID.
	GetChangeOptionByID(ctx context.Context, changeOptionID string) (*domain.ChangeOption, error)

	// ListChangeOptions retrieves the active options of a change type.
	ListChangeOptions(ctx context.Context, changeTypeID string) ([]domain.ChangeOption, error)
}

// CatalogWriterSvc defines write operations over the catalogs
type CatalogWriterSvc interface {
	// CreateChangeType registers a new change type.
	CreateChangeType(ctx context.Context, req dto.CreateChangeTypeRequest, creatorUserID string) (*domain.ChangeType, error)

	// CreateChangeOption registers a new pricing option under a change type.
	CreateChangeOption(ctx context.Context, changeTypeID string, req dto.CreateChangeOptionRequest, creatorUserID string) (*domain.ChangeOption, error)
}

// CatalogSvcFacade combines all catalog service interfaces
type CatalogSvcFacade interface {
	CatalogReaderSvc
	CatalogWriterSvc
}
