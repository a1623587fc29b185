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

// catalogService manages the change type and option catalogs.
type catalogService struct {
	catalogRepo portsrepo.CatalogRepositoryFacade
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(catalogRepo portsrepo.CatalogRepositoryFacade) portssvc.CatalogSvcFacade {
	return &catalogService{catalogRepo: catalogRepo}
}

// Ensure catalogService implements the portssvc.CatalogSvcFacade interface
var _ portssvc.CatalogSvcFacade = (*catalogService)(nil)

// GetChangeTypeByID retrieves a change type by its ID.
// Implements portssvc.CatalogReaderSvc
func (s *catalogService) GetChangeTypeByID(ctx context.Context, changeTypeID string) (*domain.ChangeType, error) {
	return s.catalogRepo.FindChangeTypeByID(ctx, changeTypeID)
}

// ListChangeTypes retrieves change types, optionally filtered by direction.
// Implements portssvc.CatalogReaderSvc
func (s *catalogService) ListChangeTypes(ctx context.Context, direction *domain.ChangeDirection) ([]domain.ChangeType, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	types, err := s.catalogRepo.ListChangeTypes(ctx, direction)
	if err != nil {
		logger.Error("Failed to list change types", "error", err)
		return nil, err
	}
	return types, nil
}

// GetChangeOptionByID retrieves a change option by its ID.
// Implements portssvc.CatalogReaderSvc
func (s *catalogService) GetChangeOptionByID(ctx context.Context, changeOptionID string) (*domain.ChangeOption, error) {
	return s.catalogRepo.FindChangeOptionByID(ctx, changeOptionID)
}

// ListChangeOptions retrieves the active options of a change type.
// Implements portssvc.CatalogReaderSvc
func (s *catalogService) ListChangeOptions(ctx context.Context, changeTypeID string) ([]domain.ChangeOption, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	if _, err := s.catalogRepo.FindChangeTypeByID(ctx, changeTypeID); err != nil {
		return nil, err
	}
	options, err := s.catalogRepo.ListChangeOptionsByType(ctx, changeTypeID, true)
	if err != nil {
		logger.Error("Failed to list change options", "change_type_id", changeTypeID, "error", err)
		return nil, err
	}
	return options, nil
}

// CreateChangeType registers a new change type.
// Implements portssvc.CatalogWriterSvc
func (s *catalogService) CreateChangeType(ctx context.Context, req dto.CreateChangeTypeRequest, creatorUserID string) (*domain.ChangeType, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now().UTC()
	changeType := domain.ChangeType{
		ChangeTypeID:        uuid.NewString(),
		Name:                req.Name,
		Direction:           req.Direction,
		UsesFinalSalaryBase: req.UsesFinalSalaryBase,
		IsActive:            true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.catalogRepo.SaveChangeType(ctx, changeType); err != nil {
		logger.Error("Failed to create change type", "name", req.Name, "error", err)
		return nil, err
	}

	logger.Info("Change type created", "change_type_id", changeType.ChangeTypeID, "name", changeType.Name, "direction", changeType.Direction)
	return &changeType, nil
}

// CreateChangeOption registers a new pricing option under a change type.
// Implements portssvc.CatalogWriterSvc
func (s *catalogService) CreateChangeOption(ctx context.Context, changeTypeID string, req dto.CreateChangeOptionRequest, creatorUserID string) (*domain.ChangeOption, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.catalogRepo.FindChangeTypeByID(ctx, changeTypeID); err != nil {
		return nil, fmt.Errorf("failed to find change type %s: %w", changeTypeID, err)
	}
	if req.Value.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: option value must be positive", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	option := domain.ChangeOption{
		ChangeOptionID: uuid.NewString(),
		ChangeTypeID:   changeTypeID,
		IsPercentage:   req.IsPercentage,
		Value:          req.Value,
		Description:    req.Description,
		IsActive:       true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.catalogRepo.SaveChangeOption(ctx, option); err != nil {
		logger.Error("Failed to create change option", "change_type_id", changeTypeID, "error", err)
		return nil, err
	}

	logger.Info("Change option created", "change_option_id", option.ChangeOptionID, "change_type_id", changeTypeID)
	return &option, nil
}
