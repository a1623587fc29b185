package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/paydesk/compchange/internal/apperrors"
	"github.com/paydesk/compchange/internal/core/domain"
	portsrepo "github.com/paydesk/compchange/internal/core/ports/repositories"
	"github.com/paydesk/compchange/internal/models"
	"github.com/paydesk/compchange/internal/utils/mapping"
)

const changeTypeColumns = `change_type_id, name, direction, uses_final_salary_base, is_active,
	created_at, created_by, last_updated_at, last_updated_by`

const changeOptionColumns = `change_option_id, change_type_id, is_percentage, value, description, is_active,
	created_at, created_by, last_updated_at, last_updated_by`

// CatalogRepository implements change type and option persistence using pgx.
type CatalogRepository struct {
	pool *pgxpool.Pool
}

// NewCatalogRepository creates a new repository for the change catalogs.
func NewCatalogRepository(pool *pgxpool.Pool) *CatalogRepository {
	return &CatalogRepository{pool: pool}
}

// Ensure CatalogRepository implements the repository port
var _ portsrepo.CatalogRepositoryFacade = (*CatalogRepository)(nil)

// FindChangeTypeByID retrieves a change type by its identifier.
func (r *CatalogRepository) FindChangeTypeByID(ctx context.Context, changeTypeID string) (*domain.ChangeType, error) {
	query := `SELECT ` + changeTypeColumns + ` FROM change_types WHERE change_type_id = $1;`

	var m models.ChangeType
	err := r.pool.QueryRow(ctx, query, changeTypeID).Scan(
		&m.ChangeTypeID,
		&m.Name,
		&m.Direction,
		&m.UsesFinalSalaryBase,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("change type " + changeTypeID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find change type "+changeTypeID, err)
	}

	changeType := mapping.ToDomainChangeType(m)
	return &changeType, nil
}

// ListChangeTypes retrieves change types, optionally filtered by direction.
func (r *CatalogRepository) ListChangeTypes(ctx context.Context, direction *domain.ChangeDirection) ([]domain.ChangeType, error) {
	query := `SELECT ` + changeTypeColumns + ` FROM change_types`
	args := []interface{}{}
	if direction != nil {
		query += ` WHERE direction = $1`
		args = append(args, string(*direction))
	}
	query += ` ORDER BY name;`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query change types", err)
	}
	defer rows.Close()

	types := []domain.ChangeType{}
	for rows.Next() {
		var m models.ChangeType
		err := rows.Scan(
			&m.ChangeTypeID,
			&m.Name,
			&m.Direction,
			&m.UsesFinalSalaryBase,
			&m.IsActive,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan change type row", err)
		}
		types = append(types, mapping.ToDomainChangeType(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating change type rows", err)
	}
	return types, nil
}

// FindChangeOptionByID retrieves a change option by its identifier.
func (r *CatalogRepository) FindChangeOptionByID(ctx context.Context, changeOptionID string) (*domain.ChangeOption, error) {
	query := `SELECT ` + changeOptionColumns + ` FROM change_options WHERE change_option_id = $1;`

	m, err := r.scanOptionRow(r.pool.QueryRow(ctx, query, changeOptionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("change option " + changeOptionID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find change option "+changeOptionID, err)
	}

	option := mapping.ToDomainChangeOption(*m)
	return &option, nil
}

// ListChangeOptionsByType retrieves the options of a change type.
func (r *CatalogRepository) ListChangeOptionsByType(ctx context.Context, changeTypeID string, activeOnly bool) ([]domain.ChangeOption, error) {
	query := `SELECT ` + changeOptionColumns + ` FROM change_options WHERE change_type_id = $1`
	if activeOnly {
		query += ` AND is_active = true`
	}
	query += ` ORDER BY value;`

	rows, err := r.pool.Query(ctx, query, changeTypeID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query change options for type "+changeTypeID, err)
	}
	defer rows.Close()

	options := []domain.ChangeOption{}
	for rows.Next() {
		m, err := r.scanOptionRow(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan change option row", err)
		}
		options = append(options, mapping.ToDomainChangeOption(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating change option rows", err)
	}
	return options, nil
}

// SaveChangeType persists a new change type.
func (r *CatalogRepository) SaveChangeType(ctx context.Context, changeType domain.ChangeType) error {
	m := mapping.ToModelChangeType(changeType)
	query := `
		INSERT INTO change_types (` + changeTypeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.pool.Exec(ctx, query,
		m.ChangeTypeID,
		m.Name,
		m.Direction,
		m.UsesFinalSalaryBase,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save change type "+m.ChangeTypeID, err)
	}
	return nil
}

// SaveChangeOption persists a new change option.
func (r *CatalogRepository) SaveChangeOption(ctx context.Context, option domain.ChangeOption) error {
	m := mapping.ToModelChangeOption(option)
	query := `
		INSERT INTO change_options (` + changeOptionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.pool.Exec(ctx, query,
		m.ChangeOptionID,
		m.ChangeTypeID,
		m.IsPercentage,
		m.Value,
		m.Description,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save change option "+m.ChangeOptionID, err)
	}
	return nil
}

func (r *CatalogRepository) scanOptionRow(row rowScanner) (*models.ChangeOption, error) {
	var m models.ChangeOption
	err := row.Scan(
		&m.ChangeOptionID,
		&m.ChangeTypeID,
		&m.IsPercentage,
		&m.Value,
		&m.Description,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}
