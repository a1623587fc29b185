package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/paydesk/compchange/internal/apperrors"
	"github.com/paydesk/compchange/internal/core/domain"
	portsrepo "github.com/paydesk/compchange/internal/core/ports/repositories"
	"github.com/paydesk/compchange/internal/models"
	"github.com/paydesk/compchange/internal/utils/mapping"
	"github.com/paydesk/compchange/internal/utils/pagination"
)

const changeColumns = `change_id, employee_id, direction, change_type_id, change_option_id, amount, percentage,
	letter_number, letter_date, notes,
	requires_accounting_approval, requires_audit_approval, accounting_approved, audit_approved,
	is_stopped, stopped_at, stop_reason,
	created_at, created_by, last_updated_at, last_updated_by`

// activeChangeCondition selects the changes that still occupy their type slot:
// not stopped and not rejected by either department. It must stay in sync with
// the partial unique index on change_requests.
const activeChangeCondition = `is_stopped = false
	AND accounting_approved IS DISTINCT FROM false
	AND audit_approved IS DISTINCT FROM false`

// ChangeRepository implements change request persistence using pgx.
type ChangeRepository struct {
	BaseRepository
	pool *pgxpool.Pool
}

// NewChangeRepository creates a new repository for change request data.
func NewChangeRepository(pool *pgxpool.Pool) *ChangeRepository {
	return &ChangeRepository{BaseRepository: NewBaseRepository(pool), pool: pool}
}

// Ensure ChangeRepository implements the full repository port
var _ portsrepo.ChangeRepositoryFacade = (*ChangeRepository)(nil)

// CreateChange persists a new change request. The employee row is locked for
// the duration of the transaction and the duplicate-active-type check runs
// under that lock, so two concurrent submissions of the same type cannot both
// succeed. The partial unique index backs this up at the schema level.
func (r *ChangeRepository) CreateChange(ctx context.Context, change domain.ChangeRequest) error {
	model := mapping.ToModelChangeRequest(change)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	// Will be ignored if the transaction is committed successfully
	defer r.Rollback(ctx, tx)

	var lockedEmployeeID string
	err = tx.QueryRow(ctx, `SELECT employee_id FROM employees WHERE employee_id = $1 FOR UPDATE`, model.EmployeeID).Scan(&lockedEmployeeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFoundError("employee " + model.EmployeeID + " not found")
		}
		return apperrors.NewAppError(500, "failed to lock employee row "+model.EmployeeID, err)
	}

	var duplicateExists bool
	dupQuery := `
		SELECT EXISTS (
			SELECT 1 FROM change_requests
			WHERE employee_id = $1 AND change_type_id = $2 AND ` + activeChangeCondition + `
		);
	`
	if err := tx.QueryRow(ctx, dupQuery, model.EmployeeID, model.ChangeTypeID).Scan(&duplicateExists); err != nil {
		return apperrors.NewAppError(500, "failed to check for duplicate active change", err)
	}
	if duplicateExists {
		return fmt.Errorf("employee %s already has an active change of type %s: %w", model.EmployeeID, model.ChangeTypeID, apperrors.ErrDuplicate)
	}

	insertQuery := `
		INSERT INTO change_requests (` + changeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21);
	`
	_, err = tx.Exec(ctx, insertQuery,
		model.ChangeID,
		model.EmployeeID,
		model.Direction,
		model.ChangeTypeID,
		model.ChangeOptionID,
		model.Amount,
		model.Percentage,
		model.LetterNumber,
		model.LetterDate,
		model.Notes,
		model.RequiresAccountingApproval,
		model.RequiresAuditApproval,
		model.AccountingApproved,
		model.AuditApproved,
		model.IsStopped,
		model.StoppedAt,
		model.StopReason,
		model.CreatedAt,
		model.CreatedBy,
		model.LastUpdatedAt,
		model.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert change request "+model.ChangeID, err)
	}

	return r.Commit(ctx, tx)
}

// FindChangeByID retrieves a specific change request by its identifier.
func (r *ChangeRepository) FindChangeByID(ctx context.Context, changeID string) (*domain.ChangeRequest, error) {
	query := `SELECT ` + changeColumns + ` FROM change_requests WHERE change_id = $1;`

	model, err := r.scanChangeRow(r.pool.QueryRow(ctx, query, changeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("change request " + changeID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find change request "+changeID, err)
	}

	change := mapping.ToDomainChangeRequest(*model)
	return &change, nil
}

// ListChangesByEmployee retrieves an employee's change requests, newest first.
func (r *ChangeRepository) ListChangesByEmployee(ctx context.Context, employeeID string, activeOnly bool) ([]domain.ChangeRequest, error) {
	query := `SELECT ` + changeColumns + ` FROM change_requests WHERE employee_id = $1`
	if activeOnly {
		query += ` AND ` + activeChangeCondition
	}
	query += ` ORDER BY created_at DESC, change_id DESC;`

	rows, err := r.pool.Query(ctx, query, employeeID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query changes for employee "+employeeID, err)
	}
	defer rows.Close()

	return r.collectChanges(rows)
}

// ListAllChanges retrieves the full change request pool, newest first.
func (r *ChangeRepository) ListAllChanges(ctx context.Context) ([]domain.ChangeRequest, error) {
	query := `SELECT ` + changeColumns + ` FROM change_requests ORDER BY created_at DESC, change_id DESC;`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query change requests", err)
	}
	defer rows.Close()

	return r.collectChanges(rows)
}

// ListChanges retrieves a page of change requests using a (created_at,
// change_id) cursor, newest first.
func (r *ChangeRepository) ListChanges(ctx context.Context, limit int, nextToken *string) ([]domain.ChangeRequest, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT ` + changeColumns + ` FROM change_requests`
	args := []interface{}{}
	if nextToken != nil && *nextToken != "" {
		createdAt, changeID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", apperrors.ErrValidation)
		}
		query += ` WHERE (created_at, change_id) < ($1, $2)`
		args = append(args, createdAt, changeID)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC, change_id DESC LIMIT $%d;`, len(args)+1)
	args = append(args, limit+1)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query change requests page", err)
	}
	defer rows.Close()

	changes, err := r.collectChanges(rows)
	if err != nil {
		return nil, nil, err
	}

	var newNextToken *string
	if len(changes) > limit {
		changes = changes[:limit]
		last := changes[len(changes)-1]
		token := pagination.EncodeToken(last.CreatedAt, last.ChangeID)
		newNextToken = &token
	}
	return changes, newNextToken, nil
}

// ApplyDecision records one department's approval or rejection. The update is
// conditional on the request still awaiting that department's decision, so a
// concurrent conflicting decision loses with no effect.
func (r *ChangeRepository) ApplyDecision(ctx context.Context, changeID string, department domain.Department, approve bool, decidedBy string, decidedAt time.Time) error {
	var query string
	switch department {
	case domain.DepartmentAccounting:
		query = `
			UPDATE change_requests
			SET accounting_approved = $1, last_updated_at = $2, last_updated_by = $3
			WHERE change_id = $4
			  AND is_stopped = false
			  AND requires_accounting_approval = true
			  AND accounting_approved IS NULL;
		`
	case domain.DepartmentAudit:
		query = `
			UPDATE change_requests
			SET audit_approved = $1, last_updated_at = $2, last_updated_by = $3
			WHERE change_id = $4
			  AND is_stopped = false
			  AND requires_audit_approval = true
			  AND accounting_approved = true
			  AND audit_approved IS NULL;
		`
	default:
		return fmt.Errorf("department %s cannot decide change requests: %w", department, apperrors.ErrForbidden)
	}

	cmdTag, err := r.pool.Exec(ctx, query, approve, decidedAt, decidedBy, changeID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to apply "+string(department)+" decision to change request "+changeID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		// Distinguish a missing row from one in the wrong state.
		if _, findErr := r.FindChangeByID(ctx, changeID); findErr != nil {
			return findErr
		}
		return fmt.Errorf("change request %s is not awaiting a %s decision: %w", changeID, department, apperrors.ErrConflict)
	}
	return nil
}

// SetStopped marks a change request stopped without touching its approval
// flags. Stopping an already-stopped request is a no-op.
func (r *ChangeRepository) SetStopped(ctx context.Context, changeID string, reason string, stoppedBy string, stoppedAt time.Time) error {
	query := `
		UPDATE change_requests
		SET is_stopped = true, stopped_at = $1, stop_reason = $2, last_updated_at = $1, last_updated_by = $3
		WHERE change_id = $4 AND is_stopped = false;
	`
	cmdTag, err := r.pool.Exec(ctx, query, stoppedAt, reason, stoppedBy, changeID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to stop change request "+changeID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		// Either the row does not exist or it is already stopped.
		if _, findErr := r.FindChangeByID(ctx, changeID); findErr != nil {
			return findErr
		}
	}
	return nil
}

// DeleteChange removes a change request permanently.
func (r *ChangeRepository) DeleteChange(ctx context.Context, changeID string) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM change_requests WHERE change_id = $1;`, changeID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete change request "+changeID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("change request " + changeID + " not found")
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (r *ChangeRepository) scanChangeRow(row rowScanner) (*models.ChangeRequest, error) {
	var m models.ChangeRequest
	err := row.Scan(
		&m.ChangeID,
		&m.EmployeeID,
		&m.Direction,
		&m.ChangeTypeID,
		&m.ChangeOptionID,
		&m.Amount,
		&m.Percentage,
		&m.LetterNumber,
		&m.LetterDate,
		&m.Notes,
		&m.RequiresAccountingApproval,
		&m.RequiresAuditApproval,
		&m.AccountingApproved,
		&m.AuditApproved,
		&m.IsStopped,
		&m.StoppedAt,
		&m.StopReason,
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

func (r *ChangeRepository) collectChanges(rows pgx.Rows) ([]domain.ChangeRequest, error) {
	changeModels := []models.ChangeRequest{}
	for rows.Next() {
		m, err := r.scanChangeRow(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan change request row", err)
		}
		changeModels = append(changeModels, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating change request rows", err)
	}
	return mapping.ToDomainChangeRequestSlice(changeModels), nil
}
