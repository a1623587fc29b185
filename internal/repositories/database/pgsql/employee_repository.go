package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/paydesk/compchange/internal/apperrors"
	"github.com/paydesk/compchange/internal/core/domain"
	portsrepo "github.com/paydesk/compchange/internal/core/ports/repositories"
	"github.com/paydesk/compchange/internal/models"
	"github.com/paydesk/compchange/internal/utils/mapping"
	"github.com/paydesk/compchange/internal/utils/pagination"
)

const employeeColumns = `employee_id, employee_number, full_name, base_salary, is_active,
	created_at, created_by, last_updated_at, last_updated_by`

// EmployeeRepository implements employee persistence using pgx.
type EmployeeRepository struct {
	pool *pgxpool.Pool
}

// NewEmployeeRepository creates a new repository for employee data.
func NewEmployeeRepository(pool *pgxpool.Pool) *EmployeeRepository {
	return &EmployeeRepository{pool: pool}
}

// Ensure EmployeeRepository implements the repository port
var _ portsrepo.EmployeeRepositoryFacade = (*EmployeeRepository)(nil)

// FindEmployeeByID retrieves a specific employee by their ID.
func (r *EmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	query := `SELECT ` + employeeColumns + ` FROM employees WHERE employee_id = $1;`

	m, err := r.scanEmployeeRow(r.pool.QueryRow(ctx, query, employeeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("employee " + employeeID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find employee "+employeeID, err)
	}

	employee := mapping.ToDomainEmployee(*m)
	return &employee, nil
}

// ListEmployees retrieves a page of employees using a (created_at,
// employee_id) cursor, newest first.
func (r *EmployeeRepository) ListEmployees(ctx context.Context, limit int, nextToken *string) ([]domain.Employee, *string, error) {
	if limit <= 0 {
		limit = 20
	}

	query := `SELECT ` + employeeColumns + ` FROM employees`
	args := []interface{}{}
	if nextToken != nil && *nextToken != "" {
		createdAt, employeeID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewAppError(400, "invalid nextToken", apperrors.ErrValidation)
		}
		query += ` WHERE (created_at, employee_id) < ($1, $2)`
		args = append(args, createdAt, employeeID)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC, employee_id DESC LIMIT $%d;`, len(args)+1)
	args = append(args, limit+1)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to query employees page", err)
	}
	defer rows.Close()

	employees := []domain.Employee{}
	for rows.Next() {
		m, err := r.scanEmployeeRow(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan employee row", err)
		}
		employees = append(employees, mapping.ToDomainEmployee(*m))
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error iterating employee rows", err)
	}

	var newNextToken *string
	if len(employees) > limit {
		employees = employees[:limit]
		last := employees[len(employees)-1]
		token := pagination.EncodeToken(last.CreatedAt, last.EmployeeID)
		newNextToken = &token
	}
	return employees, newNextToken, nil
}

// SaveEmployee persists a new employee.
func (r *EmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	m := mapping.ToModelEmployee(employee)
	query := `
		INSERT INTO employees (` + employeeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.pool.Exec(ctx, query,
		m.EmployeeID,
		m.EmployeeNumber,
		m.FullName,
		m.BaseSalary,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to save employee "+m.EmployeeID, err)
	}
	return nil
}

func (r *EmployeeRepository) scanEmployeeRow(row rowScanner) (*models.Employee, error) {
	var m models.Employee
	err := row.Scan(
		&m.EmployeeID,
		&m.EmployeeNumber,
		&m.FullName,
		&m.BaseSalary,
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
