package repositories

import (
	"context"

	"github.com/paydesk/compchange/internal/core/domain"
)

// EmployeeReader defines read operations for employee data
type EmployeeReader interface {
	// FindEmployeeByID retrieves a specific employee by their ID.
	FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)

	// ListEmployees retrieves a paginated list of employees using token-based
	// pagination. It returns the employees, a token for the next page, and an error.
	ListEmployees(ctx context.Context, limit int, nextToken *string) ([]domain.Employee, *string, error)
}

// EmployeeWriter defines write operations for employee data
type EmployeeWriter interface {
	// SaveEmployee persists a new employee.
	SaveEmployee(ctx context.Context, employee domain.Employee) error
}

// EmployeeRepositoryFacade combines all employee-related repository interfaces
type EmployeeRepositoryFacade interface {
	EmployeeReader
	EmployeeWriter
}
