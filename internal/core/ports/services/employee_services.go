package services

import (
	"context"

	"github.com/paydesk/compchange/internal/core/domain"
	"github.com/paydesk/compchange/internal/dto"
)

// EmployeeReaderSvc defines read operations for employee data
type EmployeeReaderSvc interface {
	// GetEmployeeByID retrieves an employee by ID.
	GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)

	// ListEmployees retrieves a paginated list of employees.
	ListEmployees(ctx context.Context, params dto.ListEmployeesParams) (*dto.ListEmployeesResponse, error)
}

// EmployeeWriterSvc defines write operations for employee data
type EmployeeWriterSvc interface {
	// CreateEmployee registers a new employee.
	CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest, creatorUserID string) (*domain.Employee, error)
}

// EmployeeSvcFacade combines all employee-related service interfaces
type EmployeeSvcFacade interface {
	EmployeeReaderSvc
	EmployeeWriterSvc
}
