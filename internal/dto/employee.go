package dto

import (
	"time"

	"github.com/paydesk/compchange/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateEmployeeRequest defines the data needed to register an employee.
type CreateEmployeeRequest struct {
	EmployeeNumber string          `json:"employeeNumber" binding:"required"`
	FullName       string          `json:"fullName" binding:"required"`
	BaseSalary     decimal.Decimal `json:"baseSalary" binding:"required"`
}

// EmployeeResponse defines the data returned for an employee.
type EmployeeResponse struct {
	EmployeeID     string          `json:"employeeID"`
	EmployeeNumber string          `json:"employeeNumber"`
	FullName       string          `json:"fullName"`
	BaseSalary     decimal.Decimal `json:"baseSalary"`
	IsActive       bool            `json:"isActive"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// ListEmployeesParams defines query parameters for listing employees.
type ListEmployeesParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// ListEmployeesResponse wraps a page of employees.
type ListEmployeesResponse struct {
	Employees []EmployeeResponse `json:"employees"`
	NextToken *string            `json:"nextToken,omitempty"`
}

// ToEmployeeResponse converts a domain.Employee to EmployeeResponse DTO
func ToEmployeeResponse(e *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID:     e.EmployeeID,
		EmployeeNumber: e.EmployeeNumber,
		FullName:       e.FullName,
		BaseSalary:     e.BaseSalary,
		IsActive:       e.IsActive,
		CreatedAt:      e.CreatedAt,
	}
}

// ToListEmployeesResponse converts a page of domain employees to its DTO.
func ToListEmployeesResponse(employees []domain.Employee, nextToken *string) ListEmployeesResponse {
	responses := make([]EmployeeResponse, len(employees))
	for i := range employees {
		responses[i] = ToEmployeeResponse(&employees[i])
	}
	return ListEmployeesResponse{
		Employees: responses,
		NextToken: nextToken,
	}
}
