package domain

import (
	"github.com/shopspring/decimal"
)

// Employee represents an employee record as consumed by the compensation core.
// Master-data maintenance lives elsewhere; this service reads the fields it
// needs for pricing and ownership checks.
type Employee struct {
	EmployeeID     string          `json:"employeeID"`     // Primary Key (e.g., UUID)
	EmployeeNumber string          `json:"employeeNumber"` // HR-assigned number, unique
	FullName       string          `json:"fullName"`
	BaseSalary     decimal.Decimal `json:"baseSalary"` // Raw contractual salary, pricing base
	IsActive       bool            `json:"isActive"`
	AuditFields
}
