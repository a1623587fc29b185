package models

import (
	"github.com/shopspring/decimal"
)

// Employee is the database row shape for an employee record.
type Employee struct {
	EmployeeID     string          `db:"employee_id"`
	EmployeeNumber string          `db:"employee_number"`
	FullName       string          `db:"full_name"`
	BaseSalary     decimal.Decimal `db:"base_salary"`
	IsActive       bool            `db:"is_active"`
	AuditFields
}
