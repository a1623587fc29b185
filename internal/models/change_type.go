package models

import (
	"github.com/shopspring/decimal"
)

// ChangeType is the database row shape for a change type catalog entry.
type ChangeType struct {
	ChangeTypeID        string `db:"change_type_id"`
	Name                string `db:"name"`
	Direction           string `db:"direction"`
	UsesFinalSalaryBase bool   `db:"uses_final_salary_base"`
	IsActive            bool   `db:"is_active"`
	AuditFields
}

// ChangeOption is the database row shape for a pricing option.
type ChangeOption struct {
	ChangeOptionID string          `db:"change_option_id"`
	ChangeTypeID   string          `db:"change_type_id"`
	IsPercentage   bool            `db:"is_percentage"`
	Value          decimal.Decimal `db:"value"`
	Description    string          `db:"description"`
	IsActive       bool            `db:"is_active"`
	AuditFields
}
