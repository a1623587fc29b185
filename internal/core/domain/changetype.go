package domain

import (
	"github.com/shopspring/decimal"
)

// ChangeDirection indicates whether a change adds to or subtracts from pay.
type ChangeDirection string

const (
	Entitlement ChangeDirection = "ENTITLEMENT"
	Deduction   ChangeDirection = "DEDUCTION"
)

// ChangeType is an immutable catalog entry for a kind of compensation change,
// e.g. a housing allowance or a pension deduction.
type ChangeType struct {
	ChangeTypeID string          `json:"changeTypeID"` // Primary Key (e.g., UUID)
	Name         string          `json:"name"`
	Direction    ChangeDirection `json:"direction"`
	// UsesFinalSalaryBase selects the pricing base for percentage options:
	// the effective final salary instead of the raw base salary.
	UsesFinalSalaryBase bool `json:"usesFinalSalaryBase"`
	IsActive            bool `json:"isActive"`
	AuditFields
}

// ChangeOption is a pricing variant of a ChangeType: either a fixed amount or
// a percentage of the type's salary base, never both.
type ChangeOption struct {
	ChangeOptionID string          `json:"changeOptionID"` // Primary Key (e.g., UUID)
	ChangeTypeID   string          `json:"changeTypeID"`   // FK -> ChangeType
	IsPercentage   bool            `json:"isPercentage"`
	Value          decimal.Decimal `json:"value"` // Percentage when IsPercentage, fixed amount otherwise
	Description    string          `json:"description"`
	IsActive       bool            `json:"isActive"`
	AuditFields
}
