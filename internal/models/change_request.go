package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ChangeRequest is the database row shape for a compensation change request.
// Nullable columns use pointers; the approval flags are tri-state booleans.
type ChangeRequest struct {
	ChangeID       string           `db:"change_id"`
	EmployeeID     string           `db:"employee_id"`
	Direction      string           `db:"direction"`
	ChangeTypeID   string           `db:"change_type_id"`
	ChangeOptionID *string          `db:"change_option_id"`
	Amount         *decimal.Decimal `db:"amount"`
	Percentage     *decimal.Decimal `db:"percentage"`

	LetterNumber string     `db:"letter_number"`
	LetterDate   *time.Time `db:"letter_date"`
	Notes        string     `db:"notes"`

	RequiresAccountingApproval bool  `db:"requires_accounting_approval"`
	RequiresAuditApproval      bool  `db:"requires_audit_approval"`
	AccountingApproved         *bool `db:"accounting_approved"`
	AuditApproved              *bool `db:"audit_approved"`

	IsStopped  bool       `db:"is_stopped"`
	StoppedAt  *time.Time `db:"stopped_at"`
	StopReason string     `db:"stop_reason"`

	AuditFields
}
