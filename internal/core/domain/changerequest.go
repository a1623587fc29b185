package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Department identifies one of the three roles that act on change requests.
type Department string

const (
	DepartmentHR         Department = "HR"
	DepartmentAccounting Department = "ACCOUNTING"
	DepartmentAudit      Department = "AUDIT"
)

// ApprovalState is the derived lifecycle state of a change request.
type ApprovalState string

const (
	StatePending              ApprovalState = "PENDING"
	StateAwaitingAudit        ApprovalState = "AWAITING_AUDIT"
	StateApproved             ApprovalState = "APPROVED"
	StateRejectedByAccounting ApprovalState = "REJECTED_BY_ACCOUNTING"
	StateRejectedByAudit      ApprovalState = "REJECTED_BY_AUDIT"
	StateStopped              ApprovalState = "STOPPED"
)

// DisplayStatus is the three-valued status shown in inbox/outbox views.
type DisplayStatus string

const (
	StatusPending  DisplayStatus = "PENDING"
	StatusApproved DisplayStatus = "APPROVED"
	StatusRejected DisplayStatus = "REJECTED"
)

// ChangeRequest is one proposed entitlement or deduction for one employee,
// moving through the two-stage Accounting -> Audit approval.
//
// Percentage, when set, is the source of truth; Amount is always derived from
// it by the pricing rules and is never independently settable. Approval flags
// are tri-state: nil means that department has not decided yet.
type ChangeRequest struct {
	ChangeID       string           `json:"changeID"`   // Primary Key (e.g., UUID)
	EmployeeID     string           `json:"employeeID"` // FK -> Employee (Not Null)
	Direction      ChangeDirection  `json:"direction"`
	ChangeTypeID   string           `json:"changeTypeID"`
	ChangeOptionID *string          `json:"changeOptionID"` // Nullable: some types price manually
	Amount         *decimal.Decimal `json:"amount"`         // Derived monetary amount
	Percentage     *decimal.Decimal `json:"percentage"`     // Authoritative when present

	LetterNumber string     `json:"letterNumber"` // Supporting document reference
	LetterDate   *time.Time `json:"letterDate"`
	Notes        string     `json:"notes"`

	RequiresAccountingApproval bool  `json:"requiresAccountingApproval"`
	RequiresAuditApproval      bool  `json:"requiresAuditApproval"`
	AccountingApproved         *bool `json:"accountingApproved"` // nil = undecided
	AuditApproved              *bool `json:"auditApproved"`      // nil = undecided

	IsStopped  bool       `json:"isStopped"`
	StoppedAt  *time.Time `json:"stoppedAt"`
	StopReason string     `json:"stopReason"`

	AuditFields
}

// DisplayStatus derives the inbox/outbox status purely from the four
// approval-related fields. It is never stored, so all department views stay
// consistent from one source of truth.
func (c *ChangeRequest) DisplayStatus() DisplayStatus {
	if c.RequiresAccountingApproval && c.AccountingApproved != nil && !*c.AccountingApproved {
		return StatusRejected
	}
	if c.RequiresAuditApproval && c.AuditApproved != nil && !*c.AuditApproved {
		return StatusRejected
	}
	accountingDone := !c.RequiresAccountingApproval || (c.AccountingApproved != nil && *c.AccountingApproved)
	auditDone := !c.RequiresAuditApproval || (c.AuditApproved != nil && *c.AuditApproved)
	if accountingDone && auditDone {
		return StatusApproved
	}
	return StatusPending
}

// State derives the full lifecycle state. Rejection is terminal and takes
// precedence over a later stop; a stop on a pending or approved request wins
// over the approval-derived state.
func (c *ChangeRequest) State() ApprovalState {
	if c.RequiresAccountingApproval && c.AccountingApproved != nil && !*c.AccountingApproved {
		return StateRejectedByAccounting
	}
	if c.RequiresAuditApproval && c.AuditApproved != nil && !*c.AuditApproved {
		return StateRejectedByAudit
	}
	if c.IsStopped {
		return StateStopped
	}
	switch c.DisplayStatus() {
	case StatusApproved:
		return StateApproved
	default:
		if c.RequiresAuditApproval && c.AccountingApproved != nil && *c.AccountingApproved {
			return StateAwaitingAudit
		}
		return StatePending
	}
}

// IsActiveChange reports whether this request still occupies its type slot for
// the employee: not stopped and not rejected. Pending and approved requests
// both count, which is what the duplicate check and the effective-final-salary
// sums operate on.
func (c *ChangeRequest) IsActiveChange() bool {
	return !c.IsStopped && c.DisplayStatus() != StatusRejected
}

// AwaitsDecisionBy reports whether the given department is the one the request
// is currently waiting on.
func (c *ChangeRequest) AwaitsDecisionBy(dept Department) bool {
	if c.IsStopped {
		return false
	}
	switch dept {
	case DepartmentAccounting:
		return c.RequiresAccountingApproval && c.AccountingApproved == nil
	case DepartmentAudit:
		return c.RequiresAuditApproval &&
			c.AccountingApproved != nil && *c.AccountingApproved &&
			c.AuditApproved == nil
	default:
		return false
	}
}
