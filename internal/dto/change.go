package dto

import (
	"time"

	"github.com/paydesk/compchange/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SubmitChangeRequest defines the data needed to propose a new compensation change.
// Amount is deliberately absent: it is always derived from the option or the
// manual percentage, never accepted from the client.
type SubmitChangeRequest struct {
	EmployeeID     string           `json:"employeeID" binding:"required"`
	ChangeTypeID   string           `json:"changeTypeID" binding:"required"`
	ChangeOptionID *string          `json:"changeOptionID"` // Optional: some types price manually
	Percentage     *decimal.Decimal `json:"percentage"`     // Optional manual percentage override
	LetterNumber   string           `json:"letterNumber"`
	LetterDate     *time.Time       `json:"letterDate"`
	Notes          string           `json:"notes"`
}

// DecideRequest defines the body of an approval decision. The acting
// department is derived from the authenticated user, never from the client.
type DecideRequest struct {
	Approve *bool `json:"approve" binding:"required"`
}

// StopChangeRequest defines the data for stopping an active change.
type StopChangeRequest struct {
	Reason string `json:"reason"`
}

// ChangeResponse defines the data returned for a change request.
type ChangeResponse struct {
	ChangeID       string                 `json:"changeID"`
	EmployeeID     string                 `json:"employeeID"`
	Direction      domain.ChangeDirection `json:"direction"`
	ChangeTypeID   string                 `json:"changeTypeID"`
	ChangeOptionID *string                `json:"changeOptionID"`
	Amount         *decimal.Decimal       `json:"amount"`
	Percentage     *decimal.Decimal       `json:"percentage"`
	LetterNumber   string                 `json:"letterNumber"`
	LetterDate     *time.Time             `json:"letterDate"`
	Notes          string                 `json:"notes"`

	RequiresAccountingApproval bool  `json:"requiresAccountingApproval"`
	RequiresAuditApproval      bool  `json:"requiresAuditApproval"`
	AccountingApproved         *bool `json:"accountingApproved"`
	AuditApproved              *bool `json:"auditApproved"`

	IsStopped  bool       `json:"isStopped"`
	StoppedAt  *time.Time `json:"stoppedAt"`
	StopReason string     `json:"stopReason,omitempty"`

	State  domain.ApprovalState `json:"state"`
	Status domain.DisplayStatus `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	CreatedBy string    `json:"createdBy"`
}

// ListChangesParams defines query parameters for listing change requests.
type ListChangesParams struct {
	Limit     int     `form:"limit,default=20"`
	NextToken *string `form:"nextToken"`
}

// ListChangesResponse wraps a page of change requests.
type ListChangesResponse struct {
	Changes   []ChangeResponse `json:"changes"`
	NextToken *string          `json:"nextToken,omitempty"`
}

// FinalSalaryResponse reports an employee's effective final salary.
type FinalSalaryResponse struct {
	EmployeeID         string          `json:"employeeID"`
	BaseSalary         decimal.Decimal `json:"baseSalary"`
	TotalEntitlements  decimal.Decimal `json:"totalEntitlements"`
	TotalDeductions    decimal.Decimal `json:"totalDeductions"`
	FinalSalary        decimal.Decimal `json:"finalSalary"`
	ActiveChangesCount int             `json:"activeChangesCount"`
}

// ToChangeResponse converts a domain.ChangeRequest to ChangeResponse DTO
func ToChangeResponse(c *domain.ChangeRequest) ChangeResponse {
	return ChangeResponse{
		ChangeID:                   c.ChangeID,
		EmployeeID:                 c.EmployeeID,
		Direction:                  c.Direction,
		ChangeTypeID:               c.ChangeTypeID,
		ChangeOptionID:             c.ChangeOptionID,
		Amount:                     c.Amount,
		Percentage:                 c.Percentage,
		LetterNumber:               c.LetterNumber,
		LetterDate:                 c.LetterDate,
		Notes:                      c.Notes,
		RequiresAccountingApproval: c.RequiresAccountingApproval,
		RequiresAuditApproval:      c.RequiresAuditApproval,
		AccountingApproved:         c.AccountingApproved,
		AuditApproved:              c.AuditApproved,
		IsStopped:                  c.IsStopped,
		StoppedAt:                  c.StoppedAt,
		StopReason:                 c.StopReason,
		State:                      c.State(),
		Status:                     c.DisplayStatus(),
		CreatedAt:                  c.CreatedAt,
		CreatedBy:                  c.CreatedBy,
	}
}

// ToChangeResponses converts a slice of domain.ChangeRequest to []ChangeResponse.
func ToChangeResponses(changes []domain.ChangeRequest) []ChangeResponse {
	responses := make([]ChangeResponse, len(changes))
	for i := range changes {
		responses[i] = ToChangeResponse(&changes[i])
	}
	return responses
}
