package domain

import "time"

// DepartmentMessage is the ephemeral inbox/outbox view of a change request for
// one viewing department. It has no identity of its own beyond the change it
// represents and is recomputed on every fetch, never persisted.
type DepartmentMessage struct {
	ChangeID     string          `json:"changeID"`
	EmployeeID   string          `json:"employeeID"`
	EmployeeName string          `json:"employeeName"`
	Direction    ChangeDirection `json:"direction"`

	Sender    Department    `json:"sender"`
	Recipient Department    `json:"recipient"`
	Subject   string        `json:"subject"`
	Body      string        `json:"body"`
	Status    DisplayStatus `json:"status"`

	SentAt time.Time `json:"sentAt"` // Creation time of the underlying change
}
