package dto

import (
	"time"

	"github.com/paydesk/compchange/internal/core/domain"
)

// DepartmentMessageResponse defines the inbox/outbox view of a change request.
type DepartmentMessageResponse struct {
	ChangeID     string                 `json:"changeID"`
	EmployeeID   string                 `json:"employeeID"`
	EmployeeName string                 `json:"employeeName"`
	Direction    domain.ChangeDirection `json:"direction"`
	Sender       domain.Department      `json:"sender"`
	Recipient    domain.Department      `json:"recipient"`
	Subject      string                 `json:"subject"`
	Body         string                 `json:"body"`
	Status       domain.DisplayStatus   `json:"status"`
	SentAt       time.Time              `json:"sentAt"`
}

// ListMessagesResponse wraps a department's inbox or outbox.
type ListMessagesResponse struct {
	Department domain.Department           `json:"department"`
	Messages   []DepartmentMessageResponse `json:"messages"`
}

// ToDepartmentMessageResponse converts a domain.DepartmentMessage to its DTO.
func ToDepartmentMessageResponse(m *domain.DepartmentMessage) DepartmentMessageResponse {
	return DepartmentMessageResponse{
		ChangeID:     m.ChangeID,
		EmployeeID:   m.EmployeeID,
		EmployeeName: m.EmployeeName,
		Direction:    m.Direction,
		Sender:       m.Sender,
		Recipient:    m.Recipient,
		Subject:      m.Subject,
		Body:         m.Body,
		Status:       m.Status,
		SentAt:       m.SentAt,
	}
}

// ToListMessagesResponse converts a slice of messages for one department.
func ToListMessagesResponse(dept domain.Department, messages []domain.DepartmentMessage) ListMessagesResponse {
	responses := make([]DepartmentMessageResponse, len(messages))
	for i := range messages {
		responses[i] = ToDepartmentMessageResponse(&messages[i])
	}
	return ListMessagesResponse{
		Department: dept,
		Messages:   responses,
	}
}
