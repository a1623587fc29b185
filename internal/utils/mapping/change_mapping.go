package mapping

import (
	"github.com/paydesk/compchange/internal/core/domain"
	"github.com/paydesk/compchange/internal/models"
)

// ToModelChangeRequest converts a domain ChangeRequest to a model ChangeRequest
func ToModelChangeRequest(d domain.ChangeRequest) models.ChangeRequest {
	return models.ChangeRequest{
		ChangeID:                   d.ChangeID,
		EmployeeID:                 d.EmployeeID,
		Direction:                  string(d.Direction),
		ChangeTypeID:               d.ChangeTypeID,
		ChangeOptionID:             d.ChangeOptionID,
		Amount:                     d.Amount,
		Percentage:                 d.Percentage,
		LetterNumber:               d.LetterNumber,
		LetterDate:                 d.LetterDate,
		Notes:                      d.Notes,
		RequiresAccountingApproval: d.RequiresAccountingApproval,
		RequiresAuditApproval:      d.RequiresAuditApproval,
		AccountingApproved:         d.AccountingApproved,
		AuditApproved:              d.AuditApproved,
		IsStopped:                  d.IsStopped,
		StoppedAt:                  d.StoppedAt,
		StopReason:                 d.StopReason,
		AuditFields:                ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainChangeRequest converts a model ChangeRequest to a domain ChangeRequest
func ToDomainChangeRequest(m models.ChangeRequest) domain.ChangeRequest {
	return domain.ChangeRequest{
		ChangeID:                   m.ChangeID,
		EmployeeID:                 m.EmployeeID,
		Direction:                  domain.ChangeDirection(m.Direction),
		ChangeTypeID:               m.ChangeTypeID,
		ChangeOptionID:             m.ChangeOptionID,
		Amount:                     m.Amount,
		Percentage:                 m.Percentage,
		LetterNumber:               m.LetterNumber,
		LetterDate:                 m.LetterDate,
		Notes:                      m.Notes,
		RequiresAccountingApproval: m.RequiresAccountingApproval,
		RequiresAuditApproval:      m.RequiresAuditApproval,
		AccountingApproved:         m.AccountingApproved,
		AuditApproved:              m.AuditApproved,
		IsStopped:                  m.IsStopped,
		StoppedAt:                  m.StoppedAt,
		StopReason:                 m.StopReason,
		AuditFields:                ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainChangeRequestSlice converts a slice of model ChangeRequests to domain ones
func ToDomainChangeRequestSlice(ms []models.ChangeRequest) []domain.ChangeRequest {
	ds := make([]domain.ChangeRequest, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainChangeRequest(m)
	}
	return ds
}
