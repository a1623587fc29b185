package mapping

import (
	"github.com/paydesk/compchange/internal/core/domain"
	"github.com/paydesk/compchange/internal/models"
)

// ToModelChangeType converts a domain ChangeType to a model ChangeType
func ToModelChangeType(d domain.ChangeType) models.ChangeType {
	return models.ChangeType{
		ChangeTypeID:        d.ChangeTypeID,
		Name:                d.Name,
		Direction:           string(d.Direction),
		UsesFinalSalaryBase: d.UsesFinalSalaryBase,
		IsActive:            d.IsActive,
		AuditFields:         ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainChangeType converts a model ChangeType to a domain ChangeType
func ToDomainChangeType(m models.ChangeType) domain.ChangeType {
	return domain.ChangeType{
		ChangeTypeID:        m.ChangeTypeID,
		Name:                m.Name,
		Direction:           domain.ChangeDirection(m.Direction),
		UsesFinalSalaryBase: m.UsesFinalSalaryBase,
		IsActive:            m.IsActive,
		AuditFields:         ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelChangeOption converts a domain ChangeOption to a model ChangeOption
func ToModelChangeOption(d domain.ChangeOption) models.ChangeOption {
	return models.ChangeOption{
		ChangeOptionID: d.ChangeOptionID,
		ChangeTypeID:   d.ChangeTypeID,
		IsPercentage:   d.IsPercentage,
		Value:          d.Value,
		Description:    d.Description,
		IsActive:       d.IsActive,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainChangeOption converts a model ChangeOption to a domain ChangeOption
func ToDomainChangeOption(m models.ChangeOption) domain.ChangeOption {
	return domain.ChangeOption{
		ChangeOptionID: m.ChangeOptionID,
		ChangeTypeID:   m.ChangeTypeID,
		IsPercentage:   m.IsPercentage,
		Value:          m.Value,
		Description:    m.Description,
		IsActive:       m.IsActive,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}
