package mapping

import (
	"github.com/paydesk/compchange/internal/core/domain"
	"github.com/paydesk/compchange/internal/models"
)

// ToModelEmployee converts a domain Employee to a model Employee
func ToModelEmployee(d domain.Employee) models.Employee {
	return models.Employee{
		EmployeeID:     d.EmployeeID,
		EmployeeNumber: d.EmployeeNumber,
		FullName:       d.FullName,
		BaseSalary:     d.BaseSalary,
		IsActive:       d.IsActive,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainEmployee converts a model Employee to a domain Employee
func ToDomainEmployee(m models.Employee) domain.Employee {
	return domain.Employee{
		EmployeeID:     m.EmployeeID,
		EmployeeNumber: m.EmployeeNumber,
		FullName:       m.FullName,
		BaseSalary:     m.BaseSalary,
		IsActive:       m.IsActive,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}
