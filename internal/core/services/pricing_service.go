package services

import (
	"fmt"

	"github.com/paydesk/compchange/internal/apperrors"
	"github.com/paydesk/compchange/internal/core/domain"
	portssvc "github.com/paydesk/compchange/internal/core/ports/services"
	"github.com/paydesk/compchange/internal/utils/payroll"
	"github.com/shopspring/decimal"
)

// pricingService computes the monetary amount of a proposed change.
// It is a pure function of its inputs: no storage access, no side effects.
type pricingService struct{}

// NewPricingService creates a new PricingService.
func NewPricingService() portssvc.PricingSvcFacade {
	return &pricingService{}
}

// Ensure pricingService implements the portssvc.PricingSvcFacade interface
var _ portssvc.PricingSvcFacade = (*pricingService)(nil)

// ResolveAmount prices a change from its catalog option.
// Implements portssvc.PricingSvcFacade
func (s *pricingService) ResolveAmount(option *domain.ChangeOption, changeType domain.ChangeType, employee domain.Employee, activeEntitlements, activeDeductions []domain.ChangeRequest) (domain.ResolvedPrice, error) {
	if option == nil {
		// Manually priced change types (e.g. income tax) carry no option;
		// amount and percentage stay unset.
		return domain.ResolvedPrice{}, nil
	}

	if option.ChangeTypeID != changeType.ChangeTypeID {
		return domain.ResolvedPrice{}, fmt.Errorf("%w: option %s does not belong to change type %s", apperrors.ErrValidation, option.ChangeOptionID, changeType.ChangeTypeID)
	}

	if !option.IsPercentage {
		amount := option.Value
		return domain.ResolvedPrice{Amount: &amount}, nil
	}

	return s.resolvePercentage(option.Value, changeType, employee, activeEntitlements, activeDeductions)
}

// ResolveManualPercentage re-derives the amount from a manually entered percentage.
// Implements portssvc.PricingSvcFacade
func (s *pricingService) ResolveManualPercentage(percentage decimal.Decimal, changeType domain.ChangeType, employee domain.Employee, activeEntitlements, activeDeductions []domain.ChangeRequest) (domain.ResolvedPrice, error) {
	if percentage.LessThanOrEqual(decimal.Zero) {
		return domain.ResolvedPrice{}, fmt.Errorf("%w: percentage must be positive", apperrors.ErrValidation)
	}
	return s.resolvePercentage(percentage, changeType, employee, activeEntitlements, activeDeductions)
}

// resolvePercentage applies the percentage to the salary base selected by the
// change type and rounds to a whole currency unit.
func (s *pricingService) resolvePercentage(percentage decimal.Decimal, changeType domain.ChangeType, employee domain.Employee, activeEntitlements, activeDeductions []domain.ChangeRequest) (domain.ResolvedPrice, error) {
	base := employee.BaseSalary
	if changeType.UsesFinalSalaryBase {
		deductions := activeDeductions
		if changeType.Direction == domain.Entitlement {
			// Entitlement pricing never nets against deductions.
			deductions = nil
		}
		base = payroll.EffectiveFinalSalary(employee.BaseSalary, activeEntitlements, deductions)
	}

	amount := payroll.PercentageAmount(base, percentage)
	return domain.ResolvedPrice{Amount: &amount, Percentage: &percentage}, nil
}
