package payroll

import (
	"github.com/paydesk/compchange/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ActiveAmountTotal sums the derived amounts of the active (non-stopped,
// non-rejected) changes in the slice. Changes without a resolved amount
// contribute nothing.
func ActiveAmountTotal(changes []domain.ChangeRequest) decimal.Decimal {
	total := decimal.Zero
	for i := range changes {
		c := &changes[i]
		if !c.IsActiveChange() || c.Amount == nil {
			continue
		}
		total = total.Add(*c.Amount)
	}
	return total
}

// EffectiveFinalSalary computes the salary base adjusted by currently active
// changes: baseSalary + active entitlements - active deductions. This is the
// pricing base for final-salary-based percentage options and the figure
// payroll displays.
func EffectiveFinalSalary(baseSalary decimal.Decimal, entitlements, deductions []domain.ChangeRequest) decimal.Decimal {
	return baseSalary.Add(ActiveAmountTotal(entitlements)).Sub(ActiveAmountTotal(deductions))
}

// HasActiveOfType reports whether any change in the slice is active and of the
// given type. An employee may hold at most one active change per type.
func HasActiveOfType(changes []domain.ChangeRequest, changeTypeID string) bool {
	for i := range changes {
		if changes[i].ChangeTypeID == changeTypeID && changes[i].IsActiveChange() {
			return true
		}
	}
	return false
}

// PercentageAmount applies a percentage to a salary base and rounds
// half-away-from-zero to the nearest whole currency unit.
func PercentageAmount(base decimal.Decimal, percentage decimal.Decimal) decimal.Decimal {
	return base.Mul(percentage).Div(decimal.NewFromInt(100)).Round(0)
}
