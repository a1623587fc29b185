package services

import (
	"github.com/paydesk/compchange/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PricingSvcFacade resolves the monetary amount of a proposed change from its
// catalog option and the employee's salary context. Pure: no side effects, no
// storage access.
type PricingSvcFacade interface {
	// ResolveAmount prices a change. A nil option yields a nil amount and
	// percentage (manually priced types). Fixed options copy their value;
	// percentage options compute against the base selected by the change
	// type, rounding half-away-from-zero to a whole currency unit.
	ResolveAmount(option *domain.ChangeOption, changeType domain.ChangeType, employee domain.Employee, activeEntitlements, activeDeductions []domain.ChangeRequest) (domain.ResolvedPrice, error)

	// ResolveManualPercentage re-derives the amount from a manually entered
	// percentage, using the same base and rounding rules as ResolveAmount.
	// The amount is never settable directly.
	ResolveManualPercentage(percentage decimal.Decimal, changeType domain.ChangeType, employee domain.Employee, activeEntitlements, activeDeductions []domain.ChangeRequest) (domain.ResolvedPrice, error)
}
