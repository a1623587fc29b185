package domain

import "github.com/shopspring/decimal"

// ResolvedPrice is the outcome of pricing a change: the derived amount and,
// for percentage options, the authoritative percentage. Both are nil for
// manually priced types with no catalog option.
type ResolvedPrice struct {
	Amount     *decimal.Decimal
	Percentage *decimal.Decimal
}
