package payroll_test

import (
	"testing"

	"github.com/paydesk/compchange/internal/core/domain"
	"github.com/paydesk/compchange/internal/utils/payroll"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func activeChange(typeID string, direction domain.ChangeDirection, amount int64) domain.ChangeRequest {
	a := decimal.NewFromInt(amount)
	return domain.ChangeRequest{
		ChangeTypeID:               typeID,
		Direction:                  direction,
		Amount:                     &a,
		RequiresAccountingApproval: true,
		RequiresAuditApproval:      true,
	}
}

func TestActiveAmountTotal(t *testing.T) {
	housing := activeChange("housing", domain.Entitlement, 250000)
	transport := activeChange("transport", domain.Entitlement, 100000)

	stopped := activeChange("bonus", domain.Entitlement, 999999)
	stopped.IsStopped = true

	rejectedFlag := false
	rejected := activeChange("overtime", domain.Entitlement, 888888)
	rejected.AccountingApproved = &rejectedFlag

	noAmount := domain.ChangeRequest{ChangeTypeID: "tax", Direction: domain.Deduction}

	total := payroll.ActiveAmountTotal([]domain.ChangeRequest{housing, transport, stopped, rejected, noAmount})
	assert.True(t, decimal.NewFromInt(350000).Equal(total), "got %s", total)
}

func TestEffectiveFinalSalary(t *testing.T) {
	base := decimal.NewFromInt(1000000)
	entitlements := []domain.ChangeRequest{
		activeChange("housing", domain.Entitlement, 250000),
	}
	deductions := []domain.ChangeRequest{
		activeChange("pension", domain.Deduction, 70000),
	}

	final := payroll.EffectiveFinalSalary(base, entitlements, deductions)
	assert.True(t, decimal.NewFromInt(1180000).Equal(final), "got %s", final)
}

func TestEffectiveFinalSalary_NoChanges(t *testing.T) {
	base := decimal.NewFromInt(1000000)
	final := payroll.EffectiveFinalSalary(base, nil, nil)
	assert.True(t, base.Equal(final))
}

func TestHasActiveOfType(t *testing.T) {
	changes := []domain.ChangeRequest{
		activeChange("housing", domain.Entitlement, 250000),
	}
	assert.True(t, payroll.HasActiveOfType(changes, "housing"))
	assert.False(t, payroll.HasActiveOfType(changes, "transport"))

	changes[0].IsStopped = true
	assert.False(t, payroll.HasActiveOfType(changes, "housing"), "a stopped change frees the slot")
}

func TestPercentageAmount(t *testing.T) {
	tests := []struct {
		name       string
		base       int64
		percentage string
		want       int64
	}{
		{"25 percent of a million", 1000000, "25", 250000},
		{"7 percent of a million", 1000000, "7", 70000},
		{"rounds half away from zero", 1000, "0.05", 1}, // 0.5 -> 1
		{"rounds down below half", 1000, "0.04", 0},     // 0.4 -> 0
		{"fractional percentage", 1000000, "12.5", 125000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pct, err := decimal.NewFromString(tt.percentage)
			assert.NoError(t, err)
			got := payroll.PercentageAmount(decimal.NewFromInt(tt.base), pct)
			assert.True(t, decimal.NewFromInt(tt.want).Equal(got), "got %s", got)
		})
	}
}
