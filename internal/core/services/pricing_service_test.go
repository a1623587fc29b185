package services_test

import (
	"testing"

	"github.com/paydesk/compchange/internal/apperrors"
	"github.com/paydesk/compchange/internal/core/domain"
	"github.com/paydesk/compchange/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEmployee(baseSalary int64) domain.Employee {
	return domain.Employee{
		EmployeeID: "emp-1",
		BaseSalary: decimal.NewFromInt(baseSalary),
		IsActive:   true,
	}
}

func activePricedChange(typeID string, direction domain.ChangeDirection, amount int64) domain.ChangeRequest {
	a := decimal.NewFromInt(amount)
	return domain.ChangeRequest{
		ChangeTypeID:               typeID,
		Direction:                  direction,
		Amount:                     &a,
		RequiresAccountingApproval: true,
		RequiresAuditApproval:      true,
	}
}

func TestPricing_NilOption(t *testing.T) {
	svc := services.NewPricingService()

	price, err := svc.ResolveAmount(nil, domain.ChangeType{}, testEmployee(1000000), nil, nil)
	require.NoError(t, err)
	assert.Nil(t, price.Amount)
	assert.Nil(t, price.Percentage)
}

func TestPricing_FixedOption(t *testing.T) {
	svc := services.NewPricingService()
	changeType := domain.ChangeType{ChangeTypeID: "housing", Direction: domain.Entitlement}
	option := &domain.ChangeOption{
		ChangeOptionID: "opt-1",
		ChangeTypeID:   "housing",
		IsPercentage:   false,
		Value:          decimal.NewFromInt(250000),
	}

	price, err := svc.ResolveAmount(option, changeType, testEmployee(1000000), nil, nil)
	require.NoError(t, err)
	require.NotNil(t, price.Amount)
	assert.True(t, decimal.NewFromInt(250000).Equal(*price.Amount))
	assert.Nil(t, price.Percentage, "fixed options carry no percentage")
}

func TestPricing_OptionTypeMismatch(t *testing.T) {
	svc := services.NewPricingService()
	changeType := domain.ChangeType{ChangeTypeID: "housing"}
	option := &domain.ChangeOption{ChangeOptionID: "opt-1", ChangeTypeID: "transport", Value: decimal.NewFromInt(10)}

	_, err := svc.ResolveAmount(option, changeType, testEmployee(1000000), nil, nil)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestPricing_PercentageOfBaseSalary(t *testing.T) {
	svc := services.NewPricingService()
	changeType := domain.ChangeType{ChangeTypeID: "housing", Direction: domain.Entitlement}
	option := &domain.ChangeOption{
		ChangeOptionID: "opt-1",
		ChangeTypeID:   "housing",
		IsPercentage:   true,
		Value:          decimal.NewFromInt(25),
	}

	// Existing active changes must not affect base-salary pricing.
	entitlements := []domain.ChangeRequest{activePricedChange("transport", domain.Entitlement, 100000)}

	price, err := svc.ResolveAmount(option, changeType, testEmployee(1000000), entitlements, nil)
	require.NoError(t, err)
	require.NotNil(t, price.Amount)
	assert.True(t, decimal.NewFromInt(250000).Equal(*price.Amount), "got %s", price.Amount)
	require.NotNil(t, price.Percentage)
	assert.True(t, decimal.NewFromInt(25).Equal(*price.Percentage))
}

// A deduction priced on the effective final salary nets existing entitlements
// and deductions; an entitlement priced the same way only adds entitlements.
func TestPricing_FinalSalaryBaseAsymmetry(t *testing.T) {
	svc := services.NewPricingService()
	employee := testEmployee(1000000)
	entitlements := []domain.ChangeRequest{activePricedChange("housing", domain.Entitlement, 250000)}
	deductions := []domain.ChangeRequest{activePricedChange("pension", domain.Deduction, 70000)}

	deductionType := domain.ChangeType{ChangeTypeID: "incometax", Direction: domain.Deduction, UsesFinalSalaryBase: true}
	deductionOption := &domain.ChangeOption{
		ChangeOptionID: "opt-d", ChangeTypeID: "incometax", IsPercentage: true, Value: decimal.NewFromInt(10),
	}
	price, err := svc.ResolveAmount(deductionOption, deductionType, employee, entitlements, deductions)
	require.NoError(t, err)
	require.NotNil(t, price.Amount)
	// 10% of (1,000,000 + 250,000 - 70,000)
	assert.True(t, decimal.NewFromInt(118000).Equal(*price.Amount), "got %s", price.Amount)

	entitlementType := domain.ChangeType{ChangeTypeID: "seniority", Direction: domain.Entitlement, UsesFinalSalaryBase: true}
	entitlementOption := &domain.ChangeOption{
		ChangeOptionID: "opt-e", ChangeTypeID: "seniority", IsPercentage: true, Value: decimal.NewFromInt(10),
	}
	price, err = svc.ResolveAmount(entitlementOption, entitlementType, employee, entitlements, deductions)
	require.NoError(t, err)
	require.NotNil(t, price.Amount)
	// 10% of (1,000,000 + 250,000); deductions are not netted
	assert.True(t, decimal.NewFromInt(125000).Equal(*price.Amount), "got %s", price.Amount)
}

func TestPricing_ResolveManualPercentage(t *testing.T) {
	svc := services.NewPricingService()
	changeType := domain.ChangeType{ChangeTypeID: "overtime", Direction: domain.Entitlement}

	price, err := svc.ResolveManualPercentage(decimal.NewFromInt(7), changeType, testEmployee(1000000), nil, nil)
	require.NoError(t, err)
	require.NotNil(t, price.Amount)
	assert.True(t, decimal.NewFromInt(70000).Equal(*price.Amount))
	require.NotNil(t, price.Percentage)
	assert.True(t, decimal.NewFromInt(7).Equal(*price.Percentage))
}

func TestPricing_ManualPercentageMustBePositive(t *testing.T) {
	svc := services.NewPricingService()

	_, err := svc.ResolveManualPercentage(decimal.Zero, domain.ChangeType{}, testEmployee(1000000), nil, nil)
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.ResolveManualPercentage(decimal.NewFromInt(-5), domain.ChangeType{}, testEmployee(1000000), nil, nil)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestPricing_RoundsToWholeUnit(t *testing.T) {
	svc := services.NewPricingService()
	changeType := domain.ChangeType{ChangeTypeID: "misc", Direction: domain.Entitlement}

	pct, err := decimal.NewFromString("3.333")
	require.NoError(t, err)

	price, err := svc.ResolveManualPercentage(pct, changeType, testEmployee(1000), nil, nil)
	require.NoError(t, err)
	require.NotNil(t, price.Amount)
	// 33.33 rounds half away from zero to 33
	assert.True(t, decimal.NewFromInt(33).Equal(*price.Amount), "got %s", price.Amount)
}
