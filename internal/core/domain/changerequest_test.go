package domain_test

import (
	"testing"

	"github.com/paydesk/compchange/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func boolPtr(b bool) *bool { return &b }

func newTwoStageRequest() domain.ChangeRequest {
	return domain.ChangeRequest{
		ChangeID:                   "chg-1",
		EmployeeID:                 "emp-1",
		Direction:                  domain.Entitlement,
		ChangeTypeID:               "type-1",
		RequiresAccountingApproval: true,
		RequiresAuditApproval:      true,
	}
}

func TestDisplayStatus(t *testing.T) {
	tests := []struct {
		name               string
		accountingApproved *bool
		auditApproved      *bool
		want               domain.DisplayStatus
	}{
		{"undecided is pending", nil, nil, domain.StatusPending},
		{"accounting approved only is pending", boolPtr(true), nil, domain.StatusPending},
		{"both approved is approved", boolPtr(true), boolPtr(true), domain.StatusApproved},
		{"accounting rejected is rejected", boolPtr(false), nil, domain.StatusRejected},
		{"audit rejected is rejected", boolPtr(true), boolPtr(false), domain.StatusRejected},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTwoStageRequest()
			c.AccountingApproved = tt.accountingApproved
			c.AuditApproved = tt.auditApproved
			assert.Equal(t, tt.want, c.DisplayStatus())
		})
	}
}

func TestDisplayStatus_StopDoesNotChangeStatus(t *testing.T) {
	c := newTwoStageRequest()
	c.AccountingApproved = boolPtr(true)
	c.AuditApproved = boolPtr(true)
	c.IsStopped = true

	// Status is derived from the approval fields alone; a stop keeps the
	// approval history visible.
	assert.Equal(t, domain.StatusApproved, c.DisplayStatus())
	assert.Equal(t, domain.StateStopped, c.State())
}

func TestState(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.ChangeRequest)
		want    domain.ApprovalState
	}{
		{"fresh request is pending", func(c *domain.ChangeRequest) {}, domain.StatePending},
		{"accounting approval moves to awaiting audit", func(c *domain.ChangeRequest) {
			c.AccountingApproved = boolPtr(true)
		}, domain.StateAwaitingAudit},
		{"both approvals is approved", func(c *domain.ChangeRequest) {
			c.AccountingApproved = boolPtr(true)
			c.AuditApproved = boolPtr(true)
		}, domain.StateApproved},
		{"accounting rejection is terminal", func(c *domain.ChangeRequest) {
			c.AccountingApproved = boolPtr(false)
		}, domain.StateRejectedByAccounting},
		{"audit rejection is terminal", func(c *domain.ChangeRequest) {
			c.AccountingApproved = boolPtr(true)
			c.AuditApproved = boolPtr(false)
		}, domain.StateRejectedByAudit},
		{"stop on pending wins", func(c *domain.ChangeRequest) {
			c.IsStopped = true
		}, domain.StateStopped},
		{"rejection takes precedence over stop", func(c *domain.ChangeRequest) {
			c.AccountingApproved = boolPtr(false)
			c.IsStopped = true
		}, domain.StateRejectedByAccounting},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTwoStageRequest()
			tt.mutate(&c)
			assert.Equal(t, tt.want, c.State())
		})
	}
}

func TestIsActiveChange(t *testing.T) {
	pending := newTwoStageRequest()
	assert.True(t, pending.IsActiveChange(), "pending requests occupy the type slot")

	approved := newTwoStageRequest()
	approved.AccountingApproved = boolPtr(true)
	approved.AuditApproved = boolPtr(true)
	assert.True(t, approved.IsActiveChange())

	rejected := newTwoStageRequest()
	rejected.AccountingApproved = boolPtr(false)
	assert.False(t, rejected.IsActiveChange(), "rejection frees the type slot")

	stopped := newTwoStageRequest()
	stopped.IsStopped = true
	assert.False(t, stopped.IsActiveChange(), "a stop frees the type slot")
}

func TestAwaitsDecisionBy(t *testing.T) {
	fresh := newTwoStageRequest()
	assert.True(t, fresh.AwaitsDecisionBy(domain.DepartmentAccounting))
	assert.False(t, fresh.AwaitsDecisionBy(domain.DepartmentAudit), "audit waits for accounting approval")
	assert.False(t, fresh.AwaitsDecisionBy(domain.DepartmentHR))

	afterAccounting := newTwoStageRequest()
	afterAccounting.AccountingApproved = boolPtr(true)
	assert.False(t, afterAccounting.AwaitsDecisionBy(domain.DepartmentAccounting))
	assert.True(t, afterAccounting.AwaitsDecisionBy(domain.DepartmentAudit))

	rejected := newTwoStageRequest()
	rejected.AccountingApproved = boolPtr(false)
	assert.False(t, rejected.AwaitsDecisionBy(domain.DepartmentAccounting))
	assert.False(t, rejected.AwaitsDecisionBy(domain.DepartmentAudit), "a rejected request never reaches audit")

	stopped := newTwoStageRequest()
	stopped.IsStopped = true
	assert.False(t, stopped.AwaitsDecisionBy(domain.DepartmentAccounting))
	assert.False(t, stopped.AwaitsDecisionBy(domain.DepartmentAudit))
}
