package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/paydesk/compchange/internal/apperrors"
	"github.com/paydesk/compchange/internal/core/domain"
	portssvc "github.com/paydesk/compchange/internal/core/ports/services"
	"github.com/paydesk/compchange/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type MessageServiceTestSuite struct {
	suite.Suite
	mockChangeRepo   *MockChangeRepository
	mockEmployeeRepo *MockEmployeeRepository
	mockCatalogRepo  *MockCatalogRepository
	service          portssvc.MessageSvcFacade
	employee         domain.Employee
	housingType      domain.ChangeType
}

func (suite *MessageServiceTestSuite) SetupTest() {
	suite.mockChangeRepo = new(MockChangeRepository)
	suite.mockEmployeeRepo = new(MockEmployeeRepository)
	suite.mockCatalogRepo = new(MockCatalogRepository)
	suite.service = services.NewMessageService(suite.mockChangeRepo, suite.mockEmployeeRepo, suite.mockCatalogRepo)

	suite.employee = domain.Employee{
		EmployeeID: uuid.NewString(),
		FullName:   "Sara Ahmadi",
		BaseSalary: decimal.NewFromInt(1000000),
		IsActive:   true,
	}
	suite.housingType = domain.ChangeType{
		ChangeTypeID: uuid.NewString(),
		Name:         "Housing Allowance",
		Direction:    domain.Entitlement,
		IsActive:     true,
	}
}

func (suite *MessageServiceTestSuite) change(accountingApproved, auditApproved *bool, stopped bool) domain.ChangeRequest {
	amount := decimal.NewFromInt(250000)
	return domain.ChangeRequest{
		ChangeID:                   uuid.NewString(),
		EmployeeID:                 suite.employee.EmployeeID,
		Direction:                  domain.Entitlement,
		ChangeTypeID:               suite.housingType.ChangeTypeID,
		Amount:                     &amount,
		LetterNumber:               "HR-2024-113",
		RequiresAccountingApproval: true,
		RequiresAuditApproval:      true,
		AccountingApproved:         accountingApproved,
		AuditApproved:              auditApproved,
		IsStopped:                  stopped,
		AuditFields:                domain.AuditFields{CreatedAt: time.Now().UTC()},
	}
}

func (suite *MessageServiceTestSuite) expectPool(changes ...domain.ChangeRequest) {
	ctx := context.Background()
	suite.mockChangeRepo.On("ListAllChanges", ctx).Return(changes, nil).Once()
	suite.mockCatalogRepo.On("ListChangeTypes", ctx, (*domain.ChangeDirection)(nil)).Return([]domain.ChangeType{suite.housingType}, nil).Once()
	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, suite.employee.EmployeeID).Return(&suite.employee, nil).Maybe()
}

func boolp(b bool) *bool { return &b }

// --- Test Cases ---

func (suite *MessageServiceTestSuite) TestInbox_PendingGoesToAccountingOnly() {
	ctx := context.Background()
	pending := suite.change(nil, nil, false)

	suite.expectPool(pending)
	inbox, err := suite.service.GetInbox(ctx, domain.DepartmentAccounting)
	suite.Require().NoError(err)
	suite.Require().Len(inbox, 1)
	suite.Equal(pending.ChangeID, inbox[0].ChangeID)
	suite.Equal(domain.DepartmentHR, inbox[0].Sender)
	suite.Equal(domain.DepartmentAccounting, inbox[0].Recipient)
	suite.Equal("Housing Allowance request for Sara Ahmadi", inbox[0].Subject)
	suite.Equal(domain.StatusPending, inbox[0].Status)

	suite.expectPool(pending)
	inbox, err = suite.service.GetInbox(ctx, domain.DepartmentAudit)
	suite.Require().NoError(err)
	suite.Empty(inbox, "audit's turn starts only after accounting approval")

	suite.expectPool(pending)
	inbox, err = suite.service.GetInbox(ctx, domain.DepartmentHR)
	suite.Require().NoError(err)
	suite.Empty(inbox, "HR sees a request back only once someone decides")
}

func (suite *MessageServiceTestSuite) TestInbox_AccountingApprovalMovesToAudit() {
	ctx := context.Background()
	awaiting := suite.change(boolp(true), nil, false)

	suite.expectPool(awaiting)
	inbox, err := suite.service.GetInbox(ctx, domain.DepartmentAudit)
	suite.Require().NoError(err)
	suite.Require().Len(inbox, 1)
	suite.Equal(domain.DepartmentAccounting, inbox[0].Sender)
	suite.Equal(domain.DepartmentAudit, inbox[0].Recipient)

	suite.expectPool(awaiting)
	inbox, err = suite.service.GetInbox(ctx, domain.DepartmentAccounting)
	suite.Require().NoError(err)
	suite.Empty(inbox, "accounting is done with this request")

	suite.expectPool(awaiting)
	inbox, err = suite.service.GetInbox(ctx, domain.DepartmentHR)
	suite.Require().NoError(err)
	suite.Require().Len(inbox, 1)
	suite.Equal(domain.DepartmentAccounting, inbox[0].Sender)
	suite.Equal(domain.DepartmentHR, inbox[0].Recipient)
}

func (suite *MessageServiceTestSuite) TestInbox_RejectedNeverReachesAudit() {
	ctx := context.Background()
	rejected := suite.change(boolp(false), nil, false)

	suite.expectPool(rejected)
	inbox, err := suite.service.GetInbox(ctx, domain.DepartmentAudit)
	suite.Require().NoError(err)
	suite.Empty(inbox)

	suite.expectPool(rejected)
	inbox, err = suite.service.GetInbox(ctx, domain.DepartmentHR)
	suite.Require().NoError(err)
	suite.Require().Len(inbox, 1)
	suite.Equal(domain.StatusRejected, inbox[0].Status)
}

func (suite *MessageServiceTestSuite) TestInbox_StoppedLeavesDecisionQueues() {
	ctx := context.Background()
	stopped := suite.change(nil, nil, true)

	suite.expectPool(stopped)
	inbox, err := suite.service.GetInbox(ctx, domain.DepartmentAccounting)
	suite.Require().NoError(err)
	suite.Empty(inbox)
}

func (suite *MessageServiceTestSuite) TestOutbox_Membership() {
	ctx := context.Background()
	pending := suite.change(nil, nil, false)
	decided := suite.change(boolp(true), boolp(true), false)

	suite.expectPool(pending, decided)
	outbox, err := suite.service.GetOutbox(ctx, domain.DepartmentHR)
	suite.Require().NoError(err)
	suite.Len(outbox, 2, "HR originated every request")

	suite.expectPool(pending, decided)
	outbox, err = suite.service.GetOutbox(ctx, domain.DepartmentAccounting)
	suite.Require().NoError(err)
	suite.Require().Len(outbox, 1)
	suite.Equal(decided.ChangeID, outbox[0].ChangeID)

	suite.expectPool(pending, decided)
	outbox, err = suite.service.GetOutbox(ctx, domain.DepartmentAudit)
	suite.Require().NoError(err)
	suite.Require().Len(outbox, 1)
	suite.Equal(domain.StatusApproved, outbox[0].Status)
}

func (suite *MessageServiceTestSuite) TestProjection_NewestFirst() {
	ctx := context.Background()
	older := suite.change(nil, nil, false)
	older.CreatedAt = time.Now().UTC().Add(-time.Hour)
	newer := suite.change(nil, nil, false)
	newer.CreatedAt = time.Now().UTC()

	suite.expectPool(older, newer)
	outbox, err := suite.service.GetOutbox(ctx, domain.DepartmentHR)
	suite.Require().NoError(err)
	suite.Require().Len(outbox, 2)
	suite.Equal(newer.ChangeID, outbox[0].ChangeID)
	suite.Equal(older.ChangeID, outbox[1].ChangeID)
}

func (suite *MessageServiceTestSuite) TestProjection_MissingEmployeeRendersID() {
	ctx := context.Background()
	orphan := suite.change(nil, nil, false)
	orphan.EmployeeID = uuid.NewString()

	suite.mockChangeRepo.On("ListAllChanges", ctx).Return([]domain.ChangeRequest{orphan}, nil).Once()
	suite.mockCatalogRepo.On("ListChangeTypes", ctx, (*domain.ChangeDirection)(nil)).Return([]domain.ChangeType{suite.housingType}, nil).Once()
	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, orphan.EmployeeID).Return(nil, apperrors.ErrNotFound).Once()

	inbox, err := suite.service.GetInbox(ctx, domain.DepartmentAccounting)
	suite.Require().NoError(err)
	suite.Require().Len(inbox, 1)
	suite.Equal(orphan.EmployeeID, inbox[0].EmployeeName)
}

func (suite *MessageServiceTestSuite) TestProjection_UnknownDepartment() {
	ctx := context.Background()

	_, err := suite.service.GetInbox(ctx, domain.Department("PAYROLL"))
	suite.Require().ErrorIs(err, apperrors.ErrValidation)
}

func TestMessageServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MessageServiceTestSuite))
}
