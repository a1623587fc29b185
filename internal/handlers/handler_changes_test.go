package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/paydesk/compchange/internal/apperrors"
	"github.com/paydesk/compchange/internal/core/domain"
	portssvc "github.com/paydesk/compchange/internal/core/ports/services"
	"github.com/paydesk/compchange/internal/dto"
	"github.com/paydesk/compchange/internal/handlers"
	"github.com/paydesk/compchange/internal/middleware"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ChangeService ---
type MockChangeService struct {
	mock.Mock
}

var _ portssvc.ChangeSvcFacade = (*MockChangeService)(nil)

func (m *MockChangeService) GetChangeByID(ctx context.Context, changeID string) (*domain.ChangeRequest, error) {
	args := m.Called(ctx, changeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChangeRequest), args.Error(1)
}

func (m *MockChangeService) ListChangesByEmployee(ctx context.Context, employeeID string, activeOnly bool) ([]domain.ChangeRequest, error) {
	args := m.Called(ctx, employeeID, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ChangeRequest), args.Error(1)
}

func (m *MockChangeService) ListChanges(ctx context.Context, params dto.ListChangesParams) (*dto.ListChangesResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListChangesResponse), args.Error(1)
}

func (m *MockChangeService) SubmitChange(ctx context.Context, req dto.SubmitChangeRequest, requesterUserID string) (*domain.ChangeRequest, error) {
	args := m.Called(ctx, req, requesterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChangeRequest), args.Error(1)
}

func (m *MockChangeService) Decide(ctx context.Context, changeID string, department domain.Department, approve bool, deciderUserID string) (*domain.ChangeRequest, error) {
	args := m.Called(ctx, changeID, department, approve, deciderUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChangeRequest), args.Error(1)
}

func (m *MockChangeService) StopChange(ctx context.Context, changeID string, req dto.StopChangeRequest, userID string) (*domain.ChangeRequest, error) {
	args := m.Called(ctx, changeID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChangeRequest), args.Error(1)
}

func (m *MockChangeService) DeleteChange(ctx context.Context, changeID string, department domain.Department, userID string) error {
	args := m.Called(ctx, changeID, department, userID)
	return args.Error(0)
}

func (m *MockChangeService) GetEffectiveFinalSalary(ctx context.Context, employeeID string) (*dto.FinalSalaryResponse, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.FinalSalaryResponse), args.Error(1)
}

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, requestingUserID string) (*domain.User, error) {
	args := m.Called(ctx, userID, req, requestingUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	args := m.Called(ctx, userID, refreshTokenHash, refreshTokenExpiryTime)
	return args.Error(0)
}

func (m *MockUserService) ClearRefreshToken(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// --- Test Suite ---
type ChangeHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockChangeService *MockChangeService
	mockUserService   *MockUserService
	jwtSecret         string
	hrUser            domain.User
	accountingUser    domain.User
}

func (suite *ChangeHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "compchange-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedString, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signedString
}

func (suite *ChangeHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockChangeService = new(MockChangeService)
	suite.mockUserService = new(MockUserService)

	suite.hrUser = domain.User{
		UserID:     uuid.NewString(),
		Username:   "hr.clerk",
		Department: domain.DepartmentHR,
	}
	suite.accountingUser = domain.User{
		UserID:     uuid.NewString(),
		Username:   "acct.reviewer",
		Department: domain.DepartmentAccounting,
	}

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterChangeRoutes(v1, suite.mockChangeService, suite.mockUserService)
}

func (suite *ChangeHandlerTestSuite) doJSON(method, url string, body any, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			suite.FailNow("Failed to encode request body", err.Error())
		}
	}
	req, _ := http.NewRequest(method, url, &buf)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *ChangeHandlerTestSuite) TestSubmitChange_Success() {
	employeeID := uuid.NewString()
	changeTypeID := uuid.NewString()
	amount := decimal.NewFromInt(250000)
	created := &domain.ChangeRequest{
		ChangeID:                   uuid.NewString(),
		EmployeeID:                 employeeID,
		Direction:                  domain.Entitlement,
		ChangeTypeID:               changeTypeID,
		Amount:                     &amount,
		RequiresAccountingApproval: true,
		RequiresAuditApproval:      true,
	}

	suite.mockUserService.On("GetUserByID", mock.Anything, suite.hrUser.UserID).Return(&suite.hrUser, nil).Once()
	suite.mockChangeService.On("SubmitChange",
		mock.Anything,
		mock.MatchedBy(func(req dto.SubmitChangeRequest) bool {
			return req.EmployeeID == employeeID && req.ChangeTypeID == changeTypeID
		}),
		suite.hrUser.UserID,
	).Return(created, nil).Once()

	body := dto.SubmitChangeRequest{EmployeeID: employeeID, ChangeTypeID: changeTypeID}
	w := suite.doJSON(http.MethodPost, "/api/v1/changes", body, suite.generateTestToken(suite.hrUser.UserID))

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.ChangeResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.ChangeID, resp.ChangeID)
	suite.Equal(domain.StatusPending, resp.Status)
	suite.mockChangeService.AssertExpectations(suite.T())
}

func (suite *ChangeHandlerTestSuite) TestSubmitChange_DuplicateConflict() {
	suite.mockUserService.On("GetUserByID", mock.Anything, suite.hrUser.UserID).Return(&suite.hrUser, nil).Once()
	suite.mockChangeService.On("SubmitChange", mock.Anything, mock.AnythingOfType("dto.SubmitChangeRequest"), suite.hrUser.UserID).
		Return(nil, fmt.Errorf("%w: active change of this type exists", apperrors.ErrDuplicate)).Once()

	body := dto.SubmitChangeRequest{EmployeeID: uuid.NewString(), ChangeTypeID: uuid.NewString()}
	w := suite.doJSON(http.MethodPost, "/api/v1/changes", body, suite.generateTestToken(suite.hrUser.UserID))

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *ChangeHandlerTestSuite) TestSubmitChange_MissingToken() {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/changes", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockChangeService.AssertNotCalled(suite.T(), "SubmitChange", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ChangeHandlerTestSuite) TestDecideChange_DepartmentFromUserRecord() {
	changeID := uuid.NewString()
	approvedFlag := true
	decided := &domain.ChangeRequest{
		ChangeID:                   changeID,
		RequiresAccountingApproval: true,
		RequiresAuditApproval:      true,
		AccountingApproved:         &approvedFlag,
	}

	suite.mockUserService.On("GetUserByID", mock.Anything, suite.accountingUser.UserID).Return(&suite.accountingUser, nil).Once()
	// The department passed to the service must come from the stored user,
	// regardless of anything in the request body.
	suite.mockChangeService.On("Decide", mock.Anything, changeID, domain.DepartmentAccounting, true, suite.accountingUser.UserID).
		Return(decided, nil).Once()

	approve := true
	w := suite.doJSON(http.MethodPost, "/api/v1/changes/"+changeID+"/decision", dto.DecideRequest{Approve: &approve}, suite.generateTestToken(suite.accountingUser.UserID))

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ChangeResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(domain.StateAwaitingAudit, resp.State)
	suite.mockChangeService.AssertExpectations(suite.T())
}

func (suite *ChangeHandlerTestSuite) TestDecideChange_ConflictMapsTo409() {
	changeID := uuid.NewString()

	suite.mockUserService.On("GetUserByID", mock.Anything, suite.accountingUser.UserID).Return(&suite.accountingUser, nil).Once()
	suite.mockChangeService.On("Decide", mock.Anything, changeID, domain.DepartmentAccounting, false, suite.accountingUser.UserID).
		Return(nil, fmt.Errorf("%w: not awaiting this decision", apperrors.ErrConflict)).Once()

	approve := false
	w := suite.doJSON(http.MethodPost, "/api/v1/changes/"+changeID+"/decision", dto.DecideRequest{Approve: &approve}, suite.generateTestToken(suite.accountingUser.UserID))

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *ChangeHandlerTestSuite) TestDeleteChange_ForbiddenMapsTo403() {
	changeID := uuid.NewString()

	suite.mockUserService.On("GetUserByID", mock.Anything, suite.accountingUser.UserID).Return(&suite.accountingUser, nil).Once()
	suite.mockChangeService.On("DeleteChange", mock.Anything, changeID, domain.DepartmentAccounting, suite.accountingUser.UserID).
		Return(fmt.Errorf("%w: only HR may delete change requests", apperrors.ErrForbidden)).Once()

	w := suite.doJSON(http.MethodDelete, "/api/v1/changes/"+changeID, nil, suite.generateTestToken(suite.accountingUser.UserID))

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *ChangeHandlerTestSuite) TestDeleteChange_Success() {
	changeID := uuid.NewString()

	suite.mockUserService.On("GetUserByID", mock.Anything, suite.hrUser.UserID).Return(&suite.hrUser, nil).Once()
	suite.mockChangeService.On("DeleteChange", mock.Anything, changeID, domain.DepartmentHR, suite.hrUser.UserID).Return(nil).Once()

	w := suite.doJSON(http.MethodDelete, "/api/v1/changes/"+changeID, nil, suite.generateTestToken(suite.hrUser.UserID))

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockChangeService.AssertExpectations(suite.T())
}

func (suite *ChangeHandlerTestSuite) TestStopChange_Success() {
	changeID := uuid.NewString()
	stopped := &domain.ChangeRequest{
		ChangeID:                   changeID,
		IsStopped:                  true,
		StopReason:                 "employee transferred",
		RequiresAccountingApproval: true,
		RequiresAuditApproval:      true,
	}

	suite.mockUserService.On("GetUserByID", mock.Anything, suite.hrUser.UserID).Return(&suite.hrUser, nil).Once()
	suite.mockChangeService.On("StopChange", mock.Anything, changeID, dto.StopChangeRequest{Reason: "employee transferred"}, suite.hrUser.UserID).
		Return(stopped, nil).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/changes/"+changeID+"/stop", dto.StopChangeRequest{Reason: "employee transferred"}, suite.generateTestToken(suite.hrUser.UserID))

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ChangeResponse
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.IsStopped)
	suite.Equal(domain.StateStopped, resp.State)
}

func (suite *ChangeHandlerTestSuite) TestSubmitChange_ExpiredToken() {
	claims := jwt.RegisteredClaims{
		Issuer:    "compchange-test",
		Subject:   suite.hrUser.UserID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	expired, err := token.SignedString([]byte(suite.jwtSecret))
	suite.Require().NoError(err)

	body := dto.SubmitChangeRequest{EmployeeID: uuid.NewString(), ChangeTypeID: uuid.NewString()}
	w := suite.doJSON(http.MethodPost, "/api/v1/changes", body, expired)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Contains(w.Body.String(), "Token has expired")
	suite.mockChangeService.AssertNotCalled(suite.T(), "SubmitChange", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ChangeHandlerTestSuite) TestStopChange_EmptyBodyStopsWithoutReason() {
	changeID := uuid.NewString()
	stopped := &domain.ChangeRequest{
		ChangeID:                   changeID,
		IsStopped:                  true,
		RequiresAccountingApproval: true,
		RequiresAuditApproval:      true,
	}

	suite.mockUserService.On("GetUserByID", mock.Anything, suite.hrUser.UserID).Return(&suite.hrUser, nil).Once()
	suite.mockChangeService.On("StopChange", mock.Anything, changeID, dto.StopChangeRequest{}, suite.hrUser.UserID).
		Return(stopped, nil).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/changes/"+changeID+"/stop", nil, suite.generateTestToken(suite.hrUser.UserID))

	suite.Equal(http.StatusOK, w.Code)
	suite.mockChangeService.AssertExpectations(suite.T())
}

func (suite *ChangeHandlerTestSuite) TestGetChange_NotFound() {
	changeID := uuid.NewString()

	suite.mockChangeService.On("GetChangeByID", mock.Anything, changeID).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doJSON(http.MethodGet, "/api/v1/changes/"+changeID, nil, suite.generateTestToken(suite.hrUser.UserID))

	suite.Equal(http.StatusNotFound, w.Code)
}

// --- Run Test Suite ---
func TestChangeHandler(t *testing.T) {
	suite.Run(t, new(ChangeHandlerTestSuite))
}
