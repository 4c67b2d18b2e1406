package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/openhrm/leave_workflow_app/internal/apperrors"
	"github.com/openhrm/leave_workflow_app/internal/core/domain"
	portssvc "github.com/openhrm/leave_workflow_app/internal/core/ports/services"
	"github.com/openhrm/leave_workflow_app/internal/dto"
	"github.com/openhrm/leave_workflow_app/internal/handlers"
	"github.com/openhrm/leave_workflow_app/internal/platform/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock LeaveRequestService ---
type MockLeaveRequestService struct {
	mock.Mock
}

func (m *MockLeaveRequestService) SubmitLeaveRequest(ctx context.Context, req dto.SubmitLeaveRequestRequest, actorID string) (*domain.LeaveRequest, error) {
	args := m.Called(ctx, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LeaveRequest), args.Error(1)
}
func (m *MockLeaveRequestService) ModifyLeaveRequest(ctx context.Context, requestID string, req dto.ModifyLeaveRequestRequest, actorID string) (*domain.LeaveRequest, error) {
	args := m.Called(ctx, requestID, req, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LeaveRequest), args.Error(1)
}
func (m *MockLeaveRequestService) CancelLeaveRequest(ctx context.Context, requestID string, actorID string) (*domain.LeaveRequest, error) {
	args := m.Called(ctx, requestID, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LeaveRequest), args.Error(1)
}
func (m *MockLeaveRequestService) SetApprovalFlow(ctx context.Context, requestID string, roles []string, actorID string) (*domain.LeaveRequest, error) {
	args := m.Called(ctx, requestID, roles, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LeaveRequest), args.Error(1)
}
func (m *MockLeaveRequestService) ManagerApprove(ctx context.Context, requestID, role, actorID, justification string) (*domain.LeaveRequest, error) {
	args := m.Called(ctx, requestID, role, actorID, justification)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LeaveRequest), args.Error(1)
}
func (m *MockLeaveRequestService) ManagerReject(ctx context.Context, requestID, role, actorID, justification string) (*domain.LeaveRequest, error) {
	args := m.Called(ctx, requestID, role, actorID, justification)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LeaveRequest), args.Error(1)
}
func (m *MockLeaveRequestService) FinalizeLeaveRequest(ctx context.Context, requestID, hrUserID string, finalStatus domain.RequestStatus) (*domain.LeaveRequest, error) {
	args := m.Called(ctx, requestID, hrUserID, finalStatus)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LeaveRequest), args.Error(1)
}
func (m *MockLeaveRequestService) OverrideLeaveRequest(ctx context.Context, requestID, hrUserID string, newStatus domain.RequestStatus, reason string) (*domain.LeaveRequest, error) {
	args := m.Called(ctx, requestID, hrUserID, newStatus, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LeaveRequest), args.Error(1)
}
func (m *MockLeaveRequestService) VerifyMedicalDocuments(ctx context.Context, requestID, hrUserID string, verified bool, notes string) (*domain.LeaveRequest, error) {
	args := m.Called(ctx, requestID, hrUserID, verified, notes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LeaveRequest), args.Error(1)
}
func (m *MockLeaveRequestService) GetLeaveRequest(ctx context.Context, requestID string) (*domain.LeaveRequest, error) {
	args := m.Called(ctx, requestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LeaveRequest), args.Error(1)
}
func (m *MockLeaveRequestService) ListLeaveRequests(ctx context.Context, params dto.ListLeaveRequestsParams) (*dto.ListLeaveRequestsResponse, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListLeaveRequestsResponse), args.Error(1)
}
func (m *MockLeaveRequestService) BulkProcess(ctx context.Context, req dto.BulkProcessRequest, hrUserID string) (*dto.BulkProcessResult, error) {
	args := m.Called(ctx, req, hrUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.BulkProcessResult), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.LeaveRequestSvcFacade = (*MockLeaveRequestService)(nil)

// --- Test Suite ---
type LeaveRequestHandlerTestSuite struct {
	suite.Suite
	router    *gin.Engine
	mockSvc   *MockLeaveRequestService
	jwtSecret string
}

func (suite *LeaveRequestHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.mockSvc = new(MockLeaveRequestService)

	cfg := &config.Config{
		JWTSecret:    suite.jwtSecret,
		IsProduction: true, // skip swagger route wiring in tests
	}
	handlers.RegisterRoutes(suite.router, cfg, &portssvc.ServiceContainer{
		LeaveRequest: suite.mockSvc,
	})
}

func TestLeaveRequestHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(LeaveRequestHandlerTestSuite))
}

// generateTestToken creates a signed JWT carrying the acting user id.
func (suite *LeaveRequestHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "leave-workflow-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *LeaveRequestHandlerTestSuite) doJSON(method, url string, body any, userID string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req, _ := http.NewRequest(method, url, &buf)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *LeaveRequestHandlerTestSuite) sampleRequest() *domain.LeaveRequest {
	return &domain.LeaveRequest{
		RequestID:    "req-001",
		EmployeeID:   "emp-001",
		LeaveTypeID:  "lt-annual",
		FromDate:     time.Date(2026, time.March, 10, 0, 0, 0, 0, time.UTC),
		ToDate:       time.Date(2026, time.March, 12, 0, 0, 0, 0, time.UTC),
		DurationDays: decimal.NewFromInt(3),
		Status:       domain.StatusPending,
		ApprovalFlow: []domain.ApprovalStep{},
	}
}

func (suite *LeaveRequestHandlerTestSuite) TestSubmitLeaveRequest_Created() {
	suite.mockSvc.On("SubmitLeaveRequest", mock.Anything,
		mock.MatchedBy(func(req dto.SubmitLeaveRequestRequest) bool {
			return req.EmployeeID == "emp-001" && req.LeaveTypeID == "lt-annual"
		}), "emp-001").
		Return(suite.sampleRequest(), nil).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/leave-requests", gin.H{
		"employeeID":  "emp-001",
		"leaveTypeID": "lt-annual",
		"fromDate":    "2026-03-10T00:00:00Z",
		"toDate":      "2026-03-12T00:00:00Z",
	}, "emp-001")

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.LeaveRequestResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("req-001", resp.RequestID)
	suite.Equal(string(domain.StatusPending), resp.Status)
	suite.mockSvc.AssertExpectations(suite.T())
}

func (suite *LeaveRequestHandlerTestSuite) TestSubmitLeaveRequest_Unauthorized() {
	w := suite.doJSON(http.MethodPost, "/api/v1/leave-requests", gin.H{
		"employeeID":  "emp-001",
		"leaveTypeID": "lt-annual",
		"fromDate":    "2026-03-10T00:00:00Z",
		"toDate":      "2026-03-12T00:00:00Z",
	}, "")

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockSvc.AssertNotCalled(suite.T(), "SubmitLeaveRequest", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LeaveRequestHandlerTestSuite) TestSubmitLeaveRequest_MissingFields() {
	w := suite.doJSON(http.MethodPost, "/api/v1/leave-requests", gin.H{
		"employeeID": "emp-001",
	}, "emp-001")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockSvc.AssertNotCalled(suite.T(), "SubmitLeaveRequest", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LeaveRequestHandlerTestSuite) TestGetLeaveRequest_NotFound() {
	suite.mockSvc.On("GetLeaveRequest", mock.Anything, "req-missing").
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doJSON(http.MethodGet, "/api/v1/leave-requests/req-missing", nil, "emp-001")

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *LeaveRequestHandlerTestSuite) TestApprove_RecordsDecision() {
	suite.mockSvc.On("ManagerApprove", mock.Anything, "req-001", domain.RoleDepartmentHead, "mgr-001", "covered").
		Return(suite.sampleRequest(), nil).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/leave-requests/req-001/approve", gin.H{
		"role":          domain.RoleDepartmentHead,
		"justification": "covered",
	}, "mgr-001")

	suite.Equal(http.StatusOK, w.Code)
	suite.mockSvc.AssertExpectations(suite.T())
}

func (suite *LeaveRequestHandlerTestSuite) TestFinalize_GateFailureMapsToBadRequest() {
	suite.mockSvc.On("FinalizeLeaveRequest", mock.Anything, "req-001", "hr-001", domain.StatusApproved).
		Return(nil, apperrors.ErrValidation).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/leave-requests/req-001/finalize", gin.H{
		"finalStatus": "APPROVED",
	}, "hr-001")

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *LeaveRequestHandlerTestSuite) TestBulkProcess_ReportsCounts() {
	suite.mockSvc.On("BulkProcess", mock.Anything,
		mock.MatchedBy(func(req dto.BulkProcessRequest) bool {
			return req.Action == dto.BulkActionApprove && len(req.RequestIDs) == 2
		}), "hr-001").
		Return(&dto.BulkProcessResult{Processed: 1, Failed: 1}, nil).Once()

	w := suite.doJSON(http.MethodPost, "/api/v1/leave-requests/bulk", gin.H{
		"requestIDs": []string{"req-001", "req-002"},
		"action":     "approve",
	}, "hr-001")

	suite.Equal(http.StatusOK, w.Code)
	var result dto.BulkProcessResult
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &result))
	suite.Equal(1, result.Processed)
	suite.Equal(1, result.Failed)
}

func (suite *LeaveRequestHandlerTestSuite) TestBulkProcess_RejectsUnknownAction() {
	w := suite.doJSON(http.MethodPost, "/api/v1/leave-requests/bulk", gin.H{
		"requestIDs": []string{"req-001"},
		"action":     "archive",
	}, "hr-001")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockSvc.AssertNotCalled(suite.T(), "BulkProcess", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LeaveRequestHandlerTestSuite) TestModify_ConflictMapsTo409() {
	five := decimal.NewFromInt(5)
	suite.mockSvc.On("ModifyLeaveRequest", mock.Anything, "req-001",
		mock.MatchedBy(func(req dto.ModifyLeaveRequestRequest) bool {
			return req.DurationDays != nil && req.DurationDays.Equal(five)
		}), "emp-001").
		Return(nil, apperrors.ErrConflict).Once()

	w := suite.doJSON(http.MethodPatch, "/api/v1/leave-requests/req-001", gin.H{
		"durationDays": "5",
	}, "emp-001")

	suite.Equal(http.StatusConflict, w.Code)
}
