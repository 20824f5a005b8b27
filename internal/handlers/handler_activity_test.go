package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/staffdeck/payroll_hr_app/internal/apperrors"
	"github.com/staffdeck/payroll_hr_app/internal/core/domain"
	"github.com/staffdeck/payroll_hr_app/internal/dto"
	"github.com/staffdeck/payroll_hr_app/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type ActivityHandlerTestSuite struct {
	suite.Suite
	router *gin.Engine
	mocks  *testMocks
	userID string
	roleID string
}

func (suite *ActivityHandlerTestSuite) SetupTest() {
	suite.router, suite.mocks = newTestRouter()
	suite.userID = uuid.NewString()
	suite.roleID = uuid.NewString()
}

// authenticateAs primes the auth mocks for a caller carrying the named role
// and the given permissions.
func (suite *ActivityHandlerTestSuite) authenticateAs(roleName string, permissions ...string) string {
	grants := make([]domain.Permission, len(permissions))
	for i, name := range permissions {
		grants[i] = domain.Permission{PermissionID: uuid.NewString(), Name: name}
	}
	role := &domain.Role{RoleID: suite.roleID, Name: roleName, IsActive: true, Permissions: grants}

	suite.mocks.User.On("GetUserByID", mock.Anything, suite.userID).
		Return(&domain.User{UserID: suite.userID, Name: "Auditor", Email: "auditor@example.com", RoleID: suite.roleID, IsActive: true}, nil)
	suite.mocks.Role.On("GetRoleByID", mock.Anything, suite.roleID).Return(role, nil)
	suite.mocks.Role.On("GetRoleForUser", mock.Anything, suite.userID).Return(role, nil)

	token, err := utils.GenerateJWT(suite.userID, "auditor@example.com", suite.roleID, testJWTSecret, time.Hour, "test")
	suite.Require().NoError(err)
	return token
}

func (suite *ActivityHandlerTestSuite) do(method, path, token string, payload any) *httptest.ResponseRecorder {
	req := jsonRequest(method, path, payload)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *ActivityHandlerTestSuite) TestListActivityLogs_Success() {
	token := suite.authenticateAs("auditor", "activity_logs.read")
	entries := []domain.ActivityLog{
		{LogID: uuid.NewString(), Action: "login", Resource: "auth", CreatedAt: time.Now()},
		{LogID: uuid.NewString(), Action: "delete", Resource: "users", CreatedAt: time.Now()},
	}

	suite.mocks.Activity.On("ListActivityLogs", mock.Anything, dto.ListParams{Page: 1, Limit: 20}).
		Return(entries, int64(2), nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/activity-logs", token, nil)

	suite.Equal(http.StatusOK, w.Code)
	body := decodeEnvelope(&suite.Suite, w)
	var payload struct {
		Items []dto.ActivityLogResponse `json:"items"`
		Total int64                     `json:"total"`
	}
	suite.Require().NoError(json.Unmarshal(body.Data, &payload))
	suite.Len(payload.Items, 2)
	suite.Equal(int64(2), payload.Total)
}

func (suite *ActivityHandlerTestSuite) TestPurge_AdminSucceeds() {
	token := suite.authenticateAs("admin", "activity_logs.manage")

	suite.mocks.Activity.On("PurgeActivityLogs", mock.Anything, 90, suite.userID).
		Return(int64(41), nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/activity-logs/purge", token,
		dto.PurgeActivityLogsRequest{OlderThanDays: 90})

	suite.Equal(http.StatusOK, w.Code)
	body := decodeEnvelope(&suite.Suite, w)
	var payload dto.PurgeActivityLogsResponse
	suite.Require().NoError(json.Unmarshal(body.Data, &payload))
	suite.Equal(int64(41), payload.Purged)
	suite.mocks.Activity.AssertExpectations(suite.T())
}

func (suite *ActivityHandlerTestSuite) TestPurge_NonAdminRoleRejected() {
	// The permission alone is not enough for the purge route.
	token := suite.authenticateAs("auditor", "activity_logs.manage")

	w := suite.do(http.MethodDelete, "/api/v1/activity-logs/purge", token,
		dto.PurgeActivityLogsRequest{OlderThanDays: 90})

	suite.Equal(http.StatusForbidden, w.Code)
	body := decodeEnvelope(&suite.Suite, w)
	suite.Equal(apperrors.CodeRoleMismatch, body.Errors["code"])
	suite.Equal("admin", body.Errors["requiredRole"])
	suite.mocks.Activity.AssertNotCalled(suite.T(), "PurgeActivityLogs", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ActivityHandlerTestSuite) TestPurge_ZeroDaysRejected() {
	token := suite.authenticateAs("admin", "activity_logs.manage")

	w := suite.do(http.MethodDelete, "/api/v1/activity-logs/purge", token,
		gin.H{"olderThanDays": 0})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mocks.Activity.AssertNotCalled(suite.T(), "PurgeActivityLogs", mock.Anything, mock.Anything, mock.Anything)
}

func TestActivityHandler(t *testing.T) {
	suite.Run(t, new(ActivityHandlerTestSuite))
}
