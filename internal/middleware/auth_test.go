package middleware_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/staffdeck/payroll_hr_app/internal/apperrors"
	"github.com/staffdeck/payroll_hr_app/internal/core/domain"
	"github.com/staffdeck/payroll_hr_app/internal/dto"
	"github.com/staffdeck/payroll_hr_app/internal/middleware"
	"github.com/staffdeck/payroll_hr_app/internal/utils"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

const testJWTSecret = "unit-test-secret"

// --- Mock UserReaderSvc ---
type MockUserReaderSvc struct {
	mock.Mock
}

func (m *MockUserReaderSvc) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserReaderSvc) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserReaderSvc) ListUsers(ctx context.Context, params dto.ListParams) ([]domain.User, int64, error) {
	args := m.Called(ctx, params)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Get(1).(int64), args.Error(2)
}

// --- Mock RoleReaderSvc ---
type MockRoleReaderSvc struct {
	mock.Mock
}

func (m *MockRoleReaderSvc) GetRoleByID(ctx context.Context, roleID string) (*domain.Role, error) {
	args := m.Called(ctx, roleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Role), args.Error(1)
}

func (m *MockRoleReaderSvc) GetRoleForUser(ctx context.Context, userID string) (*domain.Role, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Role), args.Error(1)
}

func (m *MockRoleReaderSvc) ListRoles(ctx context.Context, params dto.ListParams) ([]domain.Role, int64, error) {
	args := m.Called(ctx, params)
	var roles []domain.Role
	if args.Get(0) != nil {
		roles = args.Get(0).([]domain.Role)
	}
	return roles, args.Get(1).(int64), args.Error(2)
}

// envelope mirrors dto.Response with concrete error typing for assertions.
type envelope struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Errors  map[string]any `json:"errors"`
}

// --- Test Suite ---
type AuthMiddlewareTestSuite struct {
	suite.Suite
	mockUsers *MockUserReaderSvc
	mockRoles *MockRoleReaderSvc
	router    *gin.Engine
}

func (suite *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockUsers = new(MockUserReaderSvc)
	suite.mockRoles = new(MockRoleReaderSvc)

	suite.router = gin.New()
	suite.router.Use(middleware.AuthMiddleware(testJWTSecret, suite.mockUsers, suite.mockRoles))
	suite.router.GET("/protected", func(c *gin.Context) {
		userID, _ := middleware.GetUserIDFromContext(c)
		permissions, _ := middleware.GetPermissionsFromContext(c)
		names := make([]string, 0, len(permissions))
		for name := range permissions {
			names = append(names, name)
		}
		c.JSON(http.StatusOK, gin.H{"userID": userID, "permissionCount": len(names)})
	})
}

func (suite *AuthMiddlewareTestSuite) request(authHeader string) (*httptest.ResponseRecorder, envelope) {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	var body envelope
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func (suite *AuthMiddlewareTestSuite) signToken(userID string, expiry time.Duration) string {
	token, err := utils.GenerateJWT(userID, "someone@example.com", uuid.NewString(), testJWTSecret, expiry, "test")
	suite.Require().NoError(err)
	return token
}

func (suite *AuthMiddlewareTestSuite) TestMissingHeader() {
	w, body := suite.request("")

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.False(body.Success)
	suite.Equal(apperrors.CodeNoToken, body.Errors["code"])
}

func (suite *AuthMiddlewareTestSuite) TestMalformedHeader() {
	for _, header := range []string{"Token abc", "Bearer", "Bearer "} {
		w, body := suite.request(header)

		suite.Equal(http.StatusUnauthorized, w.Code, "header %q", header)
		suite.Equal(apperrors.CodeMalformedToken, body.Errors["code"], "header %q", header)
	}
}

func (suite *AuthMiddlewareTestSuite) TestExpiredToken() {
	token := suite.signToken(uuid.NewString(), -time.Hour)

	w, body := suite.request("Bearer " + token)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Equal(apperrors.CodeTokenExpired, body.Errors["code"])
}

func (suite *AuthMiddlewareTestSuite) TestGarbageToken() {
	w, body := suite.request("Bearer not.a.jwt")

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Equal(apperrors.CodeInvalidToken, body.Errors["code"])
}

func (suite *AuthMiddlewareTestSuite) TestTokenSignedWithWrongSecret() {
	token, err := utils.GenerateJWT(uuid.NewString(), "x@example.com", uuid.NewString(), "some-other-secret", time.Hour, "test")
	suite.Require().NoError(err)

	w, body := suite.request("Bearer " + token)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Equal(apperrors.CodeInvalidToken, body.Errors["code"])
}

func (suite *AuthMiddlewareTestSuite) TestUserNoLongerExists() {
	userID := uuid.NewString()
	token := suite.signToken(userID, time.Hour)

	suite.mockUsers.On("GetUserByID", mock.Anything, userID).Return(nil, apperrors.NewNotFoundError("user not found")).Once()

	w, body := suite.request("Bearer " + token)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Equal(apperrors.CodeUserNotFound, body.Errors["code"])
	suite.mockUsers.AssertExpectations(suite.T())
}

func (suite *AuthMiddlewareTestSuite) TestDeactivatedUser() {
	userID := uuid.NewString()
	token := suite.signToken(userID, time.Hour)

	suite.mockUsers.On("GetUserByID", mock.Anything, userID).Return(&domain.User{UserID: userID, IsActive: false}, nil).Once()

	w, body := suite.request("Bearer " + token)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.Equal(apperrors.CodeUserDeactivated, body.Errors["code"])
}

func (suite *AuthMiddlewareTestSuite) TestActiveUserWithActiveRole() {
	userID := uuid.NewString()
	roleID := uuid.NewString()
	token := suite.signToken(userID, time.Hour)
	role := &domain.Role{
		RoleID:   roleID,
		Name:     "staff",
		IsActive: true,
		Permissions: []domain.Permission{
			{PermissionID: uuid.NewString(), Name: "users.read"},
			{PermissionID: uuid.NewString(), Name: "payrolls.read"},
		},
	}

	suite.mockUsers.On("GetUserByID", mock.Anything, userID).Return(&domain.User{UserID: userID, RoleID: roleID, IsActive: true}, nil).Once()
	suite.mockRoles.On("GetRoleByID", mock.Anything, roleID).Return(role, nil).Once()

	w, _ := suite.request("Bearer " + token)

	suite.Equal(http.StatusOK, w.Code)
	var payload struct {
		UserID          string `json:"userID"`
		PermissionCount int    `json:"permissionCount"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &payload))
	suite.Equal(userID, payload.UserID)
	suite.Equal(2, payload.PermissionCount)
}

func (suite *AuthMiddlewareTestSuite) TestInactiveRoleGrantsNothing() {
	userID := uuid.NewString()
	roleID := uuid.NewString()
	token := suite.signToken(userID, time.Hour)
	role := &domain.Role{
		RoleID:      roleID,
		Name:        "retired",
		IsActive:    false,
		Permissions: []domain.Permission{{PermissionID: uuid.NewString(), Name: "users.read"}},
	}

	suite.mockUsers.On("GetUserByID", mock.Anything, userID).Return(&domain.User{UserID: userID, RoleID: roleID, IsActive: true}, nil).Once()
	suite.mockRoles.On("GetRoleByID", mock.Anything, roleID).Return(role, nil).Once()

	w, _ := suite.request("Bearer " + token)

	// The request still authenticates; the dead role just grants nothing.
	suite.Equal(http.StatusOK, w.Code)
	var payload struct {
		PermissionCount int `json:"permissionCount"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &payload))
	suite.Zero(payload.PermissionCount)
}

func (suite *AuthMiddlewareTestSuite) TestDeletedRoleGrantsNothing() {
	userID := uuid.NewString()
	roleID := uuid.NewString()
	token := suite.signToken(userID, time.Hour)

	suite.mockUsers.On("GetUserByID", mock.Anything, userID).Return(&domain.User{UserID: userID, RoleID: roleID, IsActive: true}, nil).Once()
	suite.mockRoles.On("GetRoleByID", mock.Anything, roleID).Return(nil, apperrors.NewNotFoundError("role not found")).Once()

	w, _ := suite.request("Bearer " + token)

	suite.Equal(http.StatusOK, w.Code)
	var payload struct {
		PermissionCount int `json:"permissionCount"`
	}
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &payload))
	suite.Zero(payload.PermissionCount)
}

func (suite *AuthMiddlewareTestSuite) TestRoleLoadFailureIsNotADenial() {
	userID := uuid.NewString()
	roleID := uuid.NewString()
	token := suite.signToken(userID, time.Hour)

	suite.mockUsers.On("GetUserByID", mock.Anything, userID).Return(&domain.User{UserID: userID, RoleID: roleID, IsActive: true}, nil).Once()
	suite.mockRoles.On("GetRoleByID", mock.Anything, roleID).Return(nil, errors.New("connection reset by peer")).Once()

	w, body := suite.request("Bearer " + token)

	// A storage fault must surface as a server error, not as 403.
	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Equal(apperrors.CodeInternalError, body.Errors["code"])
}

func TestAuthMiddleware(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}
