package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/staffdeck/payroll_hr_app/internal/apperrors"
	"github.com/staffdeck/payroll_hr_app/internal/core/domain"
	portssvc "github.com/staffdeck/payroll_hr_app/internal/core/ports/services"
	"github.com/staffdeck/payroll_hr_app/internal/core/services"
	"github.com/staffdeck/payroll_hr_app/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock PermissionRepository ---
type MockPermissionRepository struct {
	mock.Mock
}

func (m *MockPermissionRepository) FindPermissionByID(ctx context.Context, permissionID string) (*domain.Permission, error) {
	args := m.Called(ctx, permissionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Permission), args.Error(1)
}

func (m *MockPermissionRepository) FindPermissionByName(ctx context.Context, name string) (*domain.Permission, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Permission), args.Error(1)
}

func (m *MockPermissionRepository) FindPermissions(ctx context.Context, limit, offset int, search string) ([]domain.Permission, int64, error) {
	args := m.Called(ctx, limit, offset, search)
	var perms []domain.Permission
	if args.Get(0) != nil {
		perms = args.Get(0).([]domain.Permission)
	}
	return perms, args.Get(1).(int64), args.Error(2)
}

func (m *MockPermissionRepository) SavePermission(ctx context.Context, permission domain.Permission) error {
	args := m.Called(ctx, permission)
	return args.Error(0)
}

func (m *MockPermissionRepository) UpdatePermission(ctx context.Context, permission domain.Permission) error {
	args := m.Called(ctx, permission)
	return args.Error(0)
}

func (m *MockPermissionRepository) DeletePermission(ctx context.Context, permissionID string) error {
	args := m.Called(ctx, permissionID)
	return args.Error(0)
}

// --- Test Suite ---
type RoleServiceTestSuite struct {
	suite.Suite
	mockRoleRepo *MockRoleRepository
	mockUserRepo *MockUserRepository
	mockPermRepo *MockPermissionRepository
	service      portssvc.RoleSvcFacade
}

func (suite *RoleServiceTestSuite) SetupTest() {
	suite.mockRoleRepo = new(MockRoleRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockPermRepo = new(MockPermissionRepository)
	suite.service = services.NewRoleService(suite.mockRoleRepo, suite.mockUserRepo, suite.mockPermRepo)
}

// --- CreateRole Tests ---

func (suite *RoleServiceTestSuite) TestCreateRole_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	permissionID := uuid.NewString()
	req := dto.CreateRoleRequest{Name: "supervisor", PermissionIDs: []string{permissionID}}

	saved := &domain.Role{
		Name:        "supervisor",
		IsActive:    true,
		Permissions: []domain.Permission{{PermissionID: permissionID, Name: "payrolls.read"}},
	}

	suite.mockPermRepo.On("FindPermissionByID", ctx, permissionID).Return(&domain.Permission{PermissionID: permissionID}, nil).Once()
	suite.mockRoleRepo.On("SaveRole", ctx, mock.MatchedBy(func(role domain.Role) bool {
		return role.Name == "supervisor" && role.IsActive && role.CreatedBy == creatorUserID
	}), []string{permissionID}).Return(nil).Once()
	// The role is reloaded so the response carries its expanded grants.
	suite.mockRoleRepo.On("FindRoleByID", ctx, mock.AnythingOfType("string")).Return(saved, nil).Once()

	role, err := suite.service.CreateRole(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Equal("supervisor", role.Name)
	suite.Len(role.Permissions, 1)
	suite.mockRoleRepo.AssertExpectations(suite.T())
	suite.mockPermRepo.AssertExpectations(suite.T())
}

func (suite *RoleServiceTestSuite) TestCreateRole_UnknownPermission() {
	ctx := context.Background()
	permissionID := uuid.NewString()
	req := dto.CreateRoleRequest{Name: "supervisor", PermissionIDs: []string{permissionID}}

	suite.mockPermRepo.On("FindPermissionByID", ctx, permissionID).Return(nil, apperrors.ErrNotFound).Once()

	role, err := suite.service.CreateRole(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(role)
	appErr, ok := apperrors.AsAppError(err)
	suite.Require().True(ok)
	suite.Equal(apperrors.CodeValidationFailed, appErr.Code)
	suite.Contains(appErr.Message, permissionID)
	suite.mockRoleRepo.AssertNotCalled(suite.T(), "SaveRole", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RoleServiceTestSuite) TestCreateRole_DuplicateName() {
	ctx := context.Background()
	req := dto.CreateRoleRequest{Name: "admin"}

	suite.mockRoleRepo.On("SaveRole", ctx, mock.AnythingOfType("domain.Role"), []string(nil)).Return(apperrors.ErrDuplicate).Once()

	role, err := suite.service.CreateRole(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(role)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

// --- UpdateRole Tests ---

func (suite *RoleServiceTestSuite) TestUpdateRole_NilGrantsKeepExisting() {
	ctx := context.Background()
	roleID := uuid.NewString()
	permissionID := uuid.NewString()
	newName := "team lead"
	existing := &domain.Role{
		RoleID:      roleID,
		Name:        "lead",
		IsActive:    true,
		Permissions: []domain.Permission{{PermissionID: permissionID, Name: "users.read"}},
	}

	suite.mockRoleRepo.On("FindRoleByID", ctx, roleID).Return(existing, nil).Twice()
	// Omitted PermissionIDs must re-apply the current grant set unchanged.
	suite.mockRoleRepo.On("UpdateRole", ctx, mock.MatchedBy(func(role domain.Role) bool {
		return role.Name == newName
	}), []string{permissionID}).Return(nil).Once()

	role, err := suite.service.UpdateRole(ctx, roleID, dto.UpdateRoleRequest{Name: &newName}, uuid.NewString())

	suite.Require().NoError(err)
	suite.Require().NotNil(role)
	suite.mockRoleRepo.AssertExpectations(suite.T())
	suite.mockPermRepo.AssertNotCalled(suite.T(), "FindPermissionByID", mock.Anything, mock.Anything)
}

func (suite *RoleServiceTestSuite) TestUpdateRole_ReplacesGrants() {
	ctx := context.Background()
	roleID := uuid.NewString()
	oldPermID := uuid.NewString()
	newPermID := uuid.NewString()
	existing := &domain.Role{
		RoleID:      roleID,
		Name:        "lead",
		IsActive:    true,
		Permissions: []domain.Permission{{PermissionID: oldPermID}},
	}
	newGrants := []string{newPermID}

	suite.mockRoleRepo.On("FindRoleByID", ctx, roleID).Return(existing, nil).Twice()
	suite.mockPermRepo.On("FindPermissionByID", ctx, newPermID).Return(&domain.Permission{PermissionID: newPermID}, nil).Once()
	suite.mockRoleRepo.On("UpdateRole", ctx, mock.AnythingOfType("domain.Role"), newGrants).Return(nil).Once()

	_, err := suite.service.UpdateRole(ctx, roleID, dto.UpdateRoleRequest{PermissionIDs: &newGrants}, uuid.NewString())

	suite.Require().NoError(err)
	suite.mockRoleRepo.AssertExpectations(suite.T())
	suite.mockPermRepo.AssertExpectations(suite.T())
}

// --- SetRoleActive / DeleteRole Tests ---

func (suite *RoleServiceTestSuite) TestSetRoleActive_DeactivateBlockedWhileAssigned() {
	ctx := context.Background()
	roleID := uuid.NewString()
	existing := &domain.Role{RoleID: roleID, Name: "staff", IsActive: true}

	suite.mockRoleRepo.On("FindRoleByID", ctx, roleID).Return(existing, nil).Once()
	suite.mockUserRepo.On("CountActiveUsersWithRole", ctx, roleID).Return(int64(4), nil).Once()

	role, err := suite.service.SetRoleActive(ctx, roleID, false, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(role)
	appErr, ok := apperrors.AsAppError(err)
	suite.Require().True(ok)
	suite.Equal(apperrors.CodeResourceInUse, appErr.Code)
	suite.Equal("role is assigned to 4 active user(s)", appErr.Message)
	suite.mockRoleRepo.AssertNotCalled(suite.T(), "SetRoleActive", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RoleServiceTestSuite) TestSetRoleActive_ReactivateSkipsGuard() {
	ctx := context.Background()
	roleID := uuid.NewString()
	requestingUserID := uuid.NewString()
	existing := &domain.Role{RoleID: roleID, Name: "staff", IsActive: false}

	suite.mockRoleRepo.On("FindRoleByID", ctx, roleID).Return(existing, nil).Once()
	suite.mockRoleRepo.On("SetRoleActive", ctx, roleID, true, mock.AnythingOfType("time.Time"), requestingUserID).Return(nil).Once()

	role, err := suite.service.SetRoleActive(ctx, roleID, true, requestingUserID)

	suite.Require().NoError(err)
	suite.True(role.IsActive)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "CountActiveUsersWithRole", mock.Anything, mock.Anything)
}

func (suite *RoleServiceTestSuite) TestDeleteRole_BlockedWhileAssigned() {
	ctx := context.Background()
	roleID := uuid.NewString()

	suite.mockUserRepo.On("CountActiveUsersWithRole", ctx, roleID).Return(int64(1), nil).Once()

	err := suite.service.DeleteRole(ctx, roleID, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrResourceInUse)
	suite.mockRoleRepo.AssertNotCalled(suite.T(), "MarkRoleDeleted", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *RoleServiceTestSuite) TestDeleteRole_Success() {
	ctx := context.Background()
	roleID := uuid.NewString()
	requestingUserID := uuid.NewString()

	suite.mockUserRepo.On("CountActiveUsersWithRole", ctx, roleID).Return(int64(0), nil).Once()
	suite.mockRoleRepo.On("MarkRoleDeleted", ctx, roleID, mock.AnythingOfType("time.Time"), requestingUserID).Return(nil).Once()

	err := suite.service.DeleteRole(ctx, roleID, requestingUserID)

	suite.Require().NoError(err)
	suite.mockRoleRepo.AssertExpectations(suite.T())
}

// --- GetRoleForUser Tests ---

func (suite *RoleServiceTestSuite) TestGetRoleForUser_LoadsFreshRole() {
	ctx := context.Background()
	userID := uuid.NewString()
	roleID := uuid.NewString()
	user := &domain.User{UserID: userID, RoleID: roleID}
	role := &domain.Role{RoleID: roleID, Name: "admin", IsActive: true}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(user, nil).Once()
	suite.mockRoleRepo.On("FindRoleByID", ctx, roleID).Return(role, nil).Once()

	got, err := suite.service.GetRoleForUser(ctx, userID)

	suite.Require().NoError(err)
	suite.Equal("admin", got.Name)
	suite.mockUserRepo.AssertExpectations(suite.T())
	suite.mockRoleRepo.AssertExpectations(suite.T())
}

func (suite *RoleServiceTestSuite) TestGetRoleForUser_UserNotFound() {
	ctx := context.Background()
	userID := uuid.NewString()

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(nil, apperrors.ErrNotFound).Once()

	got, err := suite.service.GetRoleForUser(ctx, userID)

	suite.Require().Error(err)
	suite.Nil(got)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestRoleService(t *testing.T) {
	suite.Run(t, new(RoleServiceTestSuite))
}
