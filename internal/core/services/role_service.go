package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/staffdeck/payroll_hr_app/internal/apperrors"
	"github.com/staffdeck/payroll_hr_app/internal/core/domain"
	portsrepo "github.com/staffdeck/payroll_hr_app/internal/core/ports/repositories"
	ports "github.com/staffdeck/payroll_hr_app/internal/core/ports/services"
	"github.com/staffdeck/payroll_hr_app/internal/dto"
)

type roleService struct {
	roleRepo       portsrepo.RoleRepositoryFacade
	userRepo       portsrepo.UserRepositoryFacade
	permissionRepo portsrepo.PermissionRepositoryFacade
}

// NewRoleService creates a new role service.
func NewRoleService(roleRepo portsrepo.RoleRepositoryFacade, userRepo portsrepo.UserRepositoryFacade, permissionRepo portsrepo.PermissionRepositoryFacade) ports.RoleSvcFacade {
	return &roleService{
		roleRepo:       roleRepo,
		userRepo:       userRepo,
		permissionRepo: permissionRepo,
	}
}

var _ ports.RoleSvcFacade = (*roleService)(nil)

func (s *roleService) GetRoleByID(ctx context.Context, roleID string) (*domain.Role, error) {
	role, err := s.roleRepo.FindRoleByID(ctx, roleID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("role not found")
		}
		return nil, err
	}
	return role, nil
}

func (s *roleService) GetRoleForUser(ctx context.Context, userID string) (*domain.Role, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("user not found")
		}
		return nil, err
	}
	return s.GetRoleByID(ctx, user.RoleID)
}

func (s *roleService) ListRoles(ctx context.Context, params dto.ListParams) ([]domain.Role, int64, error) {
	return s.roleRepo.FindRoles(ctx, params.Limit, params.Offset(), params.Search)
}

// resolveGrants verifies that every permission ID exists.
func (s *roleService) resolveGrants(ctx context.Context, permissionIDs []string) error {
	for _, permissionID := range permissionIDs {
		if _, err := s.permissionRepo.FindPermissionByID(ctx, permissionID); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return apperrors.NewBadRequestError(fmt.Sprintf("permission %s not found", permissionID))
			}
			return err
		}
	}
	return nil
}

func (s *roleService) CreateRole(ctx context.Context, req dto.CreateRoleRequest, creatorUserID string) (*domain.Role, error) {
	if err := s.resolveGrants(ctx, req.PermissionIDs); err != nil {
		return nil, err
	}

	now := time.Now()
	role := domain.Role{
		RoleID:   uuid.NewString(),
		Name:     req.Name,
		IsActive: true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.roleRepo.SaveRole(ctx, role, req.PermissionIDs); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewConflictError("a role with this name already exists")
		}
		return nil, err
	}
	return s.GetRoleByID(ctx, role.RoleID)
}

func (s *roleService) UpdateRole(ctx context.Context, roleID string, req dto.UpdateRoleRequest, requestingUserID string) (*domain.Role, error) {
	role, err := s.GetRoleByID(ctx, roleID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		role.Name = *req.Name
	}

	permissionIDs := make([]string, 0, len(role.Permissions))
	for _, p := range role.Permissions {
		permissionIDs = append(permissionIDs, p.PermissionID)
	}
	if req.PermissionIDs != nil {
		if err := s.resolveGrants(ctx, *req.PermissionIDs); err != nil {
			return nil, err
		}
		permissionIDs = *req.PermissionIDs
	}

	role.LastUpdatedAt = time.Now()
	role.LastUpdatedBy = requestingUserID

	if err := s.roleRepo.UpdateRole(ctx, *role, permissionIDs); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewConflictError("a role with this name already exists")
		}
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("role not found")
		}
		return nil, err
	}
	return s.GetRoleByID(ctx, roleID)
}

func (s *roleService) SetRoleActive(ctx context.Context, roleID string, active bool, requestingUserID string) (*domain.Role, error) {
	role, err := s.GetRoleByID(ctx, roleID)
	if err != nil {
		return nil, err
	}

	if !active {
		count, err := s.userRepo.CountActiveUsersWithRole(ctx, roleID)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, apperrors.NewResourceInUseError(fmt.Sprintf("role is assigned to %d active user(s)", count))
		}
	}

	now := time.Now()
	if err := s.roleRepo.SetRoleActive(ctx, roleID, active, now, requestingUserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("role not found")
		}
		return nil, err
	}

	role.IsActive = active
	role.LastUpdatedAt = now
	role.LastUpdatedBy = requestingUserID
	return role, nil
}

func (s *roleService) DeleteRole(ctx context.Context, roleID string, requestingUserID string) error {
	count, err := s.userRepo.CountActiveUsersWithRole(ctx, roleID)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperrors.NewResourceInUseError(fmt.Sprintf("role is assigned to %d active user(s)", count))
	}

	if err := s.roleRepo.MarkRoleDeleted(ctx, roleID, time.Now(), requestingUserID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("role not found")
		}
		return err
	}
	return nil
}
