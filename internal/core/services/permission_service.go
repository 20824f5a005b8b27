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

type permissionService struct {
	permissionRepo portsrepo.PermissionRepositoryFacade
	roleRepo       portsrepo.RoleRepositoryFacade
}

// NewPermissionService creates a new permission service.
func NewPermissionService(permissionRepo portsrepo.PermissionRepositoryFacade, roleRepo portsrepo.RoleRepositoryFacade) ports.PermissionSvcFacade {
	return &permissionService{
		permissionRepo: permissionRepo,
		roleRepo:       roleRepo,
	}
}

var _ ports.PermissionSvcFacade = (*permissionService)(nil)

func (s *permissionService) GetPermissionByID(ctx context.Context, permissionID string) (*domain.Permission, error) {
	permission, err := s.permissionRepo.FindPermissionByID(ctx, permissionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("permission not found")
		}
		return nil, err
	}
	return permission, nil
}

func (s *permissionService) ListPermissions(ctx context.Context, params dto.ListParams) ([]domain.Permission, int64, error) {
	return s.permissionRepo.FindPermissions(ctx, params.Limit, params.Offset(), params.Search)
}

func (s *permissionService) CreatePermission(ctx context.Context, req dto.CreatePermissionRequest, creatorUserID string) (*domain.Permission, error) {
	action := domain.PermissionAction(req.Action)
	if !domain.ValidAction(action) {
		return nil, apperrors.NewBadRequestError("invalid permission action")
	}

	now := time.Now()
	permission := domain.Permission{
		PermissionID: uuid.NewString(),
		Name:         req.Name,
		Module:       req.Module,
		Action:       action,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.permissionRepo.SavePermission(ctx, permission); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewConflictError("a permission with this name already exists")
		}
		return nil, err
	}
	return &permission, nil
}

func (s *permissionService) UpdatePermission(ctx context.Context, permissionID string, req dto.UpdatePermissionRequest, requestingUserID string) (*domain.Permission, error) {
	permission, err := s.GetPermissionByID(ctx, permissionID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		permission.Name = *req.Name
	}
	if req.Module != nil {
		permission.Module = *req.Module
	}
	if req.Action != nil {
		action := domain.PermissionAction(*req.Action)
		if !domain.ValidAction(action) {
			return nil, apperrors.NewBadRequestError("invalid permission action")
		}
		permission.Action = action
	}

	permission.LastUpdatedAt = time.Now()
	permission.LastUpdatedBy = requestingUserID

	if err := s.permissionRepo.UpdatePermission(ctx, *permission); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, apperrors.NewConflictError("a permission with this name already exists")
		}
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("permission not found")
		}
		return nil, err
	}
	return permission, nil
}

func (s *permissionService) DeletePermission(ctx context.Context, permissionID string, requestingUserID string) error {
	if _, err := s.GetPermissionByID(ctx, permissionID); err != nil {
		return err
	}

	count, err := s.roleRepo.CountRolesWithPermission(ctx, permissionID)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperrors.NewResourceInUseError(fmt.Sprintf("permission is granted to %d role(s)", count))
	}

	if err := s.permissionRepo.DeletePermission(ctx, permissionID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError("permission not found")
		}
		return err
	}
	return nil
}
