package services

import (
	"context"

	"github.com/staffdeck/payroll_hr_app/internal/core/domain"
	"github.com/staffdeck/payroll_hr_app/internal/dto"
)

// RoleReaderSvc defines read operations for role data
type RoleReaderSvc interface {
	// GetRoleByID retrieves a role with its permission grants.
	GetRoleByID(ctx context.Context, roleID string) (*domain.Role, error)

	// GetRoleForUser loads the role currently assigned to a user, fresh from
	// storage. Used by the role gate, which must not trust cached context.
	GetRoleForUser(ctx context.Context, userID string) (*domain.Role, error)

	// ListRoles retrieves a page of roles with the total match count.
	ListRoles(ctx context.Context, params dto.ListParams) ([]domain.Role, int64, error)
}

// RoleWriterSvc defines write operations for role data
type RoleWriterSvc interface {
	// CreateRole creates a role with the given permission grants.
	CreateRole(ctx context.Context, req dto.CreateRoleRequest, creatorUserID string) (*domain.Role, error)

	// UpdateRole updates a role; a supplied grant list replaces the old one.
	UpdateRole(ctx context.Context, roleID string, req dto.UpdateRoleRequest, requestingUserID string) (*domain.Role, error)

	// SetRoleActive toggles the role's active flag. Deactivation is rejected
	// while active users still hold the role.
	SetRoleActive(ctx context.Context, roleID string, active bool, requestingUserID string) (*domain.Role, error)
}

// RoleLifecycleSvc defines operations for managing role lifecycle
type RoleLifecycleSvc interface {
	// DeleteRole soft-deletes a role. Rejected while active users still hold
	// the role, reporting the blocking reference count.
	DeleteRole(ctx context.Context, roleID string, requestingUserID string) error
}

// RoleSvcFacade combines all role-related service interfaces
type RoleSvcFacade interface {
	RoleReaderSvc
	RoleWriterSvc
	RoleLifecycleSvc
}
