package repositories

import (
	"context"
	"time"

	"github.com/staffdeck/payroll_hr_app/internal/core/domain"
)

// RoleReader defines read operations for role data
type RoleReader interface {
	// FindRoleByID retrieves a role with its permission grants populated.
	FindRoleByID(ctx context.Context, roleID string) (*domain.Role, error)

	// FindRoleByName retrieves a role by its unique name.
	FindRoleByName(ctx context.Context, name string) (*domain.Role, error)

	// FindRoles retrieves a page of roles (grants populated) with an optional
	// free-text search over the name, plus the total match count.
	FindRoles(ctx context.Context, limit, offset int, search string) ([]domain.Role, int64, error)

	// CountRolesWithPermission counts non-deleted roles granting a permission.
	CountRolesWithPermission(ctx context.Context, permissionID string) (int64, error)
}

// RoleWriter defines write operations for role data
type RoleWriter interface {
	// SaveRole persists a new role and its permission grants.
	SaveRole(ctx context.Context, role domain.Role, permissionIDs []string) error

	// UpdateRole updates a role and replaces its permission grants.
	UpdateRole(ctx context.Context, role domain.Role, permissionIDs []string) error

	// SetRoleActive toggles the role's active flag.
	SetRoleActive(ctx context.Context, roleID string, active bool, updatedAt time.Time, updatedBy string) error
}

// RoleLifecycleManager defines operations for managing role lifecycle
type RoleLifecycleManager interface {
	// MarkRoleDeleted marks a role as deleted (soft delete).
	MarkRoleDeleted(ctx context.Context, roleID string, deletedAt time.Time, deletedBy string) error
}

// RoleRepositoryFacade combines all role-related repository interfaces
type RoleRepositoryFacade interface {
	RoleReader
	RoleWriter
	RoleLifecycleManager
}
