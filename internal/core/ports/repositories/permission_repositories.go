package repositories

import (
	"context"

	"github.com/staffdeck/payroll_hr_app/internal/core/domain"
)

// PermissionReader defines read operations for permission data
type PermissionReader interface {
	// FindPermissionByID retrieves a specific permission by its ID.
	FindPermissionByID(ctx context.Context, permissionID string) (*domain.Permission, error)

	// FindPermissionByName retrieves a permission by its unique name.
	FindPermissionByName(ctx context.Context, name string) (*domain.Permission, error)

	// FindPermissions retrieves a page of permissions with an optional
	// free-text search over name and module, plus the total match count.
	FindPermissions(ctx context.Context, limit, offset int, search string) ([]domain.Permission, int64, error)
}

// PermissionWriter defines write operations for permission data
type PermissionWriter interface {
	// SavePermission persists a new permission.
	SavePermission(ctx context.Context, permission domain.Permission) error

	// UpdatePermission updates an existing permission.
	UpdatePermission(ctx context.Context, permission domain.Permission) error

	// DeletePermission removes a permission. Referential guards live in the
	// service layer, not here.
	DeletePermission(ctx context.Context, permissionID string) error
}

// PermissionRepositoryFacade combines all permission-related repository interfaces
type PermissionRepositoryFacade interface {
	PermissionReader
	PermissionWriter
}
