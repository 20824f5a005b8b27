package services

import (
	"context"

	"github.com/staffdeck/payroll_hr_app/internal/core/domain"
	"github.com/staffdeck/payroll_hr_app/internal/dto"
)

// PermissionReaderSvc defines read operations for permission data
type PermissionReaderSvc interface {
	// GetPermissionByID retrieves a permission by ID.
	GetPermissionByID(ctx context.Context, permissionID string) (*domain.Permission, error)

	// ListPermissions retrieves a page of permissions with the total match count.
	ListPermissions(ctx context.Context, params dto.ListParams) ([]domain.Permission, int64, error)
}

// PermissionWriterSvc defines write operations for permission data
type PermissionWriterSvc interface {
	// CreatePermission creates a new permission.
	CreatePermission(ctx context.Context, req dto.CreatePermissionRequest, creatorUserID string) (*domain.Permission, error)

	// UpdatePermission updates an existing permission.
	UpdatePermission(ctx context.Context, permissionID string, req dto.UpdatePermissionRequest, requestingUserID string) (*domain.Permission, error)

	// DeletePermission removes a permission. Rejected while roles still grant
	// it, reporting the blocking reference count.
	DeletePermission(ctx context.Context, permissionID string, requestingUserID string) error
}

// PermissionSvcFacade combines all permission-related service interfaces
type PermissionSvcFacade interface {
	PermissionReaderSvc
	PermissionWriterSvc
}
