package models

import "time"

// Role is the roles table row. Grants live in role_permissions.
type Role struct {
	RoleID   string `db:"role_id"`
	Name     string `db:"name"`
	IsActive bool   `db:"is_active"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
