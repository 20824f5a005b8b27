package models

// Permission is the permissions table row.
type Permission struct {
	PermissionID string `db:"permission_id"`
	Name         string `db:"name"`
	Module       string `db:"module"`
	Action       string `db:"action"`
	AuditFields
}
