package domain

import "time"

// Role is a named bundle of permissions assignable to users.
// Permissions is populated by the repository when the role is loaded with
// its grants; order is irrelevant.
type Role struct {
	RoleID      string       `json:"roleID"`
	Name        string       `json:"name"` // unique
	IsActive    bool         `json:"isActive"`
	Permissions []Permission `json:"permissions,omitempty"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

// PermissionNames returns the deduplicated set of permission names granted
// by the role.
func (r *Role) PermissionNames() map[string]struct{} {
	names := make(map[string]struct{}, len(r.Permissions))
	for _, p := range r.Permissions {
		names[p.Name] = struct{}{}
	}
	return names
}

// HasPermission reports whether the role grants the named permission.
func (r *Role) HasPermission(name string) bool {
	for _, p := range r.Permissions {
		if p.Name == name {
			return true
		}
	}
	return false
}
