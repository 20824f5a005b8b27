package dto

import "github.com/staffdeck/payroll_hr_app/internal/core/domain"

// CreateRoleRequest defines the payload for creating a role with its grants.
type CreateRoleRequest struct {
	Name          string   `json:"name" binding:"required"`
	PermissionIDs []string `json:"permissionIDs"`
}

// UpdateRoleRequest defines the data allowed for updating a role.
// A non-nil PermissionIDs replaces the grant set wholesale.
type UpdateRoleRequest struct {
	Name          *string   `json:"name"`
	PermissionIDs *[]string `json:"permissionIDs"`
}

// RoleResponse is the public representation of a role with its grants.
type RoleResponse struct {
	RoleID      string               `json:"roleID"`
	Name        string               `json:"name"`
	IsActive    bool                 `json:"isActive"`
	Permissions []PermissionResponse `json:"permissions"`
}

// ToRoleResponse converts a domain.Role to its public representation.
func ToRoleResponse(role *domain.Role) RoleResponse {
	perms := make([]PermissionResponse, len(role.Permissions))
	for i := range role.Permissions {
		perms[i] = ToPermissionResponse(&role.Permissions[i])
	}
	return RoleResponse{
		RoleID:      role.RoleID,
		Name:        role.Name,
		IsActive:    role.IsActive,
		Permissions: perms,
	}
}

// ToRoleResponseList converts a slice of domain roles.
func ToRoleResponseList(roles []domain.Role) []RoleResponse {
	out := make([]RoleResponse, len(roles))
	for i := range roles {
		out[i] = ToRoleResponse(&roles[i])
	}
	return out
}
