package dto

import "github.com/staffdeck/payroll_hr_app/internal/core/domain"

// CreatePermissionRequest defines the payload for creating a permission.
type CreatePermissionRequest struct {
	Name   string `json:"name" binding:"required"`
	Module string `json:"module" binding:"required"`
	Action string `json:"action" binding:"required,oneof=CREATE READ UPDATE DELETE MANAGE"`
}

// UpdatePermissionRequest defines the data allowed for updating a permission.
type UpdatePermissionRequest struct {
	Name   *string `json:"name"`
	Module *string `json:"module"`
	Action *string `json:"action" binding:"omitempty,oneof=CREATE READ UPDATE DELETE MANAGE"`
}

// PermissionResponse is the public representation of a permission.
type PermissionResponse struct {
	PermissionID string `json:"permissionID"`
	Name         string `json:"name"`
	Module       string `json:"module"`
	Action       string `json:"action"`
}

// ToPermissionResponse converts a domain.Permission to its public representation.
func ToPermissionResponse(p *domain.Permission) PermissionResponse {
	return PermissionResponse{
		PermissionID: p.PermissionID,
		Name:         p.Name,
		Module:       p.Module,
		Action:       string(p.Action),
	}
}

// ToPermissionResponseList converts a slice of domain permissions.
func ToPermissionResponseList(perms []domain.Permission) []PermissionResponse {
	out := make([]PermissionResponse, len(perms))
	for i := range perms {
		out[i] = ToPermissionResponse(&perms[i])
	}
	return out
}
