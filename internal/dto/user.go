package dto

import "github.com/staffdeck/payroll_hr_app/internal/core/domain"

// CreateUserRequest defines the payload for an administrative user creation.
type CreateUserRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
	RoleID   string `json:"roleID" binding:"required"`
}

// UpdateUserRequest defines the data allowed for updating a user.
// Pointers differentiate omitted fields from zero values.
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=8,max=72"`
	RoleID   *string `json:"roleID"`
}

// UserResponse is the public representation of a user.
type UserResponse struct {
	UserID       string `json:"userID"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	AuthProvider string `json:"authProvider"`
	RoleID       string `json:"roleID"`
	IsActive     bool   `json:"isActive"`
}

// ToUserResponse converts a domain.User to its public representation.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:       user.UserID,
		Name:         user.Name,
		Email:        user.Email,
		AuthProvider: string(user.AuthProvider),
		RoleID:       user.RoleID,
		IsActive:     user.IsActive,
	}
}

// ToUserResponseList converts a slice of domain users.
func ToUserResponseList(users []domain.User) []UserResponse {
	out := make([]UserResponse, len(users))
	for i := range users {
		out[i] = ToUserResponse(&users[i])
	}
	return out
}
