package domain

import "time"

// AuthProvider identifies how a user authenticates.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "local"
	ProviderGoogle AuthProvider = "google"
)

// User represents an authenticable identity. PasswordHash is nil for users
// provisioned through an external provider.
type User struct {
	UserID         string       `json:"userID"`
	Name           string       `json:"name"`
	Email          string       `json:"email"`
	PasswordHash   *string      `json:"-"`
	AuthProvider   AuthProvider `json:"authProvider"`
	ProviderUserID *string      `json:"-"`
	RoleID         string       `json:"roleID"`
	IsActive       bool         `json:"isActive"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}
