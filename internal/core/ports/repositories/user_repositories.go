package repositories

import (
	"context"
	"time"

	"github.com/staffdeck/payroll_hr_app/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by their unique email.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUserByProviderDetails retrieves a user provisioned by an external provider.
	FindUserByProviderDetails(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error)

	// FindUsers retrieves a page of users with an optional free-text search
	// over name and email, plus the total match count.
	FindUsers(ctx context.Context, limit, offset int, search string) ([]domain.User, int64, error)

	// CountActiveUsersWithRole counts active, non-deleted users referencing a role.
	CountActiveUsersWithRole(ctx context.Context, roleID string) (int64, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateUser updates an existing user's details.
	UpdateUser(ctx context.Context, user domain.User) error

	// SetUserActive toggles the user's active flag.
	SetUserActive(ctx context.Context, userID string, active bool, updatedAt time.Time, updatedBy string) error
}

// UserLifecycleManager defines operations for managing user lifecycle
type UserLifecycleManager interface {
	// MarkUserDeleted marks a user as deleted (soft delete).
	MarkUserDeleted(ctx context.Context, userID string, deletedAt time.Time, deletedBy string) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
	UserLifecycleManager
}
