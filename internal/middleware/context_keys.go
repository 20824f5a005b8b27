package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/staffdeck/payroll_hr_app/internal/core/domain"
)

const (
	userIDKey      = contextKey("userID")
	authUserKey    = contextKey("authUser")
	permissionsKey = contextKey("permissions")
)

// GetUserIDFromContext retrieves the authenticated user's ID.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	val, exists := c.Get(string(userIDKey))
	if !exists {
		return "", false
	}
	userID, ok := val.(string)
	return userID, ok
}

// GetAuthUserFromContext retrieves the authenticated user loaded by the
// auth middleware.
func GetAuthUserFromContext(c *gin.Context) (*domain.User, bool) {
	val, exists := c.Get(string(authUserKey))
	if !exists {
		return nil, false
	}
	user, ok := val.(*domain.User)
	return user, ok
}

// GetPermissionsFromContext retrieves the caller's expanded permission name set.
func GetPermissionsFromContext(c *gin.Context) (map[string]struct{}, bool) {
	val, exists := c.Get(string(permissionsKey))
	if !exists {
		return nil, false
	}
	perms, ok := val.(map[string]struct{})
	return perms, ok
}
