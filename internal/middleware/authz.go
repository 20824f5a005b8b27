package middleware

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"github.com/staffdeck/payroll_hr_app/internal/apperrors"
	ports "github.com/staffdeck/payroll_hr_app/internal/core/ports/services"
	"github.com/staffdeck/payroll_hr_app/internal/dto"
)

// RequirePermission gates a route on one permission name. The rejection
// payload echoes the required permission and the caller's own set so
// clients can explain the denial.
func RequirePermission(name string) gin.HandlerFunc {
	return func(c *gin.Context) {
		permissions, ok := GetPermissionsFromContext(c)
		if !ok {
			abortUnauthorized(c, apperrors.CodeNoToken, "authorization token required")
			return
		}

		if _, granted := permissions[name]; !granted {
			held := make([]string, 0, len(permissions))
			for p := range permissions {
				held = append(held, p)
			}
			sort.Strings(held)

			c.AbortWithStatusJSON(http.StatusForbidden, dto.Response{
				Success: false,
				Message: "insufficient permissions",
				Errors: gin.H{
					"code":               apperrors.CodeInsufficientPerms,
					"requiredPermission": name,
					"permissions":        held,
				},
			})
			return
		}
		c.Next()
	}
}

// RequireRole gates a route on a role name. The role is reloaded fresh
// from storage rather than trusted from the token or the request context,
// so a revoked role takes effect immediately.
func RequireRole(name string, roles ports.RoleReaderSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			abortUnauthorized(c, apperrors.CodeNoToken, "authorization token required")
			return
		}

		role, err := roles.GetRoleForUser(c.Request.Context(), userID)
		if err != nil || role.Name != name {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.Response{
				Success: false,
				Message: "role requirement not met",
				Errors: gin.H{
					"code":         apperrors.CodeRoleMismatch,
					"requiredRole": name,
				},
			})
			return
		}
		c.Next()
	}
}
