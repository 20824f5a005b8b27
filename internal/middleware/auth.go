package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/staffdeck/payroll_hr_app/internal/apperrors"
	ports "github.com/staffdeck/payroll_hr_app/internal/core/ports/services"
	"github.com/staffdeck/payroll_hr_app/internal/dto"
	"github.com/staffdeck/payroll_hr_app/internal/utils"
)

// abortUnauthorized ends the request with a 401 envelope carrying the
// machine-readable failure code.
func abortUnauthorized(c *gin.Context, code, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Response{
		Success: false,
		Message: message,
		Errors:  gin.H{"code": code},
	})
}

// AuthMiddleware authenticates the request: it parses the bearer token,
// loads the user fresh from storage and expands the user's role into the
// permission name set the authorization gates check against.
func AuthMiddleware(jwtSecret string, users ports.UserReaderSvc, roles ports.RoleReaderSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromContext(c)

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, apperrors.CodeNoToken, "authorization token required")
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			abortUnauthorized(c, apperrors.CodeMalformedToken, "authorization header must be of the form Bearer {token}")
			return
		}

		claims, err := utils.ParseAndValidateJWT(strings.TrimSpace(parts[1]), jwtSecret)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				abortUnauthorized(c, apperrors.CodeTokenExpired, "token has expired")
				return
			}
			logger.Warn("token validation failed", slog.String("error", err.Error()))
			abortUnauthorized(c, apperrors.CodeInvalidToken, "invalid token")
			return
		}
		if claims.Subject == "" {
			abortUnauthorized(c, apperrors.CodeInvalidToken, "invalid token claims")
			return
		}

		user, err := users.GetUserByID(c.Request.Context(), claims.Subject)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				abortUnauthorized(c, apperrors.CodeUserNotFound, "user no longer exists")
				return
			}
			logger.Error("failed to load authenticated user", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.Response{
				Success: false,
				Message: "internal server error",
				Errors:  gin.H{"code": apperrors.CodeInternalError},
			})
			return
		}
		if !user.IsActive {
			abortUnauthorized(c, apperrors.CodeUserDeactivated, "user account is deactivated")
			return
		}

		// A missing role means the grant was revoked: the user stays
		// authenticated with an empty permission set. Any other failure is a
		// storage fault and must not masquerade as a denial.
		permissions := map[string]struct{}{}
		role, err := roles.GetRoleByID(c.Request.Context(), user.RoleID)
		switch {
		case err == nil:
			if role.IsActive {
				permissions = role.PermissionNames()
			}
		case errors.Is(err, apperrors.ErrNotFound):
		default:
			logger.Error("failed to load role for authenticated user", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.Response{
				Success: false,
				Message: "internal server error",
				Errors:  gin.H{"code": apperrors.CodeInternalError},
			})
			return
		}

		c.Set(string(userIDKey), user.UserID)
		c.Set(string(authUserKey), user)
		c.Set(string(permissionsKey), permissions)

		enriched := logger.With(slog.String("user_id", user.UserID))
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), loggerCtxKey, enriched))

		c.Next()
	}
}
