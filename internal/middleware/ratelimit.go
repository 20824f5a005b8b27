package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/staffdeck/payroll_hr_app/internal/dto"
	"github.com/ulule/limiter/v3"
)

// RateLimit limits requests per client IP using the provided limiter.
// Applied to the login route to slow credential stuffing.
func RateLimit(limiterInstance *limiter.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		limitCtx, err := limiterInstance.Get(c.Request.Context(), ip)
		if err != nil {
			GetLoggerFromContext(c).Error("rate limit check failed", slog.String("ip", ip), slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.Response{
				Success: false,
				Message: "internal server error",
			})
			return
		}

		if limitCtx.Reached {
			GetLoggerFromContext(c).Warn("rate limit exceeded", slog.String("ip", ip), slog.Int64("limit", limitCtx.Limit))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.Response{
				Success: false,
				Message: "too many requests, please try again later",
			})
			return
		}

		c.Next()
	}
}
