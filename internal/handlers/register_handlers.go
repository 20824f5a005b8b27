package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/staffdeck/payroll_hr_app/cmd/docs"
	ports "github.com/staffdeck/payroll_hr_app/internal/core/ports/services"
	"github.com/staffdeck/payroll_hr_app/internal/middleware"
	"github.com/staffdeck/payroll_hr_app/internal/platform/config"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// loginRate bounds login attempts per client IP.
var loginRate = limiter.Rate{Period: 1 * time.Minute, Limit: 5}

// RegisterRoutes sets up all application routes.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, services *ports.ServiceContainer) {
	exposeErrorDetail = !cfg.IsProduction

	r.GET("/health", health)

	registerAuthRoutes(r, services)
	setupAPIV1Routes(r, cfg, services)
	setupSwaggerRoutes(r, cfg)
}

// registerAuthRoutes registers the public authentication endpoints.
func registerAuthRoutes(r *gin.Engine, services *ports.ServiceContainer) {
	authH := newAuthHandler(services.User, services.Token, services.Activity)
	googleH := newGoogleOAuthHandler(services.User, services.Token, services.GoogleOAuth, services.Activity)

	loginLimiter := limiter.New(memory.NewStore(), loginRate)

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/login", middleware.RateLimit(loginLimiter), authH.login)
		auth.POST("/register", authH.register)
		auth.GET("/google/login-url", googleH.loginURL)
		auth.POST("/google/exchange-code", googleH.exchangeCode)
	}
}

// setupAPIV1Routes configures the authenticated /api/v1 group and delegates
// to the per-resource route registrations.
func setupAPIV1Routes(r *gin.Engine, cfg *config.Config, services *ports.ServiceContainer) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret, services.User, services.Role))

	registerUserRoutes(v1, services.User, services.Activity)
	registerRoleRoutes(v1, services.Role, services.Activity)
	registerPermissionRoutes(v1, services.Permission, services.Activity)
	registerEmployeeRoutes(v1, services.Employee, services.Activity)
	registerPayrollRoutes(v1, services.Payroll, services.Activity)
	registerActivityRoutes(v1, services.Activity, services.Role)
}

// setupSwaggerRoutes serves the API docs outside production.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
