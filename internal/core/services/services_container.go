package services

import (
	"log/slog"

	portsrepo "github.com/staffdeck/payroll_hr_app/internal/core/ports/repositories"
	ports "github.com/staffdeck/payroll_hr_app/internal/core/ports/services"
	"github.com/staffdeck/payroll_hr_app/internal/platform/config"
)

// NewServiceContainer wires every application service to its repositories.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, cfg *config.Config, logger *slog.Logger) *ports.ServiceContainer {
	return &ports.ServiceContainer{
		User:        NewUserService(repos.UserRepo, repos.RoleRepo, cfg.DefaultRoleName),
		Role:        NewRoleService(repos.RoleRepo, repos.UserRepo, repos.PermissionRepo),
		Permission:  NewPermissionService(repos.PermissionRepo, repos.RoleRepo),
		Employee:    NewEmployeeService(repos.EmployeeRepo, repos.UserRepo),
		Payroll:     NewPayrollService(repos.PayrollRepo, repos.EmployeeRepo),
		Activity:    NewActivityService(repos.ActivityRepo, logger),
		Token:       NewTokenService(cfg.JWTSecret, cfg.JWTExpiryDuration, cfg.JWTIssuer),
		GoogleOAuth: NewGoogleOAuthService(cfg),
	}
}
