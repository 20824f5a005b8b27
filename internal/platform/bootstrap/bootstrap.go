// Package bootstrap provisions the records the application cannot run
// without: the initial admin account.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/staffdeck/payroll_hr_app/internal/apperrors"
	"github.com/staffdeck/payroll_hr_app/internal/core/domain"
	portsrepo "github.com/staffdeck/payroll_hr_app/internal/core/ports/repositories"
	"github.com/staffdeck/payroll_hr_app/internal/platform/config"
	"github.com/staffdeck/payroll_hr_app/internal/utils"
)

const adminRoleName = "admin"

// EnsureAdminUser creates the bootstrap admin if no user holds that email
// yet. The password comes from config so no credential is baked into the
// seed migration. A noop when the password is unset or the user exists.
func EnsureAdminUser(ctx context.Context, repos *portsrepo.RepositoryProvider, cfg *config.Config, logger *slog.Logger) error {
	if cfg.BootstrapAdminPassword == "" {
		return nil
	}

	email := strings.ToLower(strings.TrimSpace(cfg.BootstrapAdminEmail))
	if _, err := repos.UserRepo.FindUserByEmail(ctx, email); err == nil {
		return nil
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("failed to look up bootstrap admin: %w", err)
	}

	adminRole, err := repos.RoleRepo.FindRoleByName(ctx, adminRoleName)
	if err != nil {
		return fmt.Errorf("failed to resolve admin role: %w", err)
	}

	hash, err := utils.HashPassword(cfg.BootstrapAdminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash bootstrap admin password: %w", err)
	}

	now := time.Now()
	admin := domain.User{
		UserID:       uuid.NewString(),
		Name:         cfg.BootstrapAdminName,
		Email:        email,
		PasswordHash: &hash,
		AuthProvider: domain.ProviderLocal,
		RoleID:       adminRole.RoleID,
		IsActive:     true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "system",
			LastUpdatedAt: now,
			LastUpdatedBy: "system",
		},
	}

	if err := repos.UserRepo.SaveUser(ctx, admin); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil
		}
		return fmt.Errorf("failed to create bootstrap admin: %w", err)
	}

	logger.Info("bootstrap admin provisioned", slog.String("email", email))
	return nil
}
