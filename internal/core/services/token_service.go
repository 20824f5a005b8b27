package services

import (
	"context"
	"fmt"
	"time"

	"github.com/staffdeck/payroll_hr_app/internal/core/domain"
	ports "github.com/staffdeck/payroll_hr_app/internal/core/ports/services"
	"github.com/staffdeck/payroll_hr_app/internal/utils"
)

type tokenService struct {
	secret string
	expiry time.Duration
	issuer string
}

// NewTokenService creates the JWT access token service.
func NewTokenService(secret string, expiry time.Duration, issuer string) ports.TokenSvcFacade {
	return &tokenService{secret: secret, expiry: expiry, issuer: issuer}
}

var _ ports.TokenSvcFacade = (*tokenService)(nil)

func (s *tokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	expiresAt := time.Now().Add(s.expiry)
	token, err := utils.GenerateJWT(user.UserID, user.Email, user.RoleID, s.secret, s.expiry, s.issuer)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}
	return token, expiresAt, nil
}
