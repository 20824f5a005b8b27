package services

import (
	"context"
	"fmt"

	"github.com/staffdeck/payroll_hr_app/internal/apperrors"
	ports "github.com/staffdeck/payroll_hr_app/internal/core/ports/services"
	"github.com/staffdeck/payroll_hr_app/internal/platform/config"
	"github.com/staffdeck/payroll_hr_app/internal/utils"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

type googleOAuthService struct {
	oauthConfig *oauth2.Config
	clientID    string
}

// NewGoogleOAuthService wires the Google sign-in flow from application config.
func NewGoogleOAuthService(cfg *config.Config) ports.GoogleOAuthSvcFacade {
	return &googleOAuthService{
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
		clientID: cfg.GoogleClientID,
	}
}

var _ ports.GoogleOAuthSvcFacade = (*googleOAuthService)(nil)

func (s *googleOAuthService) GetLoginURL(ctx context.Context) (string, string, error) {
	// 16 random bytes -> 32 char hex state, echoed back by the frontend.
	state, err := utils.GenerateSecureRandomString(16)
	if err != nil {
		return "", "", fmt.Errorf("failed to generate OAuth state: %w", err)
	}
	return s.oauthConfig.AuthCodeURL(state), state, nil
}

func (s *googleOAuthService) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := s.oauthConfig.Exchange(ctx, code)
	if err != nil {
		return nil, apperrors.NewUnauthorizedError(apperrors.CodeInvalidToken, "failed to exchange authorization code")
	}
	return token, nil
}

func (s *googleOAuthService) ValidateIDToken(ctx context.Context, rawIDToken string) (subject, email, name string, err error) {
	payload, err := idtoken.Validate(ctx, rawIDToken, s.clientID)
	if err != nil {
		return "", "", "", apperrors.NewUnauthorizedError(apperrors.CodeInvalidToken, "invalid Google ID token")
	}

	email, _ = payload.Claims["email"].(string)
	name, _ = payload.Claims["name"].(string)
	if email == "" {
		return "", "", "", fmt.Errorf("google ID token is missing the email claim")
	}
	return payload.Subject, email, name, nil
}
