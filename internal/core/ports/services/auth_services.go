package services

import (
	"context"
	"time"

	"github.com/staffdeck/payroll_hr_app/internal/core/domain"
	"golang.org/x/oauth2"
)

// TokenSvcFacade issues the signed bearer tokens the API authenticates with.
type TokenSvcFacade interface {
	// GenerateAccessToken creates a signed JWT for the user and returns it
	// with its expiry time.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}

// GoogleOAuthSvcFacade wraps the Google side of the external sign-in flow.
type GoogleOAuthSvcFacade interface {
	// GetLoginURL returns the Google consent-screen URL together with the
	// freshly generated CSRF state embedded in it.
	GetLoginURL(ctx context.Context) (url, state string, err error)

	// ExchangeCodeForToken exchanges an OAuth authorization code for a token.
	ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error)

	// ValidateIDToken verifies the Google ID token and returns the subject,
	// email and display name it asserts.
	ValidateIDToken(ctx context.Context, rawIDToken string) (subject, email, name string, err error)
}
