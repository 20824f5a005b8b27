package dto

// LoginRequest carries local credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the signed token and the authenticated user.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// RegisterRequest carries the self-registration payload. Registered users
// get the configured default role.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8,max=72"`
}

// ExchangeCodeRequest carries the Google OAuth authorization code posted by
// the frontend.
type ExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// GoogleLoginURLResponse returns the consent-screen URL and the CSRF state
// the frontend must echo back with the authorization code.
type GoogleLoginURLResponse struct {
	URL   string `json:"url"`
	State string `json:"state"`
}
