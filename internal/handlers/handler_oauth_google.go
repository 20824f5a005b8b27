package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/staffdeck/payroll_hr_app/internal/apperrors"
	"github.com/staffdeck/payroll_hr_app/internal/core/domain"
	ports "github.com/staffdeck/payroll_hr_app/internal/core/ports/services"
	"github.com/staffdeck/payroll_hr_app/internal/dto"
)

// googleOAuthHandler handles the Google sign-in code exchange.
type googleOAuthHandler struct {
	userService  ports.UserSvcFacade
	tokenService ports.TokenSvcFacade
	googleOAuth  ports.GoogleOAuthSvcFacade
	activity     ports.ActivitySvcFacade
}

func newGoogleOAuthHandler(us ports.UserSvcFacade, ts ports.TokenSvcFacade, gs ports.GoogleOAuthSvcFacade, as ports.ActivitySvcFacade) *googleOAuthHandler {
	return &googleOAuthHandler{userService: us, tokenService: ts, googleOAuth: gs, activity: as}
}

// loginURL godoc
// @Summary Get the Google consent-screen URL
// @Description Returns the URL to redirect the user to, with a fresh CSRF state
// @Tags auth
// @Produce json
// @Success 200 {object} dto.Response{data=dto.GoogleLoginURLResponse}
// @Router /auth/google/login-url [get]
func (h *googleOAuthHandler) loginURL(c *gin.Context) {
	url, state, err := h.googleOAuth.GetLoginURL(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, dto.GoogleLoginURLResponse{URL: url, State: state})
}

// exchangeCode godoc
// @Summary Exchange a Google OAuth code for an access token
// @Description Verifies the Google identity and signs the user in, provisioning the account on first use
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body dto.ExchangeCodeRequest true "Authorization code"
// @Success 200 {object} dto.Response{data=dto.LoginResponse}
// @Failure 400 {object} dto.Response
// @Failure 401 {object} dto.Response
// @Router /auth/google/exchange-code [post]
func (h *googleOAuthHandler) exchangeCode(c *gin.Context) {
	var req dto.ExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	oauthToken, err := h.googleOAuth.ExchangeCodeForToken(c.Request.Context(), req.Code)
	if err != nil {
		respondError(c, err)
		return
	}

	rawIDToken, ok := oauthToken.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		respondError(c, apperrors.NewUnauthorizedError(apperrors.CodeInvalidToken, "token response is missing the ID token"))
		return
	}

	subject, email, name, err := h.googleOAuth.ValidateIDToken(c.Request.Context(), rawIDToken)
	if err != nil {
		respondError(c, err)
		return
	}

	user, err := h.userService.FindOrCreateGoogleUser(c.Request.Context(), email, name, subject)
	if err != nil {
		respondError(c, err)
		return
	}

	token, _, err := h.tokenService.GenerateAccessToken(c.Request.Context(), user)
	if err != nil {
		respondError(c, err)
		return
	}

	h.activity.Record(c.Request.Context(), domain.ActivityLog{
		ActorID:    user.UserID,
		ActorName:  user.Name,
		ActorEmail: user.Email,
		Action:     "login",
		Resource:   "auth",
		Detail:     "google sign-in",
		Status:     domain.ActivitySuccess,
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
	})
	respondSuccess(c, http.StatusOK, dto.LoginResponse{Token: token, User: dto.ToUserResponse(user)})
}
