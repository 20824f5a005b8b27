package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/staffdeck/payroll_hr_app/internal/core/domain"
	ports "github.com/staffdeck/payroll_hr_app/internal/core/ports/services"
	"github.com/staffdeck/payroll_hr_app/internal/dto"
	"github.com/staffdeck/payroll_hr_app/internal/middleware"
)

// authHandler handles login and self-registration.
type authHandler struct {
	userService  ports.UserSvcFacade
	tokenService ports.TokenSvcFacade
	activity     ports.ActivitySvcFacade
}

func newAuthHandler(us ports.UserSvcFacade, ts ports.TokenSvcFacade, as ports.ActivitySvcFacade) *authHandler {
	return &authHandler{userService: us, tokenService: ts, activity: as}
}

// recordLoginAttempt audits one login attempt with the caller's network
// details. Success and failure are both recorded.
func (h *authHandler) recordLoginAttempt(c *gin.Context, user *domain.User, email, detail string, status domain.ActivityStatus) {
	entry := domain.ActivityLog{
		ActorEmail: email,
		Action:     "login",
		Resource:   "auth",
		Detail:     detail,
		Status:     status,
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
	}
	if user != nil {
		entry.ActorID = user.UserID
		entry.ActorName = user.Name
		entry.ActorEmail = user.Email
	}
	h.activity.Record(c.Request.Context(), entry)
}

// login godoc
// @Summary Authenticate with email and password
// @Description Validates local credentials and returns a signed access token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.Response{data=dto.LoginResponse}
// @Failure 400 {object} dto.Response
// @Failure 401 {object} dto.Response
// @Failure 429 {object} dto.Response
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	user, err := h.userService.AuthenticateUser(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.recordLoginAttempt(c, nil, req.Email, "login rejected", domain.ActivityWarning)
		respondError(c, err)
		return
	}

	token, _, err := h.tokenService.GenerateAccessToken(c.Request.Context(), user)
	if err != nil {
		respondError(c, err)
		return
	}

	h.recordLoginAttempt(c, user, user.Email, "login succeeded", domain.ActivitySuccess)
	respondSuccess(c, http.StatusOK, dto.LoginResponse{Token: token, User: dto.ToUserResponse(user)})
}

// register godoc
// @Summary Self-register a new user
// @Description Creates a user under the configured default role
// @Tags auth
// @Accept json
// @Produce json
// @Param registration body dto.RegisterRequest true "Registration details"
// @Success 201 {object} dto.Response{data=dto.UserResponse}
// @Failure 400 {object} dto.Response
// @Failure 409 {object} dto.Response
// @Router /auth/register [post]
func (h *authHandler) register(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	user, err := h.userService.RegisterUser(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	logger.Info("user self-registered", slog.String("user_id", user.UserID))
	h.activity.Record(c.Request.Context(), domain.ActivityLog{
		ActorID:    user.UserID,
		ActorName:  user.Name,
		ActorEmail: user.Email,
		Action:     "register",
		Resource:   "auth",
		Detail:     "user self-registered",
		Status:     domain.ActivitySuccess,
		IP:         c.ClientIP(),
		UserAgent:  c.Request.UserAgent(),
	})
	respondSuccess(c, http.StatusCreated, dto.ToUserResponse(user))
}
