package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	ports "github.com/staffdeck/payroll_hr_app/internal/core/ports/services"
	"github.com/staffdeck/payroll_hr_app/internal/dto"
	"github.com/staffdeck/payroll_hr_app/internal/middleware"
)

// userHandler handles HTTP requests related to users.
type userHandler struct {
	userService ports.UserSvcFacade
	activity    ports.ActivitySvcFacade
}

func newUserHandler(us ports.UserSvcFacade, as ports.ActivitySvcFacade) *userHandler {
	return &userHandler{userService: us, activity: as}
}

// registerUserRoutes registers all user-related routes behind their
// permission gates.
func registerUserRoutes(rg *gin.RouterGroup, us ports.UserSvcFacade, as ports.ActivitySvcFacade) {
	h := newUserHandler(us, as)

	users := rg.Group("/users")
	{
		users.GET("", middleware.RequirePermission("users.read"), h.listUsers)
		users.GET("/:id", middleware.RequirePermission("users.read"), h.getUser)
		users.POST("", middleware.RequirePermission("users.create"), h.createUser)
		users.PUT("/:id", middleware.RequirePermission("users.update"), h.updateUser)
		users.PATCH("/:id/activate", middleware.RequirePermission("users.manage"), h.activateUser)
		users.PATCH("/:id/deactivate", middleware.RequirePermission("users.manage"), h.deactivateUser)
		users.DELETE("/:id", middleware.RequirePermission("users.delete"), h.deleteUser)
	}
}

// listUsers godoc
// @Summary List users
// @Description Retrieves a page of users with optional free-text search
// @Tags users
// @Produce json
// @Param page query int false "Page (1-based)" default(1)
// @Param limit query int false "Page size" default(20)
// @Param search query string false "Free-text search on name and email"
// @Success 200 {object} dto.Response{data=dto.ListData}
// @Failure 401 {object} dto.Response
// @Failure 403 {object} dto.Response
// @Security BearerAuth
// @Router /users [get]
func (h *userHandler) listUsers(c *gin.Context) {
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindingError(c, err)
		return
	}

	users, total, err := h.userService.ListUsers(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, dto.NewListData(dto.ToUserResponseList(users), total, params))
}

// getUser godoc
// @Summary Get a user by ID
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.Response{data=dto.UserResponse}
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /users/{id} [get]
func (h *userHandler) getUser(c *gin.Context) {
	user, err := h.userService.GetUserByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, dto.ToUserResponse(user))
}

// createUser godoc
// @Summary Create a new user
// @Description Creates a user with an explicit role assignment
// @Tags users
// @Accept json
// @Produce json
// @Param user body dto.CreateUserRequest true "User details"
// @Success 201 {object} dto.Response{data=dto.UserResponse}
// @Failure 400 {object} dto.Response
// @Failure 409 {object} dto.Response
// @Security BearerAuth
// @Router /users [post]
func (h *userHandler) createUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	creatorUserID, _ := middleware.GetUserIDFromContext(c)
	user, err := h.userService.CreateUser(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, err)
		return
	}

	recordActivity(c, h.activity, "create", "users", &user.UserID, "created user "+user.Email, "")
	respondSuccess(c, http.StatusCreated, dto.ToUserResponse(user))
}

// updateUser godoc
// @Summary Update a user
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param user body dto.UpdateUserRequest true "Fields to update"
// @Success 200 {object} dto.Response{data=dto.UserResponse}
// @Failure 400 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /users/{id} [put]
func (h *userHandler) updateUser(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	requestingUserID, _ := middleware.GetUserIDFromContext(c)
	user, err := h.userService.UpdateUser(c.Request.Context(), c.Param("id"), req, requestingUserID)
	if err != nil {
		respondError(c, err)
		return
	}

	recordActivity(c, h.activity, "update", "users", &user.UserID, "updated user "+user.Email, "")
	respondSuccess(c, http.StatusOK, dto.ToUserResponse(user))
}

func (h *userHandler) setUserActive(c *gin.Context, active bool) {
	requestingUserID, _ := middleware.GetUserIDFromContext(c)
	user, err := h.userService.SetUserActive(c.Request.Context(), c.Param("id"), active, requestingUserID)
	if err != nil {
		respondError(c, err)
		return
	}

	action := "deactivate"
	if active {
		action = "activate"
	}
	recordActivity(c, h.activity, action, "users", &user.UserID, action+"d user "+user.Email, "")
	respondSuccess(c, http.StatusOK, dto.ToUserResponse(user))
}

// activateUser godoc
// @Summary Activate a user
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.Response{data=dto.UserResponse}
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /users/{id}/activate [patch]
func (h *userHandler) activateUser(c *gin.Context) {
	h.setUserActive(c, true)
}

// deactivateUser godoc
// @Summary Deactivate a user
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.Response{data=dto.UserResponse}
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /users/{id}/deactivate [patch]
func (h *userHandler) deactivateUser(c *gin.Context) {
	h.setUserActive(c, false)
}

// deleteUser godoc
// @Summary Delete a user
// @Description Soft-deletes the user; the record is retained for auditing
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /users/{id} [delete]
func (h *userHandler) deleteUser(c *gin.Context) {
	userID := c.Param("id")
	requestingUserID, _ := middleware.GetUserIDFromContext(c)

	if err := h.userService.DeleteUser(c.Request.Context(), userID, requestingUserID); err != nil {
		respondError(c, err)
		return
	}

	recordActivity(c, h.activity, "delete", "users", &userID, "deleted user", "")
	respondMessage(c, http.StatusOK, "user deleted")
}
