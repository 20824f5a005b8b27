package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	ports "github.com/staffdeck/payroll_hr_app/internal/core/ports/services"
	"github.com/staffdeck/payroll_hr_app/internal/dto"
	"github.com/staffdeck/payroll_hr_app/internal/middleware"
)

// roleHandler handles HTTP requests related to roles.
type roleHandler struct {
	roleService ports.RoleSvcFacade
	activity    ports.ActivitySvcFacade
}

func newRoleHandler(rs ports.RoleSvcFacade, as ports.ActivitySvcFacade) *roleHandler {
	return &roleHandler{roleService: rs, activity: as}
}

func registerRoleRoutes(rg *gin.RouterGroup, rs ports.RoleSvcFacade, as ports.ActivitySvcFacade) {
	h := newRoleHandler(rs, as)

	roles := rg.Group("/roles")
	{
		roles.GET("", middleware.RequirePermission("roles.read"), h.listRoles)
		roles.GET("/:id", middleware.RequirePermission("roles.read"), h.getRole)
		roles.POST("", middleware.RequirePermission("roles.create"), h.createRole)
		roles.PUT("/:id", middleware.RequirePermission("roles.update"), h.updateRole)
		roles.PATCH("/:id/activate", middleware.RequirePermission("roles.manage"), h.activateRole)
		roles.PATCH("/:id/deactivate", middleware.RequirePermission("roles.manage"), h.deactivateRole)
		roles.DELETE("/:id", middleware.RequirePermission("roles.delete"), h.deleteRole)
	}
}

// listRoles godoc
// @Summary List roles with their permission grants
// @Tags roles
// @Produce json
// @Param page query int false "Page (1-based)" default(1)
// @Param limit query int false "Page size" default(20)
// @Param search query string false "Free-text search on name"
// @Success 200 {object} dto.Response{data=dto.ListData}
// @Security BearerAuth
// @Router /roles [get]
func (h *roleHandler) listRoles(c *gin.Context) {
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindingError(c, err)
		return
	}

	roles, total, err := h.roleService.ListRoles(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, dto.NewListData(dto.ToRoleResponseList(roles), total, params))
}

// getRole godoc
// @Summary Get a role by ID
// @Tags roles
// @Produce json
// @Param id path string true "Role ID"
// @Success 200 {object} dto.Response{data=dto.RoleResponse}
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /roles/{id} [get]
func (h *roleHandler) getRole(c *gin.Context) {
	role, err := h.roleService.GetRoleByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, dto.ToRoleResponse(role))
}

// createRole godoc
// @Summary Create a role
// @Tags roles
// @Accept json
// @Produce json
// @Param role body dto.CreateRoleRequest true "Role details with permission grants"
// @Success 201 {object} dto.Response{data=dto.RoleResponse}
// @Failure 400 {object} dto.Response
// @Failure 409 {object} dto.Response
// @Security BearerAuth
// @Router /roles [post]
func (h *roleHandler) createRole(c *gin.Context) {
	var req dto.CreateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	creatorUserID, _ := middleware.GetUserIDFromContext(c)
	role, err := h.roleService.CreateRole(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, err)
		return
	}

	recordActivity(c, h.activity, "create", "roles", &role.RoleID, "created role "+role.Name, "")
	respondSuccess(c, http.StatusCreated, dto.ToRoleResponse(role))
}

// updateRole godoc
// @Summary Update a role
// @Description A supplied permission list replaces the role's grants wholesale
// @Tags roles
// @Accept json
// @Produce json
// @Param id path string true "Role ID"
// @Param role body dto.UpdateRoleRequest true "Fields to update"
// @Success 200 {object} dto.Response{data=dto.RoleResponse}
// @Failure 400 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /roles/{id} [put]
func (h *roleHandler) updateRole(c *gin.Context) {
	var req dto.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	requestingUserID, _ := middleware.GetUserIDFromContext(c)
	role, err := h.roleService.UpdateRole(c.Request.Context(), c.Param("id"), req, requestingUserID)
	if err != nil {
		respondError(c, err)
		return
	}

	recordActivity(c, h.activity, "update", "roles", &role.RoleID, "updated role "+role.Name, "")
	respondSuccess(c, http.StatusOK, dto.ToRoleResponse(role))
}

func (h *roleHandler) setRoleActive(c *gin.Context, active bool) {
	requestingUserID, _ := middleware.GetUserIDFromContext(c)
	role, err := h.roleService.SetRoleActive(c.Request.Context(), c.Param("id"), active, requestingUserID)
	if err != nil {
		respondError(c, err)
		return
	}

	action := "deactivate"
	if active {
		action = "activate"
	}
	recordActivity(c, h.activity, action, "roles", &role.RoleID, action+"d role "+role.Name, "")
	respondSuccess(c, http.StatusOK, dto.ToRoleResponse(role))
}

// activateRole godoc
// @Summary Activate a role
// @Tags roles
// @Produce json
// @Param id path string true "Role ID"
// @Success 200 {object} dto.Response{data=dto.RoleResponse}
// @Security BearerAuth
// @Router /roles/{id}/activate [patch]
func (h *roleHandler) activateRole(c *gin.Context) {
	h.setRoleActive(c, true)
}

// deactivateRole godoc
// @Summary Deactivate a role
// @Description Rejected with RESOURCE_IN_USE while active users still hold the role
// @Tags roles
// @Produce json
// @Param id path string true "Role ID"
// @Success 200 {object} dto.Response{data=dto.RoleResponse}
// @Failure 400 {object} dto.Response
// @Security BearerAuth
// @Router /roles/{id}/deactivate [patch]
func (h *roleHandler) deactivateRole(c *gin.Context) {
	h.setRoleActive(c, false)
}

// deleteRole godoc
// @Summary Delete a role
// @Description Rejected with RESOURCE_IN_USE while active users still hold the role
// @Tags roles
// @Produce json
// @Param id path string true "Role ID"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /roles/{id} [delete]
func (h *roleHandler) deleteRole(c *gin.Context) {
	roleID := c.Param("id")
	requestingUserID, _ := middleware.GetUserIDFromContext(c)

	if err := h.roleService.DeleteRole(c.Request.Context(), roleID, requestingUserID); err != nil {
		respondError(c, err)
		return
	}

	recordActivity(c, h.activity, "delete", "roles", &roleID, "deleted role", "")
	respondMessage(c, http.StatusOK, "role deleted")
}
