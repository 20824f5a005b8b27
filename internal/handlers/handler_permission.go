package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	ports "github.com/staffdeck/payroll_hr_app/internal/core/ports/services"
	"github.com/staffdeck/payroll_hr_app/internal/dto"
	"github.com/staffdeck/payroll_hr_app/internal/middleware"
)

// permissionHandler handles HTTP requests related to permissions.
type permissionHandler struct {
	permissionService ports.PermissionSvcFacade
	activity          ports.ActivitySvcFacade
}

func newPermissionHandler(ps ports.PermissionSvcFacade, as ports.ActivitySvcFacade) *permissionHandler {
	return &permissionHandler{permissionService: ps, activity: as}
}

func registerPermissionRoutes(rg *gin.RouterGroup, ps ports.PermissionSvcFacade, as ports.ActivitySvcFacade) {
	h := newPermissionHandler(ps, as)

	permissions := rg.Group("/permissions")
	{
		permissions.GET("", middleware.RequirePermission("permissions.read"), h.listPermissions)
		permissions.GET("/:id", middleware.RequirePermission("permissions.read"), h.getPermission)
		permissions.POST("", middleware.RequirePermission("permissions.create"), h.createPermission)
		permissions.PUT("/:id", middleware.RequirePermission("permissions.update"), h.updatePermission)
		permissions.DELETE("/:id", middleware.RequirePermission("permissions.delete"), h.deletePermission)
	}
}

// listPermissions godoc
// @Summary List permissions
// @Tags permissions
// @Produce json
// @Param page query int false "Page (1-based)" default(1)
// @Param limit query int false "Page size" default(20)
// @Param search query string false "Free-text search on name and module"
// @Success 200 {object} dto.Response{data=dto.ListData}
// @Security BearerAuth
// @Router /permissions [get]
func (h *permissionHandler) listPermissions(c *gin.Context) {
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindingError(c, err)
		return
	}

	permissions, total, err := h.permissionService.ListPermissions(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, dto.NewListData(dto.ToPermissionResponseList(permissions), total, params))
}

func (h *permissionHandler) getPermission(c *gin.Context) {
	permission, err := h.permissionService.GetPermissionByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, dto.ToPermissionResponse(permission))
}

// createPermission godoc
// @Summary Create a permission
// @Tags permissions
// @Accept json
// @Produce json
// @Param permission body dto.CreatePermissionRequest true "Permission details"
// @Success 201 {object} dto.Response{data=dto.PermissionResponse}
// @Failure 400 {object} dto.Response
// @Failure 409 {object} dto.Response
// @Security BearerAuth
// @Router /permissions [post]
func (h *permissionHandler) createPermission(c *gin.Context) {
	var req dto.CreatePermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	creatorUserID, _ := middleware.GetUserIDFromContext(c)
	permission, err := h.permissionService.CreatePermission(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, err)
		return
	}

	recordActivity(c, h.activity, "create", "permissions", &permission.PermissionID, "created permission "+permission.Name, "")
	respondSuccess(c, http.StatusCreated, dto.ToPermissionResponse(permission))
}

// updatePermission godoc
// @Summary Update a permission
// @Tags permissions
// @Accept json
// @Produce json
// @Param id path string true "Permission ID"
// @Param permission body dto.UpdatePermissionRequest true "Fields to update"
// @Success 200 {object} dto.Response{data=dto.PermissionResponse}
// @Failure 400 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /permissions/{id} [put]
func (h *permissionHandler) updatePermission(c *gin.Context) {
	var req dto.UpdatePermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	requestingUserID, _ := middleware.GetUserIDFromContext(c)
	permission, err := h.permissionService.UpdatePermission(c.Request.Context(), c.Param("id"), req, requestingUserID)
	if err != nil {
		respondError(c, err)
		return
	}

	recordActivity(c, h.activity, "update", "permissions", &permission.PermissionID, "updated permission "+permission.Name, "")
	respondSuccess(c, http.StatusOK, dto.ToPermissionResponse(permission))
}

// deletePermission godoc
// @Summary Delete a permission
// @Description Rejected with RESOURCE_IN_USE while roles still grant the permission
// @Tags permissions
// @Produce json
// @Param id path string true "Permission ID"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /permissions/{id} [delete]
func (h *permissionHandler) deletePermission(c *gin.Context) {
	permissionID := c.Param("id")
	requestingUserID, _ := middleware.GetUserIDFromContext(c)

	if err := h.permissionService.DeletePermission(c.Request.Context(), permissionID, requestingUserID); err != nil {
		respondError(c, err)
		return
	}

	recordActivity(c, h.activity, "delete", "permissions", &permissionID, "deleted permission", "")
	respondMessage(c, http.StatusOK, "permission deleted")
}
