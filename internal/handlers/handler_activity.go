package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	ports "github.com/staffdeck/payroll_hr_app/internal/core/ports/services"
	"github.com/staffdeck/payroll_hr_app/internal/dto"
	"github.com/staffdeck/payroll_hr_app/internal/middleware"
)

// activityHandler exposes the read side of the audit log plus the
// administrative purge.
type activityHandler struct {
	activityService ports.ActivitySvcFacade
}

func newActivityHandler(as ports.ActivitySvcFacade) *activityHandler {
	return &activityHandler{activityService: as}
}

func registerActivityRoutes(rg *gin.RouterGroup, as ports.ActivitySvcFacade, rs ports.RoleReaderSvc) {
	h := newActivityHandler(as)

	logs := rg.Group("/activity-logs")
	{
		logs.GET("", middleware.RequirePermission("activity_logs.read"), h.listActivityLogs)
		logs.GET("/:id", middleware.RequirePermission("activity_logs.read"), h.getActivityLog)
		// Purge destroys audit history, so it is pinned to the admin role
		// on top of the permission grant.
		logs.DELETE("/purge",
			middleware.RequirePermission("activity_logs.manage"),
			middleware.RequireRole("admin", rs),
			h.purgeActivityLogs)
	}
}

// listActivityLogs godoc
// @Summary List audit entries
// @Description Newest first, searchable by actor, action and resource
// @Tags activity-logs
// @Produce json
// @Param page query int false "Page (1-based)" default(1)
// @Param limit query int false "Page size" default(20)
// @Param search query string false "Free-text search"
// @Success 200 {object} dto.Response{data=dto.ListData}
// @Security BearerAuth
// @Router /activity-logs [get]
func (h *activityHandler) listActivityLogs(c *gin.Context) {
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindingError(c, err)
		return
	}

	entries, total, err := h.activityService.ListActivityLogs(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, dto.NewListData(dto.ToActivityLogResponseList(entries), total, params))
}

func (h *activityHandler) getActivityLog(c *gin.Context) {
	entry, err := h.activityService.GetActivityLogByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, dto.ToActivityLogResponse(entry))
}

// purgeActivityLogs godoc
// @Summary Purge old audit entries
// @Description Removes entries older than the given number of days
// @Tags activity-logs
// @Accept json
// @Produce json
// @Param payload body dto.PurgeActivityLogsRequest true "Retention cutoff"
// @Success 200 {object} dto.Response{data=dto.PurgeActivityLogsResponse}
// @Failure 400 {object} dto.Response
// @Security BearerAuth
// @Router /activity-logs/purge [delete]
func (h *activityHandler) purgeActivityLogs(c *gin.Context) {
	var req dto.PurgeActivityLogsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	requestingUserID, _ := middleware.GetUserIDFromContext(c)
	purged, err := h.activityService.PurgeActivityLogs(c.Request.Context(), req.OlderThanDays, requestingUserID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, dto.PurgeActivityLogsResponse{Purged: purged})
}
