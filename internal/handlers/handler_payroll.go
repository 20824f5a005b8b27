package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/staffdeck/payroll_hr_app/internal/core/domain"
	ports "github.com/staffdeck/payroll_hr_app/internal/core/ports/services"
	"github.com/staffdeck/payroll_hr_app/internal/dto"
	"github.com/staffdeck/payroll_hr_app/internal/middleware"
)

// payrollHandler handles HTTP requests related to payroll records.
type payrollHandler struct {
	payrollService ports.PayrollSvcFacade
	activity       ports.ActivitySvcFacade
}

func newPayrollHandler(ps ports.PayrollSvcFacade, as ports.ActivitySvcFacade) *payrollHandler {
	return &payrollHandler{payrollService: ps, activity: as}
}

func registerPayrollRoutes(rg *gin.RouterGroup, ps ports.PayrollSvcFacade, as ports.ActivitySvcFacade) {
	h := newPayrollHandler(ps, as)

	payrolls := rg.Group("/payrolls")
	{
		payrolls.GET("", middleware.RequirePermission("payrolls.read"), h.listPayrolls)
		payrolls.GET("/:id", middleware.RequirePermission("payrolls.read"), h.getPayroll)
		payrolls.POST("", middleware.RequirePermission("payrolls.create"), h.createPayroll)
		payrolls.PUT("/:id", middleware.RequirePermission("payrolls.update"), h.updatePayroll)
		payrolls.PATCH("/:id/status", middleware.RequirePermission("payrolls.manage"), h.updatePayrollStatus)
		payrolls.DELETE("/:id", middleware.RequirePermission("payrolls.delete"), h.deletePayroll)
	}
}

// listPayrolls godoc
// @Summary List payroll records
// @Description Newest work date first, searchable by employee name and status
// @Tags payrolls
// @Produce json
// @Param page query int false "Page (1-based)" default(1)
// @Param limit query int false "Page size" default(20)
// @Param search query string false "Free-text search"
// @Success 200 {object} dto.Response{data=dto.ListData}
// @Security BearerAuth
// @Router /payrolls [get]
func (h *payrollHandler) listPayrolls(c *gin.Context) {
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindingError(c, err)
		return
	}

	records, total, err := h.payrollService.ListPayrolls(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, dto.NewListData(dto.ToPayrollResponseList(records), total, params))
}

func (h *payrollHandler) getPayroll(c *gin.Context) {
	record, err := h.payrollService.GetPayrollByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, dto.ToPayrollResponse(record))
}

// createPayroll godoc
// @Summary Create a payroll record
// @Description Computes worked time, gross, deductions and net pay from the shift inputs
// @Tags payrolls
// @Accept json
// @Produce json
// @Param payroll body dto.CreatePayrollRequest true "Shift and deduction inputs"
// @Success 201 {object} dto.Response{data=dto.PayrollResponse}
// @Failure 400 {object} dto.Response
// @Security BearerAuth
// @Router /payrolls [post]
func (h *payrollHandler) createPayroll(c *gin.Context) {
	var req dto.CreatePayrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	processorUserID, _ := middleware.GetUserIDFromContext(c)
	record, err := h.payrollService.CreatePayroll(c.Request.Context(), req, processorUserID)
	if err != nil {
		respondError(c, err)
		return
	}

	recordActivity(c, h.activity, "create", "payrolls", &record.PayrollID, "created payroll record for employee "+record.EmployeeID, "")
	respondSuccess(c, http.StatusCreated, dto.ToPayrollResponse(record))
}

// updatePayroll godoc
// @Summary Update a payroll record
// @Description Recomputes every derived field; rejected once the record is PAID
// @Tags payrolls
// @Accept json
// @Produce json
// @Param id path string true "Payroll ID"
// @Param payroll body dto.UpdatePayrollRequest true "Fields to update"
// @Success 200 {object} dto.Response{data=dto.PayrollResponse}
// @Failure 400 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /payrolls/{id} [put]
func (h *payrollHandler) updatePayroll(c *gin.Context) {
	var req dto.UpdatePayrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	requestingUserID, _ := middleware.GetUserIDFromContext(c)
	record, err := h.payrollService.UpdatePayroll(c.Request.Context(), c.Param("id"), req, requestingUserID)
	if err != nil {
		respondError(c, err)
		return
	}

	recordActivity(c, h.activity, "update", "payrolls", &record.PayrollID, "updated payroll record", "")
	respondSuccess(c, http.StatusOK, dto.ToPayrollResponse(record))
}

// updatePayrollStatus godoc
// @Summary Move a payroll record through its lifecycle
// @Description PENDING to PROCESSED to PAID, forward only
// @Tags payrolls
// @Accept json
// @Produce json
// @Param id path string true "Payroll ID"
// @Param status body dto.UpdatePayrollStatusRequest true "Target status"
// @Success 200 {object} dto.Response{data=dto.PayrollResponse}
// @Failure 400 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /payrolls/{id}/status [patch]
func (h *payrollHandler) updatePayrollStatus(c *gin.Context) {
	var req dto.UpdatePayrollStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	requestingUserID, _ := middleware.GetUserIDFromContext(c)
	record, err := h.payrollService.UpdatePayrollStatus(c.Request.Context(), c.Param("id"), domain.PayrollStatus(req.Status), requestingUserID)
	if err != nil {
		respondError(c, err)
		return
	}

	recordActivity(c, h.activity, "update-status", "payrolls", &record.PayrollID, "payroll status set to "+req.Status, "")
	respondSuccess(c, http.StatusOK, dto.ToPayrollResponse(record))
}

// deletePayroll godoc
// @Summary Delete a payroll record
// @Description Rejected once the record is PAID
// @Tags payrolls
// @Produce json
// @Param id path string true "Payroll ID"
// @Success 200 {object} dto.Response
// @Failure 400 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /payrolls/{id} [delete]
func (h *payrollHandler) deletePayroll(c *gin.Context) {
	payrollID := c.Param("id")
	requestingUserID, _ := middleware.GetUserIDFromContext(c)

	if err := h.payrollService.DeletePayroll(c.Request.Context(), payrollID, requestingUserID); err != nil {
		respondError(c, err)
		return
	}

	recordActivity(c, h.activity, "delete", "payrolls", &payrollID, "deleted payroll record", "")
	respondMessage(c, http.StatusOK, "payroll record deleted")
}
