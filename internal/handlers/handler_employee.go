package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	ports "github.com/staffdeck/payroll_hr_app/internal/core/ports/services"
	"github.com/staffdeck/payroll_hr_app/internal/dto"
	"github.com/staffdeck/payroll_hr_app/internal/middleware"
)

// employeeHandler handles HTTP requests related to employees.
type employeeHandler struct {
	employeeService ports.EmployeeSvcFacade
	activity        ports.ActivitySvcFacade
}

func newEmployeeHandler(es ports.EmployeeSvcFacade, as ports.ActivitySvcFacade) *employeeHandler {
	return &employeeHandler{employeeService: es, activity: as}
}

func registerEmployeeRoutes(rg *gin.RouterGroup, es ports.EmployeeSvcFacade, as ports.ActivitySvcFacade) {
	h := newEmployeeHandler(es, as)

	employees := rg.Group("/employees")
	{
		employees.GET("", middleware.RequirePermission("employees.read"), h.listEmployees)
		employees.GET("/:id", middleware.RequirePermission("employees.read"), h.getEmployee)
		employees.POST("", middleware.RequirePermission("employees.create"), h.createEmployee)
		employees.PUT("/:id", middleware.RequirePermission("employees.update"), h.updateEmployee)
		employees.PATCH("/:id/activate", middleware.RequirePermission("employees.manage"), h.activateEmployee)
		employees.PATCH("/:id/deactivate", middleware.RequirePermission("employees.manage"), h.deactivateEmployee)
		employees.DELETE("/:id", middleware.RequirePermission("employees.delete"), h.deleteEmployee)
	}
}

// listEmployees godoc
// @Summary List employees
// @Tags employees
// @Produce json
// @Param page query int false "Page (1-based)" default(1)
// @Param limit query int false "Page size" default(20)
// @Param search query string false "Free-text search on the linked user's name and email"
// @Success 200 {object} dto.Response{data=dto.ListData}
// @Security BearerAuth
// @Router /employees [get]
func (h *employeeHandler) listEmployees(c *gin.Context) {
	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindingError(c, err)
		return
	}

	employees, total, err := h.employeeService.ListEmployees(c.Request.Context(), params)
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, dto.NewListData(dto.ToEmployeeResponseList(employees), total, params))
}

func (h *employeeHandler) getEmployee(c *gin.Context) {
	employee, err := h.employeeService.GetEmployeeByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondSuccess(c, http.StatusOK, dto.ToEmployeeResponse(employee))
}

// createEmployee godoc
// @Summary Create an employee profile
// @Description Attaches an hourly-wage payroll profile to an existing active user
// @Tags employees
// @Accept json
// @Produce json
// @Param employee body dto.CreateEmployeeRequest true "Employee details"
// @Success 201 {object} dto.Response{data=dto.EmployeeResponse}
// @Failure 400 {object} dto.Response
// @Failure 409 {object} dto.Response
// @Security BearerAuth
// @Router /employees [post]
func (h *employeeHandler) createEmployee(c *gin.Context) {
	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	creatorUserID, _ := middleware.GetUserIDFromContext(c)
	employee, err := h.employeeService.CreateEmployee(c.Request.Context(), req, creatorUserID)
	if err != nil {
		respondError(c, err)
		return
	}

	recordActivity(c, h.activity, "create", "employees", &employee.EmployeeID, "created employee profile", "")
	respondSuccess(c, http.StatusCreated, dto.ToEmployeeResponse(employee))
}

// updateEmployee godoc
// @Summary Update an employee's wage
// @Tags employees
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Param employee body dto.UpdateEmployeeRequest true "Fields to update"
// @Success 200 {object} dto.Response{data=dto.EmployeeResponse}
// @Failure 400 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /employees/{id} [put]
func (h *employeeHandler) updateEmployee(c *gin.Context) {
	var req dto.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	requestingUserID, _ := middleware.GetUserIDFromContext(c)
	employee, err := h.employeeService.UpdateEmployee(c.Request.Context(), c.Param("id"), req, requestingUserID)
	if err != nil {
		respondError(c, err)
		return
	}

	recordActivity(c, h.activity, "update", "employees", &employee.EmployeeID, "updated employee wage", "")
	respondSuccess(c, http.StatusOK, dto.ToEmployeeResponse(employee))
}

func (h *employeeHandler) setEmployeeActive(c *gin.Context, active bool) {
	requestingUserID, _ := middleware.GetUserIDFromContext(c)
	employee, err := h.employeeService.SetEmployeeActive(c.Request.Context(), c.Param("id"), active, requestingUserID)
	if err != nil {
		respondError(c, err)
		return
	}

	action := "deactivate"
	if active {
		action = "activate"
	}
	recordActivity(c, h.activity, action, "employees", &employee.EmployeeID, action+"d employee", "")
	respondSuccess(c, http.StatusOK, dto.ToEmployeeResponse(employee))
}

func (h *employeeHandler) activateEmployee(c *gin.Context) {
	h.setEmployeeActive(c, true)
}

func (h *employeeHandler) deactivateEmployee(c *gin.Context) {
	h.setEmployeeActive(c, false)
}

// deleteEmployee godoc
// @Summary Delete an employee profile
// @Tags employees
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} dto.Response
// @Failure 404 {object} dto.Response
// @Security BearerAuth
// @Router /employees/{id} [delete]
func (h *employeeHandler) deleteEmployee(c *gin.Context) {
	employeeID := c.Param("id")
	requestingUserID, _ := middleware.GetUserIDFromContext(c)

	if err := h.employeeService.DeleteEmployee(c.Request.Context(), employeeID, requestingUserID); err != nil {
		respondError(c, err)
		return
	}

	recordActivity(c, h.activity, "delete", "employees", &employeeID, "deleted employee profile", "")
	respondMessage(c, http.StatusOK, "employee deleted")
}
