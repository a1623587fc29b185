package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/paydesk/compchange/internal/apperrors"
	portssvc "github.com/paydesk/compchange/internal/core/ports/services"
	"github.com/paydesk/compchange/internal/dto"
	"github.com/paydesk/compchange/internal/middleware"
)

// employeeHandler handles HTTP requests related to employees, including the
// per-employee change list and effective final salary views.
type employeeHandler struct {
	employeeService portssvc.EmployeeSvcFacade
	changeService   portssvc.ChangeSvcFacade
}

// newEmployeeHandler creates a new employeeHandler.
func newEmployeeHandler(es portssvc.EmployeeSvcFacade, cs portssvc.ChangeSvcFacade) *employeeHandler {
	return &employeeHandler{
		employeeService: es,
		changeService:   cs,
	}
}

// registerEmployeeRoutes registers routes related to employees.
func registerEmployeeRoutes(rg *gin.RouterGroup, employeeService portssvc.EmployeeSvcFacade, changeService portssvc.ChangeSvcFacade) {
	h := newEmployeeHandler(employeeService, changeService)

	employees := rg.Group("/employees")
	{
		employees.POST("", h.createEmployee)
		employees.GET("", h.listEmployees)
		employees.GET("/:employeeID", h.getEmployee)
		employees.GET("/:employeeID/changes", h.listEmployeeChanges)
		employees.GET("/:employeeID/final-salary", h.getFinalSalary)
	}
}

// createEmployee godoc
// @Summary Register an employee
// @Description Creates a new employee record.
// @Tags employees
// @Accept json
// @Produce json
// @Param employee body dto.CreateEmployeeRequest true "Employee details"
// @Success 201 {object} dto.EmployeeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees [post]
func (h *employeeHandler) createEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	employee, err := h.employeeService.CreateEmployee(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to create employee", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create employee"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToEmployeeResponse(employee))
}

// listEmployees godoc
// @Summary List employees
// @Description Retrieves a paginated list of employees.
// @Tags employees
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Pagination token from a previous page"
// @Success 200 {object} dto.ListEmployeesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees [get]
func (h *employeeHandler) listEmployees(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListEmployeesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.employeeService.ListEmployees(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to list employees", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list employees"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// getEmployee godoc
// @Summary Get an employee
// @Description Retrieves an employee by ID.
// @Tags employees
// @Produce json
// @Param employeeID path string true "Employee ID"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees/{employeeID} [get]
func (h *employeeHandler) getEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID := c.Param("employeeID")

	employee, err := h.employeeService.GetEmployeeByID(c.Request.Context(), employeeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Employee not found"})
			return
		}
		logger.Error("Failed to get employee", slog.String("employee_id", employeeID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve employee"})
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeResponse(employee))
}

// listEmployeeChanges godoc
// @Summary List an employee's change requests
// @Description Retrieves an employee's change requests, optionally only the active ones.
// @Tags employees
// @Produce json
// @Param employeeID path string true "Employee ID"
// @Param activeOnly query bool false "Only non-stopped, non-rejected changes" default(false)
// @Success 200 {array} dto.ChangeResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees/{employeeID}/changes [get]
func (h *employeeHandler) listEmployeeChanges(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID := c.Param("employeeID")
	activeOnly, _ := strconv.ParseBool(c.DefaultQuery("activeOnly", "false"))

	changes, err := h.changeService.ListChangesByEmployee(c.Request.Context(), employeeID, activeOnly)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Employee not found"})
			return
		}
		logger.Error("Failed to list employee changes", slog.String("employee_id", employeeID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list employee changes"})
		return
	}

	c.JSON(http.StatusOK, dto.ToChangeResponses(changes))
}

// getFinalSalary godoc
// @Summary Get an employee's effective final salary
// @Description Computes base salary plus active entitlements minus active deductions.
// @Tags employees
// @Produce json
// @Param employeeID path string true "Employee ID"
// @Success 200 {object} dto.FinalSalaryResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees/{employeeID}/final-salary [get]
func (h *employeeHandler) getFinalSalary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID := c.Param("employeeID")

	resp, err := h.changeService.GetEffectiveFinalSalary(c.Request.Context(), employeeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Employee not found"})
			return
		}
		logger.Error("Failed to compute effective final salary", slog.String("employee_id", employeeID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to compute final salary"})
		return
	}

	c.JSON(http.StatusOK, resp)
}
