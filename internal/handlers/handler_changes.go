package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/paydesk/compchange/internal/apperrors"
	"github.com/paydesk/compchange/internal/core/domain"
	portssvc "github.com/paydesk/compchange/internal/core/ports/services"
	"github.com/paydesk/compchange/internal/dto"
	"github.com/paydesk/compchange/internal/middleware"
)

// changeHandler handles HTTP requests related to change requests.
type changeHandler struct {
	changeService portssvc.ChangeSvcFacade
	userService   portssvc.UserSvcFacade
}

// newChangeHandler creates a new changeHandler.
func newChangeHandler(cs portssvc.ChangeSvcFacade, us portssvc.UserSvcFacade) *changeHandler {
	return &changeHandler{
		changeService: cs,
		userService:   us,
	}
}

// RegisterChangeRoutes registers routes related to change requests.
func RegisterChangeRoutes(rg *gin.RouterGroup, changeService portssvc.ChangeSvcFacade, userService portssvc.UserSvcFacade) {
	h := newChangeHandler(changeService, userService)

	changes := rg.Group("/changes")
	{
		changes.POST("", h.submitChange)
		changes.GET("", h.listChanges)
		changes.GET("/:changeID", h.getChange)
		changes.DELETE("/:changeID", h.deleteChange)
		changes.POST("/:changeID/decision", h.decideChange)
		changes.POST("/:changeID/stop", h.stopChange)
	}
}

// currentUser resolves the authenticated user from the request context. The
// user's department governs which actions are permitted, so it is always
// looked up server-side, never taken from the request.
func (h *changeHandler) currentUser(c *gin.Context) (*domain.User, bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return nil, false
	}
	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to resolve authenticated user", slog.String("user_id", userID), slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return nil, false
	}
	return user, true
}

// submitChange godoc
// @Summary Submit a change request
// @Description Prices and submits a new compensation change request for an employee.
// @Tags changes
// @Accept json
// @Produce json
// @Param change body dto.SubmitChangeRequest true "Change request details"
// @Success 201 {object} dto.ChangeResponse
// @Failure 400 {object} ErrorResponse "Invalid input or inactive employee/type/option"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Employee, type or option not found"
// @Failure 409 {object} ErrorResponse "Employee already has an active change of this type"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /changes [post]
func (h *changeHandler) submitChange(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SubmitChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for submitChange", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	change, err := h.changeService.SubmitChange(c.Request.Context(), req, user.UserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrDuplicate):
			logger.Warn("Duplicate active change", slog.String("error", err.Error()))
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error submitting change", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			logger.Warn("Dependency not found submitting change", slog.String("error", err.Error()))
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to submit change request", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to submit change request"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToChangeResponse(change))
}

// listChanges godoc
// @Summary List change requests
// @Description Retrieves a paginated list of all change requests.
// @Tags changes
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Pagination token from a previous page"
// @Success 200 {object} dto.ListChangesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /changes [get]
func (h *changeHandler) listChanges(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListChangesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.changeService.ListChanges(c.Request.Context(), params)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to list change requests", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list change requests"})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// getChange godoc
// @Summary Get a change request
// @Description Retrieves a change request with its derived state and status.
// @Tags changes
// @Produce json
// @Param changeID path string true "Change request ID"
// @Success 200 {object} dto.ChangeResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Change request not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /changes/{changeID} [get]
func (h *changeHandler) getChange(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	changeID := c.Param("changeID")

	change, err := h.changeService.GetChangeByID(c.Request.Context(), changeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Change request not found"})
			return
		}
		logger.Error("Failed to get change request", slog.String("change_id", changeID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve change request"})
		return
	}

	c.JSON(http.StatusOK, dto.ToChangeResponse(change))
}

// decideChange godoc
// @Summary Record an approval decision
// @Description Records the authenticated user's department decision (approve or reject) on a change request.
// @Tags changes
// @Accept json
// @Produce json
// @Param changeID path string true "Change request ID"
// @Param decision body dto.DecideRequest true "Decision"
// @Success 200 {object} dto.ChangeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Department cannot decide"
// @Failure 404 {object} ErrorResponse "Change request not found"
// @Failure 409 {object} ErrorResponse "Not awaiting this department's decision"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /changes/{changeID}/decision [post]
func (h *changeHandler) decideChange(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	changeID := c.Param("changeID")

	var req dto.DecideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	change, err := h.changeService.Decide(c.Request.Context(), changeID, user.Department, *req.Approve, user.UserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Change request not found"})
		case errors.Is(err, apperrors.ErrConflict):
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to record decision", slog.String("change_id", changeID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to record decision"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToChangeResponse(change))
}

// stopChange godoc
// @Summary Stop a change request
// @Description Marks a change request stopped. Stopping an already-stopped request is a no-op.
// @Tags changes
// @Accept json
// @Produce json
// @Param changeID path string true "Change request ID"
// @Param stop body dto.StopChangeRequest false "Stop reason"
// @Success 200 {object} dto.ChangeResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Change request not found"
// @Failure 409 {object} ErrorResponse "Rejected requests cannot be stopped"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /changes/{changeID}/stop [post]
func (h *changeHandler) stopChange(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	changeID := c.Param("changeID")

	// The stop reason body is optional, an empty body stops without a reason.
	var req dto.StopChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	change, err := h.changeService.StopChange(c.Request.Context(), changeID, req, user.UserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Change request not found"})
		case errors.Is(err, apperrors.ErrConflict):
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to stop change request", slog.String("change_id", changeID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to stop change request"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToChangeResponse(change))
}

// deleteChange godoc
// @Summary Delete an undecided change request
// @Description Permanently removes a change request. Only HR may delete, and only before any decision was rendered.
// @Tags changes
// @Produce json
// @Param changeID path string true "Change request ID"
// @Success 204 "No Content"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Only HR may delete"
// @Failure 404 {object} ErrorResponse "Change request not found"
// @Failure 409 {object} ErrorResponse "A decision was already rendered"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /changes/{changeID} [delete]
func (h *changeHandler) deleteChange(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	changeID := c.Param("changeID")

	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	if err := h.changeService.DeleteChange(c.Request.Context(), changeID, user.Department, user.UserID); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrForbidden):
			c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Change request not found"})
		case errors.Is(err, apperrors.ErrConflict):
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to delete change request", slog.String("change_id", changeID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete change request"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
