package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/paydesk/compchange/internal/apperrors"
	portssvc "github.com/paydesk/compchange/internal/core/ports/services"
	"github.com/paydesk/compchange/internal/dto"
	"github.com/paydesk/compchange/internal/middleware"
)

// catalogHandler handles HTTP requests for the change type/option catalogs.
type catalogHandler struct {
	catalogService portssvc.CatalogSvcFacade
}

// newCatalogHandler creates a new catalogHandler.
func newCatalogHandler(cs portssvc.CatalogSvcFacade) *catalogHandler {
	return &catalogHandler{catalogService: cs}
}

// registerCatalogRoutes registers routes related to the change catalogs.
func registerCatalogRoutes(rg *gin.RouterGroup, catalogService portssvc.CatalogSvcFacade) {
	h := newCatalogHandler(catalogService)

	types := rg.Group("/change-types")
	{
		types.POST("", h.createChangeType)
		types.GET("", h.listChangeTypes)
		types.GET("/:changeTypeID", h.getChangeType)
		types.POST("/:changeTypeID/options", h.createChangeOption)
		types.GET("/:changeTypeID/options", h.listChangeOptions)
	}
}

// createChangeType godoc
// @Summary Create a change type
// @Description Registers a new change type in the catalog.
// @Tags catalog
// @Accept json
// @Produce json
// @Param changeType body dto.CreateChangeTypeRequest true "Change type details"
// @Success 201 {object} dto.ChangeTypeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /change-types [post]
func (h *catalogHandler) createChangeType(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateChangeTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	changeType, err := h.catalogService.CreateChangeType(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to create change type", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create change type"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToChangeTypeResponse(changeType))
}

// listChangeTypes godoc
// @Summary List change types
// @Description Lists catalog change types, optionally filtered by direction.
// @Tags catalog
// @Produce json
// @Param direction query string false "ENTITLEMENT or DEDUCTION"
// @Success 200 {array} dto.ChangeTypeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /change-types [get]
func (h *catalogHandler) listChangeTypes(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListChangeTypesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	types, err := h.catalogService.ListChangeTypes(c.Request.Context(), params.Direction)
	if err != nil {
		logger.Error("Failed to list change types", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list change types"})
		return
	}

	responses := make([]dto.ChangeTypeResponse, len(types))
	for i := range types {
		responses[i] = dto.ToChangeTypeResponse(&types[i])
	}
	c.JSON(http.StatusOK, responses)
}

// getChangeType godoc
// @Summary Get a change type
// @Description Retrieves a change type by its ID.
// @Tags catalog
// @Produce json
// @Param changeTypeID path string true "Change type ID"
// @Success 200 {object} dto.ChangeTypeResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Change type not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /change-types/{changeTypeID} [get]
func (h *catalogHandler) getChangeType(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	changeTypeID := c.Param("changeTypeID")

	changeType, err := h.catalogService.GetChangeTypeByID(c.Request.Context(), changeTypeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Change type not found"})
			return
		}
		logger.Error("Failed to get change type", slog.String("change_type_id", changeTypeID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve change type"})
		return
	}

	c.JSON(http.StatusOK, dto.ToChangeTypeResponse(changeType))
}

// createChangeOption godoc
// @Summary Create a change option
// @Description Registers a new pricing option under a change type.
// @Tags catalog
// @Accept json
// @Produce json
// @Param changeTypeID path string true "Change type ID"
// @Param option body dto.CreateChangeOptionRequest true "Option details"
// @Success 201 {object} dto.ChangeOptionResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Change type not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /change-types/{changeTypeID}/options [post]
func (h *catalogHandler) createChangeOption(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	changeTypeID := c.Param("changeTypeID")

	var req dto.CreateChangeOptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	option, err := h.catalogService.CreateChangeOption(c.Request.Context(), changeTypeID, req, creatorUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Change type not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to create change option", slog.String("change_type_id", changeTypeID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create change option"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToChangeOptionResponse(option))
}

// listChangeOptions godoc
// @Summary List change options
// @Description Lists the active pricing options of a change type.
// @Tags catalog
// @Produce json
// @Param changeTypeID path string true "Change type ID"
// @Success 200 {array} dto.ChangeOptionResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Change type not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /change-types/{changeTypeID}/options [get]
func (h *catalogHandler) listChangeOptions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	changeTypeID := c.Param("changeTypeID")

	options, err := h.catalogService.ListChangeOptions(c.Request.Context(), changeTypeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Change type not found"})
			return
		}
		logger.Error("Failed to list change options", slog.String("change_type_id", changeTypeID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list change options"})
		return
	}

	responses := make([]dto.ChangeOptionResponse, len(options))
	for i := range options {
		responses[i] = dto.ToChangeOptionResponse(&options[i])
	}
	c.JSON(http.StatusOK, responses)
}
