package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/paydesk/compchange/internal/core/domain"
	portssvc "github.com/paydesk/compchange/internal/core/ports/services"
	"github.com/paydesk/compchange/internal/dto"
	"github.com/paydesk/compchange/internal/middleware"
)

// messageHandler serves the department inbox and outbox views.
type messageHandler struct {
	messageService portssvc.MessageSvcFacade
	userService    portssvc.UserSvcFacade
}

// newMessageHandler creates a new messageHandler.
func newMessageHandler(ms portssvc.MessageSvcFacade, us portssvc.UserSvcFacade) *messageHandler {
	return &messageHandler{
		messageService: ms,
		userService:    us,
	}
}

// registerMessageRoutes registers the inbox/outbox routes.
func registerMessageRoutes(rg *gin.RouterGroup, messageService portssvc.MessageSvcFacade, userService portssvc.UserSvcFacade) {
	h := newMessageHandler(messageService, userService)

	messages := rg.Group("/messages")
	{
		messages.GET("/inbox", h.getInbox)
		messages.GET("/outbox", h.getOutbox)
	}
}

// getInbox godoc
// @Summary Department inbox
// @Description Returns the change requests awaiting the authenticated user's department, newest first.
// @Tags messages
// @Produce json
// @Success 200 {object} dto.ListMessagesResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /messages/inbox [get]
func (h *messageHandler) getInbox(c *gin.Context) {
	h.serveProjection(c, h.messageService.GetInbox)
}

// getOutbox godoc
// @Summary Department outbox
// @Description Returns the change requests the authenticated user's department originated or decided, newest first.
// @Tags messages
// @Produce json
// @Success 200 {object} dto.ListMessagesResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /messages/outbox [get]
func (h *messageHandler) getOutbox(c *gin.Context) {
	h.serveProjection(c, h.messageService.GetOutbox)
}

func (h *messageHandler) serveProjection(c *gin.Context, project func(ctx context.Context, department domain.Department) ([]domain.DepartmentMessage, error)) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		logger.Error("Failed to resolve authenticated user", slog.String("user_id", userID), slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	messages, err := project(c.Request.Context(), user.Department)
	if err != nil {
		logger.Error("Failed to build department projection", slog.String("department", string(user.Department)), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to load messages"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListMessagesResponse(user.Department, messages))
}
