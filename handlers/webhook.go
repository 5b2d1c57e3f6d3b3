package handlers

import (
	"errors"
	"net/http"

	"nutrify/models"
	"nutrify/services/export"
	"nutrify/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// WebhookHandler receives calendar booking confirmations.
type WebhookHandler struct {
	Service export.Service
	Logger  *zap.Logger
}

func NewWebhookHandler(svc export.Service, logger *zap.Logger) *WebhookHandler {
	return &WebhookHandler{Service: svc, Logger: logger}
}

// BookingConfirmedHandler processes one webhook delivery.
// 200 with a summary (or a no-op acknowledgment for irrelevant event types),
// 400 for malformed payloads, 404 when no session id resolves or it matches
// no record, 500 on internal failure. The provider redelivers on non-2xx, so
// irrelevant events must still acknowledge.
func (h *WebhookHandler) BookingConfirmedHandler(c *gin.Context) {
	var event models.BookingWebhookEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "malformed webhook payload", err.Error())
		return
	}

	result, err := h.Service.HandleBookingConfirmed(c.Request.Context(), event)
	if err != nil {
		switch {
		case errors.Is(err, export.ErrNoSessionID):
			utils.JSONError(c, http.StatusNotFound, "no session identifier in payload", "")
		case errors.Is(err, export.ErrRecordNotFound):
			utils.JSONError(c, http.StatusNotFound, "questionnaire not found", err.Error())
		default:
			h.Logger.Error("webhook: export pipeline failed", zap.Error(err))
			utils.JSONError(c, http.StatusInternalServerError, "export failed", err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, result)
}
