package handlers

import (
	"errors"
	"net/http"

	"nutrify/models"
	"nutrify/services/payment"
	"nutrify/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler exposes payment initiation.
type PaymentHandler struct {
	Service payment.Service
	Logger  *zap.Logger
}

func NewPaymentHandler(svc payment.Service, logger *zap.Logger) *PaymentHandler {
	return &PaymentHandler{Service: svc, Logger: logger}
}

// CreatePaymentHandler returns the gateway hand-off for a paid offering.
func (h *PaymentHandler) CreatePaymentHandler(c *gin.Context) {
	var req models.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	resp, err := h.Service.CreatePayment(c.Request.Context(), req)
	if err != nil {
		var invalid *payment.InvalidRequestError
		if errors.As(err, &invalid) {
			utils.JSONError(c, http.StatusBadRequest, "invalid payment request", invalid.Message)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "payment initiation failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}
