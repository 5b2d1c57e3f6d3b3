package handlers

import (
	"errors"
	"net/http"

	"nutrify/models"
	"nutrify/services/booking"
	"nutrify/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the public booking flow: listing open slots and
// creating a reservation.
type BookingHandler struct {
	Service booking.Service
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.Service, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// ListSlotsHandler returns open slots ordered by (date, time).
func (h *BookingHandler) ListSlotsHandler(c *gin.Context) {
	slots, err := h.Service.ListSlots(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list slots", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

// CreateReservationHandler books a slot. 200 | 400 missing fields | 409 conflict.
func (h *BookingHandler) CreateReservationHandler(c *gin.Context) {
	var input models.ReservationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	reservation, err := h.Service.CreateReservation(c.Request.Context(), input)
	if err != nil {
		renderBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservation": reservation})
}

// renderBookingError maps booking service errors onto HTTP statuses.
func renderBookingError(c *gin.Context, err error) {
	var conflict *booking.ConflictError
	var notFound *booking.NotFoundError
	var invalid *booking.InvalidInputError

	switch {
	case errors.As(err, &conflict):
		utils.JSONError(c, http.StatusConflict, "conflict", conflict.Message)
	case errors.As(err, &notFound):
		utils.JSONError(c, http.StatusNotFound, "not found", notFound.Error())
	case errors.As(err, &invalid):
		utils.JSONError(c, http.StatusBadRequest, "invalid input", invalid.Message)
	default:
		utils.JSONError(c, http.StatusInternalServerError, "booking failed", err.Error())
	}
}
