package handlers

import (
	"net/http"

	"nutrify/services/booking"
	"nutrify/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler exposes slot and reservation management to the administrator.
type AdminHandler struct {
	Service booking.Service
	Logger  *zap.Logger
}

func NewAdminHandler(svc booking.Service, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{Service: svc, Logger: logger}
}

// ListSlotsHandler returns all slots, including ones already taken.
func (h *AdminHandler) ListSlotsHandler(c *gin.Context) {
	slots, err := h.Service.ListSlots(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list slots", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"slots": slots})
}

// CreateSlotHandler adds an open slot. 409 on an identical (date, time) pair.
func (h *AdminHandler) CreateSlotHandler(c *gin.Context) {
	var input struct {
		Date string `json:"date"`
		Time string `json:"time"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	slot, err := h.Service.CreateSlot(c.Request.Context(), input.Date, input.Time)
	if err != nil {
		renderBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"slot": slot})
}

// DeleteSlotHandler removes a slot by id.
func (h *AdminHandler) DeleteSlotHandler(c *gin.Context) {
	if err := h.Service.DeleteSlot(c.Request.Context(), c.Param("id")); err != nil {
		renderBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": c.Param("id")})
}

// ListReservationsHandler returns every reservation.
func (h *AdminHandler) ListReservationsHandler(c *gin.Context) {
	reservations, err := h.Service.ListReservations(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list reservations", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservations": reservations})
}

// UpdateReservationStatusHandler sets a reservation's status.
func (h *AdminHandler) UpdateReservationStatusHandler(c *gin.Context) {
	var input struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	reservation, err := h.Service.UpdateReservationStatus(c.Request.Context(), c.Param("id"), input.Status)
	if err != nil {
		renderBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reservation": reservation})
}
