package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/KirolosTawadros/IMSC-HIP-Booking/internal/dto"
	"github.com/KirolosTawadros/IMSC-HIP-Booking/internal/service"
	"github.com/KirolosTawadros/IMSC-HIP-Booking/pkg/response"
)

// TimeSlotHandler serves the time-slot endpoints.
type TimeSlotHandler struct {
	timeSlotSvc service.TimeSlotService
}

// NewTimeSlotHandler creates a TimeSlotHandler.
func NewTimeSlotHandler(timeSlotSvc service.TimeSlotService) *TimeSlotHandler {
	return &TimeSlotHandler{timeSlotSvc: timeSlotSvc}
}

// ListTimeSlots returns every time slot with its display string.
// GET /api/time-slots
func (h *TimeSlotHandler) ListTimeSlots(c *gin.Context) {
	slots, err := h.timeSlotSvc.List(c.Request.Context())
	if err != nil {
		h.handleTimeSlotError(c, err)
		return
	}

	response.OK(c, slots)
}

// CreateTimeSlot adds a time slot.
// POST /api/time-slots
func (h *TimeSlotHandler) CreateTimeSlot(c *gin.Context) {
	var req dto.CreateTimeSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	slot, err := h.timeSlotSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleTimeSlotError(c, err)
		return
	}

	response.Created(c, slot)
}

// UpdateTimeSlot updates a time slot.
// PUT /api/time-slots/:id
func (h *TimeSlotHandler) UpdateTimeSlot(c *gin.Context) {
	var req dto.UpdateTimeSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "start_time and end_time are required")
		return
	}

	slot, err := h.timeSlotSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleTimeSlotError(c, err)
		return
	}

	response.OK(c, slot)
}

// DeleteTimeSlot removes a time slot.
// DELETE /api/time-slots/:id
func (h *TimeSlotHandler) DeleteTimeSlot(c *gin.Context) {
	if err := h.timeSlotSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleTimeSlotError(c, err)
		return
	}

	response.OKMessage(c, "Time slot deleted")
}

// handleTimeSlotError maps time-slot business errors to HTTP responses.
func (h *TimeSlotHandler) handleTimeSlotError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTimeSlotNotFound):
		response.NotFound(c, "Time slot not found")
	case errors.Is(err, service.ErrInvalidTimeRange):
		response.BadRequest(c, "start_time must be before end_time")
	default:
		response.InternalError(c)
	}
}
