package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/KirolosTawadros/IMSC-HIP-Booking/internal/dto"
	"github.com/KirolosTawadros/IMSC-HIP-Booking/internal/service"
	"github.com/KirolosTawadros/IMSC-HIP-Booking/pkg/response"
)

// BookingHandler serves the booking endpoints: doctor-facing creation,
// availability, and cancellation, plus the staff decision endpoints.
type BookingHandler struct {
	bookingSvc service.BookingService
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(bookingSvc service.BookingService) *BookingHandler {
	return &BookingHandler{bookingSvc: bookingSvc}
}

// CreateBooking creates a pending booking, subject to admission control.
// POST /api/bookings
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	booking, err := h.bookingSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleBookingError(c, err)
		return
	}

	response.Created(c, booking)
}

// Availability returns per-slot remaining capacity for the doctor's
// governorate on a date.
// GET /api/bookings/availability?date=...&joint_type_id=...&user_id=...
func (h *BookingHandler) Availability(c *gin.Context) {
	var req dto.AvailabilityRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	slots, err := h.bookingSvc.Availability(c.Request.Context(), &req)
	if err != nil {
		h.handleBookingError(c, err)
		return
	}

	response.OK(c, slots)
}

// ListUserBookings returns one doctor's bookings, newest first.
// GET /api/bookings/user/:userId
func (h *BookingHandler) ListUserBookings(c *gin.Context) {
	bookings, err := h.bookingSvc.ListByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		h.handleBookingError(c, err)
		return
	}

	response.OK(c, bookings)
}

// CancelBooking is the doctor-initiated cancellation.
// DELETE /api/bookings/:bookingId
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	if err := h.bookingSvc.Cancel(c.Request.Context(), c.Param("bookingId")); err != nil {
		h.handleBookingError(c, err)
		return
	}

	response.OKMessage(c, "Booking cancelled successfully")
}

// ── staff endpoints ──

// ListBookings returns every booking for the dashboard.
// GET /api/staff/bookings
func (h *BookingHandler) ListBookings(c *gin.Context) {
	bookings, err := h.bookingSvc.ListAll(c.Request.Context())
	if err != nil {
		h.handleBookingError(c, err)
		return
	}

	response.OK(c, bookings)
}

// ListPendingBookings returns bookings awaiting a decision.
// GET /api/staff/bookings/pending
func (h *BookingHandler) ListPendingBookings(c *gin.Context) {
	bookings, err := h.bookingSvc.ListPending(c.Request.Context())
	if err != nil {
		h.handleBookingError(c, err)
		return
	}

	response.OK(c, bookings)
}

// ApproveBooking applies a staff approval.
// PUT /api/staff/bookings/:id/approve
func (h *BookingHandler) ApproveBooking(c *gin.Context) {
	var req dto.BookingDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	booking, err := h.bookingSvc.Approve(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleBookingError(c, err)
		return
	}

	response.OK(c, booking)
}

// RejectBooking applies a staff rejection.
// PUT /api/staff/bookings/:id/reject
func (h *BookingHandler) RejectBooking(c *gin.Context) {
	var req dto.BookingDecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	booking, err := h.bookingSvc.Reject(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		h.handleBookingError(c, err)
		return
	}

	response.OK(c, booking)
}

// ListBookingEvents returns a booking's audit trail.
// GET /api/staff/bookings/:id/events
func (h *BookingHandler) ListBookingEvents(c *gin.Context) {
	events, err := h.bookingSvc.ListEvents(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleBookingError(c, err)
		return
	}

	response.OK(c, events)
}

// handleBookingError maps booking business errors to HTTP responses.
func (h *BookingHandler) handleBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		response.NotFound(c, "User not found")
	case errors.Is(err, service.ErrBookingNotFound):
		response.NotFound(c, "Booking not found")
	case errors.Is(err, service.ErrNoCapacityConfigured):
		response.BadRequest(c, "No capacity found for this joint type and time slot in your governorate")
	case errors.Is(err, service.ErrSlotFullyBooked):
		response.BadRequest(c, "This time slot is fully booked for your governorate")
	case errors.Is(err, service.ErrBookingPast):
		response.BadRequest(c, "Cannot cancel past bookings")
	case errors.Is(err, service.ErrBookingStarted):
		response.BadRequest(c, "Cannot cancel bookings for time slots that have already started")
	case errors.Is(err, service.ErrBookingAlreadyCancelled):
		response.BadRequest(c, "Booking is already cancelled")
	case errors.Is(err, service.ErrBookingNotCancellable):
		response.BadRequest(c, "Only pending or approved bookings can be cancelled")
	case errors.Is(err, service.ErrBookingNotPending):
		response.BadRequest(c, "Booking has already been decided")
	default:
		response.InternalError(c)
	}
}
