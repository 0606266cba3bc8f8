package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/KirolosTawadros/IMSC-HIP-Booking/internal/dto"
	"github.com/KirolosTawadros/IMSC-HIP-Booking/internal/service"
	"github.com/KirolosTawadros/IMSC-HIP-Booking/pkg/response"
)

// NotificationHandler serves the notification endpoints.
type NotificationHandler struct {
	notificationSvc service.NotificationService
}

// NewNotificationHandler creates a NotificationHandler.
func NewNotificationHandler(notificationSvc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationSvc: notificationSvc}
}

// ListUserNotifications returns one doctor's notifications, newest first.
// GET /api/notifications/user/:userId
func (h *NotificationHandler) ListUserNotifications(c *gin.Context) {
	notifications, err := h.notificationSvc.ListByUser(c.Request.Context(), c.Param("userId"))
	if err != nil {
		h.handleNotificationError(c, err)
		return
	}

	response.OK(c, notifications)
}

// CreateNotification writes an arbitrary notification.
// POST /api/notifications
func (h *NotificationHandler) CreateNotification(c *gin.Context) {
	var req dto.CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	n, err := h.notificationSvc.Create(c.Request.Context(), &req)
	if err != nil {
		h.handleNotificationError(c, err)
		return
	}

	response.Created(c, n)
}

// MarkRead marks one notification read.
// PUT /api/notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	n, err := h.notificationSvc.MarkRead(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleNotificationError(c, err)
		return
	}

	response.OK(c, n)
}

// MarkAllRead marks every unread notification of a doctor read.
// PUT /api/notifications/user/:userId/read-all
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	if err := h.notificationSvc.MarkAllRead(c.Request.Context(), c.Param("userId")); err != nil {
		h.handleNotificationError(c, err)
		return
	}

	response.OKMessage(c, "All notifications marked as read")
}

// DeleteNotification removes a notification.
// DELETE /api/notifications/:id
func (h *NotificationHandler) DeleteNotification(c *gin.Context) {
	if err := h.notificationSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleNotificationError(c, err)
		return
	}

	response.OKMessage(c, "Notification deleted")
}

// handleNotificationError maps notification business errors to HTTP responses.
func (h *NotificationHandler) handleNotificationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotificationNotFound):
		response.NotFound(c, "Notification not found")
	default:
		response.InternalError(c)
	}
}
