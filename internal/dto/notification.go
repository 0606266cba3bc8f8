package dto

// CreateNotificationRequest is the body of POST /api/notifications.
type CreateNotificationRequest struct {
	UserID    string  `json:"user_id" binding:"required"`
	BookingID *string `json:"booking_id"`
	Type      string  `json:"type" binding:"required"`
	Title     string  `json:"title" binding:"required"`
	Message   string  `json:"message" binding:"required"`
}
