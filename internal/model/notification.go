package model

// Notification types mirror the booking lifecycle transitions that emit them.
const (
	NotificationBookingCreated   = "booking_created"
	NotificationBookingApproved  = "booking_approved"
	NotificationBookingRejected  = "booking_rejected"
	NotificationBookingCancelled = "booking_cancelled"
)

// Notification maps to notifications. Append-only except for the read flag.
// BookingID is nil for cancellation notices, where the booking is logically
// closed by the time the message is written.
type Notification struct {
	NotificationID string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"_id"`
	UserID         string  `gorm:"type:uuid;not null"                             json:"user_id"`
	BookingID      *string `gorm:"type:uuid"                                      json:"booking_id,omitempty"`
	Title          string  `gorm:"type:varchar(200);not null"                     json:"title"`
	Message        string  `gorm:"type:text;not null"                             json:"message"`
	Type           string  `gorm:"type:varchar(30);not null"                      json:"type"`
	Read           bool    `gorm:"not null;default:false"                         json:"read"`
	BaseModel

	Booking *Booking `gorm:"foreignKey:BookingID;references:BookingID" json:"booking,omitempty"`
}

func (Notification) TableName() string { return "notifications" }
