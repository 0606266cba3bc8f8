package model

import "time"

// Booking statuses. rejected and cancelled are terminal; cancellation is
// reachable from both pending and approved.
const (
	BookingStatusPending   = "pending"
	BookingStatusApproved  = "approved"
	BookingStatusRejected  = "rejected"
	BookingStatusCancelled = "cancelled"
)

// Booking maps to bookings.
// Governorate is copied from the user at creation time and never changes
// afterwards; all capacity accounting for the booking uses this snapshot.
type Booking struct {
	BookingID   string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"_id"`
	UserID      string     `gorm:"type:uuid;not null"                             json:"user_id"`
	JointTypeID string     `gorm:"type:uuid;not null"                             json:"joint_type_id"`
	Date        string     `gorm:"type:varchar(10);not null"                      json:"date"`
	TimeSlotID  string     `gorm:"type:uuid;not null"                             json:"time_slot_id"`
	Governorate string     `gorm:"type:varchar(50);not null"                      json:"governorate"`
	Status      string     `gorm:"type:varchar(20);not null;default:'pending'"    json:"status"`
	ApprovedBy  *string    `gorm:"type:uuid"                                      json:"approved_by,omitempty"`
	ApprovedAt  *time.Time `json:"approved_at,omitempty"`
	Notes       string     `gorm:"type:text;not null;default:''"                  json:"notes"`
	BaseModel

	User      *User      `gorm:"foreignKey:UserID;references:UserID"           json:"user,omitempty"`
	JointType *JointType `gorm:"foreignKey:JointTypeID;references:JointTypeID" json:"joint_type,omitempty"`
	TimeSlot  *TimeSlot  `gorm:"foreignKey:TimeSlotID;references:TimeSlotID"   json:"time_slot,omitempty"`
	Approver  *Staff     `gorm:"foreignKey:ApprovedBy;references:StaffID"      json:"approver,omitempty"`
}

func (Booking) TableName() string { return "bookings" }

// Booking event actions and actor types.
const (
	BookingActionCreated   = "created"
	BookingActionApproved  = "approved"
	BookingActionRejected  = "rejected"
	BookingActionCancelled = "cancelled"

	ActorDoctor = "doctor"
	ActorStaff  = "staff"
)

// BookingEvent is one entry in a booking's audit trail — maps to
// booking_events. Lifecycle transitions append here instead of concatenating
// marker strings into the free-text notes field.
type BookingEvent struct {
	EventID   string    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"_id"`
	BookingID string    `gorm:"type:uuid;not null"                             json:"booking_id"`
	ActorType string    `gorm:"type:varchar(20);not null"                      json:"actor_type"`
	ActorID   *string   `gorm:"type:uuid"                                      json:"actor_id,omitempty"`
	Action    string    `gorm:"type:varchar(20);not null"                      json:"action"`
	Notes     string    `gorm:"type:text;not null;default:''"                  json:"notes"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
}

func (BookingEvent) TableName() string { return "booking_events" }
