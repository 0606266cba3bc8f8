package dto

// CreateBookingRequest is the body of POST /api/bookings.
type CreateBookingRequest struct {
	UserID      string `json:"user_id" binding:"required"`
	JointTypeID string `json:"joint_type_id" binding:"required"`
	Date        string `json:"date" binding:"required"`
	TimeSlotID  string `json:"time_slot_id" binding:"required"`
}

// AvailabilityRequest is the query of GET /api/bookings/availability.
type AvailabilityRequest struct {
	Date        string `form:"date" binding:"required"`
	JointTypeID string `form:"joint_type_id" binding:"required"`
	UserID      string `form:"user_id" binding:"required"`
}

// AvailabilitySlotResponse is one slot in the doctor-facing availability view.
type AvailabilitySlotResponse struct {
	ID          string `json:"id"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Available   int    `json:"available"`
	Capacity    int    `json:"capacity"`
	Governorate string `json:"governorate"`
}

// BookingDecisionRequest is the body of the staff approve/reject endpoints.
type BookingDecisionRequest struct {
	StaffID string `json:"staff_id" binding:"required"`
	Notes   string `json:"notes"`
}
