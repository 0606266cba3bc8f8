package dto

// CreateTimeSlotRequest is the body of POST /api/time-slots.
type CreateTimeSlotRequest struct {
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

// UpdateTimeSlotRequest is the body of PUT /api/time-slots/:id.
type UpdateTimeSlotRequest struct {
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

// TimeSlotResponse adds the display string the clients render in pickers.
type TimeSlotResponse struct {
	ID        string `json:"_id"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	TimeSlot  string `json:"time_slot"` // "start - end"
}
