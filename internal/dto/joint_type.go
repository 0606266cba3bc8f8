package dto

// CapacityInput is one inline capacity rule on joint-type create/update.
type CapacityInput struct {
	Governorate string  `json:"governorate" binding:"required"`
	TimeSlotID  *string `json:"time_slot_id"`
	Capacity    int     `json:"capacity"`
}

// CreateJointTypeRequest is the body of POST /api/joint-types.
type CreateJointTypeRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Capacities  []CapacityInput `json:"capacities"`
}

// UpdateJointTypeRequest is the body of PUT /api/joint-types/:id.
// When Capacities is non-nil the joint type's rules are replaced wholesale.
type UpdateJointTypeRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Capacities  []CapacityInput `json:"capacities"`
}

// CreateCapacityRequest is the body of POST /api/joint-types/capacities.
type CreateCapacityRequest struct {
	JointTypeID string  `json:"joint_type_id"`
	TimeSlotID  *string `json:"time_slot_id"`
	Governorate string  `json:"governorate"`
	Capacity    int     `json:"capacity"`
}

// UpdateCapacityRequest is the body of PUT /api/joint-types/capacities/:id.
type UpdateCapacityRequest struct {
	JointTypeID string  `json:"joint_type_id"`
	TimeSlotID  *string `json:"time_slot_id"`
	Governorate string  `json:"governorate"`
	Capacity    int     `json:"capacity"`
}

// SlotWithStatusRequest is the query of
// GET /api/joint-types/:jointTypeId/capacities/with-slots.
type SlotWithStatusRequest struct {
	Governorate string `form:"governorate" binding:"required"`
	Date        string `form:"date" binding:"required"`
}

// Slot status tags in the with-slots view.
const (
	SlotStatusOpen   = "open"
	SlotStatusFull   = "full"
	SlotStatusClosed = "closed"
)

// SlotWithStatusResponse is one slot in the admin with-slots view.
type SlotWithStatusResponse struct {
	ID        string `json:"_id"`
	TimeSlot  string `json:"time_slot"` // "start - end"
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Capacity  int    `json:"capacity"`
	Remaining int    `json:"remaining"`
	Status    string `json:"status"` // open | full | closed
}
