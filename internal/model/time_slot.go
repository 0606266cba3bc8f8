package model

// TimeSlot is a bookable daily time window — maps to time_slots.
// Times are "HH:MM" strings, e.g. "09:00".
type TimeSlot struct {
	TimeSlotID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"_id"`
	StartTime  string `gorm:"type:varchar(5);not null"                       json:"start_time"`
	EndTime    string `gorm:"type:varchar(5);not null"                       json:"end_time"`
	BaseModel
}

func (TimeSlot) TableName() string { return "time_slots" }
