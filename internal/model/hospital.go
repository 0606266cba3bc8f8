package model

// Hospital maps to hospitals.
type Hospital struct {
	HospitalID  string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"_id"`
	Name        string `gorm:"type:varchar(200);not null;uniqueIndex"         json:"name"`
	Governorate string `gorm:"type:varchar(50);not null"                      json:"governorate"`
	BaseModel
}

func (Hospital) TableName() string { return "hospitals" }
