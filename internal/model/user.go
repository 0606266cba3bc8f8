package model

// User statuses. Registration always starts pending; staff move the account
// to approved or rejected.
const (
	UserStatusPending  = "pending"
	UserStatusApproved = "approved"
	UserStatusRejected = "rejected"
)

// User is a doctor account — maps to users.
type User struct {
	UserID          string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"_id"`
	Name            string `gorm:"type:varchar(100);not null"                     json:"name"`
	PhoneNumber     string `gorm:"type:varchar(20);not null;uniqueIndex"          json:"phone_number"`
	HospitalID      string `gorm:"type:uuid;not null"                             json:"hospital_id"`
	Governorate     string `gorm:"type:varchar(50);not null"                      json:"governorate"`
	Status          string `gorm:"type:varchar(20);not null;default:'pending'"    json:"status"`
	RejectionReason string `gorm:"type:text;not null;default:''"                  json:"rejectionReason"`
	BaseModel

	Hospital *Hospital `gorm:"foreignKey:HospitalID;references:HospitalID" json:"hospital,omitempty"`
}

func (User) TableName() string { return "users" }
