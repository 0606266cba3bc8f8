package model

// Staff roles.
const (
	StaffRoleAdmin = "admin"
	StaffRoleStaff = "staff"
)

// Staff is a back-office account — maps to staff.
// Credentials live here (bcrypt hashes), not in a hard-coded list.
type Staff struct {
	StaffID      string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"_id"`
	Name         string `gorm:"type:varchar(100);not null"                     json:"name"`
	Email        string `gorm:"type:varchar(255);not null;uniqueIndex"         json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null"                     json:"-"`
	Role         string `gorm:"type:varchar(20);not null;default:'staff'"      json:"role"`
	BaseModel
}

func (Staff) TableName() string { return "staff" }
