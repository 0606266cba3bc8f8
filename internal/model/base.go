package model

import "time"

// BaseModel holds the audit timestamps embedded by every business model.
type BaseModel struct {
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// Governorates served by the program. Capacity accounting is partitioned by
// these values, so they are validated on every write that carries one.
const (
	GovernorateGreaterCairo = "القاهرة الكبرى"
	GovernorateAssiut       = "أسيوط"
	GovernorateSohag        = "سوهاج"
	GovernorateTanta        = "طنطا"
	GovernorateMansoura     = "المنصورة"
)

// Governorates lists every supported governorate.
var Governorates = []string{
	GovernorateGreaterCairo,
	GovernorateAssiut,
	GovernorateSohag,
	GovernorateTanta,
	GovernorateMansoura,
}

// IsValidGovernorate reports whether g is one of the supported governorates.
func IsValidGovernorate(g string) bool {
	for _, v := range Governorates {
		if v == g {
			return true
		}
	}
	return false
}
