package model

// JointType is a bookable surgical category — maps to joint_types.
type JointType struct {
	JointTypeID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"_id"`
	Name        string `gorm:"type:varchar(100);not null"                     json:"name"`
	Description string `gorm:"type:text;not null;default:''"                  json:"description"`
	BaseModel
}

func (JointType) TableName() string { return "joint_types" }

// JointCapacity is a capacity rule — maps to joint_capacities.
// TimeSlotID nil means a governorate-wide "general" rule used as a fallback
// limit during booking admission when no slot-specific rule exists.
type JointCapacity struct {
	CapacityID  string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"_id"`
	JointTypeID string  `gorm:"type:uuid;not null"                             json:"joint_type_id"`
	TimeSlotID  *string `gorm:"type:uuid"                                      json:"time_slot_id,omitempty"`
	Governorate string  `gorm:"type:varchar(50);not null"                      json:"governorate"`
	Capacity    int     `gorm:"not null"                                       json:"capacity"`
	BaseModel

	JointType *JointType `gorm:"foreignKey:JointTypeID;references:JointTypeID" json:"joint_type,omitempty"`
	TimeSlot  *TimeSlot  `gorm:"foreignKey:TimeSlotID;references:TimeSlotID"   json:"time_slot,omitempty"`
}

func (JointCapacity) TableName() string { return "joint_capacities" }
