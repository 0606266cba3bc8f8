package repository

import "gorm.io/gorm"

// Repository aggregates every data-access interface.
type Repository struct {
	User          UserRepository
	Hospital      HospitalRepository
	Staff         StaffRepository
	JointType     JointTypeRepository
	JointCapacity JointCapacityRepository
	TimeSlot      TimeSlotRepository
	Booking       BookingRepository
	Notification  NotificationRepository
}

// NewRepository wires the GORM implementations.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		User:          NewUserRepo(db),
		Hospital:      NewHospitalRepo(db),
		Staff:         NewStaffRepo(db),
		JointType:     NewJointTypeRepo(db),
		JointCapacity: NewJointCapacityRepo(db),
		TimeSlot:      NewTimeSlotRepo(db),
		Booking:       NewBookingRepo(db),
		Notification:  NewNotificationRepo(db),
	}
}
