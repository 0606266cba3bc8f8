package handler

import "github.com/KirolosTawadros/IMSC-HIP-Booking/internal/service"

// Handler aggregates every HTTP handler.
type Handler struct {
	Auth         *AuthHandler
	User         *UserHandler
	Hospital     *HospitalHandler
	JointType    *JointTypeHandler
	TimeSlot     *TimeSlotHandler
	Booking      *BookingHandler
	Notification *NotificationHandler
}

// NewHandler wires the handler layer.
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:         NewAuthHandler(svc.Auth),
		User:         NewUserHandler(svc.User),
		Hospital:     NewHospitalHandler(svc.Hospital),
		JointType:    NewJointTypeHandler(svc.JointType),
		TimeSlot:     NewTimeSlotHandler(svc.TimeSlot),
		Booking:      NewBookingHandler(svc.Booking),
		Notification: NewNotificationHandler(svc.Notification),
	}
}
