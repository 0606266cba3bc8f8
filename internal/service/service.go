package service

import (
	"go.uber.org/zap"

	"github.com/KirolosTawadros/IMSC-HIP-Booking/config"
	"github.com/KirolosTawadros/IMSC-HIP-Booking/internal/repository"
	"github.com/KirolosTawadros/IMSC-HIP-Booking/pkg/jwt"
	"github.com/KirolosTawadros/IMSC-HIP-Booking/pkg/redis"
)

// Service aggregates every business-logic interface.
type Service struct {
	Auth         AuthService
	User         UserService
	Hospital     HospitalService
	JointType    JointTypeService
	TimeSlot     TimeSlotService
	Booking      BookingService
	Notification NotificationService
}

// NewService wires the service layer. rdb may be nil; auth then skips the
// token blacklist and logout becomes a no-op on the server side.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	notification := NewNotificationService(repo, logger)
	return &Service{
		Auth:         NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		User:         NewUserService(repo, logger),
		Hospital:     NewHospitalService(repo, logger),
		JointType:    NewJointTypeService(cfg, repo, logger),
		TimeSlot:     NewTimeSlotService(repo, logger),
		Booking:      NewBookingService(cfg, repo, notification, logger),
		Notification: notification,
	}
}
