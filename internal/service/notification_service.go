package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/KirolosTawadros/IMSC-HIP-Booking/internal/dto"
	"github.com/KirolosTawadros/IMSC-HIP-Booking/internal/model"
	"github.com/KirolosTawadros/IMSC-HIP-Booking/internal/repository"
)

var (
	ErrNotificationNotFound = errors.New("notification not found")
)

// NotificationService manages doctor notifications. The BookingXxx emitters
// are called by the booking lifecycle; their messages are the Arabic strings
// the mobile app renders verbatim.
type NotificationService interface {
	Create(ctx context.Context, req *dto.CreateNotificationRequest) (*model.Notification, error)
	ListByUser(ctx context.Context, userID string) ([]model.Notification, error)
	MarkRead(ctx context.Context, id string) (*model.Notification, error)
	MarkAllRead(ctx context.Context, userID string) error
	Delete(ctx context.Context, id string) error

	BookingCreated(ctx context.Context, booking *model.Booking) error
	BookingApproved(ctx context.Context, booking *model.Booking, notes string) error
	BookingRejected(ctx context.Context, booking *model.Booking, notes string) error
	BookingCancelled(ctx context.Context, userID string) error
}

type notificationService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewNotificationService creates a NotificationService instance.
func NewNotificationService(repo *repository.Repository, logger *zap.Logger) NotificationService {
	return &notificationService{repo: repo, logger: logger}
}

// ────────────────────── CRUD ──────────────────────

func (s *notificationService) Create(ctx context.Context, req *dto.CreateNotificationRequest) (*model.Notification, error) {
	n := &model.Notification{
		UserID:    req.UserID,
		BookingID: req.BookingID,
		Title:     req.Title,
		Message:   req.Message,
		Type:      req.Type,
	}

	if err := s.repo.Notification.Create(ctx, n); err != nil {
		s.logger.Error("create notification failed", zap.Error(err))
		return nil, err
	}

	return s.repo.Notification.GetByID(ctx, n.NotificationID)
}

func (s *notificationService) ListByUser(ctx context.Context, userID string) ([]model.Notification, error) {
	notifications, err := s.repo.Notification.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("list notifications failed", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	return notifications, nil
}

func (s *notificationService) MarkRead(ctx context.Context, id string) (*model.Notification, error) {
	if err := s.repo.Notification.MarkRead(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotificationNotFound
		}
		s.logger.Error("mark notification read failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return s.repo.Notification.GetByID(ctx, id)
}

func (s *notificationService) MarkAllRead(ctx context.Context, userID string) error {
	if err := s.repo.Notification.MarkAllRead(ctx, userID); err != nil {
		s.logger.Error("mark all notifications read failed", zap.String("user_id", userID), zap.Error(err))
		return err
	}
	return nil
}

func (s *notificationService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Notification.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotificationNotFound
		}
		return err
	}
	return s.repo.Notification.Delete(ctx, id)
}

// ────────────────────── lifecycle emitters ──────────────────────

func (s *notificationService) BookingCreated(ctx context.Context, booking *model.Booking) error {
	return s.repo.Notification.Create(ctx, &model.Notification{
		UserID:    booking.UserID,
		BookingID: &booking.BookingID,
		Title:     "تم إنشاء الحجز",
		Message:   "تم إنشاء حجزك بنجاح وهو في انتظار الموافقة من الإدارة.",
		Type:      model.NotificationBookingCreated,
	})
}

func (s *notificationService) BookingApproved(ctx context.Context, booking *model.Booking, notes string) error {
	msg := fmt.Sprintf("تمت الموافقة على حجزك لعملية %s في %s الساعة %s.",
		booking.JointType.Name, booking.Date, booking.TimeSlot.StartTime)
	if notes != "" {
		msg += fmt.Sprintf(" ملاحظات: %s", notes)
	}
	return s.repo.Notification.Create(ctx, &model.Notification{
		UserID:    booking.UserID,
		BookingID: &booking.BookingID,
		Title:     "تمت الموافقة على الحجز",
		Message:   msg,
		Type:      model.NotificationBookingApproved,
	})
}

func (s *notificationService) BookingRejected(ctx context.Context, booking *model.Booking, notes string) error {
	msg := fmt.Sprintf("تم رفض حجزك لعملية %s في %s الساعة %s.",
		booking.JointType.Name, booking.Date, booking.TimeSlot.StartTime)
	if notes != "" {
		msg += fmt.Sprintf(" سبب الرفض: %s", notes)
	}
	return s.repo.Notification.Create(ctx, &model.Notification{
		UserID:    booking.UserID,
		BookingID: &booking.BookingID,
		Title:     "تم رفض الحجز",
		Message:   msg,
		Type:      model.NotificationBookingRejected,
	})
}

// BookingCancelled carries no booking reference; the booking is logically
// closed by the time the notice is written.
func (s *notificationService) BookingCancelled(ctx context.Context, userID string) error {
	return s.repo.Notification.Create(ctx, &model.Notification{
		UserID:  userID,
		Title:   "تم إلغاء الحجز",
		Message: "تم إلغاء حجزك بنجاح.",
		Type:    model.NotificationBookingCancelled,
	})
}
