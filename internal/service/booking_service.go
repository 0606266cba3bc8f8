package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/KirolosTawadros/IMSC-HIP-Booking/config"
	"github.com/KirolosTawadros/IMSC-HIP-Booking/internal/dto"
	"github.com/KirolosTawadros/IMSC-HIP-Booking/internal/model"
	"github.com/KirolosTawadros/IMSC-HIP-Booking/internal/repository"
)

// ── booking module business errors ──

var (
	ErrNoCapacityConfigured    = errors.New("no capacity found for this joint type and time slot in your governorate")
	ErrSlotFullyBooked         = errors.New("this time slot is fully booked for your governorate")
	ErrBookingNotFound         = errors.New("booking not found")
	ErrBookingPast             = errors.New("cannot cancel past bookings")
	ErrBookingStarted          = errors.New("cannot cancel bookings for time slots that have already started")
	ErrBookingAlreadyCancelled = errors.New("booking is already cancelled")
	ErrBookingNotCancellable   = errors.New("only pending or approved bookings can be cancelled")
	ErrBookingNotPending       = errors.New("booking has already been decided")
)

const dateLayout = "2006-01-02"

// BookingService owns booking admission, availability, and the lifecycle.
type BookingService interface {
	Create(ctx context.Context, req *dto.CreateBookingRequest) (*model.Booking, error)
	Availability(ctx context.Context, req *dto.AvailabilityRequest) ([]dto.AvailabilitySlotResponse, error)
	Cancel(ctx context.Context, bookingID string) error
	Approve(ctx context.Context, bookingID string, req *dto.BookingDecisionRequest) (*model.Booking, error)
	Reject(ctx context.Context, bookingID string, req *dto.BookingDecisionRequest) (*model.Booking, error)
	GetByID(ctx context.Context, bookingID string) (*model.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]model.Booking, error)
	ListPending(ctx context.Context) ([]model.Booking, error)
	ListAll(ctx context.Context) ([]model.Booking, error)
	ListEvents(ctx context.Context, bookingID string) ([]model.BookingEvent, error)
}

type bookingService struct {
	cfg          *config.Config
	repo         *repository.Repository
	notification NotificationService
	logger       *zap.Logger
	now          func() time.Time
}

// NewBookingService creates a BookingService instance.
func NewBookingService(
	cfg *config.Config,
	repo *repository.Repository,
	notification NotificationService,
	logger *zap.Logger,
) BookingService {
	return &bookingService{
		cfg:          cfg,
		repo:         repo,
		notification: notification,
		logger:       logger,
		now:          time.Now,
	}
}

// ────────────────────── Create ──────────────────────

// Create runs booking admission: resolve the capacity rule for the doctor's
// governorate (slot-specific first, governorate-wide fallback), then insert
// the booking under the rule's row lock so the count-and-insert is atomic.
func (s *bookingService) Create(ctx context.Context, req *dto.CreateBookingRequest) (*model.Booking, error) {
	user, err := s.repo.User.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("load user failed", zap.String("user_id", req.UserID), zap.Error(err))
		return nil, err
	}

	rule, err := s.resolveCapacity(ctx, req.JointTypeID, req.TimeSlotID, user.Governorate)
	if err != nil {
		return nil, err
	}

	booking := &model.Booking{
		UserID:      req.UserID,
		JointTypeID: req.JointTypeID,
		Date:        req.Date,
		TimeSlotID:  req.TimeSlotID,
		Governorate: user.Governorate,
	}

	if err := s.repo.Booking.CreateAdmitted(ctx, booking, rule.CapacityID); err != nil {
		if errors.Is(err, repository.ErrCapacityExceeded) {
			return nil, ErrSlotFullyBooked
		}
		s.logger.Error("create booking failed",
			zap.String("user_id", req.UserID),
			zap.String("governorate", user.Governorate),
			zap.Error(err))
		return nil, err
	}

	// Notification failure must not undo an admitted booking.
	if err := s.notification.BookingCreated(ctx, booking); err != nil {
		s.logger.Warn("booking created notification failed",
			zap.String("booking_id", booking.BookingID), zap.Error(err))
	}

	return s.repo.Booking.GetByID(ctx, booking.BookingID)
}

// resolveCapacity finds the rule governing an admission: the exact
// (joint type, time slot, governorate) rule wins, otherwise the slotless
// governorate-wide rule applies.
func (s *bookingService) resolveCapacity(ctx context.Context, jointTypeID, timeSlotID, governorate string) (*model.JointCapacity, error) {
	rule, err := s.repo.JointCapacity.FindExact(ctx, jointTypeID, timeSlotID, governorate)
	if err == nil {
		return rule, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("capacity lookup failed", zap.Error(err))
		return nil, err
	}

	rule, err = s.repo.JointCapacity.FindGeneral(ctx, jointTypeID, governorate)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoCapacityConfigured
		}
		s.logger.Error("capacity lookup failed", zap.Error(err))
		return nil, err
	}
	return rule, nil
}

// ────────────────────── Availability ──────────────────────

// Availability computes the doctor-facing per-slot remaining counts for a
// date and joint type in the doctor's governorate. Slots without any rule
// report capacity 0.
func (s *bookingService) Availability(ctx context.Context, req *dto.AvailabilityRequest) ([]dto.AvailabilitySlotResponse, error) {
	user, err := s.repo.User.GetByID(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("load user failed", zap.String("user_id", req.UserID), zap.Error(err))
		return nil, err
	}

	slots, err := s.repo.TimeSlot.List(ctx)
	if err != nil {
		s.logger.Error("list time slots failed", zap.Error(err))
		return nil, err
	}

	rules, err := s.repo.JointCapacity.ListByJointTypeAndGovernorate(ctx, req.JointTypeID, user.Governorate)
	if err != nil {
		s.logger.Error("list capacity rules failed", zap.Error(err))
		return nil, err
	}

	counts, err := s.repo.Booking.CountActiveBySlot(ctx, req.JointTypeID, req.Date, user.Governorate)
	if err != nil {
		s.logger.Error("count bookings failed", zap.Error(err))
		return nil, err
	}

	var general *model.JointCapacity
	bySlot := make(map[string]*model.JointCapacity, len(rules))
	for i := range rules {
		if rules[i].TimeSlotID == nil {
			general = &rules[i]
			continue
		}
		bySlot[*rules[i].TimeSlotID] = &rules[i]
	}

	result := make([]dto.AvailabilitySlotResponse, 0, len(slots))
	for _, slot := range slots {
		rule := bySlot[slot.TimeSlotID]
		if rule == nil {
			rule = general
		}

		capacity := 0
		if rule != nil {
			capacity = rule.Capacity
		}
		available := capacity - int(counts[slot.TimeSlotID])
		if available < 0 {
			available = 0
		}

		result = append(result, dto.AvailabilitySlotResponse{
			ID:          slot.TimeSlotID,
			StartTime:   slot.StartTime,
			EndTime:     slot.EndTime,
			Available:   available,
			Capacity:    capacity,
			Governorate: user.Governorate,
		})
	}

	return result, nil
}

// ────────────────────── Cancel ──────────────────────

// Cancel is the doctor-initiated transition to cancelled. Only future
// bookings qualify: past dates are refused, and same-day bookings are refused
// once the slot's start time has passed.
func (s *bookingService) Cancel(ctx context.Context, bookingID string) error {
	booking, err := s.repo.Booking.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBookingNotFound
		}
		s.logger.Error("load booking failed", zap.String("id", bookingID), zap.Error(err))
		return err
	}

	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	bookingDate, err := time.ParseInLocation(dateLayout, booking.Date, now.Location())
	if err != nil {
		s.logger.Error("bad booking date", zap.String("id", bookingID), zap.String("date", booking.Date))
		return err
	}

	if bookingDate.Before(today) {
		return ErrBookingPast
	}
	if bookingDate.Equal(today) {
		currentMinutes := now.Hour()*60 + now.Minute()
		startMinutes, err := parseMinutes(booking.TimeSlot.StartTime)
		if err != nil {
			s.logger.Error("bad slot start time", zap.String("id", bookingID),
				zap.String("start_time", booking.TimeSlot.StartTime))
			return err
		}
		if currentMinutes >= startMinutes {
			return ErrBookingStarted
		}
	}

	switch booking.Status {
	case model.BookingStatusCancelled:
		return ErrBookingAlreadyCancelled
	case model.BookingStatusRejected:
		return ErrBookingNotCancellable
	}

	booking.Status = model.BookingStatusCancelled
	if err := s.repo.Booking.Update(ctx, booking); err != nil {
		s.logger.Error("cancel booking failed", zap.String("id", bookingID), zap.Error(err))
		return err
	}

	if err := s.repo.Booking.AppendEvent(ctx, &model.BookingEvent{
		BookingID: booking.BookingID,
		ActorType: model.ActorDoctor,
		ActorID:   &booking.UserID,
		Action:    model.BookingActionCancelled,
	}); err != nil {
		s.logger.Warn("append cancel event failed", zap.String("id", bookingID), zap.Error(err))
	}

	if err := s.notification.BookingCancelled(ctx, booking.UserID); err != nil {
		s.logger.Warn("booking cancelled notification failed",
			zap.String("id", bookingID), zap.Error(err))
	}

	return nil
}

// parseMinutes converts "HH:MM" to minutes since midnight.
func parseMinutes(t string) (int, error) {
	parts := strings.SplitN(t, ":", 2)
	if len(parts) != 2 {
		return 0, errors.New("invalid time: " + t)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, err
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, err
	}
	return hours*60 + minutes, nil
}

// ────────────────────── Approve / Reject ──────────────────────

func (s *bookingService) Approve(ctx context.Context, bookingID string, req *dto.BookingDecisionRequest) (*model.Booking, error) {
	return s.decide(ctx, bookingID, req, model.BookingStatusApproved)
}

func (s *bookingService) Reject(ctx context.Context, bookingID string, req *dto.BookingDecisionRequest) (*model.Booking, error) {
	return s.decide(ctx, bookingID, req, model.BookingStatusRejected)
}

// decide applies a staff decision. Only pending bookings can be decided;
// approve and reject are one-way.
func (s *bookingService) decide(ctx context.Context, bookingID string, req *dto.BookingDecisionRequest, status string) (*model.Booking, error) {
	booking, err := s.repo.Booking.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("load booking failed", zap.String("id", bookingID), zap.Error(err))
		return nil, err
	}

	if booking.Status != model.BookingStatusPending {
		return nil, ErrBookingNotPending
	}

	now := s.now()
	booking.Status = status
	booking.ApprovedBy = &req.StaffID
	booking.ApprovedAt = &now
	booking.Notes = req.Notes

	if err := s.repo.Booking.Update(ctx, booking); err != nil {
		s.logger.Error("update booking failed", zap.String("id", bookingID), zap.Error(err))
		return nil, err
	}

	action := model.BookingActionApproved
	if status == model.BookingStatusRejected {
		action = model.BookingActionRejected
	}
	if err := s.repo.Booking.AppendEvent(ctx, &model.BookingEvent{
		BookingID: booking.BookingID,
		ActorType: model.ActorStaff,
		ActorID:   &req.StaffID,
		Action:    action,
		Notes:     req.Notes,
	}); err != nil {
		s.logger.Warn("append decision event failed", zap.String("id", bookingID), zap.Error(err))
	}

	if status == model.BookingStatusApproved {
		err = s.notification.BookingApproved(ctx, booking, req.Notes)
	} else {
		err = s.notification.BookingRejected(ctx, booking, req.Notes)
	}
	if err != nil {
		s.logger.Warn("booking decision notification failed",
			zap.String("id", bookingID), zap.Error(err))
	}

	return booking, nil
}

// ────────────────────── queries ──────────────────────

func (s *bookingService) GetByID(ctx context.Context, bookingID string) (*model.Booking, error) {
	booking, err := s.repo.Booking.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("load booking failed", zap.String("id", bookingID), zap.Error(err))
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) ListByUser(ctx context.Context, userID string) ([]model.Booking, error) {
	bookings, err := s.repo.Booking.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Error("list user bookings failed", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	return bookings, nil
}

func (s *bookingService) ListPending(ctx context.Context) ([]model.Booking, error) {
	bookings, err := s.repo.Booking.ListByStatus(ctx, model.BookingStatusPending)
	if err != nil {
		s.logger.Error("list pending bookings failed", zap.Error(err))
		return nil, err
	}
	return bookings, nil
}

func (s *bookingService) ListAll(ctx context.Context) ([]model.Booking, error) {
	bookings, err := s.repo.Booking.List(ctx)
	if err != nil {
		s.logger.Error("list bookings failed", zap.Error(err))
		return nil, err
	}
	return bookings, nil
}

func (s *bookingService) ListEvents(ctx context.Context, bookingID string) ([]model.BookingEvent, error) {
	if _, err := s.repo.Booking.GetByID(ctx, bookingID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	events, err := s.repo.Booking.ListEvents(ctx, bookingID)
	if err != nil {
		s.logger.Error("list booking events failed", zap.String("id", bookingID), zap.Error(err))
		return nil, err
	}
	return events, nil
}
