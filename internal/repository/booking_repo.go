package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/KirolosTawadros/IMSC-HIP-Booking/internal/model"
)

// ErrCapacityExceeded is returned by CreateAdmitted when the capacity rule is
// already fully consumed for the requested date.
var ErrCapacityExceeded = errors.New("capacity exceeded")

// ActiveBookingStatuses are the statuses that consume capacity. Rejected and
// cancelled bookings release their seat.
var ActiveBookingStatuses = []string{model.BookingStatusPending, model.BookingStatusApproved}

// BookingRepository is the booking-ledger data access interface.
type BookingRepository interface {
	// CreateAdmitted inserts the booking only if the capacity rule still has a
	// free seat for the booking's (joint type, time slot, date, governorate)
	// tuple. The check and insert run in one transaction with the rule row
	// locked, so two concurrent requests cannot both take the last seat.
	CreateAdmitted(ctx context.Context, booking *model.Booking, capacityID string) error
	GetByID(ctx context.Context, id string) (*model.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]model.Booking, error)
	ListByStatus(ctx context.Context, status string) ([]model.Booking, error)
	List(ctx context.Context) ([]model.Booking, error)
	// CountActive counts capacity-consuming bookings for one tuple.
	CountActive(ctx context.Context, jointTypeID, timeSlotID, date, governorate string) (int64, error)
	// CountActiveBySlot returns per-time-slot active counts for a
	// (joint type, date, governorate) triple.
	CountActiveBySlot(ctx context.Context, jointTypeID, date, governorate string) (map[string]int64, error)
	Update(ctx context.Context, booking *model.Booking) error
	AppendEvent(ctx context.Context, event *model.BookingEvent) error
	ListEvents(ctx context.Context, bookingID string) ([]model.BookingEvent, error)
}

type bookingRepo struct {
	db *gorm.DB
}

// NewBookingRepo creates the GORM-backed BookingRepository.
func NewBookingRepo(db *gorm.DB) BookingRepository {
	return &bookingRepo{db: db}
}

func (r *bookingRepo) CreateAdmitted(ctx context.Context, booking *model.Booking, capacityID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// The capacity rule row is the serialization point for its
		// (joint type, time slot?, governorate) partition.
		var rule model.JointCapacity
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("capacity_id = ?", capacityID).
			First(&rule).Error; err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&model.Booking{}).
			Where("joint_type_id = ? AND time_slot_id = ? AND date = ? AND governorate = ?",
				booking.JointTypeID, booking.TimeSlotID, booking.Date, booking.Governorate).
			Where("status IN ?", ActiveBookingStatuses).
			Count(&count).Error; err != nil {
			return err
		}
		if count >= int64(rule.Capacity) {
			return ErrCapacityExceeded
		}

		if err := tx.Create(booking).Error; err != nil {
			return err
		}

		return tx.Create(&model.BookingEvent{
			BookingID: booking.BookingID,
			ActorType: model.ActorDoctor,
			ActorID:   &booking.UserID,
			Action:    model.BookingActionCreated,
		}).Error
	})
}

func (r *bookingRepo) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	var booking model.Booking
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("User.Hospital").
		Preload("JointType").
		Preload("TimeSlot").
		Preload("Approver").
		Where("booking_id = ?", id).
		First(&booking).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepo) ListByUser(ctx context.Context, userID string) ([]model.Booking, error) {
	var bookings []model.Booking
	err := r.db.WithContext(ctx).
		Preload("JointType").
		Preload("TimeSlot").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepo) ListByStatus(ctx context.Context, status string) ([]model.Booking, error) {
	var bookings []model.Booking
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("User.Hospital").
		Preload("JointType").
		Preload("TimeSlot").
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepo) List(ctx context.Context) ([]model.Booking, error) {
	var bookings []model.Booking
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("User.Hospital").
		Preload("JointType").
		Preload("TimeSlot").
		Preload("Approver").
		Order("created_at DESC").
		Find(&bookings).Error
	return bookings, err
}

func (r *bookingRepo) CountActive(ctx context.Context, jointTypeID, timeSlotID, date, governorate string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.Booking{}).
		Where("joint_type_id = ? AND time_slot_id = ? AND date = ? AND governorate = ?",
			jointTypeID, timeSlotID, date, governorate).
		Where("status IN ?", ActiveBookingStatuses).
		Count(&count).Error
	return count, err
}

func (r *bookingRepo) CountActiveBySlot(ctx context.Context, jointTypeID, date, governorate string) (map[string]int64, error) {
	type row struct {
		TimeSlotID string
		Count      int64
	}
	var rows []row
	err := r.db.WithContext(ctx).
		Model(&model.Booking{}).
		Select("time_slot_id, COUNT(*) AS count").
		Where("joint_type_id = ? AND date = ? AND governorate = ?", jointTypeID, date, governorate).
		Where("status IN ?", ActiveBookingStatuses).
		Group("time_slot_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.TimeSlotID] = r.Count
	}
	return counts, nil
}

func (r *bookingRepo) Update(ctx context.Context, booking *model.Booking) error {
	return r.db.WithContext(ctx).Save(booking).Error
}

func (r *bookingRepo) AppendEvent(ctx context.Context, event *model.BookingEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

func (r *bookingRepo) ListEvents(ctx context.Context, bookingID string) ([]model.BookingEvent, error) {
	var events []model.BookingEvent
	err := r.db.WithContext(ctx).
		Where("booking_id = ?", bookingID).
		Order("created_at ASC").
		Find(&events).Error
	return events, err
}
