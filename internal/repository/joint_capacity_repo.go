package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/KirolosTawadros/IMSC-HIP-Booking/internal/model"
)

// JointCapacityRepository is the capacity-rule data access interface.
type JointCapacityRepository interface {
	Create(ctx context.Context, rule *model.JointCapacity) error
	GetByID(ctx context.Context, id string) (*model.JointCapacity, error)
	// FindExact returns the rule for a specific (joint type, time slot, governorate).
	FindExact(ctx context.Context, jointTypeID, timeSlotID, governorate string) (*model.JointCapacity, error)
	// FindGeneral returns the slotless governorate-wide rule, if configured.
	FindGeneral(ctx context.Context, jointTypeID, governorate string) (*model.JointCapacity, error)
	ListByJointTypeAndGovernorate(ctx context.Context, jointTypeID, governorate string) ([]model.JointCapacity, error)
	List(ctx context.Context) ([]model.JointCapacity, error)
	// ExistsDuplicate reports whether another rule already covers the triple.
	// excludeID skips one rule (the one being updated); pass "" on create.
	ExistsDuplicate(ctx context.Context, jointTypeID string, timeSlotID *string, governorate, excludeID string) (bool, error)
	Update(ctx context.Context, rule *model.JointCapacity) error
	Delete(ctx context.Context, id string) error
	// ReplaceForJointType drops every rule of a joint type and inserts the
	// given set in one transaction (wholesale replace on joint-type update).
	ReplaceForJointType(ctx context.Context, jointTypeID string, caps []model.JointCapacity) error
}

type jointCapacityRepo struct {
	db *gorm.DB
}

// NewJointCapacityRepo creates the GORM-backed JointCapacityRepository.
func NewJointCapacityRepo(db *gorm.DB) JointCapacityRepository {
	return &jointCapacityRepo{db: db}
}

func (r *jointCapacityRepo) Create(ctx context.Context, rule *model.JointCapacity) error {
	return r.db.WithContext(ctx).Create(rule).Error
}

func (r *jointCapacityRepo) GetByID(ctx context.Context, id string) (*model.JointCapacity, error) {
	var rule model.JointCapacity
	err := r.db.WithContext(ctx).
		Preload("JointType").
		Preload("TimeSlot").
		Where("capacity_id = ?", id).
		First(&rule).Error
	if err != nil {
		return nil, err
	}
	return &rule, nil
}

func (r *jointCapacityRepo) FindExact(ctx context.Context, jointTypeID, timeSlotID, governorate string) (*model.JointCapacity, error) {
	var rule model.JointCapacity
	err := r.db.WithContext(ctx).
		Where("joint_type_id = ? AND time_slot_id = ? AND governorate = ?", jointTypeID, timeSlotID, governorate).
		First(&rule).Error
	if err != nil {
		return nil, err
	}
	return &rule, nil
}

func (r *jointCapacityRepo) FindGeneral(ctx context.Context, jointTypeID, governorate string) (*model.JointCapacity, error) {
	var rule model.JointCapacity
	err := r.db.WithContext(ctx).
		Where("joint_type_id = ? AND governorate = ? AND time_slot_id IS NULL", jointTypeID, governorate).
		First(&rule).Error
	if err != nil {
		return nil, err
	}
	return &rule, nil
}

func (r *jointCapacityRepo) ListByJointTypeAndGovernorate(ctx context.Context, jointTypeID, governorate string) ([]model.JointCapacity, error) {
	var caps []model.JointCapacity
	err := r.db.WithContext(ctx).
		Where("joint_type_id = ? AND governorate = ?", jointTypeID, governorate).
		Find(&caps).Error
	return caps, err
}

func (r *jointCapacityRepo) List(ctx context.Context) ([]model.JointCapacity, error) {
	var caps []model.JointCapacity
	err := r.db.WithContext(ctx).
		Preload("JointType").
		Preload("TimeSlot").
		Order("created_at DESC").
		Find(&caps).Error
	return caps, err
}

func (r *jointCapacityRepo) ExistsDuplicate(ctx context.Context, jointTypeID string, timeSlotID *string, governorate, excludeID string) (bool, error) {
	db := r.db.WithContext(ctx).
		Model(&model.JointCapacity{}).
		Where("joint_type_id = ? AND governorate = ?", jointTypeID, governorate)

	if timeSlotID != nil {
		db = db.Where("time_slot_id = ?", *timeSlotID)
	} else {
		db = db.Where("time_slot_id IS NULL")
	}
	if excludeID != "" {
		db = db.Where("capacity_id <> ?", excludeID)
	}

	var count int64
	if err := db.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *jointCapacityRepo) Update(ctx context.Context, rule *model.JointCapacity) error {
	return r.db.WithContext(ctx).Save(rule).Error
}

func (r *jointCapacityRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("capacity_id = ?", id).
		Delete(&model.JointCapacity{}).Error
}

func (r *jointCapacityRepo) ReplaceForJointType(ctx context.Context, jointTypeID string, caps []model.JointCapacity) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("joint_type_id = ?", jointTypeID).
			Delete(&model.JointCapacity{}).Error; err != nil {
			return err
		}
		if len(caps) == 0 {
			return nil
		}
		return tx.Create(&caps).Error
	})
}
