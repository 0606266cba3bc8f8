package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/KirolosTawadros/IMSC-HIP-Booking/internal/model"
)

// JointTypeRepository is the joint-type data access interface.
type JointTypeRepository interface {
	Create(ctx context.Context, jt *model.JointType) error
	GetByID(ctx context.Context, id string) (*model.JointType, error)
	List(ctx context.Context) ([]model.JointType, error)
	Update(ctx context.Context, jt *model.JointType) error
	// Delete removes the joint type and cascades to its capacity rules.
	Delete(ctx context.Context, id string) error
}

type jointTypeRepo struct {
	db *gorm.DB
}

// NewJointTypeRepo creates the GORM-backed JointTypeRepository.
func NewJointTypeRepo(db *gorm.DB) JointTypeRepository {
	return &jointTypeRepo{db: db}
}

func (r *jointTypeRepo) Create(ctx context.Context, jt *model.JointType) error {
	return r.db.WithContext(ctx).Create(jt).Error
}

func (r *jointTypeRepo) GetByID(ctx context.Context, id string) (*model.JointType, error) {
	var jt model.JointType
	err := r.db.WithContext(ctx).
		Where("joint_type_id = ?", id).
		First(&jt).Error
	if err != nil {
		return nil, err
	}
	return &jt, nil
}

func (r *jointTypeRepo) List(ctx context.Context) ([]model.JointType, error) {
	var types []model.JointType
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&types).Error
	return types, err
}

func (r *jointTypeRepo) Update(ctx context.Context, jt *model.JointType) error {
	return r.db.WithContext(ctx).Save(jt).Error
}

func (r *jointTypeRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("joint_type_id = ?", id).
			Delete(&model.JointCapacity{}).Error; err != nil {
			return err
		}
		return tx.Where("joint_type_id = ?", id).
			Delete(&model.JointType{}).Error
	})
}
