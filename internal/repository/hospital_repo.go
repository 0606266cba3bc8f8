package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/KirolosTawadros/IMSC-HIP-Booking/internal/model"
)

// HospitalRepository is the hospital data access interface.
type HospitalRepository interface {
	Create(ctx context.Context, hospital *model.Hospital) error
	GetByID(ctx context.Context, id string) (*model.Hospital, error)
	List(ctx context.Context) ([]model.Hospital, error)
	Update(ctx context.Context, hospital *model.Hospital) error
	Delete(ctx context.Context, id string) error
}

type hospitalRepo struct {
	db *gorm.DB
}

// NewHospitalRepo creates the GORM-backed HospitalRepository.
func NewHospitalRepo(db *gorm.DB) HospitalRepository {
	return &hospitalRepo{db: db}
}

func (r *hospitalRepo) Create(ctx context.Context, hospital *model.Hospital) error {
	return r.db.WithContext(ctx).Create(hospital).Error
}

func (r *hospitalRepo) GetByID(ctx context.Context, id string) (*model.Hospital, error) {
	var hospital model.Hospital
	err := r.db.WithContext(ctx).
		Where("hospital_id = ?", id).
		First(&hospital).Error
	if err != nil {
		return nil, err
	}
	return &hospital, nil
}

func (r *hospitalRepo) List(ctx context.Context) ([]model.Hospital, error) {
	var hospitals []model.Hospital
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&hospitals).Error
	return hospitals, err
}

func (r *hospitalRepo) Update(ctx context.Context, hospital *model.Hospital) error {
	return r.db.WithContext(ctx).Save(hospital).Error
}

func (r *hospitalRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("hospital_id = ?", id).
		Delete(&model.Hospital{}).Error
}
