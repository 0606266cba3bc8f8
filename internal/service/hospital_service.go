package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/KirolosTawadros/IMSC-HIP-Booking/internal/dto"
	"github.com/KirolosTawadros/IMSC-HIP-Booking/internal/model"
	"github.com/KirolosTawadros/IMSC-HIP-Booking/internal/repository"
)

var (
	ErrHospitalNotFound = errors.New("hospital not found")
)

// HospitalService manages the hospital directory.
type HospitalService interface {
	Create(ctx context.Context, req *dto.CreateHospitalRequest) (*model.Hospital, error)
	GetByID(ctx context.Context, id string) (*model.Hospital, error)
	List(ctx context.Context) ([]model.Hospital, error)
	Update(ctx context.Context, id string, req *dto.UpdateHospitalRequest) (*model.Hospital, error)
	Delete(ctx context.Context, id string) error
}

type hospitalService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewHospitalService creates a HospitalService instance.
func NewHospitalService(repo *repository.Repository, logger *zap.Logger) HospitalService {
	return &hospitalService{repo: repo, logger: logger}
}

func (s *hospitalService) Create(ctx context.Context, req *dto.CreateHospitalRequest) (*model.Hospital, error) {
	if !model.IsValidGovernorate(req.Governorate) {
		return nil, ErrInvalidGovernorate
	}

	hospital := &model.Hospital{
		Name:        req.Name,
		Governorate: req.Governorate,
	}

	if err := s.repo.Hospital.Create(ctx, hospital); err != nil {
		s.logger.Error("create hospital failed", zap.Error(err))
		return nil, err
	}

	return hospital, nil
}

func (s *hospitalService) GetByID(ctx context.Context, id string) (*model.Hospital, error) {
	hospital, err := s.repo.Hospital.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHospitalNotFound
		}
		s.logger.Error("load hospital failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return hospital, nil
}

func (s *hospitalService) List(ctx context.Context) ([]model.Hospital, error) {
	hospitals, err := s.repo.Hospital.List(ctx)
	if err != nil {
		s.logger.Error("list hospitals failed", zap.Error(err))
		return nil, err
	}
	return hospitals, nil
}

func (s *hospitalService) Update(ctx context.Context, id string, req *dto.UpdateHospitalRequest) (*model.Hospital, error) {
	hospital, err := s.repo.Hospital.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHospitalNotFound
		}
		s.logger.Error("load hospital failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if !model.IsValidGovernorate(req.Governorate) {
		return nil, ErrInvalidGovernorate
	}

	hospital.Name = req.Name
	hospital.Governorate = req.Governorate

	if err := s.repo.Hospital.Update(ctx, hospital); err != nil {
		s.logger.Error("update hospital failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return hospital, nil
}

func (s *hospitalService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Hospital.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrHospitalNotFound
		}
		s.logger.Error("load hospital failed", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Hospital.Delete(ctx, id); err != nil {
		s.logger.Error("delete hospital failed", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}
