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
	ErrTimeSlotNotFound = errors.New("time slot not found")
	ErrInvalidTimeRange = errors.New("start_time must be before end_time")
)

// TimeSlotService manages the daily operation windows.
type TimeSlotService interface {
	Create(ctx context.Context, req *dto.CreateTimeSlotRequest) (*dto.TimeSlotResponse, error)
	GetByID(ctx context.Context, id string) (*dto.TimeSlotResponse, error)
	List(ctx context.Context) ([]dto.TimeSlotResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateTimeSlotRequest) (*dto.TimeSlotResponse, error)
	Delete(ctx context.Context, id string) error
}

type timeSlotService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewTimeSlotService creates a TimeSlotService instance.
func NewTimeSlotService(repo *repository.Repository, logger *zap.Logger) TimeSlotService {
	return &timeSlotService{repo: repo, logger: logger}
}

func (s *timeSlotService) Create(ctx context.Context, req *dto.CreateTimeSlotRequest) (*dto.TimeSlotResponse, error) {
	if err := validateTimeRange(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	slot := &model.TimeSlot{
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}

	if err := s.repo.TimeSlot.Create(ctx, slot); err != nil {
		s.logger.Error("create time slot failed", zap.Error(err))
		return nil, err
	}

	return toTimeSlotResponse(slot), nil
}

func (s *timeSlotService) GetByID(ctx context.Context, id string) (*dto.TimeSlotResponse, error) {
	slot, err := s.repo.TimeSlot.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTimeSlotNotFound
		}
		s.logger.Error("load time slot failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return toTimeSlotResponse(slot), nil
}

func (s *timeSlotService) List(ctx context.Context) ([]dto.TimeSlotResponse, error) {
	slots, err := s.repo.TimeSlot.List(ctx)
	if err != nil {
		s.logger.Error("list time slots failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.TimeSlotResponse, 0, len(slots))
	for i := range slots {
		result = append(result, *toTimeSlotResponse(&slots[i]))
	}
	return result, nil
}

func (s *timeSlotService) Update(ctx context.Context, id string, req *dto.UpdateTimeSlotRequest) (*dto.TimeSlotResponse, error) {
	slot, err := s.repo.TimeSlot.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTimeSlotNotFound
		}
		s.logger.Error("load time slot failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if err := validateTimeRange(req.StartTime, req.EndTime); err != nil {
		return nil, err
	}

	slot.StartTime = req.StartTime
	slot.EndTime = req.EndTime

	if err := s.repo.TimeSlot.Update(ctx, slot); err != nil {
		s.logger.Error("update time slot failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toTimeSlotResponse(slot), nil
}

func (s *timeSlotService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.TimeSlot.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTimeSlotNotFound
		}
		s.logger.Error("load time slot failed", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.TimeSlot.Delete(ctx, id); err != nil {
		s.logger.Error("delete time slot failed", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ── internal helpers ──

func validateTimeRange(start, end string) error {
	startMin, err := parseMinutes(start)
	if err != nil {
		return ErrInvalidTimeRange
	}
	endMin, err := parseMinutes(end)
	if err != nil {
		return ErrInvalidTimeRange
	}
	if startMin >= endMin {
		return ErrInvalidTimeRange
	}
	return nil
}

func toTimeSlotResponse(slot *model.TimeSlot) *dto.TimeSlotResponse {
	return &dto.TimeSlotResponse{
		ID:        slot.TimeSlotID,
		StartTime: slot.StartTime,
		EndTime:   slot.EndTime,
		TimeSlot:  fmt.Sprintf("%s - %s", slot.StartTime, slot.EndTime),
	}
}
