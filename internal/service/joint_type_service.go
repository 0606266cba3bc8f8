package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/KirolosTawadros/IMSC-HIP-Booking/config"
	"github.com/KirolosTawadros/IMSC-HIP-Booking/internal/dto"
	"github.com/KirolosTawadros/IMSC-HIP-Booking/internal/model"
	"github.com/KirolosTawadros/IMSC-HIP-Booking/internal/repository"
)

// ── joint-type module business errors ──

var (
	ErrJointTypeNotFound = errors.New("joint type not found")
	ErrCapacityNotFound  = errors.New("capacity not found")
	// The admin dashboard renders these two verbatim.
	ErrCapacityDuplicate     = errors.New("يوجد بالفعل سعة لهذا النوع والمحافظة والفترة الزمنية.")
	ErrCapacityFieldsMissing = errors.New("يجب إدخال نوع المفصل، المحافظة، الفترة الزمنية، والسعة.")
)

// JointTypeService manages the surgical categories and their capacity rules.
type JointTypeService interface {
	Create(ctx context.Context, req *dto.CreateJointTypeRequest) (*model.JointType, error)
	GetByID(ctx context.Context, id string) (*model.JointType, error)
	List(ctx context.Context) ([]model.JointType, error)
	Update(ctx context.Context, id string, req *dto.UpdateJointTypeRequest) (*model.JointType, error)
	Delete(ctx context.Context, id string) error

	CreateCapacity(ctx context.Context, req *dto.CreateCapacityRequest) (*model.JointCapacity, error)
	ListCapacities(ctx context.Context) ([]model.JointCapacity, error)
	UpdateCapacity(ctx context.Context, id string, req *dto.UpdateCapacityRequest) (*model.JointCapacity, error)
	DeleteCapacity(ctx context.Context, id string) error

	SlotsWithStatus(ctx context.Context, jointTypeID string, req *dto.SlotWithStatusRequest) ([]dto.SlotWithStatusResponse, error)
}

type jointTypeService struct {
	cfg    *config.Config
	repo   *repository.Repository
	logger *zap.Logger
}

// NewJointTypeService creates a JointTypeService instance.
func NewJointTypeService(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) JointTypeService {
	return &jointTypeService{cfg: cfg, repo: repo, logger: logger}
}

// ────────────────────── joint types ──────────────────────

func (s *jointTypeService) Create(ctx context.Context, req *dto.CreateJointTypeRequest) (*model.JointType, error) {
	jt := &model.JointType{
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.repo.JointType.Create(ctx, jt); err != nil {
		s.logger.Error("create joint type failed", zap.Error(err))
		return nil, err
	}

	if len(req.Capacities) > 0 {
		caps := capacityModels(jt.JointTypeID, req.Capacities)
		if err := s.repo.JointCapacity.ReplaceForJointType(ctx, jt.JointTypeID, caps); err != nil {
			s.logger.Error("insert joint type capacities failed",
				zap.String("joint_type_id", jt.JointTypeID), zap.Error(err))
			return nil, err
		}
	}

	return jt, nil
}

func (s *jointTypeService) GetByID(ctx context.Context, id string) (*model.JointType, error) {
	jt, err := s.repo.JointType.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJointTypeNotFound
		}
		s.logger.Error("load joint type failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return jt, nil
}

func (s *jointTypeService) List(ctx context.Context) ([]model.JointType, error) {
	types, err := s.repo.JointType.List(ctx)
	if err != nil {
		s.logger.Error("list joint types failed", zap.Error(err))
		return nil, err
	}
	return types, nil
}

// Update replaces the joint type's fields and, when capacities are supplied,
// its entire rule set.
func (s *jointTypeService) Update(ctx context.Context, id string, req *dto.UpdateJointTypeRequest) (*model.JointType, error) {
	jt, err := s.repo.JointType.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJointTypeNotFound
		}
		s.logger.Error("load joint type failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	jt.Name = req.Name
	jt.Description = req.Description

	if err := s.repo.JointType.Update(ctx, jt); err != nil {
		s.logger.Error("update joint type failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Capacities != nil {
		caps := capacityModels(id, req.Capacities)
		if err := s.repo.JointCapacity.ReplaceForJointType(ctx, id, caps); err != nil {
			s.logger.Error("replace joint type capacities failed", zap.String("id", id), zap.Error(err))
			return nil, err
		}
	}

	return jt, nil
}

func (s *jointTypeService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.JointType.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrJointTypeNotFound
		}
		s.logger.Error("load joint type failed", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.JointType.Delete(ctx, id); err != nil {
		s.logger.Error("delete joint type failed", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── capacity rules ──────────────────────

func (s *jointTypeService) CreateCapacity(ctx context.Context, req *dto.CreateCapacityRequest) (*model.JointCapacity, error) {
	if req.JointTypeID == "" || req.TimeSlotID == nil || req.Governorate == "" || req.Capacity <= 0 {
		return nil, ErrCapacityFieldsMissing
	}

	exists, err := s.repo.JointCapacity.ExistsDuplicate(ctx, req.JointTypeID, req.TimeSlotID, req.Governorate, "")
	if err != nil {
		s.logger.Error("capacity duplicate check failed", zap.Error(err))
		return nil, err
	}
	if exists {
		return nil, ErrCapacityDuplicate
	}

	rule := &model.JointCapacity{
		JointTypeID: req.JointTypeID,
		TimeSlotID:  req.TimeSlotID,
		Governorate: req.Governorate,
		Capacity:    req.Capacity,
	}

	if err := s.repo.JointCapacity.Create(ctx, rule); err != nil {
		s.logger.Error("create capacity failed", zap.Error(err))
		return nil, err
	}

	return s.repo.JointCapacity.GetByID(ctx, rule.CapacityID)
}

func (s *jointTypeService) ListCapacities(ctx context.Context) ([]model.JointCapacity, error) {
	caps, err := s.repo.JointCapacity.List(ctx)
	if err != nil {
		s.logger.Error("list capacities failed", zap.Error(err))
		return nil, err
	}
	return caps, nil
}

func (s *jointTypeService) UpdateCapacity(ctx context.Context, id string, req *dto.UpdateCapacityRequest) (*model.JointCapacity, error) {
	if req.JointTypeID == "" || req.TimeSlotID == nil || req.Governorate == "" || req.Capacity <= 0 {
		return nil, ErrCapacityFieldsMissing
	}

	exists, err := s.repo.JointCapacity.ExistsDuplicate(ctx, req.JointTypeID, req.TimeSlotID, req.Governorate, id)
	if err != nil {
		s.logger.Error("capacity duplicate check failed", zap.Error(err))
		return nil, err
	}
	if exists {
		return nil, ErrCapacityDuplicate
	}

	rule, err := s.repo.JointCapacity.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCapacityNotFound
		}
		s.logger.Error("load capacity failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	rule.JointTypeID = req.JointTypeID
	rule.TimeSlotID = req.TimeSlotID
	rule.Governorate = req.Governorate
	rule.Capacity = req.Capacity

	if err := s.repo.JointCapacity.Update(ctx, rule); err != nil {
		s.logger.Error("update capacity failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.repo.JointCapacity.GetByID(ctx, id)
}

func (s *jointTypeService) DeleteCapacity(ctx context.Context, id string) error {
	if _, err := s.repo.JointCapacity.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCapacityNotFound
		}
		s.logger.Error("load capacity failed", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.JointCapacity.Delete(ctx, id); err != nil {
		s.logger.Error("delete capacity failed", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── SlotsWithStatus ──────────────────────

// SlotsWithStatus is the admin view of every time slot for a joint type and
// governorate on a date. Slots with no rule report closed; with the
// general-capacity flag on, the governorate-wide fallback rule applies to
// them instead, matching what booking admission would accept.
func (s *jointTypeService) SlotsWithStatus(ctx context.Context, jointTypeID string, req *dto.SlotWithStatusRequest) ([]dto.SlotWithStatusResponse, error) {
	slots, err := s.repo.TimeSlot.List(ctx)
	if err != nil {
		s.logger.Error("list time slots failed", zap.Error(err))
		return nil, err
	}

	rules, err := s.repo.JointCapacity.ListByJointTypeAndGovernorate(ctx, jointTypeID, req.Governorate)
	if err != nil {
		s.logger.Error("list capacity rules failed", zap.Error(err))
		return nil, err
	}

	counts, err := s.repo.Booking.CountActiveBySlot(ctx, jointTypeID, req.Date, req.Governorate)
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

	result := make([]dto.SlotWithStatusResponse, 0, len(slots))
	for _, slot := range slots {
		entry := dto.SlotWithStatusResponse{
			ID:        slot.TimeSlotID,
			TimeSlot:  fmt.Sprintf("%s - %s", slot.StartTime, slot.EndTime),
			StartTime: slot.StartTime,
			EndTime:   slot.EndTime,
		}

		rule := bySlot[slot.TimeSlotID]
		if rule == nil && s.cfg.Feature.GeneralCapacityInSlotView {
			rule = general
		}

		if rule == nil {
			entry.Status = dto.SlotStatusClosed
			result = append(result, entry)
			continue
		}

		remaining := rule.Capacity - int(counts[slot.TimeSlotID])
		if remaining < 0 {
			remaining = 0
		}

		entry.Capacity = rule.Capacity
		entry.Remaining = remaining
		if remaining > 0 {
			entry.Status = dto.SlotStatusOpen
		} else {
			entry.Status = dto.SlotStatusFull
		}
		result = append(result, entry)
	}

	return result, nil
}

// ── internal helpers ──

func capacityModels(jointTypeID string, inputs []dto.CapacityInput) []model.JointCapacity {
	caps := make([]model.JointCapacity, 0, len(inputs))
	for _, in := range inputs {
		caps = append(caps, model.JointCapacity{
			JointTypeID: jointTypeID,
			TimeSlotID:  in.TimeSlotID,
			Governorate: in.Governorate,
			Capacity:    in.Capacity,
		})
	}
	return caps
}
