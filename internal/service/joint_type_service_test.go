package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/KirolosTawadros/IMSC-HIP-Booking/config"
	"github.com/KirolosTawadros/IMSC-HIP-Booking/internal/dto"
	"github.com/KirolosTawadros/IMSC-HIP-Booking/internal/model"
)

func setupJointTypeService(t *testing.T, cfg *config.Config) (JointTypeService, *testRepos) {
	t.Helper()

	if cfg == nil {
		cfg = &config.Config{}
	}
	repo, mocks := newTestRepos()
	svc := NewJointTypeService(cfg, repo, zap.NewNop())
	return svc, mocks
}

// ── joint types ──

func TestJointTypeService_Create_WithInlineCapacities(t *testing.T) {
	svc, mocks := setupJointTypeService(t, nil)

	slot := &model.TimeSlot{StartTime: "09:00", EndTime: "12:00"}
	if err := mocks.timeSlots.Create(context.Background(), slot); err != nil {
		t.Fatalf("seed slot: %v", err)
	}

	jt, err := svc.Create(context.Background(), &dto.CreateJointTypeRequest{
		Name: "مفصل الركبة",
		Capacities: []dto.CapacityInput{
			{Governorate: model.GovernorateTanta, TimeSlotID: &slot.TimeSlotID, Capacity: 4},
			{Governorate: model.GovernorateTanta, Capacity: 2},
		},
	})
	if err != nil {
		t.Fatalf("Create should succeed: %v", err)
	}

	rules, _ := mocks.capacities.ListByJointTypeAndGovernorate(context.Background(), jt.JointTypeID, model.GovernorateTanta)
	if len(rules) != 2 {
		t.Fatalf("expected 2 capacity rules, got %d", len(rules))
	}
}

func TestJointTypeService_Update_ReplacesCapacities(t *testing.T) {
	svc, mocks := setupJointTypeService(t, nil)

	jt, err := svc.Create(context.Background(), &dto.CreateJointTypeRequest{
		Name: "مفصل الركبة",
		Capacities: []dto.CapacityInput{
			{Governorate: model.GovernorateTanta, Capacity: 2},
		},
	})
	if err != nil {
		t.Fatalf("Create should succeed: %v", err)
	}

	if _, err := svc.Update(context.Background(), jt.JointTypeID, &dto.UpdateJointTypeRequest{
		Name: "مفصل الركبة الكامل",
		Capacities: []dto.CapacityInput{
			{Governorate: model.GovernorateMansoura, Capacity: 5},
		},
	}); err != nil {
		t.Fatalf("Update should succeed: %v", err)
	}

	old, _ := mocks.capacities.ListByJointTypeAndGovernorate(context.Background(), jt.JointTypeID, model.GovernorateTanta)
	if len(old) != 0 {
		t.Errorf("old rules should be replaced, %d remain", len(old))
	}
	current, _ := mocks.capacities.ListByJointTypeAndGovernorate(context.Background(), jt.JointTypeID, model.GovernorateMansoura)
	if len(current) != 1 || current[0].Capacity != 5 {
		t.Errorf("expected one replacement rule with capacity 5, got %v", current)
	}
}

func TestJointTypeService_Delete_CascadesCapacities(t *testing.T) {
	svc, mocks := setupJointTypeService(t, nil)

	jt, err := svc.Create(context.Background(), &dto.CreateJointTypeRequest{
		Name: "مفصل الركبة",
		Capacities: []dto.CapacityInput{
			{Governorate: model.GovernorateTanta, Capacity: 2},
		},
	})
	if err != nil {
		t.Fatalf("Create should succeed: %v", err)
	}

	if err := svc.Delete(context.Background(), jt.JointTypeID); err != nil {
		t.Fatalf("Delete should succeed: %v", err)
	}

	rules, _ := mocks.capacities.ListByJointTypeAndGovernorate(context.Background(), jt.JointTypeID, model.GovernorateTanta)
	if len(rules) != 0 {
		t.Errorf("capacity rules should be removed with the joint type, %d remain", len(rules))
	}
}

// ── capacity rules ──

func TestJointTypeService_CreateCapacity_MissingFields(t *testing.T) {
	svc, _ := setupJointTypeService(t, nil)

	_, err := svc.CreateCapacity(context.Background(), &dto.CreateCapacityRequest{
		JointTypeID: "jt-1",
		Governorate: model.GovernorateTanta,
		Capacity:    3,
	})
	if !errors.Is(err, ErrCapacityFieldsMissing) {
		t.Errorf("expected ErrCapacityFieldsMissing, got %v", err)
	}
}

func TestJointTypeService_CreateCapacity_Duplicate(t *testing.T) {
	svc, mocks := setupJointTypeService(t, nil)

	slot := &model.TimeSlot{StartTime: "09:00", EndTime: "12:00"}
	if err := mocks.timeSlots.Create(context.Background(), slot); err != nil {
		t.Fatalf("seed slot: %v", err)
	}

	req := &dto.CreateCapacityRequest{
		JointTypeID: "jt-1",
		TimeSlotID:  &slot.TimeSlotID,
		Governorate: model.GovernorateTanta,
		Capacity:    3,
	}
	if _, err := svc.CreateCapacity(context.Background(), req); err != nil {
		t.Fatalf("first CreateCapacity should succeed: %v", err)
	}

	_, err := svc.CreateCapacity(context.Background(), req)
	if !errors.Is(err, ErrCapacityDuplicate) {
		t.Errorf("expected ErrCapacityDuplicate, got %v", err)
	}
}

func TestJointTypeService_UpdateCapacity_DuplicateExcludesSelf(t *testing.T) {
	svc, mocks := setupJointTypeService(t, nil)

	slot := &model.TimeSlot{StartTime: "09:00", EndTime: "12:00"}
	if err := mocks.timeSlots.Create(context.Background(), slot); err != nil {
		t.Fatalf("seed slot: %v", err)
	}

	created, err := svc.CreateCapacity(context.Background(), &dto.CreateCapacityRequest{
		JointTypeID: "jt-1",
		TimeSlotID:  &slot.TimeSlotID,
		Governorate: model.GovernorateTanta,
		Capacity:    3,
	})
	if err != nil {
		t.Fatalf("CreateCapacity should succeed: %v", err)
	}

	// updating a rule onto its own triple is not a duplicate
	updated, err := svc.UpdateCapacity(context.Background(), created.CapacityID, &dto.UpdateCapacityRequest{
		JointTypeID: "jt-1",
		TimeSlotID:  &slot.TimeSlotID,
		Governorate: model.GovernorateTanta,
		Capacity:    6,
	})
	if err != nil {
		t.Fatalf("UpdateCapacity should succeed: %v", err)
	}
	if updated.Capacity != 6 {
		t.Errorf("expected capacity 6, got %d", updated.Capacity)
	}
}

// ── SlotsWithStatus ──

func seedSlotsWithStatus(t *testing.T, mocks *testRepos) (jt *model.JointType, open, full, closed *model.TimeSlot) {
	t.Helper()
	ctx := context.Background()

	jt = &model.JointType{Name: "مفصل الفخذ"}
	if err := mocks.jointTypes.Create(ctx, jt); err != nil {
		t.Fatalf("seed joint type: %v", err)
	}

	open = &model.TimeSlot{StartTime: "09:00", EndTime: "12:00"}
	full = &model.TimeSlot{StartTime: "12:00", EndTime: "15:00"}
	closed = &model.TimeSlot{StartTime: "15:00", EndTime: "18:00"}
	for _, s := range []*model.TimeSlot{open, full, closed} {
		if err := mocks.timeSlots.Create(ctx, s); err != nil {
			t.Fatalf("seed slot: %v", err)
		}
	}

	for _, rule := range []*model.JointCapacity{
		{JointTypeID: jt.JointTypeID, TimeSlotID: &open.TimeSlotID, Governorate: model.GovernorateGreaterCairo, Capacity: 2},
		{JointTypeID: jt.JointTypeID, TimeSlotID: &full.TimeSlotID, Governorate: model.GovernorateGreaterCairo, Capacity: 1},
	} {
		if err := mocks.capacities.Create(ctx, rule); err != nil {
			t.Fatalf("seed rule: %v", err)
		}
	}

	// consume the full slot's only seat
	booking := &model.Booking{
		UserID:      "user-1",
		JointTypeID: jt.JointTypeID,
		Date:        "2026-09-10",
		TimeSlotID:  full.TimeSlotID,
		Governorate: model.GovernorateGreaterCairo,
		Status:      model.BookingStatusApproved,
	}
	mocks.bookings.bookings["bk-seed"] = booking

	return jt, open, full, closed
}

func TestJointTypeService_SlotsWithStatus(t *testing.T) {
	svc, mocks := setupJointTypeService(t, nil)
	jt, open, full, closed := seedSlotsWithStatus(t, mocks)

	slots, err := svc.SlotsWithStatus(context.Background(), jt.JointTypeID, &dto.SlotWithStatusRequest{
		Governorate: model.GovernorateGreaterCairo,
		Date:        "2026-09-10",
	})
	if err != nil {
		t.Fatalf("SlotsWithStatus should succeed: %v", err)
	}
	if len(slots) != 3 {
		t.Fatalf("expected 3 slots, got %d", len(slots))
	}

	byID := make(map[string]dto.SlotWithStatusResponse, len(slots))
	for _, s := range slots {
		byID[s.ID] = s
	}

	if s := byID[open.TimeSlotID]; s.Status != dto.SlotStatusOpen || s.Remaining != 2 {
		t.Errorf("expected open slot with remaining 2, got %s/%d", s.Status, s.Remaining)
	}
	if s := byID[full.TimeSlotID]; s.Status != dto.SlotStatusFull || s.Remaining != 0 {
		t.Errorf("expected full slot, got %s/%d", s.Status, s.Remaining)
	}
	if s := byID[closed.TimeSlotID]; s.Status != dto.SlotStatusClosed || s.Capacity != 0 {
		t.Errorf("expected closed slot, got %s capacity=%d", s.Status, s.Capacity)
	}

	if s := byID[open.TimeSlotID]; s.TimeSlot != "09:00 - 12:00" {
		t.Errorf("unexpected display string: %s", s.TimeSlot)
	}
}

func TestJointTypeService_SlotsWithStatus_GeneralRuleFlag(t *testing.T) {
	cfg := &config.Config{Feature: config.FeatureConfig{GeneralCapacityInSlotView: true}}
	svc, mocks := setupJointTypeService(t, cfg)
	jt, _, _, closed := seedSlotsWithStatus(t, mocks)

	// a governorate-wide rule now covers the otherwise-closed slot
	if err := mocks.capacities.Create(context.Background(), &model.JointCapacity{
		JointTypeID: jt.JointTypeID,
		Governorate: model.GovernorateGreaterCairo,
		Capacity:    3,
	}); err != nil {
		t.Fatalf("seed general rule: %v", err)
	}

	slots, err := svc.SlotsWithStatus(context.Background(), jt.JointTypeID, &dto.SlotWithStatusRequest{
		Governorate: model.GovernorateGreaterCairo,
		Date:        "2026-09-10",
	})
	if err != nil {
		t.Fatalf("SlotsWithStatus should succeed: %v", err)
	}

	for _, s := range slots {
		if s.ID == closed.TimeSlotID {
			if s.Status != dto.SlotStatusOpen || s.Capacity != 3 {
				t.Errorf("expected general rule to open the slot, got %s capacity=%d", s.Status, s.Capacity)
			}
			return
		}
	}
	t.Fatal("slot not found in response")
}
