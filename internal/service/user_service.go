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

// ── doctor-account module business errors ──

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrPhoneTaken         = errors.New("user already exists with this phone number")
	ErrInvalidGovernorate = errors.New("invalid governorate")
	ErrInvalidStatus      = errors.New("invalid status")
	ErrDoctorCredentials  = errors.New("invalid credentials")
	ErrAccountPending     = errors.New("account pending review")
)

// AccountRejectedError is returned on login by a rejected doctor so the
// handler can surface the stored rejection reason.
type AccountRejectedError struct {
	Reason string
}

func (e *AccountRejectedError) Error() string {
	return "account rejected"
}

// UserService manages doctor accounts and their approval workflow.
type UserService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*model.User, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	ListPending(ctx context.Context) ([]model.User, error)
	UpdateStatus(ctx context.Context, id string, req *dto.UpdateUserStatusRequest) (*model.User, error)
	Update(ctx context.Context, id string, req *dto.UpdateUserRequest) (*model.User, error)
	Delete(ctx context.Context, id string) (*model.User, error)
}

type userService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewUserService creates a UserService instance.
func NewUserService(repo *repository.Repository, logger *zap.Logger) UserService {
	return &userService{repo: repo, logger: logger}
}

// ────────────────────── Register ──────────────────────

// Register creates a doctor account in pending status. The phone number is
// the doctor's identity, so it must be unique across all accounts.
func (s *userService) Register(ctx context.Context, req *dto.RegisterRequest) (*model.User, error) {
	if !model.IsValidGovernorate(req.Governorate) {
		return nil, ErrInvalidGovernorate
	}

	if _, err := s.repo.Hospital.GetByID(ctx, req.HospitalID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHospitalNotFound
		}
		s.logger.Error("load hospital failed", zap.String("id", req.HospitalID), zap.Error(err))
		return nil, err
	}

	_, err := s.repo.User.GetByPhone(ctx, req.PhoneNumber)
	if err == nil {
		return nil, ErrPhoneTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("phone lookup failed", zap.Error(err))
		return nil, err
	}

	user := &model.User{
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
		HospitalID:  req.HospitalID,
		Governorate: req.Governorate,
		Status:      model.UserStatusPending,
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.logger.Error("create user failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("doctor registered",
		zap.String("user_id", user.UserID),
		zap.String("governorate", user.Governorate))

	return s.repo.User.GetByID(ctx, user.UserID)
}

// ────────────────────── Login ──────────────────────

// Login authenticates a doctor by phone number and hospital. Only approved
// accounts may log in; pending and rejected accounts get typed errors that
// map to informational responses.
func (s *userService) Login(ctx context.Context, req *dto.LoginRequest) (*model.User, error) {
	user, err := s.repo.User.GetByPhoneAndHospital(ctx, req.PhoneNumber, req.HospitalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDoctorCredentials
		}
		s.logger.Error("login lookup failed", zap.Error(err))
		return nil, err
	}

	switch user.Status {
	case model.UserStatusPending:
		return nil, ErrAccountPending
	case model.UserStatusRejected:
		return nil, &AccountRejectedError{Reason: user.RejectionReason}
	}

	return user, nil
}

// ────────────────────── queries ──────────────────────

func (s *userService) GetByID(ctx context.Context, id string) (*model.User, error) {
	user, err := s.repo.User.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("load user failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return user, nil
}

func (s *userService) List(ctx context.Context) ([]model.User, error) {
	users, err := s.repo.User.List(ctx)
	if err != nil {
		s.logger.Error("list users failed", zap.Error(err))
		return nil, err
	}
	return users, nil
}

func (s *userService) ListPending(ctx context.Context) ([]model.User, error) {
	users, err := s.repo.User.ListByStatus(ctx, model.UserStatusPending)
	if err != nil {
		s.logger.Error("list pending users failed", zap.Error(err))
		return nil, err
	}
	return users, nil
}

// ────────────────────── UpdateStatus ──────────────────────

// UpdateStatus is the staff approve/reject action on a doctor registration.
// Approval clears any stored rejection reason; rejection records one.
func (s *userService) UpdateStatus(ctx context.Context, id string, req *dto.UpdateUserStatusRequest) (*model.User, error) {
	if req.Status != model.UserStatusApproved && req.Status != model.UserStatusRejected {
		return nil, ErrInvalidStatus
	}

	user, err := s.repo.User.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("load user failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	user.Status = req.Status
	if req.Status == model.UserStatusRejected {
		user.RejectionReason = req.RejectionReason
	} else {
		user.RejectionReason = ""
	}

	if err := s.repo.User.Update(ctx, user); err != nil {
		s.logger.Error("update user status failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("doctor status updated",
		zap.String("user_id", id), zap.String("status", req.Status))

	return user, nil
}

// ────────────────────── Update ──────────────────────

func (s *userService) Update(ctx context.Context, id string, req *dto.UpdateUserRequest) (*model.User, error) {
	user, err := s.repo.User.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("load user failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.PhoneNumber != nil {
		user.PhoneNumber = *req.PhoneNumber
	}
	if req.HospitalID != nil {
		user.HospitalID = *req.HospitalID
	}
	if req.Governorate != nil {
		if !model.IsValidGovernorate(*req.Governorate) {
			return nil, ErrInvalidGovernorate
		}
		user.Governorate = *req.Governorate
	}
	if req.Status != nil {
		user.Status = *req.Status
	}

	if err := s.repo.User.Update(ctx, user); err != nil {
		s.logger.Error("update user failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.repo.User.GetByID(ctx, id)
}

// ────────────────────── Delete ──────────────────────

func (s *userService) Delete(ctx context.Context, id string) (*model.User, error) {
	user, err := s.repo.User.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("load user failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if err := s.repo.User.Delete(ctx, id); err != nil {
		s.logger.Error("delete user failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return user, nil
}
