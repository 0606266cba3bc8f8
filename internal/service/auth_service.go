package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/KirolosTawadros/IMSC-HIP-Booking/config"
	"github.com/KirolosTawadros/IMSC-HIP-Booking/internal/dto"
	"github.com/KirolosTawadros/IMSC-HIP-Booking/internal/model"
	"github.com/KirolosTawadros/IMSC-HIP-Booking/internal/repository"
	"github.com/KirolosTawadros/IMSC-HIP-Booking/pkg/jwt"
	"github.com/KirolosTawadros/IMSC-HIP-Booking/pkg/redis"
)

var (
	ErrStaffCredentials = errors.New("بيانات الدخول غير صحيحة")
	ErrStaffEmailTaken  = errors.New("المستخدم موجود بالفعل")
)

// AuthService authenticates back-office staff accounts.
type AuthService interface {
	Login(ctx context.Context, req *dto.StaffLoginRequest) (*dto.StaffLoginResponse, error)
	Register(ctx context.Context, req *dto.StaffRegisterRequest) (*dto.StaffProfile, error)
	Logout(ctx context.Context, claims *jwt.Claims) error
}

type authService struct {
	cfg    *config.Config
	repo   *repository.Repository
	jwtMgr *jwt.Manager
	rdb    *redis.Client
	logger *zap.Logger
}

// NewAuthService creates an AuthService instance. rdb may be nil; logout is
// then a client-side discard only.
func NewAuthService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) AuthService {
	return &authService{
		cfg:    cfg,
		repo:   repo,
		jwtMgr: jwtMgr,
		rdb:    rdb,
		logger: logger,
	}
}

// ────────────────────── Login ──────────────────────

func (s *authService) Login(ctx context.Context, req *dto.StaffLoginRequest) (*dto.StaffLoginResponse, error) {
	staff, err := s.repo.Staff.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStaffCredentials
		}
		s.logger.Error("staff lookup failed", zap.Error(err))
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(staff.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrStaffCredentials
	}

	token, err := s.jwtMgr.GenerateAccessToken(staff.StaffID, staff.Role)
	if err != nil {
		s.logger.Error("generate access token failed", zap.Error(err))
		return nil, err
	}

	return &dto.StaffLoginResponse{
		Token: token,
		Staff: dto.StaffProfile{
			StaffID: staff.StaffID,
			Name:    staff.Name,
			Email:   staff.Email,
			Role:    staff.Role,
		},
	}, nil
}

// ────────────────────── Register ──────────────────────

func (s *authService) Register(ctx context.Context, req *dto.StaffRegisterRequest) (*dto.StaffProfile, error) {
	_, err := s.repo.Staff.GetByEmail(ctx, req.Email)
	if err == nil {
		return nil, ErrStaffEmailTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("staff lookup failed", zap.Error(err))
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("hash password failed", zap.Error(err))
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = model.StaffRoleStaff
	}

	staff := &model.Staff{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
	}

	if err := s.repo.Staff.Create(ctx, staff); err != nil {
		s.logger.Error("create staff failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("staff registered", zap.String("staff_id", staff.StaffID), zap.String("role", role))

	return &dto.StaffProfile{
		StaffID: staff.StaffID,
		Name:    staff.Name,
		Email:   staff.Email,
		Role:    staff.Role,
	}, nil
}

// ────────────────────── Logout ──────────────────────

// Logout blacklists the token for its remaining lifetime.
func (s *authService) Logout(ctx context.Context, claims *jwt.Claims) error {
	if s.rdb == nil {
		return nil
	}

	ttl := time.Until(claims.ExpiresAt.Time)
	if err := s.rdb.BlacklistToken(ctx, claims.ID, ttl); err != nil {
		s.logger.Error("blacklist token failed", zap.Error(err))
		return err
	}
	return nil
}
