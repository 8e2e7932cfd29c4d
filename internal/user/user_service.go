package user

import (
	"context"
	"errors"

	usererrors "go-leave/internal/user/errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) ([]UserResponse, error)
	UpdateRole(ctx context.Context, userID uint, role string) (UserResponse, error)

	GetProfile(ctx context.Context, userID uint) (ProfileResponse, error)
	ChangePassword(ctx context.Context, userID uint, req ChangePasswordRequest) (PasswordChangeResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("user.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.service")
	}
	return &service{repo: repo, logger: l}
}

// GetAll returns every user without the password column, for the admin user
// management screen.
func (s *service) GetAll(ctx context.Context) ([]UserResponse, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]UserResponse, len(users))
	for i, u := range users {
		resp[i] = UserResponse{
			ID:    u.ID,
			Name:  u.Name,
			Email: u.Email,
			Role:  u.Role,
		}
	}
	return resp, nil
}

func (s *service) UpdateRole(ctx context.Context, userID uint, role string) (UserResponse, error) {
	normalized, ok := NormalizeRole(role)
	if !ok {
		s.logger.Warn("update role rejected", zap.Uint("user_id", userID), zap.String("role", role))
		return UserResponse{}, usererrors.ErrInvalidRole
	}

	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserResponse{}, usererrors.ErrUserNotFound
		}
		return UserResponse{}, err
	}

	u.Role = normalized
	if err := s.repo.Update(ctx, u); err != nil {
		s.logger.Error("update role persist failed", zap.Uint("user_id", userID), zap.Error(err))
		return UserResponse{}, err
	}

	s.logger.Info("update role success",
		zap.Uint("user_id", userID),
		zap.String("role", normalized),
	)
	return UserResponse{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}, nil
}

func (s *service) GetProfile(ctx context.Context, userID uint) (ProfileResponse, error) {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ProfileResponse{}, usererrors.ErrUserNotFound
		}
		return ProfileResponse{}, err
	}

	return ProfileResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}, nil
}

func (s *service) ChangePassword(ctx context.Context, userID uint, req ChangePasswordRequest) (PasswordChangeResponse, error) {
	u, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PasswordChangeResponse{}, usererrors.ErrUserNotFound
		}
		return PasswordChangeResponse{}, err
	}

	if req.NewPassword != req.ConfirmNewPassword {
		return PasswordChangeResponse{}, usererrors.ErrPasswordConfirmMismatch
	}
	if len(req.NewPassword) < 6 {
		return PasswordChangeResponse{}, usererrors.ErrPasswordTooShort
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(req.CurrentPassword)); err != nil {
		return PasswordChangeResponse{}, usererrors.ErrWrongCurrentPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return PasswordChangeResponse{}, err
	}

	u.Password = string(hashed)
	if err := s.repo.Update(ctx, u); err != nil {
		s.logger.Error("change password persist failed", zap.Uint("user_id", userID), zap.Error(err))
		return PasswordChangeResponse{}, err
	}

	s.logger.Info("change password success", zap.Uint("user_id", userID))
	return PasswordChangeResponse{
		Success: true,
		Message: "Password changed successfully",
	}, nil
}
