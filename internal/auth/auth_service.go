package auth

import (
	"context"
	"errors"
	"os"
	"strconv"
	"time"

	autherrors "go-leave/internal/auth/errors"
	"go-leave/internal/balance"
	"go-leave/internal/leavetype"
	"go-leave/internal/user"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Register(ctx context.Context, req RegisterRequest) (AuthResponse, error)
	Login(ctx context.Context, email, password string) (AuthResponse, error)
}

type service struct {
	db       *gorm.DB
	users    user.Repository
	types    leavetype.Repository
	balances balance.Repository
	logger   *zap.Logger
}

func NewService(
	db *gorm.DB,
	users user.Repository,
	types leavetype.Repository,
	balances balance.Repository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{db: db, users: users, types: types, balances: balances, logger: l}
}

// Register creates the user with the default EMPLOYEE role and seeds one
// balance row per existing leave type, all in one transaction. New leave
// types created later seed their own balances on creation.
func (s *service) Register(ctx context.Context, req RegisterRequest) (AuthResponse, error) {
	s.logger.Debug("register requested", zap.String("email", req.Email))

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResponse{}, err
	}

	u := &user.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Role:     user.RoleEmployee,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qUsers := s.users.WithTx(tx)

		_, err := qUsers.FindByEmail(ctx, req.Email)
		if err == nil {
			return autherrors.ErrEmailAlreadyRegistered
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := qUsers.Create(ctx, u); err != nil {
			return err
		}

		types, err := s.types.WithTx(tx).FindAll(ctx)
		if err != nil {
			return err
		}
		if len(types) == 0 {
			return nil
		}

		rows := make([]balance.LeaveBalance, len(types))
		for i, lt := range types {
			rows[i] = balance.LeaveBalance{
				UserID:        u.ID,
				LeaveTypeID:   lt.ID,
				RemainingDays: lt.MaxDaysPerYear,
			}
		}
		return s.balances.WithTx(tx).CreateBatch(ctx, rows)
	})
	if err != nil {
		s.logger.Warn("register failed", zap.String("email", req.Email), zap.Error(err))
		return AuthResponse{}, err
	}

	token, err := s.generateToken(u)
	if err != nil {
		return AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("register success", zap.Uint("user_id", u.ID))
	return AuthResponse{
		Token:  token,
		UserID: u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Role:   u.Role,
	}, nil
}

func (s *service) Login(ctx context.Context, email, password string) (AuthResponse, error) {
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return AuthResponse{}, autherrors.ErrInvalidCredentials
	}

	token, err := s.generateToken(u)
	if err != nil {
		return AuthResponse{}, autherrors.ErrTokenGenerationFailed
	}

	s.logger.Info("login success", zap.Uint("user_id", u.ID))
	return AuthResponse{
		Token:  token,
		UserID: u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Role:   u.Role,
	}, nil
}

func (s *service) generateToken(u *user.User) (string, error) {
	expiryMinutes := 60
	if v := os.Getenv("JWT_EXPIRY_MINUTES"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			expiryMinutes = parsed
		}
	}

	claims := jwt.MapClaims{
		"user_id": strconv.FormatUint(uint64(u.ID), 10),
		"email":   u.Email,
		"name":    u.Name,
		"role":    u.Role,
		"exp":     time.Now().Add(time.Duration(expiryMinutes) * time.Minute).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
