package leavetype

import (
	"context"
	"errors"
	"strings"

	"go-leave/internal/balance"
	leavetypeerrors "go-leave/internal/leavetype/errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=leavetype_service.go -destination=mock/leavetype_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) ([]LeaveTypeResponse, error)
	GetByID(ctx context.Context, id uint) (LeaveTypeResponse, error)
	Create(ctx context.Context, req CreateLeaveTypeRequest) (LeaveTypeResponse, error)
	Update(ctx context.Context, id uint, req UpdateLeaveTypeRequest) (LeaveTypeResponse, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	db       *gorm.DB
	repo     Repository
	balances balance.Repository
	logger   *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, balances balance.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("leavetype.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leavetype.service")
	}
	return &service{db: db, repo: repo, balances: balances, logger: l}
}

func (s *service) GetAll(ctx context.Context) ([]LeaveTypeResponse, error) {
	types, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(types), nil
}

func (s *service) GetByID(ctx context.Context, id uint) (LeaveTypeResponse, error) {
	lt, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveTypeResponse{}, leavetypeerrors.ErrLeaveTypeNotFound
		}
		return LeaveTypeResponse{}, err
	}
	return mapToResponse(*lt), nil
}

// Create rejects duplicate names case-insensitively and seeds a balance row
// at full quota for every existing user, in one transaction.
func (s *service) Create(ctx context.Context, req CreateLeaveTypeRequest) (LeaveTypeResponse, error) {
	s.logger.Debug("create leave type requested",
		zap.String("name", req.Name),
		zap.Int("max_days_per_year", req.MaxDaysPerYear),
	)

	lt := &LeaveType{
		Name:           strings.TrimSpace(req.Name),
		MaxDaysPerYear: req.MaxDaysPerYear,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		_, err := qtx.FindByNameFold(ctx, lt.Name)
		if err == nil {
			return leavetypeerrors.DuplicateName(lt.Name)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := qtx.Create(ctx, lt); err != nil {
			return err
		}

		return s.balances.WithTx(tx).CreateForAllUsers(ctx, lt.ID, lt.MaxDaysPerYear)
	})
	if err != nil {
		s.logger.Warn("create leave type failed", zap.String("name", req.Name), zap.Error(err))
		return LeaveTypeResponse{}, err
	}

	s.logger.Info("create leave type success",
		zap.Uint("leave_type_id", lt.ID),
		zap.String("name", lt.Name),
	)
	return mapToResponse(*lt), nil
}

// Update changes the annual quota and cascades the adjustment to every
// balance of the type: a raise grants the difference, a cut clamps balances
// above the new quota.
func (s *service) Update(ctx context.Context, id uint, req UpdateLeaveTypeRequest) (LeaveTypeResponse, error) {
	var lt *LeaveType

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		var err error
		lt, err = qtx.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return leavetypeerrors.ErrLeaveTypeNotFound
			}
			return err
		}

		oldMax := lt.MaxDaysPerYear
		newMax := req.MaxDaysPerYear

		if oldMax != newMax {
			qBalances := s.balances.WithTx(tx)

			balances, err := qBalances.FindAllByType(ctx, id)
			if err != nil {
				return err
			}

			balance.AdjustForQuotaChange(balances, oldMax, newMax)

			if err := qBalances.UpdateBatch(ctx, balances); err != nil {
				return err
			}
		}

		lt.MaxDaysPerYear = newMax
		return qtx.Update(ctx, lt)
	})
	if err != nil {
		s.logger.Warn("update leave type failed", zap.Uint("leave_type_id", id), zap.Error(err))
		return LeaveTypeResponse{}, err
	}

	s.logger.Info("update leave type success",
		zap.Uint("leave_type_id", id),
		zap.Int("max_days_per_year", lt.MaxDaysPerYear),
	)
	return mapToResponse(*lt), nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		if _, err := qtx.FindByID(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return leavetypeerrors.ErrLeaveTypeNotFound
			}
			return err
		}

		inUse, err := qtx.HasLeaveRequests(ctx, id)
		if err != nil {
			return err
		}
		if inUse {
			return leavetypeerrors.ErrLeaveTypeInUse
		}

		// balances of the type go with it; requests were ruled out above
		if err := s.balances.WithTx(tx).DeleteByType(ctx, id); err != nil {
			return err
		}

		return qtx.Delete(ctx, id)
	})
	if err != nil {
		s.logger.Warn("delete leave type failed", zap.Uint("leave_type_id", id), zap.Error(err))
		return err
	}

	s.logger.Info("delete leave type success", zap.Uint("leave_type_id", id))
	return nil
}

func mapToResponse(lt LeaveType) LeaveTypeResponse {
	return LeaveTypeResponse{
		ID:             lt.ID,
		Name:           lt.Name,
		MaxDaysPerYear: lt.MaxDaysPerYear,
	}
}

func mapToListResponse(types []LeaveType) []LeaveTypeResponse {
	resp := make([]LeaveTypeResponse, len(types))
	for i, lt := range types {
		resp[i] = mapToResponse(lt)
	}
	return resp
}
