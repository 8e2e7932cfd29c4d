package settings

import (
	"context"
	"errors"
	"strings"

	settingserrors "go-leave/internal/settings/errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=settings_service.go -destination=mock/settings_service_mock.go -package=mock
type Service interface {
	GetAll(ctx context.Context) ([]SystemSettingResponse, error)
	UpdateAll(ctx context.Context, req UpdateSystemSettingsRequest) ([]SystemSettingResponse, error)
}

type service struct {
	db     *gorm.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("settings.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("settings.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) GetAll(ctx context.Context) ([]SystemSettingResponse, error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(all), nil
}

// UpdateAll upserts the submitted key/value pairs in one transaction and
// returns the full settings list afterwards. The whole batch is validated
// before any row is touched.
func (s *service) UpdateAll(ctx context.Context, req UpdateSystemSettingsRequest) ([]SystemSettingResponse, error) {
	for _, item := range req.Settings {
		if strings.TrimSpace(item.Key) == "" {
			return nil, settingserrors.ErrEmptyKey
		}
		if strings.TrimSpace(item.Value) == "" {
			return nil, settingserrors.EmptyValue(item.Key)
		}
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		for _, item := range req.Settings {
			key := strings.TrimSpace(item.Key)
			value := strings.TrimSpace(item.Value)

			existing, err := qtx.FindByKey(ctx, key)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					if err := qtx.Create(ctx, &SystemSetting{Key: key, Value: value}); err != nil {
						return err
					}
					continue
				}
				return err
			}

			existing.Value = value
			if err := qtx.Update(ctx, existing); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("update settings failed", zap.Int("count", len(req.Settings)), zap.Error(err))
		return nil, err
	}

	s.logger.Info("update settings success", zap.Int("count", len(req.Settings)))
	return s.GetAll(ctx)
}

func mapToListResponse(all []SystemSetting) []SystemSettingResponse {
	resp := make([]SystemSettingResponse, len(all))
	for i, st := range all {
		resp[i] = SystemSettingResponse{Key: st.Key, Value: st.Value}
	}
	return resp
}
