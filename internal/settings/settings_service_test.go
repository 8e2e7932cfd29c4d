package settings_test

import (
	"context"
	"testing"

	"go-leave/internal/settings"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type fakeSettingsRepository struct {
	findAllFn   func(ctx context.Context) ([]settings.SystemSetting, error)
	findByKeyFn func(ctx context.Context, key string) (*settings.SystemSetting, error)
	createFn    func(ctx context.Context, s *settings.SystemSetting) error
	updateFn    func(ctx context.Context, s *settings.SystemSetting) error
}

func (f *fakeSettingsRepository) WithTx(tx *gorm.DB) settings.Repository { return f }

func (f *fakeSettingsRepository) FindAll(ctx context.Context) ([]settings.SystemSetting, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeSettingsRepository) FindByKey(ctx context.Context, key string) (*settings.SystemSetting, error) {
	if f.findByKeyFn != nil {
		return f.findByKeyFn(ctx, key)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSettingsRepository) Create(ctx context.Context, s *settings.SystemSetting) error {
	if f.createFn != nil {
		return f.createFn(ctx, s)
	}
	return nil
}

func (f *fakeSettingsRepository) Update(ctx context.Context, s *settings.SystemSetting) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, s)
	}
	return nil
}

type settingsServiceDeps struct {
	sqlMock sqlmock.Sqlmock
	service settings.Service
	repo    *fakeSettingsRepository
}

func setupSettingsServiceTest(t *testing.T) *settingsServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	assert.NoError(t, err)

	repo := &fakeSettingsRepository{}
	svc := settings.NewService(gormDB, repo)

	return &settingsServiceDeps{sqlMock: sqlMock, service: svc, repo: repo}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestSettingsService_GetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		deps := setupSettingsServiceTest(t)
		deps.repo.findAllFn = func(ctx context.Context) ([]settings.SystemSetting, error) {
			return []settings.SystemSetting{
				{ID: 1, Key: settings.KeyCompanyName, Value: "Acme Corp"},
				{ID: 2, Key: settings.KeyLeaveYearStartMonth, Value: "1"},
			}, nil
		}

		resp, err := deps.service.GetAll(ctx)

		assert.NoError(t, err)
		assert.Len(t, resp, 2)
		assert.Equal(t, settings.KeyCompanyName, resp[0].Key)
		assert.Equal(t, "Acme Corp", resp[0].Value)
	})

	t.Run("success empty list", func(t *testing.T) {
		deps := setupSettingsServiceTest(t)

		resp, err := deps.service.GetAll(ctx)

		assert.NoError(t, err)
		assert.Empty(t, resp)
	})
}

func TestSettingsService_UpdateAll(t *testing.T) {
	ctx := context.Background()

	t.Run("success creates missing keys and updates existing ones", func(t *testing.T) {
		deps := setupSettingsServiceTest(t)
		expectTx(t, deps.sqlMock, true)

		existing := settings.SystemSetting{ID: 1, Key: settings.KeyCompanyName, Value: "Old Name"}
		deps.repo.findByKeyFn = func(ctx context.Context, key string) (*settings.SystemSetting, error) {
			if key == settings.KeyCompanyName {
				cp := existing
				return &cp, nil
			}
			return nil, gorm.ErrRecordNotFound
		}

		var created []settings.SystemSetting
		deps.repo.createFn = func(ctx context.Context, s *settings.SystemSetting) error {
			created = append(created, *s)
			return nil
		}
		var updated []settings.SystemSetting
		deps.repo.updateFn = func(ctx context.Context, s *settings.SystemSetting) error {
			updated = append(updated, *s)
			return nil
		}
		deps.repo.findAllFn = func(ctx context.Context) ([]settings.SystemSetting, error) {
			return []settings.SystemSetting{
				{ID: 1, Key: settings.KeyCompanyName, Value: "Acme Corp"},
				{ID: 2, Key: settings.KeyMaxCarryForwardDays, Value: "5"},
			}, nil
		}

		resp, err := deps.service.UpdateAll(ctx, settings.UpdateSystemSettingsRequest{
			Settings: []settings.UpdateSystemSettingItem{
				{Key: settings.KeyCompanyName, Value: "  Acme Corp  "},
				{Key: settings.KeyMaxCarryForwardDays, Value: "5"},
			},
		})

		assert.NoError(t, err)
		assert.Len(t, updated, 1)
		assert.Equal(t, "Acme Corp", updated[0].Value)
		assert.Len(t, created, 1)
		assert.Equal(t, settings.KeyMaxCarryForwardDays, created[0].Key)
		assert.Len(t, resp, 2)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative blank key rejected before any write", func(t *testing.T) {
		deps := setupSettingsServiceTest(t)

		touched := false
		deps.repo.createFn = func(ctx context.Context, s *settings.SystemSetting) error {
			touched = true
			return nil
		}

		_, err := deps.service.UpdateAll(ctx, settings.UpdateSystemSettingsRequest{
			Settings: []settings.UpdateSystemSettingItem{
				{Key: "   ", Value: "whatever"},
			},
		})

		assert.ErrorContains(t, err, "setting key cannot be empty")
		assert.False(t, touched)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative blank value names the offending key", func(t *testing.T) {
		deps := setupSettingsServiceTest(t)

		_, err := deps.service.UpdateAll(ctx, settings.UpdateSystemSettingsRequest{
			Settings: []settings.UpdateSystemSettingItem{
				{Key: settings.KeyCompanyName, Value: "Acme Corp"},
				{Key: settings.KeyLeaveYearStartMonth, Value: "  "},
			},
		})

		assert.ErrorContains(t, err, settings.KeyLeaveYearStartMonth)
		assert.ErrorContains(t, err, "cannot be empty")
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative repository failure rolls back", func(t *testing.T) {
		deps := setupSettingsServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		deps.repo.updateFn = func(ctx context.Context, s *settings.SystemSetting) error {
			return assert.AnError
		}
		deps.repo.findByKeyFn = func(ctx context.Context, key string) (*settings.SystemSetting, error) {
			return &settings.SystemSetting{ID: 1, Key: key, Value: "old"}, nil
		}

		_, err := deps.service.UpdateAll(ctx, settings.UpdateSystemSettingsRequest{
			Settings: []settings.UpdateSystemSettingItem{
				{Key: settings.KeyCompanyName, Value: "Acme Corp"},
			},
		})

		assert.Error(t, err)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}
