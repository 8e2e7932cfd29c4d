package settings

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=settings_repo.go -destination=mock/settings_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindAll(ctx context.Context) ([]SystemSetting, error)
	FindByKey(ctx context.Context, key string) (*SystemSetting, error)
	Create(ctx context.Context, s *SystemSetting) error
	Update(ctx context.Context, s *SystemSetting) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) FindAll(ctx context.Context) ([]SystemSetting, error) {
	var all []SystemSetting
	err := r.db.WithContext(ctx).Order("key ASC").Find(&all).Error
	return all, err
}

func (r *repository) FindByKey(ctx context.Context, key string) (*SystemSetting, error) {
	var s SystemSetting
	err := r.db.WithContext(ctx).Where("key = ?", key).First(&s).Error
	return &s, err
}

func (r *repository) Create(ctx context.Context, s *SystemSetting) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *repository) Update(ctx context.Context, s *SystemSetting) error {
	return r.db.WithContext(ctx).Save(s).Error
}
