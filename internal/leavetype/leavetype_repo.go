package leavetype

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=leavetype_repo.go -destination=mock/leavetype_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, lt *LeaveType) error
	FindAll(ctx context.Context) ([]LeaveType, error)
	FindByID(ctx context.Context, id uint) (*LeaveType, error)
	FindByNameFold(ctx context.Context, name string) (*LeaveType, error)
	Update(ctx context.Context, lt *LeaveType) error
	Delete(ctx context.Context, id uint) error
	HasLeaveRequests(ctx context.Context, id uint) (bool, error)
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

func (r *repository) Create(ctx context.Context, lt *LeaveType) error {
	return r.db.WithContext(ctx).Create(lt).Error
}

func (r *repository) FindAll(ctx context.Context) ([]LeaveType, error) {
	var types []LeaveType
	err := r.db.WithContext(ctx).Order("id ASC").Find(&types).Error
	return types, err
}

func (r *repository) FindByID(ctx context.Context, id uint) (*LeaveType, error) {
	var lt LeaveType
	err := r.db.WithContext(ctx).First(&lt, "id = ?", id).Error
	return &lt, err
}

// FindByNameFold matches the name case-insensitively, backing the
// duplicate-name check.
func (r *repository) FindByNameFold(ctx context.Context, name string) (*LeaveType, error) {
	var lt LeaveType
	err := r.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", name).
		First(&lt).Error
	return &lt, err
}

func (r *repository) Update(ctx context.Context, lt *LeaveType) error {
	return r.db.WithContext(ctx).Save(lt).Error
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&LeaveType{}, "id = ?", id).Error
}

// HasLeaveRequests reports whether any leave request of any status references
// the type. The leave_requests table is addressed by name to keep this
// package independent of the workflow package.
func (r *repository) HasLeaveRequests(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("leave_requests").
		Where("leave_type_id = ?", id).
		Count(&count).Error
	return count > 0, err
}
