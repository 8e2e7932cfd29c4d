package balance

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=balance_repo.go -destination=mock/balance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindByUserAndType(ctx context.Context, userID, leaveTypeID uint) (*LeaveBalance, error)
	FindAllByType(ctx context.Context, leaveTypeID uint) ([]LeaveBalance, error)
	FindSummariesByUser(ctx context.Context, userID uint) ([]Summary, error)
	CreateBatch(ctx context.Context, balances []LeaveBalance) error
	CreateForAllUsers(ctx context.Context, leaveTypeID uint, remainingDays int) error
	Update(ctx context.Context, b *LeaveBalance) error
	UpdateBatch(ctx context.Context, balances []LeaveBalance) error
	DeleteByType(ctx context.Context, leaveTypeID uint) error
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

func (r *repository) FindByUserAndType(ctx context.Context, userID, leaveTypeID uint) (*LeaveBalance, error) {
	var b LeaveBalance
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("leave_type_id = ?", leaveTypeID).
		First(&b).Error
	return &b, err
}

func (r *repository) FindAllByType(ctx context.Context, leaveTypeID uint) ([]LeaveBalance, error) {
	var balances []LeaveBalance
	err := r.db.WithContext(ctx).
		Where("leave_type_id = ?", leaveTypeID).
		Order("id ASC").
		Find(&balances).Error
	return balances, err
}

func (r *repository) FindSummariesByUser(ctx context.Context, userID uint) ([]Summary, error) {
	var summaries []Summary
	err := r.db.WithContext(ctx).
		Table("leave_balances").
		Select("leave_balances.leave_type_id, leave_types.name AS leave_type_name, leave_balances.remaining_days, leave_types.max_days_per_year").
		Joins("JOIN leave_types ON leave_types.id = leave_balances.leave_type_id").
		Where("leave_balances.user_id = ?", userID).
		Order("leave_balances.leave_type_id ASC").
		Scan(&summaries).Error
	return summaries, err
}

func (r *repository) CreateBatch(ctx context.Context, balances []LeaveBalance) error {
	if len(balances) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&balances).Error
}

// CreateForAllUsers seeds one balance row per existing user for a freshly
// created leave type. Raw SQL keeps it a single statement.
func (r *repository) CreateForAllUsers(ctx context.Context, leaveTypeID uint, remainingDays int) error {
	return r.db.WithContext(ctx).Exec(`
		INSERT INTO leave_balances (user_id, leave_type_id, remaining_days, created_at, updated_at)
		SELECT id, ?, ?, now(), now() FROM users
	`, leaveTypeID, remainingDays).Error
}

func (r *repository) Update(ctx context.Context, b *LeaveBalance) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *repository) UpdateBatch(ctx context.Context, balances []LeaveBalance) error {
	for i := range balances {
		if err := r.db.WithContext(ctx).Save(&balances[i]).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *repository) DeleteByType(ctx context.Context, leaveTypeID uint) error {
	return r.db.WithContext(ctx).
		Where("leave_type_id = ?", leaveTypeID).
		Delete(&LeaveBalance{}).Error
}
