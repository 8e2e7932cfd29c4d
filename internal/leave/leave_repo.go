package leave

import (
	"context"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, l *LeaveRequest) error
	FindByID(ctx context.Context, id uint) (*LeaveRequest, error)
	FindAllByUser(ctx context.Context, userID uint) ([]LeaveRequest, error)
	FindPending(ctx context.Context) ([]LeaveRequest, error)
	FindRecentByUser(ctx context.Context, userID uint, limit int) ([]LeaveRequest, error)
	FindRecentDecided(ctx context.Context, limit int) ([]LeaveRequest, error)
	Update(ctx context.Context, l *LeaveRequest) error
	HasOverlappingPeriod(ctx context.Context, userID uint, startDate, endDate time.Time) (bool, error)
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
	CountByUserAndStatus(ctx context.Context, userID uint, status string) (int64, error)
	CountApprovedAppliedOn(ctx context.Context, day time.Time) (int64, error)
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

func (r *repository) Create(ctx context.Context, l *LeaveRequest) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *repository) FindByID(ctx context.Context, id uint) (*LeaveRequest, error) {
	var l LeaveRequest
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("LeaveType").
		First(&l, "id = ?", id).Error
	return &l, err
}

func (r *repository) FindAllByUser(ctx context.Context, userID uint) ([]LeaveRequest, error) {
	var leaves []LeaveRequest
	err := r.db.WithContext(ctx).
		Preload("LeaveType").
		Where("user_id = ?", userID).
		Order("applied_at DESC").
		Find(&leaves).Error
	return leaves, err
}

func (r *repository) FindPending(ctx context.Context) ([]LeaveRequest, error) {
	var leaves []LeaveRequest
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("LeaveType").
		Where("status = ?", StatusPending).
		Order("applied_at ASC").
		Find(&leaves).Error
	return leaves, err
}

func (r *repository) FindRecentByUser(ctx context.Context, userID uint, limit int) ([]LeaveRequest, error) {
	var leaves []LeaveRequest
	err := r.db.WithContext(ctx).
		Preload("LeaveType").
		Where("user_id = ?", userID).
		Order("applied_at DESC").
		Limit(limit).
		Find(&leaves).Error
	return leaves, err
}

// FindRecentDecided lists decided requests by application date, not decision
// date, so the manager dashboard shows the same ordering as the request list.
func (r *repository) FindRecentDecided(ctx context.Context, limit int) ([]LeaveRequest, error) {
	var leaves []LeaveRequest
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("LeaveType").
		Where("status IN ?", []string{StatusApproved, StatusRejected}).
		Order("applied_at DESC").
		Limit(limit).
		Find(&leaves).Error
	return leaves, err
}

func (r *repository) Update(ctx context.Context, l *LeaveRequest) error {
	return r.db.WithContext(ctx).Save(l).Error
}

// HasOverlappingPeriod treats rejected requests as dead: their period is free
// again. Pending and approved requests both block the range.
func (r *repository) HasOverlappingPeriod(ctx context.Context, userID uint, startDate, endDate time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&LeaveRequest{}).
		Where("user_id = ?", userID).
		Where("status <> ?", StatusRejected).
		Where("NOT (end_date < ? OR start_date > ?)", startDate, endDate).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&LeaveRequest{}).
		Count(&count).Error
	return count, err
}

func (r *repository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&LeaveRequest{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

func (r *repository) CountByUserAndStatus(ctx context.Context, userID uint, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&LeaveRequest{}).
		Where("user_id = ?", userID).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}

// CountApprovedAppliedOn counts approved requests whose application date falls
// on the given day. The manager dashboard's "approved today" figure keys off
// applied_at, not reviewed_at, so an old request approved just now is not
// counted while one applied and approved today is.
func (r *repository) CountApprovedAppliedOn(ctx context.Context, day time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&LeaveRequest{}).
		Where("status = ?", StatusApproved).
		Where("applied_at::date = ?::date", day).
		Count(&count).Error
	return count, err
}
