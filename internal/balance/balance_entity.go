package balance

import "time"

type LeaveBalance struct {
	ID            uint      `gorm:"column:id;primaryKey;autoIncrement"`
	UserID        uint      `gorm:"column:user_id;not null;uniqueIndex:idx_leave_balances_user_type"`
	LeaveTypeID   uint      `gorm:"column:leave_type_id;not null;uniqueIndex:idx_leave_balances_user_type"`
	RemainingDays int       `gorm:"column:remaining_days;not null;default:0"`
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// Summary is the per-type projection joined with the leave type, used by the
// balances endpoint and the employee dashboard.
type Summary struct {
	LeaveTypeID    uint   `gorm:"column:leave_type_id" json:"leave_type_id"`
	LeaveTypeName  string `gorm:"column:leave_type_name" json:"leave_type_name"`
	RemainingDays  int    `gorm:"column:remaining_days" json:"remaining_days"`
	MaxDaysPerYear int    `gorm:"column:max_days_per_year" json:"max_days_per_year"`
}
