package leavetype

import "time"

type LeaveType struct {
	ID             uint      `gorm:"column:id;primaryKey;autoIncrement"`
	Name           string    `gorm:"column:name;type:varchar(100);not null;uniqueIndex"`
	MaxDaysPerYear int       `gorm:"column:max_days_per_year;not null"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
