package settings

import "time"

type SystemSetting struct {
	ID        uint   `gorm:"primaryKey"`
	Key       string `gorm:"column:key;type:varchar(100);not null;uniqueIndex:idx_system_settings_key"`
	Value     string `gorm:"column:value;type:varchar(500);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (SystemSetting) TableName() string { return "system_settings" }

// Well-known setting keys, so call sites do not spread magic strings.
const (
	KeyCompanyName         = "CompanyName"
	KeyLeaveYearStartMonth = "LeaveYearStartMonth"
	KeyMaxCarryForwardDays = "MaxCarryForwardDays"
)
