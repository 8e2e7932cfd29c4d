package leave

import "time"

// RequestUser is a slim projection of the users table, just enough for the
// manager-facing listings. Keeping it local avoids a cycle with the user
// package.
type RequestUser struct {
	ID   uint
	Name string
}

func (RequestUser) TableName() string { return "users" }

type RequestLeaveType struct {
	ID   uint
	Name string
}

func (RequestLeaveType) TableName() string { return "leave_types" }

type LeaveRequest struct {
	ID          uint `gorm:"primaryKey"`
	UserID      uint `gorm:"not null;index:idx_leave_requests_user_dates"`
	LeaveTypeID uint `gorm:"not null;index:idx_leave_requests_type"`

	StartDate time.Time `gorm:"type:date;not null;index:idx_leave_requests_user_dates"`
	EndDate   time.Time `gorm:"type:date;not null;index:idx_leave_requests_user_dates"`
	TotalDays int       `gorm:"type:int;not null;default:1"`
	Reason    string    `gorm:"type:text"`

	Status     string    `gorm:"type:varchar(20);not null;default:'PENDING';index:idx_leave_requests_status"`
	AppliedAt  time.Time `gorm:"not null"`
	ReviewedAt *time.Time
	ReviewedBy *uint

	User      *RequestUser      `gorm:"foreignKey:UserID"`
	LeaveType *RequestLeaveType `gorm:"foreignKey:LeaveTypeID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (LeaveRequest) TableName() string { return "leave_requests" }
