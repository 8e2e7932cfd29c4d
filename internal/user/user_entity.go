package user

import (
	"strings"
	"time"
)

const (
	RoleEmployee = "EMPLOYEE"
	RoleManager  = "MANAGER"
	RoleAdmin    = "ADMIN"
)

type User struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement"`
	Name      string    `gorm:"column:name;type:varchar(255);not null"`
	Email     string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex"`
	Password  string    `gorm:"column:password;type:text;not null"`
	Role      string    `gorm:"column:role;type:varchar(20);not null;default:'EMPLOYEE'"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

// NormalizeRole uppercases the input and reports whether it names one of the
// three known roles. Anything outside the closed set is rejected at the
// boundary.
func NormalizeRole(role string) (string, bool) {
	r := strings.ToUpper(strings.TrimSpace(role))
	switch r {
	case RoleEmployee, RoleManager, RoleAdmin:
		return r, true
	default:
		return "", false
	}
}
