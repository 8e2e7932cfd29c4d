package seed

import (
	"context"

	"go-leave/internal/balance"
	"go-leave/internal/leavetype"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var defaultLeaveTypes = []leavetype.LeaveType{
	{Name: "Casual Leave", MaxDaysPerYear: 12},
	{Name: "Sick Leave", MaxDaysPerYear: 10},
	{Name: "Earned Leave", MaxDaysPerYear: 15},
}

// Run seeds the default leave types and a balance row per user and type.
// It is idempotent: a database that already has leave types is left alone,
// so restarting the server never duplicates rows.
func Run(ctx context.Context, db *gorm.DB, logger *zap.Logger) error {
	log := logger.Named("seed")

	var typeCount int64
	if err := db.WithContext(ctx).Model(&leavetype.LeaveType{}).Count(&typeCount).Error; err != nil {
		return err
	}
	if typeCount > 0 {
		log.Debug("seed skipped, leave types already present", zap.Int64("count", typeCount))
		return nil
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		types := make([]leavetype.LeaveType, len(defaultLeaveTypes))
		copy(types, defaultLeaveTypes)

		if err := tx.Create(&types).Error; err != nil {
			return err
		}

		balances := balance.NewRepository(tx)
		for _, lt := range types {
			if err := balances.CreateForAllUsers(ctx, lt.ID, lt.MaxDaysPerYear); err != nil {
				return err
			}
		}

		log.Info("seeded default leave types", zap.Int("count", len(types)))
		return nil
	})
}
