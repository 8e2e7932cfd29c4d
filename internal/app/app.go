package app

import (
	"context"
	"log"
	"os"

	"go-leave/internal/balance"
	"go-leave/internal/leave"
	"go-leave/internal/leavetype"
	"go-leave/internal/seed"
	"go-leave/internal/settings"
	"go-leave/internal/shared/connection"
	"go-leave/internal/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// outboxDDL creates the outbox table the workflow services append to and the
// worker binary drains. AutoMigrate does not manage it because the worker's
// retry columns carry database-side defaults.
const outboxDDL = `
CREATE TABLE IF NOT EXISTS outbox_events (
	id UUID PRIMARY KEY,
	request_id TEXT,
	aggregate_type TEXT NOT NULL,
	aggregate_id TEXT NOT NULL,
	event_type TEXT NOT NULL,
	topic TEXT NOT NULL,
	payload BYTEA NOT NULL,
	status TEXT NOT NULL DEFAULT 'pending',
	retry_count INT NOT NULL DEFAULT 0,
	error_message TEXT,
	next_retry_at TIMESTAMPTZ,
	processed_at TIMESTAMPTZ,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

func BuildApp(router *gin.Engine) error {
	// 1. Setup Infrastructure
	db, err := connection.ConnectGORMWithRetry(
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_SSLMODE"),
		5,
	)
	if err != nil {
		return err
	}
	log.Println("✅ Database connection established")

	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	log.Println("✅ Redis connection established")

	// 2. Schema & seed data
	if err := migrate(db); err != nil {
		return err
	}
	if err := seed.Run(context.Background(), db, zap.L()); err != nil {
		return err
	}

	// 3. Register Modules & Routes
	return registerModules(router, db, redisClient)
}

func migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&user.User{},
		&leavetype.LeaveType{},
		&balance.LeaveBalance{},
		&leave.LeaveRequest{},
		&settings.SystemSetting{},
	); err != nil {
		return err
	}
	return db.Exec(outboxDDL).Error
}
