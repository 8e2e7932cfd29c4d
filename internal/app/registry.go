package app

import (
	"go-leave/internal/auth"
	"go-leave/internal/balance"
	"go-leave/internal/dashboard"
	"go-leave/internal/leave"
	"go-leave/internal/leavetype"
	"go-leave/internal/messaging/kafka"
	"go-leave/internal/middleware"
	"go-leave/internal/rbac"
	"go-leave/internal/settings"
	"go-leave/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	userRepo := user.NewRepository(db)
	leaveTypeRepo := leavetype.NewRepository(db)
	balanceRepo := balance.NewRepository(db)
	leaveRepo := leave.NewRepository(db)
	settingsRepo := settings.NewRepository(db)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := rbac.NewEnforcer()
	if err != nil {
		return err
	}

	// --- Services ---
	authService := auth.NewService(db, userRepo, leaveTypeRepo, balanceRepo)
	userService := user.NewService(userRepo)
	leaveTypeService := leavetype.NewService(db, leaveTypeRepo, balanceRepo)
	leaveService := leave.NewServiceWithOutbox(db, leaveRepo, leaveTypeRepo, balanceRepo, outboxRepo)
	dashboardService := dashboard.NewService(leaveRepo, balanceRepo, userRepo, leaveTypeRepo)
	settingsService := settings.NewService(db, settingsRepo)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService)
	userHandler := user.NewHandler(userService)
	leaveTypeHandler := leavetype.NewHandler(leaveTypeService)
	leaveHandler := leave.NewHandlerWithRedis(leaveService, rdb)
	dashboardHandler := dashboard.NewHandler(dashboardService, rdb)
	settingsHandler := settings.NewHandler(settingsService)

	// --- Routes Registration ---
	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(zap.L()))

	api := router.Group("/api")
	{
		auth.RegisterRoutes(api, authHandler)

		// user routes attach their own auth middleware
		user.RegisterRoutes(api, userHandler, enforcer)

		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware())
		{
			leavetype.RegisterRoutes(protected, leaveTypeHandler, enforcer)
			leave.RegisterRoutes(protected, leaveHandler, enforcer, rdb)
			dashboard.RegisterRoutes(protected, dashboardHandler, enforcer)
			settings.RegisterRoutes(protected, settingsHandler, enforcer)
		}
	}

	return nil
}
