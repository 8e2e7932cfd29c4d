package main

import (
	"go-leave/internal/app"
	"go-leave/internal/shared/apperror"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()

	logger.Info("starting leave outbox worker")
	if err := app.RunWorker(); err != nil {
		logger.Fatal("run leave outbox worker failed", zap.Error(err))
	}
}
