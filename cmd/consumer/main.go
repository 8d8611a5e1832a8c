package main

import (
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/app"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/shared/apperror"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/shared/config"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/shared/logger"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.New(logger.Options{
		Level:       cfg.Log.Level,
		Development: cfg.Log.Development,
		File:        cfg.Log.File,
	})
	if err != nil {
		panic(err)
	}
	defer log.Sync()
	zap.ReplaceGlobals(log)

	apperror.Init()

	if err := app.RunConsumer(cfg); err != nil {
		log.Fatal("run consumer failed", zap.Error(err))
	}
}
