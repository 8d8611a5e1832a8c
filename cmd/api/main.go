package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/app"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/bootstrap"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/shared/apperror"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/shared/config"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/shared/logger"

	"github.com/gin-gonic/gin"
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
	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(gin.Recovery())

	// build dependency + routes
	cleanup, err := app.BuildApp(r, cfg)
	if err != nil {
		log.Fatal("build app failed", zap.Error(err))
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = bootstrap.RunHTTPServer(
		ctx,
		r,
		bootstrap.ServerConfig{
			Port:            cfg.Port,
			ReadTimeout:     cfg.HTTP.ReadTimeout,
			WriteTimeout:    cfg.HTTP.WriteTimeout,
			IdleTimeout:     cfg.HTTP.IdleTimeout,
			ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
		},
		bootstrap.NewStdoutAuditLogger(log),
	)
	if err != nil {
		log.Error("leave API stopped with error", zap.Error(err))
	}
}
