package app

import (
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/middleware"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/shared/config"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/shared/connection"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/shared/database"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// BuildApp connects the infrastructure and mounts every module on router.
// The returned cleanup closes the connections.
func BuildApp(router *gin.Engine, cfg *config.Config) (func(), error) {
	logger := zap.L().Named("app")

	// 1. Setup Infrastructure
	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database)
	if err != nil {
		return nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, err
	}

	if cfg.MigrateOnStart {
		if err := database.MigrateUp(sqlDB, logger); err != nil {
			_ = sqlDB.Close()
			return nil, err
		}
	}

	redisClient, err := connection.ConnectRedisWithRetry(cfg.Redis.Addr, cfg.Database.MaxRetries)
	if err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	cleanup := func() {
		_ = redisClient.Close()
		_ = sqlDB.Close()
	}

	// 2. Global middleware
	router.Use(
		middleware.RequestID(),
		middleware.ContextLogger(zap.L().Named("http")),
		middleware.CORS(cfg.ClientURL),
		middleware.RateLimitByIP(rate.Limit(cfg.HTTP.RateLimitRPS), cfg.HTTP.RateLimitBurst),
	)
	router.GET("/health", healthHandler(sqlDB, logger))

	// 3. Register Modules & Routes
	if err := registerModules(router, cfg, gormDB, redisClient); err != nil {
		cleanup()
		return nil, err
	}

	logger.Info("application modules registered")
	return cleanup, nil
}
