package app

import (
	"context"
	"net/http"
	"time"

	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/shared/apperror"
	"github.com/adeleke-taiwo/HR-LeaveFlow/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type pinger interface {
	PingContext(ctx context.Context) error
}

// healthHandler reports 503 while the leave database does not answer a ping.
func healthHandler(db pinger, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			logger.Warn("health check failed", zap.Error(err))
			e := apperror.ErrServiceUnavailable
			response.Error(c, e.HTTPStatus, e.Code, e.Message, nil)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
