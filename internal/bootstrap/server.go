package bootstrap

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const defaultShutdownTimeout = 10 * time.Second

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	// ShutdownTimeout bounds how long in-flight leave requests may take to
	// finish once ctx is done.
	ShutdownTimeout time.Duration
}

// RunHTTPServer binds the port, serves the leave API until ctx is done and
// then drains open requests. A bind failure is returned before anything is
// audited.
func RunHTTPServer(ctx context.Context, handler http.Handler, cfg ServerConfig, audit AuditLogger) error {
	logger := zap.L().Named("server")

	ln, err := net.Listen("tcp", ":"+cfg.Port)
	if err != nil {
		return err
	}

	server := &http.Server{
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.Serve(ln)
	}()

	addr := ln.Addr().String()
	logger.Info("leave API listening", zap.String("addr", addr))
	audit.Log(ctx, AuditLog{
		Action:  "SERVER_START",
		Message: "Leave API accepting requests",
		Meta:    map[string]any{"addr": addr},
	})

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	grace := cfg.ShutdownTimeout
	if grace <= 0 {
		grace = defaultShutdownTimeout
	}

	logger.Info("draining leave API", zap.Duration("grace", grace))
	audit.Log(context.Background(), AuditLog{
		Action:  "SERVER_SHUTDOWN",
		Message: "Leave API draining in-flight requests",
		Meta: map[string]any{
			"addr":  addr,
			"cause": context.Cause(ctx).Error(),
			"grace": grace.String(),
		},
	})

	shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("forced shutdown", zap.Error(err))
		return err
	}
	logger.Info("leave API stopped")
	return nil
}
