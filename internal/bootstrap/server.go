package bootstrap

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	ShutdownTimeout time.Duration
}

// ServeHTTP serves handler until ctx is cancelled, then drains open requests
// for up to ShutdownTimeout. It returns nil after a clean shutdown.
func ServeHTTP(ctx context.Context, handler http.Handler, cfg ServerConfig, audit AuditLogger) error {
	ln, err := net.Listen("tcp", ":"+cfg.Port)
	if err != nil {
		return err
	}
	return serve(ctx, ln, handler, cfg, audit)
}

func serve(ctx context.Context, ln net.Listener, handler http.Handler, cfg ServerConfig, audit AuditLogger) error {
	server := &http.Server{
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
	log := zap.L().Named("http")

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("http server listening", zap.String("addr", ln.Addr().String()))
		if err := server.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		if ctx.Err() == nil {
			// Serve failed; nothing to drain.
			return nil
		}

		audit.Log(context.Background(), AuditLog{
			Action:  "SERVER_SHUTDOWN",
			Message: "HTTP server is shutting down",
			Meta:    map[string]any{"cause": context.Cause(ctx).Error()},
		})

		timeout := cfg.ShutdownTimeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error("forced shutdown", zap.Error(err))
			return err
		}
		log.Info("http server stopped")
		return nil
	})
	return g.Wait()
}
