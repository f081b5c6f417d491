package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sharda-hr/internal/app"
	"sharda-hr/internal/bootstrap"
	"sharda-hr/internal/config"
	"sharda-hr/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger, err := bootstrap.NewLogger(cfg.IsProduction())
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	apperror.Init()
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	auditLogger := bootstrap.NewStdoutAuditLogger(logger)
	if err := app.BuildApp(r, cfg, auditLogger); err != nil {
		logger.Fatal("build app failed", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = bootstrap.ServeHTTP(
		ctx,
		r,
		bootstrap.ServerConfig{
			Port:            cfg.Port,
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    30 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		auditLogger,
	)
	if err != nil {
		logger.Fatal("http server failed", zap.Error(err))
	}
}
