package app

import (
	"database/sql"

	"sharda-hr/internal/bootstrap"
	"sharda-hr/internal/config"
	"sharda-hr/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// openDatabase returns the gorm handle and the *sql.DB services use for
// transactions. Both share one pool.
func openDatabase(cfg config.Config) (*gorm.DB, *sql.DB, error) {
	gormDB, err := connection.ConnectGORMWithRetry(cfg.DB, cfg.Retries)
	if err != nil {
		return nil, nil, err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, nil, err
	}
	return gormDB, sqlDB, nil
}

// BuildApp connects the infrastructure and registers every module on router.
func BuildApp(router *gin.Engine, cfg config.Config, audit bootstrap.AuditLogger) error {
	logger := zap.L().Named("app")

	gormDB, sqlDB, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	logger.Info("database connection established")

	redisClient, err := connection.ConnectRedisWithRetry(cfg.Redis, cfg.Retries)
	if err != nil {
		return err
	}
	logger.Info("redis connection established")

	return registerModules(router, cfg, sqlDB, gormDB, redisClient, audit)
}
