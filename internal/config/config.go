package config

import (
	"os"
	"strconv"
	"time"

	"sharda-hr/internal/shared/connection"
)

type Config struct {
	AppEnv  string
	Port    string
	DB      connection.DBConfig
	Redis   string
	Kafka   string
	JWT     string
	Retries int

	PayslipDir            string
	RBACModelPath         string
	StatutoryDefaultsPath string
	OutboxPollInterval    time.Duration
}

// Load reads the process environment. Call godotenv.Load before it.
func Load() Config {
	return Config{
		AppEnv: getenv("APP_ENV", "development"),
		Port:   getenv("PORT", "3000"),
		DB: connection.DBConfig{
			Host:     getenv("DB_HOST", "localhost"),
			User:     getenv("DB_USER", "postgres"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     getenv("DB_NAME", "sharda_hr"),
			Port:     getenv("DB_PORT", "5432"),
			SSLMode:  getenv("DB_SSLMODE", "disable"),
		},
		Redis:                 os.Getenv("REDIS_ADDR"),
		Kafka:                 os.Getenv("KAFKA_BROKER"),
		JWT:                   os.Getenv("JWT_SECRET"),
		Retries:               getint("CONNECT_RETRIES", 5),
		PayslipDir:            getenv("PAYSLIP_DIR", "storage/payslips"),
		RBACModelPath:         getenv("RBAC_MODEL_PATH", "internal/rbac/infra/model.conf"),
		StatutoryDefaultsPath: os.Getenv("STATUTORY_DEFAULTS_PATH"),
		OutboxPollInterval:    time.Duration(getint("OUTBOX_POLL_SECONDS", 3)) * time.Second,
	}
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getint(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}
