package configs

import (
	"os"
	"strconv"
	"time"

	"stagedesk/configs/configsdatabase"
	"stagedesk/configs/configslog"

	"github.com/joho/godotenv"
)

// AppConfig is the top level application configuration.
type AppConfig struct {
	Port     string
	Env      string
	Database configsdatabase.DatabaseConfig
}

// LoadConfig reads .env (ignored when absent) and builds the config from the
// environment with sensible defaults for local development.
func LoadConfig() AppConfig {
	if err := godotenv.Load(); err != nil {
		configslog.SLog.Info(".env file not found, relying on environment variables")
	}

	return AppConfig{
		Port: getEnv("PORT", "3000"),
		Env:  getEnv("APP_ENV", "production"),
		Database: configsdatabase.DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", "postgres"),
			Name:            getEnv("DB_NAME", "stagedesk"),
			SSLMode:         getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: time.Duration(getEnvInt("DB_CONN_MAX_LIFETIME_MINUTES", 60)) * time.Minute,
		},
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
