package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Supported database drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds the runtime settings of the API.
type Config struct {
	AppPort             string
	DatabaseDriver      string
	DatabaseDSN         string
	RabbitMQURL         string
	RabbitMQQueue       string
	LegacyRoutesEnabled bool
	CORSAllowOrigins    string
	SeedData            bool
	LogLevel            zapcore.Level
}

// Load reads the configuration from environment variables, falling back to defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("DATABASE_DRIVER", DriverSQLite)
	v.SetDefault("DATABASE_DSN", "loja.db")
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("RABBITMQ_QUEUE", "product_events")
	v.SetDefault("LEGACY_ROUTES_ENABLED", false)
	v.SetDefault("CORS_ALLOW_ORIGINS", "*")
	v.SetDefault("SEED_DATA", false)
	v.SetDefault("LOG_LEVEL", "info")
	v.AutomaticEnv()

	driver := strings.ToLower(strings.TrimSpace(v.GetString("DATABASE_DRIVER")))
	if driver != DriverSQLite && driver != DriverPostgres {
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	level, err := zapcore.ParseLevel(v.GetString("LOG_LEVEL"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	return &Config{
		AppPort:             v.GetString("APP_PORT"),
		DatabaseDriver:      driver,
		DatabaseDSN:         v.GetString("DATABASE_DSN"),
		RabbitMQURL:         v.GetString("RABBITMQ_URL"),
		RabbitMQQueue:       v.GetString("RABBITMQ_QUEUE"),
		LegacyRoutesEnabled: v.GetBool("LEGACY_ROUTES_ENABLED"),
		CORSAllowOrigins:    v.GetString("CORS_ALLOW_ORIGINS"),
		SeedData:            v.GetBool("SEED_DATA"),
		LogLevel:            level,
	}, nil
}

// NewLogger builds the production zap logger at the configured level.
func (c *Config) NewLogger() (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(c.LogLevel)
	return zc.Build()
}
