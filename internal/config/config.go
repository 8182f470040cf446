// Package config handles application configuration from environment variables.
//
// Values come from the process environment, optionally seeded from a .env
// file in the working directory. Variables already set in the environment
// win over the file.
package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	Port           string        `validate:"required,numeric"`
	Env            string        `validate:"oneof=development production test"`
	LogLevel       string        `validate:"oneof=debug info warn error"`
	NetworkFile    string        `validate:"required"`
	CacheTTL       time.Duration `validate:"gte=0"`
	CacheSize      int           `validate:"gte=0"`
	HTTPTimeout    time.Duration `validate:"gt=0"`
	RequestTimeout time.Duration `validate:"gt=0"`
	AlertsFeedURL  string        `validate:"omitempty,url"`
	RouteLimit     int           `validate:"gte=0"`

	BidirectionalTransfers bool
	ExplicitChanges        bool
}

// Load reads configuration from environment variables with sensible defaults.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("could not read .env file", "error", err)
	}

	return &Config{
		Port:           getEnv("PORT", "3000"),
		Env:            getEnv("ENV", "development"),
		LogLevel:       strings.ToLower(getEnv("LOG_LEVEL", "info")),
		NetworkFile:    getEnv("NETWORK_FILE", "data/network.yaml"),
		CacheTTL:       getDurationEnv("CACHE_TTL_SECONDS", 300) * time.Second,
		CacheSize:      getIntEnv("CACHE_SIZE", 1024),
		HTTPTimeout:    getDurationEnv("HTTP_TIMEOUT_SECONDS", 10) * time.Second,
		RequestTimeout: getDurationEnv("REQUEST_TIMEOUT_SECONDS", 15) * time.Second,
		AlertsFeedURL:  getEnv("ALERTS_FEED_URL", ""),
		RouteLimit:     getIntEnv("DEFAULT_ROUTE_LIMIT", 4),

		BidirectionalTransfers: getBoolEnv("ROUTE_BIDIRECTIONAL_TRANSFERS", false),
		ExplicitChanges:        getBoolEnv("ROUTE_EXPLICIT_CHANGES", false),
	}
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// AlertsEnabled reports whether a service alerts feed is configured.
func (c *Config) AlertsEnabled() bool {
	return c.AlertsFeedURL != ""
}

// SlogLevel maps LogLevel to a slog level.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Validate checks that configuration values are usable.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultSeconds int) time.Duration {
	return time.Duration(getIntEnv(key, defaultSeconds))
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
