package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Defaults for configuration values.
const (
	DefaultPort            = "8080"
	DefaultCurrencySymbol  = "₹"
	DefaultRequestTimeout  = 5 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
)

// DefaultAllowedOrigins permits any origin; the API is read-only and unauthenticated.
var DefaultAllowedOrigins = []string{"*"}

// Config holds all application configuration.
type Config struct {
	Port           string
	CurrencySymbol string
	AllowedOrigins []string

	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration

	LogLevel  string
	LogFormat string // "text" or "json"
}

// Load reads configuration from environment variables (and .env file if present).
func Load() Config {
	_ = godotenv.Load() // Ignore error if .env doesn't exist

	cfg := Config{
		Port:            DefaultPort,
		CurrencySymbol:  DefaultCurrencySymbol,
		AllowedOrigins:  DefaultAllowedOrigins,
		RequestTimeout:  DefaultRequestTimeout,
		ShutdownTimeout: DefaultShutdownTimeout,
		LogLevel:        DefaultLogLevel,
		LogFormat:       DefaultLogFormat,
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}

	if v, ok := os.LookupEnv("CURRENCY_SYMBOL"); ok {
		cfg.CurrencySymbol = v
	}

	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		var origins []string
		for _, origin := range strings.Split(v, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				origins = append(origins, origin)
			}
		}
		cfg.AllowedOrigins = origins
	}

	if v := os.Getenv("REQUEST_TIMEOUT_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil {
			cfg.RequestTimeout = time.Duration(ms) * time.Millisecond
		}
	}

	if v := os.Getenv("SHUTDOWN_TIMEOUT_MS"); v != "" {
		if ms, err := strconv.Atoi(v); err == nil {
			cfg.ShutdownTimeout = time.Duration(ms) * time.Millisecond
		}
	}

	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}

	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.LogFormat = strings.ToLower(v)
	}

	return cfg
}

// Validate checks that configuration values are within acceptable ranges.
func Validate(cfg Config) error {
	port, err := strconv.Atoi(cfg.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("PORT must be a number between 1 and 65535, got %q", cfg.Port)
	}
	if len(cfg.AllowedOrigins) == 0 {
		return fmt.Errorf("CORS_ALLOWED_ORIGINS must list at least one origin")
	}
	if cfg.RequestTimeout < 10*time.Millisecond {
		return fmt.Errorf("REQUEST_TIMEOUT_MS must be at least 10ms, got %v", cfg.RequestTimeout)
	}
	if cfg.ShutdownTimeout < 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT_MS must be non-negative, got %v", cfg.ShutdownTimeout)
	}
	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return fmt.Errorf("LOG_FORMAT must be text or json, got %q", cfg.LogFormat)
	}
	return nil
}

// NewLogger builds the application logger from cfg. Call Validate first;
// an unknown level falls back to info.
func NewLogger(cfg Config) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if cfg.LogFormat == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return logger
}

// Summary returns a one-line description of cfg for the startup log.
func Summary(cfg Config) string {
	return fmt.Sprintf("port=%s currency=%s origins=%s timeout=%v",
		cfg.Port, cfg.CurrencySymbol, strings.Join(cfg.AllowedOrigins, ","), cfg.RequestTimeout)
}
