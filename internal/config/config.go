// Package config loads pricebook settings from the environment.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	OCR      OCRConfig
	LogLevel string
	// OnError is the batch policy name, "abort" or "skip".
	OnError string
}

// DatabaseConfig holds store-related configuration
type DatabaseConfig struct {
	Driver  string
	DSN     string
	Timeout time.Duration
}

// OCRConfig holds OCR-related configuration
type OCRConfig struct {
	Language string
	MinWidth int
	PageMode string
}

// Load reads a .env file from the working directory, if there is one,
// and then loads configuration from environment variables. Variables
// already set in the environment win over the file.
func Load() *Config {
	_ = godotenv.Load()
	return LoadConfig()
}

// LoadFile is Load with an explicit .env path. A missing file is an error.
func LoadFile(path string) (*Config, error) {
	if err := godotenv.Load(path); err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return LoadConfig(), nil
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Driver:  getEnv("PRICEBOOK_DB_DRIVER", "sqlite"),
			DSN:     getEnv("PRICEBOOK_DB", "pricebook.db"),
			Timeout: getEnvAsDuration("PRICEBOOK_DB_TIMEOUT", 5*time.Second),
		},
		OCR: OCRConfig{
			Language: getEnv("PRICEBOOK_OCR_LANG", "eng"),
			MinWidth: getEnvAsInt("PRICEBOOK_OCR_MIN_WIDTH", 2000),
			PageMode: getEnv("PRICEBOOK_OCR_PSM", "sparse"),
		},
		LogLevel: getEnv("PRICEBOOK_LOG_LEVEL", "info"),
		OnError:  getEnv("PRICEBOOK_ON_ERROR", "abort"),
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// ErrInvalid marks a configuration value that is out of range.
var ErrInvalid = errors.New("invalid configuration")

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	var errs []error
	switch c.Database.Driver {
	case "sqlite", "postgres":
	default:
		errs = append(errs, fmt.Errorf("%w: PRICEBOOK_DB_DRIVER %q (want sqlite or postgres)", ErrInvalid, c.Database.Driver))
	}
	if c.Database.DSN == "" {
		errs = append(errs, fmt.Errorf("%w: PRICEBOOK_DB is required", ErrInvalid))
	}
	if c.Database.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("%w: PRICEBOOK_DB_TIMEOUT must be positive", ErrInvalid))
	}
	if _, err := ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}
	switch c.OnError {
	case "abort", "skip":
	default:
		errs = append(errs, fmt.Errorf("%w: PRICEBOOK_ON_ERROR %q (want abort or skip)", ErrInvalid, c.OnError))
	}
	switch c.OCR.PageMode {
	case "", "auto", "column", "block", "sparse":
	default:
		errs = append(errs, fmt.Errorf("%w: PRICEBOOK_OCR_PSM %q (want auto, column, block or sparse)", ErrInvalid, c.OCR.PageMode))
	}
	if c.OCR.MinWidth < 0 {
		errs = append(errs, fmt.Errorf("%w: PRICEBOOK_OCR_MIN_WIDTH must not be negative", ErrInvalid))
	}
	return errors.Join(errs...)
}

// ParseLevel maps debug, info, warn or error to a slog level
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("%w: log level %q", ErrInvalid, s)
}
