// Package config provides application configuration.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Environment names the build/run mode; it decides the log level floor and
// whether dev-only features (disk-served assets, live reload) are active.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

// Config holds all application configuration.
type Config struct {
	Port        string      `validate:"required"`
	Environment Environment `validate:"oneof=development production"`
	FrontendURL string
	DBPath      string `validate:"required"`

	// AssetsDir is the on-disk frontend build; in development it is served
	// directly (and watched for live reload) instead of the embedded copy.
	AssetsDir string

	// LearnerTTL is the inactivity age after which anonymous learner rows
	// and their attempts/progress are swept.
	LearnerTTL time.Duration `validate:"gt=0"`

	// LiveReload toggles the dev-only asset watcher and /ws/reload endpoint.
	LiveReload bool
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: Environment(getEnv("APP_ENV", string(EnvDevelopment))),
		FrontendURL: getEnv("FRONTEND_URL", ""),
		DBPath:      getEnv("DB_PATH", "./data/course.db"),
		AssetsDir:   getEnv("ASSETS_DIR", "./web/dist"),
		LearnerTTL:  time.Duration(getEnvInt("LEARNER_TTL_DAYS", 90)) * 24 * time.Hour,
		LiveReload:  getEnvBool("LIVE_RELOAD", true),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required configuration fields are set.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return err
	}
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("PORT must be numeric, got %q", c.Port)
	}
	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == EnvDevelopment
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	default:
		return fallback
	}
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return n
}
