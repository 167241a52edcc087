package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration
type Config struct {
	// Server
	Port        string
	Environment string

	// Database
	DatabaseURL string

	// Auth
	AppPIN          string // plaintext PIN, development convenience only
	AppPINHash      string // bcrypt hash, preferred
	JWTSecret       string
	SessionTTLHours int

	// Storage (generated report artifacts)
	StoragePath string

	// Background Workers
	WorkerCount int

	// CORS
	AllowedOrigins []string

	// Sentry
	SentryDSN string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:            getEnv("PORT", "8080"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		AppPIN:          getEnv("APP_PIN", ""),
		AppPINHash:      getEnv("APP_PIN_HASH", ""),
		JWTSecret:       getEnv("JWT_SECRET", ""),
		SessionTTLHours: getEnvAsInt("SESSION_TTL_HOURS", 72),
		StoragePath:     getEnv("STORAGE_PATH", "./storage"),
		WorkerCount:     getEnvAsInt("WORKER_COUNT", 3),
		AllowedOrigins:  getEnvAsSlice("ALLOWED_ORIGINS", []string{"*"}),
		SentryDSN:       getEnv("SENTRY_DSN", ""),
	}

	// Validate required configuration
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	// The PIN has no baked-in fallback. An unset PIN is a deployment error
	// in production; in development the auth endpoint rejects every attempt
	// until one is configured.
	if cfg.AppPIN == "" && cfg.AppPINHash == "" && cfg.Environment == "production" {
		return nil, fmt.Errorf("APP_PIN_HASH (or APP_PIN) is required in production")
	}

	if cfg.JWTSecret == "" && cfg.Environment == "production" {
		return nil, fmt.Errorf("JWT_SECRET is required in production")
	}

	// Set default JWT secret for development
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "dev-secret-change-in-production"
	}

	if cfg.SessionTTLHours <= 0 {
		cfg.SessionTTLHours = 72
	}

	return cfg, nil
}

// PINConfigured reports whether any PIN credential has been set
func (c *Config) PINConfigured() bool {
	return c.AppPIN != "" || c.AppPINHash != ""
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt reads an environment variable as integer
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsSlice reads an environment variable as comma-separated slice
func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	return strings.Split(valueStr, ",")
}
