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
	Version     string

	// Requests
	MaxBodyBytes       int64
	RateLimitPerMinute int

	// JWT; an empty secret leaves the calculation endpoints public
	JWTSecret string

	// CORS
	AllowedOrigins []string

	// Sentry
	SentryDSN string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		Environment:        getEnv("ENVIRONMENT", "development"),
		Version:            getEnv("APP_VERSION", "1.0.0"),
		MaxBodyBytes:       int64(getEnvAsInt("MAX_BODY_BYTES", 4096)),
		RateLimitPerMinute: getEnvAsInt("RATE_LIMIT_PER_MINUTE", 0),
		JWTSecret:          getEnv("JWT_SECRET", ""),
		AllowedOrigins:     getEnvAsSlice("ALLOWED_ORIGINS", []string{"*"}),
		SentryDSN:          getEnv("SENTRY_DSN", ""),
	}

	if cfg.Port == "" {
		return nil, fmt.Errorf("PORT must not be empty")
	}

	if cfg.MaxBodyBytes <= 0 {
		return nil, fmt.Errorf("MAX_BODY_BYTES must be positive, got %d", cfg.MaxBodyBytes)
	}

	if cfg.RateLimitPerMinute < 0 {
		return nil, fmt.Errorf("RATE_LIMIT_PER_MINUTE must not be negative, got %d", cfg.RateLimitPerMinute)
	}

	return cfg, nil
}

// IsProduction reports whether the service runs in production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
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
	parts := strings.Split(valueStr, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
