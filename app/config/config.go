package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the growhub service
type Config struct {
	// Server
	Port     string
	Host     string
	LogLevel string

	// Database
	DatabaseHost     string
	DatabasePort     string
	DatabaseName     string
	DatabaseUser     string
	DatabasePassword string
	DatabaseSSLMode  string

	// Identity provider
	ProviderPublicURL string
	ProviderAdminURL  string

	// Webhook intake. The secret is required: serving unverified webhooks is
	// a configuration error, not a degraded mode.
	WebhookSecret string

	// Redis (webhook event dedupe)
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Dedupe window for redelivered webhook events
	DedupeTTL time.Duration
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	config := &Config{}

	// Server configuration
	config.Port = getEnvOrDefault("PORT", "9600")
	config.Host = getEnvOrDefault("HOST", "0.0.0.0")
	config.LogLevel = getEnvOrDefault("LOG_LEVEL", "info")

	// Database configuration
	config.DatabaseHost = getEnvOrDefault("DB_HOST", "growhub-postgres")
	config.DatabasePort = getEnvOrDefault("DB_PORT", "5432")
	config.DatabaseName = getEnvOrDefault("DB_NAME", "growhub_db")
	config.DatabaseUser = getEnvOrDefault("DB_USER", "growhub_user")
	config.DatabasePassword = os.Getenv("DB_PASSWORD")
	if config.DatabasePassword == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}
	config.DatabaseSSLMode = getEnvOrDefault("DB_SSL_MODE", "require")

	// Identity provider configuration
	config.ProviderPublicURL = os.Getenv("PROVIDER_PUBLIC_URL")
	if config.ProviderPublicURL == "" {
		return nil, fmt.Errorf("PROVIDER_PUBLIC_URL is required")
	}
	config.ProviderAdminURL = os.Getenv("PROVIDER_ADMIN_URL")
	if config.ProviderAdminURL == "" {
		return nil, fmt.Errorf("PROVIDER_ADMIN_URL is required")
	}

	config.WebhookSecret = os.Getenv("WEBHOOK_SECRET")
	if config.WebhookSecret == "" {
		return nil, fmt.Errorf("WEBHOOK_SECRET is required")
	}

	// Redis configuration
	config.RedisAddr = getEnvOrDefault("REDIS_ADDR", "growhub-redis:6379")
	config.RedisPassword = os.Getenv("REDIS_PASSWORD")

	redisDBStr := getEnvOrDefault("REDIS_DB", "0")
	redisDB, err := strconv.Atoi(redisDBStr)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}
	config.RedisDB = redisDB

	dedupeTTLStr := getEnvOrDefault("WEBHOOK_DEDUPE_TTL", "24h")
	config.DedupeTTL, err = time.ParseDuration(dedupeTTLStr)
	if err != nil {
		return nil, fmt.Errorf("invalid WEBHOOK_DEDUPE_TTL: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil {
		return fmt.Errorf("invalid port: %s", c.Port)
	}
	if port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535: %s", c.Port)
	}

	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)", c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	if c.DedupeTTL < time.Minute {
		return fmt.Errorf("webhook dedupe TTL must be at least 1 minute, got: %v", c.DedupeTTL)
	}

	return nil
}

// DatabaseURL builds the pgx connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DatabaseUser,
		c.DatabasePassword,
		c.DatabaseHost,
		c.DatabasePort,
		c.DatabaseName,
		c.DatabaseSSLMode,
	)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
