package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	// MongoDB
	MongoURI    string
	MongoDbName string

	// Redis (optional; the cache connection is skipped when RedisAddr is empty)
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Server
	ApiPort string

	// CORS
	CorsAllowOrigin string

	// Rate Limiting
	RateLimitBucketSize int
	RateLimitRefillRate int // tokens per second

	// Logging
	LogsDirectory string // empty means console-only logging
}

// Load configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file, ignoring errors if it doesn't exist
	godotenv.Load()

	cfg := &Config{}

	var err error

	// Helper function to get env var or default
	getEnv := func(key, defaultValue string) string {
		if value, exists := os.LookupEnv(key); exists {
			return value
		}
		return defaultValue
	}

	// Helper function to get required env var
	getRequiredEnv := func(key string) (string, error) {
		value, exists := os.LookupEnv(key)
		if !exists {
			return "", fmt.Errorf("missing required environment variable: %s", key)
		}
		return value, nil
	}

	cfg.MongoURI, err = getRequiredEnv("MONGO_URI")
	if err != nil {
		return nil, err
	}
	cfg.MongoDbName = getEnv("MONGO_DB_NAME", "freightline")
	cfg.RedisAddr = getEnv("REDIS_ADDR", "")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	cfg.ApiPort = getEnv("API_PORT", "8000")
	cfg.CorsAllowOrigin = getEnv("CORS_ALLOW_ORIGIN", "*")
	cfg.LogsDirectory = getEnv("LOGS_DIRECTORY", "")

	cfg.RedisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	cfg.RateLimitBucketSize, err = strconv.Atoi(getEnv("RATE_LIMIT_BUCKET_SIZE", "20"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_BUCKET_SIZE: %w", err)
	}
	cfg.RateLimitRefillRate, err = strconv.Atoi(getEnv("RATE_LIMIT_REFILL_RATE", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_REFILL_RATE: %w", err)
	}

	return cfg, nil
}
