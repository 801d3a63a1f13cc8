package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the console configuration loaded from environment variables.
type Config struct {
	Port             string
	GatewayBaseURL   string
	GatewayTimeout   time.Duration
	DraftsStatus     string
	DraftsMinScore   float64
	LogLevel         string
	ElasticsearchURL string
}

// Load reads configuration from the environment, applying defaults for
// anything unset. It never fails; malformed numeric values fall back to
// their defaults.
func Load() Config {
	timeout, err := time.ParseDuration(getEnvOrDefault("GATEWAY_TIMEOUT", "30s"))
	if err != nil {
		timeout = 30 * time.Second
	}

	minScore, err := strconv.ParseFloat(getEnvOrDefault("DRAFTS_MIN_SCORE", "0"), 64)
	if err != nil {
		minScore = 0
	}

	return Config{
		Port:             getEnvOrDefault("CONSOLE_PORT", "3000"),
		GatewayBaseURL:   getEnvOrDefault("GATEWAY_BASE_URL", "http://localhost:8000"),
		GatewayTimeout:   timeout,
		DraftsStatus:     getEnvOrDefault("DRAFTS_STATUS", "in_review"),
		DraftsMinScore:   minScore,
		LogLevel:         getEnvOrDefault("CONSOLE_LOG_LEVEL", "info"),
		ElasticsearchURL: os.Getenv("ELASTICSEARCH_URL"),
	}
}

// Helper function to get environment variable with default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
