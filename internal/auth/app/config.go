package app

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	SessionSecret string // Required: HS256 signing secret for session tokens
	Issuer        string // Required: issuer claim for tokens and otpauth URLs

	DatabaseURL  string        // Optional: database URL; a mongodb:// scheme selects the Mongo driver
	DatabaseFile string        // Optional: path to SQLite database file (default: ./auth.db)
	SessionTTL   time.Duration // Optional: session token lifetime (default: 7 days)
	SetupTTL     time.Duration // Optional: 2FA setup token lifetime (default: 10m)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		SessionSecret: os.Getenv("AUTH_SESSION_SECRET"),
		Issuer:        os.Getenv("AUTH_ISSUER"),

		DatabaseURL:  os.Getenv("AUTH_DATABASE_URL"),
		DatabaseFile: getEnvOrDefault("AUTH_DATABASE_FILE", "auth.db"),
		SessionTTL:   getEnvDurationOrDefault("AUTH_SESSION_TTL", 0),
		SetupTTL:     getEnvDurationOrDefault("AUTH_SETUP_TTL", 0),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes (for backwards compatibility)
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
