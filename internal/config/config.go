package config

import (
	"os"
	"strconv"
)

// DatabaseConfig holds MongoDB connection settings.
// URL and Name are intentionally optional: the API keeps serving in a degraded
// mode when the store is not configured, and /test reports which of the two is
// missing.
type DatabaseConfig struct {
	URL               string
	Name              string
	ConnectTimeoutSec int
	PingTimeoutSec    int
}

// Configured reports whether both the connection string and the database name
// are present. It says nothing about reachability.
func (c DatabaseConfig) Configured() bool {
	return c.URL != "" && c.Name != ""
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	AppHost  string
	Port     string
	Database DatabaseConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	return &AppConfig{
		AppHost: getEnv("APP_HOST", "localhost:8000"),
		Port:    getEnv("PORT", "8000"),
		Database: DatabaseConfig{
			URL:               getEnv("DATABASE_URL", ""),
			Name:              getEnv("DATABASE_NAME", ""),
			ConnectTimeoutSec: getEnvInt("DB_CONNECT_TIMEOUT_SEC", 5),
			PingTimeoutSec:    getEnvInt("DB_PING_TIMEOUT_SEC", 2),
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
