package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// DatabaseURL is the Postgres connection string. An empty value is a
	// valid configuration: the server runs against the in-memory store only.
	DatabaseURL string

	Port     string
	GinMode  string
	LogLevel string

	// Sync agent settings.
	ServerURL    string
	SyncDir      string
	SyncInterval time.Duration
}

func Load() *Config {
	// A missing .env file is fine; env vars take over.
	_ = godotenv.Load()

	return &Config{
		DatabaseURL:  getEnv("DATABASE_URL", ""),
		Port:         getEnv("PORT", "5000"),
		GinMode:      getEnv("GIN_MODE", "debug"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		ServerURL:    getEnv("SERVER_URL", "http://localhost:5000"),
		SyncDir:      getEnv("SYNC_DIR", ".callsheet-sync"),
		SyncInterval: getDuration("SYNC_INTERVAL", 30*time.Second),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}
