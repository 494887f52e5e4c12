// Package config loads server configuration from the environment, with
// an optional .env file for local development.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	ServerPort string

	// DatabaseType selects the backend: sqlite (default), postgres or
	// mysql. SQLite uses DatabasePath; the others use DatabaseURL.
	DatabaseType string
	DatabaseURL  string
	DatabasePath string

	MigrationsPath string

	// JWTSecret signs profile tokens; empty disables authentication
	// (useful for local play).
	JWTSecret     string
	TokenDuration time.Duration

	// AudioCachePath is where generated challenge speech clips are
	// stored. Empty disables the announcer.
	AudioCachePath string

	SpeedTimeLimit int // seconds, speed mode countdown
}

// Load reads configuration from the environment with sensible defaults.
// A .env file in the working directory is merged in first when present.
func Load() *Config {
	// Missing .env is the normal production case
	_ = godotenv.Load()

	return &Config{
		ServerPort:     getEnv("PORT", "8080"),
		DatabaseType:   getEnv("DB_TYPE", "sqlite"),
		DatabaseURL:    getEnv("DB_URL", ""),
		DatabasePath:   getEnv("DB_PATH", "./scrambledstates.db"),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "./migrations"),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		TokenDuration:  getDuration("TOKEN_DURATION", 24*time.Hour),
		AudioCachePath: getEnv("AUDIO_CACHE_PATH", ""),
		SpeedTimeLimit: getInt("SPEED_TIME_LIMIT", 30),
	}
}

// Validate rejects configurations the server cannot start with
func (c *Config) Validate() error {
	switch c.DatabaseType {
	case "sqlite", "sqlite3", "":
		if c.DatabasePath == "" {
			return fmt.Errorf("DB_PATH is required for sqlite")
		}
	case "postgres", "postgresql", "mysql":
		if c.DatabaseURL == "" {
			return fmt.Errorf("DB_URL is required for %s", c.DatabaseType)
		}
	default:
		return fmt.Errorf("unsupported database type: %s", c.DatabaseType)
	}
	if c.SpeedTimeLimit <= 0 {
		return fmt.Errorf("SPEED_TIME_LIMIT must be positive")
	}
	return nil
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
