// Package config loads the application configuration from defaults, an
// optional config.yaml, .env files and the environment.
package config

import (
	"os"
	"path/filepath"

	"fjacquet/fintrack/internal/logging"

	"github.com/joho/godotenv"
)

// LoadEnv loads the first .env file found in the current or parent
// directory and returns its path, or "" when there is none. Variables
// already set in the environment win.
func LoadEnv() string {
	for _, envFile := range []string{".env", filepath.Join("..", ".env")} {
		if _, err := os.Stat(envFile); err != nil {
			continue
		}
		if err := godotenv.Load(envFile); err != nil {
			return ""
		}
		return envFile
	}
	return ""
}

// GetEnv retrieves an environment variable with a fallback value if not set
func GetEnv(key, fallback string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	return value
}

// NewLogger returns the structured logger described by the log section.
func NewLogger(cfg *Config) logging.Logger {
	return logging.NewLogrusAdapterFromLogger(ConfigureLoggingFromConfig(cfg))
}
