// Package config reads process configuration from the environment.
// Settings tune diagnostics only; they never change what a run
// computes.
package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Environment variables understood by the engine.
const (
	EnvLogLevel  = "LOG_LEVEL"  // zerolog level name, default info
	EnvLogFormat = "LOG_FORMAT" // "console" or "json"
)

// LoadEnv loads variables from a .env file if present.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found: %v", err)
	}
}

// GetEnv returns an environment variable or a default value.
func GetEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultVal
}

// IsProduction checks if the app runs in production mode.
func IsProduction() bool {
	return GetEnv("ENV", "development") == "production"
}
