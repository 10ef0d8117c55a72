// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Storage backend names accepted in GT_STORAGE.
const (
	BackendSQLite = "sqlite"
	BackendFile   = "file"
	BackendMemory = "memory"
)

// Config holds all configuration values for the CLI.
// Values are populated by Load from environment variables.
type Config struct {
	// DataDir is where durable state lives. Defaults to ~/.globetrotter,
	// falling back to .globetrotter in the working directory when the home
	// directory cannot be determined.
	DataDir string

	// Storage selects the persistent store backend. Defaults to "sqlite".
	// Valid values: sqlite, file, memory. The memory backend makes every
	// session ephemeral.
	Storage string

	// LogLevel controls the minimum log level. Defaults to "warn" so
	// normal CLI output stays clean. Valid values: debug, info, warn, error.
	LogLevel string
}

// Load reads configuration from environment variables and returns a Config.
// Returns an error when GT_STORAGE names an unknown backend.
func Load() (Config, error) {
	cfg := Config{
		DataDir:  getEnv("GT_DATA_DIR", defaultDataDir()),
		Storage:  getEnv("GT_STORAGE", BackendSQLite),
		LogLevel: getEnv("LOG_LEVEL", "warn"),
	}

	switch cfg.Storage {
	case BackendSQLite, BackendFile, BackendMemory:
	default:
		return Config{}, fmt.Errorf("GT_STORAGE: unknown backend %q (valid: sqlite, file, memory)", cfg.Storage)
	}

	return cfg, nil
}

// DatabasePath is the SQLite file used by the sqlite backend.
func (c Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "globetrotter.db")
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".globetrotter"
	}
	return filepath.Join(home, ".globetrotter")
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
