// Package config provides configuration management functionality.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	DataDir     string // Base directory for the births database and seed files (always absolute)
	CatalogPath string // Parameter catalog CSV
	BirthsSeed  string // Births lookup seed CSV; empty disables seeding
	LogLevel    string
	Port        int
	DevMode     bool
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	dataDir, err := filepath.Abs(getEnv("PSYCOST_DATA_DIR", "./data"))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve data directory path: %w", err)
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	cfg := &Config{
		DataDir:     dataDir,
		CatalogPath: getEnv("PSYCOST_CATALOG", filepath.Join(dataDir, "parameters.csv")),
		BirthsSeed:  getEnv("PSYCOST_BIRTHS_SEED", filepath.Join(dataDir, "births.csv")),
		Port:        getEnvAsInt("GO_PORT", 8080),
		DevMode:     getEnvAsBool("DEV_MODE", false),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// BirthsDBPath is the SQLite file backing the births lookup.
func (c *Config) BirthsDBPath() string {
	return filepath.Join(c.DataDir, "births.db")
}

// Validate checks the configuration is usable
func (c *Config) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("GO_PORT must be between 1 and 65535, got %d", c.Port)
	}
	if c.CatalogPath == "" {
		return fmt.Errorf("PSYCOST_CATALOG is required")
	}
	if info, err := os.Stat(c.CatalogPath); err != nil {
		return fmt.Errorf("parameter catalog %s: %w", c.CatalogPath, err)
	} else if info.IsDir() {
		return fmt.Errorf("parameter catalog %s is a directory", c.CatalogPath)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
