package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all application configuration.
type Config struct {
	Database DatabaseConfig
	HTTP     HTTPConfig
}

// DatabaseConfig contains database-related settings.
type DatabaseConfig struct {
	Driver       string // "sqlite3" or "mysql"
	DSN          string // driver-specific data source name
	MaxOpenConns int    // upper bound on pooled connections
	MaxIdleConns int
}

// HTTPConfig contains HTTP server settings.
type HTTPConfig struct {
	Address string // listen address (e.g., ":3000")
}

// Load loads configuration from environment variables with sensible defaults.
// The default database is a local SQLite file so the server runs without any
// external services; point DB_DRIVER/DB_DSN at MySQL for production.
func Load() (*Config, error) {
	maxOpen, err := getEnvInt("DB_MAX_OPEN_CONNS", 10)
	if err != nil {
		return nil, err
	}
	maxIdle, err := getEnvInt("DB_MAX_IDLE_CONNS", 5)
	if err != nil {
		return nil, err
	}
	cfg := &Config{
		Database: DatabaseConfig{
			Driver:       getEnv("DB_DRIVER", "sqlite3"),
			DSN:          getEnv("DB_DSN", "solide.db"),
			MaxOpenConns: maxOpen,
			MaxIdleConns: maxIdle,
		},
		HTTP: HTTPConfig{
			Address: getEnv("HTTP_ADDRESS", ":3000"),
		},
	}
	if cfg.Database.Driver != "sqlite3" && cfg.Database.Driver != "mysql" {
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Database.Driver)
	}
	return cfg, nil
}

// getEnv retrieves an environment variable with a default fallback.
func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

// getEnvInt retrieves an environment variable as an integer with a default fallback.
func getEnvInt(key string, defaultVal int) (int, error) {
	if value, exists := os.LookupEnv(key); exists {
		intVal, err := strconv.Atoi(value)
		if err != nil {
			return 0, fmt.Errorf("invalid integer for %s: %w", key, err)
		}
		return intVal, nil
	}
	return defaultVal, nil
}

// String returns a string representation of the config (DSN is masked since
// it may embed credentials).
func (c *Config) String() string {
	return fmt.Sprintf("Config{DB: %s *** (masked) ***, HTTP: %s}", c.Database.Driver, c.HTTP.Address)
}
