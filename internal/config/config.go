// Package config loads and validates application configuration from
// environment variables, optionally seeded from a YAML file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration values for the API server.
// Values are populated by Load: a YAML file named by CONFIG_FILE (if set)
// provides the base values, and environment variables override it.
type Config struct {
	// Port is the TCP port the HTTP server listens on. Defaults to "8080".
	Port string `yaml:"port"`

	// DatabaseURL is the Postgres connection string. Required.
	DatabaseURL string `yaml:"database_url"`

	// LogLevel controls the minimum log level. Defaults to "info".
	// Valid values: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// CORSOrigins is the list of allowed cross-origin request origins.
	// Defaults to ["http://localhost:5173"] (Vite dev server).
	// Set CORS_ORIGINS to a comma-separated list to override.
	CORSOrigins []string `yaml:"cors_origins"`

	// MaxBodyBytes caps the size of incoming request bodies.
	// Defaults to 1 MiB, which is generous for itinerary payloads.
	MaxBodyBytes int64 `yaml:"max_body_bytes"`

	// MigrateOnStart runs pending database migrations during startup when
	// true. Defaults to false; production deployments migrate explicitly.
	MigrateOnStart bool `yaml:"migrate_on_start"`
}

// Load reads configuration and returns a Config.
// Precedence, lowest to highest: built-in defaults, the YAML file named by
// CONFIG_FILE, environment variables.
// Returns an error listing any required values that end up unset.
func Load() (Config, error) {
	cfg := Config{
		Port:         "8080",
		LogLevel:     "info",
		CORSOrigins:  []string{"http://localhost:5173"},
		MaxBodyBytes: 1 << 20,
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		cfg.CORSOrigins = splitCSV(v)
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.DatabaseURL = v
	}
	if v := os.Getenv("MAX_BODY_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("MAX_BODY_BYTES must be a positive integer, got %q", v)
		}
		cfg.MaxBodyBytes = n
	}
	if v := os.Getenv("MIGRATE_ON_START"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("MIGRATE_ON_START must be a boolean, got %q", v)
		}
		cfg.MigrateOnStart = b
	}

	var missing []string
	if cfg.DatabaseURL == "" {
		missing = append(missing, "DATABASE_URL")
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("required environment variables not set: %s", strings.Join(missing, ", "))
	}

	return cfg, nil
}

// loadFile overlays cfg with the values set in the YAML file at path.
func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config file %s: %w", path, err)
	}
	return nil
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set or is empty.
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// splitCSV splits a comma-separated string into a trimmed slice, ignoring empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
