// Package config provides configuration management functionality.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"

	"github.com/mauv0809/ip-portfolio/internal/valuation"
	"github.com/mauv0809/ip-portfolio/pkg/logger"
)

// Config holds application configuration
type Config struct {
	Port         int
	LogLevel     string
	LogPretty    bool
	DatabaseURL  string // optional; settings overrides are disabled without it
	DefaultsFile string // optional YAML file overriding the dashboard defaults
	Defaults     valuation.Defaults
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Port:         getEnvAsInt("PORT", 8080),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogPretty:    getEnvAsBool("LOG_PRETTY", true),
		DatabaseURL:  getEnv("DATABASE_URL", ""),
		DefaultsFile: getEnv("DEFAULTS_FILE", ""),
		Defaults:     valuation.StandardDefaults(),
	}

	if cfg.DefaultsFile != "" {
		defaults, err := LoadDefaults(cfg.DefaultsFile)
		if err != nil {
			return nil, err
		}
		cfg.Defaults = defaults
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadDefaults reads dashboard defaults from a YAML file. Keys missing from
// the file keep their built-in values; the result is normalized into range.
func LoadDefaults(path string) (valuation.Defaults, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return valuation.Defaults{}, fmt.Errorf("reading defaults file: %w", err)
	}

	defaults := valuation.StandardDefaults()
	if err := yaml.Unmarshal(data, &defaults); err != nil {
		return valuation.Defaults{}, fmt.Errorf("parsing defaults file %s: %w", path, err)
	}

	return defaults.Normalize(), nil
}

// Validate checks the configuration values
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if _, ok := logger.ParseLevel(c.LogLevel); !ok {
		return fmt.Errorf("invalid log level %q (must be debug, info, warn or error)", c.LogLevel)
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
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
