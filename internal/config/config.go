// Package config provides application configuration.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/chrislloydHive/Career-Platform-sub000/internal/evolution"
)

// Config holds all application configuration.
type Config struct {
	Port        string
	DBPath      string
	CatalogPath string // optional external YAML catalog; empty uses the built-in bank
	Evolution   evolution.Config
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	evo := evolution.DefaultConfig()
	evo.ValidatedMin = getEnvFloat("EVOLUTION_VALIDATED_MIN", evo.ValidatedMin)
	evo.PromoteMin = getEnvFloat("EVOLUTION_PROMOTE_MIN", evo.PromoteMin)
	evo.ResponseTarget = getEnvInt("EVOLUTION_RESPONSE_TARGET", evo.ResponseTarget)

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		DBPath:      getEnv("DB_PATH", "./data/sessions.db"),
		CatalogPath: getEnv("CATALOG_PATH", ""),
		Evolution:   evo,
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks that all required configuration fields are set.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}
	if c.DBPath == "" {
		return fmt.Errorf("DB_PATH cannot be empty")
	}
	if c.Evolution.ValidatedMin <= 0 || c.Evolution.ValidatedMin > 1 {
		return fmt.Errorf("EVOLUTION_VALIDATED_MIN must be in (0, 1]")
	}
	if c.Evolution.PromoteMin <= 0 || c.Evolution.PromoteMin > 1 {
		return fmt.Errorf("EVOLUTION_PROMOTE_MIN must be in (0, 1]")
	}
	if c.Evolution.ResponseTarget <= 0 {
		return fmt.Errorf("EVOLUTION_RESPONSE_TARGET must be > 0")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}
