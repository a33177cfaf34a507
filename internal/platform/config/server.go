package config

import (
	"fmt"
	"os"
	"time"
)

// RosterBackend selects where the member roster is loaded from at startup.
const (
	RosterBackendMemory   = "memory"
	RosterBackendPostgres = "postgres"
)

// ServerConfig holds the deployment-provided settings for the API process.
type ServerConfig struct {
	Port          string
	RosterBackend string
	DatabaseURL   string

	// LoadTimeout bounds the one-shot roster load at startup.
	LoadTimeout time.Duration
}

func LoadServerConfigFromEnv() (ServerConfig, error) {
	cfg := ServerConfig{
		Port:          getenv("PORT", "8080"),
		RosterBackend: getenv("ROSTER_BACKEND", RosterBackendMemory),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		LoadTimeout:   10 * time.Second,
	}

	switch cfg.RosterBackend {
	case RosterBackendMemory:
	case RosterBackendPostgres:
		if cfg.DatabaseURL == "" {
			return ServerConfig{}, fmt.Errorf("DATABASE_URL is required when ROSTER_BACKEND=%s", RosterBackendPostgres)
		}
	default:
		return ServerConfig{}, fmt.Errorf("ROSTER_BACKEND must be %q or %q, got %q", RosterBackendMemory, RosterBackendPostgres, cfg.RosterBackend)
	}

	if v := os.Getenv("LOAD_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return ServerConfig{}, fmt.Errorf("LOAD_TIMEOUT must be a duration (e.g. 10s): %w", err)
		}
		cfg.LoadTimeout = d
	}

	return cfg, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
