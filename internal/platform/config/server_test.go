package config

import (
	"testing"
	"time"
)

func TestLoadServerConfigFromEnv_Defaults(t *testing.T) {
	cfg, err := LoadServerConfigFromEnv()
	if err != nil {
		t.Fatalf("LoadServerConfigFromEnv() err=%v", err)
	}
	if cfg.Port != "8080" || cfg.RosterBackend != RosterBackendMemory || cfg.LoadTimeout != 10*time.Second {
		t.Fatalf("cfg=%+v", cfg)
	}
}

func TestLoadServerConfigFromEnv_PostgresRequiresDSN(t *testing.T) {
	t.Setenv("ROSTER_BACKEND", RosterBackendPostgres)
	if _, err := LoadServerConfigFromEnv(); err == nil {
		t.Fatalf("expected error without DATABASE_URL")
	}

	t.Setenv("DATABASE_URL", "postgres://localhost/roster")
	cfg, err := LoadServerConfigFromEnv()
	if err != nil {
		t.Fatalf("LoadServerConfigFromEnv() err=%v", err)
	}
	if cfg.DatabaseURL != "postgres://localhost/roster" {
		t.Fatalf("cfg=%+v", cfg)
	}
}

func TestLoadServerConfigFromEnv_Rejections(t *testing.T) {
	t.Setenv("ROSTER_BACKEND", "etcd")
	if _, err := LoadServerConfigFromEnv(); err == nil {
		t.Fatalf("expected error for unknown backend")
	}

	t.Setenv("ROSTER_BACKEND", RosterBackendMemory)
	t.Setenv("LOAD_TIMEOUT", "soon")
	if _, err := LoadServerConfigFromEnv(); err == nil {
		t.Fatalf("expected error for malformed LOAD_TIMEOUT")
	}
}
