package config

import (
	"os"
	"testing"
)

func TestLoad_Success(t *testing.T) {
	setMinimalEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.App.Env != "production" {
		t.Fatalf("expected App.Env to be production, got %q", cfg.App.Env)
	}

	if cfg.Storage.Driver != "sqlite" {
		t.Fatalf("expected default sqlite driver, got %q", cfg.Storage.Driver)
	}

	if cfg.App.Port != "8080" {
		t.Fatalf("expected default port, got %q", cfg.App.Port)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	setMinimalEnv(t)
	if err := os.Unsetenv(EnvAppEnv); err != nil {
		t.Fatalf("failed to unset %s: %v", EnvAppEnv, err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("expected error when app env missing")
	}
}

func TestLoad_Overrides(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv(EnvAppPort, "9090")
	t.Setenv(EnvStorageDSN, "snapshots.db")
	t.Setenv(EnvRedisURL, "redis://localhost:6379/1")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}

	if cfg.App.Port != "9090" {
		t.Fatalf("expected overridden port, got %q", cfg.App.Port)
	}
	if cfg.Storage.DSN != "snapshots.db" {
		t.Fatalf("expected overridden dsn, got %q", cfg.Storage.DSN)
	}
	if cfg.Redis.URL != "redis://localhost:6379/1" {
		t.Fatalf("expected overridden redis url, got %q", cfg.Redis.URL)
	}
}

func TestIsDev(t *testing.T) {
	if (AppConfig{Env: AppEnvProd}).IsDev() {
		t.Fatal("production env reported as dev")
	}
	if !(AppConfig{Env: "Development"}).IsDev() {
		t.Fatal("expected case-insensitive dev match")
	}
}

func TestLoad_RejectsUnknownStorageDriver(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv("EMART_STORAGE_DRIVER", "postgres")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for unsupported storage driver")
	}
}

func TestStorageDriverNormalized(t *testing.T) {
	setMinimalEnv(t)
	t.Setenv("EMART_STORAGE_DRIVER", " Redis ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if cfg.Storage.Driver != "redis" {
		t.Fatalf("expected normalized driver, got %q", cfg.Storage.Driver)
	}
}

func setMinimalEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvAppEnv, AppEnvProd)
}
