package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv(configPathEnv, "")
	t.Setenv(apiURLEnv, "")
	t.Setenv(tokenFileEnv, "")
	t.Setenv(logLevelEnv, "")
	t.Setenv(logFormatEnv, "")
	t.Setenv(timeoutEnv, "")

	cfg := Load()

	if cfg.API.BaseURL != defaultBaseURL {
		t.Fatalf("unexpected base url: %s", cfg.API.BaseURL)
	}
	if cfg.API.HTTPTimeout() != 20*time.Second {
		t.Fatalf("unexpected timeout: %v", cfg.API.HTTPTimeout())
	}
	if cfg.Session.TokenFile == "" {
		t.Fatal("expected a default token file path")
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "text" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv(configPathEnv, "")
	t.Setenv(apiURLEnv, "http://localhost:8080/api")
	t.Setenv(tokenFileEnv, "/tmp/conduit-token")
	t.Setenv(logLevelEnv, "debug")
	t.Setenv(logFormatEnv, "json")
	t.Setenv(timeoutEnv, "3s")

	cfg := Load()

	if cfg.API.BaseURL != "http://localhost:8080/api" {
		t.Fatalf("unexpected base url: %s", cfg.API.BaseURL)
	}
	if cfg.API.HTTPTimeout() != 3*time.Second {
		t.Fatalf("unexpected timeout: %v", cfg.API.HTTPTimeout())
	}
	if cfg.Session.TokenFile != "/tmp/conduit-token" {
		t.Fatalf("unexpected token file: %s", cfg.Session.TokenFile)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Fatalf("unexpected logging config: %+v", cfg.Logging)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := []byte("api:\n  baseUrl: https://conduit.example.org/api\n  timeout: 7s\nlogging:\n  level: warn\n")
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	t.Setenv(configPathEnv, path)
	t.Setenv(apiURLEnv, "")
	t.Setenv(tokenFileEnv, "")
	t.Setenv(logLevelEnv, "")
	t.Setenv(logFormatEnv, "")
	t.Setenv(timeoutEnv, "")

	cfg := Load()

	if cfg.API.BaseURL != "https://conduit.example.org/api" {
		t.Fatalf("unexpected base url: %s", cfg.API.BaseURL)
	}
	if cfg.API.HTTPTimeout() != 7*time.Second {
		t.Fatalf("unexpected timeout: %v", cfg.API.HTTPTimeout())
	}
	if cfg.Logging.Level != "warn" {
		t.Fatalf("unexpected level: %s", cfg.Logging.Level)
	}
	// File did not set a format; the default survives the merge.
	if cfg.Logging.Format != "text" {
		t.Fatalf("unexpected format: %s", cfg.Logging.Format)
	}
}

func TestInvalidTimeoutFallsBack(t *testing.T) {
	t.Parallel()

	cfg := APIConfig{Timeout: "not-a-duration"}
	if cfg.HTTPTimeout() != 20*time.Second {
		t.Fatalf("unexpected timeout: %v", cfg.HTTPTimeout())
	}
}
