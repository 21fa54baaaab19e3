package config

import (
	"os"
	"testing"
	"time"
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

	if cfg.Redis.URL != "redis://localhost:6379/0" {
		t.Fatalf("unexpected Redis URL: %q", cfg.Redis.URL)
	}

	if cfg.Upstream.BaseURL != "https://api.hollowcoast.example" {
		t.Fatalf("unexpected upstream base URL: %q", cfg.Upstream.BaseURL)
	}

	if got := cfg.Upstream.Timeout; got != 10*time.Second {
		t.Fatalf("expected default upstream timeout 10s, got %v", got)
	}

	if cfg.Checkout.SuccessPath != "/checkout/success" {
		t.Fatalf("unexpected checkout success path: %q", cfg.Checkout.SuccessPath)
	}

	if cfg.Toast.DefaultDuration != 5*time.Second {
		t.Fatalf("expected default toast duration 5s, got %v", cfg.Toast.DefaultDuration)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	setMinimalEnv(t)
	if err := os.Unsetenv(EnvUpstreamBaseURL); err != nil {
		t.Fatalf("failed to unset %s: %v", EnvUpstreamBaseURL, err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("expected missing required env to return an error")
	}
}

func setMinimalEnv(t *testing.T) {
	t.Helper()

	t.Setenv(EnvAppEnv, "production")
	t.Setenv(EnvPort, "8081")
	t.Setenv(EnvSiteBaseURL, "https://hollowcoast.example")
	t.Setenv(EnvRedisURL, "redis://localhost:6379/0")
	t.Setenv(EnvUpstreamBaseURL, "https://api.hollowcoast.example")
	t.Setenv(EnvCatalogBaseURL, "https://catalog.example/v1")
}

func TestAppConfigEnvHelpers(t *testing.T) {
	devConfig := AppConfig{Env: "DEV"}
	if !devConfig.IsDev() {
		t.Fatalf("expected IsDev true for %q", devConfig.Env)
	}
	if devConfig.IsProd() {
		t.Fatalf("expected IsProd false for %q", devConfig.Env)
	}

	prodConfig := AppConfig{Env: "Production"}
	if !prodConfig.IsProd() {
		t.Fatalf("expected IsProd true for %q", prodConfig.Env)
	}
	if prodConfig.IsDev() {
		t.Fatalf("expected IsDev false for %q", prodConfig.Env)
	}
}
