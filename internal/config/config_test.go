package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("THUMBCARD_YOUTUBE_API_KEY", "")
	t.Setenv("YOUTUBE_API_KEY", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.AppPort != 8080 || cfg.LogLevel != "info" || cfg.MigrationDir != "migrations" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.LookupRateLimit != 30 || cfg.LookupRateWindow != time.Minute || cfg.LookupRateBurst != 10 {
		t.Fatalf("unexpected rate limit defaults: %+v", cfg)
	}
	if cfg.CardMaxBytes != 10<<20 {
		t.Fatalf("unexpected card limit %d", cfg.CardMaxBytes)
	}
	if cfg.ObjectStore.Enabled() {
		t.Fatal("expected object store to be disabled by default")
	}
	if cfg.YouTubeAPIKey != "" {
		t.Fatalf("expected empty api key got %q", cfg.YouTubeAPIKey)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("THUMBCARD_PORT", "9090")
	t.Setenv("THUMBCARD_LOG_LEVEL", "debug")
	t.Setenv("THUMBCARD_YOUTUBE_API_KEY", "key-1")
	t.Setenv("THUMBCARD_LOOKUP_RATE_WINDOW", "30s")
	t.Setenv("THUMBCARD_CARD_MAX_BYTES", "2048")
	t.Setenv("THUMBCARD_S3_BUCKET", "cards")
	t.Setenv("THUMBCARD_HISTORY_WORKERS", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.AppPort != 9090 || cfg.LogLevel != "debug" || cfg.YouTubeAPIKey != "key-1" {
		t.Fatalf("unexpected overrides: %+v", cfg)
	}
	if cfg.LookupRateWindow != 30*time.Second || cfg.CardMaxBytes != 2048 {
		t.Fatalf("unexpected parsed overrides: %+v", cfg)
	}
	if !cfg.ObjectStore.Enabled() || cfg.ObjectStore.Region != "us-east-1" {
		t.Fatalf("unexpected object store config: %+v", cfg.ObjectStore)
	}
	if cfg.HistoryWorkers != 2 {
		t.Fatalf("expected invalid value to fall back, got %d", cfg.HistoryWorkers)
	}
}

func TestLoadAPIKeyFallback(t *testing.T) {
	t.Setenv("THUMBCARD_YOUTUBE_API_KEY", "")
	t.Setenv("YOUTUBE_API_KEY", "legacy-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.YouTubeAPIKey != "legacy-key" {
		t.Fatalf("expected fallback key, got %q", cfg.YouTubeAPIKey)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("THUMBCARD_LOG_LEVEL", "verbose")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for unknown log level")
	}

	t.Setenv("THUMBCARD_LOG_LEVEL", "info")
	t.Setenv("THUMBCARD_PORT", "70000")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for out of range port")
	}
}
