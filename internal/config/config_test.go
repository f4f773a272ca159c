package config

import (
	"testing"
	"time"

	"github.com/fieldside/clubsync/internal/platform/logging"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.ServiceName != "clubsync-api" {
		t.Fatalf("unexpected ServiceName: %q", cfg.ServiceName)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected HTTPAddr: %q", cfg.HTTPAddr)
	}
	if cfg.SyncInterval != 0 {
		t.Fatalf("expected scheduler disabled by default, got %s", cfg.SyncInterval)
	}
	if cfg.SyncFetchWorkers != 4 {
		t.Fatalf("unexpected SyncFetchWorkers: %d", cfg.SyncFetchWorkers)
	}
	if cfg.LogLevel != logging.LevelInfo {
		t.Fatalf("unexpected LogLevel: %v", cfg.LogLevel)
	}
	if len(cfg.CORSAllowedOrigins) != 1 || cfg.CORSAllowedOrigins[0] != "*" {
		t.Fatalf("unexpected CORSAllowedOrigins: %v", cfg.CORSAllowedOrigins)
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", `uptrace-dsn="https://token@api.uptrace.dev/1"`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev/1" {
		t.Fatalf("unexpected UptraceDSN: %q", cfg.UptraceDSN)
	}
}

func TestLoad_WebhookRequiresURLWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("SYNC_WEBHOOK_ENABLED", "true")
	t.Setenv("SYNC_WEBHOOK_URL", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when SYNC_WEBHOOK_ENABLED=true without SYNC_WEBHOOK_URL")
	}
}

func TestLoad_SyncSettingsParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvProd)
	t.Setenv("SYNC_INTERVAL", "30m")
	t.Setenv("SYNC_FETCH_WORKERS", "8")
	t.Setenv("SYNC_WEBHOOK_ENABLED", "true")
	t.Setenv("SYNC_WEBHOOK_URL", "https://hooks.example.com/club")
	t.Setenv("SYNC_WEBHOOK_SECRET", "s3cret")
	t.Setenv("SYNC_WEBHOOK_TIMEOUT", "5s")
	t.Setenv("SYNC_CIRCUIT_FAILURE_COUNT", "3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.SyncInterval != 30*time.Minute {
		t.Fatalf("unexpected SyncInterval: %s", cfg.SyncInterval)
	}
	if cfg.SyncFetchWorkers != 8 {
		t.Fatalf("unexpected SyncFetchWorkers: %d", cfg.SyncFetchWorkers)
	}
	if cfg.SyncWebhookURL != "https://hooks.example.com/club" {
		t.Fatalf("unexpected SyncWebhookURL: %q", cfg.SyncWebhookURL)
	}
	if cfg.SyncWebhookSecret != "s3cret" {
		t.Fatalf("unexpected SyncWebhookSecret")
	}
	if cfg.SyncWebhookTimeout != 5*time.Second {
		t.Fatalf("unexpected SyncWebhookTimeout: %s", cfg.SyncWebhookTimeout)
	}
	if cfg.SyncCircuitFailureCount != 3 {
		t.Fatalf("unexpected SyncCircuitFailureCount: %d", cfg.SyncCircuitFailureCount)
	}
}

func TestLoad_FetchWorkersMustBePositive(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("SYNC_FETCH_WORKERS", "0")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for SYNC_FETCH_WORKERS=0")
	}
}

func TestLoad_LogLevelParsing(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("APP_LOG_LEVEL", "warn")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.LogLevel != logging.LevelWarn {
		t.Fatalf("unexpected LogLevel: %v", cfg.LogLevel)
	}
}
