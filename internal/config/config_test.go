package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 8084 {
		t.Errorf("Server.Port = %d, want 8084", cfg.Server.Port)
	}
	if cfg.Dataset.Size != 60 {
		t.Errorf("Dataset.Size = %d, want 60", cfg.Dataset.Size)
	}
	if cfg.Dataset.CSVFile != "" {
		t.Errorf("Dataset.CSVFile = %q, want empty", cfg.Dataset.CSVFile)
	}
	if cfg.Security.RateLimitIdle != 5*time.Minute {
		t.Errorf("Security.RateLimitIdle = %v, want 5m", cfg.Security.RateLimitIdle)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Path != "/metrics" {
		t.Errorf("Metrics = %+v", cfg.Metrics)
	}
	if cfg.Address() != "localhost:8084" {
		t.Errorf("Address() = %q", cfg.Address())
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SERVER_READ_TIMEOUT", "3s")
	t.Setenv("DATASET_SIZE", "120")
	t.Setenv("DATASET_SEED", "42")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("SECURITY_ALLOWED_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("SECURITY_RATE_LIMIT_IDLE", "90s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 3*time.Second {
		t.Errorf("Server.ReadTimeout = %v", cfg.Server.ReadTimeout)
	}
	if cfg.Dataset.Size != 120 || cfg.Dataset.Seed != 42 {
		t.Errorf("Dataset = %+v", cfg.Dataset)
	}
	if cfg.Logger.Format != "text" {
		t.Errorf("Logger.Format = %q", cfg.Logger.Format)
	}
	if len(cfg.Security.AllowedOrigins) != 2 || cfg.Security.AllowedOrigins[1] != "http://b.test" {
		t.Errorf("AllowedOrigins = %v", cfg.Security.AllowedOrigins)
	}
	if cfg.Security.RateLimitIdle != 90*time.Second {
		t.Errorf("Security.RateLimitIdle = %v, want 90s", cfg.Security.RateLimitIdle)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr string
	}{
		{"port out of range", "SERVER_PORT", "70000", "server port"},
		{"bad log level", "LOG_LEVEL", "verbose", "invalid log level"},
		{"bad log format", "LOG_FORMAT", "xml", "invalid log format"},
		{"negative dataset", "DATASET_SIZE", "-1", "dataset size"},
		{"huge dataset", "DATASET_SIZE", "1000000", "dataset size"},
		{"relative metrics path", "METRICS_PATH", "metrics", "metrics path"},
		{"zero rate limit idle", "SECURITY_RATE_LIMIT_IDLE", "0s", "idle timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			if err == nil {
				t.Fatal("Load() should fail")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_CSVSkipsSizeCheck(t *testing.T) {
	t.Setenv("DATASET_CSV_FILE", "records.csv")
	t.Setenv("DATASET_SIZE", "-5")

	if _, err := Load(); err != nil {
		t.Errorf("Load() error = %v, size should be ignored when a CSV is configured", err)
	}
}
