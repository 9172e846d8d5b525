package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/dgallion1/tagcloud/internal/tagcloud"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "LOG_LEVEL", "TAGCLOUD_API_KEY", "WORKER_COUNT", "MAX_QUEUE_SIZE",
		"MAX_UPLOAD_BYTES", "DEFAULT_TERMS", "SEPARATORS", "STYLESHEET_URL",
		"JOB_TTL", "PDF_FALLBACK_PDFTOTEXT",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	if cfg.Port != "8090" {
		t.Errorf("expected port 8090, got %q", cfg.Port)
	}
	if cfg.LogLevel != slog.LevelInfo {
		t.Errorf("expected info level, got %v", cfg.LogLevel)
	}
	if cfg.WorkerCount != 4 || cfg.MaxQueueSize != 100 {
		t.Errorf("unexpected pool sizing %d/%d", cfg.WorkerCount, cfg.MaxQueueSize)
	}
	if cfg.DefaultTerms != 100 {
		t.Errorf("expected 100 default terms, got %d", cfg.DefaultTerms)
	}
	if cfg.Separators != tagcloud.DefaultSeparators {
		t.Errorf("expected default separators, got %q", cfg.Separators)
	}
	if cfg.JobTTL != time.Hour {
		t.Errorf("expected 1h TTL, got %v", cfg.JobTTL)
	}
	if !cfg.PDFFallbackPdftotext {
		t.Error("expected pdftotext fallback enabled by default")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("expected defaults to validate, got %v", err)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("WORKER_COUNT", "-3")
	t.Setenv("DEFAULT_TERMS", "25")
	t.Setenv("SEPARATORS", " ,")
	t.Setenv("JOB_TTL", "90s")
	t.Setenv("PDF_FALLBACK_PDFTOTEXT", "false")

	cfg := Load()
	if cfg.Port != "9000" {
		t.Errorf("expected port 9000, got %q", cfg.Port)
	}
	if cfg.LogLevel != slog.LevelDebug {
		t.Errorf("expected debug level, got %v", cfg.LogLevel)
	}
	if cfg.WorkerCount != 4 {
		t.Errorf("expected invalid worker count to fall back to 4, got %d", cfg.WorkerCount)
	}
	if cfg.DefaultTerms != 25 {
		t.Errorf("expected 25 default terms, got %d", cfg.DefaultTerms)
	}
	if cfg.JobTTL != 90*time.Second {
		t.Errorf("expected 90s TTL, got %v", cfg.JobTTL)
	}
	if cfg.PDFFallbackPdftotext {
		t.Error("expected pdftotext fallback disabled")
	}
	seps := cfg.SeparatorSet()
	if seps.Len() != 2 || !seps.IsSeparator(',') || seps.IsSeparator('.') {
		t.Errorf("unexpected separator set from %q", cfg.Separators)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"negative terms", func(c *Config) { c.DefaultTerms = -1 }, true},
		{"zero terms", func(c *Config) { c.DefaultTerms = 0 }, false},
		{"no separators", func(c *Config) { c.Separators = "" }, true},
		{"no port", func(c *Config) { c.Port = "" }, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Config{Port: "8090", DefaultTerms: 10, Separators: tagcloud.DefaultSeparators}
			tc.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("expected error=%v, got %v", tc.wantErr, err)
			}
		})
	}
}
