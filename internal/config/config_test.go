package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_MODE", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("TIMELINE_OFFSET_DAYS", "")
	t.Setenv("DEFAULT_COMMISSION_RATE", "")
	t.Setenv("GEMINI_TIMEOUT_SECONDS", "")
	t.Setenv("QR_TIMEOUT_SECONDS", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !cfg.IsDev() {
		t.Fatalf("expected dev mode by default, got %q", cfg.AppMode)
	}
	if cfg.GeminiEnabled() {
		t.Fatal("expected Gemini disabled without an API key")
	}
	if got := cfg.Timeline.OffsetDays; len(got) != 4 || got[0] != 0 || got[1] != 2 || got[2] != 7 || got[3] != 10 {
		t.Fatalf("unexpected default offsets: %v", got)
	}
	if cfg.Portal.DefaultCommissionRate.String() != "0.015" {
		t.Fatalf("unexpected default commission rate: %s", cfg.Portal.DefaultCommissionRate)
	}
	if cfg.Gemini.Timeout != 20*time.Second {
		t.Fatalf("unexpected Gemini timeout: %s", cfg.Gemini.Timeout)
	}
	if cfg.Portal.QRTimeout != 10*time.Second {
		t.Fatalf("unexpected QR timeout: %s", cfg.Portal.QRTimeout)
	}
}

func TestLoad_SeparateTimeouts(t *testing.T) {
	t.Setenv("APP_MODE", "dev")
	t.Setenv("TIMELINE_OFFSET_DAYS", "")
	t.Setenv("DEFAULT_COMMISSION_RATE", "")
	t.Setenv("GEMINI_TIMEOUT_SECONDS", "45")
	t.Setenv("QR_TIMEOUT_SECONDS", "3")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Gemini.Timeout != 45*time.Second || cfg.Portal.QRTimeout != 3*time.Second {
		t.Fatalf("unexpected timeouts: gemini=%s qr=%s", cfg.Gemini.Timeout, cfg.Portal.QRTimeout)
	}
}

func TestLoad_CustomTimelineOffsets(t *testing.T) {
	t.Setenv("APP_MODE", "prod")
	t.Setenv("TIMELINE_OFFSET_DAYS", "0, 1, 3, 5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.AppMode != "prod" {
		t.Fatalf("expected prod mode, got %q", cfg.AppMode)
	}
	if got := cfg.Timeline.OffsetDays; len(got) != 4 || got[3] != 5 {
		t.Fatalf("unexpected offsets: %v", got)
	}
}

func TestLoad_Rejects(t *testing.T) {
	cases := []struct {
		name    string
		key     string
		value   string
		mention string
	}{
		{"bad mode", "APP_MODE", "staging", "APP_MODE"},
		{"short offsets", "TIMELINE_OFFSET_DAYS", "0,2,7", "TIMELINE_OFFSET_DAYS"},
		{"decreasing offsets", "TIMELINE_OFFSET_DAYS", "0,7,2,10", "TIMELINE_OFFSET_DAYS"},
		{"non numeric offsets", "TIMELINE_OFFSET_DAYS", "0,two,7,10", "TIMELINE_OFFSET_DAYS"},
		{"rate above one", "DEFAULT_COMMISSION_RATE", "1.5", "DEFAULT_COMMISSION_RATE"},
		{"negative rate", "DEFAULT_COMMISSION_RATE", "-0.01", "DEFAULT_COMMISSION_RATE"},
		{"bad timeout", "GEMINI_TIMEOUT_SECONDS", "soon", "GEMINI_TIMEOUT_SECONDS"},
		{"zero qr timeout", "QR_TIMEOUT_SECONDS", "0", "QR_TIMEOUT_SECONDS"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("APP_MODE", "dev")
			t.Setenv("TIMELINE_OFFSET_DAYS", "")
			t.Setenv("DEFAULT_COMMISSION_RATE", "")
			t.Setenv("GEMINI_TIMEOUT_SECONDS", "")
			t.Setenv("QR_TIMEOUT_SECONDS", "")
			t.Setenv(tc.key, tc.value)

			_, err := Load()
			if err == nil {
				t.Fatalf("expected error for %s=%q", tc.key, tc.value)
			}
			if !strings.Contains(err.Error(), tc.mention) {
				t.Fatalf("expected error to mention %s, got %v", tc.mention, err)
			}
		})
	}
}
