package config

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func lookupFrom(env map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.LogLevel != zerolog.InfoLevel {
		t.Errorf("LogLevel: got %v, want info", cfg.LogLevel)
	}
	if cfg.LogFormat != FormatJSON {
		t.Errorf("LogFormat: got %s, want json", cfg.LogFormat)
	}
	if cfg.Threshold != 100 {
		t.Errorf("Threshold: got %d, want 100", cfg.Threshold)
	}
	if cfg.Timeout != 0 {
		t.Errorf("Timeout: got %s, want 0", cfg.Timeout)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default should validate: %v", err)
	}
}

func TestFromLookup(t *testing.T) {
	cfg, err := fromLookup(lookupFrom(map[string]string{
		EnvLogLevel:  "DEBUG",
		EnvLogFormat: "console",
		EnvThreshold: "42",
		EnvTimeout:   "1500ms",
	}))
	if err != nil {
		t.Fatalf("fromLookup failed: %v", err)
	}

	if cfg.LogLevel != zerolog.DebugLevel {
		t.Errorf("LogLevel: got %v, want debug", cfg.LogLevel)
	}
	if cfg.LogFormat != FormatConsole {
		t.Errorf("LogFormat: got %s, want console", cfg.LogFormat)
	}
	if cfg.Threshold != 42 {
		t.Errorf("Threshold: got %d, want 42", cfg.Threshold)
	}
	if cfg.Timeout != 1500*time.Millisecond {
		t.Errorf("Timeout: got %s, want 1.5s", cfg.Timeout)
	}
}

func TestFromLookup_EmptyValuesKeepDefaults(t *testing.T) {
	cfg, err := fromLookup(lookupFrom(map[string]string{EnvThreshold: ""}))
	if err != nil {
		t.Fatalf("fromLookup failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("got %+v, want defaults", cfg)
	}
}

func TestFromLookup_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"bad level", map[string]string{EnvLogLevel: "loud"}},
		{"bad format", map[string]string{EnvLogFormat: "xml"}},
		{"non-numeric threshold", map[string]string{EnvThreshold: "lots"}},
		{"zero threshold", map[string]string{EnvThreshold: "0"}},
		{"huge threshold", map[string]string{EnvThreshold: "10000"}},
		{"bad timeout", map[string]string{EnvTimeout: "soon"}},
		{"negative timeout", map[string]string{EnvTimeout: "-1s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := fromLookup(lookupFrom(tt.env)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestConfig_Metric(t *testing.T) {
	cfg := Default()
	cfg.Threshold = 7
	m, err := cfg.Metric()
	if err != nil {
		t.Fatalf("Metric failed: %v", err)
	}
	if m.Threshold != 7 {
		t.Errorf("Threshold: got %d, want 7", m.Threshold)
	}
}
