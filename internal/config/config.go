// Package config reads runtime settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ironsheep/pixels-mcp/internal/imaging"
)

// Environment variable names.
const (
	EnvLogLevel  = "PIXELS_LOG_LEVEL"
	EnvLogFormat = "PIXELS_LOG_FORMAT"
	EnvThreshold = "PIXELS_THRESHOLD"
	EnvTimeout   = "PIXELS_TIMEOUT"
)

// Log formats.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Config holds settings shared by the server and the CLI.
type Config struct {
	// LogLevel is the minimum level written to the log.
	LogLevel zerolog.Level

	// LogFormat is FormatJSON or FormatConsole.
	LogFormat string

	// Threshold is the channel-sum distance used when a request does not
	// supply its own.
	Threshold int

	// Timeout bounds a single abstract run. Zero means no limit.
	Timeout time.Duration
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel:  zerolog.InfoLevel,
		LogFormat: FormatJSON,
		Threshold: imaging.DefaultThreshold,
	}
}

// FromEnv returns Default overridden by any PIXELS_* variables that are set.
func FromEnv() (Config, error) {
	return fromLookup(os.LookupEnv)
}

func fromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		if err := cfg.SetLogLevel(v); err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvLogLevel, err)
		}
	}
	if v, ok := lookup(EnvLogFormat); ok && v != "" {
		if err := cfg.SetLogFormat(v); err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvLogFormat, err)
		}
	}
	if v, ok := lookup(EnvThreshold); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvThreshold, err)
		}
		cfg.Threshold = n
	}
	if v, ok := lookup(EnvTimeout); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvTimeout, err)
		}
		cfg.Timeout = d
	}

	return cfg, cfg.Validate()
}

// SetLogLevel parses a level name such as "debug" or "warn".
func (c *Config) SetLogLevel(s string) error {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return err
	}
	c.LogLevel = level
	return nil
}

// SetLogFormat accepts "json" or "console".
func (c *Config) SetLogFormat(s string) error {
	switch f := strings.ToLower(strings.TrimSpace(s)); f {
	case FormatJSON, FormatConsole:
		c.LogFormat = f
		return nil
	default:
		return fmt.Errorf("unknown log format %q", s)
	}
}

// Metric returns the color metric for the configured threshold.
func (c Config) Metric() (imaging.Metric, error) {
	return imaging.NewMetric(c.Threshold)
}

// Validate checks that the settings are usable.
func (c Config) Validate() error {
	if _, err := c.Metric(); err != nil {
		return err
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", c.Timeout)
	}
	return nil
}
