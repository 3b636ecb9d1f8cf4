// Package logger builds the zerolog loggers used by the binaries.
package logger

import (
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/ironsheep/pixels-mcp/internal/config"
)

// New returns a logger writing to w at cfg's level. Console format renders
// human-readable lines; anything else writes one JSON object per line.
func New(w io.Writer, cfg config.Config) zerolog.Logger {
	if cfg.LogFormat == config.FormatConsole {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly, NoColor: true}
	}
	return zerolog.New(w).
		Level(cfg.LogLevel).
		With().
		Timestamp().
		Logger()
}

// Component returns a child logger tagged with the component name.
func Component(log zerolog.Logger, name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}
