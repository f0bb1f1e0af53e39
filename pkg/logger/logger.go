// Package logger builds the zerolog loggers used by the ledger binaries.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"partner-commission-ledger/config"

	"github.com/rs/zerolog"
)

// New returns a stdout logger tagged with the binary's service name.
func New(cfg config.LogConfig, service string) zerolog.Logger {
	return NewWithWriter(cfg, service, os.Stdout)
}

// NewWithWriter is New writing to w. Pretty mode wraps w in a console writer.
func NewWithWriter(cfg config.LogConfig, service string, w io.Writer) zerolog.Logger {
	if cfg.Pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	ctx := zerolog.New(w).
		Level(parseLevel(cfg.Level)).
		With().
		Timestamp().
		Caller()
	if service != "" {
		ctx = ctx.Str("service", service)
	}
	return ctx.Logger()
}

// parseLevel accepts any zerolog level name, case-insensitively. Empty or
// unknown names fall back to info.
func parseLevel(level string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
