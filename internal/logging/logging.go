package logging

import (
	"context"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

// Config controls logger construction.
type Config struct {
	// Level is a zerolog level name ("debug", "info", ...). Invalid or
	// empty levels fall back to info.
	Level string `yaml:"level" json:"level"`

	// Format is "console" for human-readable output or "json" for
	// structured lines. Defaults to console.
	Format string `yaml:"format" json:"format"`

	// File, when set, receives log output instead of stderr.
	File string `yaml:"file" json:"file"`
}

// New builds a logger from the config. File-sink failures fall back to
// stderr rather than failing the command; logging is never load-bearing.
func New(cfg Config) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		lvl = zerolog.InfoLevel
	}

	var out io.Writer = os.Stderr
	if cfg.File != "" {
		if f, ferr := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600); ferr == nil {
			out = f
		}
	}

	if !strings.EqualFold(cfg.Format, "json") {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}

// ComponentLogger returns a child logger tagged with a component field.
func ComponentLogger(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}

// FromContext returns the logger attached to ctx, or a disabled logger when
// none was attached.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

// NewTraceID mints a ULID for correlating log lines from one invocation.
func NewTraceID() string {
	entropy := ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0) //nolint:gosec // trace IDs are not security tokens
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}
