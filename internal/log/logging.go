// Package log builds the process-wide slog.Logger.
//
// Records always go to stderr, and also to the log file when one is given.
// Stdout carries only generated artifacts.
package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
)

// LevelTrace is below Debug and enables per-item output.
const LevelTrace slog.Level = -8

// ParseLevel maps a level name to a slog level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return LevelTrace
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// fanout sends each record to every handler that accepts its level.
type fanout []slog.Handler

func (f fanout) Enabled(ctx context.Context, level slog.Level) bool {
	for _, h := range f {
		if h.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (f fanout) Handle(ctx context.Context, r slog.Record) error {
	for _, h := range f {
		if h.Enabled(ctx, r.Level) {
			_ = h.Handle(ctx, r.Clone())
		}
	}
	return nil
}

func (f fanout) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithAttrs(attrs)
	}
	return out
}

func (f fanout) WithGroup(name string) slog.Handler {
	out := make(fanout, len(f))
	for i, h := range f {
		out[i] = h.WithGroup(name)
	}
	return out
}

// SetupLogger returns a logger for level and optional file writing to
// stderr. Callers close the returned closers on exit.
func SetupLogger(level, file string) (*slog.Logger, []io.Closer, error) {
	return New(level, file, os.Stderr)
}

// New is SetupLogger with the console stream supplied by the caller.
func New(level, file string, console io.Writer) (*slog.Logger, []io.Closer, error) {
	opts := &slog.HandlerOptions{Level: ParseLevel(level)}

	if file == "" {
		return slog.New(slog.NewTextHandler(console, opts)), nil, nil
	}

	f, err := os.OpenFile(file, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger := slog.New(fanout{
		slog.NewTextHandler(console, opts),
		slog.NewTextHandler(f, opts),
	})
	return logger, []io.Closer{f}, nil
}
