// Package logging defines the structured-logging interface used across
// Launchpad, with adapters for log/slog and rs/zerolog.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"
)

// Logger is a context-aware, structured logger.
//
// The variadic args are interpreted as key–value pairs, e.g.:
//
//	log.Info(ctx, "signed in", "email", email)
type Logger interface {
	Debug(ctx context.Context, msg string, args ...any)
	Info(ctx context.Context, msg string, args ...any)
	Warn(ctx context.Context, msg string, args ...any)
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key–value pairs.
	With(args ...any) Logger
}

// New builds a Logger writing to w.
//
// format selects the backend: "json" and "text" use slog, "pretty" uses
// zerolog's console writer. Unknown levels fall back to info.
func New(w io.Writer, level, format string) Logger {
	switch strings.ToLower(format) {
	case "pretty":
		return NewZerologLogger(w, level, true)
	case "json":
		h := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: parseSlogLevel(level)})
		return NewSlogLogger(slog.New(h))
	default:
		h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: parseSlogLevel(level)})
		return NewSlogLogger(slog.New(h))
	}
}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func parseSlogLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return l
}
