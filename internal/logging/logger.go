// Package logging builds the leveled slog logger shared by the CLI, the TUI
// and the HTTP API, and adapts it to the engine's printf-style Logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// ParseLevel maps a level name to a slog.Level.
// Supported values: "debug", "info", "warn", "error" (case-insensitive).
// Unknown values default to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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

// NewLogger creates a leveled text logger writing to w
func NewLogger(level string, w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)}))
}

// Adapter satisfies calculation.Logger on top of a *slog.Logger
type Adapter struct {
	L *slog.Logger
}

// NewAdapter wraps l; a nil l discards output
func NewAdapter(l *slog.Logger) Adapter {
	if l == nil {
		l = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return Adapter{L: l}
}

func (a Adapter) Debugf(format string, args ...any) { a.L.Debug(fmt.Sprintf(format, args...)) }
func (a Adapter) Infof(format string, args ...any)  { a.L.Info(fmt.Sprintf(format, args...)) }
func (a Adapter) Warnf(format string, args ...any)  { a.L.Warn(fmt.Sprintf(format, args...)) }
func (a Adapter) Errorf(format string, args ...any) { a.L.Error(fmt.Sprintf(format, args...)) }
