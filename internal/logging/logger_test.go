package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in), tt.in)
	}
}

func TestNewLogger_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("info", &buf)

	l.Debug("hidden")
	l.Info("shown", "years", 20)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "years=20")
}

func TestAdapter(t *testing.T) {
	var buf bytes.Buffer
	a := NewAdapter(NewLogger("debug", &buf))

	a.Debugf("T=%.2f", 0.5)
	a.Warnf("careful %s", "now")

	out := buf.String()
	assert.Contains(t, out, "T=0.50")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "careful now")

	// nil logger must not panic
	NewAdapter(nil).Infof("dropped %d", 1)
}
