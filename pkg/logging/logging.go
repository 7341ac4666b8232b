package logging

import (
	"io"
	"log/slog"
	"strings"
)

// New returns a JSON logger writing to w at the named level.
func New(w io.Writer, level string) *slog.Logger {
	levelVar := &slog.LevelVar{}
	levelVar.Set(ParseLevel(level))

	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: levelVar,
	})
	return slog.New(handler)
}

// ParseLevel maps debug, info, warn and error to slog levels. Anything else
// is info.
func ParseLevel(raw string) slog.Level {
	switch strings.ToLower(raw) {
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
