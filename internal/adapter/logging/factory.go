package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/rs/zerolog"

	"slackhook/internal/domain/ports"
)

// Output formats understood by NewFromFormat.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// NewFromFormat builds the logger selected by format, writing to out.
// Unknown formats fall back to JSON.
func NewFromFormat(format, level string, out io.Writer) ports.Logger {
	if strings.EqualFold(strings.TrimSpace(format), FormatConsole) {
		return NewConsole(out, level)
	}

	handler := slog.NewJSONHandler(out, &slog.HandlerOptions{
		Level: slogLevel(level),
	})
	return New(slog.New(handler))
}

func slogLevel(s string) slog.Level {
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

func zerologLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
