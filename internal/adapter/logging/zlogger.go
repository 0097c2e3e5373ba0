package logging

import (
	"context"
	"io"

	"github.com/rs/zerolog"

	"slackhook/internal/domain/ports"
)

const consoleTimeFormat = "2006-01-02T15:04:05.000Z07:00"

// ZLogger implements ports.Logger on top of zerolog for human-readable output.
type ZLogger struct {
	logger *zerolog.Logger
}

var _ ports.Logger = (*ZLogger)(nil)

// NewZerolog wraps an existing zerolog logger.
func NewZerolog(logger *zerolog.Logger) *ZLogger {
	return &ZLogger{logger: logger}
}

// NewConsole creates a ZLogger writing colourised lines to out.
func NewConsole(out io.Writer, level string) *ZLogger {
	cw := zerolog.ConsoleWriter{Out: out, TimeFormat: consoleTimeFormat}
	zl := zerolog.New(cw).Level(zerologLevel(level)).With().Timestamp().Logger()
	return &ZLogger{logger: &zl}
}

func (l *ZLogger) Debug(ctx context.Context, msg string, args ...any) {
	l.log(ctx, zerolog.DebugLevel, msg, args...)
}

func (l *ZLogger) Info(ctx context.Context, msg string, args ...any) {
	l.log(ctx, zerolog.InfoLevel, msg, args...)
}

func (l *ZLogger) Error(ctx context.Context, msg string, args ...any) {
	l.log(ctx, zerolog.ErrorLevel, msg, args...)
}

func (l *ZLogger) log(ctx context.Context, level zerolog.Level, msg string, args ...any) {
	if l.logger == nil {
		return
	}
	e := l.logger.WithLevel(level)
	if e == nil {
		return
	}
	if len(args) > 0 {
		e = e.Fields(args)
	}
	e.Ctx(ctx).Msg(msg)
}
