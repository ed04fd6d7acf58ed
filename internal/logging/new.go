package logging

import (
	"io"
	"log/slog"
	"strings"

	"go.uber.org/zap/zapcore"
)

const (
	BackendSlog = "slog"
	BackendZap  = "zap"

	FormatJSON = "json"
	FormatText = "text"
)

// Options selects the logger backend, minimum level and output format.
type Options struct {
	Backend string
	Level   string
	Format  string
}

// New builds a Logger writing to w. Unknown backends fall back to slog and
// unknown levels to info.
func New(w io.Writer, o Options) Logger {
	level := strings.ToLower(o.Level)
	if o.Backend == BackendZap {
		return newZap(w, zapLevel(level), o.Format)
	}
	return newSlog(w, slogLevel(level), o.Format)
}

func slogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func zapLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Sync flushes l when its backend buffers entries. Other loggers are a no-op.
func Sync(l Logger) error {
	if s, ok := l.(interface{ Sync() error }); ok {
		return s.Sync()
	}
	return nil
}
