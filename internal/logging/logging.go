// Package logging builds the slog logger used by the textbook-rsa CLI.
package logging

import (
	"io"
	"log/slog"

	"github.com/natefinch/lumberjack"

	"github.com/vaultsandbox/textbook-rsa/internal/config"
)

// New returns a logger for s. With no log file, records go to console as
// text. Otherwise they are written as JSON to a rotating file, and the
// returned closer releases it.
func New(s *config.Settings, console io.Writer) (*slog.Logger, io.Closer) {
	opts := &slog.HandlerOptions{Level: ParseLevel(s.LogLevel)}

	if s.LogFile == "" {
		return slog.New(slog.NewTextHandler(console, opts)), nopCloser{}
	}

	writer := &lumberjack.Logger{
		Filename:   s.LogFile,
		MaxSize:    s.LogMaxSize,
		MaxBackups: s.LogMaxBackups,
		MaxAge:     s.LogMaxAge,
		Compress:   true,
	}
	return slog.New(slog.NewJSONHandler(writer, opts)), writer
}

// ParseLevel maps a config log level to a slog level. Unknown values map to
// info.
func ParseLevel(level string) slog.Level {
	switch level {
	case config.LogLevelDebug:
		return slog.LevelDebug
	case config.LogLevelWarning:
		return slog.LevelWarn
	case config.LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
