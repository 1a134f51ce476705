package logging

import (
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/google/wire"
	"github.com/trebuchet-org/creation-code/internal/domain/config"
)

var LoggingSet = wire.NewSet(
	NewLogger,
)

// NewLogger creates a new logger based on runtime configuration
func NewLogger(cfg *config.RuntimeConfig) *slog.Logger {
	return newLogger(os.Stderr, cfg.Debug, os.Getenv("CREATION_CODE_LOG_LEVEL"))
}

func newLogger(w io.Writer, debug bool, levelEnv string) *slog.Logger {
	// Stay quiet unless asked, stdout carries the bytecode and stderr the spinner
	level := slog.LevelWarn

	switch strings.ToLower(levelEnv) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		// unknown value, keep default
	}

	opts := &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Remove time in non-debug mode for cleaner output
			if a.Key == slog.TimeKey && !debug {
				return slog.Attr{}
			}
			// Shorten source paths
			if a.Key == slog.SourceKey {
				source := a.Value.Any().(*slog.Source)
				source.File = shortPath(source.File)
			}
			return a
		},
	}

	if debug {
		opts.Level = slog.LevelDebug
		opts.AddSource = true
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

// shortPath returns a shortened version of the file path
func shortPath(file string) string {
	if idx := strings.Index(file, "creation-code/"); idx != -1 {
		return file[idx+len("creation-code/"):]
	}
	_, f, _, _ := runtime.Caller(0)
	if idx := strings.LastIndex(f, "/internal/"); idx != -1 {
		if rel, ok := strings.CutPrefix(file, f[:idx+1]); ok {
			return rel
		}
	}
	// Last resort: just the filename
	parts := strings.Split(file, "/")
	return parts[len(parts)-1]
}
