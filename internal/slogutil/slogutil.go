// Package slogutil configures structured logging for the CLI.
package slogutil

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Config controls how the process-wide logger is built.
type Config struct {
	// Level is the minimum level name: debug, info, warn or error.
	Level string
	// LogPath, when set, additionally writes rotated logs to this file.
	LogPath string
	// AddSource includes source positions in records.
	AddSource bool
}

// Setup builds a text handler logger from cfg and installs it as the slog
// default. Diagnostics go to stderr so command output stays clean.
func Setup(cfg Config) *slog.Logger {
	var w io.Writer = os.Stderr
	if cfg.LogPath != "" {
		w = io.MultiWriter(os.Stderr, &lumberjack.Logger{
			Filename:   cfg.LogPath,
			MaxSize:    5,
			MaxAge:     14,
			MaxBackups: 5,
		})
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     ParseLevel(cfg.Level),
		AddSource: cfg.AddSource,
	}))
	slog.SetDefault(logger)

	return logger
}

// ParseLevel maps a level name to a slog.Level, defaulting to info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
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
