package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Log is the global logger instance
var Log = slog.New(slog.NewTextHandler(io.Discard, nil))

// Setup initializes the global logger based on the environment
func Setup(env string) {
	SetupWithWriter(env, os.Stdout)
}

// SetupWithWriter initializes the global logger writing to w.
// Production uses JSON output; every other environment uses text.
func SetupWithWriter(env string, w io.Writer) {
	var handler slog.Handler

	opts := &slog.HandlerOptions{
		Level: levelFor(env),
	}

	if env == "production" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	Log = slog.New(handler)
	slog.SetDefault(Log)
}

func levelFor(env string) slog.Level {
	switch strings.ToLower(env) {
	case "development", "dev", "local":
		return slog.LevelDebug
	default:
		return slog.LevelInfo
	}
}

// With returns a child logger carrying the given attributes
func With(args ...any) *slog.Logger {
	return Log.With(args...)
}

// Info logs an info message
func Info(msg string, args ...any) {
	Log.Info(msg, args...)
}

// Error logs an error message
func Error(msg string, args ...any) {
	Log.Error(msg, args...)
}

// Debug logs a debug message
func Debug(msg string, args ...any) {
	Log.Debug(msg, args...)
}

// Warn logs a warning message
func Warn(msg string, args ...any) {
	Log.Warn(msg, args...)
}
