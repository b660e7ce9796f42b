package config

import (
	"log/slog"
	"os"
	"strings"
)

// SetLogLevel sets the log level for the application from the
// REVERSI_LOG_LEVEL environment variable.
func SetLogLevel() {
	level := slog.LevelInfo
	if envLevel := os.Getenv("REVERSI_LOG_LEVEL"); envLevel != "" {
		switch strings.ToUpper(envLevel) {
		case "DEBUG":
			level = slog.LevelDebug
		case "INFO":
			level = slog.LevelInfo
		case "WARN":
			level = slog.LevelWarn
		case "ERROR":
			level = slog.LevelError
		default:
			slog.Error("Invalid log level", "level", envLevel)
			os.Exit(1)
		}
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
