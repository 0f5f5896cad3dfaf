package main

import (
	"io"
	"log/slog"
	"os"
)

var logLevel = new(slog.LevelVar)

// configureLogging installs a text logger as the default,
// with its level taken from RECENTS_LOG_LEVEL (defaults to Info).
func configureLogging(output io.Writer) {
	logLevel.Set(slog.LevelInfo)
	if level, ok := os.LookupEnv("RECENTS_LOG_LEVEL"); ok {
		if err := logLevel.UnmarshalText([]byte(level)); err != nil {
			logLevel.Set(slog.LevelInfo)
		}
	}
	handler := slog.NewTextHandler(output, &slog.HandlerOptions{
		Level: logLevel,
	})
	slog.SetDefault(slog.New(handler))
}
