package main

import (
	"io"
	"log/slog"
	"strings"
)

// newLogger returns a text logger writing to w at the level named by level
// ("debug", "info", "warn" or "error"; anything else means info).
func newLogger(level string, w io.Writer) *slog.Logger {
	lvl := slog.LevelInfo
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}
