package app

import (
	"io"
	"log/slog"
	"strings"

	"github.com/utakatalp/league-ranking/internal/config"
)

// NewLogger creates a *slog.Logger writing to w based on the provided
// LogConfig and sets it as the default logger via slog.SetDefault.
//
// Format "json" produces structured JSON output, "text" produces
// human-readable output with source info. The command passes stderr:
// stdout is reserved for the standings.
func NewLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: strings.EqualFold(cfg.Format, "text"),
	}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	return logger
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
