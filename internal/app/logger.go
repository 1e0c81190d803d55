package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/myhealth-backend/internal/config"
)

// NewLogger builds the process-wide *slog.Logger from LogConfig and installs
// it as the slog default.
//
// Format "json" produces machine-readable logs; anything else falls back to
// the human-readable text handler with source locations. Level is one of
// debug, info, warn, error (case-insensitive), defaulting to info. Output
// always goes to os.Stderr so the interactive console owns stdout.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := slog.New(newHandler(os.Stderr, cfg))
	slog.SetDefault(logger)
	return logger
}

// newHandler builds the configured handler writing to w. Split from
// NewLogger so tests can capture output.
func newHandler(w io.Writer, cfg config.LogConfig) slog.Handler {
	json := strings.EqualFold(cfg.Format, "json")

	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: !json,
	}
	if json {
		return slog.NewJSONHandler(w, opts)
	}
	return slog.NewTextHandler(w, opts)
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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
