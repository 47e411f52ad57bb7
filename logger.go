package main

import (
	"log/slog"
	"os"

	"github.com/soocke/screentext-go/config"
)

// NewLogger returns a structured JSON slog.Logger. Debug mode lowers the
// level and records source locations.
func NewLogger(debug bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if debug {
		opts.Level = slog.LevelDebug
		opts.AddSource = true
	}
	h := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(h).With("app", config.AppName)
}
