// Package logging builds the slog.Logger used by the eventbuilder CLI.
package logging

import (
	"io"
	"log/slog"

	"github.com/AntonStoeckl/event-builder-go/internal/config"
)

// New creates a logger writing to w with the level and format from cfg.
func New(w io.Writer, cfg config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}

	var handler slog.Handler
	switch cfg.LogFormat {
	case config.LogFormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler)
}
