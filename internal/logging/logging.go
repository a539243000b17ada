// Package logging builds the logr logger used across deskauth.
package logging

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/go-logr/logr"
)

const (
	TextFormat Format = "text"
	JSONFormat Format = "json"
)

type (
	// Format is the log line encoding.
	Format string

	Config struct {
		// Verbosity enables logr V-levels up to and including its value.
		Verbosity int
		Format    string
	}
)

// New constructs a logger writing to w. An empty format selects text.
func New(w io.Writer, cfg Config) (logr.Logger, error) {
	opts := &slog.HandlerOptions{Level: toSlogLevel(cfg.Verbosity)}

	var h slog.Handler
	switch Format(cfg.Format) {
	case "", TextFormat:
		h = slog.NewTextHandler(w, opts)
	case JSONFormat:
		h = slog.NewJSONHandler(w, opts)
	default:
		return logr.Discard(), fmt.Errorf("unrecognised logging format: %s", cfg.Format)
	}
	return logr.FromSlogHandler(h), nil
}

// toSlogLevel converts a logr verbosity to the slog level that lets
// V(verbosity) through. logr maps V(n) onto slog level -n.
func toSlogLevel(verbosity int) slog.Level {
	if verbosity <= 0 {
		return slog.LevelInfo
	}
	return slog.Level(-verbosity)
}
