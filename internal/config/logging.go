package config

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// OpenLogger returns a text logger writing to c.Log.Path. The terminal
// belongs to the interactive screen, so nothing is logged to stderr.
// The returned closer must be called on exit.
func (c *Config) OpenLogger() (*slog.Logger, io.Closer, error) {
	level, err := ParseLevel(c.Log.Level)
	if err != nil {
		return nil, nil, err
	}

	if c.Log.Path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), io.NopCloser(nil), nil
	}

	if err := os.MkdirAll(filepath.Dir(c.Log.Path), 0755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(c.Log.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, err
	}

	handler := slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})
	return slog.New(handler), f, nil
}
