package main

import (
	"fmt"
	"log/slog"
	"os"
)

// newLogger returns a debug-level text logger appending to path. Bubble Tea
// owns the terminal, so with no path every record is discarded.
func newLogger(path string) (*slog.Logger, func() error, error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open debug log: %w", err)
	}
	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(h).With("app", "convo"), f.Close, nil
}
