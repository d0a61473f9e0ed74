// Command convo shows a conversation as a scrollable list of expandable
// message cards.
//
// Usage:
//
//	convo [flags]
//
// Flags:
//
//	-preview          Show only the single preview card
//	-messages string  Glob of JSON conversation files to load, relative to -dir
//	-dir string       Base directory for -messages (default ".")
//	-alt-screen       Use the terminal's alternate screen (default true)
//	-mouse            Enable mouse taps (default true)
//
// Environment variables (a .env file in the working directory is loaded
// first) provide flag defaults: CONVO_MESSAGES, CONVO_DIR, CONVO_ALT_SCREEN,
// CONVO_MOUSE. CONVO_DEBUG_LOG names a file that receives debug logs.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/fwojciec/convo"
	bt "github.com/fwojciec/convo/bubbletea"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "convo: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := loadDotEnv(".env"); err != nil {
		return err
	}

	cfg, err := loadConfig(os.Args[1:], os.Environ())
	if err != nil {
		return err
	}

	log, closeLog, err := newLogger(cfg.DebugLog)
	if err != nil {
		return err
	}
	defer closeLog()
	log.Debug("config loaded", "preview", cfg.Preview, "messages", cfg.Messages, "dir", cfg.Dir,
		"alt_screen", cfg.AltScreen, "mouse", cfg.Mouse)

	store, err := loadStore(cfg)
	if err != nil {
		return err
	}
	log.Info("conversation loaded", "messages", store.Len(), "authors", len(store.Authors()))

	// Handle OS signals for graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	conv := convo.NewConversation(store, deleteAction(log))
	m := bt.New(conv, convo.DefaultTheme())
	if err := bt.Run(ctx, m, bt.Options{AltScreen: cfg.AltScreen, Mouse: cfg.Mouse}); err != nil {
		return fmt.Errorf("TUI: %w", err)
	}
	return nil
}

// deleteAction builds the Delete button action for each row. Deleting only
// records the request; the message list is immutable.
func deleteAction(log *slog.Logger) func(i int, m convo.Message) convo.ActionFunc {
	return func(i int, m convo.Message) convo.ActionFunc {
		return func() {
			log.Info("delete requested", "row", i, "author", m.Author)
		}
	}
}
