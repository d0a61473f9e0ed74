package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	env "github.com/Netflix/go-env"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fwojciec/convo"
	convojson "github.com/fwojciec/convo/json"
	"github.com/joho/godotenv"
)

// config holds the settings resolved from the environment and flags.
// Flags override environment values.
type config struct {
	Preview   bool
	Messages  string `env:"CONVO_MESSAGES"`
	Dir       string `env:"CONVO_DIR,default=."`
	DebugLog  string `env:"CONVO_DEBUG_LOG"`
	AltScreen bool   `env:"CONVO_ALT_SCREEN,default=true"`
	Mouse     bool   `env:"CONVO_MOUSE,default=true"`
}

// loadDotEnv loads each named .env file into the process environment.
// Missing files are skipped; malformed ones are an error.
func loadDotEnv(filenames ...string) error {
	for _, name := range filenames {
		if err := godotenv.Load(name); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", name, err)
		}
	}
	return nil
}

func loadConfig(args, environ []string) (config, error) {
	var cfg config
	es, err := env.EnvironToEnvSet(environ)
	if err != nil {
		return config{}, fmt.Errorf("parse environment: %w", err)
	}
	if err := env.Unmarshal(es, &cfg); err != nil {
		return config{}, fmt.Errorf("load environment: %w", err)
	}

	fs := flag.NewFlagSet("convo", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.BoolVar(&cfg.Preview, "preview", cfg.Preview, "Show only the single preview card")
	fs.StringVar(&cfg.Messages, "messages", cfg.Messages, "Glob of JSON conversation files to load, relative to -dir")
	fs.StringVar(&cfg.Dir, "dir", cfg.Dir, "Base directory for -messages")
	fs.BoolVar(&cfg.AltScreen, "alt-screen", cfg.AltScreen, "Use the terminal's alternate screen")
	fs.BoolVar(&cfg.Mouse, "mouse", cfg.Mouse, "Enable mouse taps")
	if err := fs.Parse(args); err != nil {
		return config{}, fmt.Errorf("parse flags: %w", err)
	}
	if fs.NArg() > 0 {
		return config{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return cfg, nil
}

// loadStore returns the messages to show. Preview mode shows the single
// preview card. Otherwise messages come from the -messages glob, falling
// back to the built-in sample when the glob is unset or matches nothing.
// An absolute glob ignores dir.
func loadStore(cfg config) (convo.Store, error) {
	if cfg.Preview {
		return convo.NewStore(convo.DefaultMessage), nil
	}
	if cfg.Messages == "" {
		return convo.SampleConversation(), nil
	}
	dir, pattern := globRoot(cfg.Dir, cfg.Messages)
	info, err := os.Stat(dir)
	if err != nil {
		return convo.Store{}, fmt.Errorf("messages dir: %w", err)
	}
	if !info.IsDir() {
		return convo.Store{}, fmt.Errorf("messages dir %s is not a directory", dir)
	}
	store, err := convojson.LoadGlob(os.DirFS(dir), pattern)
	if err != nil {
		return convo.Store{}, fmt.Errorf("load messages: %w", err)
	}
	if store.Len() == 0 {
		return convo.SampleConversation(), nil
	}
	return store, nil
}

// globRoot returns the directory to search and the pattern relative to it.
// An absolute pattern is split at its last literal path segment.
func globRoot(dir, pattern string) (string, string) {
	if !filepath.IsAbs(pattern) {
		return dir, pattern
	}
	base, rel := doublestar.SplitPattern(filepath.ToSlash(pattern))
	return filepath.FromSlash(base), rel
}
