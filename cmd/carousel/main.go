// Command carousel shows a deck of cards in a horizontally scrolling
// carousel in the terminal.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/ayn2op/carousel/config"
	"github.com/ayn2op/carousel/tui"
	"github.com/caarlos0/env/v11"
)

// Config holds the command line configuration.
type Config struct {
	ConfigPath string `env:"CAROUSEL_CONFIG"`
	LogPath    string `env:"CAROUSEL_LOG"`
	Items      int    `env:"CAROUSEL_ITEMS" envDefault:"12"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	fs.StringVar(&cfg.ConfigPath, "config", cfg.ConfigPath, "path to a TOML config file read after the default locations")
	fs.StringVar(&cfg.LogPath, "log", cfg.LogPath, "file to write debug logs to")
	fs.IntVar(&cfg.Items, "items", cfg.Items, "number of cards")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if cfg.Items < 0 {
		return Config{}, fmt.Errorf("items %d must not be negative", cfg.Items)
	}
	return cfg, nil
}

func main() {
	cfg, err := ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[carousel] ")

	if err := run(cfg); err != nil {
		log.Fatalf("run: %v", err)
	}
}

func run(cfg Config) (err error) {
	settings, err := config.Load(cfg.ConfigPath)
	if err != nil {
		return err
	}

	logger, closeLog, err := openLog(cfg.LogPath)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := closeLog(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	app := tui.NewApp().SetFPS(settings.Animation.FPS)
	v, err := newView(settings, newDeck(cfg.Items, settings.BorderSet()), logger)
	if err != nil {
		return err
	}
	logger.Printf("starting with %d items", cfg.Items)
	return app.SetRoot(v).Run()
}

// openLog returns a logger writing to path, or a discarding logger when path
// is empty. The terminal belongs to the UI while it runs.
func openLog(path string) (*log.Logger, func() error, error) {
	if path == "" {
		return log.New(io.Discard, "", 0), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	return log.New(f, "[carousel] ", log.LstdFlags|log.Lmicroseconds), f.Close, nil
}
