package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/config"
	"github.com/lox/blackjack/internal/randutil"
)

// Globals are flags shared by every command
type Globals struct {
	Config   string `short:"c" type:"path" default:"${config_file}" help:"HCL config file"`
	Seed     int64  `help:"Seed for dealing; 0 picks a random seed"`
	LogLevel string `name:"log-level" help:"Log level (debug, info, warn, error)"`
}

// load reads the config file and environment, then applies global flags
func (g *Globals) load() (*config.Config, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	if g.Seed != 0 {
		cfg.Seed = g.Seed
	}
	if g.LogLevel != "" {
		cfg.LogLevel = g.LogLevel
	}
	return cfg, nil
}

func (g *Globals) seed(cfg *config.Config) int64 {
	return randutil.Resolve(cfg.Seed)
}

// newLogger builds the command logger writing to w
func newLogger(w io.Writer, cfg *config.Config, prefix string) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          prefix,
		Level:           cfg.Level(),
	})
}

// openLogFile opens the debug log the interactive table writes to
func openLogFile(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
	if err != nil {
		return nil, fmt.Errorf("failed to create debug log: %w", err)
	}
	return f, nil
}
