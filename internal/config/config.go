// Package config loads blackjack settings from an HCL file, a .env file
// and BLACKJACK_* environment variables, in increasing order of priority.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/joho/godotenv"
)

// Environment variable names
const (
	EnvLogLevel = "BLACKJACK_LOG_LEVEL"
	EnvLogFile  = "BLACKJACK_LOG_FILE"
	EnvSeed     = "BLACKJACK_SEED"
	EnvAutoDeal = "BLACKJACK_AUTO_DEAL"
)

// DefaultFile is the config file looked up when none is given
const DefaultFile = "blackjack.hcl"

// Config is the complete configuration
type Config struct {
	LogLevel string            `hcl:"log_level,optional"`
	LogFile  string            `hcl:"log_file,optional"`
	Seed     int64             `hcl:"seed,optional"`
	Play     *PlaySettings     `hcl:"play,block"`
	Simulate *SimulateSettings `hcl:"simulate,block"`
}

// PlaySettings configure the interactive table
type PlaySettings struct {
	// AutoDeal is how long a finished round stays on screen before the
	// next one is dealt. Empty or "0s" waits for an explicit new round.
	AutoDeal string `hcl:"auto_deal,optional"`
	NoColor  bool   `hcl:"no_color,optional"`
}

// SimulateSettings configure batch simulations
type SimulateSettings struct {
	Rounds  int `hcl:"rounds,optional"`
	Workers int `hcl:"workers,optional"`
	StandOn int `hcl:"stand_on,optional"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		LogLevel: "info",
		LogFile:  "blackjack.log",
		Play: &PlaySettings{
			AutoDeal: "",
		},
		Simulate: &SimulateSettings{
			Rounds:  100000,
			Workers: 0,
			StandOn: 17,
		},
	}
}

// Load reads filename, falling back to defaults when it does not exist.
// Missing values in the file keep their defaults.
func Load(filename string) (*Config, error) {
	if filename == "" {
		filename = DefaultFile
	}

	if _, err := os.Stat(filename); errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse %s: %s", filename, diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode %s: %s", filename, diags.Error())
	}

	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	if c.LogFile == "" {
		c.LogFile = def.LogFile
	}
	if c.Play == nil {
		c.Play = def.Play
	}
	if c.Simulate == nil {
		c.Simulate = def.Simulate
	}
	if c.Simulate.Rounds == 0 {
		c.Simulate.Rounds = def.Simulate.Rounds
	}
	if c.Simulate.StandOn == 0 {
		c.Simulate.StandOn = def.Simulate.StandOn
	}
}

// ApplyEnv loads envFiles (".env" when none are given) and then
// overrides settings from BLACKJACK_* variables. Missing env files are
// not an error; variables already set in the environment win over the
// file.
func (c *Config) ApplyEnv(envFiles ...string) error {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", f, err)
		}
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvLogFile); v != "" {
		c.LogFile = v
	}
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s value: %w", EnvSeed, err)
		}
		c.Seed = seed
	}
	if v := os.Getenv(EnvAutoDeal); v != "" {
		if c.Play == nil {
			c.Play = &PlaySettings{}
		}
		c.Play.AutoDeal = v
	}
	return nil
}

// Validate checks the configuration
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	if _, err := c.AutoDealDelay(); err != nil {
		return err
	}
	if s := c.Simulate; s != nil {
		if s.Rounds < 0 {
			return fmt.Errorf("simulate: rounds must not be negative")
		}
		if s.Workers < 0 {
			return fmt.Errorf("simulate: workers must not be negative")
		}
		if s.StandOn < 1 || s.StandOn > 21 {
			return fmt.Errorf("simulate: stand_on must be between 1 and 21, got %d", s.StandOn)
		}
	}
	return nil
}

// Level returns the parsed log level, defaulting to info
func (c *Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// AutoDealDelay returns the parsed play.auto_deal duration; zero means
// rounds are only started on request.
func (c *Config) AutoDealDelay() (time.Duration, error) {
	if c.Play == nil || c.Play.AutoDeal == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Play.AutoDeal)
	if err != nil {
		return 0, fmt.Errorf("invalid play.auto_deal %q: %w", c.Play.AutoDeal, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("play.auto_deal must not be negative")
	}
	return d, nil
}
