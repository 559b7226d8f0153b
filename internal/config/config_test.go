package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, "blackjack.hcl", `
log_level = "debug"
seed      = 42

play {
  auto_deal = "1500ms"
  no_color  = true
}

simulate {
  rounds   = 500
  workers  = 2
  stand_on = 15
}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, log.DebugLevel, cfg.Level())
	assert.Equal(t, "blackjack.log", cfg.LogFile, "unset values keep defaults")
	assert.Equal(t, int64(42), cfg.Seed)
	assert.True(t, cfg.Play.NoColor)

	delay, err := cfg.AutoDealDelay()
	require.NoError(t, err)
	assert.Equal(t, 1500*time.Millisecond, delay)

	assert.Equal(t, SimulateSettings{Rounds: 500, Workers: 2, StandOn: 15}, *cfg.Simulate)
}

func TestLoadPartialFile(t *testing.T) {
	path := writeFile(t, "partial.hcl", `log_file = "/tmp/bj.log"`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/bj.log", cfg.LogFile)
	assert.Equal(t, "info", cfg.LogLevel)
	require.NotNil(t, cfg.Play)
	require.NotNil(t, cfg.Simulate)
	assert.Equal(t, 17, cfg.Simulate.StandOn)
}

func TestLoadInvalidFile(t *testing.T) {
	path := writeFile(t, "broken.hcl", `log_level = `)
	_, err := Load(path)
	assert.Error(t, err)

	path = writeFile(t, "unknown.hcl", `table "main" {}`)
	_, err = Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }},
		{"bad auto deal", func(c *Config) { c.Play.AutoDeal = "soon" }},
		{"negative auto deal", func(c *Config) { c.Play.AutoDeal = "-1s" }},
		{"negative rounds", func(c *Config) { c.Simulate.Rounds = -1 }},
		{"negative workers", func(c *Config) { c.Simulate.Workers = -2 }},
		{"stand on too high", func(c *Config) { c.Simulate.StandOn = 22 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestApplyEnv(t *testing.T) {
	envFile := writeFile(t, ".env", "BLACKJACK_LOG_FILE=from-dotenv.log\nBLACKJACK_AUTO_DEAL=3s\n")
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvSeed, "7")
	t.Setenv(EnvAutoDeal, "")
	t.Setenv(EnvLogFile, "")
	// godotenv only sets variables that are absent, so start from unset
	os.Unsetenv(EnvAutoDeal)
	os.Unsetenv(EnvLogFile)

	cfg := Default()
	require.NoError(t, cfg.ApplyEnv(envFile))

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, "from-dotenv.log", cfg.LogFile)
	delay, err := cfg.AutoDealDelay()
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, delay)
}

func TestApplyEnvMissingFile(t *testing.T) {
	cfg := Default()
	assert.NoError(t, cfg.ApplyEnv(filepath.Join(t.TempDir(), "absent.env")))
}

func TestApplyEnvBadSeed(t *testing.T) {
	t.Setenv(EnvSeed, "lots")
	cfg := Default()
	assert.Error(t, cfg.ApplyEnv(filepath.Join(t.TempDir(), "absent.env")))
}
