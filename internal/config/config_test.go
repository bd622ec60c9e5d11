package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack/internal/blackjack"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blackjack.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.hcl"))
	require.NoError(t, err)

	assert.Equal(t, blackjack.DefaultRules(), cfg.Rules())
	assert.Equal(t, log.InfoLevel, cfg.LogLevel())
	assert.True(t, cfg.ColorEnabled())
	assert.True(t, cfg.SelfTestEnabled())
	assert.NoError(t, cfg.Validate())
}

func TestLoadFullFile(t *testing.T) {
	path := writeConfig(t, `
table {
  starting_balance = 200
  minimum_bet      = 20
  bet_step         = 20
  dealer_limit     = 16
}

ui {
  log_level = "debug"
  log_file  = "session.log"
  color     = false
  self_test = false
}
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, blackjack.Rules{
		StartingBalance: 200,
		MinimumBet:      20,
		BetStep:         20,
		DealerLimit:     16,
	}, cfg.Rules())
	assert.Equal(t, log.DebugLevel, cfg.LogLevel())
	assert.Equal(t, "session.log", cfg.UI.LogFile)
	assert.False(t, cfg.ColorEnabled())
	assert.False(t, cfg.SelfTestEnabled())
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
table {
  starting_balance = 50
}
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	rules := cfg.Rules()
	assert.Equal(t, 50, rules.StartingBalance)
	assert.Equal(t, 10, rules.MinimumBet)
	assert.Equal(t, 14, rules.DealerLimit)
	assert.Equal(t, "blackjack.log", cfg.UI.LogFile)
	assert.True(t, cfg.ColorEnabled())
}

func TestLoadRejectsBadSyntax(t *testing.T) {
	path := writeConfig(t, `table {`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsUnknownAttribute(t *testing.T) {
	path := writeConfig(t, `
table {
  double_down = true
}
`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"bet step does not divide minimum", func(c *Config) { c.Table.BetStep = 15 }},
		{"balance below minimum bet", func(c *Config) { c.Table.StartingBalance = 5 }},
		{"dealer limit too high", func(c *Config) { c.Table.DealerLimit = 30 }},
		{"unknown log level", func(c *Config) { c.UI.LogLevel = "chatty" }},
		{"empty log file", func(c *Config) { c.UI.LogFile = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
