package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/blackjack/internal/blackjack"
)

// DefaultFile is the configuration file looked up when none is given
const DefaultFile = "blackjack.hcl"

// Config represents the complete game configuration
type Config struct {
	Table *TableSettings `hcl:"table,block"`
	UI    *UISettings    `hcl:"ui,block"`
}

// TableSettings contains the betting limits and dealer rule
type TableSettings struct {
	StartingBalance int `hcl:"starting_balance,optional"`
	MinimumBet      int `hcl:"minimum_bet,optional"`
	BetStep         int `hcl:"bet_step,optional"`
	DealerLimit     int `hcl:"dealer_limit,optional"`
}

// UISettings contains user interface settings
type UISettings struct {
	LogLevel string `hcl:"log_level,optional"`
	LogFile  string `hcl:"log_file,optional"`
	Color    *bool  `hcl:"color,optional"`
	SelfTest *bool  `hcl:"self_test,optional"`
}

// Default returns the default configuration
func Default() *Config {
	rules := blackjack.DefaultRules()
	color, selfTest := true, true
	return &Config{
		Table: &TableSettings{
			StartingBalance: rules.StartingBalance,
			MinimumBet:      rules.MinimumBet,
			BetStep:         rules.BetStep,
			DealerLimit:     rules.DealerLimit,
		},
		UI: &UISettings{
			LogLevel: "info",
			LogFile:  "blackjack.log",
			Color:    &color,
			SelfTest: &selfTest,
		},
	}
}

// Load reads configuration from an HCL file. A missing file yields the
// defaults; settings left out of the file keep their default values.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults(Default())
	return &cfg, nil
}

func (c *Config) applyDefaults(defaults *Config) {
	if c.Table == nil {
		c.Table = defaults.Table
	}
	if c.UI == nil {
		c.UI = defaults.UI
	}

	if c.Table.StartingBalance == 0 {
		c.Table.StartingBalance = defaults.Table.StartingBalance
	}
	if c.Table.MinimumBet == 0 {
		c.Table.MinimumBet = defaults.Table.MinimumBet
	}
	if c.Table.BetStep == 0 {
		c.Table.BetStep = defaults.Table.BetStep
	}
	if c.Table.DealerLimit == 0 {
		c.Table.DealerLimit = defaults.Table.DealerLimit
	}

	if c.UI.LogLevel == "" {
		c.UI.LogLevel = defaults.UI.LogLevel
	}
	if c.UI.LogFile == "" {
		c.UI.LogFile = defaults.UI.LogFile
	}
	if c.UI.Color == nil {
		c.UI.Color = defaults.UI.Color
	}
	if c.UI.SelfTest == nil {
		c.UI.SelfTest = defaults.UI.SelfTest
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.Rules().Validate(); err != nil {
		return fmt.Errorf("invalid table settings: %w", err)
	}
	if _, err := log.ParseLevel(c.UI.LogLevel); err != nil {
		return fmt.Errorf("invalid log level: %s", c.UI.LogLevel)
	}
	if c.UI.LogFile == "" {
		return fmt.Errorf("log file is required")
	}
	return nil
}

// Rules converts the table settings into game rules
func (c *Config) Rules() blackjack.Rules {
	return blackjack.Rules{
		StartingBalance: c.Table.StartingBalance,
		MinimumBet:      c.Table.MinimumBet,
		BetStep:         c.Table.BetStep,
		DealerLimit:     c.Table.DealerLimit,
	}
}

// LogLevel returns the parsed log level, falling back to info
func (c *Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.UI.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}

// ColorEnabled reports whether styled output is wanted
func (c *Config) ColorEnabled() bool {
	return c.UI.Color == nil || *c.UI.Color
}

// SelfTestEnabled reports whether the self-test runs before play
func (c *Config) SelfTestEnabled() bool {
	return c.UI.SelfTest == nil || *c.UI.SelfTest
}
