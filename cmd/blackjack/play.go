package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"

	"github.com/lox/blackjack/internal/blackjack"
	"github.com/lox/blackjack/internal/config"
	"github.com/lox/blackjack/internal/console"
	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/selftest"
)

const title = " ♠ ♥ Blackjack ♦ ♣ "

type PlayCmd struct {
	Config          string `short:"c" default:"${default_config}" env:"BLACKJACK_CONFIG" help:"Path to HCL configuration file"`
	Seed            int64  `env:"BLACKJACK_SEED" help:"Shuffle seed (0 picks one from the clock)"`
	LogLevel        string `short:"l" env:"BLACKJACK_LOG_LEVEL" help:"Log level (overrides config)"`
	LogFile         string `env:"BLACKJACK_LOG_FILE" help:"Log file path (overrides config)"`
	NoColor         bool   `env:"BLACKJACK_NO_COLOR" help:"Disable colored output"`
	SkipSelfTest    bool   `help:"Do not run the self-test before playing"`
	VerboseSelfTest bool   `help:"List every self-test example"`
}

func (c *PlayCmd) Run() error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}

	logFile, err := os.OpenFile(cfg.UI.LogFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() {
		if err := logFile.Close(); err != nil {
			log.Error("Failed to close log file", "error", err)
		}
	}()

	logger := log.NewWithOptions(logFile, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "BLACKJACK",
		Level:           cfg.LogLevel(),
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return play(ctx, cfg, c.Seed, c.VerboseSelfTest, os.Stdin, os.Stdout, logger)
}

func (c *PlayCmd) loadConfig() (*config.Config, error) {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}

	if c.LogLevel != "" {
		cfg.UI.LogLevel = c.LogLevel
	}
	if c.LogFile != "" {
		cfg.UI.LogFile = c.LogFile
	}
	if c.NoColor {
		off := false
		cfg.UI.Color = &off
	}
	if c.SkipSelfTest {
		off := false
		cfg.UI.SelfTest = &off
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// play runs one session. Cancelling ctx abandons the session at its current
// prompt and prints the scoreboard as of the last bet or settlement.
func play(ctx context.Context, cfg *config.Config, seed int64, verboseSelfTest bool, in io.Reader, out io.Writer, logger *log.Logger) error {
	ui := console.New(in, out,
		console.WithColor(cfg.ColorEnabled()),
		console.WithLogger(logger))
	ui.ShowTitle(title)

	if cfg.SelfTestEnabled() {
		report := selftest.Run(out, verboseSelfTest)
		if !report.OK() {
			logger.Warn("Self-test failed, continuing", "failed", len(report.Failures), "attempted", report.Attempted)
		} else {
			logger.Info("Self-test passed", "attempted", report.Attempted)
		}
		fmt.Fprintln(out)
	}

	rng, seed := randutil.FromSeed(seed)
	d := deck.New(rng)
	d.Shuffle()

	g := blackjack.NewGame(cfg.Rules(), d, ui,
		blackjack.WithLogger(logger),
		blackjack.WithClock(quartz.NewReal()))
	logger.Info("Deck shuffled", "seed", seed, "session", g.SessionID())

	type result struct {
		summary blackjack.Summary
		err     error
	}
	done := make(chan result, 1)
	go func() {
		summary, err := g.Run()
		done <- result{summary, err}
	}()

	select {
	case <-ctx.Done():
		logger.Info("Interrupted, exiting", "cause", context.Cause(ctx))
		fmt.Fprintln(out)
		ui.ShowSummary(g.Snapshot(blackjack.EndInterrupted))
		return nil
	case res := <-done:
		ui.ShowSummary(res.summary)
		if res.err != nil {
			return fmt.Errorf("game ended unexpectedly: %w", res.err)
		}
		return nil
	}
}
