package main

import (
	"fmt"
	"os"

	"github.com/lox/blackjack/internal/selftest"
)

type SelfTestCmd struct {
	Verbose bool `short:"V" help:"List every example, not just failures"`
}

func (c *SelfTestCmd) Run() error {
	report := selftest.Run(os.Stdout, c.Verbose)
	if !report.OK() {
		return fmt.Errorf("%d of %d self-test examples failed", len(report.Failures), report.Attempted)
	}
	return nil
}
