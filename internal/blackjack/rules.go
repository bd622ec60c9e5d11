package blackjack

import "fmt"

// BlackjackTotal is the best possible hand total; anything above it is a bust.
const BlackjackTotal = 21

// Rules holds the table limits for a session. It is passed by value and
// never modified once a Game is created.
type Rules struct {
	StartingBalance int // Player account at the start of the session
	MinimumBet      int // Smallest allowed bet; a balance below it ends the session
	BetStep         int // Bets are MinimumBet, MinimumBet+BetStep, ...
	DealerLimit     int // Dealer keeps drawing while its total is at or below this
}

// DefaultRules returns the standard table: $100 bankroll, $10 bets in $10
// steps, dealer draws to 14.
func DefaultRules() Rules {
	return Rules{
		StartingBalance: 100,
		MinimumBet:      10,
		BetStep:         10,
		DealerLimit:     14,
	}
}

// Validate reports the first inconsistent limit.
func (r Rules) Validate() error {
	if r.MinimumBet <= 0 {
		return fmt.Errorf("minimum bet must be positive, got %d", r.MinimumBet)
	}
	if r.BetStep <= 0 {
		return fmt.Errorf("bet step must be positive, got %d", r.BetStep)
	}
	if r.MinimumBet%r.BetStep != 0 {
		return fmt.Errorf("minimum bet %d must be a multiple of bet step %d", r.MinimumBet, r.BetStep)
	}
	if r.StartingBalance < r.MinimumBet {
		return fmt.Errorf("starting balance %d is below the minimum bet %d", r.StartingBalance, r.MinimumBet)
	}
	if r.DealerLimit <= 0 || r.DealerLimit >= BlackjackTotal {
		return fmt.Errorf("dealer limit must be between 1 and %d, got %d", BlackjackTotal-1, r.DealerLimit)
	}
	return nil
}

// BetOptions lists every bet allowed with the given balance, smallest first.
func (r Rules) BetOptions(balance int) []int {
	var options []int
	for bet := r.MinimumBet; bet <= balance; bet += r.BetStep {
		options = append(options, bet)
	}
	return options
}
