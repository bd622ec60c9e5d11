package blackjack

import "fmt"

// Scoreboard counts round outcomes across a session and mirrors the player's
// balance in Money.
type Scoreboard struct {
	Win   int
	Lose  int
	Draw  int
	Money int
}

// NewScoreboard creates an empty scoreboard for a player holding balance
func NewScoreboard(balance int) *Scoreboard {
	return &Scoreboard{Money: balance}
}

// Record counts an outcome and stores the balance after settlement
func (s *Scoreboard) Record(outcome Outcome, balance int) {
	switch outcome {
	case Win:
		s.Win++
	case Lose:
		s.Lose++
	case Draw:
		s.Draw++
	}
	s.Money = balance
}

// Rounds returns the number of settled rounds
func (s Scoreboard) Rounds() int {
	return s.Win + s.Lose + s.Draw
}

// String renders the scoreboard as "{Win: 1, Lose: 0, Draw: 0, Money: 100}"
func (s Scoreboard) String() string {
	return fmt.Sprintf("{Win: %d, Lose: %d, Draw: %d, Money: %d}", s.Win, s.Lose, s.Draw, s.Money)
}
