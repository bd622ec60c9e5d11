package blackjack

// Outcome is the result of a round from the player's side
type Outcome int

const (
	Win Outcome = iota
	Lose
	Draw
)

// String returns the outcome name
func (o Outcome) String() string {
	switch o {
	case Win:
		return "Win"
	case Lose:
		return "Lose"
	case Draw:
		return "Draw"
	default:
		return "Unknown"
	}
}

// Resolve compares final totals. A dealer bust is a player win even when the
// player has also bust.
func Resolve(player, dealer int) Outcome {
	switch {
	case dealer > BlackjackTotal:
		return Win
	case dealer < player && player <= BlackjackTotal:
		return Win
	case player > BlackjackTotal:
		return Lose
	case player < dealer:
		return Lose
	default:
		return Draw
	}
}
