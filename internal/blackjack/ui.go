package blackjack

import "github.com/lox/blackjack/internal/deck"

// Role identifies who holds a hand
type Role int

const (
	DealerRole Role = iota
	PlayerRole
)

// String returns the role name
func (r Role) String() string {
	if r == DealerRole {
		return "Dealer"
	}
	return "Player"
}

// Action is a player's choice during their turn
type Action int

const (
	Hit Action = iota
	Stand
)

// String returns the action name
func (a Action) String() string {
	if a == Hit {
		return "Hit"
	}
	return "Stand"
}

// Actions lists the choices offered on every turn prompt
var Actions = []Action{Hit, Stand}

// CardSource is anything cards can be drawn from; *deck.Deck satisfies it.
type CardSource interface {
	Draw() (deck.Card, error)
}

// HandObserver is told about a hand every time a card is added to it
type HandObserver interface {
	ShowHand(role Role, hand Hand)
}

// Prompter asks the player for decisions. Implementations block until a valid
// answer is available and return ErrInputClosed once no more input exists.
type Prompter interface {
	ChooseBet(balance int, options []int) (int, error)
	ChooseAction(hand Hand) (Action, error)
}

// UI is everything the game loop needs from the front end
type UI interface {
	Prompter
	HandObserver
	ShowBet(bet, balance int)
	ShowOutcome(outcome Outcome, board Scoreboard)
	ShowEmptyDeck()
	ShowInsufficientFunds(balance int)
}
