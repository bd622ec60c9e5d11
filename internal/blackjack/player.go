package blackjack

import (
	"fmt"
	"slices"
)

// PlayerUI is what a Player needs from the front end
type PlayerUI interface {
	Prompter
	HandObserver
}

// Player holds the human's hand and account. Bets are escrowed: the stake
// leaves the balance when chosen and comes back on a win or a draw.
type Player struct {
	rules   Rules
	balance int
	hand    Hand
	ui      PlayerUI
}

// NewPlayer creates a player holding the starting balance from rules
func NewPlayer(rules Rules, ui PlayerUI) *Player {
	return &Player{
		rules:   rules,
		balance: rules.StartingBalance,
		ui:      ui,
	}
}

// Reset clears the hand for a new round
func (p *Player) Reset() {
	p.hand = nil
}

// Balance returns the money currently in the player's account
func (p *Player) Balance() int {
	return p.balance
}

// CanBet reports whether the balance covers the minimum bet
func (p *Player) CanBet() bool {
	return p.balance >= p.rules.MinimumBet
}

// BetOptions lists the bets the player can currently afford
func (p *Player) BetOptions() []int {
	return p.rules.BetOptions(p.balance)
}

// ChooseBet prompts for a bet and removes it from the balance straight away.
func (p *Player) ChooseBet() (int, error) {
	if !p.CanBet() {
		return 0, ErrInsufficientFunds
	}
	options := p.BetOptions()
	bet, err := p.ui.ChooseBet(p.balance, options)
	if err != nil {
		return 0, fmt.Errorf("choose bet: %w", err)
	}
	if !slices.Contains(options, bet) {
		return 0, fmt.Errorf("%w: %d", ErrInvalidBet, bet)
	}
	p.balance -= bet
	return bet, nil
}

// DrawInitial deals the player's two opening cards
func (p *Player) DrawInitial(src CardSource) error {
	for range 2 {
		if err := p.draw(src); err != nil {
			return err
		}
	}
	p.show()
	return nil
}

// PlayTurn runs the hit/stand loop and returns the final total. The loop
// ends on Stand, or automatically once the total reaches 21 or more.
func (p *Player) PlayTurn(src CardSource) (int, error) {
	for {
		action, err := p.ui.ChooseAction(p.Hand())
		if err != nil {
			return p.Total(), fmt.Errorf("choose action: %w", err)
		}
		if action == Stand {
			return p.Total(), nil
		}

		if err := p.draw(src); err != nil {
			return p.Total(), err
		}
		p.show()
		if p.Total() >= BlackjackTotal {
			return p.Total(), nil
		}
	}
}

// Settle pays out the escrowed bet and records the outcome. A win or a draw
// returns the stake; a loss keeps it.
func (p *Player) Settle(board *Scoreboard, outcome Outcome, bet int) {
	if outcome == Win || outcome == Draw {
		p.balance += bet
	}
	board.Record(outcome, p.balance)
}

// Total returns the player's hand value
func (p *Player) Total() int {
	return p.hand.Total()
}

// Hand returns a copy of the player's cards
func (p *Player) Hand() Hand {
	return append(Hand(nil), p.hand...)
}

// String renders the hand and total, e.g.
//
//	Player's Card Deck: [9♦ 5♣]
//	Sum: 14
func (p *Player) String() string {
	return fmt.Sprintf("Player's Card Deck: %s\nSum: %d", p.hand, p.Total())
}

// GoString renders the player for %#v, e.g. "Player([9♦ 5♣], 20)"
func (p *Player) GoString() string {
	return fmt.Sprintf("Player(%s, %d)", p.hand, p.balance)
}

func (p *Player) draw(src CardSource) error {
	card, err := src.Draw()
	if err != nil {
		return fmt.Errorf("player draw: %w", err)
	}
	p.hand = append(p.hand, card)
	return nil
}

func (p *Player) show() {
	if p.ui != nil {
		p.ui.ShowHand(PlayerRole, p.Hand())
	}
}
