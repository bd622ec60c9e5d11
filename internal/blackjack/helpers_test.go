package blackjack

import (
	"github.com/lox/blackjack/internal/deck"
)

type shownHand struct {
	role  Role
	hand  Hand
	total int
}

// scriptedUI answers prompts from queued responses (or the policy funcs once
// the queues are empty) and records everything the game shows.
type scriptedUI struct {
	bets    []int
	actions []Action

	betPolicy    func(balance int, options []int) int
	actionPolicy func(hand Hand) Action
	onBet        func()

	betOptions   [][]int
	hands        []shownHand
	betsShown    []int
	outcomes     []Outcome
	boards       []Scoreboard
	emptyDeck    int
	insufficient int
}

func (u *scriptedUI) ChooseBet(balance int, options []int) (int, error) {
	u.betOptions = append(u.betOptions, options)
	if u.onBet != nil {
		u.onBet()
	}
	if len(u.bets) > 0 {
		bet := u.bets[0]
		u.bets = u.bets[1:]
		return bet, nil
	}
	if u.betPolicy != nil {
		return u.betPolicy(balance, options), nil
	}
	return 0, ErrInputClosed
}

func (u *scriptedUI) ChooseAction(hand Hand) (Action, error) {
	if len(u.actions) > 0 {
		a := u.actions[0]
		u.actions = u.actions[1:]
		return a, nil
	}
	if u.actionPolicy != nil {
		return u.actionPolicy(hand), nil
	}
	return Stand, ErrInputClosed
}

func (u *scriptedUI) ShowHand(role Role, hand Hand) {
	u.hands = append(u.hands, shownHand{role: role, hand: hand, total: hand.Total()})
}

func (u *scriptedUI) ShowBet(bet, balance int) {
	u.betsShown = append(u.betsShown, bet)
}

func (u *scriptedUI) ShowOutcome(outcome Outcome, board Scoreboard) {
	u.outcomes = append(u.outcomes, outcome)
	u.boards = append(u.boards, board)
}

func (u *scriptedUI) ShowEmptyDeck() {
	u.emptyDeck++
}

func (u *scriptedUI) ShowInsufficientFunds(balance int) {
	u.insufficient++
}

// stacked returns a deck that deals the given cards in order, first card first.
func stacked(cards string) *deck.Deck {
	parsed := deck.MustParseCards(cards)
	for i, j := 0, len(parsed)-1; i < j; i, j = i+1, j-1 {
		parsed[i], parsed[j] = parsed[j], parsed[i]
	}
	return deck.NewFromCards(parsed...)
}

func hand(cards string) Hand {
	return Hand(deck.MustParseCards(cards))
}
