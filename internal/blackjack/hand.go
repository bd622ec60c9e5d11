package blackjack

import (
	"fmt"

	"github.com/lox/blackjack/internal/deck"
)

const (
	courtValue   = 10
	acePromotion = 10 // an ace counted as 11 instead of 1
	softLimit    = 11 // an ace is promoted only while the total is at or below this
)

// Hand is the ordered set of cards held by the dealer or the player
type Hand []deck.Card

// Total returns the hand's point total. See Total.
func (h Hand) Total() int {
	return Total(h)
}

// String renders the hand as "[10♥ 8♦]"
func (h Hand) String() string {
	return fmt.Sprint([]deck.Card(h))
}

// Total computes the Blackjack value of a sequence of cards. Court cards are
// worth 10, numbered cards their face value and aces 1; then each ace in turn
// is promoted to 11 if the running total is still 11 or less.
func Total(cards []deck.Card) int {
	total, aces := 0, 0
	for _, c := range cards {
		switch {
		case c.Rank.IsCourt():
			total += courtValue
		case c.IsAce():
			total++
			aces++
		default:
			total += int(c.Rank)
		}
	}
	for range aces {
		if total <= softLimit {
			total += acePromotion
		}
	}
	return total
}
