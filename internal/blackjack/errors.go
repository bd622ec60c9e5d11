package blackjack

import "errors"

var (
	// ErrInsufficientFunds means the balance is below the minimum bet
	ErrInsufficientFunds = errors.New("insufficient funds for the minimum bet")

	// ErrInvalidBet means a prompter returned an amount that was not offered
	ErrInvalidBet = errors.New("bet is not one of the offered amounts")

	// ErrInputClosed is returned by a Prompter when the player can no longer answer
	ErrInputClosed = errors.New("input closed")
)
