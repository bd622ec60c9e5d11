// Package blackjack implements a single-player Blackjack round against an
// automated dealer.
//
// The main type is Game, which owns the shared deck, a Dealer, a Player and
// the session Scoreboard, and runs rounds until the deck or the player's
// funds run out:
//
//	rng := randutil.New(42)
//	d := deck.New(rng)
//	d.Shuffle()
//	g := blackjack.NewGame(blackjack.DefaultRules(), d, ui,
//	    blackjack.WithLogger(logger))
//	summary, err := g.Run()
//
// # Round order
//
// Each round escrows a bet, deals two cards to the dealer and two to the
// player, lets the dealer draw while its total is at or below
// Rules.DealerLimit, then runs the player's hit/stand loop. Resolve compares
// the two totals and Player.Settle applies the outcome.
//
// # Hand values
//
// Total values J, Q and K at 10 and aces at 1, then promotes one ace at a
// time to 11 while the running total is 11 or less.
package blackjack
