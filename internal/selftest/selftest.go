// Package selftest holds the literal examples checked every time the game
// starts: hand totals, round resolution and the text formats.
package selftest

import (
	"fmt"
	"io"
	"strconv"

	"github.com/lox/blackjack/internal/blackjack"
	"github.com/lox/blackjack/internal/deck"
)

// Example is one expression and the exact text it must produce
type Example struct {
	Expr string
	Want string
	Got  func() string
}

// Failure is an example whose output did not match
type Failure struct {
	Expr string
	Want string
	Got  string
}

// Report summarises a run
type Report struct {
	Attempted int
	Failures  []Failure
}

// Passed returns the number of examples that matched
func (r Report) Passed() int {
	return r.Attempted - len(r.Failures)
}

// OK is true when every example matched
func (r Report) OK() bool {
	return len(r.Failures) == 0
}

// Run checks the built-in examples and writes the results to w. With verbose
// set every example is listed, otherwise only failures.
func Run(w io.Writer, verbose bool) Report {
	return RunExamples(w, Examples(), verbose)
}

// RunExamples checks the given examples and writes the results to w
func RunExamples(w io.Writer, examples []Example, verbose bool) Report {
	var report Report
	for _, ex := range examples {
		report.Attempted++
		got := evaluate(ex)
		ok := got == ex.Want
		if verbose || !ok {
			fmt.Fprintf(w, "Trying:\n    %s\nExpecting:\n    %s\n", ex.Expr, ex.Want)
		}
		if !ok {
			fmt.Fprintf(w, "Got:\n    %s\nFAILED\n", got)
			report.Failures = append(report.Failures, Failure{Expr: ex.Expr, Want: ex.Want, Got: got})
			continue
		}
		if verbose {
			fmt.Fprintln(w, "ok")
		}
	}
	fmt.Fprintf(w, "%d examples, %d passed and %d failed.\n", report.Attempted, report.Passed(), len(report.Failures))
	if report.OK() {
		fmt.Fprintln(w, "Self-test passed.")
	} else {
		fmt.Fprintf(w, "***Self-test failed*** %d failures.\n", len(report.Failures))
	}
	return report
}

func evaluate(ex Example) (got string) {
	defer func() {
		if r := recover(); r != nil {
			got = fmt.Sprintf("panic: %v", r)
		}
	}()
	return ex.Got()
}

// Examples returns the built-in example list
func Examples() []Example {
	var examples []Example

	totals := []struct {
		cards string
		want  int
	}{
		{"2S 2C 8D 10H", 22},
		{"AS 8D 10H", 19},
		{"AS KH", 21},
		{"AS AH", 12},
		{"2S 2C 8D", 12},
	}
	for _, tt := range totals {
		cards := deck.MustParseCards(tt.cards)
		examples = append(examples, Example{
			Expr: fmt.Sprintf("Total(%v)", cards),
			Want: strconv.Itoa(tt.want),
			Got: func() string {
				return strconv.Itoa(blackjack.Total(cards))
			},
		})
	}

	resolves := []struct {
		player, dealer int
		want           blackjack.Outcome
	}{
		{13, 15, blackjack.Lose},
		{21, 18, blackjack.Win},
		{17, 17, blackjack.Draw},
		{22, 10, blackjack.Lose},
		{15, 22, blackjack.Win},
	}
	for _, tt := range resolves {
		examples = append(examples, Example{
			Expr: fmt.Sprintf("Resolve(%d, %d)", tt.player, tt.dealer),
			Want: tt.want.String(),
			Got: func() string {
				return blackjack.Resolve(tt.player, tt.dealer).String()
			},
		})
	}

	examples = append(examples,
		Example{
			Expr: "dealer.DrawInitial([2♠ 2♣ 8♦ 10♥])",
			Want: "[10♥ 8♦] [2♠ 2♣]",
			Got: func() string {
				d := deck.NewFromCards(deck.MustParseCards("2S 2C 8D 10H")...)
				dealer := blackjack.NewDealer(blackjack.DefaultRules(), nil)
				if err := dealer.DrawInitial(d); err != nil {
					return err.Error()
				}
				return fmt.Sprintf("%s %v", dealer.Hand(), d.Cards())
			},
		},
		Example{
			Expr: "dealer.DrawUntilThreshold([2♠ 2♣ 8♦ 10♥])",
			Want: "18",
			Got: func() string {
				d := deck.NewFromCards(deck.MustParseCards("2S 2C 8D 10H")...)
				total, err := blackjack.NewDealer(blackjack.DefaultRules(), nil).DrawUntilThreshold(d)
				if err != nil {
					return err.Error()
				}
				return strconv.Itoa(total)
			},
		},
		Example{
			Expr: "player.DrawInitial([2♠ 2♣ 8♦ 10♥])",
			Want: "[10♥ 8♦] [2♠ 2♣]",
			Got: func() string {
				d := deck.NewFromCards(deck.MustParseCards("2S 2C 8D 10H")...)
				player := blackjack.NewPlayer(blackjack.DefaultRules(), nil)
				if err := player.DrawInitial(d); err != nil {
					return err.Error()
				}
				return fmt.Sprintf("%s %v", player.Hand(), d.Cards())
			},
		},
		Example{
			Expr: "fmt.Sprint(player) with [9♦ 5♣]",
			Want: "Player's Card Deck: [9♦ 5♣]\nSum: 14",
			Got: func() string {
				return fmt.Sprint(playerWith(blackjack.DefaultRules(), "5C 9D"))
			},
		},
		Example{
			Expr: "fmt.Sprintf(\"%#v\", player) with [9♦ 5♣] and $20",
			Want: "Player([9♦ 5♣], 20)",
			Got: func() string {
				rules := blackjack.DefaultRules()
				rules.StartingBalance = 20
				return fmt.Sprintf("%#v", playerWith(rules, "5C 9D"))
			},
		},
		Example{
			Expr: "fmt.Sprint(dealer) with [9♦ 5♣]",
			Want: "Dealer's Card Deck: [9♦ 5♣]",
			Got: func() string {
				return fmt.Sprint(dealerWith("5C 9D"))
			},
		},
		Example{
			Expr: "fmt.Sprintf(\"%#v\", dealer) with [9♦ 5♣]",
			Want: "Dealer([9♦ 5♣])",
			Got: func() string {
				return fmt.Sprintf("%#v", dealerWith("5C 9D"))
			},
		},
		Example{
			Expr: "NewScoreboard(100)",
			Want: "{Win: 0, Lose: 0, Draw: 0, Money: 100}",
			Got: func() string {
				return blackjack.NewScoreboard(100).String()
			},
		},
		Example{
			Expr: "player.Settle(board, Lose, 10)",
			Want: "{Win: 0, Lose: 1, Draw: 0, Money: 100}",
			Got: func() string {
				player := blackjack.NewPlayer(blackjack.DefaultRules(), nil)
				board := blackjack.NewScoreboard(player.Balance())
				player.Settle(board, blackjack.Lose, 10)
				return board.String()
			},
		},
	)
	return examples
}

// playerWith returns a player holding cards, dealt from a stacked deck
// (the last card listed is dealt first).
func playerWith(rules blackjack.Rules, cards string) *blackjack.Player {
	p := blackjack.NewPlayer(rules, nil)
	_ = p.DrawInitial(deck.NewFromCards(deck.MustParseCards(cards)...))
	return p
}

func dealerWith(cards string) *blackjack.Dealer {
	d := blackjack.NewDealer(blackjack.DefaultRules(), nil)
	_ = d.DrawInitial(deck.NewFromCards(deck.MustParseCards(cards)...))
	return d
}
