// Package console is the line-oriented terminal front end for the game.
// Prompts take a numbered choice and re-prompt on anything else.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/blackjack"
	"github.com/lox/blackjack/internal/deck"
)

// InvalidInputError is a prompt answer that is not a number or is not one of
// the listed choices. The console reports it and asks again.
type InvalidInputError struct {
	Input  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %q: %s", e.Input, e.Reason)
}

// Console reads answers from in and writes the game to out
type Console struct {
	in     *bufio.Scanner
	out    io.Writer
	styles *Styles
	logger *log.Logger
}

// Option configures a Console
type Option func(*config)

type config struct {
	color  bool
	logger *log.Logger
}

// WithColor enables or disables ANSI styling
func WithColor(color bool) Option {
	return func(c *config) {
		c.color = color
	}
}

// WithLogger sets the logger that records rejected input
func WithLogger(logger *log.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// New creates a console over the given reader and writer
func New(in io.Reader, out io.Writer, opts ...Option) *Console {
	cfg := config{color: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Console{
		in:     bufio.NewScanner(in),
		out:    out,
		styles: NewStyles(NewRenderer(out, cfg.color)),
		logger: cfg.logger.WithPrefix("console"),
	}
}

// ChooseBet lists the allowed bets and returns the selected amount
func (c *Console) ChooseBet(balance int, options []int) (int, error) {
	for {
		c.printf("You have %s in your account.\n", c.styles.Money.Render(fmt.Sprintf("$%d", balance)))
		c.printf("How much do you want to bet?\n")
		for i, v := range options {
			c.printf("(%d) %d  ", i+1, v)
		}
		c.printf("\n%s", c.styles.Prompt.Render("Enter the number: "))

		choice, err := c.readChoice(len(options))
		if err != nil {
			if isInvalid(err) {
				c.printf("%s\n", c.styles.Warning.Render("Please select the number."))
				continue
			}
			return 0, err
		}
		return options[choice-1], nil
	}
}

// ChooseAction asks whether to hit or stand
func (c *Console) ChooseAction(hand blackjack.Hand) (blackjack.Action, error) {
	for {
		labels := make([]string, len(blackjack.Actions))
		for i, a := range blackjack.Actions {
			labels[i] = fmt.Sprintf("(%d) %s", i+1, a)
		}
		c.printf("\n%s\n", c.styles.Prompt.Render(strings.Join(labels, " ")))

		choice, err := c.readChoice(len(blackjack.Actions))
		if err != nil {
			if isInvalid(err) {
				c.printf("%s\n", c.styles.Warning.Render("Please enter the number."))
				continue
			}
			return blackjack.Stand, err
		}
		return blackjack.Actions[choice-1], nil
	}
}

// ShowHand prints a hand and its running total
func (c *Console) ShowHand(role blackjack.Role, hand blackjack.Hand) {
	c.printf("%s: %s | Sum: %s\n",
		c.styles.Label.Render(role.String()),
		c.formatCards(hand),
		c.styles.Total.Render(strconv.Itoa(hand.Total())))
}

// ShowBet confirms the escrowed bet
func (c *Console) ShowBet(bet, balance int) {
	c.printf("You bet %s, and now you have %s remain.\n",
		c.styles.Money.Render(fmt.Sprintf("$%d", bet)),
		c.styles.Money.Render(fmt.Sprintf("$%d", balance)))
}

// ShowOutcome prints the round result followed by the scoreboard
func (c *Console) ShowOutcome(outcome blackjack.Outcome, board blackjack.Scoreboard) {
	switch outcome {
	case blackjack.Win:
		c.printf("%s\n", c.styles.Win.Render("Player Win!"))
	case blackjack.Lose:
		c.printf("%s\n", c.styles.Lose.Render("Player Lose!"))
	default:
		c.printf("%s\n", c.styles.Draw.Render("Draw!"))
	}
	c.printf("%s\n\n", board)
}

// ShowEmptyDeck reports that the session ended because the deck ran out
func (c *Console) ShowEmptyDeck() {
	c.printf("%s\n", c.styles.Warning.Render("EmptyDeckError: Game is over. There is no more card available."))
}

// ShowInsufficientFunds reports that the balance no longer covers a bet
func (c *Console) ShowInsufficientFunds(balance int) {
	c.printf("%s\n", c.styles.Warning.Render("Sorry, you don't have enough money to bet."))
}

// ShowTitle prints the banner shown before play starts
func (c *Console) ShowTitle(title string) {
	c.printf("%s\n\n", c.styles.Title.Render(title))
}

// ShowSummary prints the end-of-session report
func (c *Console) ShowSummary(s blackjack.Summary) {
	c.printf("%s\n", c.styles.Muted.Render(fmt.Sprintf("Game over (%s) after %d rounds.", s.Reason, s.Board.Rounds())))
	c.printf("Final score: %s\n", s.Board)
}

func (c *Console) formatCards(hand blackjack.Hand) string {
	parts := make([]string, len(hand))
	for i, card := range hand {
		parts[i] = c.formatCard(card)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func (c *Console) formatCard(card deck.Card) string {
	if card.IsRed() {
		return c.styles.CardRed.Render(card.String())
	}
	return c.styles.CardBlack.Render(card.String())
}

// readChoice reads one line and parses it as a 1-based index into n choices.
func (c *Console) readChoice(n int) (int, error) {
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return 0, fmt.Errorf("read input: %w", err)
		}
		return 0, blackjack.ErrInputClosed
	}
	line := c.in.Text()
	choice, err := ParseChoice(line, n)
	if err != nil {
		c.logger.Debug("Rejected input", "input", line, "error", err)
		return 0, err
	}
	return choice, nil
}

// ParseChoice parses a 1-based menu selection out of n choices.
func ParseChoice(input string, n int) (int, error) {
	trimmed := strings.TrimSpace(input)
	choice, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, &InvalidInputError{Input: trimmed, Reason: "not a number"}
	}
	if choice < 1 || choice > n {
		return 0, &InvalidInputError{Input: trimmed, Reason: fmt.Sprintf("choose between 1 and %d", n)}
	}
	return choice, nil
}

func isInvalid(err error) bool {
	var invalid *InvalidInputError
	return errors.As(err, &invalid)
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

var _ blackjack.UI = (*Console)(nil)
