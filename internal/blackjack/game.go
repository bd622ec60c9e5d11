package blackjack

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"

	"github.com/lox/blackjack/internal/deck"
)

// EndReason explains why a session stopped
type EndReason int

const (
	EndInsufficientFunds EndReason = iota
	EndDeckExhausted
	EndInputClosed
	EndFailed
	EndInterrupted
)

// String returns a short description of the reason
func (r EndReason) String() string {
	switch r {
	case EndInsufficientFunds:
		return "insufficient funds"
	case EndDeckExhausted:
		return "deck exhausted"
	case EndInputClosed:
		return "input closed"
	case EndFailed:
		return "failed"
	case EndInterrupted:
		return "interrupted"
	default:
		return "unknown"
	}
}

// Summary describes a finished session
type Summary struct {
	SessionID string
	Rounds    int
	Board     Scoreboard
	Balance   int
	Reason    EndReason
	Elapsed   time.Duration
}

// Game runs rounds between one Player and the Dealer over a single deck.
type Game struct {
	deck   *deck.Deck
	ui     UI
	dealer *Dealer
	player *Player
	board  *Scoreboard
	round  int

	logger    *log.Logger
	clock     quartz.Clock
	sessionID string

	// mu guards the published snapshot, which other goroutines may read
	// while the game is blocked on a prompt.
	mu    sync.Mutex
	start time.Time
	last  Summary
}

// NewGame creates a game over an already shuffled deck. The game builds its
// own Dealer, Player and Scoreboard and wires them to ui.
func NewGame(rules Rules, d *deck.Deck, ui UI, opts ...GameOption) *Game {
	if d == nil {
		panic("deck is required for game creation")
	}
	if ui == nil {
		panic("ui is required for game creation")
	}

	g := &Game{
		deck: d,
		ui:   ui,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if g.clock == nil {
		g.clock = quartz.NewReal()
	}
	if g.sessionID == "" {
		g.sessionID = uuid.NewString()
	}
	g.logger = g.logger.With("session", g.sessionID)

	g.dealer = NewDealer(rules, ui)
	g.player = NewPlayer(rules, ui)
	g.board = NewScoreboard(g.player.Balance())
	g.start = g.clock.Now()
	g.publish()
	return g
}

// Player returns the game's player
func (g *Game) Player() *Player {
	return g.player
}

// Dealer returns the game's dealer
func (g *Game) Dealer() *Dealer {
	return g.dealer
}

// Scoreboard returns a snapshot of the session scoreboard
func (g *Game) Scoreboard() Scoreboard {
	return *g.board
}

// SessionID returns the identifier attached to every log line of this game
func (g *Game) SessionID() string {
	return g.sessionID
}

// Run plays rounds until the player cannot cover the minimum bet, the deck
// runs out, or the prompter reports closed input. Those three endings are
// normal and reported in the Summary; any other error is returned.
func (g *Game) Run() (Summary, error) {
	g.mu.Lock()
	g.start = g.clock.Now()
	g.mu.Unlock()
	g.logger.Info("Session started", "balance", g.player.Balance(), "cards", g.deck.Remaining())

	summary := func(reason EndReason) Summary {
		g.publish()
		s := g.Snapshot(reason)
		g.logger.Info("Session ended", "reason", reason, "rounds", s.Rounds, "balance", s.Balance, "elapsed", s.Elapsed)
		return s
	}

	for {
		if !g.player.CanBet() {
			g.ui.ShowInsufficientFunds(g.player.Balance())
			return summary(EndInsufficientFunds), nil
		}

		_, err := g.PlayRound()
		switch {
		case err == nil:
			continue
		case errors.Is(err, deck.ErrEmptyDeck):
			g.ui.ShowEmptyDeck()
			return summary(EndDeckExhausted), nil
		case errors.Is(err, ErrInputClosed):
			return summary(EndInputClosed), nil
		default:
			g.logger.Error("Round failed", "round", g.round, "error", err)
			return summary(EndFailed), err
		}
	}
}

// Snapshot returns the session state as of the last bet or settlement. It is
// safe to call from another goroutine while Run is waiting on a prompt.
func (g *Game) Snapshot(reason EndReason) Summary {
	g.mu.Lock()
	defer g.mu.Unlock()
	s := g.last
	s.Reason = reason
	s.Elapsed = g.clock.Since(g.start)
	return s
}

func (g *Game) publish() {
	s := Summary{
		SessionID: g.sessionID,
		Rounds:    g.round,
		Board:     *g.board,
		Balance:   g.player.Balance(),
	}
	g.mu.Lock()
	g.last = s
	g.mu.Unlock()
}

// PlayRound plays a single round: bet, deal, dealer draws, player draws,
// resolve and settle. A round cut short by an empty deck or closed input
// keeps the escrowed bet; only settlement pays anything back.
func (g *Game) PlayRound() (Outcome, error) {
	g.dealer.Reset()
	g.player.Reset()

	bet, err := g.player.ChooseBet()
	if err != nil {
		return 0, err
	}
	g.round++
	g.board.Money = g.player.Balance()
	g.publish()
	start := g.clock.Now()
	logger := g.logger.With("round", g.round)
	logger.Info("Round started", "bet", bet, "balance", g.player.Balance(), "cards", g.deck.Remaining())
	g.ui.ShowBet(bet, g.player.Balance())

	outcome, err := g.deal(logger)
	if err != nil {
		logger.Warn("Round aborted, bet forfeited", "bet", bet, "error", err)
		return 0, fmt.Errorf("round %d: %w", g.round, err)
	}

	g.player.Settle(g.board, outcome, bet)
	g.publish()
	logger.Info("Round settled",
		"outcome", outcome,
		"player", g.player.Total(),
		"dealer", g.dealer.Total(),
		"balance", g.player.Balance(),
		"duration", g.clock.Since(start))
	g.ui.ShowOutcome(outcome, *g.board)
	return outcome, nil
}

func (g *Game) deal(logger *log.Logger) (Outcome, error) {
	if err := g.dealer.DrawInitial(g.deck); err != nil {
		return 0, err
	}
	if err := g.player.DrawInitial(g.deck); err != nil {
		return 0, err
	}

	dealerTotal, err := g.dealer.DrawUntilThreshold(g.deck)
	if err != nil {
		return 0, err
	}
	logger.Debug("Dealer stands", "hand", g.dealer.Hand(), "total", dealerTotal)

	playerTotal, err := g.player.PlayTurn(g.deck)
	if err != nil {
		return 0, err
	}
	logger.Debug("Player stands", "hand", g.player.Hand(), "total", playerTotal)

	return Resolve(playerTotal, dealerTotal), nil
}
