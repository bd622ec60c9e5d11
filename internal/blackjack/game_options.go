package blackjack

import (
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
)

// GameOption configures a Game during creation.
type GameOption func(*Game)

// WithLogger sets the structured logger used for round events.
func WithLogger(logger *log.Logger) GameOption {
	return func(g *Game) {
		g.logger = logger
	}
}

// WithClock sets the clock used to time rounds and the session.
func WithClock(clock quartz.Clock) GameOption {
	return func(g *Game) {
		g.clock = clock
	}
}

// WithSessionID overrides the generated session identifier.
func WithSessionID(id string) GameOption {
	return func(g *Game) {
		g.sessionID = id
	}
}
