package blackjack

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/blackjack/internal/deck"
)

func TestDealerDrawInitial(t *testing.T) {
	t.Parallel()
	ui := &scriptedUI{}
	d := NewDealer(DefaultRules(), ui)
	cards := deck.NewFromCards(deck.MustParseCards("2S 2C 8D 10H")...)

	require.NoError(t, d.DrawInitial(cards))

	assert.Equal(t, hand("10H 8D"), d.Hand())
	assert.Equal(t, 18, d.Total())
	assert.Equal(t, 2, cards.Remaining())
	require.Len(t, ui.hands, 1)
	assert.Equal(t, DealerRole, ui.hands[0].role)
	assert.Equal(t, 18, ui.hands[0].total)
}

func TestDealerDrawUntilThreshold(t *testing.T) {
	t.Parallel()
	ui := &scriptedUI{}
	d := NewDealer(DefaultRules(), ui)
	cards := deck.NewFromCards(deck.MustParseCards("2S 2C 8D 10H")...)

	total, err := d.DrawUntilThreshold(cards)
	require.NoError(t, err)

	assert.Equal(t, 18, total)
	assert.Equal(t, DealerStanding, d.State())
	require.Len(t, ui.hands, 2)
	assert.Equal(t, 10, ui.hands[0].total)
	assert.Equal(t, 18, ui.hands[1].total)
}

func TestDealerStandsAboveLimitWithoutDrawing(t *testing.T) {
	t.Parallel()
	d := NewDealer(DefaultRules(), nil)
	cards := stacked("10S 6H 2C")

	require.NoError(t, d.DrawInitial(cards))
	total, err := d.DrawUntilThreshold(cards)
	require.NoError(t, err)

	assert.Equal(t, 16, total)
	assert.Equal(t, 1, cards.Remaining())
}

func TestDealerDrawsAtExactlyLimitAndCanBust(t *testing.T) {
	t.Parallel()
	d := NewDealer(DefaultRules(), nil)
	cards := stacked("10S 4H KC")

	require.NoError(t, d.DrawInitial(cards))
	assert.Equal(t, 14, d.Total())
	assert.Equal(t, DealerDealing, d.State())

	total, err := d.DrawUntilThreshold(cards)
	require.NoError(t, err)
	assert.Equal(t, 24, total)
	assert.Equal(t, DealerStanding, d.State())
}

func TestDealerEmptyDeck(t *testing.T) {
	t.Parallel()
	d := NewDealer(DefaultRules(), nil)

	err := d.DrawInitial(stacked("10S"))
	assert.True(t, errors.Is(err, deck.ErrEmptyDeck))

	d.Reset()
	_, err = d.DrawUntilThreshold(stacked("2S 3S"))
	assert.True(t, errors.Is(err, deck.ErrEmptyDeck))
	assert.Equal(t, DealerDealing, d.State())
}

func TestDealerReset(t *testing.T) {
	t.Parallel()
	d := NewDealer(DefaultRules(), nil)
	cards := stacked("10S 8H")
	_, err := d.DrawUntilThreshold(cards)
	require.NoError(t, err)

	d.Reset()
	assert.Empty(t, d.Hand())
	assert.Equal(t, DealerDealing, d.State())
}

func TestDealerFormatting(t *testing.T) {
	t.Parallel()
	d := NewDealer(DefaultRules(), nil)
	require.NoError(t, d.DrawInitial(stacked("9D 5C")))

	assert.Equal(t, "Dealer's Card Deck: [9♦ 5♣]", d.String())
	assert.Equal(t, "Dealer([9♦ 5♣])", d.GoString())
}
