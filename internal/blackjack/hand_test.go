package blackjack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotal(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		cards string
		want  int
	}{
		{"blackjack", "AS KH", 21},
		{"two aces", "AS AH", 12},
		{"no ace over 21", "2S 2C 8D 10H", 22},
		{"ace falls back to one", "AS 8D 10H", 19},
		{"three low cards", "2S 2C 8D", 12},
		{"court cards", "JS QH", 20},
		{"two aces and eight", "AS AD 8C", 20},
		{"two aces and nine", "AS AD 9C", 21},
		{"three aces", "AS AD AC", 13},
		{"soft eleven promotes", "AS 5D 5C", 21},
		{"two aces and ten", "AS AD 10C", 12},
		{"four aces", "AS AD AC AH", 14},
		{"fourteen", "9D 5C", 14},
		{"empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hand(tt.cards).Total())
		})
	}
}

func TestTotalIgnoresOrderAndSuit(t *testing.T) {
	t.Parallel()
	orders := []string{
		"AS 7D AC 3H",
		"7D AS 3H AC",
		"3H AC 7D AS",
		"AH 7S AD 3C",
	}
	want := hand(orders[0]).Total()
	for _, o := range orders {
		assert.Equal(t, want, hand(o).Total(), o)
	}
}

func TestTotalIsPure(t *testing.T) {
	t.Parallel()
	h := hand("AS 9D")
	before := h.String()

	assert.Equal(t, 20, Total(h))
	assert.Equal(t, 20, Total(h))
	assert.Equal(t, before, h.String())
}

func TestHandString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "[10♥ 8♦]", hand("10H 8D").String())
	assert.Equal(t, "[]", Hand(nil).String())
}
