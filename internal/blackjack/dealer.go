package blackjack

import "fmt"

// DealerState tracks where the dealer is in its drawing phase
type DealerState int

const (
	DealerDealing DealerState = iota
	DealerStanding
)

// String returns the state name
func (s DealerState) String() string {
	if s == DealerStanding {
		return "Standing"
	}
	return "Dealing"
}

// Dealer draws by a fixed rule: keep hitting while the total is at or below
// the dealer limit.
type Dealer struct {
	limit    int
	hand     Hand
	state    DealerState
	observer HandObserver
}

// NewDealer creates a dealer that reports each draw to observer (which may be nil)
func NewDealer(rules Rules, observer HandObserver) *Dealer {
	return &Dealer{
		limit:    rules.DealerLimit,
		observer: observer,
	}
}

// Reset clears the hand for a new round
func (d *Dealer) Reset() {
	d.hand = nil
	d.state = DealerDealing
}

// DrawInitial deals the dealer's two opening cards
func (d *Dealer) DrawInitial(src CardSource) error {
	for range 2 {
		if err := d.draw(src); err != nil {
			return err
		}
	}
	d.show()
	return nil
}

// DrawUntilThreshold keeps drawing while the total is at or below the dealer
// limit and returns the final total, which may be a bust.
func (d *Dealer) DrawUntilThreshold(src CardSource) (int, error) {
	for d.Total() <= d.limit {
		if err := d.draw(src); err != nil {
			return d.Total(), err
		}
		d.show()
	}
	d.state = DealerStanding
	return d.Total(), nil
}

// Total returns the dealer's hand value
func (d *Dealer) Total() int {
	return d.hand.Total()
}

// Hand returns a copy of the dealer's cards
func (d *Dealer) Hand() Hand {
	return append(Hand(nil), d.hand...)
}

// State returns the current drawing state
func (d *Dealer) State() DealerState {
	return d.state
}

// String renders the dealer's cards, e.g. "Dealer's Card Deck: [9♦ 5♣]"
func (d *Dealer) String() string {
	return fmt.Sprintf("Dealer's Card Deck: %s", d.hand)
}

// GoString renders the dealer for %#v, e.g. "Dealer([9♦ 5♣])"
func (d *Dealer) GoString() string {
	return fmt.Sprintf("Dealer(%s)", d.hand)
}

func (d *Dealer) draw(src CardSource) error {
	card, err := src.Draw()
	if err != nil {
		return fmt.Errorf("dealer draw: %w", err)
	}
	d.hand = append(d.hand, card)
	return nil
}

func (d *Dealer) show() {
	if d.observer != nil {
		d.observer.ShowHand(DealerRole, d.Hand())
	}
}
