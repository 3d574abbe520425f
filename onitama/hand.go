package onitama

import "fmt"

// A Shuffler supplies random permutations. *rand.Rand from math/rand
// and golang.org/x/exp/rand both satisfy it.
type Shuffler interface {
	Perm(n int) []int
}

const handSize = 2

// DealSize is the number of cards in play.
const DealSize = 2*handSize + 1

// A Hand records the two cards held by each side and the card in
// reserve. Hands are values; Play returns a new one. Hands must come
// from NewHand or DealHand; the zero Hand holds no cards and rejects
// every play.
type Hand struct {
	red, blue [handSize]Card
	reserve   Card
	dealt     bool
}

// NewHand deals cards[0:2] to Red, cards[2:4] to Blue and cards[4] to
// the reserve.
func NewHand(cards []Card) (Hand, error) {
	if len(cards) != DealSize {
		return Hand{}, fmt.Errorf("%w: want %d cards, got %d", ErrInvalidDeal, DealSize, len(cards))
	}
	var seen [NumCards]bool
	for _, c := range cards {
		if c >= NumCards {
			return Hand{}, fmt.Errorf("%w: bad card %d", ErrInvalidDeal, int(c))
		}
		if seen[c] {
			return Hand{}, fmt.Errorf("%w: %s dealt twice", ErrInvalidDeal, c)
		}
		seen[c] = true
	}
	return Hand{
		red:     [handSize]Card{cards[0], cards[1]},
		blue:    [handSize]Card{cards[2], cards[3]},
		reserve: cards[4],
		dealt:   true,
	}, nil
}

// DealHand draws DealSize distinct cards uniformly from the catalog
// using r.
func DealHand(r Shuffler) Hand {
	perm := r.Perm(NumCards)
	cards := make([]Card, DealSize)
	for i := range cards {
		cards[i] = Card(perm[i])
	}
	h, err := NewHand(cards)
	if err != nil {
		panic(fmt.Sprintf("deal: %v", err))
	}
	return h
}

func (h Hand) side(color Color) ([handSize]Card, bool) {
	switch color {
	case Red:
		return h.red, true
	case Blue:
		return h.blue, true
	}
	return [handSize]Card{}, false
}

// Cards returns the cards held by color, or nil for NoColor.
func (h Hand) Cards(color Color) []Card {
	s, ok := h.side(color)
	if !ok {
		return nil
	}
	return []Card{s[0], s[1]}
}

func (h Hand) Reserve() Card {
	return h.reserve
}

func (h Hand) Holds(color Color, card Card) bool {
	s, ok := h.side(color)
	if !ok || !h.dealt {
		return false
	}
	return s[0] == card || s[1] == card
}

// Play returns the hand after color plays card: card goes to the
// reserve and the old reserve takes its place in color's hand. h is
// unchanged.
func (h Hand) Play(color Color, card Card) (Hand, error) {
	if !h.Holds(color, card) {
		return h, fmt.Errorf("play %s by %v: %w", card, color, ErrInvalidPlay)
	}
	next := h
	switch color {
	case Red:
		next.red = swapIn(next.red, card, h.reserve)
	case Blue:
		next.blue = swapIn(next.blue, card, h.reserve)
	}
	next.reserve = card
	return next, nil
}

func swapIn(cards [handSize]Card, out, in Card) [handSize]Card {
	for i := range cards {
		if cards[i] == out {
			cards[i] = in
		}
	}
	return cards
}

// All returns the five cards in play: Red's, Blue's, then the reserve.
func (h Hand) All() []Card {
	return []Card{h.red[0], h.red[1], h.blue[0], h.blue[1], h.reserve}
}

// StartingColor is the affinity of the reserve card. In the physical
// game that side moves first; nothing here enforces it.
func (h Hand) StartingColor() Color {
	return h.reserve.Affinity()
}

// Hash combines the card constants of z keyed by holder, with the
// reserve keyed by NoColor.
func (h Hand) Hash(z *Zobrist) uint64 {
	var out uint64
	for _, c := range h.red {
		out ^= z.Card(c, Red)
	}
	for _, c := range h.blue {
		out ^= z.Card(c, Blue)
	}
	return out ^ z.Card(h.reserve, NoColor)
}

func (h Hand) String() string {
	return fmt.Sprintf("red=[%s %s] blue=[%s %s] reserve=%s",
		h.red[0], h.red[1], h.blue[0], h.blue[1], h.reserve)
}
