package cards

import (
	"errors"
	rand "math/rand/v2"
)

// ErrShoeEmpty is returned when drawing from a shoe with no cards left
var ErrShoeEmpty = errors.New("shoe has run out of cards")

// DefaultLowWaterMark is the remaining-card count at which the shoe starts
// warning that it is running low.
const DefaultLowWaterMark = 15

// Shoe is the drawable sequence of cards for one play session. It holds a
// single 52-card deck and is owned by exactly one game.
type Shoe struct {
	cards     []Card
	rng       *rand.Rand
	lowWater  int
	onRunning func(remaining int)
}

// ShoeOption configures a Shoe
type ShoeOption func(*Shoe)

// WithLowWaterMark overrides the low-shoe warning threshold
func WithLowWaterMark(n int) ShoeOption {
	return func(s *Shoe) { s.lowWater = n }
}

// WithLowShoeFunc installs a callback fired after a draw leaves the shoe at
// or below its low-water mark. The callback must not draw from the shoe.
func WithLowShoeFunc(fn func(remaining int)) ShoeOption {
	return func(s *Shoe) { s.onRunning = fn }
}

// NewShoe creates a shoe holding exactly the 52 rank and suit combinations,
// unshuffled. The rng is used for all subsequent shuffles; pass one from
// randutil for reproducible games.
func NewShoe(rng *rand.Rand, opts ...ShoeOption) *Shoe {
	s := &Shoe{
		cards:    freshDeck(),
		rng:      rng,
		lowWater: DefaultLowWaterMark,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func freshDeck() []Card {
	deck := make([]Card, 0, 52)
	for _, suit := range Suits {
		for rank := Rank(1); rank <= King; rank++ {
			deck = append(deck, Card{Rank: rank, Suit: suit})
		}
	}
	return deck
}

// Shuffle permutes the remaining cards in place using Fisher-Yates
func (s *Shoe) Shuffle() {
	for i := len(s.cards) - 1; i > 0; i-- {
		j := s.rng.IntN(i + 1)
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	}
}

// Draw removes and returns the first card. It fails with ErrShoeEmpty when
// no cards remain.
func (s *Shoe) Draw() (Card, error) {
	if len(s.cards) == 0 {
		return Card{}, ErrShoeEmpty
	}
	card := s.cards[0]
	s.cards = s.cards[1:]
	if s.IsRunningLow() && s.onRunning != nil {
		s.onRunning(len(s.cards))
	}
	return card, nil
}

// Reload rebuilds the full 52-card deck and shuffles it
func (s *Shoe) Reload() {
	s.cards = freshDeck()
	s.Shuffle()
}

// Size returns the number of cards left to draw
func (s *Shoe) Size() int {
	return len(s.cards)
}

// IsEmpty reports whether the shoe has run out
func (s *Shoe) IsEmpty() bool {
	return len(s.cards) == 0
}

// IsRunningLow reports whether the shoe is at or below its low-water mark
func (s *Shoe) IsRunningLow() bool {
	return len(s.cards) <= s.lowWater
}
