// Package cards provides the playing card and shoe primitives for blackjack.
package cards

import "fmt"

// Suit represents a card suit
type Suit uint8

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// Glyph returns the Unicode symbol for the suit
func (s Suit) Glyph() string {
	switch s {
	case Spades:
		return "♤"
	case Hearts:
		return "♡"
	case Diamonds:
		return "♢"
	case Clubs:
		return "♧"
	}
	return "?"
}

// Name returns the plaintext name for the suit
func (s Suit) Name() string {
	switch s {
	case Spades:
		return "Spade"
	case Hearts:
		return "Heart"
	case Diamonds:
		return "Diamond"
	case Clubs:
		return "Club"
	}
	return "Unknown"
}

// Suits lists all four suits in deck order
var Suits = [4]Suit{Spades, Hearts, Diamonds, Clubs}

// Rank represents a card rank, 1 (Ace) through 13 (King)
type Rank uint8

const (
	Ace   Rank = 1
	Jack  Rank = 11
	Queen Rank = 12
	King  Rank = 13
)

// Name returns the display name for the rank: face names for
// Ace/Jack/Queen/King, the number otherwise.
func (r Rank) Name() string {
	switch r {
	case Ace:
		return "Ace"
	case Jack:
		return "Jack"
	case Queen:
		return "Queen"
	case King:
		return "King"
	}
	return fmt.Sprintf("%d", int(r))
}

// BlackjackValue returns the scoring value of the rank. Face cards count
// as 10 and an Ace counts as 1; promotion to 11 is the evaluator's job.
func (r Rank) BlackjackValue() int {
	if r >= Jack {
		return 10
	}
	return int(r)
}

// IsFace reports whether the rank is Jack, Queen or King
func (r Rank) IsFace() bool {
	return r >= Jack
}

// Card represents a playing card. Cards are value objects with no identity
// beyond rank and suit.
type Card struct {
	Rank Rank
	Suit Suit
}

// String returns a short representation like "Ace♤" or "10♡"
func (c Card) String() string {
	return c.Rank.Name() + c.Suit.Glyph()
}

// Style selects between Unicode and plaintext card rendering
type Style uint8

const (
	StyleUnicode Style = iota
	StylePlaintext
)

// Card back tokens. The game compares these for identity only; what the
// token looks like is a presentation choice.
const (
	UnicodeCardBack   = "\U0001F0A0"
	PlaintextCardBack = "xxxx"
)

// Back returns the card-back token for the style
func (s Style) Back() string {
	if s == StylePlaintext {
		return PlaintextCardBack
	}
	return UnicodeCardBack
}

// Render formats the card for the given style
func (c Card) Render(style Style) string {
	if style == StylePlaintext {
		return fmt.Sprintf("%s of %ss", c.Rank.Name(), c.Suit.Name())
	}
	return c.String()
}
