package game

import (
	"testing"

	"github.com/amcsparron2793/blackjack/cards"
)

func hand(ranks ...cards.Rank) []cards.Card {
	out := make([]cards.Card, len(ranks))
	for i, r := range ranks {
		out[i] = cards.Card{Rank: r, Suit: cards.Suits[i%4]}
	}
	return out
}

func TestScore(t *testing.T) {
	tests := []struct {
		name  string
		ranks []cards.Rank
		want  int
	}{
		{"empty hand", nil, 0},
		{"lone ace promotes", []cards.Rank{cards.Ace}, 11},
		{"two aces promote one", []cards.Rank{cards.Ace, cards.Ace}, 12},
		{"three aces promote one", []cards.Rank{cards.Ace, cards.Ace, cards.Ace}, 13},
		{"ace plus king is blackjack", []cards.Rank{cards.Ace, cards.King}, 21},
		{"promotion capped at 21", []cards.Rank{cards.Ace, cards.Ace, 9}, 21},
		{"ace demoted after draw", []cards.Rank{cards.Ace, 5, 5}, 21},
		{"ace demoted to avoid bust", []cards.Rank{cards.Ace, cards.King, 5}, 16},
		{"two aces against a king", []cards.Rank{cards.King, cards.King, cards.Ace}, 21},
		{"face cards count ten", []cards.Rank{cards.Jack, cards.Queen}, 20},
		{"bust is reported as-is", []cards.Rank{cards.King, cards.Queen, 5}, 25},
		{"pips at face value", []cards.Rank{2, 3, 4}, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(hand(tt.ranks...)); got != tt.want {
				t.Errorf("Score(%v) = %d, want %d", tt.ranks, got, tt.want)
			}
		})
	}
}

func TestScoreIgnoresSuit(t *testing.T) {
	for _, suit := range cards.Suits {
		h := []cards.Card{
			{Rank: cards.Ace, Suit: suit},
			{Rank: cards.King, Suit: suit},
		}
		if got := Score(h); got != 21 {
			t.Errorf("Score with suit %s = %d, want 21", suit.Name(), got)
		}
	}
}

func TestIsBust(t *testing.T) {
	for _, tt := range []struct {
		total int
		want  bool
	}{
		{20, false},
		{21, false},
		{22, true},
	} {
		if got := IsBust(tt.total); got != tt.want {
			t.Errorf("IsBust(%d) = %v, want %v", tt.total, got, tt.want)
		}
	}
}
