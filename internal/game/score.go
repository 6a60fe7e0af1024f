package game

import "github.com/amcsparron2793/blackjack/cards"

// Score computes the best blackjack total for a hand. Cards 2-10 count at
// face value, face cards count 10 and every Ace counts 1, after which a
// single Ace is promoted to 11 if that does not bust the hand. The
// evaluator is stateless and recomputes from the full hand on every call,
// so an Ace promoted earlier is naturally demoted once further draws would
// push the total past 21.
func Score(hand []cards.Card) int {
	total := 0
	aces := 0
	for _, c := range hand {
		total += c.Rank.BlackjackValue()
		if c.Rank == cards.Ace {
			aces++
		}
	}
	if aces > 0 && total+10 <= 21 {
		total += 10
	}
	return total
}

// IsBust reports whether a total is over 21
func IsBust(total int) bool {
	return total > 21
}
