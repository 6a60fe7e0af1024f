package game

import (
	"testing"

	"github.com/amcsparron2793/blackjack/cards"
)

func TestDisplayName(t *testing.T) {
	if got := NewPlayer().DisplayName(); got != "Player 1" {
		t.Errorf("plain player name = %q, want %q", got, "Player 1")
	}
	if got := NewDealer(cards.UnicodeCardBack, nil).DisplayName(); got != "Dealer" {
		t.Errorf("dealer name = %q, want %q", got, "Dealer")
	}
	p := NewPersistentPlayer(1, 1, "Andrew McSparron", 250)
	if got := p.DisplayName(); got != "Andrew McSparron" {
		t.Errorf("ledger player name = %q, want the stored name", got)
	}
}

func TestVisibleHandConcealsHoleCard(t *testing.T) {
	d := NewDealer(cards.UnicodeCardBack, nil)
	d.Hand = hand(cards.Ace, cards.King)

	visible := d.VisibleHand(cards.StyleUnicode)
	if len(visible) != 2 {
		t.Fatalf("visible hand length = %d, want 2", len(visible))
	}
	if visible[0] != cards.UnicodeCardBack {
		t.Errorf("hole card shows %q, want the card back", visible[0])
	}
	if visible[1] == cards.UnicodeCardBack {
		t.Error("second card should not be concealed")
	}

	// The projection is derived, so a drawn card appears immediately.
	d.Hand = append(d.Hand, cards.Card{Rank: 5, Suit: cards.Clubs})
	visible = d.VisibleHand(cards.StyleUnicode)
	if len(visible) != 3 {
		t.Fatalf("visible hand length after draw = %d, want 3", len(visible))
	}
	if visible[0] != cards.UnicodeCardBack {
		t.Error("hole card no longer concealed after a draw")
	}
}

func TestRevealExposesHoleCard(t *testing.T) {
	d := NewDealer(cards.PlaintextCardBack, nil)
	d.Hand = hand(cards.Ace, cards.King)

	d.Reveal()
	visible := d.VisibleHand(cards.StylePlaintext)
	if visible[0] == cards.PlaintextCardBack {
		t.Error("hole card still concealed after Reveal")
	}
}

func TestPlayerHandAlwaysVisible(t *testing.T) {
	p := NewPlayer()
	p.Hand = hand(cards.Ace, cards.King)
	for _, token := range p.VisibleHand(cards.StyleUnicode) {
		if token == cards.UnicodeCardBack {
			t.Error("player hand contains a concealed card")
		}
	}
}

func TestHandSummaryOmitsConcealedTotal(t *testing.T) {
	d := NewDealer(cards.UnicodeCardBack, nil)
	d.Hand = hand(cards.Ace, cards.King)

	concealed := d.HandSummary(cards.StyleUnicode)
	if containsTotal(concealed) {
		t.Errorf("concealed summary leaks the total: %q", concealed)
	}
	d.Reveal()
	revealed := d.HandSummary(cards.StyleUnicode)
	if !containsTotal(revealed) {
		t.Errorf("revealed summary missing the total: %q", revealed)
	}
}

func containsTotal(s string) bool {
	for i := 0; i+6 <= len(s); i++ {
		if s[i:i+6] == "total:" {
			return true
		}
	}
	return false
}

func TestResetForNewHandPreservesIdentity(t *testing.T) {
	p := NewPersistentPlayer(7, 42, "Andrew McSparron", 200)
	p.Hand = hand(cards.King, cards.King, 5)
	p.Chips = 180
	p.BetAmount = 20
	p.HasBet = true
	p.Busted = true
	p.LastAction = ActionHit

	p.ResetForNewHand()

	if len(p.Hand) != 0 {
		t.Error("hand not cleared")
	}
	if p.BetAmount != 0 || p.HasBet || p.Busted || p.LastAction != ActionNone {
		t.Error("per-hand flags not cleared")
	}
	if p.Chips != 180 {
		t.Errorf("chips changed on reset: %d, want 180", p.Chips)
	}
	if p.PlayerID != 7 || p.AccountID != 42 || p.Name != "Andrew McSparron" {
		t.Error("ledger identity lost on reset")
	}
}
