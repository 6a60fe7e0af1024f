package cards

import (
	"errors"
	"testing"

	"github.com/amcsparron2793/blackjack/internal/randutil"
)

func drainAll(t *testing.T, s *Shoe) []Card {
	t.Helper()
	var drawn []Card
	for !s.IsEmpty() {
		c, err := s.Draw()
		if err != nil {
			t.Fatalf("Draw failed with %d cards left: %v", s.Size(), err)
		}
		drawn = append(drawn, c)
	}
	return drawn
}

func TestNewShoeHoldsFullDeck(t *testing.T) {
	s := NewShoe(randutil.New(1))
	if s.Size() != 52 {
		t.Fatalf("new shoe size = %d, want 52", s.Size())
	}

	seen := make(map[Card]bool)
	for _, c := range drainAll(t, s) {
		if seen[c] {
			t.Errorf("duplicate card %s", c)
		}
		seen[c] = true
	}
	if len(seen) != 52 {
		t.Errorf("shoe held %d distinct cards, want 52", len(seen))
	}
}

func TestShufflePreservesDeck(t *testing.T) {
	s := NewShoe(randutil.New(7))
	s.Shuffle()
	if s.Size() != 52 {
		t.Fatalf("shuffled shoe size = %d, want 52", s.Size())
	}

	seen := make(map[Card]bool)
	for _, c := range drainAll(t, s) {
		seen[c] = true
	}
	if len(seen) != 52 {
		t.Errorf("shuffle lost cards: %d distinct, want 52", len(seen))
	}
}

func TestDrawEmptyShoe(t *testing.T) {
	s := NewShoe(randutil.New(1))
	drainAll(t, s)

	if _, err := s.Draw(); !errors.Is(err, ErrShoeEmpty) {
		t.Errorf("Draw on empty shoe = %v, want ErrShoeEmpty", err)
	}
}

func TestReloadRestoresFullDeck(t *testing.T) {
	s := NewShoe(randutil.New(3))
	drainAll(t, s)

	s.Reload()
	if s.Size() != 52 {
		t.Errorf("reloaded shoe size = %d, want 52", s.Size())
	}
	if _, err := s.Draw(); err != nil {
		t.Errorf("Draw after reload failed: %v", err)
	}
}

func TestLowShoeCallback(t *testing.T) {
	var warnings []int
	s := NewShoe(randutil.New(1),
		WithLowWaterMark(15),
		WithLowShoeFunc(func(remaining int) { warnings = append(warnings, remaining) }),
	)

	// Draw down to 16 cards; no warning should have fired yet.
	for s.Size() > 16 {
		if _, err := s.Draw(); err != nil {
			t.Fatal(err)
		}
	}
	if len(warnings) != 0 {
		t.Fatalf("warning fired above the low-water mark: %v", warnings)
	}

	// The next draw leaves 15 and must warn.
	if _, err := s.Draw(); err != nil {
		t.Fatal(err)
	}
	if len(warnings) != 1 || warnings[0] != 15 {
		t.Errorf("warnings after crossing the mark = %v, want [15]", warnings)
	}

	// Every further draw keeps warning with the new remaining count.
	if _, err := s.Draw(); err != nil {
		t.Fatal(err)
	}
	if len(warnings) != 2 || warnings[1] != 14 {
		t.Errorf("warnings = %v, want [15 14]", warnings)
	}
}

func TestIsRunningLow(t *testing.T) {
	s := NewShoe(randutil.New(1), WithLowWaterMark(50))
	if s.IsRunningLow() {
		t.Error("fresh 52-card shoe reported running low with mark 50")
	}
	if _, err := s.Draw(); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Draw(); err != nil {
		t.Fatal(err)
	}
	if !s.IsRunningLow() {
		t.Error("shoe at the low-water mark did not report running low")
	}
}
