package tui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/amcsparron2793/blackjack/cards"
)

// dropSender swallows messages the way an exited program does
type dropSender struct{}

func (dropSender) Send(tea.Msg) {}

func newDroppedBridge() *Bridge {
	return &Bridge{
		program: dropSender{},
		style:   cards.StyleUnicode,
		quit:    make(chan struct{}),
	}
}

func TestAskAfterQuitReturnsErrQuit(t *testing.T) {
	b := newDroppedBridge()
	b.Quit()

	if _, err := b.ReadyToPlay(); !errors.Is(err, ErrQuit) {
		t.Errorf("ReadyToPlay after quit = %v, want ErrQuit", err)
	}
}

func TestQuitUnblocksPendingPrompt(t *testing.T) {
	b := newDroppedBridge()

	done := make(chan error, 1)
	go func() {
		_, err := b.HitOrStand()
		done <- err
	}()

	b.Quit()
	select {
	case err := <-done:
		if !errors.Is(err, ErrQuit) {
			t.Errorf("pending prompt resolved with %v, want ErrQuit", err)
		}
	case <-time.After(time.Second):
		t.Fatal("prompt still blocked after Quit")
	}
}

func TestQuitIsIdempotent(t *testing.T) {
	b := newDroppedBridge()
	b.Quit()
	b.Quit()
}
