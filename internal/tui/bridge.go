package tui

import (
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/amcsparron2793/blackjack/cards"
	"github.com/amcsparron2793/blackjack/internal/game"
)

// sender is the slice of tea.Program the bridge needs
type sender interface {
	Send(msg tea.Msg)
}

// Bridge connects the engine to the running Bubble Tea program. It
// implements both game.Prompter and game.Reporter: prompts block the
// engine goroutine on a reply channel while the model collects input.
type Bridge struct {
	program  sender
	style    cards.Style
	quit     chan struct{}
	quitOnce sync.Once
}

// NewBridge creates a bridge for the given program
func NewBridge(program *tea.Program, style cards.Style) *Bridge {
	return &Bridge{
		program: program,
		style:   style,
		quit:    make(chan struct{}),
	}
}

// Quit unblocks any pending or future prompt with ErrQuit. Call it once
// the program has exited, when sent messages would otherwise vanish and
// leave the engine goroutine waiting forever.
func (b *Bridge) Quit() {
	b.quitOnce.Do(func() { close(b.quit) })
}

func (b *Bridge) ask(kind promptKind, question string) (promptReply, error) {
	reply := make(chan promptReply, 1)
	b.program.Send(&promptMsg{kind: kind, question: question, reply: reply})
	select {
	case r := <-reply:
		return r, r.err
	case <-b.quit:
		return promptReply{}, ErrQuit
	}
}

func (b *Bridge) log(line string) {
	b.program.Send(logMsg{line: line})
}

// ReadyToPlay implements game.Prompter
func (b *Bridge) ReadyToPlay() (bool, error) {
	r, err := b.ask(promptYesNo, "Ready to play?")
	return r.yes, err
}

// BetAmount implements game.Prompter
func (b *Bridge) BetAmount(available int) (int, error) {
	r, err := b.ask(promptBet, fmt.Sprintf("How much would you like to bet? ($%d available)", available))
	return r.amount, err
}

// HitOrStand implements game.Prompter
func (b *Bridge) HitOrStand() (game.Action, error) {
	r, err := b.ask(promptMove, "Hit or stand?")
	return r.action, err
}

// PlayAgain implements game.Prompter
func (b *Bridge) PlayAgain() (bool, error) {
	r, err := b.ask(promptYesNo, "Play another hand?")
	return r.yes, err
}

// ConfirmRebuy implements game.Prompter
func (b *Bridge) ConfirmRebuy(p *game.Participant) (bool, error) {
	r, err := b.ask(promptYesNo, fmt.Sprintf("%s is bankrupt. Buy back in?", p.DisplayName()))
	return r.yes, err
}

// ConfirmShoeReload implements game.Prompter
func (b *Bridge) ConfirmShoeReload() (bool, error) {
	r, err := b.ask(promptYesNo, "The shoe is out of cards. Reload it?")
	return r.yes, err
}

// ShowTable implements game.Reporter
func (b *Bridge) ShowTable(player, dealer *game.Participant) {
	b.program.Send(statusMsg{
		player: player.HandSummary(b.style),
		dealer: dealer.HandSummary(b.style),
		chips:  player.Chips,
		pool:   player.BetAmount,
	})
	b.log(player.HandSummary(b.style))
	b.log(dealer.HandSummary(b.style))
}

// ShowAction implements game.Reporter
func (b *Bridge) ShowAction(p *game.Participant, a game.Action) {
	b.log(fmt.Sprintf("%s decided to %s!", p.DisplayName(), a))
}

// ShowBetRejected implements game.Reporter
func (b *Bridge) ShowBetRejected(err error) {
	b.log(errorStyle.Render(err.Error()))
}

// ShowBust implements game.Reporter
func (b *Bridge) ShowBust(p *game.Participant) {
	b.log(errorStyle.Render(fmt.Sprintf("%s busted!", p.DisplayName())))
}

// ShowFinalScore implements game.Reporter
func (b *Bridge) ShowFinalScore(player, dealer *game.Participant) {
	b.log("FINAL SCORE:")
	b.log(player.HandSummary(b.style))
	b.log(dealer.HandSummary(b.style))
}

// ShowOutcome implements game.Reporter
func (b *Bridge) ShowOutcome(outcome game.Outcome, winner *game.Participant) {
	if outcome == game.OutcomePush {
		b.log("Push! Bets are returned.")
		return
	}
	b.log(statusStyle.Render(fmt.Sprintf("%s wins!", winner.DisplayName())))
}

// ShowLowShoe implements game.Reporter
func (b *Bridge) ShowLowShoe(remaining int) {
	b.log(fmt.Sprintf("%d cards left to draw from.", remaining))
}

// ShowFarewell implements game.Reporter
func (b *Bridge) ShowFarewell(p *game.Participant) {
	b.log(fmt.Sprintf("%s is bankrupt! Goodbye!", p.DisplayName()))
}

// ShowSessionSummary logs the end-of-session stats line
func (b *Bridge) ShowSessionSummary(summary string) {
	b.log(statusStyle.Render(summary))
}

// Done tells the model the engine has finished
func (b *Bridge) Done() {
	b.program.Send(doneMsg{})
}
