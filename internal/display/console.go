package display

import (
	"fmt"
	"io"
	"strings"

	"github.com/amcsparron2793/blackjack/cards"
	"github.com/amcsparron2793/blackjack/internal/game"
)

// Console renders game-state notifications to a terminal. It implements
// game.Reporter.
type Console struct {
	out    io.Writer
	styles *Styles
	style  cards.Style
}

// NewConsole creates a console reporter writing to out using the
// configured card style.
func NewConsole(out io.Writer, style cards.Style) *Console {
	return &Console{
		out:    out,
		styles: NewStyles(),
		style:  style,
	}
}

// Banner prints the welcome header, suits and all
func (c *Console) Banner() {
	suits := ""
	for _, s := range cards.Suits {
		suits += s.Glyph() + " "
	}
	if c.style == cards.StylePlaintext {
		suits = ""
	}
	fmt.Fprintln(c.out, c.styles.Title.Render(fmt.Sprintf(" %sWelcome to BlackJack! %s", suits, suits)))
	fmt.Fprintln(c.out)
}

// ShowTable prints both visible hands with totals
func (c *Console) ShowTable(player, dealer *game.Participant) {
	fmt.Fprintln(c.out, c.styles.Player.Render(player.HandSummary(c.style)))
	fmt.Fprintln(c.out, c.styles.Dealer.Render(dealer.HandSummary(c.style)))
}

// ShowAction announces a hit or stand
func (c *Console) ShowAction(p *game.Participant, a game.Action) {
	fmt.Fprintln(c.out, c.styles.Info.Render(
		fmt.Sprintf("%s decided to %s!", p.DisplayName(), a)))
}

// ShowBetRejected explains why a bet was not accepted
func (c *Console) ShowBetRejected(err error) {
	fmt.Fprintln(c.out, c.styles.Error.Render(err.Error()))
}

// ShowBust announces a bust
func (c *Console) ShowBust(p *game.Participant) {
	fmt.Fprintln(c.out, c.styles.Error.Render(
		fmt.Sprintf("%s busted!", p.DisplayName())))
}

// ShowFinalScore prints the revealed hands at the end of a hand
func (c *Console) ShowFinalScore(player, dealer *game.Participant) {
	fmt.Fprintln(c.out, strings.Repeat("-", 15))
	fmt.Fprintln(c.out, c.styles.Warning.Render("FINAL SCORE:"))
	fmt.Fprintln(c.out, c.styles.Player.Render(player.HandSummary(c.style)))
	fmt.Fprintln(c.out, c.styles.Dealer.Render(dealer.HandSummary(c.style)))
}

// ShowOutcome announces the hand's result
func (c *Console) ShowOutcome(outcome game.Outcome, winner *game.Participant) {
	if outcome == game.OutcomePush {
		fmt.Fprintln(c.out, c.styles.Warning.Render("Push! Bets are returned."))
		return
	}
	fmt.Fprintln(c.out, c.styles.Success.Render(
		fmt.Sprintf("%s wins!", winner.DisplayName())))
}

// ShowLowShoe warns that the shoe is running out
func (c *Console) ShowLowShoe(remaining int) {
	fmt.Fprintln(c.out, c.styles.Warning.Render(
		fmt.Sprintf("%d cards left to draw from.", remaining)))
}

// ShowFarewell says goodbye to a bankrupt participant
func (c *Console) ShowFarewell(p *game.Participant) {
	fmt.Fprintln(c.out, c.styles.Error.Render(
		fmt.Sprintf("%s is bankrupt! Goodbye!", p.DisplayName())))
}

// ShowSessionSummary prints the end-of-session statistics line
func (c *Console) ShowSessionSummary(summary string) {
	fmt.Fprintln(c.out, c.styles.Info.Render(summary))
}
