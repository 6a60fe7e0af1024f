package game

import (
	"context"
	"errors"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/amcsparron2793/blackjack/cards"
	"github.com/amcsparron2793/blackjack/internal/randutil"
)

// ErrBankrupt reports that a participant with no chips declined to buy
// back in, which ends the session for them.
var ErrBankrupt = errors.New("participant declined to buy back in")

// State is the engine's position in the turn state machine
type State uint8

const (
	StateNewHand State = iota
	StatePlayerTurn
	StateDealerTurn
	StateHandResolved
	StateSessionEnd
)

func (s State) String() string {
	switch s {
	case StateNewHand:
		return "new_hand"
	case StatePlayerTurn:
		return "player_turn"
	case StateDealerTurn:
		return "dealer_turn"
	case StateHandResolved:
		return "hand_resolved"
	case StateSessionEnd:
		return "session_end"
	}
	return "unknown"
}

// Options wires a Game together. Shoe, Bank, Player, Dealer, Prompter and
// Reporter are required; the rest default sensibly.
type Options struct {
	Shoe     *cards.Shoe
	Bank     Banker
	Player   *Participant
	Dealer   *Participant
	Prompter Prompter
	Reporter Reporter
	Recorder HandRecorder
	Stats    *SessionStats
	Logger   *log.Logger
	Rand     *rand.Rand
}

// Game owns one shoe, one bank, one player and one dealer, and drives the
// turn state machine for a whole session.
type Game struct {
	shoe     *cards.Shoe
	bank     Banker
	player   *Participant
	dealer   *Participant
	prompter Prompter
	reporter Reporter
	recorder HandRecorder
	stats    *SessionStats
	logger   *log.Logger
	rng      *rand.Rand
	state    State
}

// New assembles a game. Participants with an empty balance are paid in so
// a fresh session always starts with chips on the table; a ledger-backed
// player keeps whatever balance the ledger reported.
func New(opts Options) *Game {
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Rand == nil {
		opts.Rand = randutil.NewFromTime()
	}
	g := &Game{
		shoe:     opts.Shoe,
		bank:     opts.Bank,
		player:   opts.Player,
		dealer:   opts.Dealer,
		prompter: opts.Prompter,
		reporter: opts.Reporter,
		recorder: opts.Recorder,
		stats:    opts.Stats,
		logger:   opts.Logger,
		rng:      opts.Rand,
		state:    StateNewHand,
	}
	if g.player.Kind == Plain && g.player.Chips == 0 {
		g.bank.PayIn(g.player)
	}
	if g.dealer.Chips == 0 {
		g.bank.PayIn(g.dealer)
	}
	if g.stats == nil {
		g.stats = NewSessionStats(nil, g.player.Chips)
	}
	return g
}

// Player returns the player seat
func (g *Game) Player() *Participant { return g.player }

// Dealer returns the dealer seat
func (g *Game) Dealer() *Participant { return g.dealer }

// State returns the engine's current state
func (g *Game) State() State { return g.state }

// Stats returns the session statistics
func (g *Game) Stats() *SessionStats { return g.stats }

func (g *Game) setState(s State) {
	g.state = s
	g.logger.Debug("State transition", "state", s)
}

// Play runs a whole session: the ready prompt, then hands until the user
// quits or goes bankrupt and declines the rebuy. A declined rebuy and a
// declined shoe reload both end the session normally.
func (g *Game) Play(ctx context.Context) error {
	ready, err := g.prompter.ReadyToPlay()
	if err != nil {
		return err
	}
	if !ready {
		g.setState(StateSessionEnd)
		return nil
	}
	err = g.handLoop(ctx)
	switch {
	case errors.Is(err, ErrBankrupt):
		g.logger.Info("Session over", "reason", "bankruptcy")
		g.setState(StateSessionEnd)
		return nil
	case errors.Is(err, cards.ErrShoeEmpty):
		g.logger.Info("Session over", "reason", "shoe exhausted")
		g.setState(StateSessionEnd)
		return nil
	}
	return err
}

func (g *Game) handLoop(ctx context.Context) error {
	if err := g.SetupNewHand(); err != nil {
		return err
	}
	for {
		g.reporter.ShowTable(g.player, g.dealer)

		// The bet is taken before the player's first action in a hand
		if !g.player.HasBet {
			if err := g.takeBet(ctx, g.player); err != nil {
				return err
			}
		}

		if err := g.playerTurn(); err != nil {
			return err
		}
		if !g.handOver() {
			if err := g.dealerTurn(); err != nil {
				return err
			}
		}

		if g.handOver() {
			if err := g.EndHand(ctx); err != nil {
				return err
			}
			again, err := g.prompter.PlayAgain()
			if err != nil {
				return err
			}
			if !again {
				g.setState(StateSessionEnd)
				return nil
			}
			if err := g.SetupNewHand(); err != nil {
				return err
			}
		}
	}
}

// SetupNewHand resets both seats, preserving chips, and deals two cards to
// each from the shared shoe.
func (g *Game) SetupNewHand() error {
	g.setState(StateNewHand)
	g.player.ResetForNewHand()
	g.dealer.ResetForNewHand()

	for i := 0; i < 2; i++ {
		c, err := g.draw()
		if err != nil {
			return err
		}
		g.player.Hand = append(g.player.Hand, c)
	}
	for i := 0; i < 2; i++ {
		c, err := g.draw()
		if err != nil {
			return err
		}
		g.dealer.Hand = append(g.dealer.Hand, c)
	}
	g.logger.Debug("New hand dealt", "shoe", g.shoe.Size())
	return nil
}

// draw pulls one card, offering a reload when the shoe runs out. Declining
// the reload surfaces ErrShoeEmpty, which ends the session.
func (g *Game) draw() (cards.Card, error) {
	for {
		c, err := g.shoe.Draw()
		if err == nil {
			return c, nil
		}
		if !errors.Is(err, cards.ErrShoeEmpty) {
			return cards.Card{}, err
		}
		reload, perr := g.prompter.ConfirmShoeReload()
		if perr != nil {
			return cards.Card{}, perr
		}
		if !reload {
			return cards.Card{}, err
		}
		g.shoe.Reload()
		g.logger.Info("Shoe reloaded", "size", g.shoe.Size())
	}
}

// takeBet walks the bet flow: rebuy if broke, then solicit and validate a
// wager, re-prompting on an invalid amount.
func (g *Game) takeBet(ctx context.Context, p *Participant) error {
	if p.Chips <= 0 {
		if br, ok := g.bank.(BankruptcyRecorder); ok {
			if err := br.RecordBankruptcy(ctx, p); err != nil {
				return err
			}
		}
		ok, err := g.prompter.ConfirmRebuy(p)
		if err != nil {
			return err
		}
		if !ok {
			g.reporter.ShowFarewell(p)
			return ErrBankrupt
		}
		p.NeedsPayIn = true
		g.bank.PayIn(p)
		g.logger.Info("Bought back in", "name", p.DisplayName(), "chips", p.Chips)
	}
	for {
		amount, err := g.prompter.BetAmount(p.Chips)
		if err != nil {
			return err
		}
		p.BetAmount = amount
		if err := g.bank.TakeBet(p); err != nil {
			if errors.Is(err, ErrInvalidBet) {
				g.reporter.ShowBetRejected(err)
				continue
			}
			return err
		}
		g.logger.Debug("Bet taken", "name", p.DisplayName(), "bet", amount, "pool", g.bank.HandValue())
		return nil
	}
}

func (g *Game) playerTurn() error {
	g.setState(StatePlayerTurn)
	action, err := g.prompter.HitOrStand()
	if err != nil {
		return err
	}
	if action == ActionHit {
		return g.hit(g.player)
	}
	g.stand(g.player)
	return nil
}

func (g *Game) dealerTurn() error {
	g.setState(StateDealerTurn)
	if g.dealer.Policy(g.dealer.Score(), g.rng) {
		g.stand(g.dealer)
		return nil
	}
	return g.hit(g.dealer)
}

func (g *Game) hit(p *Participant) error {
	c, err := g.draw()
	if err != nil {
		return err
	}
	p.Hand = append(p.Hand, c)
	p.LastAction = ActionHit
	g.reporter.ShowAction(p, ActionHit)
	g.checkBust(p)
	return nil
}

func (g *Game) stand(p *Participant) {
	p.LastAction = ActionStand
	g.reporter.ShowAction(p, ActionStand)
}

// checkBust marks a participant busted once their score passes 21. Busted
// is a terminal state for the hand, not an error.
func (g *Game) checkBust(p *Participant) bool {
	if IsBust(p.Score()) {
		p.Busted = true
		g.reporter.ShowBust(p)
		g.logger.Info("Busted", "name", p.DisplayName(), "score", p.Score())
		return true
	}
	return false
}

// handOver reports whether the hand has reached a terminal state: either
// side busted, or both sides most recently stood.
func (g *Game) handOver() bool {
	if g.player.Busted || g.dealer.Busted {
		return true
	}
	return g.player.LastAction == ActionStand && g.dealer.LastAction == ActionStand
}

// ResolveWinner applies house rules: a bust loses outright, otherwise the
// strictly higher score wins and equal scores push. The player's bust is
// checked first, so if both sides are somehow busted the house wins.
func (g *Game) ResolveWinner() (Outcome, *Participant) {
	switch {
	case g.player.Busted:
		return OutcomeDealerWins, g.dealer
	case g.dealer.Busted:
		return OutcomePlayerWins, g.player
	}
	playerScore, dealerScore := g.player.Score(), g.dealer.Score()
	switch {
	case playerScore > dealerScore:
		return OutcomePlayerWins, g.player
	case dealerScore > playerScore:
		return OutcomeDealerWins, g.dealer
	}
	return OutcomePush, nil
}

// EndHand reveals the dealer's hand, resolves and settles the winner,
// records the hand and, for a ledger-backed table, writes the player's
// balance back.
func (g *Game) EndHand(ctx context.Context) error {
	g.setState(StateHandResolved)
	g.dealer.Reveal()
	g.reporter.ShowFinalScore(g.player, g.dealer)

	outcome, winner := g.ResolveWinner()
	bet := g.player.BetAmount
	if winner != nil {
		g.bank.AwardHandValue(winner)
	} else {
		// A push returns the pooled bet rather than paying it out
		g.bank.ReturnBet(g.player)
	}
	g.reporter.ShowOutcome(outcome, winner)
	g.stats.RecordOutcome(outcome)

	if g.recorder != nil {
		g.recorder.RecordHand(HandRecord{
			PlayerCards: cardStrings(g.player.Hand),
			DealerCards: cardStrings(g.dealer.Hand),
			PlayerScore: g.player.Score(),
			DealerScore: g.dealer.Score(),
			Bet:         bet,
			Outcome:     outcome,
			PlayerChips: g.player.Chips,
			DealerChips: g.dealer.Chips,
		})
	}

	if wb, ok := g.bank.(WriteBacker); ok {
		if err := wb.WriteBack(ctx, g.player); err != nil {
			return err
		}
	}
	g.logger.Info("Hand resolved",
		"outcome", outcome,
		"player", g.player.Score(),
		"dealer", g.dealer.Score(),
		"chips", g.player.Chips)
	return nil
}

func cardStrings(hand []cards.Card) []string {
	out := make([]string, len(hand))
	for i, c := range hand {
		out[i] = c.String()
	}
	return out
}
