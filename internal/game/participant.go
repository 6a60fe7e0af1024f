// Package game implements the blackjack engine: hand evaluation, the
// player and dealer model, chip settlement and the turn state machine.
package game

import (
	"fmt"

	"github.com/amcsparron2793/blackjack/cards"
)

// Role distinguishes the two seats at the table
type Role uint8

const (
	PlayerRole Role = iota
	DealerRole
)

// Kind tags whether a participant's balance lives only in memory or is
// backed by the player ledger.
type Kind uint8

const (
	Plain Kind = iota
	Persistent
)

// Action is a participant's most recent move in the current hand
type Action uint8

const (
	ActionNone Action = iota
	ActionHit
	ActionStand
)

func (a Action) String() string {
	switch a {
	case ActionHit:
		return "hit"
	case ActionStand:
		return "stand"
	}
	return "none"
}

// Participant is one seat at the table. There is no type hierarchy:
// dealer behaviour hangs off DealerRole plus a stand policy, ledger
// behaviour off Persistent plus an account identity.
type Participant struct {
	Role Role
	Kind Kind

	Hand       []cards.Card
	Chips      int
	BetAmount  int
	HasBet     bool
	Busted     bool
	LastAction Action
	NeedsPayIn bool

	// Persistent identity, zero for Plain participants. PlayerID keys
	// the ledger's player row, AccountID its bank account row.
	PlayerID  int64
	AccountID int64
	Name      string

	// Balance last written to the ledger, used to decide write-backs
	persistedChips int

	// Dealer-only: stand policy and the card-back token used for the
	// concealed projection of the hand
	Policy   StandPolicy
	CardBack string
	revealed bool
}

// NewPlayer creates a plain player with no ledger identity
func NewPlayer() *Participant {
	return &Participant{Role: PlayerRole, Kind: Plain}
}

// NewPersistentPlayer creates a player whose chips mirror a ledger account.
// The starting balance is the account's current balance.
func NewPersistentPlayer(playerID, accountID int64, name string, balance int) *Participant {
	return &Participant{
		Role:           PlayerRole,
		Kind:           Persistent,
		Chips:          balance,
		PlayerID:       playerID,
		AccountID:      accountID,
		Name:           name,
		persistedChips: balance,
	}
}

// NewDealer creates the dealer. The card back token is whatever the
// configured presentation uses to hide the hole card.
func NewDealer(cardBack string, policy StandPolicy) *Participant {
	if policy == nil {
		policy = StandOnSeventeen
	}
	return &Participant{
		Role:     DealerRole,
		Kind:     Plain,
		Policy:   policy,
		CardBack: cardBack,
	}
}

// DisplayName resolves the participant's printable name: the dealer has a
// fixed label, a ledger-backed player uses its stored name and a plain
// player gets a generic seat identifier.
func (p *Participant) DisplayName() string {
	switch {
	case p.Role == DealerRole:
		return "Dealer"
	case p.Kind == Persistent && p.Name != "":
		return p.Name
	default:
		return "Player 1"
	}
}

// Score returns the participant's current hand total
func (p *Participant) Score() int {
	return Score(p.Hand)
}

// ResetForNewHand clears the hand and per-hand flags while preserving
// identity and chip balance.
func (p *Participant) ResetForNewHand() {
	p.Hand = nil
	p.BetAmount = 0
	p.HasBet = false
	p.Busted = false
	p.LastAction = ActionNone
	p.revealed = false
}

// Reveal exposes the dealer's hole card for the rest of the hand
func (p *Participant) Reveal() {
	p.revealed = true
}

// Revealed reports whether the hole card is exposed. Non-dealer hands are
// always visible.
func (p *Participant) Revealed() bool {
	return p.Role != DealerRole || p.revealed
}

// VisibleHand returns display tokens for the hand as the player may see
// it: face names substituted for numeric ranks, and the dealer's hole card
// replaced by the card-back token until reveal. The projection is derived
// from the real hand on every call, so it stays consistent as cards are
// appended.
func (p *Participant) VisibleHand(style cards.Style) []string {
	out := make([]string, len(p.Hand))
	for i, c := range p.Hand {
		if i == 0 && !p.Revealed() {
			out[i] = p.CardBack
			continue
		}
		out[i] = c.Render(style)
	}
	return out
}

// HandSummary formats the visible hand with its total. The total is
// omitted while the hole card is concealed.
func (p *Participant) HandSummary(style cards.Style) string {
	if !p.Revealed() {
		return fmt.Sprintf("%s: %v", p.DisplayName(), p.VisibleHand(style))
	}
	return fmt.Sprintf("%s: %v (total: %d)", p.DisplayName(), p.VisibleHand(style), p.Score())
}
