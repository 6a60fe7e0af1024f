package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
)

// ErrInvalidBet is returned when a bet is zero, negative, or more than the
// participant's available chips. It is always recoverable by re-prompting.
var ErrInvalidBet = errors.New("bet amount cannot exceed available chips or be zero")

// Banker is the chip-settlement surface the engine drives. The engine, not
// the bank, decides who wins.
type Banker interface {
	PayIn(p *Participant)
	TakeBet(p *Participant) error
	AwardHandValue(p *Participant)
	ReturnBet(p *Participant)
	HandValue() int
}

// WriteBacker is the optional persistence capability of a bank. The engine
// checks for it once at settlement time.
type WriteBacker interface {
	WriteBack(ctx context.Context, p *Participant) error
}

// Bank holds the pooled wager for the current hand. It owns no
// participants; it only moves chips through defined operations.
type Bank struct {
	handValue     int
	startingChips int
}

// NewBank creates a bank that pays participants in at the given starting
// chip count.
func NewBank(startingChips int) *Bank {
	return &Bank{startingChips: startingChips}
}

// PayIn resets the participant's chips to the starting amount. The reset
// is idempotent, not additive.
func (b *Bank) PayIn(p *Participant) {
	p.Chips = b.startingChips
	p.NeedsPayIn = false
}

// TakeBet moves the participant's declared bet from their chips into the
// hand pool. The bet must be positive and no more than their balance.
func (b *Bank) TakeBet(p *Participant) error {
	if p.BetAmount <= 0 || p.BetAmount > p.Chips {
		return ErrInvalidBet
	}
	b.handValue += p.BetAmount
	p.Chips -= p.BetAmount
	p.HasBet = true
	return nil
}

// AwardHandValue pays the winner double the pool, the original bet plus
// matching winnings for a 1:1 payout, and empties the pool. Call exactly
// once per resolved hand, on the winning side only.
func (b *Bank) AwardHandValue(p *Participant) {
	p.Chips += b.handValue * 2
	b.handValue = 0
}

// ReturnBet hands a pushed bet back: the participant's wager comes out of
// the pool and rejoins their chips, a net-zero transfer.
func (b *Bank) ReturnBet(p *Participant) {
	if p.BetAmount <= 0 {
		return
	}
	b.handValue -= p.BetAmount
	if b.handValue < 0 {
		b.handValue = 0
	}
	p.Chips += p.BetAmount
}

// HandValue returns the pooled wager for the current hand
func (b *Bank) HandValue() int {
	return b.handValue
}

// Ledger is what the persistent bank needs from the persistence
// collaborator: balance write-backs and bankruptcy events.
type Ledger interface {
	UpdateBalance(ctx context.Context, accountID int64, balance int) error
	AddBankruptcy(ctx context.Context, playerID int64) error
}

// BankruptcyRecorder is the optional capability of a bank to record a
// participant going broke.
type BankruptcyRecorder interface {
	RecordBankruptcy(ctx context.Context, p *Participant) error
}

// PersistentBank is a Bank that writes balance changes back to the player
// ledger after settlement.
type PersistentBank struct {
	Bank
	ledger Ledger
	logger *log.Logger
}

// NewPersistentBank creates a ledger-backed bank
func NewPersistentBank(startingChips int, ledger Ledger, logger *log.Logger) *PersistentBank {
	return &PersistentBank{
		Bank:   Bank{startingChips: startingChips},
		ledger: ledger,
		logger: logger,
	}
}

// WriteBack persists the participant's balance if it differs from the last
// written value. Plain participants and unchanged balances are no-ops.
func (b *PersistentBank) WriteBack(ctx context.Context, p *Participant) error {
	if p.Kind != Persistent {
		return nil
	}
	if p.Chips == p.persistedChips {
		return nil
	}
	if err := b.ledger.UpdateBalance(ctx, p.AccountID, p.Chips); err != nil {
		return fmt.Errorf("write back balance for account %d: %w", p.AccountID, err)
	}
	b.logger.Info("Wrote balance to ledger", "account", p.AccountID, "balance", p.Chips)
	p.persistedChips = p.Chips
	return nil
}

// RecordBankruptcy notes a ledger-backed participant going broke
func (b *PersistentBank) RecordBankruptcy(ctx context.Context, p *Participant) error {
	if p.Kind != Persistent {
		return nil
	}
	return b.ledger.AddBankruptcy(ctx, p.PlayerID)
}
