package game

// Prompter supplies the blocking user decisions the engine needs. The
// engine never touches stdin itself; substituting a scripted prompter
// makes the whole turn loop testable.
type Prompter interface {
	// ReadyToPlay is asked once before the first hand
	ReadyToPlay() (bool, error)

	// BetAmount solicits a wager. The engine validates it through the
	// bank and re-prompts on an invalid amount.
	BetAmount(available int) (int, error)

	// HitOrStand solicits the player's move for this turn
	HitOrStand() (Action, error)

	// PlayAgain is asked after each resolved hand
	PlayAgain() (bool, error)

	// ConfirmRebuy is asked when a participant is out of chips; declining
	// ends the session for them.
	ConfirmRebuy(p *Participant) (bool, error)

	// ConfirmShoeReload is asked when the shoe runs out mid-hand;
	// declining terminates the session.
	ConfirmShoeReload() (bool, error)
}

// Outcome is the resolution of one hand
type Outcome uint8

const (
	OutcomeUndecided Outcome = iota
	OutcomePlayerWins
	OutcomeDealerWins
	OutcomePush
)

func (o Outcome) String() string {
	switch o {
	case OutcomePlayerWins:
		return "player wins"
	case OutcomeDealerWins:
		return "dealer wins"
	case OutcomePush:
		return "push"
	}
	return "undecided"
}

// Reporter receives game-state transitions as renderable notifications.
// The engine does not format anything for a particular surface; the
// console and the TUI each implement this their own way.
type Reporter interface {
	ShowTable(player, dealer *Participant)
	ShowAction(p *Participant, a Action)
	ShowBetRejected(err error)
	ShowBust(p *Participant)
	ShowFinalScore(player, dealer *Participant)
	ShowOutcome(outcome Outcome, winner *Participant)
	ShowLowShoe(remaining int)
	ShowFarewell(p *Participant)
}

// HandRecord is the audit view of one resolved hand
type HandRecord struct {
	PlayerCards []string
	DealerCards []string
	PlayerScore int
	DealerScore int
	Bet         int
	Outcome     Outcome
	PlayerChips int
	DealerChips int
}

// HandRecorder sinks resolved hands, e.g. into the hand-history log
type HandRecorder interface {
	RecordHand(rec HandRecord)
}
