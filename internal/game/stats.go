package game

import (
	"fmt"
	"time"

	"github.com/coder/quartz"
)

// SessionStats accumulates results across the hands of one session. The
// injected clock keeps duration reporting testable.
type SessionStats struct {
	clock   quartz.Clock
	started time.Time

	HandsPlayed   int
	PlayerWins    int
	DealerWins    int
	Pushes        int
	StartingChips int
}

// NewSessionStats starts tracking a session from now
func NewSessionStats(clock quartz.Clock, startingChips int) *SessionStats {
	if clock == nil {
		clock = quartz.NewReal()
	}
	return &SessionStats{
		clock:         clock,
		started:       clock.Now(),
		StartingChips: startingChips,
	}
}

// RecordOutcome tallies one resolved hand
func (s *SessionStats) RecordOutcome(o Outcome) {
	s.HandsPlayed++
	switch o {
	case OutcomePlayerWins:
		s.PlayerWins++
	case OutcomeDealerWins:
		s.DealerWins++
	case OutcomePush:
		s.Pushes++
	}
}

// Duration returns how long the session has run
func (s *SessionStats) Duration() time.Duration {
	return s.clock.Since(s.started)
}

// Summary formats the session for the end-of-session report
func (s *SessionStats) Summary(finalChips int) string {
	net := finalChips - s.StartingChips
	return fmt.Sprintf("%d hands in %s: %d won, %d lost, %d pushed, net %+d chips",
		s.HandsPlayed, s.Duration().Round(time.Second),
		s.PlayerWins, s.DealerWins, s.Pushes, net)
}
