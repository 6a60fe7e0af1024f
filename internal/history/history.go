// Package history writes a structured JSON-lines audit log of resolved
// hands, one record per hand.
package history

import (
	"io"

	"github.com/coder/quartz"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/amcsparron2793/blackjack/internal/game"
)

// Recorder sinks resolved hands into a zerolog stream. It implements
// game.HandRecorder.
type Recorder struct {
	log     zerolog.Logger
	clock   quartz.Clock
	session string
	seq     int
}

// NewRecorder creates a recorder writing to w. Each session gets its own
// identifier so logs from consecutive sessions can be told apart.
func NewRecorder(w io.Writer, clock quartz.Clock) *Recorder {
	if clock == nil {
		clock = quartz.NewReal()
	}
	session := uuid.NewString()
	logger := zerolog.New(w).With().Str("session", session).Logger()
	return &Recorder{
		log:     logger,
		clock:   clock,
		session: session,
	}
}

// Session returns the session identifier stamped on every record
func (r *Recorder) Session() string {
	return r.session
}

// RecordHand writes one hand as a single JSON line
func (r *Recorder) RecordHand(rec game.HandRecord) {
	r.seq++
	r.log.Info().
		Str("hand_id", uuid.NewString()).
		Int("hand_no", r.seq).
		Time("at", r.clock.Now()).
		Strs("player_cards", rec.PlayerCards).
		Strs("dealer_cards", rec.DealerCards).
		Int("player_score", rec.PlayerScore).
		Int("dealer_score", rec.DealerScore).
		Int("bet", rec.Bet).
		Str("outcome", rec.Outcome.String()).
		Int("player_chips", rec.PlayerChips).
		Int("dealer_chips", rec.DealerChips).
		Msg("hand resolved")
}
