// Package session assembles a playable game from resolved settings: shoe,
// bank, participants and the engine, for whichever surface is driving.
package session

import (
	"context"
	"errors"
	"fmt"
	rand "math/rand/v2"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/amcsparron2793/blackjack/cards"
	"github.com/amcsparron2793/blackjack/internal/config"
	"github.com/amcsparron2793/blackjack/internal/game"
	"github.com/amcsparron2793/blackjack/internal/randutil"
	"github.com/amcsparron2793/blackjack/internal/store"
)

// PlayerSource collects the inputs the create-player flow needs. The
// console prompter implements it; surfaces that cannot collect names pass
// nil and must name an existing player up front.
type PlayerSource interface {
	ConfirmCreatePlayer() (bool, error)
	AskName(which string) (string, error)
}

// ResolvePlayer finds the session's ledger identity, walking the
// create-new-player flow when the name is not on record.
func ResolvePlayer(ctx context.Context, st *store.Store, settings *config.Settings, fullName string, src PlayerSource, logger *log.Logger) (*game.Participant, error) {
	first, last, err := splitName(fullName)
	if err != nil {
		return nil, err
	}
	if first == "" {
		if src == nil {
			return nil, errors.New("a player name is required for ledger-backed play")
		}
		if first, err = src.AskName("first"); err != nil {
			return nil, err
		}
		if last, err = src.AskName("last"); err != nil {
			return nil, err
		}
	}

	id, err := st.LookupPlayerID(ctx, first, last)
	if errors.Is(err, store.ErrPlayerNotFound) {
		if src == nil {
			return nil, err
		}
		create, cerr := src.ConfirmCreatePlayer()
		if cerr != nil {
			return nil, cerr
		}
		if !create {
			return nil, err
		}
		if id, err = st.CreatePlayer(ctx, first, last, settings.StartingChips); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	info, err := st.PlayerInfo(ctx, id)
	if err != nil {
		return nil, err
	}
	logger.Info("Resolved ledger player", "name", info.Name, "id", info.PlayerID, "balance", info.Balance)
	return game.NewPersistentPlayer(info.PlayerID, info.AccountID, info.Name, info.Balance), nil
}

func splitName(fullName string) (first, last string, err error) {
	fullName = strings.TrimSpace(fullName)
	if fullName == "" {
		return "", "", nil
	}
	parts := strings.Fields(fullName)
	if len(parts) != 2 {
		return "", "", fmt.Errorf("player name must be \"First Last\", got %q", fullName)
	}
	return parts[0], parts[1], nil
}

// Options carries everything New needs beyond the settings
type Options struct {
	Settings *config.Settings
	Rand     *rand.Rand
	Logger   *log.Logger
	Prompter game.Prompter
	Reporter game.Reporter
	Recorder game.HandRecorder

	// Player is the resolved ledger participant, or nil for a plain seat
	Player *game.Participant

	// Store enables the persistent bank when non-nil
	Store *store.Store
}

// New builds the shoe, bank and participants, shuffles, and returns an
// assembled engine ready to Play.
func New(opts Options) *game.Game {
	settings := opts.Settings
	if opts.Rand == nil {
		opts.Rand = randutil.NewFromTime()
	}

	shoe := cards.NewShoe(opts.Rand,
		cards.WithLowWaterMark(settings.ShoeWarningThreshold),
		cards.WithLowShoeFunc(opts.Reporter.ShowLowShoe),
	)
	shoe.Shuffle()

	var bank game.Banker
	if opts.Store != nil {
		bank = game.NewPersistentBank(settings.StartingChips, opts.Store, opts.Logger)
	} else {
		bank = game.NewBank(settings.StartingChips)
	}

	player := opts.Player
	if player == nil {
		player = game.NewPlayer()
	}
	dealer := game.NewDealer(settings.CardBackToken(), game.PolicyByName(settings.DealerPolicy))

	return game.New(game.Options{
		Shoe:     shoe,
		Bank:     bank,
		Player:   player,
		Dealer:   dealer,
		Prompter: opts.Prompter,
		Reporter: opts.Reporter,
		Recorder: opts.Recorder,
		Logger:   opts.Logger,
		Rand:     opts.Rand,
	})
}
