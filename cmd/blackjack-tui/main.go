package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/amcsparron2793/blackjack/internal/config"
	"github.com/amcsparron2793/blackjack/internal/randutil"
	"github.com/amcsparron2793/blackjack/internal/session"
	"github.com/amcsparron2793/blackjack/internal/store"
	"github.com/amcsparron2793/blackjack/internal/tui"
)

type CLI struct {
	Config   string `short:"c" help:"Path to the HCL settings file" default:"blackjack.hcl" type:"path"`
	Player   string `short:"p" help:"Existing ledger player as \"First Last\" (create players with the console game first)"`
	Database bool   `short:"d" help:"Enable the SQLite player ledger regardless of the settings file"`
	Seed     int64  `help:"Shuffle seed for reproducible shoes (0 seeds from the clock)"`
	Debug    bool   `help:"Verbose debug logging"`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli)

	settings, err := config.Load(cli.Config)
	if err != nil {
		log.Fatal("Failed to load settings", "path", cli.Config, "error", err)
	}
	if cli.Database {
		settings.DatabaseEnabled = true
	}

	if err := run(cli, settings); err != nil {
		if errors.Is(err, tui.ErrQuit) {
			kctx.Exit(0)
		}
		log.Fatal("Game ended with an error", "error", err)
	}

	kctx.Exit(0)
}

func run(cli CLI, settings *config.Settings) error {
	// Logs go to a file, the terminal belongs to the TUI.
	debugFile, err := os.OpenFile("blackjack-tui.log", os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
	if err != nil {
		return fmt.Errorf("failed to create debug log: %w", err)
	}
	defer func() {
		if err := debugFile.Close(); err != nil {
			log.Error("Failed to close debug log", "error", err)
		}
	}()

	logger := log.NewWithOptions(debugFile, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "TUI",
	})
	if cli.Debug {
		logger.SetLevel(log.DebugLevel)
	}

	rng := randutil.NewFromTime()
	if cli.Seed != 0 {
		rng = randutil.New(cli.Seed)
	}

	ctx := context.Background()

	opts := session.Options{
		Settings: settings,
		Rand:     rng,
		Logger:   logger,
	}
	if settings.DatabaseEnabled {
		st, err := store.Open(settings.DatabasePath, logger)
		if err != nil {
			return fmt.Errorf("failed to open player ledger: %w", err)
		}
		defer st.Close()

		// The TUI cannot walk the create-player flow, so the name must
		// already be on record.
		player, err := session.ResolvePlayer(ctx, st, settings, cli.Player, nil, logger)
		if err != nil {
			if errors.Is(err, store.ErrPlayerNotFound) {
				return fmt.Errorf("player %q is not in the ledger; create them with the console game first", cli.Player)
			}
			return err
		}
		opts.Store = st
		opts.Player = player
	}

	started := make(chan struct{})
	model := tui.NewModel(logger, started)
	program := tea.NewProgram(model, tea.WithAltScreen())

	bridge := tui.NewBridge(program, settings.CardStyle())
	opts.Prompter = bridge
	opts.Reporter = bridge

	g := session.New(opts)

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		_, err := program.Run()
		bridge.Quit()
		return err
	})
	eg.Go(func() error {
		<-started
		defer bridge.Done()
		if err := g.Play(ctx); err != nil {
			return err
		}
		bridge.ShowSessionSummary(g.Stats().Summary(g.Player().Chips))
		logger.Info("Session over", "hands", g.Stats().HandsPlayed, "chips", g.Player().Chips)
		return nil
	})
	return eg.Wait()
}
