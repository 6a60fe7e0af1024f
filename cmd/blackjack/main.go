package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/chzyer/readline"

	"github.com/amcsparron2793/blackjack/internal/auth"
	"github.com/amcsparron2793/blackjack/internal/config"
	"github.com/amcsparron2793/blackjack/internal/display"
	"github.com/amcsparron2793/blackjack/internal/history"
	"github.com/amcsparron2793/blackjack/internal/randutil"
	"github.com/amcsparron2793/blackjack/internal/session"
	"github.com/amcsparron2793/blackjack/internal/store"
)

type CLI struct {
	Config      string `short:"c" help:"Path to the HCL settings file" default:"blackjack.hcl" type:"path"`
	Player      string `short:"p" help:"Ledger player name as \"First Last\"; prompted for when omitted"`
	Database    bool   `short:"d" help:"Enable the SQLite player ledger regardless of the settings file"`
	SetPassword bool   `help:"Set or replace the ledger player's password, then play"`
	Seed        int64  `help:"Shuffle seed for reproducible shoes (0 seeds from the clock)"`
	History     string `help:"Hand history file (JSON lines)" default:"blackjack-history.log"`
	Debug       bool   `help:"Verbose debug logging"`
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
		if errors.Is(err, readline.ErrInterrupt) {
			fmt.Println("Ok, quitting.")
			kctx.Exit(-1)
		}
		if errors.Is(err, io.EOF) {
			kctx.Exit(0)
		}
		log.Fatal("Game ended with an error", "error", err)
	}

	kctx.Exit(0)
}

func run(cli CLI, settings *config.Settings) error {
	debugFile, err := os.OpenFile("blackjack.log", os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
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
		Prefix:          "BLACKJACK",
	})
	if cli.Debug {
		logger.SetLevel(log.DebugLevel)
	}

	seed := cli.Seed
	rng := randutil.NewFromTime()
	if seed != 0 {
		rng = randutil.New(seed)
	}
	logger.Info("Starting session", "seed", seed, "database", settings.DatabaseEnabled)

	console := display.NewConsole(os.Stdout, settings.CardStyle())
	console.Banner()

	prompter, err := display.NewConsolePrompter()
	if err != nil {
		return fmt.Errorf("failed to open console input: %w", err)
	}
	defer prompter.Close()

	var historyOut io.Writer = io.Discard
	if cli.History != "" {
		f, err := os.OpenFile(cli.History, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err != nil {
			return fmt.Errorf("failed to open hand history file: %w", err)
		}
		defer f.Close()
		historyOut = f
	}
	recorder := history.NewRecorder(historyOut, nil)
	logger.Info("Recording hand history", "session", recorder.Session(), "file", cli.History)

	ctx := context.Background()

	opts := session.Options{
		Settings: settings,
		Rand:     rng,
		Logger:   logger,
		Prompter: prompter,
		Reporter: console,
		Recorder: recorder,
	}
	if settings.DatabaseEnabled {
		st, err := store.Open(settings.DatabasePath, logger)
		if err != nil {
			return fmt.Errorf("failed to open player ledger: %w", err)
		}
		defer st.Close()

		player, err := session.ResolvePlayer(ctx, st, settings, cli.Player, prompter, logger)
		if err != nil {
			return err
		}
		if cli.SetPassword {
			if err := setPassword(ctx, st, prompter, player.PlayerID); err != nil {
				return err
			}
		}
		if err := checkPassword(ctx, st, prompter, player.PlayerID); err != nil {
			return err
		}
		opts.Store = st
		opts.Player = player
	}

	g := session.New(opts)
	if err := g.Play(ctx); err != nil {
		return err
	}

	console.ShowSessionSummary(g.Stats().Summary(g.Player().Chips))
	logger.Info("Session over", "hands", g.Stats().HandsPlayed, "chips", g.Player().Chips)
	return nil
}

// setPassword stores a new password hash, re-prompting until the
// complexity rule is satisfied.
func setPassword(ctx context.Context, st *store.Store, prompter *display.ConsolePrompter, playerID int64) error {
	for {
		password, err := prompter.AskPassword("New password: ")
		if err != nil {
			return err
		}
		hash, err := auth.HashPassword(password)
		if errors.Is(err, auth.ErrComplexity) {
			fmt.Println(err.Error())
			continue
		}
		if err != nil {
			return err
		}
		return st.SetPasswordHash(ctx, playerID, hash)
	}
}

// checkPassword gates a password-protected player behind up to three
// attempts. Players with no stored hash pass straight through.
func checkPassword(ctx context.Context, st *store.Store, prompter *display.ConsolePrompter, playerID int64) error {
	if _, err := st.PasswordHash(ctx, playerID); errors.Is(err, store.ErrPlayerNotFound) {
		return nil
	} else if err != nil {
		return err
	}

	validator := auth.NewValidator(st)
	for attempt := 0; attempt < 3; attempt++ {
		password, err := prompter.AskPassword("Password: ")
		if err != nil {
			return err
		}
		err = validator.Validate(ctx, playerID, password)
		if err == nil {
			return nil
		}
		if !errors.Is(err, auth.ErrInvalidPassword) {
			return err
		}
		fmt.Println("Invalid password.")
	}
	return auth.ErrInvalidPassword
}
