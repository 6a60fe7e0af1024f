package display

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/amcsparron2793/blackjack/internal/game"
)

// ConsolePrompter collects the player's decisions over readline. It
// implements game.Prompter.
type ConsolePrompter struct {
	rl     *readline.Instance
	styles *Styles
}

// NewConsolePrompter sets up readline with history in the usual place
func NewConsolePrompter() (*ConsolePrompter, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		HistoryFile:     "/tmp/blackjack_history",
		InterruptPrompt: "^C",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize readline: %w", err)
	}
	return &ConsolePrompter{rl: rl, styles: NewStyles()}, nil
}

// Close releases the readline instance
func (p *ConsolePrompter) Close() error {
	return p.rl.Close()
}

func (p *ConsolePrompter) readLine(prompt string) (string, error) {
	p.rl.SetPrompt(p.styles.Prompt.Render(prompt))
	line, err := p.rl.Readline()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(strings.ToLower(line)), nil
}

// askYesNo keeps asking until it gets a y or an n
func (p *ConsolePrompter) askYesNo(question string) (bool, error) {
	for {
		answer, err := p.readLine(question + " (y/n): ")
		if err != nil {
			return false, err
		}
		switch answer {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
	}
}

// ReadyToPlay asks the opening question
func (p *ConsolePrompter) ReadyToPlay() (bool, error) {
	return p.askYesNo("Ready to play?")
}

// BetAmount solicits a wager. Non-numeric input re-prompts locally; range
// validation is the bank's job.
func (p *ConsolePrompter) BetAmount(available int) (int, error) {
	for {
		answer, err := p.readLine(fmt.Sprintf("How much would you like to bet? ($%d available): ", available))
		if err != nil {
			return 0, err
		}
		amount, convErr := strconv.Atoi(answer)
		if convErr != nil {
			fmt.Println(p.styles.Error.Render("Bet amount must be an integer."))
			continue
		}
		return amount, nil
	}
}

// HitOrStand solicits the player's move
func (p *ConsolePrompter) HitOrStand() (game.Action, error) {
	for {
		answer, err := p.readLine("Would you like to 1. Hit or 2. Stand?: ")
		if err != nil {
			return game.ActionNone, err
		}
		switch answer {
		case "1", "hit", "h":
			return game.ActionHit, nil
		case "2", "stand", "stay", "s":
			return game.ActionStand, nil
		}
		fmt.Println(p.styles.Error.Render("Please choose hit or stand."))
	}
}

// PlayAgain asks whether to start another hand
func (p *ConsolePrompter) PlayAgain() (bool, error) {
	return p.askYesNo("Play another hand?")
}

// ConfirmRebuy asks a broke participant whether to buy back in
func (p *ConsolePrompter) ConfirmRebuy(part *game.Participant) (bool, error) {
	return p.askYesNo(fmt.Sprintf("%s is bankrupt. Would you like to buy back in and play again?", part.DisplayName()))
}

// ConfirmShoeReload asks whether to reload an exhausted shoe
func (p *ConsolePrompter) ConfirmShoeReload() (bool, error) {
	return p.askYesNo("Would you like to reload the deck?")
}

// AskName prompts for a first or last name, alphabetic only. Used by the
// ledger player setup flow.
func (p *ConsolePrompter) AskName(which string) (string, error) {
	for {
		answer, err := p.readLine(fmt.Sprintf("Enter %s name: ", which))
		if err != nil {
			return "", err
		}
		if answer != "" && isAlpha(answer) {
			return strings.ToUpper(answer[:1]) + answer[1:], nil
		}
		fmt.Println(p.styles.Error.Render("Please enter a valid name."))
	}
}

// AskPassword reads a password without echoing it
func (p *ConsolePrompter) AskPassword(prompt string) (string, error) {
	b, err := p.rl.ReadPassword(p.styles.Prompt.Render(prompt))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ConfirmCreatePlayer asks whether to add a missing player to the ledger
func (p *ConsolePrompter) ConfirmCreatePlayer() (bool, error) {
	return p.askYesNo("Player does not exist in database. Would you like to create a new player?")
}

func isAlpha(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}
