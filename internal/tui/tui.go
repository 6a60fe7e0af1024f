// Package tui is the full-screen terminal surface for the game. A Bridge
// feeds the engine's prompts and notifications through a Bubble Tea model
// so the same engine drives both the console and this surface.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/amcsparron2793/blackjack/internal/game"
)

type promptKind int

const (
	promptNone promptKind = iota
	promptYesNo
	promptBet
	promptMove
)

// promptMsg asks the model to collect one decision from the user
type promptMsg struct {
	kind     promptKind
	question string
	reply    chan promptReply
}

type promptReply struct {
	yes    bool
	amount int
	action game.Action
	err    error
}

// logMsg appends a line to the game log pane
type logMsg struct {
	line string
}

// statusMsg refreshes the table status pane
type statusMsg struct {
	player string
	dealer string
	chips  int
	pool   int
}

// doneMsg tells the model the engine finished and the program may exit
type doneMsg struct{}

// ErrQuit is returned through prompt replies when the user quits the TUI
// mid-prompt.
var ErrQuit = fmt.Errorf("tui: user quit")

// Model is the Bubble Tea model for the blackjack table
type Model struct {
	logger *log.Logger

	logView viewport.Model
	input   textinput.Model

	gameLog []string
	pending *promptMsg
	status  statusMsg

	width       int
	height      int
	initialized bool
	quitting    bool

	started chan struct{}
}

// NewModel creates the table model. The started channel is closed on Init
// so the engine goroutine only begins once the program is receiving.
func NewModel(logger *log.Logger, started chan struct{}) *Model {
	vp := viewport.New(10, 5)
	ti := textinput.New()
	ti.Placeholder = "waiting for the table..."
	ti.Focus()
	ti.CharLimit = 32
	ti.Width = 40
	ti.PromptStyle = promptStyle

	return &Model{
		logger:  logger,
		logView: vp,
		input:   ti,
		started: started,
	}
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return func() tea.Msg {
		close(m.started)
		return nil
	}
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logView.Width = msg.Width
		m.logView.Height = msg.Height - 6
		m.initialized = true
		m.refreshLog()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.failPending(ErrQuit)
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			m.submit()
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case *promptMsg:
		m.logger.Debug("Prompt", "question", msg.question)
		m.pending = msg
		m.appendLog(promptStyle.Render(msg.question))
		m.input.Placeholder = placeholderFor(msg.kind)
		m.input.SetValue("")
		return m, nil

	case logMsg:
		m.appendLog(msg.line)
		return m, nil

	case statusMsg:
		m.status = msg
		return m, nil

	case doneMsg:
		m.quitting = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.logView, cmd = m.logView.Update(msg)
	return m, cmd
}

func placeholderFor(kind promptKind) string {
	switch kind {
	case promptYesNo:
		return "y or n"
	case promptBet:
		return "bet amount"
	case promptMove:
		return "hit or stand"
	}
	return ""
}

// submit parses the input line against the pending prompt and replies to
// the engine. Unparseable input re-prompts in place.
func (m *Model) submit() {
	if m.pending == nil {
		return
	}
	value := strings.TrimSpace(strings.ToLower(m.input.Value()))
	m.input.SetValue("")

	switch m.pending.kind {
	case promptYesNo:
		switch value {
		case "y", "yes":
			m.resolvePending(promptReply{yes: true})
		case "n", "no":
			m.resolvePending(promptReply{yes: false})
		default:
			m.appendLog(errorStyle.Render("Please answer y or n."))
		}
	case promptBet:
		amount, err := strconv.Atoi(value)
		if err != nil {
			m.appendLog(errorStyle.Render("Bet amount must be an integer."))
			return
		}
		m.resolvePending(promptReply{amount: amount})
	case promptMove:
		switch value {
		case "h", "hit", "1":
			m.resolvePending(promptReply{action: game.ActionHit})
		case "s", "stand", "stay", "2":
			m.resolvePending(promptReply{action: game.ActionStand})
		default:
			m.appendLog(errorStyle.Render("Please choose hit or stand."))
		}
	}
}

func (m *Model) resolvePending(reply promptReply) {
	m.pending.reply <- reply
	m.pending = nil
	m.input.Placeholder = ""
}

func (m *Model) failPending(err error) {
	if m.pending == nil {
		return
	}
	m.pending.reply <- promptReply{err: err}
	m.pending = nil
}

func (m *Model) appendLog(line string) {
	m.gameLog = append(m.gameLog, line)
	m.refreshLog()
}

func (m *Model) refreshLog() {
	m.logView.SetContent(logStyle.Render(strings.Join(m.gameLog, "\n")))
	m.logView.GotoBottom()
}

// View implements tea.Model
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(headerStyle.Render(" BlackJack "))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(fmt.Sprintf("%s  |  %s  |  chips: %d  pool: %d",
		m.status.player, m.status.dealer, m.status.chips, m.status.pool)))
	b.WriteString("\n")
	b.WriteString(m.logView.View())
	b.WriteString("\n")
	b.WriteString(m.input.View())
	return b.String()
}
