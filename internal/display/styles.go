// Package display renders the game to an interactive console: lipgloss
// styled output plus a readline-backed prompter.
package display

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles contains the lipgloss styling for console output
type Styles struct {
	Title   lipgloss.Style
	Prompt  lipgloss.Style
	Info    lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Dealer  lipgloss.Style
	Player  lipgloss.Style
}

// NewStyles builds the default style set. On terminals with no color
// support everything collapses to plain text.
func NewStyles() *Styles {
	if termenv.ColorProfile() == termenv.Ascii {
		plain := lipgloss.NewStyle()
		return &Styles{
			Title: plain, Prompt: plain, Info: plain, Success: plain,
			Error: plain, Warning: plain, Dealer: plain, Player: plain,
		}
	}
	return &Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#006400")).
			Padding(0, 1).
			Bold(true),
		Prompt:  lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true),
		Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("#626262")),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("#96CEB4")).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("#FFEAA7")).Bold(true),
		Dealer:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
		Player:  lipgloss.NewStyle().Foreground(lipgloss.Color("#74B9FF")),
	}
}
