package bubbletea

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/chirp"
)

// Styles maps a Theme to lipgloss styles for TUI rendering.
type Styles struct {
	Handle  lipgloss.Style
	Event   lipgloss.Style
	Notice  lipgloss.Style
	Error   lipgloss.Style
	Success lipgloss.Style
	Muted   lipgloss.Style
	Accent  lipgloss.Style
	RawBg   lipgloss.Style
	ErrorBg lipgloss.Style
}

// NewStyles creates Styles from a Theme.
func NewStyles(t chirp.Theme) Styles {
	return Styles{
		Handle:  lipgloss.NewStyle().Foreground(ansiColor(t.Handle)).Bold(true),
		Event:   lipgloss.NewStyle().Foreground(ansiColor(t.Event)),
		Notice:  lipgloss.NewStyle().Foreground(ansiColor(t.Notice)),
		Error:   lipgloss.NewStyle().Foreground(ansiColor(t.Error)),
		Success: lipgloss.NewStyle().Foreground(ansiColor(t.Success)),
		Muted:   lipgloss.NewStyle().Foreground(ansiColor(t.Muted)).Faint(true),
		Accent:  lipgloss.NewStyle().Foreground(ansiColor(t.Accent)).Bold(true),
		RawBg:   lipgloss.NewStyle().Background(ansiColor(t.RawBg)).PaddingLeft(1),
		ErrorBg: lipgloss.NewStyle().Background(ansiColor(t.Error)).PaddingLeft(1),
	}
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}
