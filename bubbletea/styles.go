package bubbletea

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/convo"
)

// Styles maps a Theme to lipgloss styles for TUI rendering. Surface and
// button fills change with state, so they are applied at render time.
type Styles struct {
	Author lipgloss.Style
	Avatar lipgloss.Style
	Body   lipgloss.Style
	Button lipgloss.Style
	Focus  lipgloss.Style
	Muted  lipgloss.Style
}

// NewStyles creates Styles from a Theme.
func NewStyles(t convo.Theme) Styles {
	return Styles{
		Author: lipgloss.NewStyle().Foreground(ansiColor(t.Author)).Bold(true),
		Avatar: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ansiColor(t.Avatar)).
			Width(avatarWidth).
			Align(lipgloss.Center),
		Body:   lipgloss.NewStyle().Foreground(ansiColor(t.CardText)).Padding(0, 1),
		Button: lipgloss.NewStyle().Foreground(ansiColor(t.ButtonText)).Padding(0, 1),
		Focus:  lipgloss.NewStyle().Foreground(ansiColor(t.Focus)).Bold(true),
		Muted:  lipgloss.NewStyle().Foreground(ansiColor(t.Muted)).Faint(true),
	}
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}
