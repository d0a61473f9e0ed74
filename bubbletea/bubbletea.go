// Package bubbletea provides a Bubble Tea TUI for browsing a conversation
// as a list of expandable message cards.
package bubbletea

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Options controls how the program takes over the terminal.
type Options struct {
	AltScreen bool
	Mouse     bool
}

// Run creates and runs the Bubble Tea TUI program. It blocks until the program
// exits. The context is used for graceful shutdown: when cancelled, the
// program quits.
func Run(ctx context.Context, m Model, opts Options) error {
	p := tea.NewProgram(m, programOptions(opts)...)
	go func() {
		<-ctx.Done()
		p.Quit()
	}()
	_, err := p.Run()
	return err
}

func programOptions(opts Options) []tea.ProgramOption {
	var po []tea.ProgramOption
	if opts.AltScreen {
		po = append(po, tea.WithAltScreen())
	}
	if opts.Mouse {
		po = append(po, tea.WithMouseCellMotion())
	}
	return po
}
