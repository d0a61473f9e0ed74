package bubbletea

import tea "github.com/charmbracelet/bubbletea"

// MessageBlock is a renderable element in the conversation.
// Unlike tea.Model, View takes a width parameter so the root model
// controls layout and blocks are testable in isolation.
type MessageBlock interface {
	Update(tea.Msg) (MessageBlock, tea.Cmd)
	View(width int) string
}

// ToggleMsg tells a card to flip between collapsed and expanded.
// Sent by the root model when the user taps the focused card.
type ToggleMsg struct{}

// ActivateMsg tells a button to run its action and swap its fill color.
type ActivateMsg struct{}
