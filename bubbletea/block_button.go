package bubbletea

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fwojciec/convo"
	"github.com/mattn/go-runewidth"
)

var _ MessageBlock = (*ButtonBlock)(nil)

// ButtonBlock renders a button label on its current fill color.
type ButtonBlock struct {
	button *convo.Button
	theme  convo.Theme
	styles Styles
}

// NewButtonBlock creates a ButtonBlock for button.
func NewButtonBlock(button *convo.Button, theme convo.Theme, styles Styles) *ButtonBlock {
	return &ButtonBlock{button: button, theme: theme, styles: styles}
}

// Button returns the underlying button state.
func (b *ButtonBlock) Button() *convo.Button { return b.button }

func (b *ButtonBlock) Update(msg tea.Msg) (MessageBlock, tea.Cmd) {
	if _, ok := msg.(ActivateMsg); ok {
		b.button.Activate()
	}
	return b, nil
}

func (b *ButtonBlock) View(width int) string {
	style := b.styles.Button.Background(ansiColor(b.theme.ButtonColor(b.button.Color())))
	label := b.button.Label()
	if inner := width - style.GetHorizontalFrameSize(); inner > 0 {
		label = runewidth.Truncate(label, inner, "…")
	}
	return style.Render(label)
}
