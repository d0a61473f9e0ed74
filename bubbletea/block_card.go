package bubbletea

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/convo"
	"github.com/fwojciec/convo/goldmark"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

const (
	avatarWidth    = 2
	minColumnWidth = 10
)

var _ MessageBlock = (*CardBlock)(nil)

// CardBlock renders one conversation row: avatar, author, the body surface
// and the row's button. Tapping the card toggles its expansion and starts a
// surface color transition.
type CardBlock struct {
	index   int
	row     convo.Row
	button  *ButtonBlock
	theme   convo.Theme
	styles  Styles
	focused bool

	anim *transition // nil when the surface shows its settled color
	gen  int
}

// NewCardBlock creates a CardBlock for the row at index.
func NewCardBlock(index int, row convo.Row, theme convo.Theme, styles Styles) *CardBlock {
	return &CardBlock{
		index:  index,
		row:    row,
		button: NewButtonBlock(row.Button, theme, styles),
		theme:  theme,
		styles: styles,
	}
}

// Row returns the row this card renders.
func (b *CardBlock) Row() convo.Row { return b.row }

// Animating reports whether a surface color transition is in progress.
func (b *CardBlock) Animating() bool { return b.anim != nil }

// SetFocused marks the card as the keyboard focus target.
func (b *CardBlock) SetFocused(focused bool) { b.focused = focused }

func (b *CardBlock) Update(msg tea.Msg) (MessageBlock, tea.Cmd) {
	switch msg := msg.(type) {
	case ToggleMsg:
		return b, b.toggle()
	case ActivateMsg:
		_, cmd := b.button.Update(msg)
		return b, cmd
	case FrameMsg:
		if msg.Card == b.index {
			return b, b.advance(msg.Gen)
		}
	}
	return b, nil
}

func (b *CardBlock) toggle() tea.Cmd {
	from, fromOK := b.shownRGB()
	b.row.Card.Toggle()
	b.gen++
	to, toOK := paletteRGB(b.theme.CardColor(b.row.Card.Color()))
	if !fromOK || !toOK {
		b.anim = nil
		return nil
	}
	b.anim = &transition{from: from, to: to, gen: b.gen}
	return frameCmd(b.index, b.gen)
}

func (b *CardBlock) advance(gen int) tea.Cmd {
	if b.anim == nil || b.anim.gen != gen {
		return nil
	}
	b.anim.frame++
	if b.anim.frame >= TransitionFrames {
		b.anim = nil
		return nil
	}
	return frameCmd(b.index, gen)
}

func (b *CardBlock) shownRGB() (colorful.Color, bool) {
	if b.anim != nil {
		return b.anim.current(), true
	}
	return paletteRGB(b.theme.CardColor(b.row.Card.Color()))
}

func (b *CardBlock) surfaceColor() lipgloss.TerminalColor {
	if b.anim != nil {
		return b.anim.color()
	}
	return ansiColor(b.theme.CardColor(b.row.Card.Color()))
}

func (b *CardBlock) View(width int) string {
	marker := "  "
	if b.focused {
		marker = b.styles.Focus.Render("▌") + " "
	}
	avatar := b.styles.Avatar.Render(initial(b.row.Message.Author))

	colWidth := width - lipgloss.Width(marker) - lipgloss.Width(avatar) - 1
	if colWidth < minColumnWidth {
		colWidth = minColumnWidth
	}
	author := b.styles.Author.Render(runewidth.Truncate(b.row.Message.Author, colWidth, "…"))
	column := lipgloss.JoinVertical(lipgloss.Left,
		author,
		b.renderBody(colWidth),
		"",
		b.button.View(colWidth),
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, marker, avatar, " ", column)
}

// renderBody draws the message body on the card surface. A collapsed card
// shows the flattened body cut to a single line; an expanded card shows the
// full markdown rendering.
func (b *CardBlock) renderBody(width int) string {
	bg := b.surfaceColor()
	surface := b.styles.Body.Background(bg)
	inner := width - surface.GetHorizontalFrameSize()

	if b.row.Card.MaxLines() == 1 {
		line := runewidth.Truncate(goldmark.PlainText(b.row.Message.Body), inner, "…")
		return surface.Render(line)
	}

	text := lipgloss.NewStyle().Foreground(ansiColor(b.theme.CardText)).Background(bg)
	return surface.Render(goldmark.RenderOn(b.row.Message.Body, inner, text, b.theme))
}

// initial returns the first grapheme of author, upper-cased.
func initial(author string) string {
	author = strings.TrimSpace(author)
	if author == "" {
		return "?"
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(author, -1)
	return strings.ToUpper(cluster)
}
