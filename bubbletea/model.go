package bubbletea

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/convo"
	"github.com/mattn/go-runewidth"
)

var _ tea.Model = Model{}

// blockGap is the number of blank lines between cards.
const blockGap = 1

// Model is the Bubble Tea model for the conversation screen.
type Model struct {
	// Viewport is the scrollable card list. Exported for test access.
	Viewport viewport.Model

	conv   *convo.Conversation
	theme  convo.Theme
	styles Styles
	keys   KeyMap
	help   help.Model

	blocks  []*CardBlock
	offsets []int // first content line of each block in the viewport
	heights []int // rendered line count of each block
	focus   int   // index of the focused card (-1 = none)
	ready   bool
}

// New creates a Model that renders one card per conversation row, in order.
func New(conv *convo.Conversation, theme convo.Theme) Model {
	styles := NewStyles(theme)
	h := help.New()
	h.Styles.ShortKey = styles.Muted
	h.Styles.ShortDesc = styles.Muted
	h.Styles.ShortSeparator = styles.Muted

	m := Model{
		conv:   conv,
		theme:  theme,
		styles: styles,
		keys:   DefaultKeyMap(),
		help:   h,
		focus:  -1,
	}
	for i, row := range conv.Rows() {
		m.blocks = append(m.blocks, NewCardBlock(i, row, theme, styles))
	}
	if len(m.blocks) > 0 {
		m.focus = 0
		m.blocks[0].SetFocused(true)
	}
	return m
}

// Focus returns the index of the focused card, or -1 if there are none.
func (m Model) Focus() int { return m.focus }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case FrameMsg:
		if msg.Card < 0 || msg.Card >= len(m.blocks) {
			return m, nil
		}
		_, cmd := m.blocks[msg.Card].Update(msg)
		m = m.refresh()
		return m, cmd
	}

	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	var b strings.Builder
	b.WriteString(m.Viewport.View())
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	return b.String()
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) Model {
	statusHeight := 1
	borderHeight := 1 // newline between sections
	vpHeight := msg.Height - statusHeight - borderHeight
	if vpHeight < 1 {
		vpHeight = 1
	}

	if !m.ready {
		m.Viewport = viewport.New(msg.Width, vpHeight)
		m.ready = true
	} else {
		m.Viewport.Width = msg.Width
		m.Viewport.Height = vpHeight
	}
	return m.refresh()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Toggle):
		return m.send(m.focus, ToggleMsg{})

	case key.Matches(msg, m.keys.Activate):
		return m.send(m.focus, ActivateMsg{})

	case key.Matches(msg, m.keys.Next):
		m = m.setFocus(m.focus + 1)
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		m = m.setFocus(m.focus - 1)
		return m, nil
	}

	// Remaining keys (page up/down, etc.) scroll the viewport.
	var cmd tea.Cmd
	m.Viewport, cmd = m.Viewport.Update(msg)
	return m, cmd
}

// handleMouse treats a left click on a card as a tap: a click on the
// button line activates the button, anywhere else toggles the card.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		var cmd tea.Cmd
		m.Viewport, cmd = m.Viewport.Update(msg)
		return m, cmd
	}
	if msg.Y >= m.Viewport.Height {
		return m, nil
	}
	i, onButton := m.hitTest(msg.Y + m.Viewport.YOffset)
	if i < 0 {
		return m, nil
	}
	m = m.setFocus(i)
	if onButton {
		return m.send(i, ActivateMsg{})
	}
	return m.send(i, ToggleMsg{})
}

// hitTest maps a content line to the card it belongs to. onButton reports
// whether the line is the card's button line.
func (m Model) hitTest(line int) (index int, onButton bool) {
	for i, start := range m.offsets {
		end := start + m.heights[i]
		if line >= start && line < end {
			return i, line == end-1
		}
	}
	return -1, false
}

func (m Model) send(i int, msg tea.Msg) (tea.Model, tea.Cmd) {
	if i < 0 || i >= len(m.blocks) {
		return m, nil
	}
	_, cmd := m.blocks[i].Update(msg)
	m = m.refresh()
	m = m.scrollToFocus()
	return m, cmd
}

func (m Model) setFocus(i int) Model {
	if len(m.blocks) == 0 {
		return m
	}
	if i < 0 {
		i = len(m.blocks) - 1
	}
	if i >= len(m.blocks) {
		i = 0
	}
	if m.focus >= 0 {
		m.blocks[m.focus].SetFocused(false)
	}
	m.focus = i
	m.blocks[i].SetFocused(true)
	m = m.refresh()
	return m.scrollToFocus()
}

// scrollToFocus scrolls the viewport the minimum amount needed to show the
// focused card, preferring its top when the card is taller than the viewport.
func (m Model) scrollToFocus() Model {
	if !m.ready || m.focus < 0 || m.focus >= len(m.offsets) {
		return m
	}
	top := m.offsets[m.focus]
	bottom := top + m.heights[m.focus]
	switch {
	case top < m.Viewport.YOffset:
		m.Viewport.SetYOffset(top)
	case bottom > m.Viewport.YOffset+m.Viewport.Height:
		m.Viewport.SetYOffset(min(top, bottom-m.Viewport.Height))
	}
	return m
}

// refresh re-renders the card list into the viewport and records where
// each card starts.
func (m Model) refresh() Model {
	if !m.ready {
		return m
	}
	offset := m.Viewport.YOffset
	var content string
	content, m.offsets, m.heights = m.render()
	m.Viewport.SetContent(content)
	m.Viewport.SetYOffset(offset)
	return m
}

func (m Model) renderContent() string {
	content, _, _ := m.render()
	return content
}

func (m Model) render() (content string, offsets, heights []int) {
	if len(m.blocks) == 0 {
		return m.styles.Muted.Render("No messages."), nil, nil
	}
	offsets = make([]int, len(m.blocks))
	heights = make([]int, len(m.blocks))
	var b strings.Builder
	line := 0
	for i, block := range m.blocks {
		if i > 0 {
			b.WriteString(strings.Repeat("\n", blockGap+1))
			line += blockGap
		}
		view := block.View(m.Viewport.Width)
		offsets[i] = line
		heights[i] = lipgloss.Height(view)
		line += heights[i]
		b.WriteString(view)
	}
	return b.String(), offsets, heights
}

// statusLine shows the expanded count followed by key help, cut to fit the
// viewport width.
func (m Model) statusLine() string {
	expanded := fmt.Sprintf("%d/%d expanded", m.conv.ExpandedCount(), m.conv.Len())
	prefix := m.styles.Muted.Render(runewidth.Truncate(expanded, m.Viewport.Width, "…"))
	avail := m.Viewport.Width - lipgloss.Width(prefix) - 2
	if avail < 1 {
		return prefix
	}
	h := m.help
	h.Width = avail
	return prefix + "  " + h.View(m.keys)
}
