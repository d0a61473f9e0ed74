package bubbletea

import "github.com/charmbracelet/lipgloss"

// RenderContent exports renderContent for testing.
func RenderContent(m Model) string {
	return m.renderContent()
}

// Card returns the block rendering row i.
func Card(m Model, i int) *CardBlock {
	return m.blocks[i]
}

// Offsets returns the first content line of every card.
func Offsets(m Model) []int {
	return m.offsets
}

// SurfaceColor exports the color a card's body surface currently shows.
func SurfaceColor(b *CardBlock) lipgloss.TerminalColor {
	return b.surfaceColor()
}

// Generation returns the number of the card's latest transition.
func Generation(b *CardBlock) int {
	return b.gen
}

// PaletteHex returns the xterm RGB value of a color index as hex.
func PaletteHex(index int) (string, bool) {
	c, ok := paletteRGB(index)
	return c.Hex(), ok
}

// ProgramOptionCount returns how many tea.ProgramOptions opts produces.
func ProgramOptionCount(opts Options) int {
	return len(programOptions(opts))
}
