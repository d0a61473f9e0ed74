package goldmark

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/convo"
)

// Render renders source on an unstyled surface.
func Render(source string, width int, theme convo.Theme) string {
	return RenderOn(source, width, lipgloss.NewStyle(), theme)
}
