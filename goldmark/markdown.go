// Package goldmark renders message bodies to ANSI-styled terminal output
// using goldmark for parsing and lipgloss for styling.
package goldmark

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/convo"
)

// RenderOn parses markdown source and returns ANSI-styled terminal output
// drawn on top of surface, so a background set on surface survives the
// resets emitted by inline styles. Paragraphs and list items are
// word-wrapped to width. Code blocks are rendered at full width without
// reflow.
func RenderOn(source string, width int, surface lipgloss.Style, theme convo.Theme) string {
	if source == "" {
		return ""
	}
	if width <= 0 {
		width = 80
	}
	r := newRenderer(surface, theme)
	return r.render([]byte(source), width)
}

// PlainText returns the text content of markdown source with formatting
// removed and all block and line breaks collapsed to single spaces.
func PlainText(source string) string {
	if source == "" {
		return ""
	}
	return plainText([]byte(source))
}
