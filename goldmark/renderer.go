package goldmark

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fwojciec/convo"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

type ansiRenderer struct {
	plain     lipgloss.Style
	bold      lipgloss.Style
	italic    lipgloss.Style
	muted     lipgloss.Style
	underline lipgloss.Style
}

func newRenderer(surface lipgloss.Style, theme convo.Theme) *ansiRenderer {
	return &ansiRenderer{
		plain:     surface,
		bold:      surface.Bold(true),
		italic:    surface.Italic(true),
		muted:     surface.Foreground(ansiColor(theme.Muted)).Faint(true),
		underline: surface.Underline(true),
	}
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}

func parse(source []byte) ast.Node {
	return goldmark.DefaultParser().Parse(text.NewReader(source))
}

func (r *ansiRenderer) render(source []byte, width int) string {
	doc := parse(source)

	var buf bytes.Buffer
	r.walkBlock(doc, source, width, &buf)
	return strings.TrimRight(buf.String(), "\n")
}

func (r *ansiRenderer) walkBlock(node ast.Node, source []byte, width int, buf *bytes.Buffer) {
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		r.renderBlock(c, source, width, buf)
	}
}

func (r *ansiRenderer) renderBlock(node ast.Node, source []byte, width int, buf *bytes.Buffer) {
	switch n := node.(type) {
	case *ast.Paragraph, *ast.TextBlock:
		inline := r.collectInline(n, source)
		buf.WriteString(r.plain.Width(width).Render(inline))
		buf.WriteString("\n")

	case *ast.Heading:
		inline := r.collectInline(n, source)
		buf.WriteString(r.plain.Width(width).Render(r.bold.Render(inline)))
		buf.WriteString("\n")

	case *ast.FencedCodeBlock, *ast.CodeBlock:
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			content := strings.TrimRight(string(line.Value(source)), "\n")
			buf.WriteString(r.muted.Render("│") + r.plain.Render(" "+content))
			buf.WriteString("\n")
		}

	case *ast.List:
		r.renderList(n, source, width, buf, 0)

	case *ast.ThematicBreak:
		buf.WriteString(r.muted.Render("---"))
		buf.WriteString("\n")

	default:
		// Blockquotes and HTML blocks: recurse into children unstyled.
		r.walkBlock(node, source, width, buf)
	}
	if node.NextSibling() != nil && node.Parent() != nil && node.Parent().Kind() == ast.KindDocument {
		buf.WriteString("\n")
	}
}

func (r *ansiRenderer) renderList(node *ast.List, source []byte, width int, buf *bytes.Buffer, depth int) {
	itemNum := node.Start
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		item, ok := c.(*ast.ListItem)
		if !ok {
			continue
		}
		indent := strings.Repeat("  ", depth)
		marker := "• "
		if node.IsOrdered() {
			marker = fmt.Sprintf("%d. ", itemNum)
			itemNum++
		}

		var content strings.Builder
		for ic := item.FirstChild(); ic != nil; ic = ic.NextSibling() {
			switch in := ic.(type) {
			case *ast.Paragraph, *ast.TextBlock:
				content.WriteString(r.collectInline(in, source))
			case *ast.List:
				if content.Len() > 0 {
					r.writeListItem(buf, indent, marker, content.String(), width)
					content.Reset()
				}
				r.renderList(in, source, width, buf, depth+1)
				marker = strings.Repeat(" ", len([]rune(marker)))
			}
		}
		if content.Len() > 0 {
			r.writeListItem(buf, indent, marker, content.String(), width)
		}
	}
}

// writeListItem writes a list item with hanging indentation for wrapped lines.
func (r *ansiRenderer) writeListItem(buf *bytes.Buffer, indent, marker, content string, width int) {
	prefix := indent + marker
	prefixWidth := lipgloss.Width(prefix)
	itemWidth := width - prefixWidth
	if itemWidth < 10 {
		itemWidth = 10
	}
	wrapped := r.plain.Width(itemWidth).Render(content)
	continuation := strings.Repeat(" ", prefixWidth)
	for i, line := range strings.Split(wrapped, "\n") {
		if i == 0 {
			buf.WriteString(r.plain.Render(prefix) + line + "\n")
		} else {
			buf.WriteString(r.plain.Render(continuation) + line + "\n")
		}
	}
}

// collectInline renders a node's inline children into one styled string.
func (r *ansiRenderer) collectInline(node ast.Node, source []byte) string {
	var buf strings.Builder
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		r.renderInline(c, source, r.plain, &buf)
	}
	return buf.String()
}

func (r *ansiRenderer) renderInline(node ast.Node, source []byte, style lipgloss.Style, buf *strings.Builder) {
	switch n := node.(type) {
	case *ast.Text:
		buf.WriteString(style.Render(string(n.Segment.Value(source))))
		if n.SoftLineBreak() {
			buf.WriteString(style.Render(" "))
		}
		if n.HardLineBreak() {
			buf.WriteByte('\n')
		}

	case *ast.String:
		buf.WriteString(style.Render(string(n.Value)))

	case *ast.Emphasis:
		inner := r.italic
		if n.Level > 1 {
			inner = r.bold
		}
		if style.GetBold() {
			inner = inner.Bold(true)
		}
		if style.GetItalic() {
			inner = inner.Italic(true)
		}
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			r.renderInline(c, source, inner, buf)
		}

	case *ast.CodeSpan:
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			r.renderInline(c, source, r.bold, buf)
		}

	case *ast.Link:
		for c := n.FirstChild(); c != nil; c = c.NextSibling() {
			r.renderInline(c, source, r.underline, buf)
		}
		buf.WriteString(r.plain.Render(" "))
		buf.WriteString(r.muted.Render("(" + string(n.Destination) + ")"))

	case *ast.AutoLink:
		buf.WriteString(r.underline.Render(string(n.URL(source))))

	default:
		for c := node.FirstChild(); c != nil; c = c.NextSibling() {
			r.renderInline(c, source, style, buf)
		}
	}
}

// plainText collects the text of every inline node, separating blocks and
// line breaks with single spaces.
func plainText(source []byte) string {
	var parts []string
	var cur strings.Builder
	flush := func() {
		if s := strings.TrimSpace(cur.String()); s != "" {
			parts = append(parts, s)
		}
		cur.Reset()
	}

	_ = ast.Walk(parse(source), func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		switch n := node.(type) {
		case *ast.Text:
			if entering {
				cur.Write(n.Segment.Value(source))
				if n.SoftLineBreak() || n.HardLineBreak() {
					cur.WriteByte(' ')
				}
			}
		case *ast.String:
			if entering {
				cur.Write(n.Value)
			}
		case *ast.AutoLink:
			if entering {
				cur.Write(n.URL(source))
			}
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			if entering {
				lines := n.Lines()
				for i := 0; i < lines.Len(); i++ {
					line := lines.At(i)
					cur.WriteString(strings.TrimRight(string(line.Value(source)), "\n"))
					cur.WriteByte(' ')
				}
			}
		default:
			if node.Type() == ast.TypeBlock && !entering {
				flush()
			}
		}
		return ast.WalkContinue, nil
	})
	flush()
	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}
