package bubbletea

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	// TransitionFrames is the number of frames a card's surface color takes
	// to move from its old color to its new one.
	TransitionFrames = 8
	// FrameInterval is the delay between transition frames.
	FrameInterval = 16 * time.Millisecond
)

// FrameMsg advances the color transition of one card. Gen identifies the
// transition the frame belongs to; frames from a superseded transition are
// dropped.
type FrameMsg struct {
	Card int
	Gen  int
}

// transition blends a surface color in L*a*b* space.
type transition struct {
	from, to colorful.Color
	frame    int
	gen      int
}

func (t *transition) current() colorful.Color {
	if t.frame == 0 {
		return t.from
	}
	return t.from.BlendLab(t.to, float64(t.frame)/TransitionFrames).Clamped()
}

func (t *transition) color() lipgloss.TerminalColor {
	return lipgloss.Color(t.current().Hex())
}

func frameCmd(card, gen int) tea.Cmd {
	return tea.Tick(FrameInterval, func(time.Time) tea.Msg {
		return FrameMsg{Card: card, Gen: gen}
	})
}

// xterm base 16 colors. Terminals remap these under custom themes; the
// values only need to be close enough to blend between.
var ansi16 = [16]colorful.Color{
	hex("#000000"), hex("#cd0000"), hex("#00cd00"), hex("#cdcd00"),
	hex("#0000ee"), hex("#cd00cd"), hex("#00cdcd"), hex("#e5e5e5"),
	hex("#7f7f7f"), hex("#ff0000"), hex("#00ff00"), hex("#ffff00"),
	hex("#5c5cff"), hex("#ff00ff"), hex("#00ffff"), hex("#ffffff"),
}

func hex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// paletteRGB returns the xterm RGB value of a 256-color index. It reports
// false for indices outside 0-255, which includes the "no color" index.
func paletteRGB(index int) (colorful.Color, bool) {
	switch {
	case index < 0 || index > 255:
		return colorful.Color{}, false
	case index < 16:
		return ansi16[index], true
	case index < 232:
		i := index - 16
		level := func(v int) float64 {
			if v == 0 {
				return 0
			}
			return float64(55+v*40) / 255
		}
		return colorful.Color{R: level(i / 36), G: level(i / 6 % 6), B: level(i % 6)}, true
	default:
		v := float64(8+(index-232)*10) / 255
		return colorful.Color{R: v, G: v, B: v}, true
	}
}
