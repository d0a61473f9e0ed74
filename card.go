package convo

import "math"

// Unbounded is the MaxLines value of an expanded card.
const Unbounded = math.MaxInt

// CardColor is the display color role of a card's body surface.
type CardColor int

const (
	CardColorDefault CardColor = iota
	CardColorAccent
)

// String returns the color role name.
func (c CardColor) String() string {
	switch c {
	case CardColorDefault:
		return "default"
	case CardColorAccent:
		return "accent"
	default:
		return "unknown"
	}
}

// CardState is the expansion state of one rendered card. The zero value is a
// collapsed card. Color and MaxLines are derived from the expansion flag and
// never stored.
type CardState struct {
	expanded bool
}

// Toggle flips the card between collapsed and expanded.
func (c *CardState) Toggle() {
	c.expanded = !c.expanded
}

// Expanded reports whether the card is expanded.
func (c *CardState) Expanded() bool { return c.expanded }

// Color returns CardColorAccent when expanded, otherwise CardColorDefault.
func (c *CardState) Color() CardColor {
	if c.expanded {
		return CardColorAccent
	}
	return CardColorDefault
}

// MaxLines returns how many body lines the card shows: Unbounded when
// expanded, otherwise 1.
func (c *CardState) MaxLines() int {
	if c.expanded {
		return Unbounded
	}
	return 1
}
