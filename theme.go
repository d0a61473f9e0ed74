package convo

// Theme defines semantic color mappings using ANSI color indices (0-15).
// The user's terminal theme determines the actual RGB values, so the app
// automatically matches any color scheme. A negative index means no color.
type Theme struct {
	Author      int // Author name above a card
	CardDefault int // Collapsed card surface
	CardAccent  int // Expanded card surface
	CardText    int // Body text on a card surface
	ButtonA     int // Button fill after an odd number of activations
	ButtonB     int // Initial button fill
	ButtonText  int // Button label
	Avatar      int // Avatar border
	Muted       int // Status bar, hints
	Focus       int // Focus marker
}

// DefaultTheme returns the default ANSI color mapping.
func DefaultTheme() Theme {
	return Theme{
		Author:      0,
		CardDefault: 6,
		CardAccent:  5,
		CardText:    0,
		ButtonA:     1,
		ButtonB:     4,
		ButtonText:  15,
		Avatar:      15,
		Muted:       8,
		Focus:       3,
	}
}

// CardColor returns the ANSI index for a card color role.
func (t Theme) CardColor(c CardColor) int {
	if c == CardColorAccent {
		return t.CardAccent
	}
	return t.CardDefault
}

// ButtonColor returns the ANSI index for a button color.
func (t Theme) ButtonColor(c ButtonColor) int {
	if c == ButtonColorA {
		return t.ButtonA
	}
	return t.ButtonB
}
