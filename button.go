package convo

// ButtonColor is the fill color of a toggle button.
type ButtonColor int

const (
	ButtonColorA ButtonColor = iota
	ButtonColorB
)

// String returns the color name.
func (c ButtonColor) String() string {
	switch c {
	case ButtonColorA:
		return "A"
	case ButtonColorB:
		return "B"
	default:
		return "unknown"
	}
}

// ActionFunc is invoked each time a button is activated.
type ActionFunc func()

// Button is a labelled control that cycles its fill color on every
// activation and calls its action.
type Button struct {
	label  string
	color  ButtonColor
	action ActionFunc
}

// NewButton creates a Button in ButtonColorB. A nil action is a no-op.
func NewButton(label string, action ActionFunc) *Button {
	return &Button{label: label, color: ButtonColorB, action: action}
}

// Label returns the button text.
func (b *Button) Label() string { return b.label }

// Color returns the current fill color.
func (b *Button) Color() ButtonColor { return b.color }

// Activate calls the action, then flips the color. A panic in the action is
// not recovered and leaves the color unchanged.
func (b *Button) Activate() {
	if b.action != nil {
		b.action()
	}
	if b.color == ButtonColorA {
		b.color = ButtonColorB
	} else {
		b.color = ButtonColorA
	}
}
