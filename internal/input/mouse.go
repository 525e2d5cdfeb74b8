package input

// MouseButton identifies a mouse button. Values match GLFW's numbering.
type MouseButton int

const (
	// MouseButtonLeft is the primary button.
	MouseButtonLeft MouseButton = 0
	// MouseButtonRight is the secondary button.
	MouseButtonRight MouseButton = 1
	// MouseButtonMiddle is the wheel click.
	MouseButtonMiddle MouseButton = 2
)

// MouseButtons lists the buttons the platform layer tracks, in code order.
func MouseButtons() []MouseButton {
	return []MouseButton{MouseButtonLeft, MouseButtonRight, MouseButtonMiddle}
}

// String returns a string representation of the button.
func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "left"
	case MouseButtonRight:
		return "right"
	case MouseButtonMiddle:
		return "middle"
	default:
		return "unknown"
	}
}
