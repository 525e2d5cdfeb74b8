package event

import (
	"fmt"

	"github.com/dshills/ember/internal/input"
)

// mouseEvent is embedded by pointer motion and wheel events.
type mouseEvent struct {
	Base
}

// Categories returns CategoryMouse | CategoryInput.
func (mouseEvent) Categories() Category {
	return CategoryMouse | CategoryInput
}

// MouseMovedEvent is raised when the pointer moves.
type MouseMovedEvent struct {
	mouseEvent
	X float32
	Y float32
}

// NewMouseMovedEvent creates a MouseMovedEvent.
func NewMouseMovedEvent(x, y float32) *MouseMovedEvent {
	return &MouseMovedEvent{X: x, Y: y}
}

func (*MouseMovedEvent) StaticKind() Kind { return KindMouseMoved }
func (e *MouseMovedEvent) Kind() Kind     { return e.StaticKind() }
func (e *MouseMovedEvent) Name() string   { return e.Kind().String() }

func (e *MouseMovedEvent) IsInCategory(c Category) bool {
	return e.Categories()&c != 0
}

func (e *MouseMovedEvent) String() string {
	return fmt.Sprintf("MouseMovedEvent: %g, %g", e.X, e.Y)
}

// MouseScrolledEvent is raised when a wheel turns. Positive YOffset
// scrolls up, positive XOffset scrolls right.
type MouseScrolledEvent struct {
	mouseEvent
	XOffset float32
	YOffset float32
}

// NewMouseScrolledEvent creates a MouseScrolledEvent.
func NewMouseScrolledEvent(xOffset, yOffset float32) *MouseScrolledEvent {
	return &MouseScrolledEvent{XOffset: xOffset, YOffset: yOffset}
}

func (*MouseScrolledEvent) StaticKind() Kind { return KindMouseScrolled }
func (e *MouseScrolledEvent) Kind() Kind     { return e.StaticKind() }
func (e *MouseScrolledEvent) Name() string   { return e.Kind().String() }

func (e *MouseScrolledEvent) IsInCategory(c Category) bool {
	return e.Categories()&c != 0
}

func (e *MouseScrolledEvent) String() string {
	return fmt.Sprintf("MouseScrolledEvent: %g, %g", e.XOffset, e.YOffset)
}

// mouseButtonEvent is embedded by button events and carries the button.
type mouseButtonEvent struct {
	Base

	// Button is the button that changed state.
	Button input.MouseButton
}

// Categories returns CategoryMouse | CategoryInput | CategoryMouseButton.
func (mouseButtonEvent) Categories() Category {
	return CategoryMouse | CategoryInput | CategoryMouseButton
}

// MouseButtonPressedEvent is raised when a mouse button goes down.
type MouseButtonPressedEvent struct {
	mouseButtonEvent
}

// NewMouseButtonPressedEvent creates a MouseButtonPressedEvent.
func NewMouseButtonPressedEvent(button input.MouseButton) *MouseButtonPressedEvent {
	return &MouseButtonPressedEvent{mouseButtonEvent{Button: button}}
}

func (*MouseButtonPressedEvent) StaticKind() Kind { return KindMouseButtonPressed }
func (e *MouseButtonPressedEvent) Kind() Kind     { return e.StaticKind() }
func (e *MouseButtonPressedEvent) Name() string   { return e.Kind().String() }

func (e *MouseButtonPressedEvent) IsInCategory(c Category) bool {
	return e.Categories()&c != 0
}

func (e *MouseButtonPressedEvent) String() string {
	return fmt.Sprintf("MouseButtonPressedEvent: %d", e.Button)
}

// MouseButtonReleasedEvent is raised when a mouse button goes up.
type MouseButtonReleasedEvent struct {
	mouseButtonEvent
}

// NewMouseButtonReleasedEvent creates a MouseButtonReleasedEvent.
func NewMouseButtonReleasedEvent(button input.MouseButton) *MouseButtonReleasedEvent {
	return &MouseButtonReleasedEvent{mouseButtonEvent{Button: button}}
}

func (*MouseButtonReleasedEvent) StaticKind() Kind { return KindMouseButtonReleased }
func (e *MouseButtonReleasedEvent) Kind() Kind     { return e.StaticKind() }
func (e *MouseButtonReleasedEvent) Name() string   { return e.Kind().String() }

func (e *MouseButtonReleasedEvent) IsInCategory(c Category) bool {
	return e.Categories()&c != 0
}

func (e *MouseButtonReleasedEvent) String() string {
	return fmt.Sprintf("MouseButtonReleasedEvent: %d", e.Button)
}
