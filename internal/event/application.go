package event

import "fmt"

// applicationEvent is embedded by window and application lifecycle events.
type applicationEvent struct {
	Base
}

// Categories returns CategoryApplication.
func (applicationEvent) Categories() Category {
	return CategoryApplication
}

// WindowCloseEvent is raised when the user or the system asks the window
// to close.
type WindowCloseEvent struct {
	applicationEvent
}

// NewWindowCloseEvent creates a WindowCloseEvent.
func NewWindowCloseEvent() *WindowCloseEvent {
	return &WindowCloseEvent{}
}

func (*WindowCloseEvent) StaticKind() Kind { return KindWindowClose }
func (e *WindowCloseEvent) Kind() Kind     { return e.StaticKind() }
func (e *WindowCloseEvent) Name() string   { return e.Kind().String() }
func (e *WindowCloseEvent) String() string { return e.Name() }

func (e *WindowCloseEvent) IsInCategory(c Category) bool {
	return e.Categories()&c != 0
}

// WindowResizeEvent is raised when the window size changes.
// Width and Height are in cells for terminal windows.
type WindowResizeEvent struct {
	applicationEvent
	Width  uint
	Height uint
}

// NewWindowResizeEvent creates a WindowResizeEvent.
func NewWindowResizeEvent(width, height uint) *WindowResizeEvent {
	return &WindowResizeEvent{Width: width, Height: height}
}

func (*WindowResizeEvent) StaticKind() Kind { return KindWindowResize }
func (e *WindowResizeEvent) Kind() Kind     { return e.StaticKind() }
func (e *WindowResizeEvent) Name() string   { return e.Kind().String() }

func (e *WindowResizeEvent) IsInCategory(c Category) bool {
	return e.Categories()&c != 0
}

func (e *WindowResizeEvent) String() string {
	return fmt.Sprintf("WindowResizeEvent: %d, %d", e.Width, e.Height)
}

// WindowFocusEvent is raised when the window gains input focus.
type WindowFocusEvent struct {
	applicationEvent
}

// NewWindowFocusEvent creates a WindowFocusEvent.
func NewWindowFocusEvent() *WindowFocusEvent {
	return &WindowFocusEvent{}
}

func (*WindowFocusEvent) StaticKind() Kind { return KindWindowFocus }
func (e *WindowFocusEvent) Kind() Kind     { return e.StaticKind() }
func (e *WindowFocusEvent) Name() string   { return e.Kind().String() }
func (e *WindowFocusEvent) String() string { return e.Name() }

func (e *WindowFocusEvent) IsInCategory(c Category) bool {
	return e.Categories()&c != 0
}

// WindowLostFocusEvent is raised when the window loses input focus.
type WindowLostFocusEvent struct {
	applicationEvent
}

// NewWindowLostFocusEvent creates a WindowLostFocusEvent.
func NewWindowLostFocusEvent() *WindowLostFocusEvent {
	return &WindowLostFocusEvent{}
}

func (*WindowLostFocusEvent) StaticKind() Kind { return KindWindowLostFocus }
func (e *WindowLostFocusEvent) Kind() Kind     { return e.StaticKind() }
func (e *WindowLostFocusEvent) Name() string   { return e.Kind().String() }
func (e *WindowLostFocusEvent) String() string { return e.Name() }

func (e *WindowLostFocusEvent) IsInCategory(c Category) bool {
	return e.Categories()&c != 0
}

// WindowMovedEvent is raised when the window moves on screen.
type WindowMovedEvent struct {
	applicationEvent
	X int
	Y int
}

// NewWindowMovedEvent creates a WindowMovedEvent.
func NewWindowMovedEvent(x, y int) *WindowMovedEvent {
	return &WindowMovedEvent{X: x, Y: y}
}

func (*WindowMovedEvent) StaticKind() Kind { return KindWindowMoved }
func (e *WindowMovedEvent) Kind() Kind     { return e.StaticKind() }
func (e *WindowMovedEvent) Name() string   { return e.Kind().String() }

func (e *WindowMovedEvent) IsInCategory(c Category) bool {
	return e.Categories()&c != 0
}

func (e *WindowMovedEvent) String() string {
	return fmt.Sprintf("WindowMovedEvent: %d, %d", e.X, e.Y)
}

// AppTickEvent is raised once per frame before anything else runs.
type AppTickEvent struct {
	applicationEvent
}

// NewAppTickEvent creates an AppTickEvent.
func NewAppTickEvent() *AppTickEvent {
	return &AppTickEvent{}
}

func (*AppTickEvent) StaticKind() Kind { return KindAppTick }
func (e *AppTickEvent) Kind() Kind     { return e.StaticKind() }
func (e *AppTickEvent) Name() string   { return e.Kind().String() }
func (e *AppTickEvent) String() string { return e.Name() }

func (e *AppTickEvent) IsInCategory(c Category) bool {
	return e.Categories()&c != 0
}

// AppUpdateEvent is raised after the layers have been updated.
type AppUpdateEvent struct {
	applicationEvent
}

// NewAppUpdateEvent creates an AppUpdateEvent.
func NewAppUpdateEvent() *AppUpdateEvent {
	return &AppUpdateEvent{}
}

func (*AppUpdateEvent) StaticKind() Kind { return KindAppUpdate }
func (e *AppUpdateEvent) Kind() Kind     { return e.StaticKind() }
func (e *AppUpdateEvent) Name() string   { return e.Kind().String() }
func (e *AppUpdateEvent) String() string { return e.Name() }

func (e *AppUpdateEvent) IsInCategory(c Category) bool {
	return e.Categories()&c != 0
}

// AppRenderEvent is raised after the layers have rendered a frame.
type AppRenderEvent struct {
	applicationEvent
}

// NewAppRenderEvent creates an AppRenderEvent.
func NewAppRenderEvent() *AppRenderEvent {
	return &AppRenderEvent{}
}

func (*AppRenderEvent) StaticKind() Kind { return KindAppRender }
func (e *AppRenderEvent) Kind() Kind     { return e.StaticKind() }
func (e *AppRenderEvent) Name() string   { return e.Kind().String() }
func (e *AppRenderEvent) String() string { return e.Name() }

func (e *AppRenderEvent) IsInCategory(c Category) bool {
	return e.Categories()&c != 0
}
