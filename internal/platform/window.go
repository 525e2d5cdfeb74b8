// Package platform connects Ember to a display and its input devices.
//
// A Window turns native input into event.Event values and hands them to
// a single callback. Terminal drives a real terminal through tcell;
// NullWindow is a scripted, headless stand-in.
package platform

import (
	"time"

	"github.com/dshills/ember/internal/event"
)

// EventCallback receives every event a window produces.
type EventCallback func(event.Event)

// Style is a text attribute set for DrawText.
type Style uint8

// Text styles.
const (
	StyleNormal Style = 0
	StyleBold   Style = 1 << (iota - 1)
	StyleDim
	StyleReverse
)

// Has reports whether s includes every attribute in o.
func (s Style) Has(o Style) bool {
	return s&o == o
}

// Surface is something text can be drawn on.
type Surface interface {
	// Size returns the drawable area in cells.
	Size() (width, height int)

	// DrawText writes text starting at (x, y). Text past the right edge
	// is clipped.
	DrawText(x, y int, text string, style Style)
}

// Window is a platform window.
type Window interface {
	Surface

	// Init acquires the display. It must be called before anything else.
	Init() error

	// Shutdown releases the display.
	Shutdown()

	// SetEventCallback sets the receiver of translated events.
	SetEventCallback(cb EventCallback)

	// OnUpdate delivers all pending input to the callback, synchronously
	// and in arrival order.
	OnUpdate()

	// RequestClose asks the window to emit a WindowClose event on a
	// later OnUpdate. Safe to call from any goroutine.
	RequestClose()

	// Clear blanks the back buffer.
	Clear()

	// Show presents the back buffer.
	Show()
}

// Options control input translation.
type Options struct {
	// Mouse enables mouse reporting.
	Mouse bool

	// RepeatWindow is the longest gap between presses of the same key
	// that still counts as an auto-repeat. Zero disables repeat counting.
	RepeatWindow time.Duration

	// SynthesizeKeyRelease emits a KeyReleased after every KeyPressed.
	SynthesizeKeyRelease bool

	// CloseOnCtrlQ turns Ctrl+Q into WindowClose.
	CloseOnCtrlQ bool
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{
		Mouse:                true,
		RepeatWindow:         80 * time.Millisecond,
		SynthesizeKeyRelease: true,
		CloseOnCtrlQ:         true,
	}
}
