package event

import (
	"fmt"

	"github.com/dshills/ember/internal/input"
)

// keyEvent is embedded by keyboard events and carries the key code.
type keyEvent struct {
	Base

	// KeyCode is the code of the key, see package input.
	KeyCode input.Key

	// Mods are the modifiers held when the event was produced.
	Mods input.Mod
}

// Categories returns CategoryKeyboard | CategoryInput.
func (keyEvent) Categories() Category {
	return CategoryKeyboard | CategoryInput
}

// KeyPressedEvent is raised when a key goes down or auto-repeats.
type KeyPressedEvent struct {
	keyEvent

	// RepeatCount is 0 for the initial press and counts auto-repeats after.
	RepeatCount int
}

// NewKeyPressedEvent creates a KeyPressedEvent.
func NewKeyPressedEvent(code input.Key, repeatCount int) *KeyPressedEvent {
	return &KeyPressedEvent{keyEvent: keyEvent{KeyCode: code}, RepeatCount: repeatCount}
}

// WithMods sets the modifiers and returns e.
func (e *KeyPressedEvent) WithMods(mods input.Mod) *KeyPressedEvent {
	e.Mods = mods
	return e
}

func (*KeyPressedEvent) StaticKind() Kind { return KindKeyPressed }
func (e *KeyPressedEvent) Kind() Kind     { return e.StaticKind() }
func (e *KeyPressedEvent) Name() string   { return e.Kind().String() }

func (e *KeyPressedEvent) IsInCategory(c Category) bool {
	return e.Categories()&c != 0
}

func (e *KeyPressedEvent) String() string {
	return fmt.Sprintf("KeyPressedEvent: %d (%d repeats)", e.KeyCode, e.RepeatCount)
}

// KeyReleasedEvent is raised when a key goes up.
type KeyReleasedEvent struct {
	keyEvent
}

// NewKeyReleasedEvent creates a KeyReleasedEvent.
func NewKeyReleasedEvent(code input.Key) *KeyReleasedEvent {
	return &KeyReleasedEvent{keyEvent: keyEvent{KeyCode: code}}
}

// WithMods sets the modifiers and returns e.
func (e *KeyReleasedEvent) WithMods(mods input.Mod) *KeyReleasedEvent {
	e.Mods = mods
	return e
}

func (*KeyReleasedEvent) StaticKind() Kind { return KindKeyReleased }
func (e *KeyReleasedEvent) Kind() Kind     { return e.StaticKind() }
func (e *KeyReleasedEvent) Name() string   { return e.Kind().String() }

func (e *KeyReleasedEvent) IsInCategory(c Category) bool {
	return e.Categories()&c != 0
}

func (e *KeyReleasedEvent) String() string {
	return fmt.Sprintf("KeyReleasedEvent: %d", e.KeyCode)
}
