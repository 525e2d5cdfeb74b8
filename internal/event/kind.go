package event

import (
	"fmt"
	"strings"
)

// Kind identifies a concrete event variant. The set is closed: every
// variant in this package has exactly one Kind and no other values are
// legitimate at runtime.
type Kind uint8

// Event kinds.
const (
	// KindNone marks an uninitialized or invalid kind. No real event
	// reports it.
	KindNone Kind = iota

	KindWindowClose
	KindWindowResize
	KindWindowFocus
	KindWindowLostFocus
	KindWindowMoved

	KindAppTick
	KindAppUpdate
	KindAppRender

	KindKeyPressed
	KindKeyReleased

	KindMouseButtonPressed
	KindMouseButtonReleased
	KindMouseMoved
	KindMouseScrolled

	kindCount
)

type kindInfo struct {
	name       string
	categories Category
}

var kindTable = [kindCount]kindInfo{
	KindNone:                {"None", CategoryNone},
	KindWindowClose:         {"WindowClose", CategoryApplication},
	KindWindowResize:        {"WindowResize", CategoryApplication},
	KindWindowFocus:         {"WindowFocus", CategoryApplication},
	KindWindowLostFocus:     {"WindowLostFocus", CategoryApplication},
	KindWindowMoved:         {"WindowMoved", CategoryApplication},
	KindAppTick:             {"AppTick", CategoryApplication},
	KindAppUpdate:           {"AppUpdate", CategoryApplication},
	KindAppRender:           {"AppRender", CategoryApplication},
	KindKeyPressed:          {"KeyPressed", CategoryKeyboard | CategoryInput},
	KindKeyReleased:         {"KeyReleased", CategoryKeyboard | CategoryInput},
	KindMouseButtonPressed:  {"MouseButtonPressed", CategoryMouse | CategoryInput | CategoryMouseButton},
	KindMouseButtonReleased: {"MouseButtonReleased", CategoryMouse | CategoryInput | CategoryMouseButton},
	KindMouseMoved:          {"MouseMoved", CategoryMouse | CategoryInput},
	KindMouseScrolled:       {"MouseScrolled", CategoryMouse | CategoryInput},
}

// Kinds returns every valid kind in declaration order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, kindCount-1)
	for k := KindNone + 1; k < kindCount; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// Valid reports whether k names a real event variant.
func (k Kind) Valid() bool {
	return k > KindNone && k < kindCount
}

// String returns the diagnostic name of the kind, e.g. "KeyPressed".
func (k Kind) String() string {
	if k < kindCount {
		return kindTable[k].name
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Categories returns the category mask carried by the variant of kind k.
// It exists for validation; events report their own mask.
func (k Kind) Categories() Category {
	if k < kindCount {
		return kindTable[k].categories
	}
	return CategoryNone
}

// ParseKind returns the kind with the given name, ignoring case.
func ParseKind(name string) (Kind, error) {
	for _, k := range Kinds() {
		if strings.EqualFold(k.String(), name) {
			return k, nil
		}
	}
	return KindNone, fmt.Errorf("%w: %q", ErrUnknownKind, name)
}
