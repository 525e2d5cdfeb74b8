package event

import (
	"fmt"
	"io"
)

// Event is the uniform handle shared by every concrete event variant.
//
// Apart from the handled flag, every method is a pure function of the
// variant: Kind, Name and Categories never depend on instance data. Only a
// Dispatcher changes the handled flag.
type Event interface {
	// Kind returns the concrete kind of this event.
	Kind() Kind

	// Name returns a short diagnostic identifier, e.g. "KeyPressed".
	Name() string

	// Categories returns the fixed category mask of the variant.
	Categories() Category

	// String returns a human-readable description. Variants without
	// payload return Name; variants with payload include it.
	String() string

	// IsInCategory reports whether Categories()&c != 0.
	IsInCategory(c Category) bool

	// Handled reports whether a handler consumed the event.
	Handled() bool

	setHandled(handled bool)
}

// Base carries the state shared by all variants: the handled flag.
// Variants embed it; embedding Base is the only way to satisfy Event.
type Base struct {
	handled bool
}

// Handled reports whether a handler consumed the event.
func (b *Base) Handled() bool {
	return b.handled
}

func (b *Base) setHandled(handled bool) {
	b.handled = handled
}

// Fprint writes the description of e to w.
func Fprint(w io.Writer, e Event) (int, error) {
	if e == nil {
		return io.WriteString(w, "<nil>")
	}
	return io.WriteString(w, e.String())
}

// Validate checks that e is internally consistent: a valid kind, the
// category mask and name that belong to that kind. It is a debugging aid
// for event producers; Dispatch does not depend on it.
func Validate(e Event) error {
	if e == nil {
		return &InvariantError{Reason: "nil event"}
	}
	k := e.Kind()
	if !k.Valid() {
		return &InvariantError{Kind: k, Type: fmt.Sprintf("%T", e), Reason: "invalid kind"}
	}
	if got, want := e.Categories(), k.Categories(); got != want {
		return &InvariantError{
			Kind:   k,
			Type:   fmt.Sprintf("%T", e),
			Reason: fmt.Sprintf("categories %s, want %s", got, want),
		}
	}
	if got, want := e.Name(), k.String(); got != want {
		return &InvariantError{
			Kind:   k,
			Type:   fmt.Sprintf("%T", e),
			Reason: fmt.Sprintf("name %q, want %q", got, want),
		}
	}
	return nil
}
