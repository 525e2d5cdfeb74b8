package event

import "fmt"

// Variant is satisfied by pointers to concrete event types. StaticKind must
// not read its receiver: Dispatch calls it on a nil pointer to learn the
// kind of PT without an instance.
type Variant[T any] interface {
	*T
	Event
	StaticKind() Kind
}

// Dispatcher binds one event for a round of typed Dispatch attempts.
// It holds nothing but the reference and must not outlive the round.
type Dispatcher struct {
	event Event
}

// NewDispatcher creates a dispatcher bound to e.
func NewDispatcher(e Event) Dispatcher {
	return Dispatcher{event: e}
}

// Event returns the bound event.
func (d Dispatcher) Event() Event {
	return d.event
}

// StaticKind returns the kind of the variant T without an instance.
func StaticKind[T any, PT Variant[T]]() Kind {
	var zero PT
	return zero.StaticKind()
}

// Dispatch offers the bound event to fn if the event is of kind PT.
//
// On a kind match the event is converted to PT, fn runs exactly once and
// the event's handled flag becomes fn's result. Dispatch then returns true,
// meaning a handler was attempted, whatever fn returned. On a mismatch fn is
// not called, the handled flag is untouched and Dispatch returns false.
//
// Dispatch does not look at the handled flag before running. Repeated
// Dispatch calls against one dispatcher all run, so callers that want to
// stop after the first consumer must check Handled themselves.
//
// An event whose kind tag matches PT but whose concrete type is not PT
// violates the event invariant. Dispatch reports it, see
// SetViolationHandler, and otherwise behaves as on a kind mismatch.
func Dispatch[T any, PT Variant[T]](d Dispatcher, fn func(PT) bool) bool {
	if d.event == nil {
		return false
	}

	want := StaticKind[T, PT]()
	if d.event.Kind() != want {
		return false
	}

	target, ok := d.event.(PT)
	if !ok {
		reportViolation(&InvariantError{
			Kind:   want,
			Type:   fmt.Sprintf("%T", d.event),
			Reason: fmt.Sprintf("kind tag matches %T but concrete type differs", target),
		})
		return false
	}
	if (*T)(target) == nil {
		reportViolation(&InvariantError{
			Kind:   want,
			Type:   fmt.Sprintf("%T", d.event),
			Reason: "nil event pointer",
		})
		return false
	}

	d.event.setHandled(fn(target))
	return true
}
