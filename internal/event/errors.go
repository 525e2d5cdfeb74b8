package event

import (
	"errors"
	"sync/atomic"
)

// Sentinel errors for the event package.
var (
	// ErrInvariantViolation is matched by every *InvariantError.
	ErrInvariantViolation = errors.New("event invariant violated")

	// ErrUnknownKind is returned when parsing an unknown kind name.
	ErrUnknownKind = errors.New("unknown event kind")

	// ErrUnknownCategory is returned when parsing an unknown category name.
	ErrUnknownCategory = errors.New("unknown event category")
)

// InvariantError describes an event whose kind tag, concrete type or
// category mask disagree.
type InvariantError struct {
	// Kind is the kind involved in the check.
	Kind Kind

	// Type is the concrete Go type of the offending event.
	Type string

	// Reason explains what disagreed.
	Reason string
}

// Error implements the error interface.
func (e *InvariantError) Error() string {
	msg := "event invariant violated"
	if e.Type != "" {
		msg += " by " + e.Type
	}
	if e.Kind != KindNone {
		msg += " (kind " + e.Kind.String() + ")"
	}
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// Is allows errors.Is to match InvariantError with ErrInvariantViolation.
func (e *InvariantError) Is(target error) bool {
	return target == ErrInvariantViolation
}

// ViolationHandler receives invariant violations detected by Dispatch.
type ViolationHandler func(err *InvariantError)

var violationHandler atomic.Pointer[ViolationHandler]

// SetViolationHandler installs h as the process-wide receiver of invariant
// violations and returns the previous handler. A nil h discards them.
func SetViolationHandler(h ViolationHandler) ViolationHandler {
	var prev *ViolationHandler
	if h == nil {
		prev = violationHandler.Swap(nil)
	} else {
		prev = violationHandler.Swap(&h)
	}
	if prev == nil {
		return nil
	}
	return *prev
}

func reportViolation(err *InvariantError) {
	if h := violationHandler.Load(); h != nil {
		(*h)(err)
	}
	if debugAssertions {
		panic(err)
	}
}
