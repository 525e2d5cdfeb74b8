// Package event provides Ember's in-process event model and its
// type-safe dispatcher.
//
// Platform code (the terminal window, the application loop) creates a
// concrete event such as *KeyPressedEvent and hands it to the application as
// the uniform Event handle. Code interested in one kind of event wraps the
// handle in a Dispatcher and offers it typed handlers:
//
//	d := event.NewDispatcher(e)
//	event.Dispatch(d, func(e *event.KeyPressedEvent) bool {
//	    return e.KeyCode == input.KeyEscape
//	})
//	event.Dispatch(d, func(e *event.WindowResizeEvent) bool {
//	    resize(e.Width, e.Height)
//	    return false
//	})
//
// Dispatch compares the event's kind tag with the handler's static kind,
// performs a checked type assertion and runs the handler only on a match.
// The handler's result becomes the event's handled flag.
//
// # Categories
//
// Every variant belongs to a fixed set of coarse categories, combined in a
// Category bitmask. Categories answer questions such as "is this any kind of
// mouse event?" without caring about the exact kind:
//
//	if e.IsInCategory(event.CategoryMouse | event.CategoryKeyboard) {
//	    resetIdleTimer()
//	}
//
// # Delivery
//
// Delivery is synchronous. An event is fully handled, or ignored, before the
// call that raised it returns; nothing in this package queues, buffers or
// spawns goroutines. A Dispatcher is built for one event, used for one round
// of Dispatch calls and then dropped.
//
// Dispatch never consults the handled flag before running. Offering several
// typed handlers to the same Dispatcher attempts every one of them, even after
// an earlier handler reported the event as handled. Callers that want to stop
// early check Event.Handled between attempts.
//
// # Concurrency
//
// Events are not safe for concurrent use. An event belongs to the goroutine
// running its dispatch round; callers that share an event must serialize
// access themselves.
//
// # Invariant violations
//
// A variant whose kind tag disagrees with its concrete type is a programming
// error. Dispatch treats it as a kind mismatch and reports an
// *InvariantError to the handler installed with SetViolationHandler. Builds
// with the eventdebug tag panic instead.
package event
