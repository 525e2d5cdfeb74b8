package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dshills/ember/internal/event"
)

// Event returns a field describing e: its name, categories, handled flag and
// description.
func Event(e event.Event) zap.Field {
	if e == nil {
		return zap.String("event", "<nil>")
	}
	return zap.Object("event", eventObject{e})
}

type eventObject struct {
	e event.Event
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (o eventObject) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("name", o.e.Name())
	enc.AddString("categories", o.e.Categories().String())
	enc.AddBool("handled", o.e.Handled())
	enc.AddString("desc", o.e.String())
	return nil
}

// Violations returns an event.ViolationHandler that logs invariant
// violations at error level.
func Violations(log *zap.Logger) event.ViolationHandler {
	return func(err *event.InvariantError) {
		log.Error("event invariant violated",
			zap.String("kind", err.Kind.String()),
			zap.String("type", err.Type),
			zap.String("reason", err.Reason),
		)
	}
}
