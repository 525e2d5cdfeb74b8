package layer

import (
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/dshills/ember/internal/event"
	"github.com/dshills/ember/internal/logging"
)

// Trace logs events whose categories intersect its mask. It never marks
// an event handled.
type Trace struct {
	Base
	log  *zap.Logger
	mask atomic.Uint32
	seen atomic.Uint64
}

// NewTrace creates a trace layer logging to log.
func NewTrace(log *zap.Logger, mask event.Category) *Trace {
	if log == nil {
		log = zap.NewNop()
	}
	t := &Trace{Base: NewBase("trace"), log: log}
	t.SetMask(mask)
	return t
}

// SetMask replaces the category mask. Safe for concurrent use.
func (t *Trace) SetMask(mask event.Category) {
	t.mask.Store(uint32(mask))
}

// Mask returns the current category mask.
func (t *Trace) Mask() event.Category {
	return event.Category(t.mask.Load())
}

// Count returns how many events were logged.
func (t *Trace) Count() uint64 {
	return t.seen.Load()
}

func (t *Trace) OnAttach() {
	t.log.Debug("trace attached", zap.Stringer("mask", t.Mask()))
}

func (t *Trace) OnEvent(e event.Event) {
	if !e.IsInCategory(t.Mask()) {
		return
	}
	t.seen.Add(1)
	t.log.Info("event", logging.Event(e))
}
