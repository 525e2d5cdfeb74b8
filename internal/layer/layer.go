// Package layer holds the ordered set of event consumers an application
// is built from.
//
// Layers sit below overlays. Updates and rendering run bottom to top;
// events travel top to bottom and stop at the first layer that marks
// them handled.
package layer

import (
	"time"

	"github.com/dshills/ember/internal/event"
	"github.com/dshills/ember/internal/platform"
)

// Timestep is the time elapsed since the previous frame.
type Timestep time.Duration

// Seconds returns the timestep in seconds.
func (t Timestep) Seconds() float64 {
	return time.Duration(t).Seconds()
}

// Milliseconds returns the timestep in milliseconds.
func (t Timestep) Milliseconds() float64 {
	return float64(time.Duration(t)) / float64(time.Millisecond)
}

// Surface is what layers render onto.
type Surface = platform.Surface

// Layer is one slice of application behaviour.
type Layer interface {
	Name() string
	OnAttach()
	OnDetach()
	OnUpdate(ts Timestep)
	OnRender(s Surface)

	// OnEvent receives events not yet handled by a layer above. Mark an
	// event handled through event.Dispatch to stop it going further down.
	OnEvent(e event.Event)
}

// Base provides no-op implementations of every Layer method except the
// ones a concrete layer overrides.
type Base struct {
	name string
}

// NewBase returns a Base reporting name.
func NewBase(name string) Base {
	return Base{name: name}
}

func (b Base) Name() string      { return b.name }
func (Base) OnAttach()           {}
func (Base) OnDetach()           {}
func (Base) OnUpdate(Timestep)   {}
func (Base) OnRender(Surface)    {}
func (Base) OnEvent(event.Event) {}
