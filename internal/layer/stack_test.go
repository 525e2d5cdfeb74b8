package layer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/ember/internal/event"
	"github.com/dshills/ember/internal/input"
)

// recorder logs lifecycle calls into a shared journal and optionally
// handles key presses.
type recorder struct {
	Base
	journal *[]string
	handle  bool
	updates []Timestep
}

func newRecorder(name string, journal *[]string, handle bool) *recorder {
	return &recorder{Base: NewBase(name), journal: journal, handle: handle}
}

func (r *recorder) OnAttach()            { *r.journal = append(*r.journal, r.Name()+":attach") }
func (r *recorder) OnDetach()            { *r.journal = append(*r.journal, r.Name()+":detach") }
func (r *recorder) OnUpdate(ts Timestep) { r.updates = append(r.updates, ts) }
func (r *recorder) OnRender(Surface)     { *r.journal = append(*r.journal, r.Name()+":render") }

func (r *recorder) OnEvent(e event.Event) {
	*r.journal = append(*r.journal, r.Name()+":"+e.Name())
	event.Dispatch(event.NewDispatcher(e), func(*event.KeyPressedEvent) bool {
		return r.handle
	})
}

func names(layers []Layer) []string {
	out := make([]string, len(layers))
	for i, l := range layers {
		out[i] = l.Name()
	}
	return out
}

func TestStack_Ordering(t *testing.T) {
	var j []string
	s := NewStack()

	s.PushOverlay(newRecorder("o1", &j, false))
	s.PushLayer(newRecorder("l1", &j, false))
	s.PushLayer(newRecorder("l2", &j, false))
	s.PushOverlay(newRecorder("o2", &j, false))

	assert.Equal(t, []string{"l1", "l2", "o1", "o2"}, names(s.Layers()))
	assert.Equal(t, 4, s.Len())
	assert.Equal(t, []string{"o1:attach", "l1:attach", "l2:attach", "o2:attach"}, j)
}

func TestStack_Pop(t *testing.T) {
	var j []string
	s := NewStack()
	l1 := newRecorder("l1", &j, false)
	l2 := newRecorder("l2", &j, false)
	o1 := newRecorder("o1", &j, false)
	s.PushLayer(l1)
	s.PushLayer(l2)
	s.PushOverlay(o1)
	j = nil

	assert.False(t, s.PopOverlay(l1), "l1 is not an overlay")
	assert.False(t, s.PopLayer(o1), "o1 is not a layer")

	require.True(t, s.PopLayer(l1))
	assert.Equal(t, []string{"l2", "o1"}, names(s.Layers()))

	s.PushLayer(l1)
	assert.Equal(t, []string{"l2", "l1", "o1"}, names(s.Layers()), "layers still go below overlays")

	require.True(t, s.PopOverlay(o1))
	assert.Equal(t, []string{"l2", "l1"}, names(s.Layers()))
	assert.Equal(t, []string{"l1:detach", "l1:attach", "o1:detach"}, j)

	assert.False(t, s.PopLayer(o1))
}

func TestStack_Detach(t *testing.T) {
	var j []string
	s := NewStack()
	s.PushLayer(newRecorder("l1", &j, false))
	s.PushOverlay(newRecorder("o1", &j, false))
	j = nil

	s.Detach()
	assert.Equal(t, []string{"o1:detach", "l1:detach"}, j)
	assert.Zero(t, s.Len())

	s.PushLayer(newRecorder("l2", &j, false))
	assert.Equal(t, []string{"l2"}, names(s.Layers()))
}

func TestStack_PropagateTopDown(t *testing.T) {
	var j []string
	s := NewStack()
	s.PushLayer(newRecorder("bottom", &j, false))
	s.PushOverlay(newRecorder("top", &j, false))
	j = nil

	s.Propagate(event.NewWindowFocusEvent())
	assert.Equal(t, []string{"top:WindowFocus", "bottom:WindowFocus"}, j)
}

func TestStack_PropagateStopsWhenHandled(t *testing.T) {
	var j []string
	s := NewStack()
	s.PushLayer(newRecorder("bottom", &j, false))
	s.PushLayer(newRecorder("middle", &j, true))
	s.PushOverlay(newRecorder("top", &j, false))
	j = nil

	e := event.NewKeyPressedEvent(input.KeyA, 0)
	s.Propagate(e)

	assert.True(t, e.Handled())
	assert.Equal(t, []string{"top:KeyPressed", "middle:KeyPressed"}, j)
}

func TestStack_PropagateNil(t *testing.T) {
	var j []string
	s := NewStack()
	s.PushLayer(newRecorder("l", &j, false))
	j = nil

	assert.NotPanics(t, func() { s.Propagate(nil) })
	assert.Empty(t, j)
}

func TestStack_UpdateAndRender(t *testing.T) {
	var j []string
	s := NewStack()
	l := newRecorder("l", &j, false)
	o := newRecorder("o", &j, false)
	s.PushOverlay(o)
	s.PushLayer(l)
	j = nil

	s.Update(Timestep(16 * time.Millisecond))
	assert.Equal(t, []Timestep{Timestep(16 * time.Millisecond)}, l.updates)
	assert.Len(t, o.updates, 1)

	s.Render(nil)
	assert.Equal(t, []string{"l:render", "o:render"}, j)
}

func TestTimestep(t *testing.T) {
	ts := Timestep(1500 * time.Millisecond)
	assert.InDelta(t, 1.5, ts.Seconds(), 1e-9)
	assert.InDelta(t, 1500.0, ts.Milliseconds(), 1e-9)
}

func TestBase(t *testing.T) {
	var l Layer = NewBase("plain")
	assert.Equal(t, "plain", l.Name())
	assert.NotPanics(t, func() {
		l.OnAttach()
		l.OnUpdate(0)
		l.OnEvent(event.NewAppTickEvent())
		l.OnRender(nil)
		l.OnDetach()
	})
}
