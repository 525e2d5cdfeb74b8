package layer

import (
	"sync"

	"github.com/dshills/ember/internal/event"
)

// Stack orders layers and overlays. Overlays always sit above layers.
type Stack struct {
	mu     sync.RWMutex
	layers []Layer // bottom to top
	insert int     // index of the first overlay
}

// NewStack creates an empty stack.
func NewStack() *Stack {
	return &Stack{}
}

// PushLayer adds l above the existing layers and below every overlay,
// then attaches it.
func (s *Stack) PushLayer(l Layer) {
	s.mu.Lock()
	s.layers = append(s.layers, nil)
	copy(s.layers[s.insert+1:], s.layers[s.insert:])
	s.layers[s.insert] = l
	s.insert++
	s.mu.Unlock()

	l.OnAttach()
}

// PushOverlay adds l on top of the stack, then attaches it.
func (s *Stack) PushOverlay(l Layer) {
	s.mu.Lock()
	s.layers = append(s.layers, l)
	s.mu.Unlock()

	l.OnAttach()
}

// PopLayer detaches and removes l from the layers.
// It reports whether l was found.
func (s *Stack) PopLayer(l Layer) bool {
	s.mu.Lock()
	i := indexOf(s.layers[:s.insert], l)
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	s.layers = append(s.layers[:i], s.layers[i+1:]...)
	s.insert--
	s.mu.Unlock()

	l.OnDetach()
	return true
}

// PopOverlay detaches and removes l from the overlays.
// It reports whether l was found.
func (s *Stack) PopOverlay(l Layer) bool {
	s.mu.Lock()
	i := indexOf(s.layers[s.insert:], l)
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	i += s.insert
	s.layers = append(s.layers[:i], s.layers[i+1:]...)
	s.mu.Unlock()

	l.OnDetach()
	return true
}

func indexOf(layers []Layer, l Layer) int {
	for i, x := range layers {
		if x == l {
			return i
		}
	}
	return -1
}

// Layers returns a copy of the stack, bottom to top.
func (s *Stack) Layers() []Layer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]Layer, len(s.layers))
	copy(result, s.layers)
	return result
}

// Len returns the number of layers and overlays.
func (s *Stack) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.layers)
}

// Detach removes everything, detaching from the top down.
func (s *Stack) Detach() {
	s.mu.Lock()
	layers := s.layers
	s.layers = nil
	s.insert = 0
	s.mu.Unlock()

	for i := len(layers) - 1; i >= 0; i-- {
		layers[i].OnDetach()
	}
}

// Update runs OnUpdate bottom to top.
func (s *Stack) Update(ts Timestep) {
	for _, l := range s.Layers() {
		l.OnUpdate(ts)
	}
}

// Render runs OnRender bottom to top.
func (s *Stack) Render(surface Surface) {
	for _, l := range s.Layers() {
		l.OnRender(surface)
	}
}

// Propagate offers e to each layer from the top down, stopping once a
// layer has marked it handled. An event that arrives already handled
// reaches no layer.
func (s *Stack) Propagate(e event.Event) {
	if e == nil {
		return
	}
	layers := s.Layers()
	for i := len(layers) - 1; i >= 0; i-- {
		if e.Handled() {
			return
		}
		layers[i].OnEvent(e)
	}
}
