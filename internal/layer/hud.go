package layer

import (
	"fmt"
	"sync"

	"github.com/dshills/ember/internal/event"
	"github.com/dshills/ember/internal/platform"
)

// HUD is an overlay showing the most recent events.
type HUD struct {
	Base
	title string

	mu      sync.Mutex
	limit   int
	recent  []string
	total   int
	visible bool
}

// NewHUD creates a HUD remembering up to lines events.
func NewHUD(title string, lines int) *HUD {
	return &HUD{
		Base:    NewBase("hud"),
		title:   title,
		limit:   max(lines, 0),
		visible: true,
	}
}

// SetVisible shows or hides the overlay. Events are recorded either way.
func (h *HUD) SetVisible(v bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.visible = v
}

// Recent returns the remembered descriptions, oldest first.
func (h *HUD) Recent() []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]string, len(h.recent))
	copy(out, h.recent)
	return out
}

// OnEvent records e. Per-frame application events are skipped.
func (h *HUD) OnEvent(e event.Event) {
	switch e.Kind() {
	case event.KindAppTick, event.KindAppUpdate, event.KindAppRender:
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	h.total++
	if h.limit == 0 {
		return
	}
	if len(h.recent) == h.limit {
		copy(h.recent, h.recent[1:])
		h.recent = h.recent[:len(h.recent)-1]
	}
	h.recent = append(h.recent, e.String())
}

func (h *HUD) OnRender(s Surface) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if !h.visible {
		return
	}
	_, height := s.Size()
	s.DrawText(0, 0, fmt.Sprintf(" %s  events: %d ", h.title, h.total), platform.StyleReverse)
	for i, line := range h.recent {
		y := i + 1
		if y >= height {
			return
		}
		s.DrawText(1, y, line, platform.StyleNormal)
	}
}
