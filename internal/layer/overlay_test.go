package layer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/dshills/ember/internal/event"
	"github.com/dshills/ember/internal/input"
	"github.com/dshills/ember/internal/platform"
)

func TestTrace_LogsMatchingCategories(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	tr := NewTrace(zap.New(core), event.CategoryKeyboard)

	tr.OnEvent(event.NewKeyPressedEvent(input.KeyA, 0))
	tr.OnEvent(event.NewMouseMovedEvent(1, 2))

	entries := logs.FilterMessage("event").All()
	assert.Len(t, entries, 1)
	assert.Equal(t, uint64(1), tr.Count())

	obj, ok := entries[0].ContextMap()["event"].(map[string]any)
	if assert.True(t, ok) {
		assert.Equal(t, "KeyPressed", obj["name"])
	}
}

// outOfCategory is a key event that reports no category membership.
type outOfCategory struct {
	*event.KeyPressedEvent
}

func (outOfCategory) IsInCategory(event.Category) bool { return false }

func TestTrace_FiltersWithIsInCategory(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	tr := NewTrace(zap.New(core), event.CategoryKeyboard)

	tr.OnEvent(outOfCategory{event.NewKeyPressedEvent(input.KeyA, 0)})
	assert.Zero(t, logs.FilterMessage("event").Len())
	assert.Zero(t, tr.Count())
}

func TestTrace_NeverHandles(t *testing.T) {
	tr := NewTrace(nil, event.CategoryInput)
	e := event.NewKeyPressedEvent(input.KeyA, 0)
	tr.OnEvent(e)
	assert.False(t, e.Handled())
}

func TestTrace_SetMask(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	tr := NewTrace(zap.New(core), event.CategoryNone)

	tr.OnEvent(event.NewWindowCloseEvent())
	assert.Zero(t, logs.Len())

	tr.SetMask(event.CategoryApplication)
	assert.Equal(t, event.CategoryApplication, tr.Mask())
	tr.OnEvent(event.NewWindowCloseEvent())
	assert.Equal(t, 1, logs.FilterMessage("event").Len())
}

func TestHUD_KeepsLastLines(t *testing.T) {
	h := NewHUD("Ember", 2)

	h.OnEvent(event.NewWindowFocusEvent())
	h.OnEvent(event.NewAppTickEvent())
	h.OnEvent(event.NewKeyPressedEvent(input.KeyA, 0))
	h.OnEvent(event.NewMouseButtonPressedEvent(input.MouseButtonLeft))

	assert.Equal(t, []string{"KeyPressedEvent: 65 (0 repeats)", "MouseButtonPressedEvent: 0"}, h.Recent())
}

func TestHUD_Render(t *testing.T) {
	w := platform.NewNullWindow(40, 3)
	h := NewHUD("Ember", 5)
	h.OnEvent(event.NewWindowResizeEvent(40, 3))
	h.OnEvent(event.NewWindowFocusEvent())
	h.OnEvent(event.NewWindowLostFocusEvent())

	h.OnRender(w)

	assert.Equal(t, " Ember  events: 3", w.Line(0))
	assert.Equal(t, " WindowResizeEvent: 40, 3", w.Line(1))
	assert.Equal(t, " WindowFocus", w.Line(2))

	w.Clear()
	h.SetVisible(false)
	h.OnRender(w)
	assert.Empty(t, w.Line(0))
}

func TestHUD_ZeroLines(t *testing.T) {
	h := NewHUD("Ember", 0)
	h.OnEvent(event.NewWindowFocusEvent())
	assert.Empty(t, h.Recent())
}
