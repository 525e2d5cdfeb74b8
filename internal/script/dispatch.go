package script

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/ember/internal/event"
)

// dispatchToScript offers d to a handler for every event type. The one
// matching the event builds its table and lets the script decide whether
// it is handled.
func dispatchToScript(l *Layer, d event.Dispatcher) {
	on(l, d, func(*event.WindowCloseEvent, *lua.LTable) {})
	on(l, d, func(e *event.WindowResizeEvent, t *lua.LTable) {
		t.RawSetString("width", lua.LNumber(e.Width))
		t.RawSetString("height", lua.LNumber(e.Height))
	})
	on(l, d, func(*event.WindowFocusEvent, *lua.LTable) {})
	on(l, d, func(*event.WindowLostFocusEvent, *lua.LTable) {})
	on(l, d, func(e *event.WindowMovedEvent, t *lua.LTable) {
		t.RawSetString("x", lua.LNumber(e.X))
		t.RawSetString("y", lua.LNumber(e.Y))
	})
	on(l, d, func(*event.AppTickEvent, *lua.LTable) {})
	on(l, d, func(*event.AppUpdateEvent, *lua.LTable) {})
	on(l, d, func(*event.AppRenderEvent, *lua.LTable) {})
	on(l, d, func(e *event.KeyPressedEvent, t *lua.LTable) {
		setKey(t, e.KeyCode.String(), int(e.KeyCode), e.Mods.String(), int(e.Mods))
		t.RawSetString("repeat_count", lua.LNumber(e.RepeatCount))
	})
	on(l, d, func(e *event.KeyReleasedEvent, t *lua.LTable) {
		setKey(t, e.KeyCode.String(), int(e.KeyCode), e.Mods.String(), int(e.Mods))
	})
	on(l, d, func(e *event.MouseButtonPressedEvent, t *lua.LTable) {
		t.RawSetString("button", lua.LNumber(e.Button))
		t.RawSetString("button_name", lua.LString(e.Button.String()))
	})
	on(l, d, func(e *event.MouseButtonReleasedEvent, t *lua.LTable) {
		t.RawSetString("button", lua.LNumber(e.Button))
		t.RawSetString("button_name", lua.LString(e.Button.String()))
	})
	on(l, d, func(e *event.MouseMovedEvent, t *lua.LTable) {
		t.RawSetString("x", lua.LNumber(e.X))
		t.RawSetString("y", lua.LNumber(e.Y))
	})
	on(l, d, func(e *event.MouseScrolledEvent, t *lua.LTable) {
		t.RawSetString("x_offset", lua.LNumber(e.XOffset))
		t.RawSetString("y_offset", lua.LNumber(e.YOffset))
	})
}

func on[T any, PT event.Variant[T]](l *Layer, d event.Dispatcher, fill func(PT, *lua.LTable)) {
	event.Dispatch(d, func(e PT) bool {
		t := l.eventTable(e)
		if t == nil {
			return false
		}
		fill(e, t)
		return l.handle(t)
	})
}

func setKey(t *lua.LTable, name string, code int, mods string, modBits int) {
	t.RawSetString("key_code", lua.LNumber(code))
	t.RawSetString("key_name", lua.LString(name))
	t.RawSetString("mods", lua.LNumber(modBits))
	t.RawSetString("mods_name", lua.LString(mods))
}

// eventTable builds the fields every event table carries. It returns nil
// once the layer is closed.
func (l *Layer) eventTable(e event.Event) *lua.LTable {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil
	}
	t := l.L.NewTable()
	t.RawSetString("name", lua.LString(e.Name()))
	t.RawSetString("kind", lua.LNumber(e.Kind()))
	t.RawSetString("categories", lua.LNumber(e.Categories()))
	t.RawSetString("handled", lua.LBool(e.Handled()))
	t.RawSetString("desc", lua.LString(e.String()))
	return t
}
