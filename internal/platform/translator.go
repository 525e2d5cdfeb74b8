package platform

import (
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/ember/internal/event"
	"github.com/dshills/ember/internal/input"
)

// closeRequest is the interrupt payload posted by RequestClose.
type closeRequest struct{}

// Translator converts tcell events into Ember events. It keeps the state
// needed to derive key repeats, pointer motion and button transitions, so
// one Translator must see every event of a screen in order.
type Translator struct {
	opts Options
	now  func() time.Time

	lastKey   input.Key
	lastMods  input.Mod
	lastPress time.Time
	repeat    int

	havePos bool
	mouseX  int
	mouseY  int
	buttons tcell.ButtonMask
}

// NewTranslator creates a translator.
func NewTranslator(opts Options) *Translator {
	return &Translator{
		opts:    opts,
		now:     time.Now,
		lastKey: input.KeyUnknown,
	}
}

// Translate returns the events produced by ev, possibly none.
func (t *Translator) Translate(ev tcell.Event) []event.Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return t.key(e)
	case *tcell.EventMouse:
		return t.mouse(e)
	case *tcell.EventResize:
		w, h := e.Size()
		return []event.Event{event.NewWindowResizeEvent(uint(max(w, 0)), uint(max(h, 0)))}
	case *tcell.EventFocus:
		if e.Focused {
			return []event.Event{event.NewWindowFocusEvent()}
		}
		return []event.Event{event.NewWindowLostFocusEvent()}
	case *tcell.EventInterrupt:
		if _, ok := e.Data().(closeRequest); ok {
			return []event.Event{event.NewWindowCloseEvent()}
		}
	}
	return nil
}

func (t *Translator) key(e *tcell.EventKey) []event.Event {
	code, mods := convertKey(e)
	if code == input.KeyUnknown {
		return nil
	}

	if t.opts.CloseOnCtrlQ && code == input.KeyQ && mods.Has(input.ModCtrl) {
		return []event.Event{event.NewWindowCloseEvent()}
	}

	now := t.now()
	if t.opts.RepeatWindow > 0 && code == t.lastKey && mods == t.lastMods &&
		now.Sub(t.lastPress) <= t.opts.RepeatWindow {
		t.repeat++
	} else {
		t.repeat = 0
	}
	t.lastKey, t.lastMods, t.lastPress = code, mods, now

	out := []event.Event{event.NewKeyPressedEvent(code, t.repeat).WithMods(mods)}
	if t.opts.SynthesizeKeyRelease {
		out = append(out, event.NewKeyReleasedEvent(code).WithMods(mods))
	}
	return out
}

func (t *Translator) mouse(e *tcell.EventMouse) []event.Event {
	var out []event.Event

	x, y := e.Position()
	if !t.havePos || x != t.mouseX || y != t.mouseY {
		t.havePos, t.mouseX, t.mouseY = true, x, y
		out = append(out, event.NewMouseMovedEvent(float32(x), float32(y)))
	}

	btns := e.Buttons()
	for _, b := range buttonMap {
		was := t.buttons&b.mask != 0
		is := btns&b.mask != 0
		switch {
		case is && !was:
			out = append(out, event.NewMouseButtonPressedEvent(b.button))
		case was && !is:
			out = append(out, event.NewMouseButtonReleasedEvent(b.button))
		}
	}
	t.buttons = btns & (tcell.Button1 | tcell.Button2 | tcell.Button3)

	var dx, dy float32
	if btns&tcell.WheelUp != 0 {
		dy++
	}
	if btns&tcell.WheelDown != 0 {
		dy--
	}
	if btns&tcell.WheelLeft != 0 {
		dx--
	}
	if btns&tcell.WheelRight != 0 {
		dx++
	}
	if dx != 0 || dy != 0 {
		out = append(out, event.NewMouseScrolledEvent(dx, dy))
	}
	return out
}

// tcell numbers buttons left, right, middle.
var buttonMap = []struct {
	mask   tcell.ButtonMask
	button input.MouseButton
}{
	{tcell.Button1, input.MouseButtonLeft},
	{tcell.Button2, input.MouseButtonRight},
	{tcell.Button3, input.MouseButtonMiddle},
}

// convertKey maps a tcell key event to a key code and modifiers. Several
// tcell key constants share values (Tab and Ctrl+I, for example), so the
// checks are ordered rather than expressed as a switch.
func convertKey(e *tcell.EventKey) (input.Key, input.Mod) {
	mods := convertMod(e.Modifiers())
	k := e.Key()

	if k == tcell.KeyRune {
		r := e.Rune()
		if unicode.IsUpper(r) {
			mods |= input.ModShift
		}
		return input.KeyFromRune(r), mods
	}

	if code, ok := specialKey(k); ok {
		return code, mods
	}
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return input.KeyA + input.Key(k-tcell.KeyCtrlA), mods | input.ModCtrl
	}
	if k == tcell.KeyCtrlSpace {
		return input.KeySpace, mods | input.ModCtrl
	}
	return input.KeyUnknown, mods
}

func specialKey(k tcell.Key) (input.Key, bool) {
	if k == tcell.KeyEscape {
		return input.KeyEscape, true
	}
	if k == tcell.KeyEnter {
		return input.KeyEnter, true
	}
	if k == tcell.KeyTab || k == tcell.KeyBacktab {
		return input.KeyTab, true
	}
	if k == tcell.KeyBackspace || k == tcell.KeyBackspace2 {
		return input.KeyBackspace, true
	}
	for _, m := range navKeys {
		if m.from == k {
			return m.to, true
		}
	}
	if k >= tcell.KeyF1 && k <= tcell.KeyF12 {
		return input.KeyF1 + input.Key(k-tcell.KeyF1), true
	}
	return input.KeyUnknown, false
}

var navKeys = []struct {
	from tcell.Key
	to   input.Key
}{
	{tcell.KeyInsert, input.KeyInsert},
	{tcell.KeyDelete, input.KeyDelete},
	{tcell.KeyRight, input.KeyRight},
	{tcell.KeyLeft, input.KeyLeft},
	{tcell.KeyDown, input.KeyDown},
	{tcell.KeyUp, input.KeyUp},
	{tcell.KeyPgUp, input.KeyPageUp},
	{tcell.KeyPgDn, input.KeyPageDown},
	{tcell.KeyHome, input.KeyHome},
	{tcell.KeyEnd, input.KeyEnd},
}

func convertMod(m tcell.ModMask) input.Mod {
	var mods input.Mod
	if m&tcell.ModShift != 0 {
		mods |= input.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mods |= input.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		mods |= input.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		mods |= input.ModMeta
	}
	return mods
}
