package platform

import (
	"sync"
	"sync/atomic"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/dshills/ember/internal/event"
)

// queueSize bounds the events buffered between OnUpdate calls.
const queueSize = 256

// Terminal implements Window using tcell.
type Terminal struct {
	screen     tcell.Screen
	translator *Translator
	opts       Options

	mu       sync.Mutex
	callback EventCallback

	queue   chan tcell.Event
	done    chan struct{}
	closing atomic.Bool
	wg      sync.WaitGroup
}

// NewTerminal creates a terminal window on the controlling terminal.
func NewTerminal(opts Options) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewTerminalWithScreen(screen, opts), nil
}

// NewTerminalWithScreen creates a terminal window on screen. Tests pass a
// tcell simulation screen.
func NewTerminalWithScreen(screen tcell.Screen, opts Options) *Terminal {
	return &Terminal{
		screen:     screen,
		translator: NewTranslator(opts),
		opts:       opts,
		queue:      make(chan tcell.Event, queueSize),
		done:       make(chan struct{}),
	}
}

func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return err
	}
	if t.opts.Mouse {
		t.screen.EnableMouse()
	}
	t.screen.EnableFocus()
	t.screen.HideCursor()

	t.wg.Add(1)
	go t.poll()
	return nil
}

// poll moves screen events into the queue until the screen is finalized.
func (t *Terminal) poll() {
	defer t.wg.Done()
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case t.queue <- ev:
		case <-t.done:
			return
		}
	}
}

func (t *Terminal) Shutdown() {
	t.mu.Lock()
	defer t.mu.Unlock()

	select {
	case <-t.done:
		return
	default:
	}
	close(t.done)
	t.screen.Fini()
	t.wg.Wait()
}

func (t *Terminal) Size() (int, int) {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.screen.Size()
}

func (t *Terminal) SetEventCallback(cb EventCallback) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.callback = cb
}

func (t *Terminal) OnUpdate() {
	t.mu.Lock()
	cb := t.callback
	t.mu.Unlock()

	if t.closing.CompareAndSwap(true, false) {
		t.deliver(cb, event.NewWindowCloseEvent())
	}
	for {
		select {
		case ev := <-t.queue:
			for _, e := range t.translator.Translate(ev) {
				t.deliver(cb, e)
			}
		default:
			return
		}
	}
}

func (t *Terminal) deliver(cb EventCallback, e event.Event) {
	if cb != nil {
		cb(e)
	}
}

// RequestClose posts a close interrupt. If the screen's queue is full the
// request is remembered and delivered on the next OnUpdate instead.
func (t *Terminal) RequestClose() {
	if err := t.screen.PostEvent(tcell.NewEventInterrupt(closeRequest{})); err != nil {
		t.closing.Store(true)
	}
}

func (t *Terminal) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Clear()
}

func (t *Terminal) DrawText(x, y int, text string, style Style) {
	t.mu.Lock()
	defer t.mu.Unlock()

	width, height := t.screen.Size()
	if y < 0 || y >= height {
		return
	}
	st := convertStyle(style)
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		w := g.Width()
		if w < 1 {
			w = 1
		}
		if x+w > width {
			return
		}
		if x >= 0 {
			runes := g.Runes()
			t.screen.SetContent(x, y, runes[0], runes[1:], st)
		}
		x += w
	}
}

func (t *Terminal) Show() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.screen.Show()
}

func convertStyle(s Style) tcell.Style {
	style := tcell.StyleDefault
	if s.Has(StyleBold) {
		style = style.Bold(true)
	}
	if s.Has(StyleDim) {
		style = style.Dim(true)
	}
	if s.Has(StyleReverse) {
		style = style.Reverse(true)
	}
	return style
}
