package platform

import (
	"strings"
	"sync"

	"github.com/dshills/ember/internal/event"
)

// NullWindow is a headless Window. Events are queued with Inject and
// delivered by OnUpdate; drawing goes to an in-memory grid.
type NullWindow struct {
	mu       sync.Mutex
	width    int
	height   int
	callback EventCallback
	pending  []event.Event
	rows     [][]rune
	frames   int
	closed   bool
}

// NewNullWindow creates a headless window of the given size.
func NewNullWindow(width, height int) *NullWindow {
	w := &NullWindow{width: width, height: height}
	w.rows = blankRows(width, height)
	return w
}

func blankRows(width, height int) [][]rune {
	rows := make([][]rune, height)
	for i := range rows {
		rows[i] = []rune(strings.Repeat(" ", width))
	}
	return rows
}

func (w *NullWindow) Init() error { return nil }

func (w *NullWindow) Shutdown() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.closed = true
}

// IsShutdown reports whether Shutdown was called.
func (w *NullWindow) IsShutdown() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.closed
}

func (w *NullWindow) Size() (int, int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.width, w.height
}

// Resize changes the window size and queues a WindowResize event.
func (w *NullWindow) Resize(width, height int) {
	w.mu.Lock()
	w.width, w.height = width, height
	w.rows = blankRows(width, height)
	w.mu.Unlock()

	w.Inject(event.NewWindowResizeEvent(uint(max(width, 0)), uint(max(height, 0))))
}

func (w *NullWindow) SetEventCallback(cb EventCallback) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.callback = cb
}

// Inject queues events for the next OnUpdate.
func (w *NullWindow) Inject(events ...event.Event) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.pending = append(w.pending, events...)
}

func (w *NullWindow) OnUpdate() {
	w.mu.Lock()
	cb := w.callback
	pending := w.pending
	w.pending = nil
	w.mu.Unlock()

	if cb == nil {
		return
	}
	for _, e := range pending {
		cb(e)
	}
}

func (w *NullWindow) RequestClose() {
	w.Inject(event.NewWindowCloseEvent())
}

func (w *NullWindow) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.rows = blankRows(w.width, w.height)
}

func (w *NullWindow) DrawText(x, y int, text string, _ Style) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if y < 0 || y >= len(w.rows) {
		return
	}
	row := w.rows[y]
	for _, r := range text {
		if x >= len(row) {
			return
		}
		if x >= 0 {
			row[x] = r
		}
		x++
	}
}

func (w *NullWindow) Show() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.frames++
}

// Line returns row y of the grid with trailing blanks removed.
func (w *NullWindow) Line(y int) string {
	w.mu.Lock()
	defer w.mu.Unlock()

	if y < 0 || y >= len(w.rows) {
		return ""
	}
	return strings.TrimRight(string(w.rows[y]), " ")
}

// Frames returns how many times Show was called.
func (w *NullWindow) Frames() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.frames
}

var (
	_ Window = (*NullWindow)(nil)
	_ Window = (*Terminal)(nil)
)
