package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/dshills/ember/internal/config"
	"github.com/dshills/ember/internal/event"
	"github.com/dshills/ember/internal/input"
	"github.com/dshills/ember/internal/layer"
	"github.com/dshills/ember/internal/logging"
	"github.com/dshills/ember/internal/platform"
)

// probe records what reaches it and can close the window after a number
// of updates.
type probe struct {
	layer.Base
	window     platform.Window
	closeAfter int

	mu      sync.Mutex
	updates int
	renders int
	events  []event.Kind
}

func newProbe(w platform.Window, closeAfter int) *probe {
	return &probe{Base: layer.NewBase("probe"), window: w, closeAfter: closeAfter}
}

func (p *probe) OnUpdate(layer.Timestep) {
	p.mu.Lock()
	p.updates++
	n := p.updates
	p.mu.Unlock()
	if p.closeAfter > 0 && n == p.closeAfter {
		p.window.RequestClose()
	}
}

func (p *probe) OnRender(s layer.Surface) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.renders++
}

func (p *probe) OnEvent(e event.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e.Kind())
}

func (p *probe) seen(k event.Kind) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, x := range p.events {
		if x == k {
			n++
		}
	}
	return n
}

func fastConfig() *config.Config {
	cfg := config.Default()
	cfg.App.TickRate = 1000
	return cfg
}

func TestNew_RequiresWindow(t *testing.T) {
	_, err := New(Options{})
	assert.ErrorIs(t, err, ErrNoWindow)
}

func TestNew_Defaults(t *testing.T) {
	app, err := New(Options{Window: platform.NewNullWindow(80, 24)})
	require.NoError(t, err)

	assert.Equal(t, config.Default(), app.Config())
	assert.Equal(t, 1, app.Stack().Len(), "only the HUD")
	_, err = uuid.Parse(app.SessionID())
	assert.NoError(t, err)
}

func TestNew_TraceLayer(t *testing.T) {
	cfg := fastConfig()
	cfg.Trace.Enabled = true
	app, err := New(Options{Config: cfg, Window: platform.NewNullWindow(80, 24)})
	require.NoError(t, err)

	layers := app.Stack().Layers()
	require.Len(t, layers, 2)
	assert.Equal(t, "trace", layers[1].Name(), "trace sits on top")
}

func TestRun_ClosesOnWindowClose(t *testing.T) {
	w := platform.NewNullWindow(80, 24)
	app, err := New(Options{Config: fastConfig(), Window: w})
	require.NoError(t, err)

	p := newProbe(w, 3)
	app.PushLayer(p)

	require.NoError(t, app.Run(context.Background()))

	assert.False(t, app.Running())
	assert.Equal(t, 3, p.updates)
	assert.Equal(t, 3, p.renders)
	assert.Equal(t, 3, p.seen(event.KindAppTick))
	assert.Equal(t, 3, p.seen(event.KindAppUpdate))
	assert.Equal(t, 3, p.seen(event.KindAppRender))
	assert.Zero(t, p.seen(event.KindWindowClose), "the application handles close itself")
	assert.Equal(t, 3, w.Frames())
	assert.True(t, w.IsShutdown())
	assert.Equal(t, uint64(3), app.Metrics().Frames)
}

func TestRun_ContextCancel(t *testing.T) {
	w := platform.NewNullWindow(80, 24)
	app, err := New(Options{Config: fastConfig(), Window: w})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	err = app.Run(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRun_AlreadyRunning(t *testing.T) {
	w := platform.NewNullWindow(80, 24)
	app, err := New(Options{Config: fastConfig(), Window: w})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	require.Eventually(t, app.Running, time.Second, time.Millisecond)
	assert.ErrorIs(t, app.Run(ctx), ErrAlreadyRunning)

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestRun_Close(t *testing.T) {
	w := platform.NewNullWindow(80, 24)
	app, err := New(Options{Config: fastConfig(), Window: w})
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- app.Run(context.Background()) }()
	require.Eventually(t, func() bool { return app.Metrics().Frames > 0 }, time.Second, time.Millisecond)

	app.Close()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop")
	}
}

func TestOnEvent_Minimize(t *testing.T) {
	w := platform.NewNullWindow(80, 24)
	app, err := New(Options{Config: fastConfig(), Window: w})
	require.NoError(t, err)
	p := newProbe(w, 0)
	app.PushLayer(p)

	resize := event.NewWindowResizeEvent(0, 0)
	app.OnEvent(resize)
	assert.True(t, app.Minimized())
	assert.False(t, resize.Handled(), "resize continues to the layers")
	assert.Equal(t, 1, p.seen(event.KindWindowResize))

	app.frame(0)
	assert.Zero(t, p.updates, "no updates while minimized")
	assert.Equal(t, 1, p.seen(event.KindAppTick))
	assert.Zero(t, p.seen(event.KindAppRender))

	app.OnEvent(event.NewWindowResizeEvent(80, 24))
	assert.False(t, app.Minimized())
	app.frame(0)
	assert.Equal(t, 1, p.updates)
}

func TestOnEvent_WindowCloseIsHandled(t *testing.T) {
	app, err := New(Options{Config: fastConfig(), Window: platform.NewNullWindow(10, 10)})
	require.NoError(t, err)
	app.open.Store(true)

	e := event.NewWindowCloseEvent()
	app.OnEvent(e)
	assert.True(t, e.Handled())
	assert.False(t, app.open.Load())
}

// forged claims a kind it does not have.
type forged struct {
	*event.KeyPressedEvent
}

func (forged) Kind() event.Kind { return event.KindMouseMoved }

func TestOnEvent_DebugDropsInvalid(t *testing.T) {
	cfg := fastConfig()
	cfg.App.Debug = true
	w := platform.NewNullWindow(10, 10)
	app, err := New(Options{Config: cfg, Window: w})
	require.NoError(t, err)
	p := newProbe(w, 0)
	app.PushLayer(p)

	app.OnEvent(forged{event.NewKeyPressedEvent(input.KeyA, 0)})
	assert.Empty(t, p.events)

	app.OnEvent(event.NewKeyPressedEvent(input.KeyA, 0))
	assert.Equal(t, 1, p.seen(event.KindKeyPressed))
}

func TestScriptLayer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys.lua")
	require.NoError(t, os.WriteFile(path, []byte(`
function on_event(e)
  return e.name == "KeyPressed" and e.key_name == "A"
end
`), 0o644))

	w := platform.NewNullWindow(10, 10)
	app, err := New(Options{Config: fastConfig(), Window: w, Script: path})
	require.NoError(t, err)
	defer app.Shutdown()

	p := newProbe(w, 0)
	app.PushLayer(p)

	a := event.NewKeyPressedEvent(input.KeyA, 0)
	app.OnEvent(a)
	assert.True(t, a.Handled())

	b := event.NewKeyPressedEvent(input.KeyB, 0)
	app.OnEvent(b)
	assert.False(t, b.Handled())
	assert.Equal(t, 2, p.seen(event.KindKeyPressed), "the probe sits above the script")

	assert.Equal(t, uint64(2), app.Metrics().Events)
	assert.Equal(t, uint64(1), app.Metrics().Handled)
}

func TestNew_BadScript(t *testing.T) {
	_, err := New(Options{Window: platform.NewNullWindow(1, 1), Script: filepath.Join(t.TempDir(), "nope.lua")})
	var ie *InitError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, "script", ie.Component)
}

func TestNew_BadTraceMaskDetachesLayers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "detach.lua")
	require.NoError(t, os.WriteFile(path, []byte(`
function on_detach() ember.log("script detached") end
`), 0o644))

	var buf bytes.Buffer
	loggers, err := logging.NewWithWriter(logging.Config{Level: "info", Format: "json"}, zapcore.AddSync(&buf))
	require.NoError(t, err)

	cfg := fastConfig()
	cfg.Trace.Enabled = true
	cfg.Trace.Categories = []string{"joystick"}
	_, err = New(Options{Config: cfg, Window: platform.NewNullWindow(1, 1), Logger: loggers, Script: path})

	var ie *InitError
	require.ErrorAs(t, err, &ie)
	assert.Equal(t, "trace", ie.Component)
	assert.Contains(t, buf.String(), "script detached")
}

func TestApplyConfig(t *testing.T) {
	cfg := fastConfig()
	cfg.Trace.Enabled = true
	loggers := logging.NewNop()
	app, err := New(Options{Config: cfg, Window: platform.NewNullWindow(10, 10), Logger: loggers})
	require.NoError(t, err)

	next := cfg.Clone()
	next.Log.Level = "debug"
	next.Trace.Categories = []string{"mouse"}
	next.HUD.Enabled = false
	require.NoError(t, app.ApplyConfig(next))

	assert.Equal(t, zapcore.DebugLevel.String(), loggers.Level())
	assert.Equal(t, event.CategoryMouse, app.trace.Mask())
	assert.Same(t, next, app.Config())

	bad := next.Clone()
	bad.Log.Level = "shout"
	assert.Error(t, app.ApplyConfig(bad))
	assert.Same(t, next, app.Config())
}

func TestShutdownDetaches(t *testing.T) {
	w := platform.NewNullWindow(10, 10)
	app, err := New(Options{Config: fastConfig(), Window: w})
	require.NoError(t, err)
	app.PushLayer(newProbe(w, 0))

	app.Shutdown()
	assert.Zero(t, app.Stack().Len())
}
