// Package app runs the Ember frame loop: it owns the window and the layer
// stack, and routes every window event through them.
package app

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dshills/ember/internal/config"
	"github.com/dshills/ember/internal/event"
	"github.com/dshills/ember/internal/layer"
	"github.com/dshills/ember/internal/logging"
	"github.com/dshills/ember/internal/platform"
	"github.com/dshills/ember/internal/script"
)

// Application owns the window, the layer stack and the frame loop.
type Application struct {
	mu     sync.RWMutex
	config *config.Config

	window  platform.Window
	stack   *layer.Stack
	loggers *logging.Loggers
	log     *zap.Logger

	trace  *layer.Trace
	hud    *layer.HUD
	script *script.Layer

	session uuid.UUID
	metrics *Metrics

	running   atomic.Bool
	open      atomic.Bool
	minimized atomic.Bool
}

// Options configures the application.
type Options struct {
	// Config is the configuration. Defaults apply when nil.
	Config *config.Config

	// Window is required.
	Window platform.Window

	// Logger defaults to a no-op logger pair.
	Logger *logging.Loggers

	// Script overrides Config.Script.Path when set.
	Script string
}

// New creates an application and builds its default layers.
func New(opts Options) (*Application, error) {
	if opts.Window == nil {
		return nil, ErrNoWindow
	}
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}
	loggers := opts.Logger
	if loggers == nil {
		loggers = logging.NewNop()
	}

	app := &Application{
		config:  cfg,
		window:  opts.Window,
		stack:   layer.NewStack(),
		loggers: loggers,
		log:     loggers.Component("app"),
		session: uuid.New(),
		metrics: NewMetrics(),
	}

	scriptPath := cfg.Script.Path
	if opts.Script != "" {
		scriptPath = opts.Script
	}
	if scriptPath != "" {
		s := script.New(
			script.WithLogger(loggers.Component("script")),
			script.WithClientLogger(loggers.Client),
		)
		if err := s.Load(scriptPath); err != nil {
			s.Close()
			return nil, &InitError{Component: "script", Err: err}
		}
		app.script = s
		app.stack.PushLayer(s)
	}

	app.hud = layer.NewHUD(cfg.App.Name, cfg.HUD.Lines)
	app.hud.SetVisible(cfg.HUD.Enabled)
	app.stack.PushOverlay(app.hud)

	if cfg.Trace.Enabled {
		mask, err := cfg.TraceMask()
		if err != nil {
			app.Shutdown()
			return nil, &InitError{Component: "trace", Err: err}
		}
		app.trace = layer.NewTrace(loggers.Component("trace"), mask)
		app.stack.PushOverlay(app.trace)
	}

	app.window.SetEventCallback(app.OnEvent)
	return app, nil
}

// PushLayer adds l below the overlays.
func (app *Application) PushLayer(l layer.Layer) {
	app.stack.PushLayer(l)
}

// PushOverlay adds l on top of the stack.
func (app *Application) PushOverlay(l layer.Layer) {
	app.stack.PushOverlay(l)
}

// OnEvent is the window's event callback. The application reacts to
// window closes and resizes, then offers the event to the layer stack.
func (app *Application) OnEvent(e event.Event) {
	if e == nil {
		return
	}
	if app.Config().App.Debug {
		if err := event.Validate(e); err != nil {
			app.log.Warn("dropping invalid event", zap.Error(err))
			return
		}
	}

	d := event.NewDispatcher(e)
	event.Dispatch(d, app.onWindowClose)
	event.Dispatch(d, app.onWindowResize)

	app.stack.Propagate(e)
	app.metrics.RecordEvent(e.Handled())
}

func (app *Application) onWindowClose(*event.WindowCloseEvent) bool {
	app.log.Debug("window close requested")
	app.open.Store(false)
	return true
}

func (app *Application) onWindowResize(e *event.WindowResizeEvent) bool {
	minimized := e.Width == 0 || e.Height == 0
	if app.minimized.Swap(minimized) != minimized {
		app.log.Debug("minimized changed", zap.Bool("minimized", minimized))
	}
	return false
}

// Run initializes the window and runs frames until the window closes or
// ctx is done. A normal close returns nil.
func (app *Application) Run(ctx context.Context) error {
	if !app.running.CompareAndSwap(false, true) {
		return ErrAlreadyRunning
	}
	defer app.running.Store(false)

	if err := app.window.Init(); err != nil {
		return &InitError{Component: "window", Err: err}
	}
	defer app.window.Shutdown()

	w, h := app.window.Size()
	app.minimized.Store(w == 0 || h == 0)
	app.open.Store(true)

	interval := app.Config().FrameInterval()
	app.log.Info("run loop started",
		zap.String("session", app.session.String()),
		zap.Duration("frame", interval),
		zap.Int("layers", app.stack.Len()),
	)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	for app.open.Load() {
		if err := ctx.Err(); err != nil {
			return err
		}

		now := time.Now()
		app.frame(layer.Timestep(now.Sub(last)))
		last = now
		app.metrics.RecordFrame(time.Since(now))

		if !app.open.Load() {
			break
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}

	app.log.Info("run loop stopped", zap.Uint64("frames", app.metrics.Snapshot().Frames))
	return nil
}

// frame runs one iteration of the loop.
func (app *Application) frame(ts layer.Timestep) {
	app.OnEvent(event.NewAppTickEvent())

	if !app.minimized.Load() {
		app.stack.Update(ts)
		app.OnEvent(event.NewAppUpdateEvent())

		app.window.Clear()
		app.stack.Render(app.window)
		app.OnEvent(event.NewAppRenderEvent())
		app.window.Show()
	}

	app.window.OnUpdate()
}

// Close stops a running loop after the current frame.
func (app *Application) Close() {
	app.open.Store(false)
}

// Shutdown detaches every layer and releases the script state.
func (app *Application) Shutdown() {
	app.stack.Detach()
	if app.script != nil {
		if err := app.script.Close(); err != nil {
			app.log.Warn("closing script", zap.Error(err))
		}
	}
	app.loggers.Sync()
}

// ApplyConfig applies the settings that can change at runtime: log
// level, trace mask and HUD visibility. Safe to call from any goroutine.
func (app *Application) ApplyConfig(cfg *config.Config) error {
	if err := app.loggers.SetLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("applying log level: %w", err)
	}
	if app.trace != nil {
		mask, err := cfg.TraceMask()
		if err != nil {
			return fmt.Errorf("applying trace mask: %w", err)
		}
		app.trace.SetMask(mask)
	}
	app.hud.SetVisible(cfg.HUD.Enabled)

	app.mu.Lock()
	app.config = cfg
	app.mu.Unlock()

	app.log.Info("configuration applied", zap.String("level", cfg.Log.Level))
	return nil
}

// Config returns the active configuration.
func (app *Application) Config() *config.Config {
	app.mu.RLock()
	defer app.mu.RUnlock()
	return app.config
}

// Running reports whether Run is executing.
func (app *Application) Running() bool {
	return app.running.Load()
}

// Minimized reports whether the window has zero area.
func (app *Application) Minimized() bool {
	return app.minimized.Load()
}

// SessionID identifies this application instance in logs.
func (app *Application) SessionID() string {
	return app.session.String()
}

// Stack returns the layer stack.
func (app *Application) Stack() *layer.Stack {
	return app.stack
}

// HUD returns the event overlay.
func (app *Application) HUD() *layer.HUD {
	return app.hud
}

// Metrics returns a snapshot of frame and event counters.
func (app *Application) Metrics() MetricsSnapshot {
	return app.metrics.Snapshot()
}
