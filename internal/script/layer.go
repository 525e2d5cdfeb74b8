package script

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/dshills/ember/internal/event"
	"github.com/dshills/ember/internal/layer"
)

// DefaultTimeout bounds a single call into the script.
const DefaultTimeout = 50 * time.Millisecond

// Callback names looked up in the script's globals.
const (
	fnAttach = "on_attach"
	fnDetach = "on_detach"
	fnUpdate = "on_update"
	fnEvent  = "on_event"
)

// Layer is a layer whose behaviour is written in Lua.
//
// gopher-lua states are not goroutine-safe; every call into the script is
// serialized by mu.
type Layer struct {
	layer.Base

	mu      sync.Mutex
	L       *lua.LState
	source  string
	timeout time.Duration
	closed  bool

	log    *zap.Logger
	client *zap.Logger
}

// Option configures a Layer.
type Option func(*Layer)

// WithLogger sets the logger for script errors.
func WithLogger(log *zap.Logger) Option {
	return func(l *Layer) {
		if log != nil {
			l.log = log
		}
	}
}

// WithClientLogger sets the logger behind ember.log and print.
func WithClientLogger(log *zap.Logger) Option {
	return func(l *Layer) {
		if log != nil {
			l.client = log
		}
	}
}

// WithTimeout bounds each call into the script. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(l *Layer) {
		if d >= 0 {
			l.timeout = d
		}
	}
}

// New creates a script layer with an empty, sandboxed Lua state.
func New(opts ...Option) *Layer {
	l := &Layer{
		Base:    layer.NewBase("script"),
		timeout: DefaultTimeout,
		log:     zap.NewNop(),
		client:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(l)
	}

	l.L = lua.NewState(lua.Options{SkipOpenLibs: true})
	openSafeLibraries(l.L)
	l.installAPI()
	return l
}

// openSafeLibraries opens the libraries a script may use. io, os, debug
// and package stay closed.
func openSafeLibraries(L *lua.LState) {
	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)

	for _, name := range []string{"dofile", "loadfile", "load", "loadstring", "require", "module"} {
		L.SetGlobal(name, lua.LNil)
	}
}

// Load runs the Lua file at path, defining its callbacks.
func (l *Layer) Load(path string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return ErrClosed
	}
	if err := l.protect(func() error { return l.L.DoFile(path) }); err != nil {
		return fmt.Errorf("loading script %s: %w", path, err)
	}
	l.source = filepath.Base(path)
	return nil
}

// LoadString runs src, defining its callbacks.
func (l *Layer) LoadString(src string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return ErrClosed
	}
	if err := l.protect(func() error { return l.L.DoString(src) }); err != nil {
		return fmt.Errorf("loading script: %w", err)
	}
	l.source = "<string>"
	return nil
}

// Source names what was last loaded.
func (l *Layer) Source() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.source
}

// Close releases the Lua state.
func (l *Layer) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return nil
	}
	l.closed = true
	l.L.Close()
	return nil
}

func (l *Layer) OnAttach() {
	l.callIfDefined(fnAttach)
}

func (l *Layer) OnDetach() {
	l.callIfDefined(fnDetach)
}

func (l *Layer) OnUpdate(ts layer.Timestep) {
	l.callIfDefined(fnUpdate, lua.LNumber(ts.Seconds()))
}

// OnEvent hands e to on_event. A script error leaves e unhandled.
func (l *Layer) OnEvent(e event.Event) {
	if !l.defines(fnEvent) {
		return
	}
	dispatchToScript(l, event.NewDispatcher(e))
}

// handle calls on_event with t and reports whether the script handled it.
func (l *Layer) handle(t *lua.LTable) bool {
	ret, err := l.call(fnEvent, t)
	if err != nil {
		l.log.Warn("script on_event failed", zap.String("script", l.Source()), zap.Error(err))
		return false
	}
	return lua.LVAsBool(ret)
}

func (l *Layer) defines(name string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return false
	}
	return l.L.GetGlobal(name).Type() == lua.LTFunction
}

func (l *Layer) callIfDefined(name string, args ...lua.LValue) {
	if !l.defines(name) {
		return
	}
	if _, err := l.call(name, args...); err != nil {
		l.log.Warn("script callback failed",
			zap.String("script", l.Source()),
			zap.String("callback", name),
			zap.Error(err))
	}
}

// call invokes a global function and returns its first result.
func (l *Layer) call(name string, args ...lua.LValue) (lua.LValue, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed {
		return lua.LNil, ErrClosed
	}
	fn := l.L.GetGlobal(name)
	if fn.Type() != lua.LTFunction {
		return lua.LNil, fmt.Errorf("%q is not a function (got %s)", name, fn.Type())
	}

	if l.timeout > 0 {
		ctx, cancel := context.WithTimeout(context.Background(), l.timeout)
		defer cancel()
		l.L.SetContext(ctx)
		defer l.L.RemoveContext()
	}

	err := l.protect(func() error {
		return l.L.CallByParam(lua.P{Fn: fn, NRet: 1, Protect: true}, args...)
	})
	if err != nil {
		if ctx := l.L.Context(); ctx != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return lua.LNil, fmt.Errorf("%w: %s", ErrTimeout, name)
		}
		return lua.LNil, err
	}
	ret := l.L.Get(-1)
	l.L.Pop(1)
	return ret, nil
}

// protect runs fn, converting a Go panic inside the VM into an error.
func (l *Layer) protect(fn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lua panic: %v", r)
		}
	}()
	return fn()
}
