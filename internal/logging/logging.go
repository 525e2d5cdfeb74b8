// Package logging provides Ember's structured loggers.
//
// Two named loggers share one level: Core for engine-side code (window,
// application loop, config) and Client for code that runs on behalf of the
// application (layers, scripts). Both are plain *zap.Logger values.
package logging

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger names.
const (
	CoreName   = "EMBER"
	ClientName = "APP"
)

// ErrInvalidLevel is returned for an unknown level name.
var ErrInvalidLevel = errors.New("invalid log level")

// ErrInvalidFormat is returned for an unknown output format.
var ErrInvalidFormat = errors.New("invalid log format")

// Config configures the loggers.
type Config struct {
	// Level is the minimum level: debug, info, warn or error.
	Level string

	// Format is "console" or "json".
	Format string

	// File receives the log output. Empty means stderr.
	File string
}

// DefaultConfig returns the default logger configuration.
func DefaultConfig() Config {
	return Config{
		Level:  "info",
		Format: "console",
	}
}

// Loggers holds the core and client loggers.
type Loggers struct {
	Core   *zap.Logger
	Client *zap.Logger

	root  *zap.Logger
	level zap.AtomicLevel
	close func()
}

// New builds loggers writing to cfg.File, or stderr when it is empty.
func New(cfg Config) (*Loggers, error) {
	var (
		ws      zapcore.WriteSyncer
		release = func() {}
	)
	if cfg.File == "" {
		ws = zapcore.Lock(os.Stderr)
	} else {
		sink, closeSink, err := zap.Open(cfg.File)
		if err != nil {
			return nil, fmt.Errorf("opening log file %s: %w", cfg.File, err)
		}
		ws = sink
		release = closeSink
	}

	l, err := NewWithWriter(cfg, ws)
	if err != nil {
		release()
		return nil, err
	}
	l.close = release
	return l, nil
}

// NewWithWriter builds loggers writing to ws.
func NewWithWriter(cfg Config, ws zapcore.WriteSyncer) (*Loggers, error) {
	lvl, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	enc, err := newEncoder(cfg.Format)
	if err != nil {
		return nil, err
	}

	level := zap.NewAtomicLevelAt(lvl)
	root := zap.New(zapcore.NewCore(enc, ws, level), zap.AddCaller())

	return &Loggers{
		Core:   root.Named(CoreName),
		Client: root.Named(ClientName),
		root:   root,
		level:  level,
		close:  func() {},
	}, nil
}

// NewNop returns loggers that discard everything.
func NewNop() *Loggers {
	root := zap.NewNop()
	return &Loggers{
		Core:   root,
		Client: root,
		root:   root,
		level:  zap.NewAtomicLevelAt(zapcore.InfoLevel),
		close:  func() {},
	}
}

func newEncoder(format string) (zapcore.Encoder, error) {
	switch strings.ToLower(format) {
	case "", "console":
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		return zapcore.NewConsoleEncoder(cfg), nil
	case "json":
		cfg := zap.NewProductionEncoderConfig()
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		return zapcore.NewJSONEncoder(cfg), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, format)
	}
}

// ParseLevel parses a level name. The empty string means info.
func ParseLevel(s string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "", "info":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
	}
}

// SetLevel changes the level of both loggers.
func (l *Loggers) SetLevel(s string) error {
	lvl, err := ParseLevel(s)
	if err != nil {
		return err
	}
	l.level.SetLevel(lvl)
	return nil
}

// Level returns the current level name.
func (l *Loggers) Level() string {
	return l.level.Level().String()
}

// Component returns a core logger named for an engine component,
// e.g. "EMBER.window".
func (l *Loggers) Component(name string) *zap.Logger {
	return l.Core.Named(name)
}

// Sync flushes buffered output. Errors from syncing a terminal are ignored.
func (l *Loggers) Sync() {
	_ = l.root.Sync()
}

// Close flushes output and releases the log file, if any.
func (l *Loggers) Close() {
	l.Sync()
	l.close()
}
