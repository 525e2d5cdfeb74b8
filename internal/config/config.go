package config

import (
	"fmt"
	"time"

	"github.com/dshills/ember/internal/event"
	"github.com/dshills/ember/internal/logging"
)

// Config is the complete application configuration.
type Config struct {
	App    AppConfig    `toml:"app" yaml:"app"`
	Log    LogConfig    `toml:"log" yaml:"log"`
	Input  InputConfig  `toml:"input" yaml:"input"`
	Trace  TraceConfig  `toml:"trace" yaml:"trace"`
	HUD    HUDConfig    `toml:"hud" yaml:"hud"`
	Script ScriptConfig `toml:"script" yaml:"script"`
}

// AppConfig configures the application loop.
type AppConfig struct {
	// Name is shown in the HUD and logged at startup.
	Name string `toml:"name" yaml:"name"`

	// TickRate is the number of frames per second.
	TickRate int `toml:"tick_rate" yaml:"tick_rate"`

	// Debug enables event validation before dispatch.
	Debug bool `toml:"debug" yaml:"debug"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
	File   string `toml:"file" yaml:"file"`
}

// InputConfig configures how terminal input becomes events.
type InputConfig struct {
	// Mouse enables mouse reporting.
	Mouse bool `toml:"mouse" yaml:"mouse"`

	// RepeatWindow is the longest gap between presses of the same key that
	// still counts as an auto-repeat.
	RepeatWindow Duration `toml:"repeat_window" yaml:"repeat_window"`

	// SynthesizeKeyRelease emits a KeyReleased right after every
	// KeyPressed. Terminals never report key releases.
	SynthesizeKeyRelease bool `toml:"synthesize_key_release" yaml:"synthesize_key_release"`

	// CloseOnCtrlQ turns Ctrl+Q into a WindowClose event.
	CloseOnCtrlQ bool `toml:"close_on_ctrl_q" yaml:"close_on_ctrl_q"`
}

// TraceConfig configures the event trace layer.
type TraceConfig struct {
	Enabled bool `toml:"enabled" yaml:"enabled"`

	// Categories limits tracing to events in these categories.
	// Empty traces every category.
	Categories []string `toml:"categories" yaml:"categories"`
}

// HUDConfig configures the on-screen event overlay.
type HUDConfig struct {
	Enabled bool `toml:"enabled" yaml:"enabled"`
	Lines   int  `toml:"lines" yaml:"lines"`
}

// ScriptConfig configures the Lua event script.
type ScriptConfig struct {
	// Path is the Lua file to load. Empty disables scripting.
	Path string `toml:"path" yaml:"path"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		App: AppConfig{
			Name:     "Ember",
			TickRate: 30,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Input: InputConfig{
			Mouse:                true,
			RepeatWindow:         Duration{80 * time.Millisecond},
			SynthesizeKeyRelease: true,
			CloseOnCtrlQ:         true,
		},
		HUD: HUDConfig{
			Enabled: true,
			Lines:   8,
		},
	}
}

// Validate checks every setting.
func (c *Config) Validate() error {
	if c.App.TickRate < 1 || c.App.TickRate > 1000 {
		return &ValidationError{Field: "app.tick_rate", Message: fmt.Sprintf("%d not in 1..1000", c.App.TickRate)}
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return &ValidationError{Field: "log.level", Message: err.Error()}
	}
	switch c.Log.Format {
	case "", "console", "json":
	default:
		return &ValidationError{Field: "log.format", Message: fmt.Sprintf("%q is not console or json", c.Log.Format)}
	}
	if c.Input.RepeatWindow.Duration < 0 {
		return &ValidationError{Field: "input.repeat_window", Message: "must not be negative"}
	}
	if c.HUD.Lines < 0 {
		return &ValidationError{Field: "hud.lines", Message: "must not be negative"}
	}
	if _, err := c.TraceMask(); err != nil {
		return &ValidationError{Field: "trace.categories", Message: err.Error()}
	}
	return nil
}

// TraceMask returns the categories the trace layer reports.
func (c *Config) TraceMask() (event.Category, error) {
	if len(c.Trace.Categories) == 0 {
		var all event.Category
		for _, cat := range event.AllCategories() {
			all |= cat
		}
		return all, nil
	}
	return event.ParseCategories(c.Trace.Categories)
}

// FrameInterval returns the time budget of one frame.
func (c *Config) FrameInterval() time.Duration {
	if c.App.TickRate <= 0 {
		return time.Second / 30
	}
	return time.Second / time.Duration(c.App.TickRate)
}

// Logging returns the logger configuration.
func (c *Config) Logging() logging.Config {
	return logging.Config{
		Level:  c.Log.Level,
		Format: c.Log.Format,
		File:   c.Log.File,
	}
}

// Clone returns a deep copy of c.
func (c *Config) Clone() *Config {
	out := *c
	if c.Trace.Categories != nil {
		out.Trace.Categories = append([]string(nil), c.Trace.Categories...)
	}
	return &out
}
