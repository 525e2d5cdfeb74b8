package config

import (
	"fmt"
	"strconv"
)

// Environment variables that override file settings.
const (
	EnvLogLevel = "EMBER_LOG_LEVEL"
	EnvTickRate = "EMBER_TICK_RATE"
	EnvScript   = "EMBER_SCRIPT"
	EnvDebug    = "EMBER_DEBUG"
)

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// ApplyEnv overlays EMBER_* variables onto cfg.
func ApplyEnv(cfg *Config, lookup LookupFunc) error {
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.Log.Level = v
	}
	if v, ok := lookup(EnvTickRate); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return &ValidationError{Field: EnvTickRate, Message: fmt.Sprintf("%q is not an integer", v)}
		}
		cfg.App.TickRate = n
	}
	if v, ok := lookup(EnvScript); ok {
		cfg.Script.Path = v
	}
	if v, ok := lookup(EnvDebug); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return &ValidationError{Field: EnvDebug, Message: fmt.Sprintf("%q is not a boolean", v)}
		}
		cfg.App.Debug = b
	}
	return nil
}
