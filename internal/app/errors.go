package app

import (
	"errors"
	"fmt"
)

// Application errors.
var (
	// ErrNoWindow indicates New was called without a window.
	ErrNoWindow = errors.New("no window")

	// ErrAlreadyRunning indicates the application is already running.
	ErrAlreadyRunning = errors.New("application already running")
)

// InitError reports a component that failed to start.
type InitError struct {
	Component string
	Err       error
}

func (e *InitError) Error() string {
	return fmt.Sprintf("init %s: %v", e.Component, e.Err)
}

func (e *InitError) Unwrap() error {
	return e.Err
}
