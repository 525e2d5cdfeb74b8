package script

import "errors"

var (
	// ErrClosed is returned when using a closed script layer.
	ErrClosed = errors.New("script layer is closed")

	// ErrTimeout is returned when a script call runs past its deadline.
	ErrTimeout = errors.New("script call timed out")
)
