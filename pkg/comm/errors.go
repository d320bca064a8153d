package comm

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrTimeout indicates the reply didn't arrive in time. The
	// controller may still have executed the command.
	ErrTimeout = errors.New("reply timeout")
	// ErrClosed indicates the dispatcher is no longer running.
	ErrClosed = errors.New("dispatcher closed")
	// ErrRunning is returned by Run when another Run owns the link.
	ErrRunning = errors.New("dispatcher already running")
	// ErrCanceled indicates a queued command was canceled before it was
	// written.
	ErrCanceled = fmt.Errorf("command canceled: %w", context.Canceled)
)

// LinkError wraps I/O errors from the link.
type LinkError struct {
	Op  string
	Err error
}

// Error implements error.
func (e *LinkError) Error() string {
	return fmt.Sprintf("link %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *LinkError) Unwrap() error {
	return e.Err
}
