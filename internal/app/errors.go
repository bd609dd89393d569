package app

import (
	"errors"
	"fmt"
)

// Editor errors.
var (
	// ErrNoBackend indicates New was called without a terminal backend.
	ErrNoBackend = errors.New("no terminal backend")

	// ErrNotInteractive indicates stdin or stdout is not a terminal.
	ErrNotInteractive = errors.New("not attached to an interactive terminal")

	// ErrSessionClosed indicates Run was called after the session was torn down.
	ErrSessionClosed = errors.New("editor session closed")
)

// TerminalInitError reports a failure to acquire the terminal.
// It is fatal: the editor never retries initialization.
type TerminalInitError struct {
	Step string // Acquisition step (e.g., "open", "init")
	Err  error  // Underlying error
}

func (e *TerminalInitError) Error() string {
	if e == nil {
		return ""
	}
	if e.Err == nil {
		return fmt.Sprintf("terminal %s failed", e.Step)
	}
	return fmt.Sprintf("terminal %s failed: %v", e.Step, e.Err)
}

func (e *TerminalInitError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IOError reports a terminal read or write failure during a session.
type IOError struct {
	Op  string // Operation (e.g., "read event")
	Err error  // Underlying error
}

func (e *IOError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// RecoveredPanicError wraps a panic raised inside the event loop.
// The stack is kept for the log file; Error omits it.
type RecoveredPanicError struct {
	Value any
	Stack string
}

// NewRecoveredPanicError creates a new RecoveredPanicError.
func NewRecoveredPanicError(value any, stack string) *RecoveredPanicError {
	return &RecoveredPanicError{
		Value: value,
		Stack: stack,
	}
}

func (e *RecoveredPanicError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("panic: %v", e.Value)
}
