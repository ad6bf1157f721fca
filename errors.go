package statefsm

import (
	"errors"
	"fmt"
)

var (
	// ErrNoCurrentState is returned by Update when the machine has no current state.
	ErrNoCurrentState = errors.New("statefsm: no current state")
	// ErrNoPreviousState is returned by TransitionToPreviousState when there is no previous state.
	ErrNoPreviousState = errors.New("statefsm: no previous state")
	// ErrInvalidSnapshot is returned by Restore for a snapshot that names a previous
	// state without a current one. No sequence of operations can produce that shape.
	ErrInvalidSnapshot = errors.New("statefsm: snapshot has previous state but no current state")
)

// ErrNotFound is returned when an operation references an identifier that was never
// added to the machine, or has since been removed. The machine is left unchanged.
type ErrNotFound struct {
	ID any
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("statefsm: state %v not found", e.ID)
}

// ErrCallback is returned when a state hook (OnEnter, OnExit, Update) panics or a
// transition hook returns an error or panics. It wraps the original error, allowing it
// to be inspected using functions like errors.Is and errors.As.
//
// The operation that produced it still completed its slot bookkeeping.
type ErrCallback struct {
	// HookType is the hook where the error occurred (e.g., "OnEnter", "OnTransition").
	HookType string
	// ID is the identifier of the state the hook ran for.
	ID any
	// Err is the original error returned by the hook or the error created after recovering from a panic.
	Err error
}

func (e *ErrCallback) Error() string {
	return fmt.Sprintf("statefsm: error in %s hook for state %v: %v", e.HookType, e.ID, e.Err)
}

// Unwrap provides compatibility with the standard library's errors package,
// allowing the use of errors.Is and errors.As to inspect the wrapped error.
func (e *ErrCallback) Unwrap() error { return e.Err }

// ErrUnknownState is returned when restoring a snapshot that references a state
// the machine does not hold.
type ErrUnknownState struct {
	ID any
}

func (e *ErrUnknownState) Error() string {
	return fmt.Sprintf("statefsm: unknown state %v encountered during restore", e.ID)
}

// IsNotFound reports whether err is, or wraps, an *ErrNotFound.
func IsNotFound(err error) bool {
	var e *ErrNotFound
	return errors.As(err, &e)
}

// IsCallbackError reports whether err is, or wraps, an *ErrCallback.
func IsCallbackError(err error) bool {
	var e *ErrCallback
	return errors.As(err, &e)
}
