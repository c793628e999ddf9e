package keybind

import (
	"errors"
	"strings"
)

// Sentinel errors for the registry.
var (
	// ErrInvalidHandler is returned when AddHandler is given a nil handler.
	ErrInvalidHandler = errors.New("invalid handler")

	// ErrRegistryClosed is returned when operations are attempted on a
	// closed registry.
	ErrRegistryClosed = errors.New("registry is closed")

	// ErrNilBinder is returned when New is given a nil detection engine.
	ErrNilBinder = errors.New("binder cannot be nil")
)

// BindError wraps a detection-engine failure for one binding.
type BindError struct {
	// Action is the action name of the binding that failed.
	Action string

	// Keys are the sequences that were being registered.
	Keys []string

	// Err is the underlying engine error.
	Err error
}

// Error implements the error interface.
func (e *BindError) Error() string {
	return "binding " + e.Action + " (" + strings.Join(e.Keys, ", ") + "): " + e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *BindError) Unwrap() error {
	return e.Err
}
