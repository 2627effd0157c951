package atlink

import (
	"errors"
	"fmt"

	"github.com/zmolnar/go-atlink/internal/fsm"
)

// Error represents a structured atlink error with operation context
type Error struct {
	Op    string    // Operation that failed (e.g., "SEND_COMMAND")
	Code  ErrorCode // High-level error category
	Msg   string    // Human-readable message
	Inner error     // Wrapped error
}

// Error implements the error interface
func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = string(e.Code)
	}
	if e.Op != "" {
		return fmt.Sprintf("atlink: %s (op=%s)", msg, e.Op)
	}
	return fmt.Sprintf("atlink: %s", msg)
}

// Unwrap returns the wrapped error for errors.Is/As support
func (e *Error) Unwrap() error {
	return e.Inner
}

// Is provides errors.Is support by error code
func (e *Error) Is(target error) bool {
	if te, ok := target.(*Error); ok {
		return e.Code == te.Code
	}
	return false
}

// ErrorCode represents high-level error categories
type ErrorCode string

const (
	// ErrCodeSerialize: the command did not fit the TX buffer or a field
	// was not representable.
	ErrCodeSerialize ErrorCode = "serialization failed"
	// ErrCodeWrite: the device accepted fewer bytes than the frame length.
	ErrCodeWrite ErrorCode = "device write failed"
	// ErrCodeInternal: the engine reached a state it cannot reach by design.
	ErrCodeInternal ErrorCode = "internal state violation"
	// ErrCodeShutDown: the device was shut down while the call was pending.
	ErrCodeShutDown ErrorCode = "shut down"
)

// NewError creates a new structured error
func NewError(op string, code ErrorCode, msg string) *Error {
	return &Error{Op: op, Code: code, Msg: msg}
}

// IsCode checks if an error matches a specific error code
func IsCode(err error, code ErrorCode) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// errorFromCode maps an engine error code to the public error type. A
// NoError disposition maps to nil.
func errorFromCode(op string, ec fsm.ErrorCode) error {
	switch ec {
	case fsm.NoError:
		return nil
	case fsm.ErrSerialize:
		return NewError(op, ErrCodeSerialize, "")
	case fsm.ErrWrite:
		return NewError(op, ErrCodeWrite, "")
	case fsm.ErrShutDown:
		return NewError(op, ErrCodeShutDown, "")
	default:
		return NewError(op, ErrCodeInternal, ec.String())
	}
}
