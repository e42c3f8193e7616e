// Package fault defines the error kinds shared by every gridmenu package.
//
// Kinds are sentinel errors. Operations wrap them in an *Error carrying the
// operation name so callers can match with errors.Is and still get a useful
// message.
package fault

import (
	"errors"
	"fmt"
)

// Sentinel error kinds.
var (
	// ErrIllegalArgument indicates a caller passed a value the framework cannot
	// serve, such as an unsupported row count.
	ErrIllegalArgument = errors.New("illegal argument")

	// ErrIllegalState indicates misuse of an API in its current state, such as
	// applying a skin to a non-head item or registering the manager twice.
	ErrIllegalState = errors.New("illegal state")

	// ErrNotFound indicates a lookup for an unknown identifier. The item parse
	// path never returns it; it reports a plain "not found" boolean instead.
	ErrNotFound = errors.New("not found")
)

// Error attaches the failing operation to an error kind.
type Error struct {
	Op   string // Operation that failed (e.g., "open_menu", "skull")
	Kind error  // One of the sentinel kinds above
	Err  error  // Optional detail
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("gridmenu: %s: %v: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("gridmenu: %s: %v", e.Op, e.Kind)
}

// Unwrap exposes both the kind and the detail to errors.Is / errors.As.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// New creates an operation error of the given kind.
func New(op string, kind error, format string, args ...any) *Error {
	var detail error
	if format != "" {
		detail = fmt.Errorf(format, args...)
	}
	return &Error{Op: op, Kind: kind, Err: detail}
}

// IsIllegalArgument checks if an error is of the IllegalArgument kind.
func IsIllegalArgument(err error) bool {
	return errors.Is(err, ErrIllegalArgument)
}

// IsIllegalState checks if an error is of the IllegalState kind.
func IsIllegalState(err error) bool {
	return errors.Is(err, ErrIllegalState)
}

// IsNotFound checks if an error is of the NotFound kind.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
