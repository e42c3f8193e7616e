package gridmenu

import (
	"errors"
	"fmt"

	"github.com/BrandonKowalski/gridmenu/pkg/gridmenu/fault"
)

// Error kinds, shared with the sub packages.
var (
	ErrIllegalArgument = fault.ErrIllegalArgument
	ErrIllegalState    = fault.ErrIllegalState
	ErrNotFound        = fault.ErrNotFound
)

// IsIllegalArgument checks if an error is of the IllegalArgument kind.
func IsIllegalArgument(err error) bool {
	return fault.IsIllegalArgument(err)
}

// IsIllegalState checks if an error is of the IllegalState kind.
func IsIllegalState(err error) bool {
	return fault.IsIllegalState(err)
}

// IsNotFound checks if an error is of the NotFound kind.
func IsNotFound(err error) bool {
	return fault.IsNotFound(err)
}

// HandlerError reports a failure inside application code run by the
// framework: a click or drop handler, an item build function or a close
// hook. It is logged and passed to Options.OnHandlerError, never returned to
// the host.
type HandlerError struct {
	Op     string // Handler that failed (e.g., "click", "drop", "build")
	Item   string // Item name, empty for menu hooks
	ItemID ItemID // Zero for menu hooks
	Panic  bool   // The handler panicked rather than returning an error
	Err    error
}

func (e *HandlerError) Error() string {
	if e.Item != "" {
		return fmt.Sprintf("gridmenu: %s handler of item %s (#%d): %v", e.Op, e.Item, e.ItemID, e.Err)
	}
	return fmt.Sprintf("gridmenu: %s handler: %v", e.Op, e.Err)
}

func (e *HandlerError) Unwrap() error {
	return e.Err
}

// IsHandlerError checks if an error is a handler failure.
func IsHandlerError(err error) bool {
	var handlerErr *HandlerError
	return errors.As(err, &handlerErr)
}
