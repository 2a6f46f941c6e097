package confirm

import (
	"errors"
	"fmt"
)

// ErrHandlerPanicked is wrapped by a HandlerError when the handler panics.
var ErrHandlerPanicked = errors.New("confirm handler panicked")

// HandlerError reports a failed confirmation handler.
type HandlerError struct {
	ID  string // target the handler was invoked with
	Err error
}

func (e *HandlerError) Error() string {
	return fmt.Sprintf("confirm %q: %v", e.ID, e.Err)
}

func (e *HandlerError) Unwrap() error {
	return e.Err
}
