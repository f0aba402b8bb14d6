package export

import (
	"errors"
	"fmt"
)

// ErrNoActiveSource is returned when a request names no source and the
// context holds no current figure either.
var ErrNoActiveSource = errors.New("no source given and no current figure in context")

// InvalidParameterError reports a caller error detected before any file was
// written.
type InvalidParameterError struct {
	Param  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %s", e.Param, e.Reason)
}

// RenderError wraps a failure of the rendering backend for one format.
// Formats earlier in the request sequence may already have been written.
type RenderError struct {
	Format string
	Path   string
	Err    error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s to %q: %v", e.Format, e.Path, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
