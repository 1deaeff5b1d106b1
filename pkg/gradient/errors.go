package gradient

import (
	"errors"
	"fmt"
)

var (
	// ErrAbsoluteExtrusion is returned when infill is reached without relative extrusion (M83)
	ErrAbsoluteExtrusion = errors.New("infill extrusion requires relative extrusion (M83)")
	// ErrMissingExtrusion is returned when an infill extrusion move has no usable E value
	ErrMissingExtrusion = errors.New("no extrusion length found")
	// ErrTooManySubdivisions is returned when a linear move would expand beyond MaxSubdivisions lines
	ErrTooManySubdivisions = errors.New("move is too long for the gradient discretization")
)

// LineError attaches the position of the offending line to a processing error
type LineError struct {
	Line int // 1-based
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
}

func (e *LineError) Unwrap() error {
	return e.Err
}
