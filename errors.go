package diffindex

import (
	"errors"
	"fmt"

	"github.com/hupe1980/diffindex/grid"
)

var (
	// ErrNilSignal is returned when Run is called without a signal.
	ErrNilSignal = errors.New("nil signal")

	// ErrNilMatcher is returned when an indexer is built without a matcher.
	ErrNilMatcher = errors.New("nil matcher")
)

// ErrMaskShape indicates a mask whose shape differs from the signal's
// navigation shape.
type ErrMaskShape struct {
	Mask       grid.Shape
	Navigation grid.Shape
}

func (e *ErrMaskShape) Error() string {
	return fmt.Sprintf("mask shape %s does not match navigation shape %s", e.Mask, e.Navigation)
}
