package grid

// Results is the navigation-shaped output of an indexation run: one entry
// of type R per probe position, carrying the source signal's axis
// calibration so downstream tools can overlay results spatially.
//
// A Results is populated by the orchestrator and never mutated afterward.
type Results[R any] struct {
	shape       Shape
	calibration Calibration
	entries     []R
}

// NewResults creates an empty results container for the given shape.
// The calibration is stored as-is; the orchestrator passes the source
// signal's calibration through unchanged.
func NewResults[R any](shape Shape, calibration Calibration) (*Results[R], error) {
	if !shape.Valid() {
		return nil, &ErrInvalidShape{Shape: shape}
	}
	return &Results[R]{
		shape:       shape,
		calibration: calibration.Clone(),
		entries:     make([]R, shape.Size()),
	}, nil
}

// Shape returns the navigation shape.
func (r *Results[R]) Shape() Shape {
	return r.shape
}

// Calibration returns a copy of the navigation axis calibration.
func (r *Results[R]) Calibration() Calibration {
	return r.calibration.Clone()
}

// At returns the entry at row y, column x.
func (r *Results[R]) At(y, x int) R {
	return r.entries[r.shape.Index(y, x)]
}

// AtIndex returns the entry at flat position index i.
func (r *Results[R]) AtIndex(i int) R {
	return r.entries[i]
}

// SetIndex stores the entry for flat position index i.
// Concurrent calls for distinct indices are safe; the orchestrator writes
// each position exactly once, by coordinate, regardless of worker
// completion order.
func (r *Results[R]) SetIndex(i int, entry R) {
	r.entries[i] = entry
}
