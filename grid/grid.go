// Package grid provides the navigation-grid types shared by the indexation
// engine: the scan shape, axis calibration, per-position signals, the
// position mask, and the results container.
package grid

import "fmt"

// Shape is the 2-D navigation shape of a scan: Rows × Cols probe positions.
type Shape struct {
	Rows int
	Cols int
}

// Size returns the number of positions.
func (s Shape) Size() int {
	return s.Rows * s.Cols
}

// Index returns the flat position index for row r, column c.
func (s Shape) Index(r, c int) int {
	return r*s.Cols + c
}

// Valid reports whether both dimensions are positive.
func (s Shape) Valid() bool {
	return s.Rows > 0 && s.Cols > 0
}

// String returns a string representation of the shape.
func (s Shape) String() string {
	return fmt.Sprintf("%dx%d", s.Rows, s.Cols)
}

// Axis is the calibration of one navigation axis. Positions map to physical
// coordinates as offset + index*scale.
type Axis struct {
	Name   string
	Units  string
	Scale  float64
	Offset float64
}

// Calibration is the per-axis calibration of a navigation grid, outermost
// axis first. It is copied verbatim from input signals to results, never
// recomputed.
type Calibration []Axis

// Clone returns a copy of the calibration.
func (c Calibration) Clone() Calibration {
	if c == nil {
		return nil
	}
	out := make(Calibration, len(c))
	copy(out, c)
	return out
}

// Signal is a navigation-shaped container of per-position measured data,
// carrying the grid's axis calibration. D is the per-position payload: a
// diffraction pattern, a list of peak magnitudes, or a list of diffraction
// vectors.
type Signal[D any] struct {
	shape       Shape
	calibration Calibration
	data        []D
}

// NewSignal creates a signal from flat row-major per-position data.
func NewSignal[D any](shape Shape, data []D, calibration Calibration) (*Signal[D], error) {
	if !shape.Valid() {
		return nil, &ErrInvalidShape{Shape: shape}
	}
	if len(data) != shape.Size() {
		return nil, &ErrDataLength{Expected: shape.Size(), Actual: len(data)}
	}
	return &Signal[D]{
		shape:       shape,
		calibration: calibration.Clone(),
		data:        data,
	}, nil
}

// Shape returns the navigation shape.
func (s *Signal[D]) Shape() Shape {
	return s.shape
}

// Calibration returns a copy of the navigation axis calibration.
func (s *Signal[D]) Calibration() Calibration {
	return s.calibration.Clone()
}

// At returns the data at row r, column c.
func (s *Signal[D]) At(r, c int) D {
	return s.data[s.shape.Index(r, c)]
}

// AtIndex returns the data at flat position index i.
func (s *Signal[D]) AtIndex(i int) D {
	return s.data[i]
}
