// Package pattern provides the 2-D diffraction pattern type and the
// normalized correlation used for template matching.
package pattern

import "github.com/hupe1980/diffindex/internal/floats"

// Pattern is a 2-D intensity array stored row-major.
//
// Patterns are treated as read-only once constructed; they are shared
// between concurrent matcher invocations without locking.
type Pattern struct {
	Rows int
	Cols int
	Data []float64
}

// New creates a pattern from row-major data.
func New(rows, cols int, data []float64) (*Pattern, error) {
	if rows <= 0 || cols <= 0 {
		return nil, &ErrInvalidShape{Rows: rows, Cols: cols}
	}
	if len(data) != rows*cols {
		return nil, &ErrDataLength{Expected: rows * cols, Actual: len(data)}
	}
	return &Pattern{Rows: rows, Cols: cols, Data: data}, nil
}

// FromGrid creates a pattern from a rectangular 2-D slice.
func FromGrid(grid [][]float64) (*Pattern, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, &ErrInvalidShape{Rows: len(grid)}
	}
	cols := len(grid[0])
	data := make([]float64, 0, len(grid)*cols)
	for _, row := range grid {
		if len(row) != cols {
			return nil, &ErrDataLength{Expected: cols, Actual: len(row)}
		}
		data = append(data, row...)
	}
	return &Pattern{Rows: len(grid), Cols: cols, Data: data}, nil
}

// At returns the intensity at row r, column c.
func (p *Pattern) At(r, c int) float64 {
	return p.Data[r*p.Cols+c]
}

// SameShape reports whether two patterns have identical dimensions.
func (p *Pattern) SameShape(q *Pattern) bool {
	return p.Rows == q.Rows && p.Cols == q.Cols
}

// Correlate computes the normalized correlation between a measured and a
// simulated pattern: the cosine of their flattened intensity arrays.
// Identical patterns score 1.0; higher is better.
//
// A zero-intensity pattern has no defined direction and scores 0 against
// everything.
func Correlate(a, b *Pattern) (float64, error) {
	if !a.SameShape(b) {
		return 0, &ErrShapeMismatch{
			ARows: a.Rows, ACols: a.Cols,
			BRows: b.Rows, BCols: b.Cols,
		}
	}

	normA := floats.Norm(a.Data)
	normB := floats.Norm(b.Data)
	if normA == 0 || normB == 0 {
		return 0, nil
	}

	return floats.Dot(a.Data, b.Data) / (normA * normB), nil
}
