package pattern

import "fmt"

// ErrInvalidShape indicates non-positive pattern dimensions.
type ErrInvalidShape struct {
	Rows int
	Cols int
}

func (e *ErrInvalidShape) Error() string {
	return fmt.Sprintf("invalid pattern shape: %dx%d", e.Rows, e.Cols)
}

// ErrDataLength indicates the data slice does not match the declared shape.
type ErrDataLength struct {
	Expected int
	Actual   int
}

func (e *ErrDataLength) Error() string {
	return fmt.Sprintf("pattern data length mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// ErrShapeMismatch indicates two patterns with different dimensions were
// correlated.
type ErrShapeMismatch struct {
	ARows, ACols int
	BRows, BCols int
}

func (e *ErrShapeMismatch) Error() string {
	return fmt.Sprintf("pattern shape mismatch: %dx%d vs %dx%d", e.ARows, e.ACols, e.BRows, e.BCols)
}
