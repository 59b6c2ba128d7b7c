package grid

import "fmt"

// ErrInvalidShape indicates a navigation shape with non-positive dimensions.
type ErrInvalidShape struct {
	Shape Shape
}

func (e *ErrInvalidShape) Error() string {
	return fmt.Sprintf("invalid navigation shape: %s", e.Shape)
}

// ErrDataLength indicates per-position data whose length does not match the
// navigation shape.
type ErrDataLength struct {
	Expected int
	Actual   int
}

func (e *ErrDataLength) Error() string {
	return fmt.Sprintf("signal data length mismatch: expected %d positions, got %d", e.Expected, e.Actual)
}
