package match

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidNLargest is returned when nLargest is not positive.
	ErrInvalidNLargest = errors.New("nLargest must be positive")
)

// ErrKeysLength indicates a phase key list that does not cover the library.
type ErrKeysLength struct {
	Expected int
	Actual   int
}

func (e *ErrKeysLength) Error() string {
	return fmt.Sprintf("keys length mismatch: library has %d phases, got %d keys", e.Expected, e.Actual)
}
