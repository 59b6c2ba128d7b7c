package library

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyLibrary is returned when a library is constructed without
	// any entries. An empty library can never produce a match, so this is
	// surfaced at construction instead of per position.
	ErrEmptyLibrary = errors.New("library is empty")

	// ErrEmptyPhase is returned when a phase contributes no entries.
	ErrEmptyPhase = errors.New("phase has no entries")

	// ErrNilPattern is returned when a template carries no pattern.
	ErrNilPattern = errors.New("template pattern is nil")
)

// ErrTableLength indicates a magnitude/HKL table with mismatched columns.
type ErrTableLength struct {
	Magnitudes int
	HKLs       int
}

func (e *ErrTableLength) Error() string {
	return fmt.Sprintf("magnitude/hkl table length mismatch: %d magnitudes, %d hkls", e.Magnitudes, e.HKLs)
}
