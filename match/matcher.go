package match

import "context"

// Matcher scores one position's measured data against a reference library.
// D is the measured data type, R the per-position result type.
//
// Implementations must be safe for concurrent use: Match holds no mutable
// state and reads the library without locking.
type Matcher[D, R any] interface {
	// Match computes the ranked result for one position.
	Match(ctx context.Context, data D) (R, error)

	// Placeholder returns the result written for positions disabled by a
	// mask, without invoking Match.
	Placeholder() R
}
