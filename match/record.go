package match

import "github.com/hupe1980/diffindex/library"

// Record is one ranked phase/orientation hypothesis for a position.
//
// For template matching, Score is the normalized correlation and reads as
// (phase index, Z, X, Z, score). For vector matching, Score is the number
// of measured vectors the hypothesis explains, with Matched and Residual
// carrying the auxiliary detail.
//
// The zero Record is the placeholder written for masked positions and for
// padding when fewer candidates exist than requested.
type Record struct {
	// PhaseIndex is the position of the phase in library iteration order.
	PhaseIndex int

	// PhaseKey is the caller-supplied label for the phase, or the
	// stringified phase index when no keys were supplied.
	PhaseKey string

	// Orientation is the candidate orientation in Euler angles (degrees).
	Orientation library.Euler

	// Score is the ranking quality; higher is better.
	Score float64

	// Matched is the number of distinct measured vectors explained
	// (vector matching only).
	Matched int

	// Residual is the accumulated magnitude + angle error of the matched
	// correspondences (vector matching only); lower is better.
	Residual float64
}
