package match

import (
	"context"
	"math"

	"github.com/hupe1980/diffindex/library"
)

// Compile time check to ensure ProfileMatcher satisfies the Matcher interface.
var _ Matcher[[]float64, []PeakMatch] = (*ProfileMatcher)(nil)

// PeakMatch assigns candidate reflections to one measured peak magnitude.
// HKLs[i] deviates from the peak by Deviations[i] percent. The candidate
// set is unordered and may be empty; downstream consumers select among the
// qualifying reflections.
type PeakMatch struct {
	Magnitude  float64
	HKLs       []library.HKL
	Deviations []float64
}

// ProfileMatcher assigns Miller indices to measured peak magnitudes by
// relative deviation against a phase's simulated profile. A simulated
// reflection qualifies for a peak when |sim - m| / m * 100 is strictly
// below the tolerance (percent).
//
// Peaks with magnitude exactly 0 have no defined relative deviation and
// yield an empty candidate set rather than propagating Inf/NaN.
type ProfileMatcher struct {
	sim       *library.ProfileSimulation
	tolerance float64
}

// NewProfileMatcher creates a profile matcher with the given relative
// tolerance in percent. A tolerance <= 0 admits no candidates.
func NewProfileMatcher(sim *library.ProfileSimulation, tolerance float64) (*ProfileMatcher, error) {
	if sim == nil || len(sim.Magnitudes) == 0 {
		return nil, library.ErrEmptyLibrary
	}
	return &ProfileMatcher{sim: sim, tolerance: tolerance}, nil
}

// Match assigns candidate reflections to each measured magnitude, in input
// order. The output is ragged: candidate counts vary per peak.
func (m *ProfileMatcher) Match(ctx context.Context, magnitudes []float64) ([]PeakMatch, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]PeakMatch, len(magnitudes))
	for i, mag := range magnitudes {
		out[i] = PeakMatch{Magnitude: mag}
		if mag == 0 {
			continue
		}
		for j, sim := range m.sim.Magnitudes {
			dev := math.Abs((sim - mag) / mag * 100)
			if dev < m.tolerance {
				out[i].HKLs = append(out[i].HKLs, m.sim.HKLs[j])
				out[i].Deviations = append(out[i].Deviations, dev)
			}
		}
	}
	return out, nil
}

// Placeholder returns an empty assignment list for masked positions.
func (m *ProfileMatcher) Placeholder() []PeakMatch {
	return []PeakMatch{}
}
