package match

import (
	"context"
	"math"
	"sort"

	"github.com/hupe1980/diffindex/internal/floats"
	"github.com/hupe1980/diffindex/library"
)

// Compile time check to ensure VectorMatcher satisfies the Matcher interface.
var _ Matcher[[]Vector, []Record] = (*VectorMatcher)(nil)

// Vector is one measured diffraction vector: a 2-D spot position relative
// to the pattern center.
type Vector struct {
	X float64
	Y float64
}

// Magnitude returns the vector's length.
func (v Vector) Magnitude() float64 {
	return math.Hypot(v.X, v.Y)
}

// AngleBetween returns the angle between two vectors in degrees.
// The cosine is clamped to [-1, 1], so collinear pairs whose dot product
// drifts fractionally out of domain return a boundary angle instead of NaN.
func AngleBetween(a, b Vector) float64 {
	magA := a.Magnitude()
	magB := b.Magnitude()
	if magA == 0 || magB == 0 {
		return 0
	}
	cos := (a.X*b.X + a.Y*b.Y) / (magA * magB)
	return floats.Degrees(floats.Acos(cos))
}

// VectorMatcher finds the phase/orientation hypotheses that best explain a
// set of measured diffraction vectors, by combinatorial correspondence
// search against per-orientation (magnitude, inter-vector angle) templates.
//
// Hypotheses are ranked by descending count of explained measured vectors,
// then ascending accumulated residual, then library iteration order.
type VectorMatcher struct {
	lib            *library.VectorLibrary
	magThreshold   float64
	angleThreshold float64
	keys           []string
}

// NewVectorMatcher creates a vector matcher. magThreshold is the maximum
// absolute magnitude error allowed (same units as vector magnitudes,
// typically reciprocal Angstroms); angleThreshold the maximum absolute
// inter-vector angle error in degrees.
func NewVectorMatcher(lib *library.VectorLibrary, magThreshold, angleThreshold float64, keys []string) (*VectorMatcher, error) {
	if lib == nil || len(lib.Phases) == 0 {
		return nil, library.ErrEmptyLibrary
	}

	resolved, err := resolveKeys(len(lib.Phases), keys)
	if err != nil {
		return nil, err
	}

	return &VectorMatcher{
		lib:            lib,
		magThreshold:   magThreshold,
		angleThreshold: angleThreshold,
		keys:           resolved,
	}, nil
}

// measuredPair caches the magnitudes and inter-vector angle of one
// unordered pair of measured vectors.
type measuredPair struct {
	i, j       int
	magI, magJ float64
	angle      float64
}

// Match runs the correspondence search for one position's vectors.
// Fewer than two vectors cannot disambiguate an orientation; the result is
// empty, not an error. Only hypotheses explaining at least one pair appear
// in the output.
func (m *VectorMatcher) Match(ctx context.Context, vecs []Vector) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(vecs) < 2 {
		return []Record{}, nil
	}

	pairs := make([]measuredPair, 0, len(vecs)*(len(vecs)-1)/2)
	for i := 0; i < len(vecs); i++ {
		for j := i + 1; j < len(vecs); j++ {
			pairs = append(pairs, measuredPair{
				i: i, j: j,
				magI:  vecs[i].Magnitude(),
				magJ:  vecs[j].Magnitude(),
				angle: AngleBetween(vecs[i], vecs[j]),
			})
		}
	}

	var records []Record
	for pi, ph := range m.lib.Phases {
		for _, o := range ph.Orientations {
			count, residual := m.matchHypothesis(pairs, len(vecs), o.Templates)
			if count == 0 {
				continue
			}
			records = append(records, Record{
				PhaseIndex:  pi,
				PhaseKey:    m.keys[pi],
				Orientation: o.Orientation,
				Score:       float64(count),
				Matched:     count,
				Residual:    residual,
			})
		}
	}

	sort.SliceStable(records, func(i, j int) bool {
		if records[i].Matched != records[j].Matched {
			return records[i].Matched > records[j].Matched
		}
		return records[i].Residual < records[j].Residual
	})
	return records, nil
}

// matchHypothesis scores one (phase, orientation) template set against the
// measured pairs: for every measured pair, the best-residual template pair
// within both thresholds (both assignment orders tried) marks the two
// measured vectors as explained and contributes its residual.
func (m *VectorMatcher) matchHypothesis(pairs []measuredPair, numVecs int, templates []library.VectorTemplate) (int, float64) {
	explained := make([]bool, numVecs)
	var residual float64

	for _, p := range pairs {
		best := math.Inf(1)
		for a := range templates {
			magErrA := math.Abs(templates[a].Magnitude - p.magI)
			if magErrA > m.magThreshold {
				continue
			}
			for b := range templates {
				if b == a {
					continue
				}
				magErrB := math.Abs(templates[b].Magnitude - p.magJ)
				if magErrB > m.magThreshold {
					continue
				}
				angErr := math.Abs(templates[a].Angles[b] - p.angle)
				if angErr > m.angleThreshold {
					continue
				}
				if r := magErrA + magErrB + angErr; r < best {
					best = r
				}
			}
		}
		if !math.IsInf(best, 1) {
			explained[p.i] = true
			explained[p.j] = true
			residual += best
		}
	}

	var count int
	for _, ok := range explained {
		if ok {
			count++
		}
	}
	return count, residual
}

// Placeholder returns an empty result for masked positions.
func (m *VectorMatcher) Placeholder() []Record {
	return []Record{}
}
