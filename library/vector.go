package library

import "fmt"

// VectorTemplate is one theoretical reflection of a candidate orientation:
// its diffraction vector magnitude, its Miller index, and the inter-vector
// angles (degrees) to every other template of the same orientation.
// Angles[j] is the angle to template j; Angles[i] of template i is 0.
type VectorTemplate struct {
	Magnitude float64
	HKL       HKL
	Angles    []float64
}

// VectorOrientation is one candidate orientation hypothesis: the template
// set derived from simulating a phase at that orientation.
type VectorOrientation struct {
	Orientation Euler
	Templates   []VectorTemplate
}

// VectorPhase groups the candidate orientations of one phase.
type VectorPhase struct {
	Key          string
	Orientations []VectorOrientation
}

// VectorLibrary is the vector-matching reference library.
//
// As with TemplateLibrary, iteration order is the deterministic tie-break
// for equally ranked hypotheses. The library is read-only after
// construction.
type VectorLibrary struct {
	Phases []VectorPhase
}

// NewVectorLibrary validates and assembles a vector library. Every
// orientation must carry a square inter-vector angle table: each template's
// Angles slice must span all templates of that orientation.
func NewVectorLibrary(phases ...VectorPhase) (*VectorLibrary, error) {
	if len(phases) == 0 {
		return nil, ErrEmptyLibrary
	}

	for _, ph := range phases {
		if len(ph.Orientations) == 0 {
			return nil, fmt.Errorf("phase %q: %w", ph.Key, ErrEmptyPhase)
		}
		for oi, o := range ph.Orientations {
			n := len(o.Templates)
			if n == 0 {
				return nil, fmt.Errorf("phase %q orientation %d: %w", ph.Key, oi, ErrEmptyPhase)
			}
			for ti, t := range o.Templates {
				if len(t.Angles) != n {
					return nil, fmt.Errorf("phase %q orientation %d template %d: angle table length %d, want %d",
						ph.Key, oi, ti, len(t.Angles), n)
				}
			}
		}
	}

	return &VectorLibrary{Phases: phases}, nil
}

// NumPhases returns the number of candidate phases.
func (l *VectorLibrary) NumPhases() int {
	return len(l.Phases)
}

// NumHypotheses returns the total number of (phase, orientation) hypotheses.
func (l *VectorLibrary) NumHypotheses() int {
	var n int
	for _, ph := range l.Phases {
		n += len(ph.Orientations)
	}
	return n
}
