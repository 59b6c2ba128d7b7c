package library

import (
	"fmt"

	"github.com/hupe1980/diffindex/pattern"
)

// Template is one simulated diffraction pattern at a specific orientation.
type Template struct {
	Orientation Euler
	Pattern     *pattern.Pattern
}

// TemplatePhase groups the simulated templates of one candidate phase.
type TemplatePhase struct {
	Key       string
	Templates []Template
}

// TemplateLibrary is the full template-matching reference library.
//
// Phase and template order is significant: equal correlation scores are
// broken by iteration order (first seen wins), so two runs over the same
// library produce identical rankings.
//
// The library is read-only after construction.
type TemplateLibrary struct {
	Phases []TemplatePhase
}

// NewTemplateLibrary validates and assembles a template library.
// Every phase must contribute at least one template, all templates must
// carry a pattern, and all patterns must share one shape.
func NewTemplateLibrary(phases ...TemplatePhase) (*TemplateLibrary, error) {
	if len(phases) == 0 {
		return nil, ErrEmptyLibrary
	}

	var rows, cols int
	for _, ph := range phases {
		if len(ph.Templates) == 0 {
			return nil, fmt.Errorf("phase %q: %w", ph.Key, ErrEmptyPhase)
		}
		for i, t := range ph.Templates {
			if t.Pattern == nil {
				return nil, fmt.Errorf("phase %q template %d: %w", ph.Key, i, ErrNilPattern)
			}
			if rows == 0 {
				rows, cols = t.Pattern.Rows, t.Pattern.Cols
				continue
			}
			if t.Pattern.Rows != rows || t.Pattern.Cols != cols {
				return nil, fmt.Errorf("phase %q template %d: pattern shape %dx%d differs from %dx%d",
					ph.Key, i, t.Pattern.Rows, t.Pattern.Cols, rows, cols)
			}
		}
	}

	return &TemplateLibrary{Phases: phases}, nil
}

// NumPhases returns the number of candidate phases.
func (l *TemplateLibrary) NumPhases() int {
	return len(l.Phases)
}

// Size returns the total number of templates across all phases.
func (l *TemplateLibrary) Size() int {
	var n int
	for _, ph := range l.Phases {
		n += len(ph.Templates)
	}
	return n
}
