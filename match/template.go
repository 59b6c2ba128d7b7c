package match

import (
	"context"

	"github.com/hupe1980/diffindex/library"
	"github.com/hupe1980/diffindex/pattern"
)

// Compile time check to ensure TemplateMatcher satisfies the Matcher interface.
var _ Matcher[*pattern.Pattern, []Record] = (*TemplateMatcher)(nil)

// TemplateMatcher correlates a measured diffraction pattern against every
// simulated template in the library and returns the nLargest best
// hypotheses, ranked by correlation score descending. Equal scores keep
// library iteration order.
type TemplateMatcher struct {
	lib      *library.TemplateLibrary
	nLargest int
	keys     []string
}

// NewTemplateMatcher creates a template matcher.
//
// keys maps phase indices to labels in the output; it must be empty or
// cover every phase. nLargest must be positive; when it exceeds the
// library size, results are padded with zero records.
func NewTemplateMatcher(lib *library.TemplateLibrary, nLargest int, keys []string) (*TemplateMatcher, error) {
	if lib == nil || len(lib.Phases) == 0 {
		return nil, library.ErrEmptyLibrary
	}
	if nLargest < 1 {
		return nil, ErrInvalidNLargest
	}

	resolved, err := resolveKeys(len(lib.Phases), keys)
	if err != nil {
		return nil, err
	}

	return &TemplateMatcher{
		lib:      lib,
		nLargest: nLargest,
		keys:     resolved,
	}, nil
}

// Match correlates one measured pattern against the full library.
// The result always has length nLargest, padded with zero records when the
// library holds fewer candidates.
func (m *TemplateMatcher) Match(ctx context.Context, measured *pattern.Pattern) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	top := newTopN(m.nLargest)
	seq := 0
	for pi, ph := range m.lib.Phases {
		for _, t := range ph.Templates {
			score, err := pattern.Correlate(measured, t.Pattern)
			if err != nil {
				return nil, err
			}
			top.Offer(Record{
				PhaseIndex:  pi,
				PhaseKey:    m.keys[pi],
				Orientation: t.Orientation,
				Score:       score,
			}, seq)
			seq++
		}
	}

	records := top.Records()
	for len(records) < m.nLargest {
		records = append(records, Record{})
	}
	return records, nil
}

// Placeholder returns nLargest zero records: phase 0, zero angles, score 0.
func (m *TemplateMatcher) Placeholder() []Record {
	return make([]Record, m.nLargest)
}
