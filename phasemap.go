package diffindex

import (
	"github.com/hupe1980/diffindex/grid"
	"github.com/hupe1980/diffindex/match"
)

// PhaseMap reduces ranked match records to the best phase key per position.
// Positions with no records (masked out, or no hypothesis survived the
// thresholds) map to the empty string.
func PhaseMap(res *grid.Results[[]match.Record]) (*grid.Signal[string], error) {
	if res == nil {
		return nil, ErrNilSignal
	}

	shape := res.Shape()
	keys := make([]string, shape.Size())
	for i := range keys {
		if recs := res.AtIndex(i); len(recs) > 0 {
			keys[i] = recs[0].PhaseKey
		}
	}

	return grid.NewSignal(shape, keys, res.Calibration())
}

// BestScores reduces ranked match records to the top score per position.
// Positions with no records score zero.
func BestScores(res *grid.Results[[]match.Record]) (*grid.Signal[float64], error) {
	if res == nil {
		return nil, ErrNilSignal
	}

	shape := res.Shape()
	scores := make([]float64, shape.Size())
	for i := range scores {
		if recs := res.AtIndex(i); len(recs) > 0 {
			scores[i] = recs[0].Score
		}
	}

	return grid.NewSignal(shape, scores, res.Calibration())
}
