package diffindex

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/diffindex/grid"
	"github.com/hupe1980/diffindex/library"
	"github.com/hupe1980/diffindex/match"
	"github.com/hupe1980/diffindex/pattern"
)

// recordingMatcher labels each position by its input and records which
// inputs it was invoked for.
type recordingMatcher struct {
	mu   sync.Mutex
	seen []int

	failOn int
}

func newRecordingMatcher() *recordingMatcher {
	return &recordingMatcher{failOn: -1}
}

func (m *recordingMatcher) Match(ctx context.Context, data int) (string, error) {
	m.mu.Lock()
	m.seen = append(m.seen, data)
	m.mu.Unlock()

	if data == m.failOn {
		return "", fmt.Errorf("bad position %d", data)
	}
	return fmt.Sprintf("pos-%d", data), nil
}

func (m *recordingMatcher) Placeholder() string {
	return "skipped"
}

func intSignal(t *testing.T, shape grid.Shape, cal grid.Calibration) *grid.Signal[int] {
	t.Helper()
	data := make([]int, shape.Size())
	for i := range data {
		data[i] = i
	}
	sig, err := grid.NewSignal(shape, data, cal)
	require.NoError(t, err)
	return sig
}

func TestNew(t *testing.T) {
	t.Run("NilMatcher", func(t *testing.T) {
		_, err := New[int, string](nil)
		require.ErrorIs(t, err, ErrNilMatcher)
	})
}

func TestIndexerRun(t *testing.T) {
	ctx := context.Background()
	shape := grid.Shape{Rows: 2, Cols: 3}

	t.Run("MatchesEveryPosition", func(t *testing.T) {
		ix, err := New[int, string](newRecordingMatcher())
		require.NoError(t, err)

		res, err := ix.Run(ctx, intSignal(t, shape, nil), nil)
		require.NoError(t, err)
		require.Equal(t, shape, res.Shape())
		for i := 0; i < shape.Size(); i++ {
			assert.Equal(t, fmt.Sprintf("pos-%d", i), res.AtIndex(i))
		}
	})

	t.Run("NilSignal", func(t *testing.T) {
		ix, err := New[int, string](newRecordingMatcher())
		require.NoError(t, err)

		_, err = ix.Run(ctx, nil, nil)
		require.ErrorIs(t, err, ErrNilSignal)
	})

	t.Run("MaskShapeMismatch", func(t *testing.T) {
		ix, err := New[int, string](newRecordingMatcher())
		require.NoError(t, err)

		_, err = ix.Run(ctx, intSignal(t, shape, nil), grid.NewMask(grid.Shape{Rows: 3, Cols: 3}))
		var maskErr *ErrMaskShape
		require.ErrorAs(t, err, &maskErr)
		assert.Equal(t, grid.Shape{Rows: 3, Cols: 3}, maskErr.Mask)
		assert.Equal(t, shape, maskErr.Navigation)
	})

	t.Run("MaskedPositionsGetPlaceholder", func(t *testing.T) {
		m := newRecordingMatcher()
		ix, err := New[int, string](m)
		require.NoError(t, err)

		mask := grid.NewMaskAllEnabled(shape)
		mask.Disable(0, 0)
		mask.Disable(1, 2)

		res, err := ix.Run(ctx, intSignal(t, shape, nil), mask)
		require.NoError(t, err)
		assert.Equal(t, "skipped", res.At(0, 0))
		assert.Equal(t, "skipped", res.At(1, 2))
		assert.Equal(t, "pos-1", res.At(0, 1))

		// The matcher must never see masked-out positions.
		assert.Len(t, m.seen, shape.Size()-2)
		assert.NotContains(t, m.seen, 0)
		assert.NotContains(t, m.seen, 5)
	})

	t.Run("AllMasked", func(t *testing.T) {
		m := newRecordingMatcher()
		ix, err := New[int, string](m)
		require.NoError(t, err)

		res, err := ix.Run(ctx, intSignal(t, shape, nil), grid.NewMask(shape))
		require.NoError(t, err)
		for i := 0; i < shape.Size(); i++ {
			assert.Equal(t, "skipped", res.AtIndex(i))
		}
		assert.Empty(t, m.seen)
	})

	t.Run("MatcherErrorFailsRun", func(t *testing.T) {
		m := newRecordingMatcher()
		m.failOn = 3
		ix, err := New[int, string](m)
		require.NoError(t, err)

		_, err = ix.Run(ctx, intSignal(t, shape, nil), nil)
		require.ErrorContains(t, err, "bad position 3")
	})

	t.Run("CanceledContext", func(t *testing.T) {
		ix, err := New[int, string](newRecordingMatcher())
		require.NoError(t, err)

		canceled, cancel := context.WithCancel(ctx)
		cancel()

		_, err = ix.Run(canceled, intSignal(t, shape, nil), nil)
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("CarriesCalibration", func(t *testing.T) {
		cal := grid.Calibration{
			{Name: "y", Units: "nm", Scale: 2.5, Offset: -1},
			{Name: "x", Units: "nm", Scale: 2.5, Offset: 0},
		}
		ix, err := New[int, string](newRecordingMatcher())
		require.NoError(t, err)

		res, err := ix.Run(ctx, intSignal(t, shape, cal), nil)
		require.NoError(t, err)
		assert.Equal(t, cal, res.Calibration())
	})

	t.Run("CollectsMetrics", func(t *testing.T) {
		collector := &BasicMetricsCollector{}
		ix, err := New[int, string](newRecordingMatcher(), WithMetricsCollector(collector))
		require.NoError(t, err)

		mask := grid.NewMaskAllEnabled(shape)
		mask.Disable(0, 0)

		_, err = ix.Run(ctx, intSignal(t, shape, nil), mask)
		require.NoError(t, err)
		assert.Equal(t, int64(1), collector.RunCount.Load())
		assert.Equal(t, int64(1), collector.SkippedCount.Load())
		assert.Equal(t, int64(shape.Size()-1), collector.PositionCount.Load())
		assert.Equal(t, int64(0), collector.RunErrors.Load())
	})
}

func TestRunDeterminism(t *testing.T) {
	ctx := context.Background()
	shape := grid.Shape{Rows: 4, Cols: 4}

	lib, err := library.NewTemplateLibrary(
		library.TemplatePhase{Key: "ZB", Templates: []library.Template{
			{Orientation: library.Euler{Phi1: 0}, Pattern: mustTestPattern(t, []float64{1, 0, 0, 0})},
			{Orientation: library.Euler{Phi1: 10}, Pattern: mustTestPattern(t, []float64{0, 1, 0, 0})},
			{Orientation: library.Euler{Phi1: 20}, Pattern: mustTestPattern(t, []float64{0, 0, 1, 0})},
		}},
	)
	require.NoError(t, err)

	data := make([]*pattern.Pattern, shape.Size())
	for i := range data {
		raw := make([]float64, 4)
		raw[i%4] = 1
		raw[(i+1)%4] = 0.5
		data[i] = mustTestPattern(t, raw)
	}
	sig, err := grid.NewSignal(shape, data, nil)
	require.NoError(t, err)

	sequential, err := Correlate(ctx, sig, lib, 2, nil, nil, WithWorkers(1))
	require.NoError(t, err)

	parallel, err := Correlate(ctx, sig, lib, 2, nil, nil, WithWorkers(8))
	require.NoError(t, err)

	for i := 0; i < shape.Size(); i++ {
		assert.Equal(t, sequential.AtIndex(i), parallel.AtIndex(i), "position %d", i)
	}
}

func mustTestPattern(t *testing.T, data []float64) *pattern.Pattern {
	t.Helper()
	p, err := pattern.New(2, 2, data)
	require.NoError(t, err)
	return p
}

func TestIndexMagnitudes(t *testing.T) {
	ctx := context.Background()

	sim, err := library.NewProfileSimulation(
		[]float64{1.98, 3.00},
		[]library.HKL{{H: 1}, {H: 1, K: 1}},
	)
	require.NoError(t, err)

	shape := grid.Shape{Rows: 1, Cols: 2}
	sig, err := grid.NewSignal(shape, [][]float64{{2.00}, {9.99}}, nil)
	require.NoError(t, err)

	res, err := IndexMagnitudes(ctx, sig, sim, 2.0, nil)
	require.NoError(t, err)

	first := res.At(0, 0)
	require.Len(t, first, 1)
	assert.Equal(t, []library.HKL{{H: 1}}, first[0].HKLs)

	second := res.At(0, 1)
	require.Len(t, second, 1)
	assert.Empty(t, second[0].HKLs)
}

func TestIndexVectors(t *testing.T) {
	ctx := context.Background()

	lib, err := library.NewVectorLibrary(library.VectorPhase{
		Key: "ZB",
		Orientations: []library.VectorOrientation{{
			Orientation: library.Euler{Phi1: 30},
			Templates: []library.VectorTemplate{
				{Magnitude: 1, HKL: library.HKL{H: 1}, Angles: []float64{0, 90}},
				{Magnitude: 1, HKL: library.HKL{K: 1}, Angles: []float64{90, 0}},
			},
		}},
	})
	require.NoError(t, err)

	shape := grid.Shape{Rows: 1, Cols: 2}
	sig, err := grid.NewSignal(shape, [][]match.Vector{
		{{X: 1, Y: 0}, {X: 0, Y: 1}},
		{{X: 1, Y: 0}},
	}, nil)
	require.NoError(t, err)

	res, err := IndexVectors(ctx, sig, lib, 0.1, 2.0, []string{"ZB"}, nil)
	require.NoError(t, err)

	first := res.At(0, 0)
	require.Len(t, first, 1)
	assert.Equal(t, "ZB", first[0].PhaseKey)
	assert.Equal(t, 2, first[0].Matched)

	assert.Empty(t, res.At(0, 1))
}

func TestConstructorErrorsPropagate(t *testing.T) {
	ctx := context.Background()

	_, err := Correlate(ctx, nil, nil, 1, nil, nil)
	require.ErrorIs(t, err, library.ErrEmptyLibrary)

	_, err = IndexMagnitudes(ctx, nil, nil, 2.0, nil)
	require.ErrorIs(t, err, library.ErrEmptyLibrary)

	_, err = IndexVectors(ctx, nil, nil, 0.1, 2.0, nil, nil)
	require.ErrorIs(t, err, library.ErrEmptyLibrary)
}

func TestPhaseMap(t *testing.T) {
	shape := grid.Shape{Rows: 1, Cols: 3}
	cal := grid.Calibration{{Name: "x", Scale: 1}}

	res, err := grid.NewResults[[]match.Record](shape, cal)
	require.NoError(t, err)
	res.SetIndex(0, []match.Record{{PhaseKey: "ZB", Score: 0.9}, {PhaseKey: "WZ", Score: 0.5}})
	res.SetIndex(1, []match.Record{{PhaseKey: "WZ", Score: 0.7}})
	// Position 2 stays empty: masked out or nothing matched.

	t.Run("PhaseMap", func(t *testing.T) {
		pm, err := PhaseMap(res)
		require.NoError(t, err)
		assert.Equal(t, "ZB", pm.At(0, 0))
		assert.Equal(t, "WZ", pm.At(0, 1))
		assert.Empty(t, pm.At(0, 2))
		assert.Equal(t, cal, pm.Calibration())
	})

	t.Run("BestScores", func(t *testing.T) {
		bs, err := BestScores(res)
		require.NoError(t, err)
		assert.Equal(t, 0.9, bs.At(0, 0))
		assert.Equal(t, 0.7, bs.At(0, 1))
		assert.Zero(t, bs.At(0, 2))
	})

	t.Run("Nil", func(t *testing.T) {
		_, err := PhaseMap(nil)
		require.ErrorIs(t, err, ErrNilSignal)
		_, err = BestScores(nil)
		require.ErrorIs(t, err, ErrNilSignal)
	})
}
