package library

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/diffindex/pattern"
)

func testPattern(t *testing.T, rows, cols int) *pattern.Pattern {
	t.Helper()
	p, err := pattern.New(rows, cols, make([]float64, rows*cols))
	require.NoError(t, err)
	return p
}

func TestNewTemplateLibrary(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		lib, err := NewTemplateLibrary(
			TemplatePhase{Key: "ZB", Templates: []Template{
				{Orientation: Euler{Phi1: 1}, Pattern: testPattern(t, 2, 2)},
				{Orientation: Euler{Phi1: 2}, Pattern: testPattern(t, 2, 2)},
			}},
			TemplatePhase{Key: "WZ", Templates: []Template{
				{Pattern: testPattern(t, 2, 2)},
			}},
		)
		require.NoError(t, err)
		assert.Equal(t, 2, lib.NumPhases())
		assert.Equal(t, 3, lib.Size())
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := NewTemplateLibrary()
		require.ErrorIs(t, err, ErrEmptyLibrary)
	})

	t.Run("EmptyPhase", func(t *testing.T) {
		_, err := NewTemplateLibrary(TemplatePhase{Key: "ZB"})
		require.ErrorIs(t, err, ErrEmptyPhase)
	})

	t.Run("NilPattern", func(t *testing.T) {
		_, err := NewTemplateLibrary(TemplatePhase{Key: "ZB", Templates: []Template{{}}})
		require.ErrorIs(t, err, ErrNilPattern)
	})

	t.Run("MixedShapes", func(t *testing.T) {
		_, err := NewTemplateLibrary(TemplatePhase{Key: "ZB", Templates: []Template{
			{Pattern: testPattern(t, 2, 2)},
			{Pattern: testPattern(t, 3, 3)},
		}})
		require.Error(t, err)
	})
}

func TestNewProfileSimulation(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		sim, err := NewProfileSimulation([]float64{1.98, 3.0}, []HKL{{H: 1}, {H: 1, K: 1}})
		require.NoError(t, err)
		assert.Equal(t, 2, sim.Size())
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := NewProfileSimulation(nil, nil)
		require.ErrorIs(t, err, ErrEmptyLibrary)
	})

	t.Run("LengthMismatch", func(t *testing.T) {
		_, err := NewProfileSimulation([]float64{1.98}, []HKL{{H: 1}, {H: 2}})
		var tableErr *ErrTableLength
		require.ErrorAs(t, err, &tableErr)
	})
}

func TestNewVectorLibrary(t *testing.T) {
	valid := VectorPhase{Key: "ZB", Orientations: []VectorOrientation{{
		Orientation: Euler{Phi1: 30},
		Templates: []VectorTemplate{
			{Magnitude: 1, HKL: HKL{H: 1}, Angles: []float64{0, 90}},
			{Magnitude: 1, HKL: HKL{K: 1}, Angles: []float64{90, 0}},
		},
	}}}

	t.Run("Valid", func(t *testing.T) {
		lib, err := NewVectorLibrary(valid)
		require.NoError(t, err)
		assert.Equal(t, 1, lib.NumPhases())
		assert.Equal(t, 1, lib.NumHypotheses())
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := NewVectorLibrary()
		require.ErrorIs(t, err, ErrEmptyLibrary)
	})

	t.Run("EmptyPhase", func(t *testing.T) {
		_, err := NewVectorLibrary(VectorPhase{Key: "ZB"})
		require.ErrorIs(t, err, ErrEmptyPhase)
	})

	t.Run("RaggedAngleTable", func(t *testing.T) {
		_, err := NewVectorLibrary(VectorPhase{Key: "ZB", Orientations: []VectorOrientation{{
			Templates: []VectorTemplate{
				{Magnitude: 1, Angles: []float64{0}},
				{Magnitude: 1, Angles: []float64{90, 0}},
			},
		}}})
		require.Error(t, err)
	})
}
