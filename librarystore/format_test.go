package librarystore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/diffindex/codec"
	"github.com/hupe1980/diffindex/library"
)

func testSimulation(t *testing.T) *library.ProfileSimulation {
	t.Helper()
	sim, err := library.NewProfileSimulation(
		[]float64{1.98, 3.00, 3.26},
		[]library.HKL{{H: 1, K: 1, L: 1}, {H: 2}, {H: 2, K: 2}},
	)
	require.NoError(t, err)
	return sim
}

func TestSaveLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("DefaultCodec", func(t *testing.T) {
		s := NewMemoryStore()
		in := testSimulation(t)
		require.NoError(t, Save(ctx, s, "sim/silicon", in, nil))

		var out library.ProfileSimulation
		require.NoError(t, Load(ctx, s, "sim/silicon", &out))
		assert.Equal(t, in.Magnitudes, out.Magnitudes)
		assert.Equal(t, in.HKLs, out.HKLs)
	})

	t.Run("CodecRecordedInHeader", func(t *testing.T) {
		// Saved with lz4, loaded without naming a codec: the header decides.
		s := NewMemoryStore()
		in := testSimulation(t)
		require.NoError(t, Save(ctx, s, "sim/silicon", in, codec.LZ4(codec.Gob{})))

		var out library.ProfileSimulation
		require.NoError(t, Load(ctx, s, "sim/silicon", &out))
		assert.Equal(t, in.Magnitudes, out.Magnitudes)
	})

	t.Run("MissingObject", func(t *testing.T) {
		var out library.ProfileSimulation
		err := Load(ctx, NewMemoryStore(), "nope", &out)
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("NotALibraryObject", func(t *testing.T) {
		s := NewMemoryStore()
		require.NoError(t, s.Put(ctx, "junk", []byte("not a library")))

		var out library.ProfileSimulation
		err := Load(ctx, s, "junk", &out)
		require.ErrorIs(t, err, ErrBadFormat)
	})

	t.Run("UnknownCodecName", func(t *testing.T) {
		s := NewMemoryStore()
		data := append([]byte("DIFL"), 1, 7)
		data = append(data, "msgpack"...)
		require.NoError(t, s.Put(ctx, "bad", data))

		var out library.ProfileSimulation
		err := Load(ctx, s, "bad", &out)
		require.ErrorIs(t, err, ErrBadFormat)
	})

	t.Run("UnsupportedVersion", func(t *testing.T) {
		s := NewMemoryStore()
		data := append([]byte("DIFL"), 99, 3)
		data = append(data, "gob"...)
		require.NoError(t, s.Put(ctx, "future", data))

		var out library.ProfileSimulation
		err := Load(ctx, s, "future", &out)
		require.ErrorIs(t, err, ErrBadFormat)
	})
}
