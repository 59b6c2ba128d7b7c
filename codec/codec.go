// Package codec centralizes reference-library serialization.
//
// Codec selection is a compatibility boundary: bytes written by one codec
// only decode with the same codec, so stores record the codec name next to
// the payload (see librarystore).
package codec

import "fmt"

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// Default is the codec used when none is configured.
var Default Codec = Zstd(Gob{})

// ByName returns a built-in codec by its stable name.
//
// Stores use this to decode self-describing payloads that carry the codec
// name in their header.
func ByName(name string) (Codec, bool) {
	switch name {
	case "gob":
		return Gob{}, true
	case "gob+zstd":
		return Zstd(Gob{}), true
	case "gob+lz4":
		return LZ4(Gob{}), true
	default:
		return nil, false
	}
}

// MustMarshal is a helper for internal tests.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}
