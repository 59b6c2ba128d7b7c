package codec

import (
	"bytes"
	"encoding/gob"
)

// Gob encodes values with encoding/gob. It handles the nested float-heavy
// library structs directly, without a schema step.
type Gob struct{}

// Marshal implements Codec.
func (Gob) Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal implements Codec.
func (Gob) Unmarshal(data []byte, v any) error {
	return gob.NewDecoder(bytes.NewReader(data)).Decode(v)
}

// Name implements Codec.
func (Gob) Name() string { return "gob" }
