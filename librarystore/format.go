package librarystore

import (
	"context"
	"errors"
	"fmt"

	"github.com/hupe1980/diffindex/codec"
)

// Serialized library object layout:
//
//	[magic "DIFL"][version uint8][codec name length uint8][codec name][payload]
//
// The codec name makes objects self-describing: Load decodes with whatever
// codec wrote the object, independent of the caller's default.
var magic = []byte("DIFL")

const formatVersion = 1

// ErrBadFormat is returned when a stored object is not a library object or
// uses an unknown format version.
var ErrBadFormat = errors.New("malformed library object")

// Save serializes v with the given codec and writes it to the store.
// A nil codec uses codec.Default.
func Save(ctx context.Context, s Store, name string, v any, c codec.Codec) error {
	if c == nil {
		c = codec.Default
	}

	cname := c.Name()
	if len(cname) > 255 {
		return fmt.Errorf("codec name too long: %q", cname)
	}

	payload, err := c.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal library: %w", err)
	}

	data := make([]byte, 0, len(magic)+2+len(cname)+len(payload))
	data = append(data, magic...)
	data = append(data, formatVersion, byte(len(cname)))
	data = append(data, cname...)
	data = append(data, payload...)

	return s.Put(ctx, name, data)
}

// Load fetches an object and decodes it into v using the codec recorded in
// its header.
func Load(ctx context.Context, s Store, name string, v any) error {
	data, err := s.Fetch(ctx, name)
	if err != nil {
		return err
	}

	if len(data) < len(magic)+2 || string(data[:len(magic)]) != string(magic) {
		return ErrBadFormat
	}
	if data[len(magic)] != formatVersion {
		return fmt.Errorf("%w: unsupported version %d", ErrBadFormat, data[len(magic)])
	}

	nameLen := int(data[len(magic)+1])
	headerEnd := len(magic) + 2 + nameLen
	if len(data) < headerEnd {
		return ErrBadFormat
	}

	cname := string(data[len(magic)+2 : headerEnd])
	c, ok := codec.ByName(cname)
	if !ok {
		return fmt.Errorf("%w: unknown codec %q", ErrBadFormat, cname)
	}

	if err := c.Unmarshal(data[headerEnd:], v); err != nil {
		return fmt.Errorf("unmarshal library: %w", err)
	}
	return nil
}
