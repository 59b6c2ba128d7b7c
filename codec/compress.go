package codec

import (
	"encoding/binary"
	"errors"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// ZSTD encoder/decoder pools for efficiency
var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil)
	return dec
}

// Zstd wraps a codec with zstd compression. Simulated pattern libraries
// compress well; zstd gives the better ratio and is the default.
func Zstd(inner Codec) Codec {
	return &zstdCodec{inner: inner}
}

type zstdCodec struct {
	inner Codec
}

func (c *zstdCodec) Marshal(v any) ([]byte, error) {
	raw, err := c.inner.Marshal(v)
	if err != nil {
		return nil, err
	}

	enc := getZstdEncoder()
	defer zstdEncoderPool.Put(enc)
	return enc.EncodeAll(raw, nil), nil
}

func (c *zstdCodec) Unmarshal(data []byte, v any) error {
	dec := getZstdDecoder()
	defer zstdDecoderPool.Put(dec)

	raw, err := dec.DecodeAll(data, nil)
	if err != nil {
		return err
	}
	return c.inner.Unmarshal(raw, v)
}

func (c *zstdCodec) Name() string {
	return c.inner.Name() + "+zstd"
}

// LZ4 wraps a codec with LZ4 block compression (faster, lower ratio).
// The uncompressed size is prepended so decompression can size its buffer.
func LZ4(inner Codec) Codec {
	return &lz4Codec{inner: inner}
}

type lz4Codec struct {
	inner Codec
}

const lz4HeaderSize = 8

func (c *lz4Codec) Marshal(v any) ([]byte, error) {
	raw, err := c.inner.Marshal(v)
	if err != nil {
		return nil, err
	}

	bound := lz4.CompressBlockBound(len(raw))
	out := make([]byte, lz4HeaderSize+bound)
	binary.LittleEndian.PutUint64(out, uint64(len(raw)))

	n, err := lz4.CompressBlock(raw, out[lz4HeaderSize:], nil)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		// Incompressible; store raw with a zero size marker.
		out = make([]byte, lz4HeaderSize+len(raw))
		binary.LittleEndian.PutUint64(out, 0)
		copy(out[lz4HeaderSize:], raw)
		return out, nil
	}
	return out[:lz4HeaderSize+n], nil
}

func (c *lz4Codec) Unmarshal(data []byte, v any) error {
	if len(data) < lz4HeaderSize {
		return errors.New("lz4 payload too small for header")
	}

	rawSize := binary.LittleEndian.Uint64(data)
	if rawSize == 0 {
		return c.inner.Unmarshal(data[lz4HeaderSize:], v)
	}

	raw := make([]byte, rawSize)
	n, err := lz4.UncompressBlock(data[lz4HeaderSize:], raw)
	if err != nil {
		return err
	}
	if uint64(n) != rawSize {
		return errors.New("lz4 decompressed size mismatch")
	}
	return c.inner.Unmarshal(raw, v)
}

func (c *lz4Codec) Name() string {
	return c.inner.Name() + "+lz4"
}
