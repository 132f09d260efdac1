package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"sync"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression defines the compression algorithm applied by Compressed.
type Compression uint8

const (
	// CompressionNone stores the encoded bytes as is.
	CompressionNone Compression = 0
	// CompressionLZ4 uses LZ4 block compression (fast).
	CompressionLZ4 Compression = 1
	// CompressionZSTD uses ZSTD (better ratio).
	CompressionZSTD Compression = 2
)

// String returns the codec-name suffix of the algorithm.
func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZSTD:
		return "zstd"
	default:
		return "unknown"
	}
}

// ParseCompression resolves a name produced by Compression.String.
func ParseCompression(s string) (Compression, bool) {
	switch s {
	case "none":
		return CompressionNone, true
	case "lz4":
		return CompressionLZ4, true
	case "zstd":
		return CompressionZSTD, true
	default:
		return 0, false
	}
}

// ErrCorruptFrame is returned when compressed input cannot be decoded.
var ErrCorruptFrame = errors.New("codec: corrupt compressed frame")

// Frame layout: [Algorithm uint8][UncompressedSize uint32][Data...]
// Algorithm is CompressionNone when compression did not help.
const frameHeaderSize = 5

// maxLZ4Ratio bounds how far an LZ4 block can expand. A header claiming more
// than len(body)*maxLZ4Ratio bytes cannot be genuine.
const maxLZ4Ratio = 255

// maxPrealloc caps the output buffer reserved up front for frames whose size
// cannot be verified before decoding.
const maxPrealloc = 1 << 20

// ZSTD encoder/decoder pools for efficiency
var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() (*zstd.Encoder, error) {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder), nil
	}
	return zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
}

func getZstdDecoder() (*zstd.Decoder, error) {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder), nil
	}
	return zstd.NewReader(nil, zstd.WithDecoderMaxMemory(math.MaxUint32))
}

// Compressed wraps another codec and compresses its output.
//
// Frames record their algorithm, so Unmarshal accepts frames written with any
// algorithm regardless of the one configured for Marshal.
type Compressed struct {
	inner Codec
	algo  Compression
}

// NewCompressed returns a codec that compresses inner's output with algo.
// If inner is nil, Default is used.
func NewCompressed(inner Codec, algo Compression) *Compressed {
	if inner == nil {
		inner = Default
	}
	return &Compressed{inner: inner, algo: algo}
}

// Name returns the inner codec name with the algorithm suffix, e.g. "go-json+zstd".
func (c *Compressed) Name() string {
	return c.inner.Name() + "+" + c.algo.String()
}

// Marshal encodes v with the inner codec and compresses the result.
func (c *Compressed) Marshal(v any) ([]byte, error) {
	raw, err := c.inner.Marshal(v)
	if err != nil {
		return nil, err
	}
	return compressFrame(raw, c.algo)
}

// Unmarshal decompresses data and decodes it with the inner codec.
func (c *Compressed) Unmarshal(data []byte, v any) error {
	raw, err := decompressFrame(data)
	if err != nil {
		return err
	}
	return c.inner.Unmarshal(raw, v)
}

func compressFrame(data []byte, algo Compression) ([]byte, error) {
	if err := checkFrameSize(len(data)); err != nil {
		return nil, err
	}

	var (
		compressed []byte
		err        error
	)
	switch algo {
	case CompressionNone:
	case CompressionLZ4:
		compressed, err = compressLZ4(data)
	case CompressionZSTD:
		compressed, err = compressZSTD(data)
	default:
		return nil, fmt.Errorf("codec: unknown compression %d", algo)
	}
	if err != nil {
		return nil, err
	}

	// Fall back to a stored frame when compression doesn't help.
	if len(compressed) == 0 || len(compressed) >= len(data) {
		algo, compressed = CompressionNone, data
	}

	out := make([]byte, frameHeaderSize+len(compressed))
	out[0] = byte(algo)
	binary.LittleEndian.PutUint32(out[1:], uint32(len(data)))
	copy(out[frameHeaderSize:], compressed)
	return out, nil
}

func decompressFrame(frame []byte) ([]byte, error) {
	if len(frame) < frameHeaderSize {
		return nil, ErrCorruptFrame
	}
	algo := Compression(frame[0])
	size := int(binary.LittleEndian.Uint32(frame[1:]))
	body := frame[frameHeaderSize:]

	switch algo {
	case CompressionNone:
		if len(body) != size {
			return nil, ErrCorruptFrame
		}
		return body, nil
	case CompressionLZ4:
		if size > len(body)*maxLZ4Ratio {
			return nil, ErrCorruptFrame
		}
		out := make([]byte, size)
		n, err := lz4.UncompressBlock(body, out)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorruptFrame, err)
		}
		if n != size {
			return nil, ErrCorruptFrame
		}
		return out, nil
	case CompressionZSTD:
		dec, err := getZstdDecoder()
		if err != nil {
			return nil, err
		}
		defer zstdDecoderPool.Put(dec)

		var h zstd.Header
		if err := h.Decode(body); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorruptFrame, err)
		}
		if h.HasFCS && h.FrameContentSize != uint64(size) {
			return nil, ErrCorruptFrame
		}
		out, err := dec.DecodeAll(body, make([]byte, 0, min(size, maxPrealloc)))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrCorruptFrame, err)
		}
		if len(out) != size {
			return nil, ErrCorruptFrame
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: unknown compression %d", ErrCorruptFrame, algo)
	}
}

// checkFrameSize rejects payloads whose length does not fit the header.
func checkFrameSize(n int) error {
	if uint64(n) > math.MaxUint32 {
		return fmt.Errorf("codec: payload of %d bytes exceeds the %d byte frame limit", n, uint64(math.MaxUint32))
	}
	return nil
}

func compressLZ4(data []byte) ([]byte, error) {
	dst := make([]byte, lz4.CompressBlockBound(len(data)))
	n, err := lz4.CompressBlock(data, dst, nil)
	if err != nil {
		return nil, err
	}
	// n == 0 means incompressible
	return dst[:n], nil
}

func compressZSTD(data []byte) ([]byte, error) {
	enc, err := getZstdEncoder()
	if err != nil {
		return nil, err
	}
	defer zstdEncoderPool.Put(enc)
	return enc.EncodeAll(data, make([]byte, 0, len(data))), nil
}
