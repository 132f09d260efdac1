// Package codec centralizes encoding of result snapshots.
//
// Snapshots are self-describing only through the codec name the caller stores
// next to them: bytes written by one codec must be read back by the same one.
package codec

import (
	"fmt"
	"strings"
)

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
//
// Plain names are "json" and "go-json". A "+zstd" or "+lz4" suffix selects the
// compressed variant, e.g. "go-json+zstd".
func ByName(name string) (Codec, bool) {
	base, suffix, compressed := strings.Cut(name, "+")

	var inner Codec
	switch base {
	case "json":
		inner = JSON{}
	case "go-json":
		inner = GoJSON{}
	default:
		return nil, false
	}
	if !compressed {
		return inner, true
	}

	algo, ok := ParseCompression(suffix)
	if !ok || algo == CompressionNone {
		return nil, false
	}
	return NewCompressed(inner, algo), true
}

// MustMarshal is a helper for internal tests/benchmarks.
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
