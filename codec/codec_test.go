package codec

import (
	"bytes"
	"encoding/binary"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type samplePayload struct {
	Name    string      `json:"name"`
	Scores  []float32   `json:"scores"`
	Vectors [][]float32 `json:"vectors"`
	Bits    [][]byte    `json:"bits"`
}

func newSamplePayload() samplePayload {
	p := samplePayload{Name: "embedding"}
	for i := 0; i < 64; i++ {
		p.Scores = append(p.Scores, float32(i)/64)
		p.Vectors = append(p.Vectors, []float32{1, 2, 3, 4})
		p.Bits = append(p.Bits, []byte{0xAA, 0x55})
	}
	return p
}

func TestByName(t *testing.T) {
	tests := []struct {
		name string
		ok   bool
	}{
		{"json", true},
		{"go-json", true},
		{"json+zstd", true},
		{"json+lz4", true},
		{"go-json+zstd", true},
		{"go-json+lz4", true},
		{"json+none", false},
		{"json+brotli", false},
		{"msgpack", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := ByName(tt.name)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.name, c.Name())
			}
		})
	}
}

func TestCodecs_RoundTrip(t *testing.T) {
	codecs := []Codec{
		JSON{},
		GoJSON{},
		NewCompressed(JSON{}, CompressionLZ4),
		NewCompressed(GoJSON{}, CompressionZSTD),
		NewCompressed(nil, CompressionNone),
	}

	in := newSamplePayload()
	for _, c := range codecs {
		t.Run(c.Name(), func(t *testing.T) {
			data, err := c.Marshal(in)
			require.NoError(t, err)

			var out samplePayload
			require.NoError(t, c.Unmarshal(data, &out))
			assert.Equal(t, in, out)
		})
	}
}

func TestJSONAndGoJSONInterop(t *testing.T) {
	in := newSamplePayload()

	var out samplePayload
	require.NoError(t, GoJSON{}.Unmarshal(MustMarshal(JSON{}, in), &out))
	assert.Equal(t, in, out)

	buf, err := GoJSON{}.Append([]byte("x"), in)
	require.NoError(t, err)
	assert.Equal(t, byte('x'), buf[0])
}

func TestGoJSON_AppendReusesBuffer(t *testing.T) {
	in := map[string]string{"title": "<a & b>"}

	dst := make([]byte, 0, 256)
	dst = append(dst, '[')
	buf, err := GoJSON{}.Append(dst, in)
	require.NoError(t, err)

	assert.Equal(t, `[{"title":"<a & b>"}`, string(buf))
	assert.Same(t, &dst[0], &buf[0])

	var out map[string]string
	require.NoError(t, JSON{}.Unmarshal(buf[1:], &out))
	assert.Equal(t, in, out)
}

func TestCompressed_ShrinksRepetitiveInput(t *testing.T) {
	in := newSamplePayload()
	plain := MustMarshal(JSON{}, in)

	for _, algo := range []Compression{CompressionLZ4, CompressionZSTD} {
		data, err := NewCompressed(JSON{}, algo).Marshal(in)
		require.NoError(t, err)
		assert.Equal(t, byte(algo), data[0], algo.String())
		assert.Less(t, len(data), len(plain), algo.String())
	}
}

func TestCompressed_FramesAreSelfDescribing(t *testing.T) {
	in := newSamplePayload()
	data, err := NewCompressed(JSON{}, CompressionZSTD).Marshal(in)
	require.NoError(t, err)

	var out samplePayload
	require.NoError(t, NewCompressed(JSON{}, CompressionLZ4).Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestCompressed_CorruptInput(t *testing.T) {
	c := NewCompressed(JSON{}, CompressionZSTD)
	var out samplePayload

	assert.ErrorIs(t, c.Unmarshal([]byte{1, 2}, &out), ErrCorruptFrame)
	assert.ErrorIs(t, c.Unmarshal([]byte{9, 0, 0, 0, 0}, &out), ErrCorruptFrame)
	assert.ErrorIs(t, c.Unmarshal([]byte{0, 5, 0, 0, 0, '{'}, &out), ErrCorruptFrame)

	garbage := append([]byte{byte(CompressionZSTD), 16, 0, 0, 0}, bytes.Repeat([]byte{0xFF}, 16)...)
	assert.ErrorIs(t, c.Unmarshal(garbage, &out), ErrCorruptFrame)

	t.Run("lz4 size beyond expansion bound", func(t *testing.T) {
		frame := []byte{byte(CompressionLZ4), 0, 0, 0, 0x40, 0x10, 0x20, 0x30, 0x40}
		_, err := decompressFrame(frame)
		assert.ErrorIs(t, err, ErrCorruptFrame)
	})

	t.Run("zstd size disagrees with frame content size", func(t *testing.T) {
		raw := bytes.Repeat([]byte("embedding"), 64)
		frame, err := compressFrame(raw, CompressionZSTD)
		require.NoError(t, err)
		require.Equal(t, byte(CompressionZSTD), frame[0])

		binary.LittleEndian.PutUint32(frame[1:], 1<<30)
		_, err = decompressFrame(frame)
		assert.ErrorIs(t, err, ErrCorruptFrame)
	})
}

func TestCheckFrameSize(t *testing.T) {
	require.NoError(t, checkFrameSize(0))
	require.NoError(t, checkFrameSize(1<<20))

	if strconv.IntSize < 64 {
		t.Skip("int cannot exceed the frame limit")
	}
	n := uint64(math.MaxUint32) + 1
	assert.ErrorContains(t, checkFrameSize(int(n)), "frame limit")
}

func TestParseCompression(t *testing.T) {
	for _, algo := range []Compression{CompressionNone, CompressionLZ4, CompressionZSTD} {
		got, ok := ParseCompression(algo.String())
		assert.True(t, ok)
		assert.Equal(t, algo, got)
	}
	assert.Equal(t, "unknown", Compression(42).String())
}
