package entity

import (
	"encoding/binary"
	"math"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// Bulk constructors for decoded server payloads.
//
// Vectors arrive on the wire as one flat buffer per field. These helpers split
// that buffer into per-row slices that share the original backing array, so a
// field of n vectors costs one slice header per row and no element copies.
// Row slices have their capacity capped at the dimension: appending to one row
// never overwrites the next.

// FloatVectorsFromFlat builds a FloatVector field from a flat slice holding
// len(flat)/dim vectors back to back. No elements are copied.
func FloatVectorsFromFlat(name string, dim int, flat []float32) (*FloatVecFieldData, error) {
	if dim <= 0 {
		return nil, &ErrInvalidDimension{Dimension: dim}
	}
	if len(flat)%dim != 0 {
		return nil, &ErrRaggedData{Length: len(flat), Size: dim}
	}
	return NewFloatVecFieldDataFrom(name, split(flat, dim)), nil
}

// FloatVectorsFromBytes builds a FloatVector field from little-endian float32
// bytes. On little-endian hosts an aligned buffer is reinterpreted in place;
// otherwise the values are decoded into a new slice.
func FloatVectorsFromBytes(name string, dim int, raw []byte) (*FloatVecFieldData, error) {
	if dim <= 0 {
		return nil, &ErrInvalidDimension{Dimension: dim}
	}
	if dim > math.MaxInt/4 {
		return nil, &ErrInvalidDimension{Dimension: dim, Reason: "row size overflows int"}
	}
	if size := dim * 4; len(raw)%size != 0 {
		return nil, &ErrRaggedData{Length: len(raw), Size: size}
	}
	return NewFloatVecFieldDataFrom(name, split(bytesToFloat32s(raw), dim)), nil
}

// BinaryVectorsFromBytes builds a BinaryVector field from packed bit vectors.
// dim is the vector dimension in bits and must be a positive multiple of 8.
func BinaryVectorsFromBytes(name string, dim int, raw []byte) (*BinaryVecFieldData, error) {
	if dim <= 0 || dim%8 != 0 {
		return nil, &ErrInvalidDimension{Dimension: dim, Reason: "binary vector dimension must be a positive multiple of 8"}
	}
	size := dim / 8
	if len(raw)%size != 0 {
		return nil, &ErrRaggedData{Length: len(raw), Size: size}
	}
	return NewBinaryVecFieldDataFrom(name, split(raw, size)), nil
}

func split[E any](flat []E, size int) [][]E {
	n := len(flat) / size
	if n == 0 {
		return nil
	}
	out := make([][]E, n)
	for i := range out {
		lo, hi := i*size, (i+1)*size
		out[i] = flat[lo:hi:hi]
	}
	return out
}

func bytesToFloat32s(raw []byte) []float32 {
	n := len(raw) / 4
	if n == 0 {
		return nil
	}
	p := unsafe.SliceData(raw)
	if !cpu.IsBigEndian && uintptr(unsafe.Pointer(p))%unsafe.Alignof(float32(0)) == 0 {
		return unsafe.Slice((*float32)(unsafe.Pointer(p)), n)
	}
	out := make([]float32, n)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(raw[i*4:]))
	}
	return out
}
