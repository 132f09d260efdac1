package entity

import (
	"slices"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// IDKind identifies which variant of an IDArray is active.
type IDKind uint8

const (
	// IDKindInt64 marks an array of int64 primary keys.
	IDKindInt64 IDKind = iota
	// IDKindString marks an array of string primary keys.
	IDKindString
)

// String returns the string representation of the IDKind.
func (k IDKind) String() string {
	switch k {
	case IDKindInt64:
		return "Int64"
	case IDKindString:
		return "String"
	default:
		return "Unknown"
	}
}

// IDArray holds primary keys of one kind: int64 or string.
//
// The zero value is an empty int64 array.
type IDArray struct {
	kind IDKind
	ints []int64
	strs []string
}

// NewInt64IDs creates an integer IDArray that takes ownership of ids.
func NewInt64IDs(ids []int64) IDArray {
	return IDArray{kind: IDKindInt64, ints: ids}
}

// NewStringIDs creates a string IDArray that takes ownership of ids.
func NewStringIDs(ids []string) IDArray {
	return IDArray{kind: IDKindString, strs: ids}
}

// Kind returns the active variant.
func (a IDArray) Kind() IDKind { return a.kind }

// IsIntegerID reports whether the array holds int64 keys.
func (a IDArray) IsIntegerID() bool { return a.kind == IDKindInt64 }

// IntIDArray returns the int64 keys, or nil for a string array.
func (a IDArray) IntIDArray() []int64 {
	if a.kind != IDKindInt64 {
		return nil
	}
	return a.ints
}

// StrIDArray returns the string keys, or nil for an integer array.
func (a IDArray) StrIDArray() []string {
	if a.kind != IDKindString {
		return nil
	}
	return a.strs
}

// Len returns the number of keys.
func (a IDArray) Len() int {
	if a.kind == IDKindString {
		return len(a.strs)
	}
	return len(a.ints)
}

// Equal reports whether a and b hold the same variant and the same keys in
// the same order. A nil and an empty sequence compare equal.
func (a IDArray) Equal(b IDArray) bool {
	if a.kind != b.kind {
		return false
	}
	if a.kind == IDKindString {
		return slices.Equal(a.strs, b.strs)
	}
	return slices.Equal(a.ints, b.ints)
}

// IntSet returns the integer keys as a 64-bit roaring bitmap.
// Negative keys are stored by their two's-complement bit pattern.
// It returns nil for a string array.
func (a IDArray) IntSet() *roaring64.Bitmap {
	if a.kind != IDKindInt64 {
		return nil
	}
	bm := roaring64.New()
	for _, id := range a.ints {
		bm.Add(uint64(id))
	}
	return bm
}
