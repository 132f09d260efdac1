package entity

import (
	"errors"
	"fmt"
)

var (
	// ErrVectorIsEmpty is returned when a zero-length element is added to a vector field.
	ErrVectorIsEmpty = errors.New("vector is empty")
)

// ErrDimensionMismatch indicates that a vector element does not match the
// dimension established by the first element of its field.
type ErrDimensionMismatch struct {
	Field    string
	Expected int
	Actual   int
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("field %q: dimension mismatch: expected %d, got %d", e.Field, e.Expected, e.Actual)
}

// ErrInvalidDimension indicates an unusable dimension passed to a bulk decoder.
type ErrInvalidDimension struct {
	Dimension int
	Reason    string
}

func (e *ErrInvalidDimension) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("invalid dimension: %d", e.Dimension)
	}
	return fmt.Sprintf("invalid dimension: %d (%s)", e.Dimension, e.Reason)
}

// ErrRaggedData indicates a flat payload whose length is not a multiple of the
// per-vector size.
type ErrRaggedData struct {
	Length int
	Size   int
}

func (e *ErrRaggedData) Error() string {
	return fmt.Sprintf("payload length %d is not a multiple of vector size %d", e.Length, e.Size)
}

// ErrUnsupportedType is returned when a column cannot be mapped to a field container.
type ErrUnsupportedType struct {
	Type DataType
}

func (e *ErrUnsupportedType) Error() string {
	return fmt.Sprintf("unsupported data type: %s (%d)", e.Type, int32(e.Type))
}
