package entity

import "reflect"

// Field is a named, typed column of data.
//
// Name and Type identify a field; Count is the current number of elements.
type Field interface {
	Name() string
	Type() DataType
	Count() int
}

// shape holds the per-kind element policy selected at construction time.
type shape[T any] struct {
	// dim returns the length of a vector element. It is nil for scalar kinds,
	// which accept any element.
	dim func(T) int
}

func scalarShape[T any]() shape[T] { return shape[T]{} }

func vectorShape[E any]() shape[[]E] {
	return shape[[]E]{dim: func(v []E) int { return len(v) }}
}

// FieldData is an append-only column of elements of type T.
//
// For vector kinds the first element fixes the dimension of the column and
// Add rejects empty or differently sized elements. Scalar kinds have no shape
// constraint.
//
// FieldData is not safe for concurrent mutation.
type FieldData[T any] struct {
	name  string
	dt    DataType
	shape shape[T]
	data  []T
}

var _ Field = (*FieldData[bool])(nil)

func newFieldData[T any](name string, dt DataType, sh shape[T], data []T) *FieldData[T] {
	return &FieldData[T]{
		name:  name,
		dt:    dt,
		shape: sh,
		data:  data,
	}
}

// Name returns the field name.
func (f *FieldData[T]) Name() string { return f.name }

// Type returns the field data type.
func (f *FieldData[T]) Type() DataType { return f.dt }

// Count returns the number of elements.
func (f *FieldData[T]) Count() int { return len(f.data) }

// Add appends element to the field.
//
// Vector elements are stored by reference, not copied. On error the field is
// left unchanged.
func (f *FieldData[T]) Add(element T) error {
	if f.shape.dim != nil {
		d := f.shape.dim(element)
		if d == 0 {
			return ErrVectorIsEmpty
		}
		if len(f.data) > 0 {
			if want := f.shape.dim(f.data[0]); d != want {
				return &ErrDimensionMismatch{Field: f.name, Expected: want, Actual: d}
			}
		}
	}
	f.data = append(f.data, element)
	return nil
}

// Data returns the underlying elements.
//
// The slice aliases the field storage: callers may modify elements in place.
// Nothing written through this slice is validated.
func (f *FieldData[T]) Data() []T { return f.data }

// SetData replaces the underlying elements without validation.
// The field takes ownership of data.
func (f *FieldData[T]) SetData(data []T) { f.data = data }

// At returns the element at index i. It panics if i is out of range.
func (f *FieldData[T]) At(i int) T { return f.data[i] }

// Dim returns the dimension of a vector field, taken from its first element.
// It returns 0 for scalar fields and for empty vector fields.
func (f *FieldData[T]) Dim() int {
	if f.shape.dim == nil || len(f.data) == 0 {
		return 0
	}
	return f.shape.dim(f.data[0])
}

// As returns f as a *FieldData[T] if it holds elements of type T.
func As[T any](f Field) (*FieldData[T], bool) {
	fd, ok := f.(*FieldData[T])
	return fd, ok && fd != nil
}

// IsNil reports whether f is a nil interface or wraps a nil pointer.
func IsNil(f Field) bool {
	if f == nil {
		return true
	}
	v := reflect.ValueOf(f)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func:
		return v.IsNil()
	}
	return false
}

// Typed containers, one per supported data kind.
type (
	BoolFieldData      = FieldData[bool]
	Int8FieldData      = FieldData[int8]
	Int16FieldData     = FieldData[int16]
	Int32FieldData     = FieldData[int32]
	Int64FieldData     = FieldData[int64]
	FloatFieldData     = FieldData[float32]
	DoubleFieldData    = FieldData[float64]
	StringFieldData    = FieldData[string]
	BinaryVecFieldData = FieldData[[]byte]
	FloatVecFieldData  = FieldData[[]float32]
)

// NewBoolFieldData creates an empty Bool field.
func NewBoolFieldData(name string) *BoolFieldData {
	return newFieldData(name, DataTypeBool, scalarShape[bool](), nil)
}

// NewBoolFieldDataFrom creates a Bool field that takes ownership of data.
func NewBoolFieldDataFrom(name string, data []bool) *BoolFieldData {
	return newFieldData(name, DataTypeBool, scalarShape[bool](), data)
}

// NewInt8FieldData creates an empty Int8 field.
func NewInt8FieldData(name string) *Int8FieldData {
	return newFieldData(name, DataTypeInt8, scalarShape[int8](), nil)
}

// NewInt8FieldDataFrom creates an Int8 field that takes ownership of data.
func NewInt8FieldDataFrom(name string, data []int8) *Int8FieldData {
	return newFieldData(name, DataTypeInt8, scalarShape[int8](), data)
}

// NewInt16FieldData creates an empty Int16 field.
func NewInt16FieldData(name string) *Int16FieldData {
	return newFieldData(name, DataTypeInt16, scalarShape[int16](), nil)
}

// NewInt16FieldDataFrom creates an Int16 field that takes ownership of data.
func NewInt16FieldDataFrom(name string, data []int16) *Int16FieldData {
	return newFieldData(name, DataTypeInt16, scalarShape[int16](), data)
}

// NewInt32FieldData creates an empty Int32 field.
func NewInt32FieldData(name string) *Int32FieldData {
	return newFieldData(name, DataTypeInt32, scalarShape[int32](), nil)
}

// NewInt32FieldDataFrom creates an Int32 field that takes ownership of data.
func NewInt32FieldDataFrom(name string, data []int32) *Int32FieldData {
	return newFieldData(name, DataTypeInt32, scalarShape[int32](), data)
}

// NewInt64FieldData creates an empty Int64 field.
func NewInt64FieldData(name string) *Int64FieldData {
	return newFieldData(name, DataTypeInt64, scalarShape[int64](), nil)
}

// NewInt64FieldDataFrom creates an Int64 field that takes ownership of data.
func NewInt64FieldDataFrom(name string, data []int64) *Int64FieldData {
	return newFieldData(name, DataTypeInt64, scalarShape[int64](), data)
}

// NewFloatFieldData creates an empty Float field.
func NewFloatFieldData(name string) *FloatFieldData {
	return newFieldData(name, DataTypeFloat, scalarShape[float32](), nil)
}

// NewFloatFieldDataFrom creates a Float field that takes ownership of data.
func NewFloatFieldDataFrom(name string, data []float32) *FloatFieldData {
	return newFieldData(name, DataTypeFloat, scalarShape[float32](), data)
}

// NewDoubleFieldData creates an empty Double field.
func NewDoubleFieldData(name string) *DoubleFieldData {
	return newFieldData(name, DataTypeDouble, scalarShape[float64](), nil)
}

// NewDoubleFieldDataFrom creates a Double field that takes ownership of data.
func NewDoubleFieldDataFrom(name string, data []float64) *DoubleFieldData {
	return newFieldData(name, DataTypeDouble, scalarShape[float64](), data)
}

// NewStringFieldData creates an empty String field.
func NewStringFieldData(name string) *StringFieldData {
	return newFieldData(name, DataTypeString, scalarShape[string](), nil)
}

// NewStringFieldDataFrom creates a String field that takes ownership of data.
func NewStringFieldDataFrom(name string, data []string) *StringFieldData {
	return newFieldData(name, DataTypeString, scalarShape[string](), data)
}

// NewVarCharFieldData creates an empty VarChar field.
func NewVarCharFieldData(name string) *StringFieldData {
	return newFieldData(name, DataTypeVarChar, scalarShape[string](), nil)
}

// NewVarCharFieldDataFrom creates a VarChar field that takes ownership of data.
func NewVarCharFieldDataFrom(name string, data []string) *StringFieldData {
	return newFieldData(name, DataTypeVarChar, scalarShape[string](), data)
}

// NewBinaryVecFieldData creates an empty BinaryVector field.
// Each element is a packed bit vector; its byte length is the field dimension.
func NewBinaryVecFieldData(name string) *BinaryVecFieldData {
	return newFieldData(name, DataTypeBinaryVector, vectorShape[byte](), nil)
}

// NewBinaryVecFieldDataFrom creates a BinaryVector field that takes ownership
// of data. Element lengths are not checked.
func NewBinaryVecFieldDataFrom(name string, data [][]byte) *BinaryVecFieldData {
	return newFieldData(name, DataTypeBinaryVector, vectorShape[byte](), data)
}

// NewFloatVecFieldData creates an empty FloatVector field.
func NewFloatVecFieldData(name string) *FloatVecFieldData {
	return newFieldData(name, DataTypeFloatVector, vectorShape[float32](), nil)
}

// NewFloatVecFieldDataFrom creates a FloatVector field that takes ownership
// of data. Element lengths are not checked.
func NewFloatVecFieldDataFrom(name string, data [][]float32) *FloatVecFieldData {
	return newFieldData(name, DataTypeFloatVector, vectorShape[float32](), data)
}
