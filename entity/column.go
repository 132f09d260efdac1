package entity

import (
	"errors"
	"fmt"

	"github.com/hupe1980/vecsdk/internal/conv"
)

// Column is a codec-neutral snapshot of a Field.
//
// Exactly one of the value slices is populated, selected by Type. All signed
// integer widths share Ints.
//
// NOTE: This is used for persisted result snapshots; keep it stable.
type Column struct {
	Name          string      `json:"name"`
	Type          DataType    `json:"type"`
	Bools         []bool      `json:"bools,omitempty"`
	Ints          []int64     `json:"ints,omitempty"`
	Floats        []float32   `json:"floats,omitempty"`
	Doubles       []float64   `json:"doubles,omitempty"`
	Strings       []string    `json:"strings,omitempty"`
	BinaryVectors [][]byte    `json:"binary_vectors,omitempty"`
	FloatVectors  [][]float32 `json:"float_vectors,omitempty"`
}

// ToColumn snapshots f. Scalar and vector slices are shared with f, except
// narrow integer widths which are widened into a new slice.
func ToColumn(f Field) (Column, error) {
	if IsNil(f) {
		return Column{}, errors.New("cannot snapshot a nil field")
	}

	c := Column{Name: f.Name(), Type: f.Type()}
	switch fd := f.(type) {
	case *BoolFieldData:
		c.Bools = fd.Data()
	case *Int8FieldData:
		c.Ints = conv.Widen(fd.Data())
	case *Int16FieldData:
		c.Ints = conv.Widen(fd.Data())
	case *Int32FieldData:
		c.Ints = conv.Widen(fd.Data())
	case *Int64FieldData:
		c.Ints = fd.Data()
	case *FloatFieldData:
		c.Floats = fd.Data()
	case *DoubleFieldData:
		c.Doubles = fd.Data()
	case *StringFieldData:
		c.Strings = fd.Data()
	case *BinaryVecFieldData:
		c.BinaryVectors = fd.Data()
	case *FloatVecFieldData:
		c.FloatVectors = fd.Data()
	default:
		return Column{}, &ErrUnsupportedType{Type: f.Type()}
	}
	return c, nil
}

// Field rebuilds the field described by c. The returned field takes ownership
// of the column slices.
func (c Column) Field() (Field, error) {
	switch c.Type {
	case DataTypeBool:
		return NewBoolFieldDataFrom(c.Name, c.Bools), nil
	case DataTypeInt8:
		v, err := conv.Narrow(c.Ints, conv.Int64ToInt8)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", c.Name, err)
		}
		return NewInt8FieldDataFrom(c.Name, v), nil
	case DataTypeInt16:
		v, err := conv.Narrow(c.Ints, conv.Int64ToInt16)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", c.Name, err)
		}
		return NewInt16FieldDataFrom(c.Name, v), nil
	case DataTypeInt32:
		v, err := conv.Narrow(c.Ints, conv.Int64ToInt32)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", c.Name, err)
		}
		return NewInt32FieldDataFrom(c.Name, v), nil
	case DataTypeInt64:
		return NewInt64FieldDataFrom(c.Name, c.Ints), nil
	case DataTypeFloat:
		return NewFloatFieldDataFrom(c.Name, c.Floats), nil
	case DataTypeDouble:
		return NewDoubleFieldDataFrom(c.Name, c.Doubles), nil
	case DataTypeString:
		return NewStringFieldDataFrom(c.Name, c.Strings), nil
	case DataTypeVarChar:
		return NewVarCharFieldDataFrom(c.Name, c.Strings), nil
	case DataTypeBinaryVector:
		return NewBinaryVecFieldDataFrom(c.Name, c.BinaryVectors), nil
	case DataTypeFloatVector:
		return NewFloatVecFieldDataFrom(c.Name, c.FloatVectors), nil
	default:
		return nil, &ErrUnsupportedType{Type: c.Type}
	}
}
