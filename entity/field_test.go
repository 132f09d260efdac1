package entity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDataTypeString(t *testing.T) {
	tests := []struct {
		dt       DataType
		expected string
		vector   bool
	}{
		{DataTypeNone, "None", false},
		{DataTypeBool, "Bool", false},
		{DataTypeInt8, "Int8", false},
		{DataTypeInt16, "Int16", false},
		{DataTypeInt32, "Int32", false},
		{DataTypeInt64, "Int64", false},
		{DataTypeFloat, "Float", false},
		{DataTypeDouble, "Double", false},
		{DataTypeString, "String", false},
		{DataTypeVarChar, "VarChar", false},
		{DataTypeBinaryVector, "BinaryVector", true},
		{DataTypeFloatVector, "FloatVector", true},
		{DataType(99), "Unknown", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.dt.String())
		assert.Equal(t, tt.vector, tt.dt.IsVector(), tt.expected)
	}
}

func TestFloatVecFieldData_Scenario(t *testing.T) {
	f := NewFloatVecFieldData("embedding")
	assert.Equal(t, "embedding", f.Name())
	assert.Equal(t, DataTypeFloatVector, f.Type())
	assert.Equal(t, 0, f.Dim())

	require.NoError(t, f.Add([]float32{1.0, 2.0}))
	assert.Equal(t, 1, f.Count())
	assert.Equal(t, 2, f.Dim())

	err := f.Add([]float32{1.0, 2.0, 3.0})
	var dm *ErrDimensionMismatch
	require.True(t, errors.As(err, &dm))
	assert.Equal(t, "embedding", dm.Field)
	assert.Equal(t, 2, dm.Expected)
	assert.Equal(t, 3, dm.Actual)
	assert.Equal(t, 1, f.Count())

	err = f.Add([]float32{})
	assert.ErrorIs(t, err, ErrVectorIsEmpty)
	assert.Equal(t, 1, f.Count())
}

func TestVectorFieldData_DimensionInvariant(t *testing.T) {
	t.Run("float vector", func(t *testing.T) {
		f := NewFloatVecFieldData("v")
		assert.ErrorIs(t, f.Add(nil), ErrVectorIsEmpty)

		require.NoError(t, f.Add(make([]float32, 4)))
		for _, d := range []int{1, 3, 5, 8} {
			err := f.Add(make([]float32, d))
			var dm *ErrDimensionMismatch
			assert.True(t, errors.As(err, &dm), "dim %d", d)
		}
		require.NoError(t, f.Add(make([]float32, 4)))
		assert.ErrorIs(t, f.Add([]float32{}), ErrVectorIsEmpty)
		assert.Equal(t, 2, f.Count())
	})

	t.Run("binary vector", func(t *testing.T) {
		f := NewBinaryVecFieldData("bv")
		assert.Equal(t, DataTypeBinaryVector, f.Type())
		assert.ErrorIs(t, f.Add([]byte{}), ErrVectorIsEmpty)

		require.NoError(t, f.Add([]byte{0xff, 0x01}))
		err := f.Add([]byte{0xff})
		var dm *ErrDimensionMismatch
		require.True(t, errors.As(err, &dm))
		assert.Equal(t, 2, dm.Expected)
		assert.Equal(t, 1, dm.Actual)
		assert.Equal(t, 1, f.Count())
		assert.Equal(t, 2, f.Dim())
	})
}

func TestScalarFieldData_AddNeverFails(t *testing.T) {
	const n = 100

	b := NewBoolFieldData("b")
	i8 := NewInt8FieldData("i8")
	i16 := NewInt16FieldData("i16")
	i32 := NewInt32FieldData("i32")
	i64 := NewInt64FieldData("i64")
	f32 := NewFloatFieldData("f")
	f64 := NewDoubleFieldData("d")
	s := NewStringFieldData("s")
	vc := NewVarCharFieldData("vc")

	for i := 0; i < n; i++ {
		require.NoError(t, b.Add(i%2 == 0))
		require.NoError(t, i8.Add(int8(i)))
		require.NoError(t, i16.Add(int16(i)))
		require.NoError(t, i32.Add(int32(i)))
		require.NoError(t, i64.Add(int64(i)))
		require.NoError(t, f32.Add(float32(i)))
		require.NoError(t, f64.Add(float64(i)))
		require.NoError(t, s.Add(""))
		require.NoError(t, vc.Add("x"))
	}

	for _, f := range []Field{b, i8, i16, i32, i64, f32, f64, s, vc} {
		assert.Equal(t, n, f.Count(), f.Name())
	}
	assert.Equal(t, 0, i64.Dim())
	assert.Equal(t, DataTypeVarChar, vc.Type())
	assert.Equal(t, DataTypeString, s.Type())
}

func TestFieldData_BulkPathSkipsValidation(t *testing.T) {
	f := NewFloatVecFieldDataFrom("v", [][]float32{{1, 2}, {1, 2, 3}})
	assert.Equal(t, 2, f.Count())

	f.Data()[0][1] = 9
	assert.Equal(t, float32(9), f.At(0)[1])

	f.SetData([][]float32{{1}})
	assert.Equal(t, 1, f.Count())
	assert.Equal(t, 1, f.Dim())

	err := f.Add([]float32{1, 2})
	var dm *ErrDimensionMismatch
	assert.True(t, errors.As(err, &dm))
}

func TestAsAndIsNil(t *testing.T) {
	var f Field = NewInt64FieldDataFrom("id", []int64{1, 2, 3})

	fd, ok := As[int64](f)
	require.True(t, ok)
	assert.Equal(t, []int64{1, 2, 3}, fd.Data())

	_, ok = As[string](f)
	assert.False(t, ok)

	var typedNil *Int64FieldData
	_, ok = As[int64](typedNil)
	assert.False(t, ok)

	assert.True(t, IsNil(nil))
	assert.True(t, IsNil(typedNil))
	assert.False(t, IsNil(f))
}
