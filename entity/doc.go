// Package entity defines the typed column model shared by all result types.
//
// # Field Data
//
// A Field is a named, typed column. FieldData[T] is the single generic
// container behind every supported data kind:
//
//	ages := entity.NewInt32FieldData("age")
//	_ = ages.Add(42)
//
//	vecs := entity.NewFloatVecFieldData("embedding")
//	_ = vecs.Add([]float32{0.1, 0.2}) // fixes the dimension at 2
//	err := vecs.Add([]float32{0.1})   // *ErrDimensionMismatch
//
// Add validates vector elements. Data and SetData bypass validation and are
// meant for decoded server payloads that were already checked upstream.
//
// # Identifiers
//
// IDArray carries either int64 or string primary keys, never both.
package entity
