// Package conv provides checked integer narrowing.
//
// Snapshot columns store every signed integer width as int64. Rebuilding an
// Int8, Int16 or Int32 field from such a column must reject values that do
// not fit the target width instead of silently truncating them.
package conv
