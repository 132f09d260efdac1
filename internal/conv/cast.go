package conv

import (
	"fmt"
	"math"
)

// Int64ToInt8 converts int64 to int8 safely.
func Int64ToInt8(v int64) (int8, error) {
	if v < math.MinInt8 || v > math.MaxInt8 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int8", v)
	}
	return int8(v), nil
}

// Int64ToInt16 converts int64 to int16 safely.
func Int64ToInt16(v int64) (int16, error) {
	if v < math.MinInt16 || v > math.MaxInt16 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int16", v)
	}
	return int16(v), nil
}

// Int64ToInt32 converts int64 to int32 safely.
func Int64ToInt32(v int64) (int32, error) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int32", v)
	}
	return int32(v), nil
}

// Narrow converts a slice of int64 to a narrower signed integer type using fn.
// It stops at the first value that does not fit.
func Narrow[T int8 | int16 | int32](src []int64, fn func(int64) (T, error)) ([]T, error) {
	out := make([]T, len(src))
	for i, v := range src {
		n, err := fn(v)
		if err != nil {
			return nil, fmt.Errorf("index %d: %w", i, err)
		}
		out[i] = n
	}
	return out, nil
}

// Widen converts a slice of signed integers to int64.
func Widen[T int8 | int16 | int32 | int64](src []T) []int64 {
	out := make([]int64, len(src))
	for i, v := range src {
		out[i] = int64(v)
	}
	return out
}
