package result

import "fmt"

// ErrLengthMismatch indicates that a column of a SingleResult is not aligned
// with its ID array.
type ErrLengthMismatch struct {
	Field    string
	Expected int
	Actual   int
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("%s: length mismatch: expected %d, got %d", e.Field, e.Expected, e.Actual)
}
