package progress

import "fmt"

// Progress reports how much of an operation is finished.
type Progress struct {
	Finished uint32
	Total    uint32
}

// New returns a Progress with the given counts.
func New(finished, total uint32) Progress {
	return Progress{Finished: finished, Total: total}
}

// Done reports whether the operation is complete.
// Finished beyond Total also counts as done.
func (p Progress) Done() bool {
	return p.Finished >= p.Total
}

// String returns "finished/total".
func (p Progress) String() string {
	return fmt.Sprintf("%d/%d", p.Finished, p.Total)
}
