package result

import (
	"slices"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"github.com/hupe1980/vecsdk/entity"
)

// DmlResults is the acknowledgement of an insert or delete.
//
// The zero value holds an empty integer ID array and timestamp 0 (unset).
// Contains caches a bitmap, so even lookups need external synchronization.
type DmlResults struct {
	ids       entity.IDArray
	timestamp uint64

	idSet *roaring64.Bitmap // built on first Contains
}

// NewDmlResults creates a DmlResults that takes ownership of ids.
func NewDmlResults(ids entity.IDArray, timestamp uint64) *DmlResults {
	return &DmlResults{ids: ids, timestamp: timestamp}
}

// IDArray returns the primary keys of the affected entities.
func (r *DmlResults) IDArray() entity.IDArray { return r.ids }

// SetIDArray replaces the affected primary keys.
func (r *DmlResults) SetIDArray(ids entity.IDArray) {
	r.ids = ids
	r.idSet = nil
}

// Timestamp returns the server-assigned operation timestamp.
// Pass it as the guarantee timestamp of a later read to observe this write.
func (r *DmlResults) Timestamp() uint64 { return r.timestamp }

// SetTimestamp sets the operation timestamp.
func (r *DmlResults) SetTimestamp(ts uint64) { r.timestamp = ts }

// Count returns the number of affected entities.
func (r *DmlResults) Count() int { return r.ids.Len() }

// Contains reports whether id is among the affected integer keys.
// It always returns false for string keys.
func (r *DmlResults) Contains(id int64) bool {
	if !r.ids.IsIntegerID() {
		return false
	}
	if r.idSet == nil {
		r.idSet = r.ids.IntSet()
	}
	return r.idSet.Contains(uint64(id))
}

// ContainsString reports whether id is among the affected string keys.
// It always returns false for integer keys.
func (r *DmlResults) ContainsString(id string) bool {
	return slices.Contains(r.ids.StrIDArray(), id)
}
