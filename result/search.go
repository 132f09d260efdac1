package result

import (
	"github.com/RoaringBitmap/roaring/v2/roaring64"
	"github.com/hupe1980/vecsdk/entity"
)

// SingleResult holds the top-k hits for one query vector.
type SingleResult struct {
	ids          entity.IDArray
	scores       []float32
	outputFields []entity.Field
}

// NewSingleResult takes ownership of its arguments. ids[i], scores[i] and
// row i of every output field must describe the same hit; this is not checked.
func NewSingleResult(ids entity.IDArray, scores []float32, outputFields []entity.Field) SingleResult {
	return SingleResult{
		ids:          ids,
		scores:       scores,
		outputFields: outputFields,
	}
}

// IDs returns the hit IDs.
func (r SingleResult) IDs() entity.IDArray { return r.ids }

// Scores returns the distance or similarity score of each hit.
func (r SingleResult) Scores() []float32 { return r.scores }

// OutputFields returns the requested output fields.
func (r SingleResult) OutputFields() []entity.Field { return r.outputFields }

// OutputField returns the output field named name, or nil.
func (r SingleResult) OutputField(name string) entity.Field {
	return fieldByName(r.outputFields, name)
}

// Len returns the number of hits.
func (r SingleResult) Len() int { return r.ids.Len() }

// Validate checks that scores and every non-nil output field have one entry
// per hit.
func (r SingleResult) Validate() error {
	n := r.ids.Len()
	if len(r.scores) != n {
		return &ErrLengthMismatch{Field: "scores", Expected: n, Actual: len(r.scores)}
	}
	for _, f := range r.outputFields {
		if entity.IsNil(f) {
			continue
		}
		if f.Count() != n {
			return &ErrLengthMismatch{Field: f.Name(), Expected: n, Actual: f.Count()}
		}
	}
	return nil
}

// SearchResults holds one SingleResult per query vector.
// Results()[i] corresponds to the i-th query vector.
type SearchResults struct {
	results []SingleResult
}

// NewSearchResults creates a SearchResults that takes ownership of results.
func NewSearchResults(results []SingleResult) *SearchResults {
	return &SearchResults{results: results}
}

// Results returns the per-query results in query order.
func (r *SearchResults) Results() []SingleResult { return r.results }

// Len returns the number of query vectors answered.
func (r *SearchResults) Len() int { return len(r.results) }

// UniqueIDs returns the union of integer hit IDs across all query vectors.
// Results keyed by strings are skipped.
func (r *SearchResults) UniqueIDs() *roaring64.Bitmap {
	bm := roaring64.New()
	for _, res := range r.results {
		if set := res.ids.IntSet(); set != nil {
			bm.Or(set)
		}
	}
	return bm
}
