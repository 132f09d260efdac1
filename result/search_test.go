package result

import (
	"errors"
	"testing"

	"github.com/hupe1980/vecsdk/entity"
	"github.com/hupe1980/vecsdk/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchResults_PreservesQueryOrder(t *testing.T) {
	const nq, topK = 5, 3

	results := make([]SingleResult, nq)
	for i := 0; i < nq; i++ {
		ids := make([]int64, topK)
		for j := range ids {
			ids[j] = int64(i*100 + j)
		}
		results[i] = NewSingleResult(entity.NewInt64IDs(ids), make([]float32, topK), nil)
	}

	sr := NewSearchResults(results)
	require.Equal(t, nq, sr.Len())
	require.Len(t, sr.Results(), nq)
	for i, res := range sr.Results() {
		assert.Equal(t, int64(i*100), res.IDs().IntIDArray()[0], "query %d", i)
		assert.Equal(t, topK, res.Len())
	}
}

func TestSingleResult_Accessors(t *testing.T) {
	ids, scores, fields := testutil.NewRNG(4711).Hits(4, 8)
	res := NewSingleResult(ids, scores, fields)

	assert.True(t, res.IDs().Equal(ids))
	assert.Equal(t, scores, res.Scores())
	assert.Len(t, res.OutputFields(), 3)
	require.NoError(t, res.Validate())

	title := res.OutputField(testutil.TitleField)
	require.NotNil(t, title)
	assert.Equal(t, entity.DataTypeVarChar, title.Type())
	assert.Nil(t, res.OutputField("missing"))

	vec, ok := entity.As[[]float32](res.OutputField(testutil.VectorField))
	require.True(t, ok)
	assert.Equal(t, 8, vec.Dim())
}

func TestSingleResult_OutputFieldSkipsNil(t *testing.T) {
	score := entity.NewFloatFieldDataFrom("score", []float32{1})
	res := NewSingleResult(entity.NewStringIDs([]string{"a"}), []float32{1}, []entity.Field{nil, score})

	assert.Same(t, score, res.OutputField("score"))
	assert.NoError(t, res.Validate())
}

func TestSingleResult_Validate(t *testing.T) {
	ids := entity.NewInt64IDs([]int64{1, 2})

	err := NewSingleResult(ids, []float32{0.1}, nil).Validate()
	var lm *ErrLengthMismatch
	require.True(t, errors.As(err, &lm))
	assert.Equal(t, "scores", lm.Field)
	assert.Equal(t, 2, lm.Expected)
	assert.Equal(t, 1, lm.Actual)

	short := entity.NewInt64FieldDataFrom("pk", []int64{1})
	err = NewSingleResult(ids, []float32{0.1, 0.2}, []entity.Field{short}).Validate()
	require.True(t, errors.As(err, &lm))
	assert.Equal(t, "pk", lm.Field)
}

func TestSearchResults_UniqueIDs(t *testing.T) {
	sr := NewSearchResults([]SingleResult{
		NewSingleResult(entity.NewInt64IDs([]int64{1, 2, 3}), []float32{3, 2, 1}, nil),
		NewSingleResult(entity.NewInt64IDs([]int64{3, 4}), []float32{2, 1}, nil),
		NewSingleResult(entity.NewStringIDs([]string{"x"}), []float32{1}, nil),
	})

	ids := sr.UniqueIDs()
	assert.Equal(t, uint64(4), ids.GetCardinality())
	assert.Equal(t, []uint64{1, 2, 3, 4}, ids.ToArray())

	assert.True(t, NewSearchResults(nil).UniqueIDs().IsEmpty())
}
