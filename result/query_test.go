package result

import (
	"testing"

	"github.com/hupe1980/vecsdk/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryResults_GetFieldByName(t *testing.T) {
	age := entity.NewInt32FieldDataFrom("age", []int32{31, 42})
	name := entity.NewVarCharFieldDataFrom("name", []string{"ada", "bob"})
	qr := NewQueryResults([]entity.Field{age, name})

	got := qr.GetFieldByName("name")
	require.NotNil(t, got)
	assert.Same(t, name, got)

	// Idempotent.
	assert.Same(t, got, qr.GetFieldByName("name"))

	assert.Nil(t, qr.GetFieldByName("missing"))
	assert.Nil(t, qr.GetFieldByName("Name"))
	assert.Equal(t, 2, qr.Len())
	assert.Equal(t, []entity.Field{age, name}, qr.OutputFields())
}

func TestQueryResults_Empty(t *testing.T) {
	for _, qr := range []*QueryResults{NewQueryResults(nil), {}} {
		assert.Nil(t, qr.GetFieldByName("anything"))
		assert.Empty(t, qr.OutputFields())
		assert.Equal(t, 0, qr.Len())
	}
}

func TestQueryResults_SkipsNilFields(t *testing.T) {
	var typedNil *entity.Int64FieldData
	first := entity.NewInt64FieldDataFrom("id", []int64{1})
	second := entity.NewInt64FieldDataFrom("id", []int64{2})

	qr := NewQueryResults([]entity.Field{nil, typedNil, first, second})

	got := qr.GetFieldByName("id")
	assert.Same(t, first, got)
	assert.Equal(t, 1, qr.Len())
	assert.Len(t, qr.OutputFields(), 4)
}
