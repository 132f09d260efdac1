package result

import (
	"fmt"

	"github.com/hupe1980/vecsdk/codec"
	"github.com/hupe1980/vecsdk/entity"
)

// Snapshot layouts. Keep them stable: encoded snapshots may be stored.

type querySnapshot struct {
	Fields []entity.Column `json:"fields"`
}

type singleSnapshot struct {
	StringIDs bool            `json:"string_ids,omitempty"`
	IntIDs    []int64         `json:"int_ids,omitempty"`
	StrIDs    []string        `json:"str_ids,omitempty"`
	Scores    []float32       `json:"scores"`
	Fields    []entity.Column `json:"fields,omitempty"`
}

type searchSnapshot struct {
	Results []singleSnapshot `json:"results"`
}

// EncodeQueryResults encodes r with c. Nil fields are dropped.
// If c is nil, codec.Default is used.
func EncodeQueryResults(c codec.Codec, r *QueryResults) ([]byte, error) {
	cols, err := toColumns(r.outputFields)
	if err != nil {
		return nil, err
	}
	return codecOrDefault(c).Marshal(querySnapshot{Fields: cols})
}

// DecodeQueryResults decodes bytes written by EncodeQueryResults with the same codec.
func DecodeQueryResults(c codec.Codec, data []byte) (*QueryResults, error) {
	var snap querySnapshot
	if err := codecOrDefault(c).Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode query results: %w", err)
	}
	fields, err := fromColumns(snap.Fields)
	if err != nil {
		return nil, err
	}
	return NewQueryResults(fields), nil
}

// EncodeSearchResults encodes r with c, preserving query order.
// If c is nil, codec.Default is used.
func EncodeSearchResults(c codec.Codec, r *SearchResults) ([]byte, error) {
	snap := searchSnapshot{Results: make([]singleSnapshot, len(r.results))}
	for i, res := range r.results {
		cols, err := toColumns(res.outputFields)
		if err != nil {
			return nil, fmt.Errorf("result %d: %w", i, err)
		}
		snap.Results[i] = singleSnapshot{
			StringIDs: !res.ids.IsIntegerID(),
			IntIDs:    res.ids.IntIDArray(),
			StrIDs:    res.ids.StrIDArray(),
			Scores:    res.scores,
			Fields:    cols,
		}
	}
	return codecOrDefault(c).Marshal(snap)
}

// DecodeSearchResults decodes bytes written by EncodeSearchResults with the same codec.
func DecodeSearchResults(c codec.Codec, data []byte) (*SearchResults, error) {
	var snap searchSnapshot
	if err := codecOrDefault(c).Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("decode search results: %w", err)
	}
	results := make([]SingleResult, len(snap.Results))
	for i, s := range snap.Results {
		fields, err := fromColumns(s.Fields)
		if err != nil {
			return nil, fmt.Errorf("result %d: %w", i, err)
		}
		ids := entity.NewInt64IDs(s.IntIDs)
		if s.StringIDs {
			ids = entity.NewStringIDs(s.StrIDs)
		}
		results[i] = NewSingleResult(ids, s.Scores, fields)
	}
	return NewSearchResults(results), nil
}

func codecOrDefault(c codec.Codec) codec.Codec {
	if c == nil {
		return codec.Default
	}
	return c
}

func toColumns(fields []entity.Field) ([]entity.Column, error) {
	cols := make([]entity.Column, 0, len(fields))
	for _, f := range fields {
		if entity.IsNil(f) {
			continue
		}
		col, err := entity.ToColumn(f)
		if err != nil {
			return nil, err
		}
		cols = append(cols, col)
	}
	return cols, nil
}

func fromColumns(cols []entity.Column) ([]entity.Field, error) {
	fields := make([]entity.Field, len(cols))
	for i, col := range cols {
		f, err := col.Field()
		if err != nil {
			return nil, err
		}
		fields[i] = f
	}
	return fields, nil
}
