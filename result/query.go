package result

import "github.com/hupe1980/vecsdk/entity"

// QueryResults holds the output fields of a query, in server order.
type QueryResults struct {
	outputFields []entity.Field
}

// NewQueryResults creates a QueryResults that takes ownership of fields.
func NewQueryResults(fields []entity.Field) *QueryResults {
	return &QueryResults{outputFields: fields}
}

// GetFieldByName returns the first field named name, or nil.
// Nil entries are skipped. Names are case-sensitive.
func (r *QueryResults) GetFieldByName(name string) entity.Field {
	return fieldByName(r.outputFields, name)
}

// OutputFields returns all fields in insertion order.
// The slice must not be modified.
func (r *QueryResults) OutputFields() []entity.Field {
	return r.outputFields
}

// Len returns the row count, taken from the first non-nil field.
func (r *QueryResults) Len() int {
	for _, f := range r.outputFields {
		if !entity.IsNil(f) {
			return f.Count()
		}
	}
	return 0
}

func fieldByName(fields []entity.Field, name string) entity.Field {
	for _, f := range fields {
		if entity.IsNil(f) {
			continue
		}
		if f.Name() == name {
			return f
		}
	}
	return nil
}
