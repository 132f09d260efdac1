// Package result holds the values returned by query, search and mutation
// requests.
//
// # Query
//
//	qr := result.NewQueryResults(fields)
//	if f, ok := entity.As[string](qr.GetFieldByName("title")); ok {
//	    fmt.Println(f.Data())
//	}
//
// # Search
//
// SearchResults keeps one SingleResult per query vector, in submission order:
// Results()[i] answers query vector i. Within a SingleResult, IDs, scores and
// every output field are parallel: row j of each describes hit j. The decoder
// that builds these values is trusted to keep them aligned; Validate checks
// it on demand.
//
// # Mutation
//
// DmlResults carries the affected primary keys and the server timestamp of
// an insert or delete.
package result
