// Package vecsdk is the client-side data model of a vector database SDK.
//
// The transport layer decodes server responses into the types defined here
// and hands them to the caller. This package itself holds the ambient pieces
// shared by the subpackages: structured logging and metrics collection.
//
// # Packages
//
//   - entity: typed field columns (scalars, binary and float vectors) and
//     primary-key arrays
//   - result: QueryResults, SearchResults, DmlResults and their snapshots
//   - progress: Progress, Monitor and the polling loop for long-running
//     operations
//   - codec: JSON, go-json and compressed codecs for result snapshots
//
// # Quick Start
//
//	vecs := entity.NewFloatVecFieldData("embedding")
//	if err := vecs.Add([]float32{0.1, 0.2}); err != nil {
//	    return err
//	}
//
//	sr := result.NewSearchResults(hits) // hits[i] answers query vector i
//	for i, r := range sr.Results() {
//	    fmt.Println(i, r.IDs().IntIDArray(), r.Scores())
//	}
//
// # Waiting for Operations
//
//	m := progress.NewMonitor(progress.WithCheckTimeout(300))
//	err := progress.Wait(ctx, m, checkIndexBuild,
//	    progress.WithLogger(vecsdk.NewTextLogger(slog.LevelInfo)),
//	    progress.WithMetricsCollector(&vecsdk.BasicMetricsCollector{}),
//	)
//
// # Concurrency
//
// Result containers and field data carry no internal synchronization. Share
// them across goroutines only after construction is complete.
package vecsdk
