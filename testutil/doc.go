// Package testutil provides testing utilities for the SDK.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded RNG and builders for decoded-looking field data and
// search hits.
//
// # Random Vectors
//
//	rng := testutil.NewRNG(seed)
//	vecs := rng.UniformVectors(100, 128)
//	bits := rng.BinaryVectors(100, 256)
//
// # Search Hits
//
//	ids, scores, fields := rng.Hits(10, 128)
//	res := result.NewSingleResult(ids, scores, fields)
package testutil
