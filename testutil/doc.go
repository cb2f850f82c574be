// Package testutil provides testing utilities for knn.
//
// This package is intended for use in tests and benchmarks only.
// It generates reproducible sparse active-position sets of the kind an
// upstream encoder produces.
//
// # Random Active Sets
//
//	rng := testutil.NewRNG(seed)
//	set := rng.ActiveSet(2048, 40)      // 40 distinct sorted positions in [0, 2048)
//	noisy := rng.Jitter(set, 3, 2048)   // same set, each position moved by at most 3
package testutil
