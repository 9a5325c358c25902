// Package testutil provides testing utilities for the concepts module.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random formal contexts and the
// canonical fixture contexts used across the documentation.
//
// # Random Context Generation
//
//	rng := testutil.NewRNG(seed)
//	matrix := rng.IncidenceMatrix(64, 32, 0.25) // 25% of cells set
//	c := rng.FormalContext(64, 32, 0.25)        // labeled g0..g63, m0..m31
//
// # Canonical Fixtures
//
//	arthur := testutil.KingArthur() // 3 objects, 4 properties, 5 concepts
//	ling := testutil.Linguistic()   // 6 pronoun forms, 10 features
package testutil
