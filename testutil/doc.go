// Package testutil provides testing utilities for divmax.
//
// This package is intended for use in tests and benchmarks only.
// It provides deterministic point-set generators and brute-force oracles
// for the remote-edge objective.
//
// # Random Point Sets
//
//	rng := testutil.NewRNG(seed)
//	m := rng.UniformMatrix(1000, 32)       // uniform [0, 1)
//	u := rng.UnitMatrix(1000, 32)          // unit rows, angular-safe
//	c := rng.ClusteredMatrix(1000, 32, 8, 0.05)
//
// # Oracles
//
//	opt := testutil.OptimalRemoteEdge(metric.NewEuclidean(m), k)
//	got := testutil.MinPairwise(space, indices)
package testutil
