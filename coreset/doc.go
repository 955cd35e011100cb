// Package coreset summarizes a point set into a small set of representatives
// that preserves its max-min (remote-edge) structure.
//
// # Sequential
//
// Runs greedy farthest-point selection with budget m over the full input:
//
//	b, _ := coreset.NewSequential(256)
//	cs, _ := coreset.Fit(b, metric.NewAngular(points), nil)
//
// # Parallel (composable)
//
// Splits the input into t contiguous shards, reduces each shard to m points
// concurrently, then reduces the t·m candidates to m with the same rule:
//
//	p, _ := coreset.NewParallel(256, 8)
//	cs, _ := coreset.FitParallel(ctx, p, metric.NewAngular(points), nil)
//
// Coreset.Indices always refers to rows of the builder's input. Assignment of
// every input point to its nearest representative is declared but deferred.
package coreset
