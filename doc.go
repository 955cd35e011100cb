// Package divmax selects maximally diverse subsets of large point sets.
//
// Given n points and a target k, divmax picks k points that maximize the
// minimum pairwise distance among them (the remote-edge objective). The
// exact step is greedy farthest-point selection, which is a 2-approximation
// in any metric space. For large inputs the points are first summarized into
// a coreset of m representatives, either sequentially or by reducing
// contiguous shards in parallel and merging the shard coresets.
//
// # Quick Start
//
//	points, _ := metric.FromRows(rows)
//	dm, _ := divmax.New(10, divmax.RemoteEdge)
//	_ = dm.Fit(ctx, points)
//	idx, _ := dm.SolutionIndices()
//
// # Coresets
//
//	dm, _ := divmax.New(10, divmax.RemoteEdge,
//	    divmax.WithCoreset(500),  // must exceed k
//	    divmax.WithThreads(8),    // parallel build, requires WithCoreset
//	)
//
// When a coreset is used, SolutionIndices returns positions inside the
// coreset, not rows of the input. Solution().Source maps them back.
//
// # Metrics
//
// Points are compared with angular (cosine) distance by default; use
// WithMetric(metric.KindEuclidean) for L2. Rows with zero norm yield NaN
// angular distances and must be filtered out by the caller.
//
// # Cost
//
// Cost computes the exact minimum pairwise distance of any point set in
// O(n^2), independent of the stored solution:
//
//	c, _ := dm.Cost(ctx, points)
package divmax
