// Package metric defines point sets and the metric views the selection
// algorithms run on.
//
// A Matrix is an immutable n×d block of float32 rows. A metric view binds a
// Matrix together with per-row quantities cached for fast distance
// evaluation (norms for Angular, squared norms for Euclidean).
//
// Views expose three separable capabilities:
//
//   - Space: Distance, AllDistances (one batched BLAS Sgemv per call) and
//     shape accessors
//   - Subsetter: an owned view over selected rows, caches rebuilt
//   - Chunker: contiguous zero-copy shards for parallel work
//
// New metrics plug in by implementing Dataset[V] for their own view type.
package metric
