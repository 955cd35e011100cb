package metric

// Space computes pairwise distances over a bound point set.
type Space interface {
	// Distance returns the dissimilarity between points i and j.
	Distance(i, j int) float32

	// AllDistances fills out with the distance from every point to point j.
	// len(out) must equal NumPoints. The result is element-wise the same as
	// calling Distance(i, j) for every i.
	AllDistances(j int, out []float32)

	// NumPoints returns the number of points.
	NumPoints() int

	// Dimensions returns the number of features per point.
	Dimensions() int
}

// Subsetter derives an owned view restricted to the given rows.
//
// Duplicates are kept and the output follows the order of indices. Any
// auxiliary data is recomputed, never copied from the parent.
type Subsetter[V any] interface {
	Subset(indices []int) V
}

// Chunker splits a view into contiguous, non-overlapping, zero-copy shards.
type Chunker[V any] interface {
	// Chunks returns exactly n views. Every chunk holds at most
	// ChunkCapacity(n) points; trailing chunks are empty when n exceeds
	// the number of points.
	Chunks(n int) []V

	// ChunkCapacity returns ceil(NumPoints/n), the size of the largest chunk.
	ChunkCapacity(n int) int
}

// Dataset bundles the three capabilities the coreset builders need.
type Dataset[V any] interface {
	Space
	Subsetter[V]
	Chunker[V]
}

var (
	_ Dataset[*Angular]   = (*Angular)(nil)
	_ Dataset[*Euclidean] = (*Euclidean)(nil)
)
