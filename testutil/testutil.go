package testutil

import (
	"math"
	"math/rand"
	"sync"

	"github.com/hupe1980/divmax/distance"
	"github.com/hupe1980/divmax/metric"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// UniformMatrix generates a rows×dims matrix with values in range [0, 1).
func (r *RNG) UniformMatrix(rows, dims int) *metric.Matrix {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float32, rows*dims)
	for i := range data {
		data[i] = r.rand.Float32()
	}

	return mustMatrix(rows, dims, data)
}

// UniformRangeMatrix generates a rows×dims matrix with values in range [-1, 1).
func (r *RNG) UniformRangeMatrix(rows, dims int) *metric.Matrix {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float32, rows*dims)
	for i := range data {
		data[i] = r.rand.Float32()*2 - 1
	}

	return mustMatrix(rows, dims, data)
}

// UnitMatrix generates L2-normalized rows (uniform on the hypersphere).
// Rows are never zero, so the result is safe for angular distance.
func (r *RNG) UnitMatrix(rows, dims int) *metric.Matrix {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float32, rows*dims)
	for i := range rows {
		vec := data[i*dims : (i+1)*dims]
		for {
			for j := range vec {
				vec[j] = float32(r.rand.NormFloat64())
			}
			if distance.NormalizeL2InPlace(vec) {
				break
			}
		}
	}

	return mustMatrix(rows, dims, data)
}

// ClusteredMatrix generates rows clustered around random unit centroids.
// Row i belongs to cluster i%clusters.
func (r *RNG) ClusteredMatrix(rows, dims, clusters int, spread float32) *metric.Matrix {
	centroids := r.UnitMatrix(clusters, dims)

	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float32, rows*dims)
	for i := range rows {
		centroid := centroids.Row(i % clusters)
		vec := data[i*dims : (i+1)*dims]
		for j := range vec {
			vec[j] = centroid[j] + float32(r.rand.NormFloat64())*spread
		}
	}

	return mustMatrix(rows, dims, data)
}

// MinPairwise returns the smallest distance among the given points of s.
// Returns +Inf for fewer than two points.
func MinPairwise(s metric.Space, indices []int) float32 {
	best := float32(math.Inf(1))
	for a := range indices {
		for b := 0; b < a; b++ {
			best = min(best, s.Distance(indices[a], indices[b]))
		}
	}

	return best
}

// OptimalRemoteEdge finds the best k-subset of s by exhaustive search.
// Only use it on tiny inputs.
func OptimalRemoteEdge(s metric.Space, k int) float32 {
	n := s.NumPoints()
	best := float32(math.Inf(-1))
	chosen := make([]int, 0, k)

	var walk func(next int)
	walk = func(next int) {
		if len(chosen) == k {
			best = max(best, MinPairwise(s, chosen))
			return
		}
		for i := next; i <= n-(k-len(chosen)); i++ {
			chosen = append(chosen, i)
			walk(i + 1)
			chosen = chosen[:len(chosen)-1]
		}
	}
	walk(0)

	return best
}

func mustMatrix(rows, dims int, data []float32) *metric.Matrix {
	m, err := metric.NewMatrix(rows, dims, data)
	if err != nil {
		panic(err)
	}

	return m
}
