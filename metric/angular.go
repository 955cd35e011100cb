package metric

import (
	"github.com/viant/vec/search"

	"github.com/hupe1980/divmax/distance"
)

// Angular is a metric view under cosine distance, 1 - cos(a, b).
//
// Per-row Euclidean norms are computed once at construction. A row with
// zero norm makes every distance involving it NaN; callers must exclude
// zero vectors.
type Angular struct {
	points *Matrix
	norms  []float32
}

// NewAngular binds m and precomputes its row norms.
func NewAngular(m *Matrix) *Angular {
	norms := make([]float32, m.Rows())
	for i := range norms {
		norms[i] = search.Float32s(m.Row(i)).Magnitude()
	}

	return &Angular{points: m, norms: norms}
}

// Matrix returns the bound point set.
func (a *Angular) Matrix() *Matrix { return a.points }

// Norms returns the cached row norms. Callers must not modify the result.
func (a *Angular) Norms() []float32 { return a.norms }

// Distance implements Space.
func (a *Angular) Distance(i, j int) float32 {
	dot := distance.Dot(a.points.Row(i), a.points.Row(j))
	return cosineDistance(dot, a.norms[i], a.norms[j])
}

// AllDistances implements Space.
func (a *Angular) AllDistances(j int, out []float32) {
	dotAll(a.points, a.points.Row(j), out)

	nj := a.norms[j]
	for i, dot := range out {
		out[i] = cosineDistance(dot, a.norms[i], nj)
	}
}

// NumPoints implements Space.
func (a *Angular) NumPoints() int { return a.points.Rows() }

// Dimensions implements Space.
func (a *Angular) Dimensions() int { return a.points.Dims() }

// Subset implements Subsetter.
func (a *Angular) Subset(indices []int) *Angular {
	return NewAngular(a.points.Gather(indices))
}

// Chunks implements Chunker. Chunks share rows and norms with a.
func (a *Angular) Chunks(n int) []*Angular {
	rows := a.points.Rows()
	capacity := chunkCapacity(rows, n)
	chunks := make([]*Angular, n)
	for i := range chunks {
		start, end := chunkBounds(rows, capacity, i)
		chunks[i] = &Angular{
			points: a.points.Slice(start, end),
			norms:  a.norms[start:end:end],
		}
	}

	return chunks
}

// ChunkCapacity implements Chunker.
func (a *Angular) ChunkCapacity(n int) int {
	return chunkCapacity(a.points.Rows(), n)
}

// cosineDistance is 1 - dot/(ni*nj), clamped at 0. The norms and the dot
// come from different kernels, so identical rows can round just below zero.
// NaN (a zero norm) passes through.
func cosineDistance(dot, ni, nj float32) float32 {
	return max(0, 1-dot/(ni*nj))
}
