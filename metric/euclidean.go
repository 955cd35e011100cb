package metric

import (
	"math"

	"github.com/hupe1980/divmax/distance"
)

// Euclidean is a metric view under L2 distance.
//
// Squared row norms are cached so a distance costs one dot product:
// |a-b|^2 = |a|^2 + |b|^2 - 2*a.b.
type Euclidean struct {
	points  *Matrix
	sqNorms []float32
}

// NewEuclidean binds m and precomputes its squared row norms.
func NewEuclidean(m *Matrix) *Euclidean {
	sqNorms := make([]float32, m.Rows())
	for i := range sqNorms {
		sqNorms[i] = distance.SquaredNorm(m.Row(i))
	}

	return &Euclidean{points: m, sqNorms: sqNorms}
}

// Matrix returns the bound point set.
func (e *Euclidean) Matrix() *Matrix { return e.points }

// SquaredNorms returns the cached squared row norms. Callers must not modify the result.
func (e *Euclidean) SquaredNorms() []float32 { return e.sqNorms }

// Distance implements Space.
func (e *Euclidean) Distance(i, j int) float32 {
	if i == j {
		return 0
	}
	dot := distance.Dot(e.points.Row(i), e.points.Row(j))

	return sqrt32(distance.SquaredL2FromNorms(e.sqNorms[i], e.sqNorms[j], dot))
}

// AllDistances implements Space.
func (e *Euclidean) AllDistances(j int, out []float32) {
	dotAll(e.points, e.points.Row(j), out)

	sj := e.sqNorms[j]
	for i, dot := range out {
		out[i] = sqrt32(distance.SquaredL2FromNorms(e.sqNorms[i], sj, dot))
	}
	out[j] = 0
}

// NumPoints implements Space.
func (e *Euclidean) NumPoints() int { return e.points.Rows() }

// Dimensions implements Space.
func (e *Euclidean) Dimensions() int { return e.points.Dims() }

// Subset implements Subsetter.
func (e *Euclidean) Subset(indices []int) *Euclidean {
	return NewEuclidean(e.points.Gather(indices))
}

// Chunks implements Chunker. Chunks share rows and squared norms with e.
func (e *Euclidean) Chunks(n int) []*Euclidean {
	rows := e.points.Rows()
	capacity := chunkCapacity(rows, n)
	chunks := make([]*Euclidean, n)
	for i := range chunks {
		start, end := chunkBounds(rows, capacity, i)
		chunks[i] = &Euclidean{
			points:  e.points.Slice(start, end),
			sqNorms: e.sqNorms[start:end:end],
		}
	}

	return chunks
}

// ChunkCapacity implements Chunker.
func (e *Euclidean) ChunkCapacity(n int) int {
	return chunkCapacity(e.points.Rows(), n)
}

func sqrt32(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}
