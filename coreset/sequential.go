package coreset

import (
	"fmt"

	"github.com/hupe1980/divmax/greedy"
	"github.com/hupe1980/divmax/metric"
)

// Sequential builds a coreset on the calling goroutine by running greedy
// farthest-point selection with budget Size over the whole input.
type Sequential struct {
	size int
}

// NewSequential returns a builder producing coresets of at most size points.
func NewSequential(size int) (*Sequential, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}

	return &Sequential{size: size}, nil
}

// Size returns the requested coreset size.
func (b *Sequential) Size() int { return b.size }

// Fit reduces data to min(Size, n) representatives.
//
// weights is optional ancillary data with one entry per point; pass nil for
// an unweighted build. Weights are carried through, not used for selection.
func Fit[V metric.Dataset[V]](b *Sequential, data V, weights []float32) (*Coreset[V], error) {
	return build(greedy.NewSelector(data.NumPoints()), b.size, data, weights)
}
