package coreset

import (
	"errors"
	"fmt"

	"github.com/hupe1980/divmax/greedy"
	"github.com/hupe1980/divmax/metric"
)

var (
	// ErrInvalidSize is returned when the requested coreset size is not positive.
	ErrInvalidSize = errors.New("coreset: size must be positive")

	// ErrInvalidWorkers is returned when the worker count is not positive.
	ErrInvalidWorkers = errors.New("coreset: workers must be positive")

	// ErrWeightsLength is returned when weights do not have one entry per point.
	ErrWeightsLength = errors.New("coreset: weights length does not match number of points")

	// ErrAssignmentDeferred is returned by Coreset.Assignment. Mapping every
	// input point to its nearest representative is not computed yet.
	ErrAssignmentDeferred = errors.New("coreset: nearest-representative assignment is not available")

	// ErrWorkerPanic wraps a panic raised inside a shard worker.
	ErrWorkerPanic = errors.New("coreset: shard worker panicked")
)

// Coreset is a reduced set of representatives built from a larger input.
type Coreset[V any] struct {
	// Points is an owned view over the representatives, in selection order.
	Points V

	// Indices maps each representative to its row in the builder's input.
	Indices []int

	// Weights carries the input weights of the representatives, or nil
	// when the build was unweighted.
	Weights []float32
}

// Len returns the number of representatives.
func (c *Coreset[V]) Len() int { return len(c.Indices) }

// Assignment would map every input point to its nearest representative.
// It is reserved for weighted variants and always returns ErrAssignmentDeferred.
func (c *Coreset[V]) Assignment() ([]int, error) {
	return nil, ErrAssignmentDeferred
}

// reducible is the part of metric.Dataset a single reduction needs.
type reducible[V any] interface {
	metric.Space
	metric.Subsetter[V]
}

// reduce selects up to size rows of data with the greedy remote-edge rule.
func reduce(sel *greedy.Selector, size int, data metric.Space) ([]int, error) {
	res, err := sel.Select(data, min(size, data.NumPoints()))
	if err != nil {
		return nil, err
	}

	return res.Indices, nil
}

// build reduces data and materializes the chosen rows as a new view.
func build[V reducible[V]](sel *greedy.Selector, size int, data V, weights []float32) (*Coreset[V], error) {
	if err := checkWeights(data, weights); err != nil {
		return nil, err
	}

	indices, err := reduce(sel, size, data)
	if err != nil {
		return nil, fmt.Errorf("coreset: %w", err)
	}

	return &Coreset[V]{
		Points:  data.Subset(indices),
		Indices: indices,
		Weights: gatherWeights(weights, indices),
	}, nil
}

func checkWeights(data metric.Space, weights []float32) error {
	if weights != nil && len(weights) != data.NumPoints() {
		return fmt.Errorf("%w: got %d, want %d", ErrWeightsLength, len(weights), data.NumPoints())
	}

	return nil
}

func gatherWeights(weights []float32, indices []int) []float32 {
	if weights == nil {
		return nil
	}

	out := make([]float32, len(indices))
	for i, idx := range indices {
		out[i] = weights[idx]
	}

	return out
}
