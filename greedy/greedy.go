// Package greedy implements farthest-point (greedy max-min) selection for the
// remote-edge diversity objective.
package greedy

import (
	"errors"
	"fmt"
	"math"

	"github.com/bits-and-blooms/bitset"

	"github.com/hupe1980/divmax/metric"
)

var (
	// ErrInvalidK is returned when k is not positive.
	ErrInvalidK = errors.New("greedy: k must be positive")

	// ErrKExceedsPoints is returned when k is larger than the number of points.
	ErrKExceedsPoints = errors.New("greedy: k exceeds number of points")

	// ErrEmptyInput is returned when the point set has no rows.
	ErrEmptyInput = errors.New("greedy: empty input")
)

// Selection is an ordered set of distinct point indices together with the
// remote-edge value it achieves.
type Selection struct {
	// Indices lists the chosen points in selection order.
	Indices []int

	// Objective is the minimum pairwise distance among Indices.
	// It is +Inf for a single point.
	Objective float32
}

// Selector runs greedy selections and keeps its scratch buffers between runs.
// A Selector is not safe for concurrent use.
type Selector struct {
	frontier []float32
	scratch  []float32
	selected *bitset.BitSet
}

// NewSelector returns a Selector whose buffers fit inputs of up to capacity
// points without reallocating.
func NewSelector(capacity int) *Selector {
	return &Selector{
		frontier: make([]float32, capacity),
		scratch:  make([]float32, capacity),
		selected: bitset.New(uint(capacity)),
	}
}

// Select runs a one-off selection with a fresh Selector.
func Select(s metric.Space, k int) (Selection, error) {
	return NewSelector(s.NumPoints()).Select(s, k)
}

// Select picks k points of s maximizing the minimum pairwise distance.
//
// Index 0 seeds the solution. Each round adds the unselected point with the
// largest frontier distance (distance to its nearest selected point); ties go
// to the smallest index. The k-point result is a prefix of the (k+1)-point
// result on the same input.
func (sel *Selector) Select(s metric.Space, k int) (Selection, error) {
	n := s.NumPoints()
	if n == 0 {
		return Selection{}, ErrEmptyInput
	}
	if k <= 0 {
		return Selection{}, fmt.Errorf("%w: got %d", ErrInvalidK, k)
	}
	if k > n {
		return Selection{}, fmt.Errorf("%w: k=%d, n=%d", ErrKExceedsPoints, k, n)
	}

	sel.reset(n)
	frontier := sel.frontier[:n]
	scratch := sel.scratch[:n]

	indices := make([]int, 1, k)
	sel.selected.Set(0)
	s.AllDistances(0, frontier)

	objective := float32(math.Inf(1))
	for len(indices) < k {
		next := sel.farthest(frontier)
		objective = frontier[next]
		indices = append(indices, next)
		sel.selected.Set(uint(next))

		if len(indices) == k {
			break
		}

		s.AllDistances(next, scratch)
		for i, d := range scratch {
			if d < frontier[i] {
				frontier[i] = d
			}
		}
	}

	return Selection{Indices: indices, Objective: objective}, nil
}

// farthest returns the unselected index with the largest frontier distance.
func (sel *Selector) farthest(frontier []float32) int {
	best := -1
	var bestDist float32
	for i, d := range frontier {
		if sel.selected.Test(uint(i)) {
			continue
		}
		if best < 0 || d > bestDist {
			best, bestDist = i, d
		}
	}

	return best
}

func (sel *Selector) reset(n int) {
	if cap(sel.frontier) < n {
		sel.frontier = make([]float32, n)
		sel.scratch = make([]float32, n)
	}
	sel.frontier = sel.frontier[:cap(sel.frontier)]
	sel.scratch = sel.scratch[:cap(sel.scratch)]

	if sel.selected == nil {
		sel.selected = bitset.New(uint(n))
	} else {
		sel.selected.ClearAll()
	}
}
