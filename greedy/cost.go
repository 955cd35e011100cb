package greedy

import (
	"math"

	"github.com/hupe1980/divmax/metric"
)

// Cost returns the exact remote-edge value of the whole point set: the
// minimum distance over all pairs. It scans O(n^2) pairs and relies on the
// view's cached norms, so each pair costs a single dot product.
//
// A single point has no pairs and yields +Inf. NaN distances are ignored.
func Cost(s metric.Space) (float32, error) {
	n := s.NumPoints()
	if n == 0 {
		return 0, ErrEmptyInput
	}

	best := float32(math.Inf(1))
	for i := 1; i < n; i++ {
		for j := 0; j < i; j++ {
			if d := s.Distance(i, j); d < best {
				best = d
			}
		}
	}

	return best, nil
}
