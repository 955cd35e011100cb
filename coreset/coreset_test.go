package coreset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/divmax/coreset"
	"github.com/hupe1980/divmax/greedy"
	"github.com/hupe1980/divmax/metric"
	"github.com/hupe1980/divmax/testutil"
)

func TestNewSequential(t *testing.T) {
	b, err := coreset.NewSequential(10)
	require.NoError(t, err)
	assert.Equal(t, 10, b.Size())

	_, err = coreset.NewSequential(0)
	assert.ErrorIs(t, err, coreset.ErrInvalidSize)
}

func TestSequentialSizeBound(t *testing.T) {
	rng := testutil.NewRNG(1)

	tests := []struct {
		name string
		n    int
		size int
		want int
	}{
		{"Reduces", 500, 40, 40},
		{"Exact", 40, 40, 40},
		{"SmallerInput", 15, 40, 15},
		{"SinglePoint", 1, 40, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := metric.NewAngular(rng.UnitMatrix(tt.n, 8))
			b, err := coreset.NewSequential(tt.size)
			require.NoError(t, err)

			cs, err := coreset.Fit(b, data, nil)
			require.NoError(t, err)

			assert.Equal(t, tt.want, cs.Len())
			assert.Equal(t, tt.want, cs.Points.NumPoints())
			assert.LessOrEqual(t, cs.Len(), tt.size)
			assert.Nil(t, cs.Weights)
		})
	}
}

func TestSequentialMatchesGreedy(t *testing.T) {
	data := metric.NewEuclidean(testutil.NewRNG(2).UniformMatrix(300, 6))

	b, err := coreset.NewSequential(25)
	require.NoError(t, err)
	cs, err := coreset.Fit(b, data, nil)
	require.NoError(t, err)

	sel, err := greedy.Select(data, 25)
	require.NoError(t, err)

	assert.Equal(t, sel.Indices, cs.Indices)
	for i, idx := range cs.Indices {
		assert.Equal(t, data.Matrix().Row(idx), cs.Points.Matrix().Row(i))
	}
}

func TestCoresetPreservesObjectiveWithinFactor(t *testing.T) {
	// Running greedy on a farthest-point coreset stays within a constant
	// factor of running it on the full data.
	data := metric.NewEuclidean(testutil.NewRNG(3).ClusteredMatrix(2000, 8, 16, 0.05))
	const k = 10

	full, err := greedy.Select(data, k)
	require.NoError(t, err)

	b, err := coreset.NewSequential(100)
	require.NoError(t, err)
	cs, err := coreset.Fit(b, data, nil)
	require.NoError(t, err)

	reduced, err := greedy.Select(cs.Points, k)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, reduced.Objective*2+1e-5, full.Objective)
}

func TestSequentialWeights(t *testing.T) {
	m, err := metric.FromRows([][]float32{{0}, {1}, {10}, {4}})
	require.NoError(t, err)
	data := metric.NewEuclidean(m)

	b, err := coreset.NewSequential(2)
	require.NoError(t, err)

	cs, err := coreset.Fit(b, data, []float32{0.1, 0.2, 0.3, 0.4})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, cs.Indices)
	assert.Equal(t, []float32{0.1, 0.3}, cs.Weights)

	_, err = coreset.Fit(b, data, []float32{1})
	assert.ErrorIs(t, err, coreset.ErrWeightsLength)
}

func TestSequentialEmptyInput(t *testing.T) {
	empty, err := metric.FromRows(nil)
	require.NoError(t, err)

	b, err := coreset.NewSequential(3)
	require.NoError(t, err)

	_, err = coreset.Fit(b, metric.NewAngular(empty), nil)
	assert.ErrorIs(t, err, greedy.ErrEmptyInput)
}

func TestAssignmentDeferred(t *testing.T) {
	data := metric.NewAngular(testutil.NewRNG(4).UnitMatrix(20, 4))
	b, err := coreset.NewSequential(5)
	require.NoError(t, err)

	cs, err := coreset.Fit(b, data, nil)
	require.NoError(t, err)

	assignment, err := cs.Assignment()
	assert.Nil(t, assignment)
	assert.ErrorIs(t, err, coreset.ErrAssignmentDeferred)
}

func TestNewParallel(t *testing.T) {
	p, err := coreset.NewParallel(10, 4)
	require.NoError(t, err)
	assert.Equal(t, 10, p.Size())
	assert.Equal(t, 4, p.Workers())

	_, err = coreset.NewParallel(0, 4)
	assert.ErrorIs(t, err, coreset.ErrInvalidSize)

	_, err = coreset.NewParallel(10, 0)
	assert.ErrorIs(t, err, coreset.ErrInvalidWorkers)
}
