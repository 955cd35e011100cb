package integration_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/divmax"
	"github.com/hupe1980/divmax/metric"
	"github.com/hupe1980/divmax/testutil"
)

const (
	clusters = 8
	dims     = 16
	spread   = 1e-4
)

// clusterOf returns the generating cluster of an input row (see
// testutil.ClusteredMatrix).
func clusterOf(row int) int { return row % clusters }

// With tight, well separated clusters and k equal to the cluster count, every
// path must pick exactly one representative per cluster.
func TestClusteredRecovery(t *testing.T) {
	ctx := context.Background()
	points := testutil.NewRNG(4711).ClusteredMatrix(4000, dims, clusters, spread)

	paths := []struct {
		name string
		opts []divmax.Option
	}{
		{"direct", nil},
		{"sequential", []divmax.Option{divmax.WithCoreset(4 * clusters)}},
		{"parallel", []divmax.Option{divmax.WithCoreset(4 * clusters), divmax.WithThreads(4)}},
	}

	for _, m := range []metric.Kind{metric.KindEuclidean, metric.KindAngular} {
		for _, p := range paths {
			t.Run(m.String()+"/"+p.name, func(t *testing.T) {
				opts := append([]divmax.Option{divmax.WithMetric(m)}, p.opts...)
				dm, err := divmax.New(clusters, divmax.RemoteEdge, opts...)
				require.NoError(t, err)

				require.NoError(t, dm.Fit(ctx, points))

				sol, ok := dm.Solution()
				require.True(t, ok)
				require.Len(t, sol.Source, clusters)

				seen := make(map[int]bool, clusters)
				for _, row := range sol.Source {
					seen[clusterOf(row)] = true
				}
				assert.Len(t, seen, clusters)
			})
		}
	}
}

// The coreset paths may lose some quality against the direct greedy, but on
// uniform data they stay within the composable-coreset factor.
func TestCoresetQuality(t *testing.T) {
	ctx := context.Background()
	points := testutil.NewRNG(99).UnitMatrix(3000, dims)

	const k = 10

	direct, err := divmax.New(k, divmax.RemoteEdge)
	require.NoError(t, err)
	require.NoError(t, direct.Fit(ctx, points))
	ref, _ := direct.Solution()

	par, err := divmax.New(k, divmax.RemoteEdge, divmax.WithCoreset(10*k), divmax.WithThreads(6))
	require.NoError(t, err)
	require.NoError(t, par.Fit(ctx, points))
	got, _ := par.Solution()

	assert.GreaterOrEqual(t, got.Objective, ref.Objective/3)

	// The reported objective is the exact min pairwise distance of the
	// selected input rows.
	cost, err := par.Cost(ctx, points.Gather(got.Source))
	require.NoError(t, err)
	assert.InDelta(t, got.Objective, cost, 1e-4)
}
