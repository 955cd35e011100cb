package benchmark_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/hupe1980/divmax"
	"github.com/hupe1980/divmax/coreset"
	"github.com/hupe1980/divmax/greedy"
	"github.com/hupe1980/divmax/metric"
	"github.com/hupe1980/divmax/testutil"
)

const benchDim = 64

// BenchmarkFit compares the three dispatch paths on the same input.
func BenchmarkFit(b *testing.B) {
	ctx := context.Background()
	points := testutil.NewRNG(42).UnitMatrix(20000, benchDim)

	const k = 32

	cases := []struct {
		name string
		opts []divmax.Option
	}{
		{"direct", nil},
		{"sequential", []divmax.Option{divmax.WithCoreset(256)}},
		{"parallel_4", []divmax.Option{divmax.WithCoreset(256), divmax.WithThreads(4)}},
		{"parallel_8", []divmax.Option{divmax.WithCoreset(256), divmax.WithThreads(8)}},
	}

	for _, tc := range cases {
		b.Run(tc.name, func(b *testing.B) {
			dm, err := divmax.New(k, divmax.RemoteEdge, tc.opts...)
			if err != nil {
				b.Fatalf("new: %v", err)
			}

			b.ReportAllocs()
			b.ResetTimer()

			for b.Loop() {
				if err := dm.Fit(ctx, points); err != nil {
					b.Fatalf("fit: %v", err)
				}
			}
		})
	}
}

// BenchmarkGreedySelect measures the selector alone with reused buffers.
func BenchmarkGreedySelect(b *testing.B) {
	for _, n := range []int{1000, 10000} {
		view := metric.NewAngular(testutil.NewRNG(7).UnitMatrix(n, benchDim))

		for _, k := range []int{8, 64} {
			b.Run(fmt.Sprintf("n=%d/k=%d", n, k), func(b *testing.B) {
				sel := greedy.NewSelector(n)

				b.ReportAllocs()
				b.ResetTimer()

				for b.Loop() {
					if _, err := sel.Select(view, k); err != nil {
						b.Fatalf("select: %v", err)
					}
				}
			})
		}
	}
}

func BenchmarkParallelCoreset(b *testing.B) {
	ctx := context.Background()
	view := metric.NewEuclidean(testutil.NewRNG(3).UniformRangeMatrix(50000, benchDim))

	for _, workers := range []int{1, 2, 4, 8} {
		b.Run(fmt.Sprintf("workers=%d", workers), func(b *testing.B) {
			builder, err := coreset.NewParallel(128, workers)
			if err != nil {
				b.Fatalf("builder: %v", err)
			}

			for b.Loop() {
				if _, err := coreset.FitParallel(ctx, builder, view, nil); err != nil {
					b.Fatalf("fit: %v", err)
				}
			}
		})
	}
}
