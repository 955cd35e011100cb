package coreset

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/divmax/greedy"
	"github.com/hupe1980/divmax/metric"
)

// Parallel builds a composable coreset: the input is split into Workers
// contiguous shards, each shard is reduced independently, and the union of
// the shard coresets is reduced once more with the same greedy rule.
//
// The result generally differs from a Sequential coreset on the same data.
// With a single worker the two coincide.
type Parallel struct {
	size    int
	workers int
	logger  *slog.Logger
}

// ParallelOption configures a Parallel builder.
type ParallelOption func(*Parallel)

// WithLogger sets the logger used for per-shard debug output.
// If nil is passed, logging is discarded.
func WithLogger(l *slog.Logger) ParallelOption {
	return func(p *Parallel) {
		if l == nil {
			l = slog.New(slog.DiscardHandler)
		}
		p.logger = l
	}
}

// NewParallel returns a builder that reduces to at most size points using
// workers shards.
func NewParallel(size, workers int, opts ...ParallelOption) (*Parallel, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	if workers <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWorkers, workers)
	}

	p := &Parallel{
		size:    size,
		workers: workers,
		logger:  slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// Size returns the requested coreset size.
func (b *Parallel) Size() int { return b.size }

// Workers returns the number of shards.
func (b *Parallel) Workers() int { return b.workers }

// FitParallel reduces data to at most Size representatives.
//
// Shards share the read-only input and write only their own result slot.
// The call blocks until every shard is done; the first failing shard aborts
// the whole build, shards that have not started yet return early. The merge
// runs on the calling goroutine.
func FitParallel[V metric.Dataset[V]](ctx context.Context, b *Parallel, data V, weights []float32) (*Coreset[V], error) {
	n := data.NumPoints()
	if n == 0 {
		return nil, fmt.Errorf("coreset: %w", greedy.ErrEmptyInput)
	}
	if err := checkWeights(data, weights); err != nil {
		return nil, err
	}

	shards := data.Chunks(b.workers)
	capacity := data.ChunkCapacity(b.workers)
	local := make([][]int, len(shards))

	g, gctx := errgroup.WithContext(ctx)
	for i, shard := range shards {
		if shard.NumPoints() == 0 {
			continue
		}

		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("%w: shard %d: %v", ErrWorkerPanic, i, r)
				}
			}()

			if err := gctx.Err(); err != nil {
				return err
			}

			indices, err := reduce(greedy.NewSelector(capacity), b.size, shard)
			if err != nil {
				return fmt.Errorf("coreset: shard %d: %w", i, err)
			}

			offset := i * capacity
			for j := range indices {
				indices[j] += offset
			}
			local[i] = indices

			b.logger.DebugContext(gctx, "shard reduced",
				"shard", i,
				"points", shard.NumPoints(),
				"selected", len(indices),
			)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	candidates := slices.Concat(local...)
	merged, err := build(
		greedy.NewSelector(len(candidates)),
		b.size,
		data.Subset(candidates),
		gatherWeights(weights, candidates),
	)
	if err != nil {
		return nil, err
	}

	for j, idx := range merged.Indices {
		merged.Indices[j] = candidates[idx]
	}

	b.logger.DebugContext(ctx, "coreset merged",
		"shards", len(shards),
		"candidates", len(candidates),
		"selected", merged.Len(),
	)

	return merged, nil
}
