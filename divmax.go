package divmax

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/hupe1980/divmax/coreset"
	"github.com/hupe1980/divmax/greedy"
	"github.com/hupe1980/divmax/metric"
)

// Config is the validated configuration of a DiversityMaximization.
type Config struct {
	// K is the number of points to select.
	K int

	// Objective is the diversity measure to maximize.
	Objective Objective

	// CoresetSize is the coreset size, or 0 when no coreset is built.
	CoresetSize int

	// Threads is the number of shards used to build the coreset.
	Threads int

	// Metric is the distance points are compared with.
	Metric metric.Kind
}

// Solution is the result of the last successful Fit.
type Solution struct {
	// Indices lists the selected points in selection order.
	//
	// When Coreset is true these index the coreset, NOT the points passed
	// to Fit. Use Source to address the caller's points.
	Indices []int

	// Objective is the value achieved by Indices (for RemoteEdge, the
	// minimum pairwise distance; +Inf when K is 1).
	Objective float32

	// Coreset reports whether Indices are coreset-local.
	Coreset bool

	// Source holds, for each entry of Indices, the row of the input to Fit.
	Source []int
}

func (s Solution) clone() Solution {
	s.Indices = slices.Clone(s.Indices)
	s.Source = slices.Clone(s.Source)
	return s
}

// DiversityMaximization selects K maximally diverse points from a point set,
// optionally through a coreset.
//
// A DiversityMaximization is configured once and reused across Fit calls;
// each successful Fit replaces the stored solution. It is safe for
// concurrent use.
type DiversityMaximization struct {
	cfg     Config
	logger  *Logger
	metrics MetricsCollector

	mu       sync.RWMutex
	solution *Solution
}

// New validates the configuration and returns a ready DiversityMaximization.
//
// It fails fast on k < 1, an unknown objective or metric, a coreset size
// that does not exceed k, and a thread count below one.
func New(k int, objective Objective, optFns ...Option) (*DiversityMaximization, error) {
	o := applyOptions(optFns)

	cfg := Config{
		K:           k,
		Objective:   objective,
		CoresetSize: o.coresetSize,
		Threads:     o.threads,
		Metric:      o.metric,
	}
	if err := cfg.validate(o.coresetSet); err != nil {
		return nil, err
	}

	return &DiversityMaximization{
		cfg:     cfg,
		logger:  o.logger.WithK(k),
		metrics: o.metricsCollector,
	}, nil
}

func (c Config) validate(coresetSet bool) error {
	if c.K <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidK, c.K)
	}
	if !c.Objective.Valid() {
		return &ErrInvalidObjective{Objective: c.Objective}
	}
	if !c.Metric.Valid() {
		return &ErrInvalidMetric{Metric: c.Metric}
	}
	if coresetSet && c.CoresetSize <= c.K {
		return fmt.Errorf("%w: size %d, k %d", ErrInvalidCoresetSize, c.CoresetSize, c.K)
	}
	if c.Threads < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidThreads, c.Threads)
	}

	return nil
}

// Config returns the configuration.
func (d *DiversityMaximization) Config() Config {
	return d.cfg
}

// Fit selects K diverse points from points and stores the solution.
//
// Dispatch:
//
//	threads  coreset  action
//	1        unset    greedy selection on points
//	1        set      sequential coreset, then greedy on the coreset
//	>1       set      parallel coreset, then greedy on the coreset
//	>1       unset    ErrCoresetRequired
//
// On a coreset path the stored indices are coreset-local (see Solution).
// A failed Fit keeps the previous solution.
func (d *DiversityMaximization) Fit(ctx context.Context, points *metric.Matrix) error {
	start := time.Now()
	path := d.path()
	n := numRows(points)

	logger := d.logger
	if points != nil {
		logger = logger.WithDimension(points.Dims())
	}

	sol, err := d.fit(ctx, logger, points)

	d.metrics.RecordFit(path, n, time.Since(start), err)
	logger.LogFit(ctx, path, n, sol.Objective, err)

	if err != nil {
		return err
	}

	d.mu.Lock()
	d.solution = &sol
	d.mu.Unlock()

	return nil
}

func (d *DiversityMaximization) path() string {
	switch {
	case d.cfg.Threads > 1 && d.cfg.CoresetSize == 0:
		return PathRejected
	case d.cfg.Threads > 1:
		return PathParallel
	case d.cfg.CoresetSize > 0:
		return PathSequential
	default:
		return PathDirect
	}
}

func (d *DiversityMaximization) fit(ctx context.Context, logger *Logger, points *metric.Matrix) (Solution, error) {
	if d.cfg.Threads > 1 && d.cfg.CoresetSize == 0 {
		return Solution{}, ErrCoresetRequired
	}
	if numRows(points) == 0 {
		return Solution{}, ErrEmptyInput
	}

	switch d.cfg.Metric {
	case metric.KindAngular:
		return fitView(ctx, d.cfg, logger, metric.NewAngular(points))
	case metric.KindEuclidean:
		return fitView(ctx, d.cfg, logger, metric.NewEuclidean(points))
	default:
		return Solution{}, &ErrInvalidMetric{Metric: d.cfg.Metric}
	}
}

func fitView[V metric.Dataset[V]](ctx context.Context, cfg Config, logger *Logger, data V) (Solution, error) {
	if cfg.CoresetSize == 0 {
		sel, err := solve(cfg.Objective, data, cfg.K)
		if err != nil {
			return Solution{}, translateError(err)
		}

		return Solution{
			Indices:   sel.Indices,
			Objective: sel.Objective,
			Source:    slices.Clone(sel.Indices),
		}, nil
	}

	cs, err := buildCoreset(ctx, cfg, logger, data)
	if err != nil {
		return Solution{}, translateError(err)
	}

	sel, err := solve(cfg.Objective, cs.Points, cfg.K)
	if err != nil {
		return Solution{}, translateError(err)
	}

	source := make([]int, len(sel.Indices))
	for i, idx := range sel.Indices {
		source[i] = cs.Indices[idx]
	}

	return Solution{
		Indices:   sel.Indices,
		Objective: sel.Objective,
		Coreset:   true,
		Source:    source,
	}, nil
}

func buildCoreset[V metric.Dataset[V]](ctx context.Context, cfg Config, logger *Logger, data V) (*coreset.Coreset[V], error) {
	if cfg.Threads == 1 {
		b, err := coreset.NewSequential(cfg.CoresetSize)
		if err != nil {
			return nil, err
		}
		return coreset.Fit(b, data, nil)
	}

	p, err := coreset.NewParallel(cfg.CoresetSize, cfg.Threads, coreset.WithLogger(logger.Logger))
	if err != nil {
		return nil, err
	}
	return coreset.FitParallel(ctx, p, data, nil)
}

// solve dispatches on the objective.
func solve(objective Objective, data metric.Space, k int) (greedy.Selection, error) {
	switch objective {
	case RemoteEdge:
		return greedy.Select(data, k)
	default:
		return greedy.Selection{}, &ErrInvalidObjective{Objective: objective}
	}
}

// Cost returns the exact objective value of the whole point set under the
// configured metric (for RemoteEdge, the minimum distance over all pairs).
// It is independent of any stored solution and runs in O(n^2).
func (d *DiversityMaximization) Cost(ctx context.Context, points *metric.Matrix) (float32, error) {
	start := time.Now()
	n := numRows(points)

	c, err := d.cost(points)

	d.metrics.RecordCost(n, time.Since(start), err)
	d.logger.LogCost(ctx, n, c, err)

	return c, err
}

func (d *DiversityMaximization) cost(points *metric.Matrix) (float32, error) {
	if numRows(points) == 0 {
		return 0, ErrEmptyInput
	}
	if d.cfg.Objective != RemoteEdge {
		return 0, &ErrInvalidObjective{Objective: d.cfg.Objective}
	}

	var (
		c   float32
		err error
	)
	switch d.cfg.Metric {
	case metric.KindAngular:
		c, err = greedy.Cost(metric.NewAngular(points))
	case metric.KindEuclidean:
		c, err = greedy.Cost(metric.NewEuclidean(points))
	default:
		return 0, &ErrInvalidMetric{Metric: d.cfg.Metric}
	}

	return c, translateError(err)
}

// SolutionIndices returns a copy of the indices chosen by the last
// successful Fit, or false if Fit has not succeeded yet.
//
// On a coreset path the indices are coreset-local.
func (d *DiversityMaximization) SolutionIndices() ([]int, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.solution == nil {
		return nil, false
	}
	return slices.Clone(d.solution.Indices), true
}

// Solution returns a copy of the last solution, or false if Fit has not
// succeeded yet.
func (d *DiversityMaximization) Solution() (Solution, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.solution == nil {
		return Solution{}, false
	}
	return d.solution.clone(), true
}

func numRows(points *metric.Matrix) int {
	if points == nil {
		return 0
	}
	return points.Rows()
}
