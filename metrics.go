package divmax

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems; see
// package prommetrics for a Prometheus implementation.
type MetricsCollector interface {
	// RecordFit is called after each Fit call.
	// path is one of the Path* constants, points the input size,
	// err is nil if successful.
	RecordFit(path string, points int, duration time.Duration, err error)

	// RecordCost is called after each Cost call.
	RecordCost(points int, duration time.Duration, err error)
}

// Fit dispatch paths reported to MetricsCollector and the logger.
const (
	PathDirect     = "direct"
	PathSequential = "sequential"
	PathParallel   = "parallel"

	// PathRejected marks a Fit refused before any work, because threads
	// exceed one while no coreset size is set.
	PathRejected = "rejected"
)

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordFit(string, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordCost(int, time.Duration, error)        {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	FitCount       atomic.Int64
	FitErrors      atomic.Int64
	FitPoints      atomic.Int64
	FitTotalNanos  atomic.Int64
	CostCount      atomic.Int64
	CostErrors     atomic.Int64
	CostTotalNanos atomic.Int64
}

// RecordFit implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFit(path string, points int, duration time.Duration, err error) {
	b.FitCount.Add(1)
	b.FitPoints.Add(int64(points))
	b.FitTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.FitErrors.Add(1)
	}
}

// RecordCost implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCost(points int, duration time.Duration, err error) {
	b.CostCount.Add(1)
	b.CostTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.CostErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		FitCount:     b.FitCount.Load(),
		FitErrors:    b.FitErrors.Load(),
		FitPoints:    b.FitPoints.Load(),
		FitAvgNanos:  avgNanos(b.FitTotalNanos.Load(), b.FitCount.Load()),
		CostCount:    b.CostCount.Load(),
		CostErrors:   b.CostErrors.Load(),
		CostAvgNanos: avgNanos(b.CostTotalNanos.Load(), b.CostCount.Load()),
	}
}

func avgNanos(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	FitCount     int64
	FitErrors    int64
	FitPoints    int64
	FitAvgNanos  int64
	CostCount    int64
	CostErrors   int64
	CostAvgNanos int64
}
