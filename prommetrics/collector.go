// Package prommetrics exports divmax operation metrics to Prometheus.
package prommetrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hupe1980/divmax"
)

const (
	statusOK    = "ok"
	statusError = "error"
)

// Collector implements divmax.MetricsCollector on Prometheus histograms.
type Collector struct {
	fitDuration  *prometheus.HistogramVec
	fitPoints    prometheus.Counter
	costDuration *prometheus.HistogramVec
}

var _ divmax.MetricsCollector = (*Collector)(nil)

type options struct {
	namespace string
	buckets   []float64
}

// Option configures a Collector.
type Option func(*options)

// WithNamespace sets the metric name prefix. Defaults to "divmax".
func WithNamespace(ns string) Option {
	return func(o *options) {
		o.namespace = ns
	}
}

// WithBuckets overrides the duration histogram buckets (seconds).
func WithBuckets(buckets []float64) Option {
	return func(o *options) {
		o.buckets = buckets
	}
}

// New creates a Collector and registers it with reg.
func New(reg prometheus.Registerer, optFns ...Option) (*Collector, error) {
	o := options{
		namespace: "divmax",
		buckets:   prometheus.ExponentialBuckets(0.0005, 2, 16),
	}
	for _, fn := range optFns {
		fn(&o)
	}

	c := &Collector{
		fitDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: o.namespace,
			Name:      "fit_duration_seconds",
			Help:      "Duration of Fit calls by dispatch path and status",
			Buckets:   o.buckets,
		}, []string{"path", "status"}),
		fitPoints: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: o.namespace,
			Name:      "fit_points_total",
			Help:      "Total number of input points passed to Fit",
		}),
		costDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: o.namespace,
			Name:      "cost_duration_seconds",
			Help:      "Duration of exact Cost evaluations by status",
			Buckets:   o.buckets,
		}, []string{"status"}),
	}

	for _, col := range []prometheus.Collector{c.fitDuration, c.fitPoints, c.costDuration} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// RecordFit implements divmax.MetricsCollector.
func (c *Collector) RecordFit(path string, points int, duration time.Duration, err error) {
	c.fitDuration.WithLabelValues(path, status(err)).Observe(duration.Seconds())
	c.fitPoints.Add(float64(points))
}

// RecordCost implements divmax.MetricsCollector.
func (c *Collector) RecordCost(points int, duration time.Duration, err error) {
	c.costDuration.WithLabelValues(status(err)).Observe(duration.Seconds())
}

func status(err error) string {
	if err != nil {
		return statusError
	}
	return statusOK
}
