package divmax

import "github.com/hupe1980/divmax/metric"

// Option configures a DiversityMaximization at construction time.
type Option func(*options)

type options struct {
	coresetSize      int
	coresetSet       bool
	threads          int
	metric           metric.Kind
	metricsCollector MetricsCollector
	logger           *Logger
}

// WithCoreset summarizes the input into a coreset of the given size before
// selecting. The size must exceed k.
//
// With a coreset, solution indices refer to the coreset, not to the caller's
// points; see Solution.Source for the mapping back.
func WithCoreset(size int) Option {
	return func(o *options) {
		o.coresetSize = size
		o.coresetSet = true
	}
}

// WithThreads sets the number of shards the coreset is built with.
// Values above 1 require WithCoreset. Defaults to 1.
//
// Example:
//
//	dm, _ := divmax.New(10, divmax.RemoteEdge,
//	    divmax.WithCoreset(200),
//	    divmax.WithThreads(runtime.GOMAXPROCS(0)),
//	)
func WithThreads(n int) Option {
	return func(o *options) {
		o.threads = n
	}
}

// WithMetric selects the distance the points are compared with.
// Defaults to metric.KindAngular.
func WithMetric(kind metric.Kind) Option {
	return func(o *options) {
		o.metric = kind
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &divmax.BasicMetricsCollector{}
//	dm, _ := divmax.New(10, divmax.RemoteEdge, divmax.WithMetricsCollector(metrics))
//	// ... use dm ...
//	stats := metrics.GetStats()
//	fmt.Printf("Fits: %d, Avg latency: %dns\n", stats.FitCount, stats.FitAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := divmax.NewJSONLogger(os.Stderr, slog.LevelDebug)
//	dm, _ := divmax.New(10, divmax.RemoteEdge, divmax.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		threads:          1,
		metric:           metric.KindAngular,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
