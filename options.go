package knn

import (
	"log/slog"

	"github.com/RiswanBasha/knn/exemplar"
)

// DefaultNeighbors is the default global candidate cutoff.
const DefaultNeighbors = 4

type options struct {
	neighbors        int
	capacity         int
	parallelism      int
	store            *exemplar.Store
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures Classifier construction.
type Option func(*options)

// WithNeighbors sets how many candidates survive the global cutoff in
// Classify, before maxResults is applied. Must be positive.
func WithNeighbors(n int) Option {
	return func(o *options) {
		o.neighbors = n
	}
}

// WithCapacity sets the per-label exemplar retention limit of the store the
// classifier creates. It is ignored when WithStore is also given.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// WithStore makes the classifier operate on a caller-owned store.
// The store's own capacity applies.
//
// Several classifiers may share one store, for example to read the same
// exemplars with different label parsers.
func WithStore(s *exemplar.Store) Option {
	return func(o *options) {
		o.store = s
	}
}

// WithParallelism computes the distance tables of one Classify call on up to
// n goroutines. Results are identical to the sequential path. Default 1.
func WithParallelism(n int) Option {
	return func(o *options) {
		o.parallelism = n
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &knn.BasicMetricsCollector{}
//	clf, _ := knn.New(knn.StringLabel, knn.WithMetricsCollector(metrics))
//	// ... use clf ...
//	stats := metrics.GetStats()
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := knn.NewJSONLogger(slog.LevelDebug)
//	clf, _ := knn.New(knn.StringLabel, knn.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		neighbors:        DefaultNeighbors,
		capacity:         exemplar.DefaultCapacity,
		parallelism:      1,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	return o
}
