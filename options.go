package aerodex

import "log/slog"

type options struct {
	logger            *Logger
	metricsCollector  MetricsCollector
	numWorkers        int
	parallelThreshold int
}

// Option configures Lookup construction behavior.
type Option func(*options)

// WithLogger configures structured logging for operations.
// Pass nil to keep logging disabled.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithMetricsCollector configures a metrics collector for monitoring
// operations. Pass nil to disable metrics collection.
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithParallelism configures the number of worker goroutines used by the
// parallel filter pass.
//
// If n <= 0, GOMAXPROCS is used. n == 1 disables fan-out entirely.
// Parallelism is an optimization only: the result order never depends on it.
func WithParallelism(n int) Option {
	return func(o *options) {
		o.numWorkers = n
	}
}

// WithParallelThreshold sets the dataset size below which search stays
// sequential. Mostly useful in tests to force the parallel path on small
// fixtures.
func WithParallelThreshold(n int) Option {
	return func(o *options) {
		o.parallelThreshold = n
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		logger:            NoopLogger(),
		metricsCollector:  NoopMetricsCollector{},
		parallelThreshold: defaultParallelThreshold,
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
