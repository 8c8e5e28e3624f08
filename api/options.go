package api

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"
)

type options struct {
	logger    *slog.Logger
	registry  *prometheus.Registry
	rateLimit rate.Limit
	rateBurst int
	gzip      bool
}

// Option configures Server construction behavior.
type Option func(*options)

// WithLogger sets the logger used for request logging.
// If nil, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithPrometheus enables the /metrics endpoint and HTTP instrumentation
// on the given registry.
func WithPrometheus(reg *prometheus.Registry) Option {
	return func(o *options) {
		o.registry = reg
	}
}

// WithRateLimit enables a global request rate limit. limit is requests per
// second, burst the momentary allowance. Rejected requests receive a 429.
func WithRateLimit(limit float64, burst int) Option {
	return func(o *options) {
		o.rateLimit = rate.Limit(limit)
		if burst < 1 {
			burst = 1
		}
		o.rateBurst = burst
	}
}

// WithGzip enables transparent response compression for clients that
// accept it.
func WithGzip() Option {
	return func(o *options) {
		o.gzip = true
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		logger: slog.Default(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
