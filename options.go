package diffindex

import (
	"runtime"

	"github.com/hupe1980/diffindex/resource"
)

type options struct {
	numWorkers       int
	logger           *Logger
	metricsCollector MetricsCollector
	controller       *resource.Controller
}

// Option configures an Indexer.
type Option func(*options)

func defaultOptions() options {
	return options{
		numWorkers:       runtime.GOMAXPROCS(0),
		logger:           NoopLogger(),
		metricsCollector: NoopMetricsCollector{},
	}
}

// WithWorkers sets the number of goroutines matching positions in
// parallel. Matching is CPU-bound, so GOMAXPROCS (the default) is usually
// right; numWorkers = 1 runs the grid sequentially and produces
// byte-identical results.
func WithWorkers(numWorkers int) Option {
	return func(o *options) {
		if numWorkers > 0 {
			o.numWorkers = numWorkers
		}
	}
}

// WithLogger configures structured logging for runs.
// Pass nil to keep logging disabled.
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMetricsCollector configures a metrics collector for monitoring runs.
func WithMetricsCollector(collector MetricsCollector) Option {
	return func(o *options) {
		if collector != nil {
			o.metricsCollector = collector
		}
	}
}

// WithResourceController binds the indexer to a shared resource
// controller. Each position acquires a worker slot before matching, so
// several runs sharing one controller stay within its CPU budget.
func WithResourceController(ctrl *resource.Controller) Option {
	return func(o *options) {
		o.controller = ctrl
	}
}
