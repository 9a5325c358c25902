package concepts

import (
	"log/slog"
)

type options struct {
	metricsCollector MetricsCollector
	logger           *Logger
	infimumObjects   []string
}

// Option configures lattice construction behavior.
type Option func(*options)

// WithMetricsCollector configures a metrics collector for monitoring
// the build. Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &concepts.BasicMetricsCollector{}
//	lattice, _ := concepts.NewLattice(ctx, c, concepts.WithMetricsCollector(metrics))
//	stats := metrics.GetStats()
//	fmt.Printf("Closures: %d, Concepts: %d\n", stats.ClosureCount, stats.ConceptsTotal)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for the build.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := concepts.NewJSONLogger(slog.LevelInfo)
//	lattice, _ := concepts.NewLattice(ctx, c, concepts.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
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

// WithInfimumObjects restricts the build to the concepts at or above the
// closure of the given objects. The resulting lattice is the principal
// filter generated by that closure: its infimum is the closure itself
// and its supremum is the full-extent concept.
//
// Objects whose object concept lies outside the filter have no
// annotation in the restricted lattice.
func WithInfimumObjects(objects ...string) Option {
	return func(o *options) {
		o.infimumObjects = objects
	}
}

func applyOptions(optFns []Option) options {
	o := options{
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
