package concepts

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting lattice build
// metrics. Implement this interface to integrate with monitoring
// systems like Prometheus.
type MetricsCollector interface {
	// RecordClosure is called for every doubleprime evaluation made
	// while generating concepts.
	RecordClosure()

	// RecordCandidate is called for every candidate upper neighbor;
	// kept reports whether it survived the minimality filter.
	RecordCandidate(kept bool)

	// RecordBuild is called once per lattice construction.
	// concepts is the number of concepts discovered, duration the total
	// build time, err is nil if successful.
	RecordBuild(concepts int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordClosure()                        {}
func (NoopMetricsCollector) RecordCandidate(bool)                  {}
func (NoopMetricsCollector) RecordBuild(int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	ClosureCount       atomic.Int64
	CandidatesKept     atomic.Int64
	CandidatesRejected atomic.Int64
	BuildCount         atomic.Int64
	BuildErrors        atomic.Int64
	BuildTotalNanos    atomic.Int64
	ConceptsTotal      atomic.Int64
}

// RecordClosure implements MetricsCollector.
func (b *BasicMetricsCollector) RecordClosure() {
	b.ClosureCount.Add(1)
}

// RecordCandidate implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCandidate(kept bool) {
	if kept {
		b.CandidatesKept.Add(1)
	} else {
		b.CandidatesRejected.Add(1)
	}
}

// RecordBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBuild(concepts int, duration time.Duration, err error) {
	b.BuildCount.Add(1)
	b.BuildTotalNanos.Add(duration.Nanoseconds())
	b.ConceptsTotal.Add(int64(concepts))
	if err != nil {
		b.BuildErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		ClosureCount:       b.ClosureCount.Load(),
		CandidatesKept:     b.CandidatesKept.Load(),
		CandidatesRejected: b.CandidatesRejected.Load(),
		BuildCount:         b.BuildCount.Load(),
		BuildErrors:        b.BuildErrors.Load(),
		BuildAvgNanos:      b.getAvgBuildNanos(),
		ConceptsTotal:      b.ConceptsTotal.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgBuildNanos() int64 {
	count := b.BuildCount.Load()
	if count == 0 {
		return 0
	}
	return b.BuildTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	ClosureCount       int64
	CandidatesKept     int64
	CandidatesRejected int64
	BuildCount         int64
	BuildErrors        int64
	BuildAvgNanos      int64
	ConceptsTotal      int64
}
