package knn

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems; see
// package metrics/prom for a Prometheus implementation.
type MetricsCollector interface {
	// RecordLearn is called after each learn operation.
	// stored is false when the exemplar was already known or err is non-nil.
	RecordLearn(duration time.Duration, stored bool, err error)

	// RecordClassify is called after each classify operation.
	// results is the number of results returned.
	RecordClassify(maxResults, results int, duration time.Duration, err error)

	// RecordClear is called after each state reset.
	RecordClear()
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordLearn(time.Duration, bool, error)        {}
func (NoopMetricsCollector) RecordClassify(int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordClear()                                  {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	LearnCount         atomic.Int64
	LearnStored        atomic.Int64
	LearnErrors        atomic.Int64
	LearnTotalNanos    atomic.Int64
	ClassifyCount      atomic.Int64
	ClassifyErrors     atomic.Int64
	ClassifyResults    atomic.Int64
	ClassifyTotalNanos atomic.Int64
	ClearCount         atomic.Int64
}

// RecordLearn implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLearn(duration time.Duration, stored bool, err error) {
	b.LearnCount.Add(1)
	b.LearnTotalNanos.Add(duration.Nanoseconds())
	if stored {
		b.LearnStored.Add(1)
	}
	if err != nil {
		b.LearnErrors.Add(1)
	}
}

// RecordClassify implements MetricsCollector.
func (b *BasicMetricsCollector) RecordClassify(maxResults, results int, duration time.Duration, err error) {
	b.ClassifyCount.Add(1)
	b.ClassifyTotalNanos.Add(duration.Nanoseconds())
	b.ClassifyResults.Add(int64(results))
	if err != nil {
		b.ClassifyErrors.Add(1)
	}
}

// RecordClear implements MetricsCollector.
func (b *BasicMetricsCollector) RecordClear() {
	b.ClearCount.Add(1)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		LearnCount:       b.LearnCount.Load(),
		LearnStored:      b.LearnStored.Load(),
		LearnErrors:      b.LearnErrors.Load(),
		LearnAvgNanos:    avgNanos(&b.LearnTotalNanos, &b.LearnCount),
		ClassifyCount:    b.ClassifyCount.Load(),
		ClassifyErrors:   b.ClassifyErrors.Load(),
		ClassifyResults:  b.ClassifyResults.Load(),
		ClassifyAvgNanos: avgNanos(&b.ClassifyTotalNanos, &b.ClassifyCount),
		ClearCount:       b.ClearCount.Load(),
	}
}

func avgNanos(total, count *atomic.Int64) int64 {
	n := count.Load()
	if n == 0 {
		return 0
	}
	return total.Load() / n
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	LearnCount       int64
	LearnStored      int64
	LearnErrors      int64
	LearnAvgNanos    int64
	ClassifyCount    int64
	ClassifyErrors   int64
	ClassifyResults  int64
	ClassifyAvgNanos int64
	ClearCount       int64
}
