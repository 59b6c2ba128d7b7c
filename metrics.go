package diffindex

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordRun is called after each indexation run. positions is the
	// grid size, skipped the number of mask-disabled positions, duration
	// the total wall time; err is nil on success.
	RecordRun(positions, skipped int, duration time.Duration, err error)

	// RecordPosition is called after each matched position.
	RecordPosition(duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordRun(int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordPosition(time.Duration)             {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	RunCount           atomic.Int64
	RunErrors          atomic.Int64
	RunTotalNanos      atomic.Int64
	PositionCount      atomic.Int64
	SkippedCount       atomic.Int64
	PositionTotalNanos atomic.Int64
}

// RecordRun implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRun(positions, skipped int, duration time.Duration, err error) {
	b.RunCount.Add(1)
	b.RunTotalNanos.Add(duration.Nanoseconds())
	b.SkippedCount.Add(int64(skipped))
	if err != nil {
		b.RunErrors.Add(1)
	}
}

// RecordPosition implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPosition(duration time.Duration) {
	b.PositionCount.Add(1)
	b.PositionTotalNanos.Add(duration.Nanoseconds())
}

// AvgPositionNanos returns the average matching time per position.
func (b *BasicMetricsCollector) AvgPositionNanos() int64 {
	count := b.PositionCount.Load()
	if count == 0 {
		return 0
	}
	return b.PositionTotalNanos.Load() / count
}
