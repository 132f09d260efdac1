package vecsdk

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    pollCounter  prometheus.Counter
//	    waitDuration prometheus.Histogram
//	}
//
//	func (p *PrometheusCollector) RecordWait(duration time.Duration, polls int, err error) {
//	    p.waitDuration.Observe(duration.Seconds())
//	}
type MetricsCollector interface {
	// RecordPoll is called after each status check of a long-running operation.
	// duration is the time the check took, err is nil if successful.
	RecordPoll(duration time.Duration, err error)

	// RecordWait is called once a wait finishes, times out or fails.
	// polls is the number of status checks performed.
	RecordWait(duration time.Duration, polls int, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordPoll(time.Duration, error)     {}
func (NoopMetricsCollector) RecordWait(time.Duration, int, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	PollCount      atomic.Int64
	PollErrors     atomic.Int64
	PollTotalNanos atomic.Int64
	WaitCount      atomic.Int64
	WaitErrors     atomic.Int64
	WaitTotalNanos atomic.Int64
	WaitPolls      atomic.Int64
}

// RecordPoll implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPoll(duration time.Duration, err error) {
	b.PollCount.Add(1)
	b.PollTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.PollErrors.Add(1)
	}
}

// RecordWait implements MetricsCollector.
func (b *BasicMetricsCollector) RecordWait(duration time.Duration, polls int, err error) {
	b.WaitCount.Add(1)
	b.WaitTotalNanos.Add(duration.Nanoseconds())
	b.WaitPolls.Add(int64(polls))
	if err != nil {
		b.WaitErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		PollCount:    b.PollCount.Load(),
		PollErrors:   b.PollErrors.Load(),
		PollAvgNanos: avg(b.PollTotalNanos.Load(), b.PollCount.Load()),
		WaitCount:    b.WaitCount.Load(),
		WaitErrors:   b.WaitErrors.Load(),
		WaitAvgNanos: avg(b.WaitTotalNanos.Load(), b.WaitCount.Load()),
		WaitPolls:    b.WaitPolls.Load(),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	PollCount    int64
	PollErrors   int64
	PollAvgNanos int64
	WaitCount    int64
	WaitErrors   int64
	WaitAvgNanos int64
	WaitPolls    int64
}
