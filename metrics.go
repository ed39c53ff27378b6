package vardata

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems; the prom
// subpackage provides a Prometheus-backed implementation.
type MetricsCollector interface {
	// RecordInsert is called after each insert. n is the payload size in
	// bytes, err is nil on success.
	RecordInsert(n int, duration time.Duration, err error)

	// RecordGet is called after each read. n is the payload size in bytes.
	RecordGet(n int, duration time.Duration, err error)

	// RecordFlush is called after each flush, automatic or explicit.
	// n is the number of buffered bytes persisted.
	RecordFlush(n int, duration time.Duration, err error)

	// RecordRotation is called when a new active segment is started.
	RecordRotation()

	// RecordDelete is called for each delete call, even though deletion
	// does not reclaim space.
	RecordDelete()
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordInsert(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordGet(int, time.Duration, error)    {}
func (NoopMetricsCollector) RecordFlush(int, time.Duration, error)  {}
func (NoopMetricsCollector) RecordRotation()                        {}
func (NoopMetricsCollector) RecordDelete()                          {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging without external dependencies.
type BasicMetricsCollector struct {
	InsertCount      atomic.Int64
	InsertErrors     atomic.Int64
	InsertBytes      atomic.Int64
	InsertTotalNanos atomic.Int64
	GetCount         atomic.Int64
	GetErrors        atomic.Int64
	GetBytes         atomic.Int64
	GetTotalNanos    atomic.Int64
	FlushCount       atomic.Int64
	FlushErrors      atomic.Int64
	FlushBytes       atomic.Int64
	RotationCount    atomic.Int64
	DeleteCount      atomic.Int64
}

// RecordInsert implements MetricsCollector.
func (b *BasicMetricsCollector) RecordInsert(n int, duration time.Duration, err error) {
	b.InsertCount.Add(1)
	b.InsertTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.InsertErrors.Add(1)
		return
	}
	b.InsertBytes.Add(int64(n))
}

// RecordGet implements MetricsCollector.
func (b *BasicMetricsCollector) RecordGet(n int, duration time.Duration, err error) {
	b.GetCount.Add(1)
	b.GetTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.GetErrors.Add(1)
		return
	}
	b.GetBytes.Add(int64(n))
}

// RecordFlush implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFlush(n int, duration time.Duration, err error) {
	b.FlushCount.Add(1)
	if err != nil {
		b.FlushErrors.Add(1)
		return
	}
	b.FlushBytes.Add(int64(n))
}

// RecordRotation implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRotation() {
	b.RotationCount.Add(1)
}

// RecordDelete implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDelete() {
	b.DeleteCount.Add(1)
}
