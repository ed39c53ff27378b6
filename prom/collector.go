// Package prom implements vardata.MetricsCollector on top of Prometheus.
package prom

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Collector records column operations as Prometheus metrics.
type Collector struct {
	inserts     *prometheus.CounterVec
	gets        *prometheus.CounterVec
	flushes     *prometheus.CounterVec
	rotations   prometheus.Counter
	deletes     prometheus.Counter
	insertBytes prometheus.Counter
	flushBytes  prometheus.Counter
	insertDur   prometheus.Histogram
	getDur      prometheus.Histogram
	flushDur    prometheus.Histogram
}

// NewCollector creates a Collector registered with reg. The column label
// lets several columns share one registry.
func NewCollector(reg prometheus.Registerer, column string) *Collector {
	factory := promauto.With(reg)
	labels := prometheus.Labels{"column": column}

	return &Collector{
		inserts: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "vardata_inserts_total",
			Help:        "Total number of insert operations.",
			ConstLabels: labels,
		}, []string{"status"}),
		gets: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "vardata_gets_total",
			Help:        "Total number of get operations.",
			ConstLabels: labels,
		}, []string{"status"}),
		flushes: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "vardata_flushes_total",
			Help:        "Total number of buffer flushes, automatic and explicit.",
			ConstLabels: labels,
		}, []string{"status"}),
		rotations: factory.NewCounter(prometheus.CounterOpts{
			Name:        "vardata_segment_rotations_total",
			Help:        "Total number of active segment rotations.",
			ConstLabels: labels,
		}),
		deletes: factory.NewCounter(prometheus.CounterOpts{
			Name:        "vardata_deletes_total",
			Help:        "Total number of delete calls (no space is reclaimed).",
			ConstLabels: labels,
		}),
		insertBytes: factory.NewCounter(prometheus.CounterOpts{
			Name:        "vardata_insert_bytes_total",
			Help:        "Total payload bytes accepted by inserts.",
			ConstLabels: labels,
		}),
		flushBytes: factory.NewCounter(prometheus.CounterOpts{
			Name:        "vardata_flush_bytes_total",
			Help:        "Total buffered bytes persisted by flushes.",
			ConstLabels: labels,
		}),
		insertDur: factory.NewHistogram(prometheus.HistogramOpts{
			Name:        "vardata_insert_duration_seconds",
			Help:        "Insert latency, including synchronous flushes.",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}),
		getDur: factory.NewHistogram(prometheus.HistogramOpts{
			Name:        "vardata_get_duration_seconds",
			Help:        "Get latency.",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}),
		flushDur: factory.NewHistogram(prometheus.HistogramOpts{
			Name:        "vardata_flush_duration_seconds",
			Help:        "Flush latency, append and remap included.",
			ConstLabels: labels,
			Buckets:     prometheus.DefBuckets,
		}),
	}
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}

// RecordInsert implements vardata.MetricsCollector.
func (c *Collector) RecordInsert(n int, duration time.Duration, err error) {
	c.inserts.WithLabelValues(status(err)).Inc()
	c.insertDur.Observe(duration.Seconds())
	if err == nil {
		c.insertBytes.Add(float64(n))
	}
}

// RecordGet implements vardata.MetricsCollector.
func (c *Collector) RecordGet(n int, duration time.Duration, err error) {
	_ = n
	c.gets.WithLabelValues(status(err)).Inc()
	c.getDur.Observe(duration.Seconds())
}

// RecordFlush implements vardata.MetricsCollector.
func (c *Collector) RecordFlush(n int, duration time.Duration, err error) {
	c.flushes.WithLabelValues(status(err)).Inc()
	c.flushDur.Observe(duration.Seconds())
	if err == nil {
		c.flushBytes.Add(float64(n))
	}
}

// RecordRotation implements vardata.MetricsCollector.
func (c *Collector) RecordRotation() {
	c.rotations.Inc()
}

// RecordDelete implements vardata.MetricsCollector.
func (c *Collector) RecordDelete() {
	c.deletes.Inc()
}
