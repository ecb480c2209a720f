package pub

import (
	metricsPkg "github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
	"github.com/go-kit/kit/metrics/prometheus"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
)

// Metrics contains metrics exposed by this package.
type Metrics struct {
	// Height of last published message
	PublicationHeight metricsPkg.Gauge

	// Size of publication queue
	PublicationQueueSize metricsPkg.Gauge

	// Time between publish this and the last block.
	PublicationBlockIntervalMs metricsPkg.Gauge

	// Time	used to publish block
	PublishBlockTimeMs metricsPkg.Gauge

	// num of ledger events published
	NumEvents metricsPkg.Counter

	// num of blocks whose events were dropped because the queue was full
	NumDroppedBlocks metricsPkg.Counter
}

// PrometheusMetrics returns Metrics build using Prometheus client library.
func PrometheusMetrics() *Metrics {
	return &Metrics{
		PublicationHeight: prometheus.NewGaugeFrom(stdprometheus.GaugeOpts{
			Subsystem: "publication",
			Name:      "height",
			Help:      "Height of last published messages",
		}, []string{}),
		PublicationQueueSize: prometheus.NewGaugeFrom(stdprometheus.GaugeOpts{
			Subsystem: "publication",
			Name:      "queue_size",
			Help:      "Size of publication queue",
		}, []string{}),
		PublicationBlockIntervalMs: prometheus.NewGaugeFrom(stdprometheus.GaugeOpts{
			Subsystem: "publication",
			Name:      "block_interval",
			Help:      "How often we publish a block (ms)",
		}, []string{}),
		PublishBlockTimeMs: prometheus.NewGaugeFrom(stdprometheus.GaugeOpts{
			Subsystem: "publication",
			Name:      "block_pub_time",
			Help:      "Time to publish the events of a block (ms)",
		}, []string{}),
		NumEvents: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Subsystem: "publication",
			Name:      "num_event",
			Help:      "Number of ledger events published",
		}, []string{}),
		NumDroppedBlocks: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Subsystem: "publication",
			Name:      "num_dropped_block",
			Help:      "Number of blocks whose events were dropped",
		}, []string{}),
	}
}

// NopMetrics returns no-op Metrics, for tests and nodes without a prometheus endpoint.
func NopMetrics() *Metrics {
	return &Metrics{
		PublicationHeight:          discard.NewGauge(),
		PublicationQueueSize:       discard.NewGauge(),
		PublicationBlockIntervalMs: discard.NewGauge(),
		PublishBlockTimeMs:         discard.NewGauge(),
		NumEvents:                  discard.NewCounter(),
		NumDroppedBlocks:           discard.NewCounter(),
	}
}
