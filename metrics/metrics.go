// Package metrics exports trace registry statistics as Prometheus
// metrics. Register the collector with any Prometheus registerer:
//
//	reg := trace.NewRegistry(logger)
//	rc.SetObserver(reg)
//	prometheus.MustRegister(metrics.NewCollector(reg))
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/wippyai/sharedref/trace"
)

const namespace = "sharedref"

// Collector is a prometheus.Collector over a trace.Registry.
type Collector struct {
	registry *trace.Registry

	liveBlocks *prometheus.Desc
	liveValues *prometheus.Desc
	acquired   *prometheus.Desc
	disposed   *prometheus.Desc
	freed      *prometheus.Desc
}

// NewCollector creates a collector reading from reg at scrape time.
func NewCollector(reg *trace.Registry) *Collector {
	return &Collector{
		registry: reg,
		liveBlocks: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "live_blocks"),
			"Ownership blocks not yet deallocated, weak-pinned blocks included.",
			nil, nil,
		),
		liveValues: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "live_values"),
			"Managed values not yet disposed.",
			nil, nil,
		),
		acquired: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "blocks_acquired_total"),
			"Ownership blocks ever created.",
			nil, nil,
		),
		disposed: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "values_disposed_total"),
			"Managed values disposed.",
			nil, nil,
		),
		freed: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "blocks_freed_total"),
			"Ownership blocks deallocated.",
			nil, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.liveBlocks
	ch <- c.liveValues
	ch <- c.acquired
	ch <- c.disposed
	ch <- c.freed
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	st := c.registry.Stats()
	ch <- prometheus.MustNewConstMetric(c.liveBlocks, prometheus.GaugeValue, float64(st.LiveBlocks))
	ch <- prometheus.MustNewConstMetric(c.liveValues, prometheus.GaugeValue, float64(st.LiveValues))
	ch <- prometheus.MustNewConstMetric(c.acquired, prometheus.CounterValue, float64(st.Acquired))
	ch <- prometheus.MustNewConstMetric(c.disposed, prometheus.CounterValue, float64(st.Disposed))
	ch <- prometheus.MustNewConstMetric(c.freed, prometheus.CounterValue, float64(st.Freed))
}
