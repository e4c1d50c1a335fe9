package metrics

import (
	"sort"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/philipp01105/sblog/handler"
)

// Collector exports handler statistics as Prometheus counters
type Collector struct {
	mu       sync.RWMutex
	handlers map[string]handler.StatsProvider

	written  *prometheus.Desc
	filtered *prometheus.Desc
	failed   *prometheus.Desc
}

// NewCollector creates a collector whose metric names start with namespace
func NewCollector(namespace string) *Collector {
	labels := []string{"handler"}
	return &Collector{
		handlers: make(map[string]handler.StatsProvider),
		written: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "records", "written_total"),
			"Total number of log records written by the handler",
			labels, nil,
		),
		filtered: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "records", "filtered_total"),
			"Total number of log records rejected by the handler filter",
			labels, nil,
		),
		failed: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "records", "failed_total"),
			"Total number of log records the handler failed to write",
			labels, nil,
		),
	}
}

// Register adds a handler under name, replacing any previous one
func (c *Collector) Register(name string, p handler.StatsProvider) {
	c.mu.Lock()
	c.handlers[name] = p
	c.mu.Unlock()
}

// Unregister removes the handler registered under name
func (c *Collector) Unregister(name string) {
	c.mu.Lock()
	delete(c.handlers, name)
	c.mu.Unlock()
}

// Describe implements prometheus.Collector
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.written
	ch <- c.filtered
	ch <- c.failed
}

// Collect implements prometheus.Collector
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.mu.RLock()
	names := make([]string, 0, len(c.handlers))
	for name := range c.handlers {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		s := c.handlers[name].Stats()
		ch <- prometheus.MustNewConstMetric(c.written, prometheus.CounterValue, float64(s.Written), name)
		ch <- prometheus.MustNewConstMetric(c.filtered, prometheus.CounterValue, float64(s.Filtered), name)
		ch <- prometheus.MustNewConstMetric(c.failed, prometheus.CounterValue, float64(s.Failed), name)
	}
	c.mu.RUnlock()
}
