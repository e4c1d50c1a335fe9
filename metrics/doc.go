// Package metrics exposes handler statistics to Prometheus.
//
// Every handler built on handler.Base counts the records it wrote, the
// records its filter rejected and the writes that failed. A Collector
// reads those counters at scrape time:
//
//	c := metrics.NewCollector("sblog")
//	c.Register("file", fileHandler)
//	prometheus.MustRegister(c)
//
// The resulting series are sblog_records_written_total,
// sblog_records_filtered_total and sblog_records_failed_total, each
// labelled with the handler name.
package metrics
