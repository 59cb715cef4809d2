// Package metrics exports a filled histogram in the Prometheus text
// exposition format, for pickup by the node_exporter textfile collector.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/agbru/binhist/internal/histogram"
	"github.com/agbru/binhist/internal/ingest"
)

const namespace = "binhist"

// HistogramCollector is a prometheus.Collector that exposes a finished
// histogram and its ingest counters as constant metrics.
type HistogramCollector struct {
	h     *histogram.Histogram
	stats ingest.Stats

	valuesDesc  *prometheus.Desc
	linesDesc   *prometheus.Desc
	blankDesc   *prometheus.Desc
	elapsedDesc *prometheus.Desc
	binsDesc    *prometheus.Desc
}

// NewHistogramCollector creates a collector for h and the stats of the read
// that filled it.
func NewHistogramCollector(h *histogram.Histogram, stats ingest.Stats) *HistogramCollector {
	return &HistogramCollector{
		h:     h,
		stats: stats,
		valuesDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "values"),
			"Distribution of accepted integer input values. Bins are half-open [lo, hi), so each le bound is hi-1.",
			nil, nil,
		),
		linesDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "input", "lines_total"),
			"Number of input lines read.",
			nil, nil,
		),
		blankDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "input", "blank_lines_total"),
			"Number of blank input lines skipped.",
			nil, nil,
		),
		elapsedDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "ingest", "duration_seconds"),
			"Wall time spent reading the input.",
			nil, nil,
		),
		binsDesc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "bins"),
			"Number of configured bins.",
			nil, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *HistogramCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.valuesDesc
	ch <- c.linesDesc
	ch <- c.blankDesc
	ch <- c.elapsedDesc
	ch <- c.binsDesc
}

// Collect implements prometheus.Collector.
func (c *HistogramCollector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstHistogram(c.valuesDesc, c.h.Total(), c.h.Sum(), Buckets(c.h))
	ch <- prometheus.MustNewConstMetric(c.linesDesc, prometheus.CounterValue, float64(c.stats.Lines))
	ch <- prometheus.MustNewConstMetric(c.blankDesc, prometheus.CounterValue, float64(c.stats.Blank))
	ch <- prometheus.MustNewConstMetric(c.elapsedDesc, prometheus.GaugeValue, c.stats.Elapsed.Seconds())
	ch <- prometheus.MustNewConstMetric(c.binsDesc, prometheus.GaugeValue, float64(c.h.Layout().Bins))
}

// Buckets converts the per-bin counts of h into cumulative Prometheus
// buckets. Bins are half-open over integers, so bin i maps to the inclusive
// bound Upper(i)-1. The last bin is open-ended and is covered by the implicit
// +Inf bucket. Bins sharing a bound (zero width) collapse into one bucket
// holding the larger cumulative count.
func Buckets(h *histogram.Histogram) map[float64]uint64 {
	layout := h.Layout()
	counts := h.Counts()
	buckets := make(map[float64]uint64, len(counts))
	var cum uint64
	for i := 0; i < len(counts)-1; i++ {
		cum += counts[i]
		buckets[float64(layout.Upper(i))-1] = cum
	}
	return buckets
}
