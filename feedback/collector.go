package feedback

import "github.com/prometheus/client_golang/prometheus"

var (
	sitesDesc = prometheus.NewDesc("cmpfuzz_feedback_sites",
		"Number of feedback slots holding a non-zero comparison score.", nil, nil)
	progressDesc = prometheus.NewDesc("cmpfuzz_feedback_progress_total",
		"Sum of comparison score increases since the table was last reset.", nil, nil)
	maxScoreDesc = prometheus.NewDesc("cmpfuzz_feedback_max_score",
		"Highest comparison score held by any slot.", nil, nil)
)

// Collector exports a Table to Prometheus.
type Collector struct {
	t *Table
}

func NewCollector(t *Table) *Collector {
	return &Collector{t: t}
}

func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- sitesDesc
	ch <- progressDesc
	ch <- maxScoreDesc
}

func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(sitesDesc, prometheus.GaugeValue, float64(c.t.Sites()))
	ch <- prometheus.MustNewConstMetric(progressDesc, prometheus.CounterValue, float64(c.t.Progress()))
	ch <- prometheus.MustNewConstMetric(maxScoreDesc, prometheus.GaugeValue, float64(c.t.Max()))
}
