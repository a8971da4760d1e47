package content

import "github.com/prometheus/client_golang/prometheus"

// loadMetrics are the Prometheus collectors updated by Provider loads.
type loadMetrics struct {
	loads     *prometheus.CounterVec
	duration  prometheus.Histogram
	documents prometheus.Gauge
	warnings  prometheus.Gauge
}

// newLoadMetrics creates and registers the collectors on reg.
func newLoadMetrics(reg prometheus.Registerer) *loadMetrics {
	m := &loadMetrics{
		loads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "folio",
				Subsystem: "catalog",
				Name:      "loads_total",
				Help:      "Catalog loads by result (ok, error).",
			},
			[]string{"result"},
		),
		duration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "folio",
				Subsystem: "catalog",
				Name:      "load_duration_seconds",
				Help:      "Time spent scanning and parsing the content store.",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
			},
		),
		documents: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "folio",
				Subsystem: "catalog",
				Name:      "documents",
				Help:      "Visible documents in the current catalog.",
			},
		),
		warnings: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "folio",
				Subsystem: "catalog",
				Name:      "warnings",
				Help:      "Documents skipped as malformed in the current catalog.",
			},
		),
	}
	reg.MustRegister(m.loads, m.duration, m.documents, m.warnings)
	return m
}

func (m *loadMetrics) observe(c *Catalog, seconds float64, err error) {
	if m == nil {
		return
	}
	m.duration.Observe(seconds)
	if err != nil {
		m.loads.WithLabelValues("error").Inc()
		return
	}
	m.loads.WithLabelValues("ok").Inc()
	m.documents.Set(float64(c.Len()))
	m.warnings.Set(float64(len(c.warnings)))
}
