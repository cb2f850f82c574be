// Package prom exports classifier metrics to Prometheus.
//
//	reg := prometheus.NewRegistry()
//	mc, _ := prom.NewCollector(reg, "knn")
//	clf, _ := knn.New(knn.StringLabel, knn.WithMetricsCollector(mc))
package prom

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/RiswanBasha/knn"
)

var _ knn.MetricsCollector = (*Collector)(nil)

// Collector implements knn.MetricsCollector with Prometheus instruments.
type Collector struct {
	opLatency *prometheus.HistogramVec
	learned   *prometheus.CounterVec
	results   prometheus.Counter
	clears    prometheus.Counter
}

// NewCollector creates the instruments under namespace and registers them
// with reg.
func NewCollector(reg prometheus.Registerer, namespace string) (*Collector, error) {
	c := &Collector{
		opLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_latency_seconds",
			Help:      "Latency of classifier operations",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 10),
		}, []string{"op", "status"}),
		learned: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "learn_total",
			Help:      "Learn calls by outcome",
		}, []string{"outcome"}),
		results: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "classify_results_total",
			Help:      "Total results returned by classify",
		}),
		clears: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "clear_total",
			Help:      "Total state resets",
		}),
	}

	for _, col := range []prometheus.Collector{c.opLatency, c.learned, c.results, c.clears} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

// RecordLearn implements knn.MetricsCollector.
func (c *Collector) RecordLearn(d time.Duration, stored bool, err error) {
	c.opLatency.WithLabelValues("learn", status(err)).Observe(d.Seconds())

	outcome := "duplicate"
	switch {
	case err != nil:
		outcome = "error"
	case stored:
		outcome = "stored"
	}
	c.learned.WithLabelValues(outcome).Inc()
}

// RecordClassify implements knn.MetricsCollector.
func (c *Collector) RecordClassify(_ int, results int, d time.Duration, err error) {
	c.opLatency.WithLabelValues("classify", status(err)).Observe(d.Seconds())
	c.results.Add(float64(results))
}

// RecordClear implements knn.MetricsCollector.
func (c *Collector) RecordClear() {
	c.clears.Inc()
}
