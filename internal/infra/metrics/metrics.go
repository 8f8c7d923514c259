// Package metrics exposes Prometheus instrumentation for listing search.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "rentradar"

// SearchKind labels which search entry point produced an observation.
type SearchKind string

const (
	SearchKindFiltered SearchKind = "filtered"
	SearchKindNearby   SearchKind = "nearby"
)

// Outcome labels how a search request ended.
type Outcome string

const (
	OutcomeOK          Outcome = "ok"
	OutcomeInvalid     Outcome = "invalid"
	OutcomeUnavailable Outcome = "unavailable"
	OutcomeError       Outcome = "error"
)

// SearchMetrics holds the collectors recorded by the listing search use case.
type SearchMetrics struct {
	requests          *prometheus.CounterVec
	duration          *prometheus.HistogramVec
	candidatesScanned *prometheus.HistogramVec
	results           *prometheus.HistogramVec
	gatherer          prometheus.Gatherer
}

// NewRegistry returns a registry preloaded with the Go runtime and process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return reg
}

// NewSearchMetrics registers the search collectors on reg.
func NewSearchMetrics(reg *prometheus.Registry) *SearchMetrics {
	factory := promauto.With(reg)

	return &SearchMetrics{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "requests_total",
			Help:      "Total listing searches by kind and outcome",
		}, []string{"kind", "outcome"}),

		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "duration_seconds",
			Help:      "Listing search latency in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"kind"}),

		candidatesScanned: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "candidates_scanned",
			Help:      "Geotagged candidates evaluated per radius scan",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 9),
		}, []string{"kind"}),

		results: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "results",
			Help:      "Listings returned per search",
			Buckets:   []float64{0, 1, 5, 10, 20, 50, 100},
		}, []string{"kind"}),

		gatherer: reg,
	}
}

// ObserveRequest records the outcome and latency of one search.
func (m *SearchMetrics) ObserveRequest(kind SearchKind, outcome Outcome, elapsed time.Duration) {
	if m == nil {
		return
	}

	m.requests.WithLabelValues(string(kind), string(outcome)).Inc()
	m.duration.WithLabelValues(string(kind)).Observe(elapsed.Seconds())
}

// ObserveScan records how many candidates a radius scan evaluated.
func (m *SearchMetrics) ObserveScan(kind SearchKind, candidates int) {
	if m == nil {
		return
	}

	m.candidatesScanned.WithLabelValues(string(kind)).Observe(float64(candidates))
}

// ObserveResults records how many listings a search returned.
func (m *SearchMetrics) ObserveResults(kind SearchKind, count int) {
	if m == nil {
		return
	}

	m.results.WithLabelValues(string(kind)).Observe(float64(count))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *SearchMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
