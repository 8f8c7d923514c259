package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchMetrics_ObserveRequest(t *testing.T) {
	m := NewSearchMetrics(prometheus.NewRegistry())

	m.ObserveRequest(SearchKindNearby, OutcomeOK, 10*time.Millisecond)
	m.ObserveRequest(SearchKindNearby, OutcomeOK, 20*time.Millisecond)
	m.ObserveRequest(SearchKindFiltered, OutcomeUnavailable, time.Millisecond)

	assert.InDelta(t, 2, testutil.ToFloat64(m.requests.WithLabelValues("nearby", "ok")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.requests.WithLabelValues("filtered", "unavailable")), 0)
	assert.Equal(t, 2, testutil.CollectAndCount(m.duration))
}

func TestSearchMetrics_ObserveScanAndResults(t *testing.T) {
	m := NewSearchMetrics(prometheus.NewRegistry())

	m.ObserveScan(SearchKindFiltered, 120)
	m.ObserveResults(SearchKindFiltered, 7)

	assert.Equal(t, 1, testutil.CollectAndCount(m.candidatesScanned))
	assert.Equal(t, 1, testutil.CollectAndCount(m.results))
}

func TestSearchMetrics_NilReceiver(t *testing.T) {
	var m *SearchMetrics

	assert.NotPanics(t, func() {
		m.ObserveRequest(SearchKindNearby, OutcomeOK, time.Second)
		m.ObserveScan(SearchKindNearby, 1)
		m.ObserveResults(SearchKindNearby, 1)
	})
}

func TestSearchMetrics_Handler(t *testing.T) {
	m := NewSearchMetrics(NewRegistry())
	m.ObserveRequest(SearchKindNearby, OutcomeOK, time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `rentradar_search_requests_total{kind="nearby",outcome="ok"} 1`)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
