package prometheus

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetrics(t *testing.T) {
	m := NewMetrics("amr")
	require.NotNil(t, m)

	m.ResolutionsTotal.WithLabelValues("resolved").Inc()
	m.ResolutionsTotal.WithLabelValues("resolved").Inc()
	m.ResolutionsTotal.WithLabelValues("unresolved").Inc()
	m.UnresolvedTotal.Inc()
	m.CacheHitsTotal.Add(3)
	m.CacheMissesTotal.Inc()
	m.ResolveDuration.Observe(0.002)
	m.ResolveBatchSize.Observe(4)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ResolutionsTotal.WithLabelValues("resolved")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ResolutionsTotal.WithLabelValues("unresolved")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.UnresolvedTotal))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.CacheHitsTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheMissesTotal))
}

func TestMetricsHandler(t *testing.T) {
	m := NewMetrics("amr")
	m.InterpretationsTotal.WithLabelValues("S").Inc()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	m.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "amr_interpretations_total")
	assert.Contains(t, rec.Body.String(), `value="S"`)
}

func TestMetricsDistinctRegistries(t *testing.T) {
	a := NewMetrics("amr")
	b := NewMetrics("amr")
	a.UnresolvedTotal.Inc()

	assert.Equal(t, 1.0, testutil.ToFloat64(a.UnresolvedTotal))
	assert.Equal(t, 0.0, testutil.ToFloat64(b.UnresolvedTotal))
}
