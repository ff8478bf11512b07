package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appresolve "github.com/openamr/amr/internal/application/resolve"
	domresolve "github.com/openamr/amr/internal/domain/resolve"
	"github.com/openamr/amr/internal/domain/sir"
	"github.com/openamr/amr/internal/domain/taxonomy"
	"github.com/openamr/amr/internal/infrastructure/monitoring/logging"
	"github.com/openamr/amr/internal/infrastructure/monitoring/prometheus"
	"github.com/openamr/amr/internal/interfaces/http/handlers"
)

func newTestRouter(t *testing.T, deps *RouterDeps) *gin.Engine {
	t.Helper()
	table := taxonomy.SeedTable()
	resolver, err := domresolve.NewResolver(table, taxonomy.DefaultSiteCodes(), logging.NewNopLogger())
	require.NoError(t, err)

	d := RouterDeps{
		Resolve:     appresolve.NewService(resolver, table, nil, nil, logging.NewNopLogger()),
		Interpreter: sir.NewInterpreter(logging.NewNopLogger()),
	}
	if deps != nil {
		if deps.Metrics != nil {
			d.Metrics = deps.Metrics
		}
		if deps.HealthChecks != nil {
			d.HealthChecks = deps.HealthChecks
		}
	}
	return NewRouter(gin.TestMode, d)
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestResolveEndpoint(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/resolve", map[string]interface{}{
		"names": []string{"S. aureus", "MRSA", "no such organism"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var result appresolve.ResolveResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "STAAUR", string(result.Codes[0]))
	assert.Equal(t, "STAAUR", string(result.Codes[1]))
	assert.Empty(t, string(result.Codes[2]))
	assert.Equal(t, []string{"no such organism"}, result.Unresolved)
}

func TestResolveEndpointCoagulaseOption(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/resolve", map[string]interface{}{
		"names":     []string{"S. epidermidis"},
		"coagulase": "negative",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var result appresolve.ResolveResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "STACNS", string(result.Codes[0]))
}

func TestResolveEndpointBadCoagulase(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/resolve", map[string]interface{}{
		"names":     []string{"S. aureus"},
		"coagulase": "sometimes",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "COMMON_002")
}

func TestResolveEndpointEmptyCall(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/resolve", map[string]interface{}{
		"names": []string{},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "RES_001")
}

func TestResolvePairedEndpoint(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/resolve/paired", map[string]interface{}{
		"genus":   []string{"Escherichia"},
		"species": []string{"coli"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ESCCOL")

	rec = doJSON(t, router, http.MethodPost, "/api/v1/resolve/paired", map[string]interface{}{
		"genus":   []string{"Escherichia", "Klebsiella"},
		"species": []string{"coli"},
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "RES_002")
}

func TestLookupEndpoint(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/organisms/STAAUR", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Staphylococcus aureus")

	rec = doJSON(t, router, http.MethodGet, "/api/v1/organisms/NOPE", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInterpretEndpoint(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/interpret", map[string]interface{}{
		"values": []string{"S", "susceptible", "R", "bogus"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Values          []string `json:"values"`
		Uninterpretable []string `json:"uninterpretable"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, []string{"S", "S", "R", ""}, resp.Values)
	assert.Equal(t, []string{"bogus"}, resp.Uninterpretable)
}

func TestParseMICEndpoint(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/mic/parse", map[string]interface{}{
		"values": []string{"<=0.5", "not a mic"},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"valid":true`)
	assert.Contains(t, rec.Body.String(), `"valid":false`)
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := doJSON(t, router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestHealthEndpointDegraded(t *testing.T) {
	router := newTestRouter(t, &RouterDeps{
		HealthChecks: map[string]handlers.HealthCheck{
			"postgres": func(context.Context) error { return errors.New("connection refused") },
		},
	})

	rec := doJSON(t, router, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "degraded")
}

func TestMetricsEndpoint(t *testing.T) {
	router := newTestRouter(t, &RouterDeps{Metrics: prometheus.NewMetrics("amr_http_test")})

	// Generate one request so the counter vector has something to report.
	doJSON(t, router, http.MethodPost, "/api/v1/resolve", map[string]interface{}{
		"names": []string{"S. aureus"},
	})

	rec := doJSON(t, router, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "amr_http_test_http_requests_total")
}
