package resolve

import (
	"context"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domresolve "github.com/openamr/amr/internal/domain/resolve"
	"github.com/openamr/amr/internal/domain/taxonomy"
	"github.com/openamr/amr/internal/infrastructure/monitoring/logging"
	"github.com/openamr/amr/internal/infrastructure/monitoring/prometheus"
	"github.com/openamr/amr/pkg/errors"
	"github.com/openamr/amr/pkg/types/mo"
)

type mapCache struct {
	mu      sync.Mutex
	entries map[string]mo.Code
	sets    int
}

func newMapCache() *mapCache {
	return &mapCache{entries: make(map[string]mo.Code)}
}

func (c *mapCache) Get(_ context.Context, key string) (mo.Code, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	code, ok := c.entries[key]
	return code, ok, nil
}

func (c *mapCache) Set(_ context.Context, key string, code mo.Code) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = code
	c.sets++
	return nil
}

func newTestService(t *testing.T, cache Cache, metrics *prometheus.Metrics) Service {
	t.Helper()
	table := taxonomy.SeedTable()
	resolver, err := domresolve.NewResolver(table, taxonomy.DefaultSiteCodes(), logging.NewNopLogger())
	require.NoError(t, err)
	return NewService(resolver, table, cache, metrics, logging.NewNopLogger())
}

func TestServiceResolve(t *testing.T) {
	svc := newTestService(t, nil, nil)

	result, err := svc.Resolve(context.Background(), &ResolveInput{
		Names: []string{"S. aureus", "E. coli", "no such organism", "S. aureus"},
	})
	require.NoError(t, err)
	assert.Equal(t, []mo.Code{"STAAUR", "ESCCOL", mo.CodeUnknown, "STAAUR"}, result.Codes)
	assert.Equal(t, []string{"no such organism"}, result.Unresolved)
}

func TestServiceResolveEmptyCall(t *testing.T) {
	svc := newTestService(t, nil, nil)

	_, err := svc.Resolve(context.Background(), &ResolveInput{})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeResolveEmptyCall))
}

func TestServiceResolveUsesCache(t *testing.T) {
	cache := newMapCache()
	svc := newTestService(t, cache, nil)

	first, err := svc.Resolve(context.Background(), &ResolveInput{Names: []string{"S. aureus"}})
	require.NoError(t, err)
	require.Equal(t, mo.Code("STAAUR"), first.Codes[0])
	require.Equal(t, 1, cache.sets)

	// Poison the cached entry to prove the second call reads the cache.
	for key := range cache.entries {
		cache.entries[key] = "POISON"
	}
	second, err := svc.Resolve(context.Background(), &ResolveInput{Names: []string{"S. aureus"}})
	require.NoError(t, err)
	assert.Equal(t, mo.Code("POISON"), second.Codes[0])
	assert.Equal(t, 1, cache.sets)
}

func TestServiceResolveSkipsCacheForUnresolved(t *testing.T) {
	cache := newMapCache()
	svc := newTestService(t, cache, nil)

	result, err := svc.Resolve(context.Background(), &ResolveInput{Names: []string{"???"}})
	require.NoError(t, err)
	assert.True(t, result.Codes[0].IsUnknown())
	assert.Zero(t, cache.sets)
}

func TestServiceResolveCacheKeyedByOptions(t *testing.T) {
	cache := newMapCache()
	svc := newTestService(t, cache, nil)
	ctx := context.Background()

	plain, err := svc.Resolve(ctx, &ResolveInput{Names: []string{"S. epidermidis"}})
	require.NoError(t, err)
	require.Equal(t, mo.Code("STAEPI"), plain.Codes[0])

	grouped, err := svc.Resolve(ctx, &ResolveInput{
		Names:   []string{"S. epidermidis"},
		Options: domresolve.Options{Coagulase: domresolve.CoagulaseGroupNegative},
	})
	require.NoError(t, err)
	assert.Equal(t, mo.CodeCoNS, grouped.Codes[0])
	assert.Equal(t, 2, cache.sets)
}

func TestServiceResolvePaired(t *testing.T) {
	svc := newTestService(t, nil, nil)
	ctx := context.Background()

	result, err := svc.ResolvePaired(ctx, &PairedInput{
		Genus:   []string{"Staphylococcus", "Klebsiella"},
		Species: []string{"aureus", "pneumoniae"},
	})
	require.NoError(t, err)
	assert.Equal(t, []mo.Code{"STAAUR", "KLEPNE"}, result.Codes)

	_, err = svc.ResolvePaired(ctx, &PairedInput{
		Genus:   []string{"Staphylococcus"},
		Species: []string{"aureus", "pneumoniae"},
	})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeResolvePairMismatch))
}

func TestServiceLookup(t *testing.T) {
	svc := newTestService(t, nil, nil)
	ctx := context.Background()

	org, err := svc.Lookup(ctx, "STAAUR")
	require.NoError(t, err)
	assert.Equal(t, "Staphylococcus aureus", org.Fullname)
	assert.Equal(t, "aureus", org.Species)

	_, err = svc.Lookup(ctx, "NOPE")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeNotFound))
}

func TestServiceMetrics(t *testing.T) {
	metrics := prometheus.NewMetrics("amr_test")
	svc := newTestService(t, newMapCache(), metrics)
	ctx := context.Background()

	_, err := svc.Resolve(ctx, &ResolveInput{Names: []string{"S. aureus", "???"}})
	require.NoError(t, err)
	_, err = svc.Resolve(ctx, &ResolveInput{Names: []string{"S. aureus"}})
	require.NoError(t, err)

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.ResolutionsTotal.WithLabelValues("resolved")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.ResolutionsTotal.WithLabelValues("unresolved")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.UnresolvedTotal))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.CacheHitsTotal))
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.CacheMissesTotal))
}
