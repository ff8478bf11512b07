// Package resolve provides the application-level service for microorganism
// name resolution. It sits between the HTTP/CLI interfaces and the domain
// resolver, adding caching and metrics on top of the domain logic.
package resolve

import (
	"context"
	"fmt"
	"time"

	domresolve "github.com/openamr/amr/internal/domain/resolve"
	"github.com/openamr/amr/internal/domain/taxonomy"
	"github.com/openamr/amr/internal/infrastructure/monitoring/logging"
	"github.com/openamr/amr/internal/infrastructure/monitoring/prometheus"
	"github.com/openamr/amr/pkg/errors"
	"github.com/openamr/amr/pkg/types/mo"
)

// Cache stores resolved codes keyed by input and resolution options.
// Implementations must be safe for concurrent use.
type Cache interface {
	Get(ctx context.Context, key string) (mo.Code, bool, error)
	Set(ctx context.Context, key string, code mo.Code) error
}

// Service defines the interface for resolution application operations.
type Service interface {
	Resolve(ctx context.Context, input *ResolveInput) (*ResolveResult, error)
	ResolvePaired(ctx context.Context, input *PairedInput) (*ResolveResult, error)
	Lookup(ctx context.Context, code string) (*Organism, error)
}

// ResolveInput contains input for a resolution call.
type ResolveInput struct {
	Names   []string
	Options domresolve.Options
}

// PairedInput contains separate genus and species vectors of equal length.
type PairedInput struct {
	Genus   []string
	Species []string
	Options domresolve.Options
}

// ResolveResult mirrors the domain outcome with per-input codes.
type ResolveResult struct {
	Codes      []mo.Code `json:"codes"`
	Unresolved []string  `json:"unresolved,omitempty"`
}

// Organism is the application-level DTO for a taxonomy record.
type Organism struct {
	Code     mo.Code `json:"code"`
	Fullname string  `json:"fullname"`
	Kingdom  string  `json:"kingdom"`
	Family   string  `json:"family,omitempty"`
	Genus    string  `json:"genus"`
	Species  string  `json:"species,omitempty"`
	Gram     string  `json:"gram,omitempty"`
	Authors  string  `json:"authors,omitempty"`
	Year     int     `json:"year,omitempty"`
}

// serviceImpl implements the Service interface.
type serviceImpl struct {
	resolver *domresolve.Resolver
	table    *taxonomy.Table
	cache    Cache
	metrics  *prometheus.Metrics
	logger   logging.Logger
}

// NewService creates a new resolution application service. Cache and metrics
// are optional and may be nil.
func NewService(resolver *domresolve.Resolver, table *taxonomy.Table, cache Cache, metrics *prometheus.Metrics, logger logging.Logger) Service {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	return &serviceImpl{
		resolver: resolver,
		table:    table,
		cache:    cache,
		metrics:  metrics,
		logger:   logger.Named("application.resolve"),
	}
}

func (s *serviceImpl) Resolve(ctx context.Context, input *ResolveInput) (*ResolveResult, error) {
	start := time.Now()

	cached := make(map[string]mo.Code)
	var misses []string
	seen := make(map[string]bool)
	for _, raw := range input.Names {
		if seen[raw] {
			continue
		}
		seen[raw] = true
		if code, ok := s.cacheGet(ctx, raw, input.Options); ok {
			cached[raw] = code
			continue
		}
		misses = append(misses, raw)
	}

	byRaw := cached
	var unresolved []string
	if len(misses) > 0 || len(input.Names) == 0 {
		outcome, err := s.resolver.Resolve(misses, input.Options)
		if err != nil {
			return nil, err
		}
		unresolved = outcome.Unresolved
		for i, raw := range misses {
			byRaw[raw] = outcome.Codes[i]
			if !outcome.Codes[i].IsUnknown() {
				s.cacheSet(ctx, raw, input.Options, outcome.Codes[i])
			}
		}
	}

	result := &ResolveResult{
		Codes:      make([]mo.Code, len(input.Names)),
		Unresolved: unresolved,
	}
	for i, raw := range input.Names {
		result.Codes[i] = byRaw[raw]
	}

	s.observe(result, time.Since(start))
	return result, nil
}

func (s *serviceImpl) ResolvePaired(ctx context.Context, input *PairedInput) (*ResolveResult, error) {
	if len(input.Genus) != len(input.Species) {
		return nil, errors.Newf(errors.CodeResolvePairMismatch,
			"genus and species vectors differ in length: %d vs %d", len(input.Genus), len(input.Species))
	}
	names := make([]string, len(input.Genus))
	for i := range input.Genus {
		names[i] = input.Genus[i] + " " + input.Species[i]
	}
	return s.Resolve(ctx, &ResolveInput{Names: names, Options: input.Options})
}

func (s *serviceImpl) Lookup(ctx context.Context, code string) (*Organism, error) {
	rec, ok := s.table.ByCode(mo.Code(code))
	if !ok {
		return nil, errors.NotFound(fmt.Sprintf("organism %q not found", code))
	}
	return recordToDTO(rec), nil
}

func (s *serviceImpl) cacheKey(raw string, opts domresolve.Options) string {
	forms := domresolve.Normalize(raw)
	return fmt.Sprintf("mo:%d:%t:%s", opts.Coagulase, opts.Lancefield, forms.Trimmed)
}

func (s *serviceImpl) cacheGet(ctx context.Context, raw string, opts domresolve.Options) (mo.Code, bool) {
	if s.cache == nil {
		return mo.CodeUnknown, false
	}
	code, ok, err := s.cache.Get(ctx, s.cacheKey(raw, opts))
	if err != nil {
		s.logger.Warn("cache lookup failed", logging.Err(err))
		return mo.CodeUnknown, false
	}
	if s.metrics != nil {
		if ok {
			s.metrics.CacheHitsTotal.Inc()
		} else {
			s.metrics.CacheMissesTotal.Inc()
		}
	}
	return code, ok
}

func (s *serviceImpl) cacheSet(ctx context.Context, raw string, opts domresolve.Options, code mo.Code) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, s.cacheKey(raw, opts), code); err != nil {
		s.logger.Warn("cache store failed", logging.Err(err))
	}
}

func (s *serviceImpl) observe(result *ResolveResult, elapsed time.Duration) {
	if s.metrics == nil {
		return
	}
	var resolved, unknown int
	for _, c := range result.Codes {
		if c.IsUnknown() {
			unknown++
		} else {
			resolved++
		}
	}
	s.metrics.ResolutionsTotal.WithLabelValues("resolved").Add(float64(resolved))
	s.metrics.ResolutionsTotal.WithLabelValues("unresolved").Add(float64(unknown))
	s.metrics.UnresolvedTotal.Add(float64(len(result.Unresolved)))
	s.metrics.ResolveDuration.Observe(elapsed.Seconds())
	s.metrics.ResolveBatchSize.Observe(float64(len(result.Codes)))
}

func recordToDTO(rec taxonomy.Record) *Organism {
	return &Organism{
		Code:     rec.Code,
		Fullname: rec.Fullname,
		Kingdom:  string(rec.Kingdom),
		Family:   rec.Family,
		Genus:    rec.Genus,
		Species:  rec.Species,
		Gram:     string(rec.Gram),
		Authors:  rec.Authors,
		Year:     rec.Year,
	}
}
