package resolve

import (
	"github.com/openamr/amr/internal/domain/taxonomy"
	"github.com/openamr/amr/internal/infrastructure/monitoring/logging"
	"github.com/openamr/amr/pkg/errors"
	"github.com/openamr/amr/pkg/types/mo"
)

// Outcome is the result of one resolution call.  Codes is parallel to the
// caller's input; Unresolved lists each distinct failing input once, in
// first-seen order.
type Outcome struct {
	Codes      []mo.Code
	Unresolved []string
}

// Resolver maps free-text or coded species descriptions onto canonical
// taxonomy identifiers.  It is immutable after construction and safe for
// concurrent use: each call only reads the shared reference table.
type Resolver struct {
	table      *taxonomy.Table
	codes      taxonomy.SiteCodes
	strategies []strategy
	log        logging.Logger
}

// NewResolver constructs a Resolver over the given reference table and
// optional site code table.  A nil logger falls back to the no-op logger.
func NewResolver(table *taxonomy.Table, codes taxonomy.SiteCodes, log logging.Logger) (*Resolver, error) {
	if table == nil || table.Len() == 0 {
		return nil, errors.New(errors.CodeTaxonomyEmptyTable, "resolver requires a loaded reference table")
	}
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Resolver{
		table:      table,
		codes:      codes,
		strategies: cascade(),
		log:        log.Named("resolve"),
	}, nil
}

// Resolve maps each input to an identifier (or the missing marker) in the
// same length and order as inputs.  Resolution runs once per distinct raw
// input and is broadcast back onto the full list; distinct inputs are keyed
// on the raw value, before normalization.  Unmatched input is never an
// error: it yields the missing marker and one aggregated warning per call.
// An empty call is a caller programming error and fails fast.
func (r *Resolver) Resolve(inputs []string, opts Options) (*Outcome, error) {
	if len(inputs) == 0 {
		return nil, errors.New(errors.CodeResolveEmptyCall, "no input supplied")
	}

	resolved := make(map[string]mo.Code, len(inputs))
	var unresolved []string

	for _, raw := range inputs {
		if _, seen := resolved[raw]; seen {
			continue
		}
		code, ok := r.resolveOne(raw)
		if ok {
			code = r.regroup(code, opts)
		} else {
			unresolved = append(unresolved, raw)
		}
		resolved[raw] = code
	}

	out := &Outcome{
		Codes:      make([]mo.Code, len(inputs)),
		Unresolved: unresolved,
	}
	for i, raw := range inputs {
		out.Codes[i] = resolved[raw]
	}

	if len(unresolved) > 0 {
		r.log.Warn("input could not be resolved to a taxonomy identifier",
			logging.Int("count", len(unresolved)),
			logging.Strings("input", unresolved))
	}
	return out, nil
}

// ResolvePaired concatenates parallel genus and species columns pairwise
// with a single space and resolves the combined names.  The columns must be
// of equal length.
func (r *Resolver) ResolvePaired(genus, species []string, opts Options) (*Outcome, error) {
	if len(genus) != len(species) {
		return nil, errors.Newf(errors.CodeResolvePairMismatch,
			"genus column has %d entries, species column %d", len(genus), len(species))
	}
	combined := make([]string, len(genus))
	for i := range genus {
		combined[i] = genus[i] + " " + species[i]
	}
	return r.Resolve(combined, opts)
}

// ResolveOne resolves a single input with grouping applied.  The boolean
// reports whether the input resolved; callers that need the aggregated
// failure channel use Resolve.
func (r *Resolver) ResolveOne(input string, opts Options) (mo.Code, bool) {
	code, ok := r.resolveOne(input)
	if !ok {
		return mo.CodeUnknown, false
	}
	return r.regroup(code, opts), true
}

// resolveOne runs the cascade for one raw input, grouping excluded.
func (r *Resolver) resolveOne(raw string) (mo.Code, bool) {
	forms := Normalize(raw)
	if forms.IsEmpty() {
		return mo.CodeUnknown, false
	}

	q := query{raw: raw, forms: forms, table: r.table, codes: r.codes}
	for _, s := range r.strategies {
		if code, ok := s.resolve(q); ok {
			r.log.Debug("resolved",
				logging.String("input", raw),
				logging.String("strategy", s.name()),
				logging.String("mo", code.String()))
			return code, true
		}
	}
	return mo.CodeUnknown, false
}
