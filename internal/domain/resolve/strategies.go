package resolve

import (
	"strings"

	"github.com/openamr/amr/internal/domain/taxonomy"
	"github.com/openamr/amr/pkg/types/mo"
)

// query carries one normalized input through the cascade.
type query struct {
	raw   string
	forms NormalForms
	table *taxonomy.Table
	codes taxonomy.SiteCodes
}

// strategy is one rung of the resolution cascade.  Strategies are evaluated
// in fixed precedence until one succeeds; adding a disambiguation rule means
// inserting a strategy at the right priority, not editing branch logic.
type strategy interface {
	name() string
	resolve(q query) (mo.Code, bool)
}

// cascade returns the rungs in precedence order.
func cascade() []strategy {
	return []strategy{
		passthroughStrategy{},
		trapStrategy{},
		acronymStrategy{},
		coagulaseTextStrategy{},
		fullnameSearchStrategy{label: "fullname_collapsed", form: func(f NormalForms) string { return f.Collapsed }},
		fullnameSearchStrategy{label: "fullname_wildcard", form: func(f NormalForms) string { return f.Wildcarded }},
		genusExactStrategy{},
		genusWildcardStrategy{},
		siteCodeStrategy{},
		splitBridgeStrategy{},
		gramGroupStrategy{},
	}
}

// passthroughStrategy accepts input that already is a valid identifier (raw
// or trimmed), including the group pseudo-identifiers, which never appear as
// literal table rows.  This is the fastest rung and avoids all ambiguity.
type passthroughStrategy struct{}

func (passthroughStrategy) name() string { return "identifier_passthrough" }

func (passthroughStrategy) resolve(q query) (mo.Code, bool) {
	for _, cand := range []string{strings.TrimSpace(q.raw), q.forms.Trimmed} {
		code := mo.Code(strings.ToUpper(cand))
		if code.IsGroup() {
			return code, true
		}
		if rec, ok := q.table.ByCode(code); ok {
			return rec.Code, true
		}
	}
	return mo.CodeUnknown, false
}

// trapStrategy applies the disambiguation traps of the override table.
type trapStrategy struct{}

func (trapStrategy) name() string { return "disambiguation_trap" }

func (trapStrategy) resolve(q query) (mo.Code, bool) {
	for _, rule := range disambiguationRules {
		if rule.pattern.MatchString(q.forms.Trimmed) {
			return rule.code, true
		}
	}
	return mo.CodeUnknown, false
}

// acronymStrategy resolves well-known resistance acronyms (MRSA, VRE, …).
type acronymStrategy struct{}

func (acronymStrategy) name() string { return "acronym" }

func (acronymStrategy) resolve(q query) (mo.Code, bool) {
	code, ok := acronymCodes[q.forms.Trimmed]
	return code, ok
}

// coagulaseTextStrategy recognizes free-text CoNS descriptions.
type coagulaseTextStrategy struct{}

func (coagulaseTextStrategy) name() string { return "coagulase_negative_text" }

func (coagulaseTextStrategy) resolve(q query) (mo.Code, bool) {
	if coagulaseNegativeText.MatchString(q.forms.Trimmed) {
		return mo.CodeCoNS, true
	}
	return mo.CodeUnknown, false
}

// fullnameSearchStrategy searches the fullname column with an anchored
// regex derived from one of the normalized forms; first match under
// canonical table order wins.
type fullnameSearchStrategy struct {
	label string
	form  func(NormalForms) string
}

func (s fullnameSearchStrategy) name() string { return s.label }

func (s fullnameSearchStrategy) resolve(q query) (mo.Code, bool) {
	re := anchored(s.form(q.forms))
	rec, ok := q.table.FirstMatch(func(r taxonomy.Record) bool {
		return re.MatchString(strings.ToLower(r.Fullname))
	})
	if !ok {
		return mo.CodeUnknown, false
	}
	return rec.Code, true
}

// genusExactStrategy matches genus-only input against the "<genus> species"
// genus-representative rows by exact equality.  This rung exists so a bare
// genus resolves to its own representative row rather than to an unrelated
// genus that happens to match a partial wildcard earlier in table order.
type genusExactStrategy struct{}

func (genusExactStrategy) name() string { return "genus_representative_exact" }

func (genusExactStrategy) resolve(q query) (mo.Code, bool) {
	rec, ok := q.table.ByFullname(q.forms.SpeciesSuffixed)
	if !ok {
		return mo.CodeUnknown, false
	}
	return rec.Code, true
}

// genusWildcardStrategy is the loose variant of the rung above: the
// species-suffixed form searched with bare wildcards, so an abbreviated
// genus ("kleb") still reaches its representative row.
type genusWildcardStrategy struct{}

func (genusWildcardStrategy) name() string { return "genus_representative_wildcard" }

func (genusWildcardStrategy) resolve(q query) (mo.Code, bool) {
	re := anchored(wildcardOf(q.forms.SpeciesSuffixed))
	rec, ok := q.table.FirstMatch(func(r taxonomy.Record) bool {
		return re.MatchString(strings.ToLower(r.Fullname))
	})
	if !ok {
		return mo.CodeUnknown, false
	}
	return rec.Code, true
}

// siteCodeStrategy consults the site-specific external code table.
type siteCodeStrategy struct{}

func (siteCodeStrategy) name() string { return "site_code" }

func (siteCodeStrategy) resolve(q query) (mo.Code, bool) {
	if len(q.codes) == 0 {
		return mo.CodeUnknown, false
	}
	return q.codes.Lookup(q.forms.Trimmed)
}

// splitBridgeStrategy handles concatenated abbreviations ("klpn") by
// splitting the trimmed input at its midpoint and bridging the halves with
// "any characters, then a space": "klpn" searches "^kl.* pn", matching
// "Klebsiella pneumoniae".  The pattern is anchored at the start only.
type splitBridgeStrategy struct{}

func (splitBridgeStrategy) name() string { return "split_bridge" }

func (splitBridgeStrategy) resolve(q query) (mo.Code, bool) {
	in := q.forms.Trimmed
	if len(in) < 4 {
		// Halves of one letter match far too loosely to be useful.
		return mo.CodeUnknown, false
	}
	mid := len(in) / 2
	re := anchoredStart(in[:mid] + `.* ` + in[mid:])
	rec, ok := q.table.FirstMatch(func(r taxonomy.Record) bool {
		return re.MatchString(strings.ToLower(r.Fullname))
	})
	if !ok {
		return mo.CodeUnknown, false
	}
	return rec.Code, true
}

// gramGroupStrategy strips a leading "gram" token and retries a loose
// wildcard search, so "Gram negative rods" reaches the synthetic Gram-stain
// group rows ("Negative rods").
type gramGroupStrategy struct{}

func (gramGroupStrategy) name() string { return "gram_group" }

func (gramGroupStrategy) resolve(q query) (mo.Code, bool) {
	rest, found := strings.CutPrefix(q.forms.Trimmed, "gram")
	if !found {
		return mo.CodeUnknown, false
	}
	rest = strings.TrimSpace(rest)
	if rest == "" {
		return mo.CodeUnknown, false
	}
	re := anchored(wildcardOf(rest))
	rec, ok := q.table.FirstMatch(func(r taxonomy.Record) bool {
		return re.MatchString(strings.ToLower(r.Fullname))
	})
	if !ok {
		return mo.CodeUnknown, false
	}
	return rec.Code, true
}
