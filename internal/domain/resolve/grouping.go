package resolve

import (
	"strings"

	"github.com/openamr/amr/pkg/types/mo"
)

// CoagulaseMode controls reclassification of resolved Staphylococci into
// coagulase-status groups.
type CoagulaseMode int

const (
	// CoagulaseOff leaves species identifiers untouched.
	CoagulaseOff CoagulaseMode = iota

	// CoagulaseGroupNegative reassigns coagulase-negative species to the
	// CoNS group; coagulase-positive species keep their identifier.
	CoagulaseGroupNegative

	// CoagulaseGroupAll additionally reassigns S. aureus and the other
	// coagulase-positive species to the CoPS group.
	CoagulaseGroupAll
)

// Options are the per-call grouping flags of the resolution pipeline.
type Options struct {
	Coagulase  CoagulaseMode
	Lancefield bool
}

// coagulaseNegativeSpecies is the fixed enumeration of coagulase-negative
// Staphylococcus species.
var coagulaseNegativeSpecies = map[string]bool{
	"arlettae":        true,
	"auricularis":     true,
	"capitis":         true,
	"caprae":          true,
	"carnosus":        true,
	"cohnii":          true,
	"epidermidis":     true,
	"equorum":         true,
	"gallinarum":      true,
	"haemolyticus":    true,
	"hominis":         true,
	"kloosii":         true,
	"lentus":          true,
	"lugdunensis":     true,
	"pasteuri":        true,
	"saccharolyticus": true,
	"saprophyticus":   true,
	"sciuri":          true,
	"simulans":        true,
	"warneri":         true,
	"xylosus":         true,
}

// coagulasePositiveSpecies is the fixed enumeration of coagulase-positive
// Staphylococcus species, S. aureus included.
var coagulasePositiveSpecies = map[string]bool{
	"aureus":           true,
	"delphini":         true,
	"hyicus":           true,
	"intermedius":      true,
	"lutrae":           true,
	"pseudintermedius": true,
	"schleiferi":       true,
}

// lancefieldBySpecies maps Streptococcus species to their serological group.
// Species absent from the table keep their specific identifier; some
// officially belong to several groups and are deliberately not forced into
// one here.
var lancefieldBySpecies = map[string]mo.Code{
	"pyogenes":      mo.CodeLancefieldA,
	"agalactiae":    mo.CodeLancefieldB,
	"equisimilis":   mo.CodeLancefieldC,
	"equi":          mo.CodeLancefieldC,
	"zooepidemicus": mo.CodeLancefieldC,
	"dysgalactiae":  mo.CodeLancefieldC,
	"anginosus":     mo.CodeLancefieldF,
	"sanguis":       mo.CodeLancefieldH,
	"salivarius":    mo.CodeLancefieldK,
}

// Genus-specific identifier prefixes that gate grouping.
const (
	staphylococcusPrefix = "STA"
	streptococcusPrefix  = "STC"
)

// regroup applies the grouping classifier to an already-resolved identifier.
// This is the second stage of the two-pass design: base resolution always
// runs with grouping disabled, then the resolved identifier (never the raw
// input) decides the group.  Identifiers outside the gated genera, group
// pseudo-identifiers, and the missing marker pass through unchanged.
func (r *Resolver) regroup(code mo.Code, opts Options) mo.Code {
	if code.IsUnknown() || code.IsGroup() {
		return code
	}

	if opts.Coagulase != CoagulaseOff && strings.HasPrefix(string(code), staphylococcusPrefix) {
		if rec, ok := r.table.ByCode(code); ok {
			switch {
			case coagulaseNegativeSpecies[rec.Species]:
				return mo.CodeCoNS
			case opts.Coagulase == CoagulaseGroupAll && coagulasePositiveSpecies[rec.Species]:
				return mo.CodeCoPS
			}
		}
	}

	if opts.Lancefield && strings.HasPrefix(string(code), streptococcusPrefix) {
		if rec, ok := r.table.ByCode(code); ok {
			if group, ok := lancefieldBySpecies[rec.Species]; ok {
				return group
			}
		}
	}

	return code
}
