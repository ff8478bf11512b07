// Package mo defines the microorganism identifier type and the clinically
// recognized group pseudo-identifiers shared by all layers of the module.
package mo

// Code is the short fixed-format identifier naming one taxonomy row or one
// clinically recognized group.  Species rows use a six-letter code built from
// three letters of the genus and three of the species ("STAAUR" for
// Staphylococcus aureus); genus-representative rows end in "SPP"; family
// placeholder rows carry the "F_" prefix.
//
// The zero value is the missing-value marker produced for unresolved input.
type Code string

// CodeUnknown is the missing-value marker for input that could not be
// resolved.  It is never an error: callers receive it in-band together with
// an aggregated warning.
const CodeUnknown Code = ""

// Group pseudo-identifiers.  These are valid resolution results but are not
// literal rows of the taxonomy table.
const (
	// CodeCoNS and CodeCoPS are the coagulase-negative and
	// coagulase-positive Staphylococcus groups.
	CodeCoNS Code = "STACNS"
	CodeCoPS Code = "STACPS"

	// Lancefield serological groups of beta-haemolytic Streptococci.
	CodeLancefieldA Code = "STCGRA"
	CodeLancefieldB Code = "STCGRB"
	CodeLancefieldC Code = "STCGRC"
	CodeLancefieldF Code = "STCGRF"
	CodeLancefieldH Code = "STCGRH"
	CodeLancefieldK Code = "STCGRK"
)

// groupCodes is the set of pseudo-identifiers recognized alongside literal
// taxonomy rows.
var groupCodes = map[Code]bool{
	CodeCoNS:        true,
	CodeCoPS:        true,
	CodeLancefieldA: true,
	CodeLancefieldB: true,
	CodeLancefieldC: true,
	CodeLancefieldF: true,
	CodeLancefieldH: true,
	CodeLancefieldK: true,
}

// IsGroup reports whether c is a recognized group pseudo-identifier.
func (c Code) IsGroup() bool {
	return groupCodes[c]
}

// IsUnknown reports whether c is the missing-value marker.
func (c Code) IsUnknown() bool {
	return c == CodeUnknown
}

func (c Code) String() string {
	return string(c)
}

// FamilyPlaceholderPrefix marks synthetic "unidentified member of this
// family" rows.  Such rows are excluded from name search but remain valid
// resolution targets via identifier passthrough and site code lookup.
const FamilyPlaceholderPrefix = "F_"

// GramStain is the Gram stain classification carried by taxonomy records.
type GramStain string

const (
	GramUnknown  GramStain = ""
	GramPositive GramStain = "positive"
	GramNegative GramStain = "negative"
)

// Kingdom is the top taxonomic rank.
type Kingdom string

const (
	KingdomBacteria Kingdom = "Bacteria"
	KingdomFungi    Kingdom = "Fungi"
	KingdomProtozoa Kingdom = "Protozoa"
)
