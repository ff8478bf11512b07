package resolve

import (
	"regexp"

	"github.com/openamr/amr/pkg/types/mo"
)

// The clinical override table: literal rules evaluated before any general
// taxonomy search.  Each rule short-circuits the rest of the cascade for the
// input it recognizes.  Patterns run against the Trimmed form, which is
// already lower-cased, so the expressions are written lower-case without a
// case flag.

// overrideRule maps one recognized input pattern to a fixed identifier.
type overrideRule struct {
	pattern *regexp.Regexp
	code    mo.Code
}

// disambiguationRules catch inputs that would otherwise match the wrong
// organism first under canonical table order.  The canonical example is
// abbreviated "E … coli": a plain fullname search would hit Entamoeba coli,
// which sorts before Escherichia coli, yet clinical input "E. coli" always
// means the latter.  Entamoeba coli remains reachable by its unabbreviated
// name.
var disambiguationRules = []overrideRule{
	{pattern: regexp.MustCompile(`^e ?coli$`), code: "ESCCOL"},
}

// coagulaseNegativeText recognizes free-text descriptions of the CoNS group.
// The optional space absorbs hyphenated spellings, whose hyphen is stripped
// by normalization ("coagulase-negative" trims to "coagulasenegative").
var coagulaseNegativeText = regexp.MustCompile(`^(cns|cons)$|coagulase ?negative`)

// acronymCodes maps well-known resistance acronyms to the organism they
// denote.  Lookup is exact on the Trimmed form.
var acronymCodes = map[string]mo.Code{
	// Methicillin/vancomycin-resistant or -intermediate S. aureus.
	"mrsa": "STAAUR",
	"visa": "STAAUR",
	"vrsa": "STAAUR",
	// Methicillin-resistant S. epidermidis.
	"mrse": "STAEPI",
	// Vancomycin-resistant enterococci: genus-level, species unknown.
	"vre": "ENCSPP",
	// Multi-resistant P. aeruginosa.
	"mrpa": "PSEAER",
	// Penicillin/vancomycin -intermediate/-resistant S. pneumoniae.
	"pisp": "STCPNE",
	"prsp": "STCPNE",
	"visp": "STCPNE",
	"vrsp": "STCPNE",
}
