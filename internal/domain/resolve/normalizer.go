// Package resolve implements the microorganism name resolver: a staged,
// fuzzy matching pipeline that maps free-text or coded species descriptions
// onto canonical taxonomy identifiers.  The pipeline runs a fixed-precedence
// cascade of matching strategies per distinct input, consults the clinical
// override table before any general search, and optionally reclassifies
// resolved Staphylococci and Streptococci into clinically defined groups.
package resolve

import (
	"regexp"
	"strings"
)

// NormalForms holds the four derived forms of a raw input used for matching.
// All regex forms are anchored start-to-end when used for table lookups.
type NormalForms struct {
	// Trimmed is the input with every character outside [a-z0-9 ] removed,
	// whitespace collapsed, outer whitespace stripped, and the result
	// lower-cased.  "S. aureus" becomes "s aureus"; "E.coli" becomes "ecoli".
	Trimmed string

	// Collapsed is the Trimmed form with each internal space replaced by an
	// "any characters, then optional literal space" wildcard, so that an
	// abbreviated genus still matches the full name: "s aureus" matches
	// "Staphylococcus aureus".
	Collapsed string

	// Wildcarded is the Trimmed form with each internal space replaced by a
	// bare "any characters" wildcard; looser than Collapsed.
	Wildcarded string

	// SpeciesSuffixed is the Trimmed form with the literal " species"
	// appended, used to match genus-only input against the
	// genus-representative rows of the taxonomy table.
	SpeciesSuffixed string
}

// IsEmpty reports whether normalization stripped the input to nothing, in
// which case resolution is abandoned immediately.
func (f NormalForms) IsEmpty() bool {
	return f.Trimmed == ""
}

// Normalize derives the four match forms from a raw input string.
func Normalize(raw string) NormalForms {
	trimmed := trim(raw)
	tokens := strings.Split(trimmed, " ")
	forms := NormalForms{
		Trimmed:         trimmed,
		Collapsed:       strings.Join(tokens, `.* ?`),
		Wildcarded:      strings.Join(tokens, `.*`),
		SpeciesSuffixed: trimmed + " species",
	}
	return forms
}

// trim removes every character that is not a letter, digit or space,
// collapses whitespace runs, strips outer whitespace, and lower-cases.
func trim(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	lastSpace := true // swallow leading spaces
	for _, r := range strings.ToLower(raw) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastSpace = false
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			if !lastSpace {
				b.WriteByte(' ')
				lastSpace = true
			}
		}
	}
	return strings.TrimRight(b.String(), " ")
}

// anchored compiles expr with full-string anchors.  The expressions passed
// here are built from trimmed input (alphanumerics and spaces only) joined
// with fixed wildcard fragments, so compilation cannot fail on taxonomy
// input; a malformed expression would be a programming error.
func anchored(expr string) *regexp.Regexp {
	return regexp.MustCompile(`^` + expr + `$`)
}

// anchoredStart compiles expr anchored at the start only.
func anchoredStart(expr string) *regexp.Regexp {
	return regexp.MustCompile(`^` + expr)
}

// wildcardOf turns a space-separated phrase into a loose-wildcard regex
// fragment (spaces become ".*").
func wildcardOf(phrase string) string {
	return strings.Join(strings.Split(phrase, " "), `.*`)
}
