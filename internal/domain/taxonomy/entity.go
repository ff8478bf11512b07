// Package taxonomy implements the reference taxonomy bounded context: the
// immutable table of known microorganisms that name resolution runs against.
// The table is loaded once at process start (from the embedded seed dataset
// or from PostgreSQL) and never mutated afterwards, so it is safe to share
// across goroutines without locking.
package taxonomy

import (
	"strings"

	"github.com/openamr/amr/pkg/types/mo"
)

// Record is one row of the reference taxonomy: a single known microorganism
// with its full classification.  Records are immutable value objects.
type Record struct {
	// Code is the unique short identifier ("STAAUR").
	Code mo.Code

	// Fullname is the unique "Genus species" name ("Staphylococcus aureus").
	// Genus-representative rows use the literal suffix " species"
	// ("Klebsiella species"); synthetic Gram-stain group rows carry a
	// descriptive name ("Negative rods").
	Fullname string

	Kingdom mo.Kingdom
	Phylum  string
	Class   string
	Order   string
	Family  string

	Genus      string
	Species    string
	Subspecies string

	Gram mo.GramStain

	// Authors and Year record the first valid publication of the name.
	Authors string
	Year    int
}

// IsFamilyPlaceholder reports whether the record is a synthetic
// "unidentified member of this family" row.  Placeholder rows are excluded
// from name search but remain valid resolution targets via identifier
// passthrough and site code lookup.
func (r Record) IsFamilyPlaceholder() bool {
	return strings.HasPrefix(string(r.Code), mo.FamilyPlaceholderPrefix)
}

// IsGenusRepresentative reports whether the record is a "Genus species" row
// denoting an unspecified species of its genus.
func (r Record) IsGenusRepresentative() bool {
	return r.Species == "species"
}
