package taxonomy

import (
	"sort"
	"strings"

	"github.com/openamr/amr/pkg/errors"
	"github.com/openamr/amr/pkg/types/mo"
)

// Table is the immutable, in-memory reference taxonomy.  It keeps the
// records in canonical order (alphabetical by full name, case-insensitive)
// and maintains unique indexes on Code and Fullname.
//
// Every name-search rung of the resolver scans the canonical order and takes
// the first match, which makes resolution deterministic; callers must not
// assume any other tie-break.
type Table struct {
	records    []Record
	byCode     map[mo.Code]int
	byFullname map[string]int
}

// NewTable validates and indexes the given records.  The two table
// invariants are enforced here: Code and Fullname must each be unique.
// Input order is irrelevant; the canonical order is established by sorting.
func NewTable(records []Record) (*Table, error) {
	if len(records) == 0 {
		return nil, errors.New(errors.CodeTaxonomyEmptyTable, "reference taxonomy is empty")
	}

	sorted := make([]Record, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return strings.ToLower(sorted[i].Fullname) < strings.ToLower(sorted[j].Fullname)
	})

	t := &Table{
		records:    sorted,
		byCode:     make(map[mo.Code]int, len(sorted)),
		byFullname: make(map[string]int, len(sorted)),
	}
	for i, r := range sorted {
		if _, dup := t.byCode[r.Code]; dup {
			return nil, errors.Newf(errors.CodeTaxonomyDuplicateIdentifier,
				"duplicate identifier %q", r.Code)
		}
		key := strings.ToLower(r.Fullname)
		if _, dup := t.byFullname[key]; dup {
			return nil, errors.Newf(errors.CodeTaxonomyDuplicateFullname,
				"duplicate fullname %q", r.Fullname)
		}
		t.byCode[r.Code] = i
		t.byFullname[key] = i
	}
	return t, nil
}

// Len returns the number of records, placeholders included.
func (t *Table) Len() int {
	return len(t.records)
}

// ByCode returns the record with the given identifier.  The lookup is
// case-sensitive: identifiers are canonical upper-case codes.
func (t *Table) ByCode(code mo.Code) (Record, bool) {
	i, ok := t.byCode[code]
	if !ok {
		return Record{}, false
	}
	return t.records[i], true
}

// ByFullname returns the record whose full name equals name
// (case-insensitive).  Family placeholder rows are excluded, matching their
// exclusion from every other name search path.
func (t *Table) ByFullname(name string) (Record, bool) {
	i, ok := t.byFullname[strings.ToLower(name)]
	if !ok || t.records[i].IsFamilyPlaceholder() {
		return Record{}, false
	}
	return t.records[i], true
}

// FirstMatch scans the canonical order and returns the first non-placeholder
// record for which match returns true.
func (t *Table) FirstMatch(match func(Record) bool) (Record, bool) {
	for _, r := range t.records {
		if r.IsFamilyPlaceholder() {
			continue
		}
		if match(r) {
			return r, true
		}
	}
	return Record{}, false
}

// Records returns the records in canonical order.  The returned slice is a
// copy; the table itself cannot be mutated after construction.
func (t *Table) Records() []Record {
	out := make([]Record, len(t.records))
	copy(out, t.records)
	return out
}
