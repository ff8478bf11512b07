package taxonomy

import (
	"context"

	"github.com/openamr/amr/pkg/types/mo"
)

// SiteCodes maps site-specific external codes (laboratory information
// system identifiers, legacy abbreviations) to canonical identifiers.
// Lookup is case-insensitive; keys are stored lower-case.
type SiteCodes map[string]mo.Code

// Lookup returns the identifier mapped to code, case-insensitively.
func (s SiteCodes) Lookup(code string) (mo.Code, bool) {
	c, ok := s[normalizeSiteCode(code)]
	return c, ok
}

// NewSiteCodes builds a SiteCodes table from raw pairs, lower-casing keys.
func NewSiteCodes(pairs map[string]mo.Code) SiteCodes {
	out := make(SiteCodes, len(pairs))
	for k, v := range pairs {
		out[normalizeSiteCode(k)] = v
	}
	return out
}

func normalizeSiteCode(code string) string {
	b := make([]byte, 0, len(code))
	for i := 0; i < len(code); i++ {
		c := code[i]
		if c >= 'A' && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c != ' ' {
			b = append(b, c)
		}
	}
	return string(b)
}

// Repository loads the reference taxonomy and the site code table from a
// backing store.  The PostgreSQL implementation lives in
// internal/infrastructure/database/postgres; tests and library consumers
// can use the embedded seed dataset instead.
type Repository interface {
	// LoadTable reads every taxonomy row and returns the indexed table.
	LoadTable(ctx context.Context) (*Table, error)

	// LoadSiteCodes reads the site-specific code mappings.
	LoadSiteCodes(ctx context.Context) (SiteCodes, error)
}
