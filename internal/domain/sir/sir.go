// Package sir implements interpretation of antimicrobial susceptibility test
// values: classifying free-text results into the S/I/R scale and parsing
// minimum inhibitory concentrations.  Like name resolution, interpretation
// is best-effort: dirty input yields a missing marker plus one aggregated
// warning, never an error.
package sir

import (
	"strings"

	"github.com/openamr/amr/internal/infrastructure/monitoring/logging"
	"github.com/openamr/amr/pkg/errors"
)

// Value is one interpretation on the S/I/R scale.  The zero value is the
// missing marker for input that could not be interpreted.
type Value string

const (
	Unknown      Value = ""
	Susceptible  Value = "S"
	Intermediate Value = "I"
	Resistant    Value = "R"
)

func (v Value) String() string { return string(v) }

// IsUnknown reports whether v is the missing marker.
func (v Value) IsUnknown() bool { return v == Unknown }

// synonyms maps cleaned free-text spellings to their interpretation.
var synonyms = map[string]Value{
	"s":            Susceptible,
	"susceptible":  Susceptible,
	"sensitive":    Susceptible,
	"i":            Intermediate,
	"intermediate": Intermediate,
	"interm":       Intermediate,
	"r":            Resistant,
	"resistant":    Resistant,
	"resist":       Resistant,
}

// Parse interprets a single free-text susceptibility value.  Matching is
// case-insensitive and tolerant of surrounding whitespace and punctuation.
func Parse(raw string) (Value, bool) {
	cleaned := strings.ToLower(strings.TrimFunc(raw, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z')
	}))
	v, ok := synonyms[cleaned]
	if !ok {
		return Unknown, false
	}
	return v, true
}

// Outcome is the result of one interpretation call; Values is parallel to
// the input, Uninterpretable lists each distinct failing input once.
type Outcome struct {
	Values          []Value
	Uninterpretable []string
}

// Interpreter classifies batches of susceptibility values.
type Interpreter struct {
	log logging.Logger
}

// NewInterpreter constructs an Interpreter.  A nil logger falls back to the
// no-op logger.
func NewInterpreter(log logging.Logger) *Interpreter {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &Interpreter{log: log.Named("sir")}
}

// Interpret classifies each input, preserving length and order.  Distinct
// failing inputs are reported once in the outcome and in one aggregated
// warning.  An empty call fails fast as caller misuse.
func (i *Interpreter) Interpret(inputs []string) (*Outcome, error) {
	if len(inputs) == 0 {
		return nil, errors.New(errors.CodeSIREmptyCall, "no input supplied")
	}

	out := &Outcome{Values: make([]Value, len(inputs))}
	seen := make(map[string]bool, len(inputs))
	for idx, raw := range inputs {
		v, ok := Parse(raw)
		out.Values[idx] = v
		if !ok && !seen[raw] {
			seen[raw] = true
			out.Uninterpretable = append(out.Uninterpretable, raw)
		}
	}

	if len(out.Uninterpretable) > 0 {
		i.log.Warn("input could not be interpreted as S/I/R",
			logging.Int("count", len(out.Uninterpretable)),
			logging.Strings("input", out.Uninterpretable))
	}
	return out, nil
}
