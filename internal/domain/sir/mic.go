package sir

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Operator is the comparison prefix of an MIC value.
type Operator string

const (
	OpEqual          Operator = "="
	OpLess           Operator = "<"
	OpLessOrEqual    Operator = "<="
	OpGreater        Operator = ">"
	OpGreaterOrEqual Operator = ">="
)

// MIC is a minimum inhibitory concentration in mg/L: a comparison operator
// and a concentration.  Laboratory instruments report censored values at the
// edges of the tested dilution range, hence the operator.
type MIC struct {
	Op    Operator
	Value float64
}

func (m MIC) String() string {
	if m.Op == OpEqual {
		return trimFloat(m.Value)
	}
	return string(m.Op) + trimFloat(m.Value)
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// micPattern accepts an optional comparison operator, optional spacing, and
// a decimal number with either a dot or a comma separator.
var micPattern = regexp.MustCompile(`^(<=|>=|<|>|=)? *(\d+(?:[.,]\d+)?)$`)

// micCeiling guards against implausible concentrations; the highest value
// on conventional two-fold dilution panels is 512 mg/L and censored reports
// stay within one step of it.
const micCeiling = 1024.0

// ParseMIC parses a single MIC value.  Invalid input reports false; callers
// treat that as a missing value, in line with the rest of the module.
func ParseMIC(raw string) (MIC, bool) {
	m := micPattern.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return MIC{}, false
	}

	num := strings.ReplaceAll(m[2], ",", ".")
	v, err := strconv.ParseFloat(num, 64)
	if err != nil || v <= 0 || v > micCeiling {
		return MIC{}, false
	}

	op := Operator(m[1])
	if op == "" {
		op = OpEqual
	}
	return MIC{Op: op, Value: v}, true
}

// OnDilutionSeries reports whether the MIC lies on the conventional two-fold
// dilution series anchored at 1 mg/L (…, 0.25, 0.5, 1, 2, 4, …), within a
// small tolerance.  Off-series values are usually transcription errors.
func (m MIC) OnDilutionSeries() bool {
	v := m.Value
	for v < 1 {
		v *= 2
	}
	for v > 1 {
		v /= 2
	}
	const tol = 1e-9
	return v > 1-tol && v < 1+tol
}

// MarshalText implements encoding.TextMarshaler for API responses.
func (m MIC) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *MIC) UnmarshalText(b []byte) error {
	parsed, ok := ParseMIC(string(b))
	if !ok {
		return fmt.Errorf("sir: invalid MIC value %q", string(b))
	}
	*m = parsed
	return nil
}
