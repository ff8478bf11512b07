package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_Trimmed(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Staphylococcus aureus", "staphylococcus aureus"},
		{"S. aureus", "s aureus"},
		{"  S.  aureus  ", "s aureus"},
		{"E.coli", "ecoli"},
		{"coagulase-negative", "coagulasenegative"},
		{"MRSA", "mrsa"},
		{"??!", ""},
		{"", ""},
		{"Gram-negative rods", "gramnegative rods"},
	}
	for _, tc := range tests {
		got := Normalize(tc.in)
		assert.Equal(t, tc.want, got.Trimmed, "input %q", tc.in)
	}
}

func TestNormalize_DerivedForms(t *testing.T) {
	f := Normalize("S aureus")
	assert.Equal(t, "s.* ?aureus", f.Collapsed)
	assert.Equal(t, "s.*aureus", f.Wildcarded)
	assert.Equal(t, "s aureus species", f.SpeciesSuffixed)
}

func TestNormalize_SingleToken(t *testing.T) {
	f := Normalize("Klebsiella")
	assert.Equal(t, "klebsiella", f.Collapsed)
	assert.Equal(t, "klebsiella", f.Wildcarded)
	assert.Equal(t, "klebsiella species", f.SpeciesSuffixed)
}

func TestNormalize_EmptyDetection(t *testing.T) {
	assert.True(t, Normalize("  .,;  ").IsEmpty())
	assert.False(t, Normalize("x").IsEmpty())
}

func TestCollapsedForm_MatchesAbbreviatedGenus(t *testing.T) {
	f := Normalize("S aureus")
	re := anchored(f.Collapsed)
	assert.True(t, re.MatchString("staphylococcus aureus"))
	assert.False(t, re.MatchString("staphylococcus aureus something"))
}

func TestWildcardOf(t *testing.T) {
	assert.Equal(t, "negative.*rods", wildcardOf("negative rods"))
	assert.Equal(t, "klebsiella", wildcardOf("klebsiella"))
}
