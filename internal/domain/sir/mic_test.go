package sir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMIC(t *testing.T) {
	tests := []struct {
		in   string
		want MIC
		ok   bool
	}{
		{"2", MIC{OpEqual, 2}, true},
		{"=2", MIC{OpEqual, 2}, true},
		{"0.25", MIC{OpEqual, 0.25}, true},
		{"0,5", MIC{OpEqual, 0.5}, true},
		{"<=0.5", MIC{OpLessOrEqual, 0.5}, true},
		{">= 16", MIC{OpGreaterOrEqual, 16}, true},
		{">256", MIC{OpGreater, 256}, true},
		{"<0.0625", MIC{OpLess, 0.0625}, true},
		{" 4 ", MIC{OpEqual, 4}, true},
		{"", MIC{}, false},
		{"abc", MIC{}, false},
		{"-2", MIC{}, false},
		{"0", MIC{}, false},
		{"99999", MIC{}, false},
		{"=<2", MIC{}, false},
	}
	for _, tc := range tests {
		got, ok := ParseMIC(tc.in)
		assert.Equal(t, tc.ok, ok, "input %q", tc.in)
		if tc.ok {
			assert.Equal(t, tc.want, got, "input %q", tc.in)
		}
	}
}

func TestMIC_String(t *testing.T) {
	assert.Equal(t, "2", MIC{OpEqual, 2}.String())
	assert.Equal(t, "<=0.5", MIC{OpLessOrEqual, 0.5}.String())
	assert.Equal(t, ">256", MIC{OpGreater, 256}.String())
}

func TestMIC_OnDilutionSeries(t *testing.T) {
	on := []float64{0.0625, 0.125, 0.25, 0.5, 1, 2, 4, 8, 16, 32, 64, 128, 256, 512}
	for _, v := range on {
		assert.True(t, MIC{OpEqual, v}.OnDilutionSeries(), "value %v", v)
	}
	off := []float64{0.3, 3, 5, 6, 12, 100}
	for _, v := range off {
		assert.False(t, MIC{OpEqual, v}.OnDilutionSeries(), "value %v", v)
	}
}

func TestMIC_TextRoundTrip(t *testing.T) {
	var m MIC
	require.NoError(t, m.UnmarshalText([]byte(">=16")))
	assert.Equal(t, MIC{OpGreaterOrEqual, 16}, m)

	b, err := m.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, ">=16", string(b))

	assert.Error(t, m.UnmarshalText([]byte("bogus")))
}
