package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCommand()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestRootHelp(t *testing.T) {
	out, err := executeCommand(t, "--help")
	require.NoError(t, err)
	assert.Contains(t, out, "resolve")
	assert.Contains(t, out, "interpret")
	assert.Contains(t, out, "migrate")
}

func TestResolveCommand(t *testing.T) {
	out, err := executeCommand(t, "resolve", "S. aureus", "E. coli")
	require.NoError(t, err)
	assert.Contains(t, out, "STAAUR")
	assert.Contains(t, out, "ESCCOL")
}

func TestResolveCommandUnresolvedShowsDash(t *testing.T) {
	out, err := executeCommand(t, "resolve", "no such organism")
	require.NoError(t, err)
	assert.Contains(t, out, "-")
}

func TestResolveCommandJSON(t *testing.T) {
	out, err := executeCommand(t, "--json", "resolve", "MRSA")
	require.NoError(t, err)

	var result struct {
		Codes []string `json:"codes"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, []string{"STAAUR"}, result.Codes)
}

func TestResolveCommandCoagulase(t *testing.T) {
	out, err := executeCommand(t, "--json", "resolve", "--coagulase", "S. epidermidis")
	require.NoError(t, err)
	assert.Contains(t, out, "STACNS")
}

func TestResolveCommandLancefield(t *testing.T) {
	out, err := executeCommand(t, "--json", "resolve", "--lancefield", "S. pyogenes")
	require.NoError(t, err)
	assert.Contains(t, out, "STCGRA")
}

func TestResolveCommandRequiresArgs(t *testing.T) {
	_, err := executeCommand(t, "resolve")
	require.Error(t, err)
}

func TestLookupCommand(t *testing.T) {
	out, err := executeCommand(t, "lookup", "STAAUR")
	require.NoError(t, err)
	assert.Contains(t, out, "Staphylococcus aureus")

	_, err = executeCommand(t, "lookup", "NOPE")
	require.Error(t, err)
}

func TestInterpretCommand(t *testing.T) {
	out, err := executeCommand(t, "interpret", "S", "resistant", "bogus")
	require.NoError(t, err)
	assert.Contains(t, out, "R")
	assert.Contains(t, out, "-")
}

func TestMICCommand(t *testing.T) {
	out, err := executeCommand(t, "mic", "<=0.5", "not a mic")
	require.NoError(t, err)
	assert.Contains(t, out, "<=0.5")
	assert.Contains(t, out, "-")
}

func TestMICCommandJSON(t *testing.T) {
	out, err := executeCommand(t, "--json", "mic", "2")
	require.NoError(t, err)

	var results []struct {
		Valid            bool `json:"valid"`
		OnDilutionSeries bool `json:"on_dilution_series"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	assert.True(t, results[0].Valid)
	assert.True(t, results[0].OnDilutionSeries)
}
