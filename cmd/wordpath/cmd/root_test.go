package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordpath/builder"
)

// writeDictionary writes three words; with both degree bounds at 2 the
// graph is a triangle regardless of seed.
func writeDictionary(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "datos.txt")
	body := "casa: lugar para vivir\nsol: estrella\nperro: un animal\n"
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := NewRootCmd()
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), errOut.String(), err
}

func triangleArgs(t *testing.T, args ...string) []string {
	return append(args,
		"--dictionary", writeDictionary(t),
		"--min-degree", "2",
		"--max-degree", "2",
		"--format", "none",
	)
}

func TestRootCmd_DefaultSearch(t *testing.T) {
	// Given: a triangle dictionary and the default casa → perro query
	// When: running without a subcommand
	out, logs, err := execute(t, triangleArgs(t)...)

	// Then: the direct edge wins and the goal's definition is printed
	require.NoError(t, err)
	assert.Contains(t, out, `Searching from "casa" to "perro"...`)
	assert.Contains(t, out, "visit casa (accumulated cost=0)")
	assert.Contains(t, out, "casa → perro")
	assert.Contains(t, out, "Total cost: 552")
	assert.Contains(t, out, "Definition: un animal")
	assert.Contains(t, logs, "search_finished")
}

func TestSearchCmd_ExplicitWords(t *testing.T) {
	out, _, err := execute(t, triangleArgs(t, "search", "sol", "casa")...)

	require.NoError(t, err)
	assert.Contains(t, out, "sol → casa")
	assert.Contains(t, out, "Total cost: 408")
	assert.Contains(t, out, "Definition: lugar para vivir")
}

func TestSearchCmd_NotFoundIsNotAnError(t *testing.T) {
	// Goal outside the dictionary: the component is exhausted.
	out, _, err := execute(t, triangleArgs(t, "search", "casa", "luna")...)
	require.NoError(t, err)
	assert.Contains(t, out, `No route found to "luna".`)

	// Start outside the dictionary.
	out, logs, err := execute(t, triangleArgs(t, "search", "luna", "casa")...)
	require.NoError(t, err)
	assert.Contains(t, out, `No route found to "casa".`)
	assert.Contains(t, logs, "start_not_found")
}

func TestSearchCmd_ArgCount(t *testing.T) {
	_, _, err := execute(t, triangleArgs(t, "search", "casa")...)
	require.Error(t, err)
}

func TestSearchCmd_Metrics(t *testing.T) {
	out, _, err := execute(t, triangleArgs(t, "search", "--metrics")...)

	require.NoError(t, err)
	assert.Contains(t, out, "wordpath_graph_builds_total 1")
	assert.Contains(t, out, "wordpath_graph_edges 3")
	assert.Contains(t, out, `wordpath_searches_total{outcome="found"} 1`)
}

func TestSearchCmd_InvalidDegreeRange(t *testing.T) {
	// Three words cannot give anyone three distinct neighbors.
	args := triangleArgs(t, "search")
	args = append(args, "--max-degree", "3")

	_, _, err := execute(t, args...)
	require.ErrorIs(t, err, builder.ErrInvalidDegreeRange)
}

func TestSearchCmd_MissingDictionary(t *testing.T) {
	_, _, err := execute(t, "search", "--dictionary", filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
}

func TestGraphCmd_Formats(t *testing.T) {
	args := triangleArgs(t, "graph")
	args = append(args, "--format", "dot")
	out, _, err := execute(t, args...)
	require.NoError(t, err)
	assert.Contains(t, out, "graph wordpath {")
	assert.Contains(t, out, `"casa" -- "perro"`)

	target := filepath.Join(t.TempDir(), "words.mmd")
	args = triangleArgs(t, "graph")
	args = append(args, "--format", "mermaid", "--output", target)
	_, _, err = execute(t, args...)
	require.NoError(t, err)
	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(data), "graph LR")

	args = triangleArgs(t, "graph")
	args = append(args, "--format", "text")
	out, _, err = execute(t, args...)
	require.NoError(t, err)
	assert.Contains(t, out, "casa (408): ")
}

func TestGraphCmd_BadFormat(t *testing.T) {
	args := triangleArgs(t, "graph")
	args = append(args, "--format", "png")
	_, _, err := execute(t, args...)
	require.Error(t, err)
}

func TestCostCmd(t *testing.T) {
	out, _, err := execute(t, "cost", "casa", "sol")
	require.NoError(t, err)
	assert.Equal(t, "casa\t408\nsol\t334\n", out)
}

func TestVersionCmd(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "wordpath "+Version)

	out, _, err = execute(t, "version", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"version": "`+Version+`"`)
}
