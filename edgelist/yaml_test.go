package edgelist_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/minpath/core"
	"github.com/katalvlaran/minpath/edgelist"
)

const yamlDoc = `edges:
  - {from: 1, to: 2, cost: 5}
  - from: 2
    to: 3
    cost: 5
  - {from: 1, to: 3}
  - {from: x, to: 3, cost: 1}
  - {from: 1, to: 3, cost: 20}
`

func TestParseYAML(t *testing.T) {
	edges, rep, err := edgelist.ParseYAML(strings.NewReader(yamlDoc))
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{From: 1, To: 2, Cost: 5}, {From: 2, To: 3, Cost: 5}, {From: 1, To: 3, Cost: 20}}, edges)
	assert.Equal(t, 5, rep.Lines)
	require.Len(t, rep.Skipped, 2)

	assert.Equal(t, 6, rep.Skipped[0].Line)
	assert.ErrorIs(t, rep.Skipped[0].Reason, edgelist.ErrFieldCount)
	assert.Equal(t, 7, rep.Skipped[1].Line)
	assert.ErrorIs(t, rep.Skipped[1].Reason, edgelist.ErrNotInteger)
}

func TestParseYAML_IssueTextIsOneLine(t *testing.T) {
	_, rep, err := edgelist.ParseYAML(strings.NewReader(yamlDoc))
	require.NoError(t, err)
	require.Len(t, rep.Skipped, 2)

	for _, is := range rep.Skipped {
		assert.NotContains(t, is.Text, "\n")
		assert.NotContains(t, is.Text, "\r")
		assert.Contains(t, is.Text, "to: 3")
	}
	assert.Contains(t, rep.Skipped[1].Text, "from: x")
}

func TestParseYAML_EmptyAndBroken(t *testing.T) {
	edges, rep, err := edgelist.ParseYAML(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, edges)
	assert.Zero(t, rep.Accepted)

	_, _, err = edgelist.ParseYAML(strings.NewReader("edges: [\n"))
	assert.Error(t, err)
}

func TestParseFile_YAMLByExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.yml")
	require.NoError(t, os.WriteFile(path, []byte(yamlDoc), 0o600))

	edges, _, err := edgelist.ParseFile(path, edgelist.WithStrictCosts())
	require.NoError(t, err)
	assert.Len(t, edges, 3)
}
