package export_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/katalvlaran/graphpoet/internal/export"
	"github.com/katalvlaran/graphpoet/wordgraph"
)

func sample(t *testing.T) *wordgraph.Graph[string] {
	t.Helper()
	g := wordgraph.New[string]()
	for _, p := range [][2]string{{"hello,", "hello,"}, {"hello,", "hello,"}, {"hello,", "goodbye!"}} {
		_, err := g.IncrementEdge(p[0], p[1], 1)
		require.NoError(t, err)
	}
	g.AddVertex("alone")

	return g
}

func TestBuild(t *testing.T) {
	s := export.Build(sample(t))

	require.Equal(t, export.Summary{Vertices: 3, Edges: 2, Weight: 3}, s.Summary)
	require.Equal(t, []export.Vertex{
		{Word: "alone", Targets: []export.Edge{}},
		{Word: "goodbye!", Targets: []export.Edge{}},
		{Word: "hello,", Targets: []export.Edge{{Word: "goodbye!", Weight: 1}, {Word: "hello,", Weight: 2}}},
	}, s.Vertices)
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteYAML(&buf, sample(t)))

	const want = `summary:
  vertices: 3
  edges: 2
  total_weight: 3
vertices:
  - word: alone
  - word: goodbye!
  - word: hello,
    targets:
      - word: goodbye!
        weight: 1
      - word: hello,
        weight: 2
`
	require.Equal(t, want, buf.String())

	var back export.Snapshot
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
	require.Equal(t, 3, back.Summary.Vertices)
}

func TestWriteYAML_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteYAML(&buf, wordgraph.New[string]()))
	require.Equal(t, "summary:\n  vertices: 0\n  edges: 0\n  total_weight: 0\nvertices: []\n", buf.String())
}
