// Package export renders a word graph as a deterministic YAML document.
package export

import (
	"fmt"
	"io"
	"sort"

	"go.yaml.in/yaml/v3"

	"github.com/katalvlaran/graphpoet/wordgraph"
)

// Snapshot is the on-disk form of a word graph.
type Snapshot struct {
	Summary  Summary  `yaml:"summary"`
	Vertices []Vertex `yaml:"vertices"`
}

// Summary holds graph-wide counts.
type Summary struct {
	Vertices int   `yaml:"vertices"`
	Edges    int   `yaml:"edges"`
	Weight   int64 `yaml:"total_weight"`
}

// Vertex lists one word and its outgoing edges.
type Vertex struct {
	Word    string `yaml:"word"`
	Targets []Edge `yaml:"targets,omitempty"`
}

// Edge is one weighted outgoing adjacency.
type Edge struct {
	Word   string `yaml:"word"`
	Weight int64  `yaml:"weight"`
}

// Build snapshots g. Vertices and targets are sorted by word.
func Build(g *wordgraph.Graph[string]) Snapshot {
	words := g.Vertices()
	sort.Strings(words)

	s := Snapshot{
		Summary:  Summary{Vertices: len(words), Edges: g.EdgeCount()},
		Vertices: make([]Vertex, 0, len(words)),
	}
	for _, w := range words {
		targets := g.Targets(w)
		v := Vertex{Word: w, Targets: make([]Edge, 0, len(targets))}
		for to, weight := range targets {
			v.Targets = append(v.Targets, Edge{Word: to, Weight: weight})
			s.Summary.Weight += weight
		}
		sort.Slice(v.Targets, func(i, j int) bool { return v.Targets[i].Word < v.Targets[j].Word })
		s.Vertices = append(s.Vertices, v)
	}

	return s
}

// WriteYAML encodes the snapshot of g to w.
func WriteYAML(w io.Writer, g *wordgraph.Graph[string]) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Build(g)); err != nil {
		return fmt.Errorf("export: encode yaml: %w", err)
	}

	return enc.Close()
}
