// File: build.go
// Role: Corpus ingestion: tokenize, normalize, accumulate adjacency weights.

package poet

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/graphpoet/wordgraph"
)

// New reads the whole corpus from r and returns a Poet over its word graph.
//
// Steps:
//  1. Scan whitespace-delimited tokens in corpus order.
//  2. Lower-case each token and add it as a vertex.
//  3. For each consecutive pair, increment prev→cur by 1 (self-loops included).
//
// An empty corpus yields an empty graph. Any read failure aborts with an
// error wrapping ErrCorpusRead and no Poet is returned.
//
// Complexity: O(T) for T corpus tokens.
func New(r io.Reader, opts ...Option) (*Poet, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	g, tokens, err := ingest(r, o.MaxTokenSize)
	if err != nil {
		return nil, err
	}

	o.Logger.Info("word graph built",
		zap.Int("tokens", tokens),
		zap.Int("vertices", g.VertexCount()),
		zap.Int("edges", g.EdgeCount()),
	)

	return &Poet{graph: g, log: o.Logger}, nil
}

// NewFromFile opens path, builds a Poet from its contents and closes it.
// Open errors (missing file, permission denied) wrap ErrCorpusRead and keep
// the fs error reachable, e.g. errors.Is(err, fs.ErrNotExist).
func NewFromFile(path string, opts ...Option) (*Poet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorpusRead, err)
	}
	defer f.Close()

	return New(f, opts...)
}

// ingest builds a fresh graph so a failed read never leaks a partial one.
func ingest(r io.Reader, maxToken int) (*wordgraph.Graph[string], int, error) {
	g := wordgraph.New[string]()

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, min(initialBufSize, maxToken)), maxToken)
	sc.Split(bufio.ScanWords)

	var (
		prev   string
		tokens int
	)
	for sc.Scan() {
		cur := normalize(sc.Text())
		g.AddVertex(cur)
		if tokens > 0 {
			if _, err := g.IncrementEdge(prev, cur, 1); err != nil {
				return nil, 0, err
			}
		}
		prev = cur
		tokens++
	}
	if err := sc.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrCorpusRead, err)
	}

	return g, tokens, nil
}

// normalize maps a token to its case-insensitive graph key.
func normalize(token string) string {
	return strings.ToLower(token)
}
