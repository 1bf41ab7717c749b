// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
// Determinism:
//   - Vertices() order follows map iteration and is NOT stable; sort at the call site when needed.

package wordgraph

// AddVertex inserts v if missing and reports whether it was newly added.
// Adding an existing vertex is a no-op.
//
// Complexity: O(1) amortized.
func (g *Graph[V]) AddVertex(v V) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.addVertexLocked(v)
}

// addVertexLocked is AddVertex for callers already holding g.mu for writing.
func (g *Graph[V]) addVertexLocked(v V) bool {
	if _, ok := g.vertices[v]; ok {
		return false
	}
	g.vertices[v] = struct{}{}

	return true
}

// HasVertex reports whether v is a vertex of g.
func (g *Graph[V]) HasVertex(v V) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[v]

	return ok
}

// Vertices returns a fresh slice holding every vertex, in no particular order.
//
// Complexity: O(V).
func (g *Graph[V]) Vertices() []V {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]V, 0, len(g.vertices))
	for v := range g.vertices {
		out = append(out, v)
	}

	return out
}

// VertexCount returns |V|.
func (g *Graph[V]) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// Targets returns the outgoing neighbors of u mapped to edge weights.
// The result is a copy; an unknown vertex or one without outgoing edges
// yields an empty, non-nil map.
//
// Complexity: O(out-degree(u)).
func (g *Graph[V]) Targets(u V) map[V]int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return copyNeighbors(g.out[u])
}

// Sources returns the incoming neighbors of v mapped to edge weights.
// Same copy and emptiness rules as Targets.
//
// Complexity: O(in-degree(v)).
func (g *Graph[V]) Sources(v V) map[V]int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return copyNeighbors(g.in[v])
}

func copyNeighbors[V comparable](src map[V]int64) map[V]int64 {
	dst := make(map[V]int64, len(src))
	for k, w := range src {
		dst[k] = w
	}

	return dst
}
