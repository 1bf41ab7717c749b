// File: methods_edges.go
// Role: Edge lifecycle & queries: SetEdge/IncrementEdge/Weight/HasEdge/EdgeCount.
// Concurrency:
//   - Mutations under g.mu write lock; IncrementEdge reads and writes under
//     one critical section so concurrent increments never lose updates.

package wordgraph

import (
	"fmt"
	"math"
)

// SetEdge sets the weight of u→v and returns the weight it replaced.
//
// Steps:
//  1. Reject weight < 0 with ErrNegativeWeight (graph untouched).
//  2. Ensure u and v are vertices, even when weight == 0.
//  3. weight > 0: store it in both out[u][v] and in[v][u].
//     weight == 0: delete the edge if present.
//
// The previous weight is 0 when no edge existed.
//
// Complexity: O(1) amortized.
func (g *Graph[V]) SetEdge(u, v V, weight int64) (int64, error) {
	if weight < 0 {
		return noEdge, fmt.Errorf("%w: %d", ErrNegativeWeight, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	return g.setEdgeLocked(u, v, weight), nil
}

// IncrementEdge adds delta to the weight of u→v, creating the edge when it
// was absent, and returns the resulting weight. It is the accumulate-on-insert
// policy expressed through SetEdge, so a delta of 0 only ensures both endpoints.
// A sum above math.MaxInt64 fails with ErrWeightOverflow and leaves the
// graph untouched; the returned weight is then the unchanged current one.
//
// Complexity: O(1) amortized.
func (g *Graph[V]) IncrementEdge(u, v V, delta int64) (int64, error) {
	if delta < 0 {
		return noEdge, fmt.Errorf("%w: delta %d", ErrNegativeWeight, delta)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	cur := g.out[u][v]
	if delta > math.MaxInt64-cur {
		return cur, fmt.Errorf("%w: %d + %d", ErrWeightOverflow, cur, delta)
	}
	next := cur + delta
	g.setEdgeLocked(u, v, next)

	return next, nil
}

func (g *Graph[V]) setEdgeLocked(u, v V, weight int64) int64 {
	g.addVertexLocked(u)
	g.addVertexLocked(v)

	prev, existed := g.out[u][v]
	if weight == noEdge {
		if existed {
			delete(g.out[u], v)
			delete(g.in[v], u)
			// drop empty buckets so Targets/Sources stay cheap
			if len(g.out[u]) == 0 {
				delete(g.out, u)
			}
			if len(g.in[v]) == 0 {
				delete(g.in, v)
			}
			g.edgeCount--
		}

		return prev
	}

	if g.out[u] == nil {
		g.out[u] = make(map[V]int64)
	}
	if g.in[v] == nil {
		g.in[v] = make(map[V]int64)
	}
	g.out[u][v] = weight
	g.in[v][u] = weight
	if !existed {
		g.edgeCount++
	}

	return prev
}

// Weight returns the weight of u→v, or 0 when there is no such edge.
func (g *Graph[V]) Weight(u, v V) int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.out[u][v]
}

// HasEdge reports whether u→v exists.
func (g *Graph[V]) HasEdge(u, v V) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.out[u][v]

	return ok
}

// EdgeCount returns |E|; a self-loop counts once.
func (g *Graph[V]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}
