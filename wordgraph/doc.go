// Package wordgraph provides a small, generic, thread-safe directed graph
// with positive integer edge weights.
//
// The Graph G = (V,E) is keyed by any comparable vertex type and stores
// edges in two mirrored nested maps:
//
//	out[from][to] = weight
//	in[to][from]  = weight
//
// so both outgoing (Targets) and incoming (Sources) neighbor queries cost
// O(degree) without scanning the vertex set.
//
// Weight semantics:
//
//   - A stored weight is always ≥ 1.
//   - Weight 0 means "no edge": SetEdge(u, v, 0) removes u→v.
//   - Negative weights are rejected with ErrNegativeWeight.
//   - IncrementEdge layers accumulation over SetEdge, so repeated
//     observations of the same ordered pair add up instead of overwriting.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(v V) bool                           // O(1)
//	HasVertex(v V) bool                           // O(1)
//
//	// Edge lifecycle
//	SetEdge(u, v V, w int64) (prev int64, err)    // O(1)
//	IncrementEdge(u, v V, d int64) (cur int64, err) // O(1)
//	Weight(u, v V) int64                          // O(1)
//	HasEdge(u, v V) bool                          // O(1)
//
//	// Query
//	Vertices() []V                                // O(V), unordered
//	Targets(u V) map[V]int64                      // O(out-degree), copy
//	Sources(v V) map[V]int64                      // O(in-degree), copy
//	VertexCount() int                             // O(1)
//	EdgeCount() int                               // O(1)
//
// Invariant: every endpoint of every edge is a member of Vertices(). No
// operation can leave the graph in a state that breaks it.
//
// Errors:
//
//	ErrNegativeWeight – SetEdge/IncrementEdge called with a negative value
//	ErrWeightOverflow – IncrementEdge sum would exceed math.MaxInt64
package wordgraph
