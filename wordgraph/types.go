// File: types.go
// Role: Graph type, sentinel errors and the New constructor.
// Concurrency:
//   - One sync.RWMutex guards vertices, out and in together; every method
//     takes it, so readers may run concurrently with each other.

package wordgraph

import (
	"errors"
	"sync"
)

// Sentinel errors for edge mutations.
var (
	// ErrNegativeWeight indicates SetEdge or IncrementEdge received a value below zero.
	ErrNegativeWeight = errors.New("wordgraph: negative edge weight")

	// ErrWeightOverflow indicates IncrementEdge would push a weight past math.MaxInt64.
	ErrWeightOverflow = errors.New("wordgraph: edge weight overflow")
)

// noEdge is the weight reported for an absent edge and the SetEdge value that removes one.
const noEdge int64 = 0

// Graph is a directed graph with positive int64 edge weights.
//
// The zero value is not usable; construct with New.
type Graph[V comparable] struct {
	mu sync.RWMutex

	vertices map[V]struct{}

	// out[from][to] = weight, in[to][from] = weight; always mirrored.
	out map[V]map[V]int64
	in  map[V]map[V]int64

	edgeCount int
}

// New creates an empty Graph.
// Complexity: O(1)
func New[V comparable]() *Graph[V] {
	return &Graph[V]{
		vertices: make(map[V]struct{}),
		out:      make(map[V]map[V]int64),
		in:       make(map[V]map[V]int64),
	}
}
