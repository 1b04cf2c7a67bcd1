package forest

import "errors"

// Sentinel errors for spanning forest operations.
var (
	// ErrBadSize indicates the forest was requested with a non-positive node count.
	ErrBadSize = errors.New("forest: size must be > 0")

	// ErrNodeOutOfRange indicates a node index outside 0..n-1.
	ErrNodeOutOfRange = errors.New("forest: node index out of range")

	// ErrSelfLoop indicates an edge whose endpoints are the same node.
	ErrSelfLoop = errors.New("forest: self-loop not allowed")

	// ErrNegativeWeight indicates an edge weight below zero.
	ErrNegativeWeight = errors.New("forest: edge weight must be non-negative")

	// ErrCycle indicates the edge endpoints already belong to the same tree.
	ErrCycle = errors.New("forest: edge would close a cycle")

	// ErrEdgeNotFound indicates the referenced edge is not in the forest.
	ErrEdgeNotFound = errors.New("forest: edge not found")
)

// Edge is an undirected weighted connection between two nodes of one tree.
//
// First < Second always holds for edges returned by Edges; Weight is the
// distance between the two endpoint points and is never negative.
type Edge struct {
	// First is the lower endpoint index.
	First int

	// Second is the higher endpoint index.
	Second int

	// Weight is the non-negative edge weight.
	Weight float64
}

// SpanningForest is a mutable collection of disjoint trees over the node
// indices 0..n-1. Every node belongs to exactly one tree at all times; a
// freshly constructed forest holds n singleton trees.
//
// rep[v] is the representative (smallest node index) of v's tree; roots is
// the ascending list of representatives, rebuilt after every mutation.
type SpanningForest struct {
	n     int
	adj   []map[int]float64 // adj[u][v] = weight, mirrored for both endpoints
	rep   []int             // node → representative (min index in its tree)
	roots []int             // ascending representatives, one per tree
}

// New creates a forest of size singleton trees over nodes 0..size-1.
// Complexity: O(size).
func New(size int) (*SpanningForest, error) {
	// Validate requested node count.
	if size <= 0 {
		return nil, ErrBadSize
	}

	f := &SpanningForest{
		n:     size,
		adj:   make([]map[int]float64, size),
		rep:   make([]int, size),
		roots: make([]int, size),
	}
	// Every node starts as its own tree and its own representative.
	for v := 0; v < size; v++ {
		f.adj[v] = make(map[int]float64)
		f.rep[v] = v
		f.roots[v] = v
	}

	return f, nil
}
