package forest

import "sort"

// Len returns the number of nodes the forest was created with.
// Complexity: O(1).
func (f *SpanningForest) Len() int {
	return f.n
}

// Size returns the current number of trees (= clusters).
// Complexity: O(1).
func (f *SpanningForest) Size() int {
	return len(f.roots)
}

// Roots returns one representative node per tree in ascending order.
// The slice is a copy; mutating it does not affect the forest. The order
// is stable across calls for an unchanged forest state.
// Complexity: O(t) for t trees.
func (f *SpanningForest) Roots() []int {
	out := make([]int, len(f.roots))
	copy(out, f.roots)

	return out
}

// FindRoot returns the representative of the tree containing node.
// Complexity: O(1).
func (f *SpanningForest) FindRoot(node int) (int, error) {
	if node < 0 || node >= f.n {
		return 0, ErrNodeOutOfRange
	}

	return f.rep[node], nil
}

// HasEdge reports whether the forest contains the undirected edge (u, v).
// Complexity: O(1).
func (f *SpanningForest) HasEdge(u, v int) bool {
	if u < 0 || u >= f.n || v < 0 || v >= f.n {
		return false
	}
	_, ok := f.adj[u][v]

	return ok
}

// Edges returns the internal edges of the tree containing root, each with
// First < Second, ordered by ascending (First, Second). The slice is owned
// by the caller.
// Complexity: O(n + k) for a tree with k edges.
func (f *SpanningForest) Edges(root int) ([]Edge, error) {
	// Validate the anchor node.
	if root < 0 || root >= f.n {
		return nil, ErrNodeOutOfRange
	}
	r := f.rep[root]

	// Walk the full node range in ascending order; emitting only (u, v)
	// pairs with u < v yields each undirected edge exactly once, already
	// sorted by ascending (First, Second).
	var edges []Edge
	for u := 0; u < f.n; u++ {
		if f.rep[u] != r {
			continue
		}
		neighbors := make([]int, 0, len(f.adj[u]))
		for v := range f.adj[u] {
			if v > u {
				neighbors = append(neighbors, v)
			}
		}
		sort.Ints(neighbors)
		for _, v := range neighbors {
			edges = append(edges, Edge{First: u, Second: v, Weight: f.adj[u][v]})
		}
	}

	return edges, nil
}

// AddEdge connects u and v with the given weight, merging their trees.
// The endpoints must currently belong to different trees.
// Complexity: O(k) for the merged tree's size k.
func (f *SpanningForest) AddEdge(u, v int, weight float64) error {
	// Validate endpoints and weight.
	if u < 0 || u >= f.n || v < 0 || v >= f.n {
		return ErrNodeOutOfRange
	}
	if u == v {
		return ErrSelfLoop
	}
	if weight < 0 {
		return ErrNegativeWeight
	}
	// Same representative means same tree: the edge would close a cycle.
	if f.rep[u] == f.rep[v] {
		return ErrCycle
	}

	// Insert the undirected edge into both adjacency maps.
	f.adj[u][v] = weight
	f.adj[v][u] = weight

	// Relabel the merged tree from either endpoint and refresh the root list.
	f.relabel(u)
	f.rebuildRoots()

	return nil
}

// RemoveEdge deletes the undirected edge (u, v), splitting its tree into
// the two components left on either side of the cut.
// Complexity: O(k) for the split tree's size k.
func (f *SpanningForest) RemoveEdge(u, v int) error {
	// Validate endpoints.
	if u < 0 || u >= f.n || v < 0 || v >= f.n {
		return ErrNodeOutOfRange
	}
	if _, ok := f.adj[u][v]; !ok {
		return ErrEdgeNotFound
	}

	// Drop both directions of the edge.
	delete(f.adj[u], v)
	delete(f.adj[v], u)

	// The tree splits exactly in two: relabel each side independently.
	f.relabel(u)
	f.relabel(v)
	f.rebuildRoots()

	return nil
}

// relabel walks the tree containing start and assigns the minimum reached
// node index as every member's representative.
func (f *SpanningForest) relabel(start int) {
	// Iterative DFS; a tree of k nodes has k-1 edges, so the stack stays small.
	seen := map[int]struct{}{start: {}}
	stack := []int{start}
	members := []int{start}
	minNode := start
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for v := range f.adj[u] {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			stack = append(stack, v)
			members = append(members, v)
			if v < minNode {
				minNode = v
			}
		}
	}
	for _, m := range members {
		f.rep[m] = minNode
	}
}

// rebuildRoots refreshes the ascending representative list from rep.
func (f *SpanningForest) rebuildRoots() {
	f.roots = f.roots[:0]
	for v := 0; v < f.n; v++ {
		// A node is a representative exactly when it maps to itself.
		if f.rep[v] == v {
			f.roots = append(f.roots, v)
		}
	}
}
