// Package forest maintains a spanning forest — a set of disjoint trees —
// over integer point indices 0..n-1, supporting the merge and split
// operations a divisive clustering loop needs.
//
// What:
//
//   - SpanningForest tracks every node's tree and the undirected weighted
//     edges inside each tree.
//   - AddEdge merges two trees; RemoveEdge splits one tree into two.
//   - Roots returns one representative per tree in ascending order; the
//     representative is the smallest node index in its tree, so the order
//     is stable for an unchanged forest state.
//   - Edges(root) lists a tree's internal edges in deterministic
//     (ascending endpoint) order.
//
// Why:
//
//   - Divisive clustering: each tree is a cluster; cutting an edge splits
//     a cluster in two.
//   - Deterministic traversal: stable root and edge ordering keeps results
//     identical across runs and worker counts.
//
// Complexity:
//
//   - AddEdge / RemoveEdge: O(k) where k is the affected tree's size
//     (component relabeling after merge/split).
//   - Roots / Size / FindRoot: O(1) amortized (bookkeeping kept current).
//   - Edges: O(n) scan over the node range.
//
// Concurrency: a SpanningForest has a single-writer contract — only one
// goroutine may mutate it; any number may read between mutations.
//
// Errors:
//
//   - ErrBadSize: requested forest size is not positive.
//   - ErrNodeOutOfRange: node index outside 0..n-1.
//   - ErrSelfLoop: edge endpoints are equal.
//   - ErrNegativeWeight: edge weight below zero.
//   - ErrCycle: edge endpoints already share a tree.
//   - ErrEdgeNotFound: no such edge in the forest.
package forest
