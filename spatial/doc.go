// Package spatial provides a KD-tree index over a fixed dataset for
// inclusive radius ("ball") queries in Euclidean space.
//
// What:
//
//   - KDTree is built once over flat row-major point data and never
//     mutated afterwards.
//   - QueryBall(point, r) returns the ascending indices of every dataset
//     point within distance r of the query point, boundary included.
//
// Why:
//
//   - Local edge-inconsistency tests in divisive clustering need the
//     neighborhood of an edge's endpoints at a radius equal to the edge
//     weight, many times per run — a linear scan per probe does not scale.
//
// Complexity:
//
//   - Build: O(n log² n) (median split on the widest-spread dimension).
//   - QueryBall: O(log n + k) for k reported points in balanced cases.
//
// Concurrency: a built KDTree is read-only and safe for concurrent queries.
//
// Errors:
//
//   - ErrNoPoints: dataset has no rows.
//   - ErrBadShape: data length is not rows×dims or dims is not positive.
//   - ErrDimensionMismatch: query point dimensionality differs from the tree's.
package spatial
