// Package fuzzymath implements the covariance-aware numeric kernels shared
// by the clustering engines: the fuzzy hyper-volume of a cluster and the
// per-point Gath–Geva log distances to a cluster.
//
// What:
//
//   - HyperVolume: sqrt of the determinant of a cluster's fuzzy covariance
//     matrix. A singleton has volume 0; degenerate multi-point clusters
//     (too few members for a full-rank covariance, or a singular one)
//     return +Inf — the sentinel downstream code uses to mean "noise, do
//     not split".
//   - ClusterLogDistances: ln of the Gath–Geva exponential distance from
//     every dataset point to one cluster, computed from the cluster's
//     membership row. Staying in the log domain keeps the reciprocal
//     membership update numerically stable.
//
// Why:
//
//   - The divisive engine ranks clusters by hyper-volume and scores
//     hypothetical splits by it; the fuzzy engine rebuilds memberships
//     from log distances every iteration.
//
// Complexity: both kernels are O(k·D² + D³) for k weighted points in D
// dimensions (covariance accumulation + Cholesky factorization), plus
// O(n·D²) for the per-point quadratic forms in ClusterLogDistances.
//
// Both kernels are pure functions of their arguments and safe to call
// concurrently over shared read-only data.
package fuzzymath
