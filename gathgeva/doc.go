// Package gathgeva refines an existing (typically hard) partition into a
// fuzzy one: per-point memberships are recomputed from covariance-aware
// log distances until the partition stops moving.
//
// What:
//
//   - Model (a cluster.Model) requires a prior partition and iterates:
//     1. One parallel batch computes, for every non-noise cluster, the
//     length-N vector of Gath–Geva log distances from each point to
//     that cluster (fuzzymath.ClusterLogDistances).
//     2. Each (cluster, point) membership becomes the reciprocal of
//     Σ exp((d_this − d_other) · 2/(m−1)) over the non-noise clusters —
//     the log-domain form of the reciprocal distance-ratio update, so
//     every updated column sums to 1 across non-noise rows by
//     construction.
//     3. Iteration stops when the Frobenius distance between consecutive
//     partitions falls below the tolerance.
//   - Noise clusters (identically zero rows) are never updated and never
//     participate in normalization.
//
// Why:
//
//   - A hard MST partition fixes cluster count and shape; Gath–Geva
//     refinement recovers graded memberships and ellipsoidal cluster
//     geometry from the same starting point.
//
// The update mutates the supplied partition in place and also returns it.
// The forest argument of Apply is not consulted — refinement works purely
// on the dataset and the partition.
//
// Safety valve: the textbook update rule iterates until convergence with
// no cap; this implementation stops with ErrNoConvergence after a configured
// maximum number of iterations (default 300) so a non-contracting input
// cannot hang the pipeline. The partially refined partition is left in
// place for inspection.
//
// Errors:
//
//   - ErrNoPartition: Apply called without a prior partition.
//   - ErrNilInput: dataset is nil.
//   - ErrShapeMismatch: partition columns differ from dataset length.
//   - ErrBadExponent: fuzziness exponent not greater than 1.
//   - ErrNoConvergence: iteration cap reached before the tolerance.
package gathgeva
