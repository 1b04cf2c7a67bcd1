// Package zahn implements divisive MST clustering: starting from a
// spanning forest, it repeatedly picks the least-compact tree and cuts its
// most inconsistent edge until no inconsistency criterion fires.
//
// What:
//
//   - Model (a cluster.Model) walks the forest: per iteration it ranks all
//     trees by fuzzy hyper-volume (computed in one parallel batch), takes
//     the worst, and evaluates three criteria in priority order against
//     that tree's heaviest edges:
//     1. Global: heaviest weight ≥ coefficient × mean weight of ALL
//     remaining forest edges.
//     2. Local: for edges in descending weight order, compare against the
//     mean weight of forest edges in the KD-tree neighborhood (radius =
//     edge weight) of either endpoint; first satisfying edge wins.
//     3. Split quality: hypothetically remove each edge in a scratch
//     forest and keep the cut minimizing the sum of the two resulting
//     hyper-volumes, applied only when that minimum is finite and above
//     the configured tolerance.
//   - The chosen edge is removed from the live forest (one tree becomes
//     two); the loop stops when no enabled criterion fires or the cluster
//     bound is reached, then emits a hard partition matrix.
//
// Why:
//
//   - An MST's long edges bridge natural clusters; cutting statistically
//     inconsistent edges recovers them without fixing a cluster count up
//     front.
//
// Determinism: worst-cluster and edge selection break ties by first index
// (criterion 3 by last index, matching its ≤ comparison), and batches
// write results by submission order — identical output for any worker
// count.
//
// Termination note: when the worst candidate turns out to have no
// internal edges (a singleton — possible only once every multi-point tree
// is a degenerate +Inf sentinel) there is nothing to cut and the engine
// terminates rather than retrying the next-worst candidate, which could
// only meet more sentinel trees; see DESIGN.md.
//
// Errors:
//
//   - ErrNilInput: dataset or forest is nil.
//   - ErrShapeMismatch: forest node count differs from dataset length.
package zahn
