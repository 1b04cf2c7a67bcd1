// Package cluster holds the contracts shared by every clustering engine:
// the immutable Dataset, the Partition membership matrix, the Model
// interface both engines implement, the ClusterInfo resolver, and the
// fork/join batch runner used for per-cluster computations.
//
// What:
//
//   - Dataset: N points of D dimensions in one flat row-major slice,
//     never copied per task — workers read it in place.
//   - Partition: C×N membership matrix (gonum-backed); hard partitions
//     have a single 1 per column, fuzzy partitions any column summing to 1.
//   - Model: Apply(data, forest, workers, partition) → Partition. Both the
//     divisive and the fuzzy engine satisfy it, so they chain freely.
//   - ClusterInfo: resolves one tree of the forest into member ids,
//     internal edges and centroid. Pure function, no retained state.
//   - SharedContext + RunBatch: publish a read-only context once, run a
//     batch of independent tasks across a bounded worker pool, block until
//     all finish, and surface any task failure as a whole-batch failure.
//
// Why:
//
//   - One call contract keeps hard clustering and fuzzy refinement
//     interchangeable pipeline stages.
//   - The batch runner guarantees worker-count invariance: results are
//     written by submission index, so one worker and many workers produce
//     bit-identical output.
//
// Errors:
//
//   - ErrEmptyDataset, ErrRaggedDataset: malformed input points.
//   - ErrBadShape: partition dimensions are not positive.
//   - ErrClusterIndex: cluster index outside the forest's current trees.
//   - ErrBadWorkers: worker count below 1.
package cluster
