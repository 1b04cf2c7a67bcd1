package gathgeva

import (
	"math"

	"github.com/katalvlaran/mstclust/cluster"
	"github.com/katalvlaran/mstclust/forest"
	"github.com/katalvlaran/mstclust/fuzzymath"
)

// Apply refines the supplied partition into fuzzy memberships, iterating
// until the Frobenius movement between consecutive partitions falls below
// the tolerance. The partition is mutated in place and returned; rows that
// are identically zero (noise clusters) are left untouched and excluded
// from normalization. The forest is not consulted.
//
// Each iteration issues exactly one parallel batch (one log-distance task
// per non-noise cluster); the partition is read-only for the batch's
// duration and only updated between batches.
func (m *Model) Apply(data *cluster.Dataset, _ *forest.SpanningForest, workers int, partition *cluster.Partition) (*cluster.Partition, error) {
	// Validate inputs: refinement is meaningless without a prior partition.
	if data == nil {
		return nil, ErrNilInput
	}
	if partition == nil {
		return nil, ErrNoPartition
	}
	if partition.Points() != data.Len() {
		return nil, ErrShapeMismatch
	}
	if m.exponent <= 1 {
		return nil, ErrBadExponent
	}

	// Identify the non-noise cluster rows once: noise rows never receive
	// updated memberships.
	var nonNoise []int
	for c := 0; c < partition.Clusters(); c++ {
		if !partition.IsNoiseRow(c) {
			nonNoise = append(nonNoise, c)
		}
	}
	if len(nonNoise) == 0 {
		// Nothing to refine; an all-noise partition is already stable.
		return partition, nil
	}

	power := 2 / (m.exponent - 1)
	n := data.Len()

	for iter := 1; iter <= m.maxIter; iter++ {
		previous := partition.Clone()

		// One batch of per-cluster log-distance vectors against the
		// current partition.
		lnDist, err := m.logDistances(data, partition, nonNoise, workers)
		if err != nil {
			return nil, err
		}

		// Log-domain reciprocal update: each column sums to 1 across the
		// non-noise rows by construction.
		for _, c := range nonNoise {
			for k := 0; k < n; k++ {
				d := lnDist[c][k]
				var sum float64
				for _, o := range nonNoise {
					diff := d - lnDist[o][k]
					// Two degenerate clusters are equally distant;
					// without this, Inf - Inf would poison the sum.
					if math.IsInf(d, 1) && math.IsInf(lnDist[o][k], 1) {
						diff = 0
					}
					sum += math.Exp(diff * power)
				}
				partition.Set(c, k, 1/sum)
			}
		}

		delta := partition.Distance(previous)
		m.log.WithFields(map[string]interface{}{
			"iteration": iter,
			"delta":     delta,
		}).Debug("gathgeva: partition updated")
		if delta < m.tolerance {
			return partition, nil
		}
	}

	return nil, ErrNoConvergence
}

// logDistances runs one parallel batch computing the log-distance vector
// of every non-noise cluster. The returned slice is indexed by cluster row;
// noise rows stay nil.
func (m *Model) logDistances(data *cluster.Dataset, partition *cluster.Partition, nonNoise []int, workers int) ([][]float64, error) {
	// Publish the shared read-only context for this batch.
	sc := &cluster.SharedContext{Data: data, Partition: partition, Exponent: m.exponent}

	tasks := make([]cluster.Task[[]float64], len(nonNoise))
	for i, c := range nonNoise {
		tasks[i] = func(sc *cluster.SharedContext) ([]float64, error) {
			d := sc.Data

			return fuzzymath.ClusterLogDistances(d.Flat(), d.Len(), d.Dims(), sc.Exponent, sc.Partition.Row(c)), nil
		}
	}

	results, err := cluster.RunBatch(sc, workers, tasks)
	if err != nil {
		return nil, err
	}

	lnDist := make([][]float64, partition.Clusters())
	for i, c := range nonNoise {
		lnDist[c] = results[i]
	}

	return lnDist, nil
}
