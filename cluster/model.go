package cluster

import (
	"errors"
	"sort"

	"github.com/katalvlaran/mstclust/forest"
)

// ErrClusterIndex indicates a cluster index outside the forest's trees.
var ErrClusterIndex = errors.New("cluster: cluster index out of range")

// Model is the single call contract every clustering transformation
// implements. Apply consumes the dataset and a mutable forest, runs with
// the given worker count, and returns a partition matrix. partition is an
// optional prior partition: the divisive engine ignores it, the fuzzy
// engine requires it. Implementations sharing this contract chain freely
// in a pipeline (hard clustering feeding fuzzy refinement).
type Model interface {
	Apply(data *Dataset, f *forest.SpanningForest, workers int, partition *Partition) (*Partition, error)
}

// ClusterInfo resolves tree clusterIdx of the forest into its member point
// ids (ascending, unique), its internal edges, and its centroid.
//
// An edgeless tree is a singleton: ids holds just the root and the centroid
// is that point itself. Otherwise ids are the distinct endpoints touched by
// the tree's edges and the centroid is their arithmetic mean. Member nodes
// not appearing as any edge endpoint are therefore not represented; the
// forest never produces such trees (every multi-node tree is edge-connected).
//
// Pure function of its inputs and the forest's current edge set.
// Complexity: O(n + k log k) for a tree with k edges.
func ClusterInfo(data *Dataset, f *forest.SpanningForest, clusterIdx int) (ids []int, edges []forest.Edge, center []float64, err error) {
	roots := f.Roots()
	if clusterIdx < 0 || clusterIdx >= len(roots) {
		return nil, nil, nil, ErrClusterIndex
	}
	root := roots[clusterIdx]

	edges, err = f.Edges(root)
	if err != nil {
		return nil, nil, nil, err
	}

	// Singleton tree: the root is the whole cluster and its own centroid.
	if len(edges) == 0 {
		center = make([]float64, data.Dims())
		copy(center, data.Row(root))

		return []int{root}, edges, center, nil
	}

	// Collect distinct edge endpoints in ascending order.
	seen := make(map[int]struct{}, 2*len(edges))
	for _, e := range edges {
		seen[e.First] = struct{}{}
		seen[e.Second] = struct{}{}
	}
	ids = make([]int, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	// Centroid: arithmetic mean of the member points.
	center = make([]float64, data.Dims())
	for _, id := range ids {
		row := data.Row(id)
		for d := range center {
			center[d] += row[d]
		}
	}
	for d := range center {
		center[d] /= float64(len(ids))
	}

	return ids, edges, center, nil
}
