package zahn

import (
	"math"
	"sort"

	"github.com/katalvlaran/mstclust/cluster"
	"github.com/katalvlaran/mstclust/forest"
	"github.com/katalvlaran/mstclust/fuzzymath"
	"github.com/katalvlaran/mstclust/spatial"
)

// Apply runs the divisive loop over the forest until no enabled criterion
// fires or the cluster bound is reached, then returns the hard partition
// of the final forest. The prior partition argument is ignored — divisive
// clustering starts from the forest alone.
//
// The forest is mutated in place (edges removed, one per cut). Each
// iteration issues exactly one parallel batch of per-cluster hyper-volume
// tasks; the forest is only read between batches, never by workers.
func (m *Model) Apply(data *cluster.Dataset, f *forest.SpanningForest, workers int, _ *cluster.Partition) (*cluster.Partition, error) {
	// Validate inputs.
	if data == nil || f == nil {
		return nil, ErrNilInput
	}
	if f.Len() != data.Len() {
		return nil, ErrShapeMismatch
	}

	// One shared context for the whole run: dataset and exponent are
	// published once per batch, never copied per task.
	sc := &cluster.SharedContext{Data: data, Exponent: m.exponent}

	for m.belowBound(f) {
		cut, found, err := m.findCut(sc, f, workers)
		if err != nil {
			return nil, err
		}
		if !found {
			// No enabled criterion fired: normal termination.
			break
		}

		// Remove the inconsistent edge, splitting one tree into two.
		if err = f.RemoveEdge(cut.First, cut.Second); err != nil {
			return nil, err
		}
		m.log.WithFields(map[string]interface{}{
			"edge":     [2]int{cut.First, cut.Second},
			"weight":   cut.Weight,
			"clusters": f.Size(),
		}).Debug("zahn: cut applied")
	}

	return hardPartition(data, f)
}

// belowBound reports whether another cut is permitted by the cluster bound.
func (m *Model) belowBound(f *forest.SpanningForest) bool {
	return m.maxClusters == Unbounded || f.Size() < m.maxClusters
}

// findCut selects the next edge to cut, or reports that no enabled
// criterion fired.
func (m *Model) findCut(sc *cluster.SharedContext, f *forest.SpanningForest, workers int) (forest.Edge, bool, error) {
	var none forest.Edge

	// 1. Rank clusters by hyper-volume, one parallel task per tree.
	volumes, err := m.clusterVolumes(sc, f, workers)
	if err != nil {
		return none, false, err
	}

	// +Inf marks a degenerate/noise cluster: substitute a sentinel below
	// every finite value so it is never chosen as worst. If every cluster
	// is a sentinel, the candidate is still the first index.
	worst := 0
	best := math.Inf(-1)
	for c, v := range volumes {
		if math.IsInf(v, 1) {
			v = math.Inf(-1)
		}
		if v > best {
			best = v
			worst = c
		}
	}

	// 2. Heaviest internal edge of the candidate cluster. An edgeless
	// candidate (a singleton) means every splittable option is exhausted:
	// no cut is available this iteration and the engine terminates.
	roots := f.Roots()
	badEdges, err := f.Edges(roots[worst])
	if err != nil {
		return none, false, err
	}
	if len(badEdges) == 0 {
		m.log.WithField("cluster", worst).Debug("zahn: worst cluster has no edges; stopping")

		return none, false, nil
	}
	maxIdx := 0
	for i, e := range badEdges {
		if e.Weight > badEdges[maxIdx].Weight {
			maxIdx = i
		}
	}
	maxWeight := badEdges[maxIdx].Weight

	// Criteria 1 and 2 compare against the edges remaining anywhere in
	// the forest, gathered once per iteration.
	allEdges, err := forestEdges(f, roots)
	if err != nil {
		return none, false, err
	}

	// 3. Criterion 1 (global): heaviest weight against the forest-wide mean.
	if m.useFirst && m.firstCriterion(sc.Data.Len(), allEdges, maxWeight) {
		m.log.WithField("criterion", 1).Debug("zahn: cut selected")

		return badEdges[maxIdx], true, nil
	}

	// 4. Criterion 2 (local neighborhood).
	if m.useSecond {
		idx, err := m.secondCriterion(sc.Data, allEdges, badEdges)
		if err != nil {
			return none, false, err
		}
		if idx >= 0 {
			m.log.WithField("criterion", 2).Debug("zahn: cut selected")

			return badEdges[idx], true, nil
		}
	}

	// 5. Criterion 3 (split quality).
	if m.useThird {
		edge, ok, err := m.thirdCriterion(sc.Data, badEdges)
		if err != nil {
			return none, false, err
		}
		if ok {
			m.log.WithField("criterion", 3).Debug("zahn: cut selected")

			return edge, true, nil
		}
	}

	return none, false, nil
}

// clusterVolumes computes every tree's hyper-volume in one batch. Cluster
// resolution happens up front in the orchestrating goroutine (the forest
// is not shared with workers); only the numeric kernel runs in parallel.
func (m *Model) clusterVolumes(sc *cluster.SharedContext, f *forest.SpanningForest, workers int) ([]float64, error) {
	tasks := make([]cluster.Task[float64], f.Size())
	for c := range tasks {
		ids, _, center, err := cluster.ClusterInfo(sc.Data, f, c)
		if err != nil {
			return nil, err
		}
		tasks[c] = func(sc *cluster.SharedContext) (float64, error) {
			d := sc.Data

			return fuzzymath.HyperVolume(d.Flat(), d.Len(), d.Dims(), sc.Exponent, ids, center), nil
		}
	}

	return cluster.RunBatch(sc, workers, tasks)
}

// firstCriterion reports whether the heaviest weight reaches the scaled
// mean weight of all edges remaining in the forest.
func (m *Model) firstCriterion(n int, allEdges []forest.Edge, maxWeight float64) bool {
	var sum float64
	for _, e := range allEdges {
		sum += e.Weight
	}
	criterion := m.cuttingCoeff * sum / float64(n-1)

	return maxWeight >= criterion
}

// secondCriterion scans the candidate cluster's edges in descending weight
// order and returns the index of the first edge whose weight reaches the
// scaled mean weight of its spatial neighborhood, or -1.
//
// The neighborhood of an edge is every forest edge with an endpoint within
// radius = edge weight of either endpoint of the candidate edge, excluding
// edges incident to the candidate's own endpoints; fewer than two such
// neighbors disqualify the edge.
func (m *Model) secondCriterion(data *cluster.Dataset, allEdges, badEdges []forest.Edge) (int, error) {
	// Build the spatial index on first use; rebuild only when the dataset
	// identity changes across calls.
	if m.tree == nil || m.treeData != data {
		tree, err := spatial.NewKDTree(data.Flat(), data.Len(), data.Dims())
		if err != nil {
			return -1, err
		}
		m.tree = tree
		m.treeData = data
	}

	// Visit edges heaviest-first; stable sort keeps equal weights in
	// their original deterministic order.
	order := make([]int, len(badEdges))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return badEdges[order[a]].Weight > badEdges[order[b]].Weight
	})

	for _, idx := range order {
		e := badEdges[idx]

		// Union of in-radius point indices around both endpoints.
		near := make(map[int]struct{})
		for _, endpoint := range [2]int{e.First, e.Second} {
			hits, err := m.tree.QueryBall(data.Row(endpoint), e.Weight)
			if err != nil {
				return -1, err
			}
			for _, h := range hits {
				near[h] = struct{}{}
			}
		}

		// Neighboring edges: touch the neighborhood, but not the
		// candidate's own endpoints.
		var count int
		var sum float64
		for _, other := range allEdges {
			if other.First == e.First || other.Second == e.First ||
				other.First == e.Second || other.Second == e.Second {
				continue
			}
			_, okF := near[other.First]
			_, okS := near[other.Second]
			if okF || okS {
				count++
				sum += other.Weight
			}
		}
		if count < 2 {
			continue
		}

		criterion := m.cuttingCoeff * sum / float64(count-1)
		if e.Weight >= criterion {
			return idx, nil
		}
	}

	return -1, nil
}

// thirdCriterion hypothetically removes each cluster edge in a scratch
// forest and tracks the edge minimizing the sum of the two resulting
// hyper-volumes (ties favor the later edge). The cut applies only when
// that minimum is finite and strictly above the configured tolerance;
// otherwise the cluster is considered already pure.
func (m *Model) thirdCriterion(data *cluster.Dataset, badEdges []forest.Edge) (forest.Edge, bool, error) {
	var none forest.Edge

	// Isolated mini-forest holding only the candidate cluster's edges.
	scratch, err := forest.New(data.Len())
	if err != nil {
		return none, false, err
	}
	for _, e := range badEdges {
		if err = scratch.AddEdge(e.First, e.Second, e.Weight); err != nil {
			return none, false, err
		}
	}

	bestIdx := -1
	minTotal := math.Inf(1)
	for i, e := range badEdges {
		if err = scratch.RemoveEdge(e.First, e.Second); err != nil {
			return none, false, err
		}

		left, err := splitVolume(data, scratch, e.First, m.exponent)
		if err != nil {
			return none, false, err
		}
		right, err := splitVolume(data, scratch, e.Second, m.exponent)
		if err != nil {
			return none, false, err
		}

		if !math.IsInf(left, 1) && !math.IsInf(right, 1) {
			if total := left + right; total <= minTotal {
				bestIdx = i
				minTotal = total
			}
		}

		// Restore the edge before probing the next one.
		if err = scratch.AddEdge(e.First, e.Second, e.Weight); err != nil {
			return none, false, err
		}
	}

	if bestIdx >= 0 && minTotal > m.hvTolerance && !math.IsInf(minTotal, 1) {
		return badEdges[bestIdx], true, nil
	}

	return none, false, nil
}

// splitVolume resolves the scratch tree containing node and returns its
// hyper-volume.
func splitVolume(data *cluster.Dataset, scratch *forest.SpanningForest, node int, exponent float64) (float64, error) {
	root, err := scratch.FindRoot(node)
	if err != nil {
		return 0, err
	}
	idx := rootIndex(scratch.Roots(), root)

	ids, _, center, err := cluster.ClusterInfo(data, scratch, idx)
	if err != nil {
		return 0, err
	}

	return fuzzymath.HyperVolume(data.Flat(), data.Len(), data.Dims(), exponent, ids, center), nil
}

// rootIndex locates root in the forest's representative list.
func rootIndex(roots []int, root int) int {
	for i, r := range roots {
		if r == root {
			return i
		}
	}

	return -1
}

// forestEdges gathers the internal edges of every tree in the forest.
func forestEdges(f *forest.SpanningForest, roots []int) ([]forest.Edge, error) {
	var all []forest.Edge
	for _, r := range roots {
		edges, err := f.Edges(r)
		if err != nil {
			return nil, err
		}
		all = append(all, edges...)
	}

	return all, nil
}

// hardPartition emits the final C×N matrix: row r holds a 1 in every
// column belonging to tree r.
func hardPartition(data *cluster.Dataset, f *forest.SpanningForest) (*cluster.Partition, error) {
	p, err := cluster.NewPartition(f.Size(), data.Len())
	if err != nil {
		return nil, err
	}
	for c := 0; c < f.Size(); c++ {
		ids, _, _, err := cluster.ClusterInfo(data, f, c)
		if err != nil {
			return nil, err
		}
		for _, id := range ids {
			p.Set(c, id, 1)
		}
	}

	return p, nil
}
