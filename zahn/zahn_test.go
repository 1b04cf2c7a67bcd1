package zahn_test

import (
	"testing"

	"github.com/katalvlaran/mstclust/cluster"
	"github.com/katalvlaran/mstclust/forest"
	"github.com/katalvlaran/mstclust/zahn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildCollinear returns the canonical 1D scenario: 5 points at
// x = {0,1,2,10,11} joined in a single chain MST with weights {1,1,8,1}.
func buildCollinear(t *testing.T) (*cluster.Dataset, *forest.SpanningForest) {
	t.Helper()

	ds, err := cluster.NewDataset([][]float64{{0}, {1}, {2}, {10}, {11}})
	require.NoError(t, err)

	f, err := forest.New(5)
	require.NoError(t, err)
	require.NoError(t, f.AddEdge(0, 1, 1))
	require.NoError(t, f.AddEdge(1, 2, 1))
	require.NoError(t, f.AddEdge(2, 3, 8))
	require.NoError(t, f.AddEdge(3, 4, 1))

	return ds, f
}

// buildOutlier returns the 2D criterion-3 scenario: 4 tightly grouped
// points plus 1 distant outlier connected by one long edge.
func buildOutlier(t *testing.T) (*cluster.Dataset, *forest.SpanningForest) {
	t.Helper()

	ds, err := cluster.NewDataset([][]float64{
		{0, 0},
		{1, 0},
		{0, 1},
		{1, 1},
		{10, 10},
	})
	require.NoError(t, err)

	f, err := forest.New(5)
	require.NoError(t, err)
	require.NoError(t, f.AddEdge(0, 1, 1))
	require.NoError(t, f.AddEdge(0, 2, 1))
	require.NoError(t, f.AddEdge(1, 3, 1))
	require.NoError(t, f.AddEdge(3, 4, 12.7279220614))

	return ds, f
}

// memberships flattens a partition row into the point indices it covers.
func memberships(p *cluster.Partition, row int) []int {
	var ids []int
	for k := 0; k < p.Points(); k++ {
		if p.At(row, k) == 1 {
			ids = append(ids, k)
		}
	}

	return ids
}

// assertHard verifies the hard-partition invariant: every column holds
// exactly one 1 and nothing else.
func assertHard(t *testing.T, p *cluster.Partition) {
	t.Helper()

	for k := 0; k < p.Points(); k++ {
		var sum float64
		var nonzero int
		for c := 0; c < p.Clusters(); c++ {
			v := p.At(c, k)
			sum += v
			if v != 0 {
				nonzero++
			}
		}
		assert.Equal(t, 1.0, sum, "column %d must sum to 1", k)
		assert.Equal(t, 1, nonzero, "column %d must have a single owner", k)
	}
}

// TestApply_Validation exercises the engine's precondition errors.
func TestApply_Validation(t *testing.T) {
	ds, f := buildCollinear(t)
	m := zahn.NewModel()

	_, err := m.Apply(nil, f, 1, nil)
	assert.ErrorIs(t, err, zahn.ErrNilInput)
	_, err = m.Apply(ds, nil, 1, nil)
	assert.ErrorIs(t, err, zahn.ErrNilInput)

	// Forest over a different node count than the dataset.
	small, err := forest.New(3)
	require.NoError(t, err)
	_, err = m.Apply(ds, small, 1, nil)
	assert.ErrorIs(t, err, zahn.ErrShapeMismatch)

	// Invalid worker count surfaces from the batch runner.
	_, err = m.Apply(ds, f, 0, nil)
	assert.ErrorIs(t, err, cluster.ErrBadWorkers)
}

// TestApply_FirstCriterion pins the canonical scenario: with the default
// cutting coefficient, criterion 1 fires on the weight-8 bridge and the
// result is exactly two clusters {0,1,2} and {3,4}.
func TestApply_FirstCriterion(t *testing.T) {
	ds, f := buildCollinear(t)
	m := zahn.NewModel(
		zahn.WithSecondCriterion(false),
		zahn.WithThirdCriterion(false),
	)

	p, err := m.Apply(ds, f, 1, nil)
	require.NoError(t, err)

	require.Equal(t, 2, p.Clusters())
	assertHard(t, p)
	assert.Equal(t, []int{0, 1, 2}, memberships(p, 0))
	assert.Equal(t, []int{3, 4}, memberships(p, 1))

	// The forest was split in place.
	assert.Equal(t, 2, f.Size())
	assert.False(t, f.HasEdge(2, 3))
}

// TestApply_FirstCriterion_TooHighCoefficient verifies the boundary: a
// coefficient pushing the threshold above the heaviest weight yields zero
// cuts (8 < c·11/4 for c = 3).
func TestApply_FirstCriterion_TooHighCoefficient(t *testing.T) {
	ds, f := buildCollinear(t)
	m := zahn.NewModel(
		zahn.WithCuttingCoefficient(3),
		zahn.WithSecondCriterion(false),
		zahn.WithThirdCriterion(false),
	)

	p, err := m.Apply(ds, f, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, p.Clusters())
	assert.Equal(t, 1, f.Size())
}

// TestApply_SecondCriterion builds two tight 1D groups joined by a bridge
// whose weight clears the local-neighborhood threshold while the global
// criterion is tuned not to fire.
func TestApply_SecondCriterion(t *testing.T) {
	// Points 0..4 at x = 0,0.5,...,2 and 5..9 at x = 8,8.5,...,10.
	rows := make([][]float64, 0, 10)
	for i := 0; i < 5; i++ {
		rows = append(rows, []float64{0.5 * float64(i)})
	}
	for i := 0; i < 5; i++ {
		rows = append(rows, []float64{8 + 0.5*float64(i)})
	}
	ds, err := cluster.NewDataset(rows)
	require.NoError(t, err)

	f, err := forest.New(10)
	require.NoError(t, err)
	for i := 1; i < 5; i++ {
		require.NoError(t, f.AddEdge(i-1, i, 0.5))
	}
	require.NoError(t, f.AddEdge(4, 5, 6)) // the bridge
	for i := 6; i < 10; i++ {
		require.NoError(t, f.AddEdge(i-1, i, 0.5))
	}

	// Coefficient 5.5 keeps criterion 1 silent (6 < 5.5·10/9) and is the
	// only enabled path besides it — criterion 2 must find the bridge.
	m := zahn.NewModel(
		zahn.WithCuttingCoefficient(5.5),
		zahn.WithFirstCriterion(false),
		zahn.WithThirdCriterion(false),
	)

	p, err := m.Apply(ds, f, 1, nil)
	require.NoError(t, err)

	require.Equal(t, 2, p.Clusters())
	assertHard(t, p)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, memberships(p, 0))
	assert.Equal(t, []int{5, 6, 7, 8, 9}, memberships(p, 1))
	assert.False(t, f.HasEdge(4, 5))
}

// TestApply_ThirdCriterion pins the outlier scenario: the split-quality
// criterion isolates the distant point as its own singleton cluster.
func TestApply_ThirdCriterion(t *testing.T) {
	ds, f := buildOutlier(t)
	m := zahn.NewModel(
		zahn.WithFirstCriterion(false),
		zahn.WithSecondCriterion(false),
		zahn.WithMaxClusters(2),
	)

	p, err := m.Apply(ds, f, 1, nil)
	require.NoError(t, err)

	require.Equal(t, 2, p.Clusters())
	assertHard(t, p)
	assert.Equal(t, []int{0, 1, 2, 3}, memberships(p, 0))
	assert.Equal(t, []int{4}, memberships(p, 1))
}

// TestApply_ThirdCriterion_ToleranceBoundary verifies the boundary: with
// the tolerance raised above the true minimal split sum (0.25 for the
// tight square plus a zero-volume singleton), no cut is applied.
func TestApply_ThirdCriterion_ToleranceBoundary(t *testing.T) {
	ds, f := buildOutlier(t)
	m := zahn.NewModel(
		zahn.WithFirstCriterion(false),
		zahn.WithSecondCriterion(false),
		zahn.WithHVTolerance(0.3),
		zahn.WithMaxClusters(2),
	)

	p, err := m.Apply(ds, f, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, p.Clusters())
	assert.Equal(t, 1, f.Size())
}

// TestApply_AllCriteriaDisabled verifies the engine performs zero cuts and
// returns the forest's initial partition unchanged.
func TestApply_AllCriteriaDisabled(t *testing.T) {
	ds, f := buildCollinear(t)
	require.NoError(t, f.RemoveEdge(2, 3)) // start from two trees

	m := zahn.NewModel(
		zahn.WithFirstCriterion(false),
		zahn.WithSecondCriterion(false),
		zahn.WithThirdCriterion(false),
	)

	p, err := m.Apply(ds, f, 1, nil)
	require.NoError(t, err)

	require.Equal(t, 2, p.Clusters())
	assertHard(t, p)
	assert.Equal(t, []int{0, 1, 2}, memberships(p, 0))
	assert.Equal(t, []int{3, 4}, memberships(p, 1))
	assert.Equal(t, 2, f.Size())
}

// TestApply_MaxClustersBound verifies the bound halts further cutting even
// while criteria would keep firing.
func TestApply_MaxClustersBound(t *testing.T) {
	ds, f := buildCollinear(t)
	m := zahn.NewModel(zahn.WithMaxClusters(2))

	p, err := m.Apply(ds, f, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, p.Clusters())
	assert.Equal(t, 2, f.Size())
}

// TestApply_WorkerCountInvariance verifies one worker and four workers
// produce bit-identical partitions on identical inputs.
func TestApply_WorkerCountInvariance(t *testing.T) {
	ds1, f1 := buildCollinear(t)
	ds2, f2 := buildCollinear(t)

	p1, err := zahn.NewModel().Apply(ds1, f1, 1, nil)
	require.NoError(t, err)
	p4, err := zahn.NewModel().Apply(ds2, f2, 4, nil)
	require.NoError(t, err)

	require.Equal(t, p1.Clusters(), p4.Clusters())
	for c := 0; c < p1.Clusters(); c++ {
		for k := 0; k < p1.Points(); k++ {
			assert.Equal(t, p1.At(c, k), p4.At(c, k), "cell (%d,%d)", c, k)
		}
	}
}

// TestApply_SingletonForest verifies a forest of isolated nodes terminates
// immediately: the worst candidate has no edges, so no cut is available.
func TestApply_SingletonForest(t *testing.T) {
	ds, err := cluster.NewDataset([][]float64{{0}, {5}, {9}})
	require.NoError(t, err)
	f, err := forest.New(3)
	require.NoError(t, err)

	p, err := zahn.NewModel().Apply(ds, f, 1, nil)
	require.NoError(t, err)

	require.Equal(t, 3, p.Clusters())
	assertHard(t, p)
	for c := 0; c < 3; c++ {
		assert.Equal(t, []int{c}, memberships(p, c))
	}
}
