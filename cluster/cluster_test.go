package cluster_test

import (
	"testing"

	"github.com/katalvlaran/mstclust/cluster"
	"github.com/katalvlaran/mstclust/forest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewDataset_Validation exercises dataset shape validation.
func TestNewDataset_Validation(t *testing.T) {
	// No points at all.
	_, err := cluster.NewDataset(nil)
	assert.ErrorIs(t, err, cluster.ErrEmptyDataset)

	// A point with no dimensions.
	_, err = cluster.NewDataset([][]float64{{}})
	assert.ErrorIs(t, err, cluster.ErrEmptyDataset)

	// Ragged rows.
	_, err = cluster.NewDataset([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, cluster.ErrRaggedDataset)
}

// TestDataset_Accessors verifies shape and row views over flat storage.
func TestDataset_Accessors(t *testing.T) {
	ds, err := cluster.NewDataset([][]float64{{1, 2}, {3, 4}, {5, 6}})
	require.NoError(t, err)

	assert.Equal(t, 3, ds.Len())
	assert.Equal(t, 2, ds.Dims())
	assert.Equal(t, []float64{3, 4}, ds.Row(1))
	assert.Equal(t, []float64{1, 2, 3, 4, 5, 6}, ds.Flat())
}

// TestPartition_Basics verifies construction, accessors, clone isolation
// and noise-row detection.
func TestPartition_Basics(t *testing.T) {
	_, err := cluster.NewPartition(0, 3)
	assert.ErrorIs(t, err, cluster.ErrBadShape)

	p, err := cluster.NewPartition(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, p.Clusters())
	assert.Equal(t, 3, p.Points())

	// Freshly created rows are all noise.
	assert.True(t, p.IsNoiseRow(0))
	assert.True(t, p.IsNoiseRow(1))

	p.Set(0, 1, 0.75)
	assert.Equal(t, 0.75, p.At(0, 1))
	assert.False(t, p.IsNoiseRow(0))
	assert.Equal(t, []float64{0, 0.75, 0}, p.Row(0))

	// Clone is a deep copy: mutating it leaves the original untouched.
	q := p.Clone()
	q.Set(0, 1, 0.25)
	assert.Equal(t, 0.75, p.At(0, 1))
	assert.Equal(t, 0.25, q.At(0, 1))
}

// TestPartition_Distance checks the Frobenius distance on a hand-computed
// pair: matrices differing by 3 and 4 in two cells are 5 apart.
func TestPartition_Distance(t *testing.T) {
	p, err := cluster.NewPartition(2, 2)
	require.NoError(t, err)
	q := p.Clone()
	q.Set(0, 0, 3)
	q.Set(1, 1, 4)

	assert.InDelta(t, 5.0, p.Distance(q), 1e-12)
	assert.InDelta(t, 0.0, p.Distance(p.Clone()), 1e-12)
}

// TestClusterInfo_Singleton verifies an edgeless tree resolves to the root
// alone with the root's point as centroid.
func TestClusterInfo_Singleton(t *testing.T) {
	ds, err := cluster.NewDataset([][]float64{{0, 0}, {4, 2}, {9, 9}})
	require.NoError(t, err)
	f, err := forest.New(3)
	require.NoError(t, err)

	// Forest of three singletons: cluster 1 is node 1.
	ids, edges, center, err := cluster.ClusterInfo(ds, f, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, ids)
	assert.Empty(t, edges)
	assert.Equal(t, []float64{4, 2}, center)
}

// TestClusterInfo_MultiNode verifies member ids and centroid of a connected
// tree: nodes {0,1,2} at known coordinates.
func TestClusterInfo_MultiNode(t *testing.T) {
	ds, err := cluster.NewDataset([][]float64{{0, 0}, {2, 0}, {4, 6}, {100, 100}})
	require.NoError(t, err)
	f, err := forest.New(4)
	require.NoError(t, err)
	require.NoError(t, f.AddEdge(0, 1, 2))
	require.NoError(t, f.AddEdge(1, 2, 6.3))

	// Clusters in root order: {0,1,2} rooted at 0, {3} rooted at 3.
	ids, edges, center, err := cluster.ClusterInfo(ds, f, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, ids)
	assert.Len(t, edges, 2)
	assert.Equal(t, []float64{2, 2}, center)

	// Out-of-range cluster index.
	_, _, _, err = cluster.ClusterInfo(ds, f, 2)
	assert.ErrorIs(t, err, cluster.ErrClusterIndex)
	_, _, _, err = cluster.ClusterInfo(ds, f, -1)
	assert.ErrorIs(t, err, cluster.ErrClusterIndex)
}

// TestClusterInfo_Pure verifies the resolver leaves the forest untouched.
func TestClusterInfo_Pure(t *testing.T) {
	ds, err := cluster.NewDataset([][]float64{{0}, {1}, {2}})
	require.NoError(t, err)
	f, err := forest.New(3)
	require.NoError(t, err)
	require.NoError(t, f.AddEdge(0, 1, 1))

	before := f.Roots()
	_, _, _, err = cluster.ClusterInfo(ds, f, 0)
	require.NoError(t, err)
	assert.Equal(t, before, f.Roots())
	assert.Equal(t, 2, f.Size())
}
