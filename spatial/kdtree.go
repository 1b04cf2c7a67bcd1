package spatial

import (
	"errors"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Sentinel errors for KD-tree construction and queries.
var (
	// ErrNoPoints indicates the dataset has no rows.
	ErrNoPoints = errors.New("spatial: dataset must contain at least one point")

	// ErrBadShape indicates data length does not equal rows×dims or dims <= 0.
	ErrBadShape = errors.New("spatial: data length must equal rows*dims with dims > 0")

	// ErrDimensionMismatch indicates a query point of the wrong dimensionality.
	ErrDimensionMismatch = errors.New("spatial: query dimensionality mismatch")
)

// leafSize caps the number of points stored in one leaf node.
const leafSize = 16

// node is one KD-tree node over the index permutation range [start, end).
// Leaves keep their points inline; internal nodes delegate to two children
// split at the median of the widest-spread dimension.
type node struct {
	start, end  int
	left, right *node
	// boundsMin/boundsMax are the axis-aligned bounding box of the node's
	// points, used for pruning ball queries.
	boundsMin, boundsMax []float64
}

// KDTree is an immutable spatial index over flat row-major point data.
type KDTree struct {
	data []float64 // n*dims values, row-major
	n    int
	dims int
	idx  []int // permutation: tree position → original point index
	root *node
}

// NewKDTree builds a KD-tree over n points of dimensionality dims stored
// row-major in data. The data slice is not copied; callers must not mutate
// it while the tree is in use.
// Complexity: O(n log² n) time, O(n) extra memory.
func NewKDTree(data []float64, n, dims int) (*KDTree, error) {
	// Validate the declared shape.
	if n <= 0 {
		return nil, ErrNoPoints
	}
	if dims <= 0 || len(data) != n*dims {
		return nil, ErrBadShape
	}

	// Identity permutation; build reorders it in place.
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	t := &KDTree{data: data, n: n, dims: dims, idx: idx}
	t.root = t.build(0, n)

	return t, nil
}

// build constructs the subtree over idx[start:end).
func (t *KDTree) build(start, end int) *node {
	nd := &node{start: start, end: end}
	nd.boundsMin, nd.boundsMax = t.bounds(start, end)

	if end-start <= leafSize {
		return nd
	}

	// Split on the dimension with the greatest spread.
	splitDim := 0
	maxSpread := -1.0
	for d := 0; d < t.dims; d++ {
		spread := nd.boundsMax[d] - nd.boundsMin[d]
		if spread > maxSpread {
			maxSpread = spread
			splitDim = d
		}
	}

	// Sort the permutation range by the split dimension; split at the median.
	sub := t.idx[start:end]
	sort.Slice(sub, func(i, j int) bool {
		return t.data[sub[i]*t.dims+splitDim] < t.data[sub[j]*t.dims+splitDim]
	})
	mid := start + (end-start)/2

	nd.left = t.build(start, mid)
	nd.right = t.build(mid, end)

	return nd
}

// bounds computes the axis-aligned bounding box of idx[start:end).
func (t *KDTree) bounds(start, end int) (lo, hi []float64) {
	lo = make([]float64, t.dims)
	hi = make([]float64, t.dims)
	first := t.idx[start] * t.dims
	copy(lo, t.data[first:first+t.dims])
	copy(hi, t.data[first:first+t.dims])
	for i := start + 1; i < end; i++ {
		base := t.idx[i] * t.dims
		for d := 0; d < t.dims; d++ {
			v := t.data[base+d]
			if v < lo[d] {
				lo[d] = v
			}
			if v > hi[d] {
				hi[d] = v
			}
		}
	}

	return lo, hi
}

// QueryBall returns the indices of every point within Euclidean distance r
// of point, boundary inclusive, in ascending order.
// Complexity: O(log n + k) expected for k results.
func (t *KDTree) QueryBall(point []float64, r float64) ([]int, error) {
	// Validate the query point's dimensionality.
	if len(point) != t.dims {
		return nil, ErrDimensionMismatch
	}
	// A negative radius matches nothing.
	if r < 0 {
		return []int{}, nil
	}

	var hits []int
	t.ball(t.root, point, r, &hits)
	// Ascending output keeps downstream iteration deterministic.
	sort.Ints(hits)

	return hits, nil
}

// ball recursively collects in-radius points, pruning subtrees whose
// bounding box lies entirely outside the query ball.
func (t *KDTree) ball(nd *node, point []float64, r float64, hits *[]int) {
	// Prune: minimum squared distance from point to the node's box.
	var minSq float64
	for d := 0; d < t.dims; d++ {
		var gap float64
		if point[d] < nd.boundsMin[d] {
			gap = nd.boundsMin[d] - point[d]
		} else if point[d] > nd.boundsMax[d] {
			gap = point[d] - nd.boundsMax[d]
		}
		minSq += gap * gap
	}
	if minSq > r*r {
		return
	}

	if nd.left == nil {
		// Leaf: test every member point directly.
		for i := nd.start; i < nd.end; i++ {
			p := t.idx[i]
			if floats.Distance(point, t.data[p*t.dims:(p+1)*t.dims], 2) <= r {
				*hits = append(*hits, p)
			}
		}

		return
	}

	t.ball(nd.left, point, r, hits)
	t.ball(nd.right, point, r, hits)
}
