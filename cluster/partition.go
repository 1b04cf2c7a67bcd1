package cluster

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// ErrBadShape indicates a partition with non-positive dimensions.
var ErrBadShape = errors.New("cluster: partition dimensions must be > 0")

// Partition is a C×N matrix of non-negative membership weights: one row
// per cluster, one column per point. A hard partition has exactly one 1
// per column; a fuzzy partition has any column summing to 1. An all-zero
// row marks a noise cluster that refinement leaves untouched.
//
// Storage is a gonum Dense matrix; index accessors delegate to it and
// share its bounds-checking behavior (out-of-range access panics).
type Partition struct {
	m *mat.Dense
}

// NewPartition creates a clusters×points partition initialized to zeros.
// Complexity: O(clusters*points).
func NewPartition(clusters, points int) (*Partition, error) {
	if clusters <= 0 || points <= 0 {
		return nil, ErrBadShape
	}

	return &Partition{m: mat.NewDense(clusters, points, nil)}, nil
}

// Clusters returns the number of rows C.
func (p *Partition) Clusters() int {
	r, _ := p.m.Dims()

	return r
}

// Points returns the number of columns N.
func (p *Partition) Points() int {
	_, c := p.m.Dims()

	return c
}

// At returns the membership of point k in cluster c.
func (p *Partition) At(c, k int) float64 { return p.m.At(c, k) }

// Set assigns the membership of point k in cluster c.
func (p *Partition) Set(c, k int, v float64) { p.m.Set(c, k, v) }

// Row returns cluster c's membership row as a read-only view into the
// backing storage. Callers must not mutate the returned slice.
func (p *Partition) Row(c int) []float64 { return p.m.RawRowView(c) }

// Clone returns a deep copy of the partition.
// Complexity: O(C*N).
func (p *Partition) Clone() *Partition {
	return &Partition{m: mat.DenseCopyOf(p.m)}
}

// Distance returns the Frobenius (element-wise Euclidean) distance between
// two partitions of identical shape. The fuzzy engine's convergence test
// compares this against its tolerance.
func (p *Partition) Distance(other *Partition) float64 {
	var diff mat.Dense
	diff.Sub(p.m, other.m)

	return mat.Norm(&diff, 2)
}

// IsNoiseRow reports whether cluster c's row is identically zero — the
// marker for a noise cluster excluded from fuzzy normalization.
func (p *Partition) IsNoiseRow(c int) bool {
	for _, v := range p.m.RawRowView(c) {
		if v != 0 {
			return false
		}
	}

	return true
}
