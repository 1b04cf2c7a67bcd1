package fuzzymath

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// HyperVolume returns the fuzzy hyper-volume of the cluster formed by the
// given member ids: sqrt(det(F)) where F is the cluster's covariance matrix
// around center, with each member weighted by membership^exponent (full
// membership here, so the weight is 1 for every member).
//
// A singleton cluster has zero dispersion and volume 0. Degenerate
// multi-point clusters yield +Inf: fewer members than dims+1, or a
// covariance matrix that is not positive definite (e.g. duplicated or
// collinear points). +Inf is a designed sentinel, not an error; it keeps a
// split that would strand the cluster rank-deficient from ever winning,
// while a clean singleton split (one outlier cut loose) stays eligible.
//
// data is flat row-major with n rows of dims columns; ids index rows of
// data; center must have dims entries.
func HyperVolume(data []float64, n, dims int, exponent float64, ids []int, center []float64) float64 {
	_ = exponent // hard memberships: 1^exponent == 1; kept for contract symmetry

	// A lone point occupies no volume.
	if len(ids) == 1 {
		return 0
	}
	// A full-rank D×D covariance needs at least D+1 distinct points.
	if len(ids) <= dims {
		return math.Inf(1)
	}

	// Accumulate the covariance of members around center.
	cov := make([]float64, dims*dims)
	diff := make([]float64, dims)
	for _, id := range ids {
		row := data[id*dims : (id+1)*dims]
		for d := 0; d < dims; d++ {
			diff[d] = row[d] - center[d]
		}
		for i := 0; i < dims; i++ {
			for j := i; j < dims; j++ {
				cov[i*dims+j] += diff[i] * diff[j]
			}
		}
	}
	inv := 1.0 / float64(len(ids))
	for i := 0; i < dims; i++ {
		for j := i; j < dims; j++ {
			cov[i*dims+j] *= inv
			cov[j*dims+i] = cov[i*dims+j]
		}
	}

	// A failed Cholesky factorization means the covariance is singular
	// (or indefinite through rounding): the degenerate sentinel applies.
	var ch mat.Cholesky
	if !ch.Factorize(mat.NewSymDense(dims, cov)) {
		return math.Inf(1)
	}

	// sqrt(det(F)) computed in the log domain to dodge under/overflow.
	return math.Exp(0.5 * ch.LogDet())
}
