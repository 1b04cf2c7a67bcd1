package fuzzymath

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// ClusterLogDistances returns, for every dataset point, the natural log of
// the Gath–Geva exponential distance to the cluster described by the given
// membership row:
//
//	D²(k) = sqrt(det(F)) / α · exp(q(k)/2)
//	lnD(k) = (ln det(F)/2 − ln α + q(k)/2) / 2
//
// where F is the membership^exponent-weighted covariance around the fuzzy
// mean, α is the cluster's prior (mean membership), and q(k) is the
// Mahalanobis quadratic form of point k against F.
//
// A degenerate cluster (zero total membership weight or singular F) yields
// +Inf for every point: in the reciprocal membership update that sends the
// cluster's memberships to zero.
//
// data is flat row-major with n rows of dims columns; memberships has one
// entry per point (the cluster's partition row). The returned slice has n
// entries.
func ClusterLogDistances(data []float64, n, dims int, exponent float64, memberships []float64) []float64 {
	out := make([]float64, n)

	// Weighted mean of the data under w = u^exponent.
	w := make([]float64, n)
	var sumW, sumU float64
	for k := 0; k < n; k++ {
		w[k] = math.Pow(memberships[k], exponent)
		sumW += w[k]
		sumU += memberships[k]
	}
	if sumW == 0 {
		return fillInf(out)
	}
	mean := make([]float64, dims)
	for k := 0; k < n; k++ {
		if w[k] == 0 {
			continue
		}
		row := data[k*dims : (k+1)*dims]
		for d := 0; d < dims; d++ {
			mean[d] += w[k] * row[d]
		}
	}
	for d := 0; d < dims; d++ {
		mean[d] /= sumW
	}

	// Weighted fuzzy covariance around the mean.
	cov := make([]float64, dims*dims)
	diff := make([]float64, dims)
	for k := 0; k < n; k++ {
		if w[k] == 0 {
			continue
		}
		row := data[k*dims : (k+1)*dims]
		for d := 0; d < dims; d++ {
			diff[d] = row[d] - mean[d]
		}
		for i := 0; i < dims; i++ {
			for j := i; j < dims; j++ {
				cov[i*dims+j] += w[k] * diff[i] * diff[j]
			}
		}
	}
	for i := 0; i < dims; i++ {
		for j := i; j < dims; j++ {
			cov[i*dims+j] /= sumW
			cov[j*dims+i] = cov[i*dims+j]
		}
	}

	var ch mat.Cholesky
	if !ch.Factorize(mat.NewSymDense(dims, cov)) {
		return fillInf(out)
	}

	// Constant part of lnD: ln det(F)/2 − ln α.
	prior := sumU / float64(n)
	base := 0.5*ch.LogDet() - math.Log(prior)

	// Per-point Mahalanobis quadratic form q = diffᵀ F⁻¹ diff.
	var solved mat.VecDense
	for k := 0; k < n; k++ {
		row := data[k*dims : (k+1)*dims]
		for d := 0; d < dims; d++ {
			diff[d] = row[d] - mean[d]
		}
		v := mat.NewVecDense(dims, diff)
		if err := ch.SolveVecTo(&solved, v); err != nil {
			return fillInf(out)
		}
		q := mat.Dot(v, &solved)
		out[k] = 0.5 * (base + 0.5*q)
	}

	return out
}

// fillInf overwrites every entry of dst with +Inf and returns it.
func fillInf(dst []float64) []float64 {
	inf := math.Inf(1)
	for i := range dst {
		dst[i] = inf
	}

	return dst
}
