package cluster

import "errors"

// Sentinel errors for dataset construction.
var (
	// ErrEmptyDataset indicates a dataset with no points or no dimensions.
	ErrEmptyDataset = errors.New("cluster: dataset must contain at least one point with at least one dimension")

	// ErrRaggedDataset indicates input rows of differing lengths.
	ErrRaggedDataset = errors.New("cluster: all points must have the same dimensionality")
)

// Dataset is an immutable, ordered collection of N points in D-dimensional
// space. Row order defines the canonical point-index space used by the
// forest, the partition matrix and every kernel. The backing slice is
// shared, not copied, when a Dataset is handed to worker tasks.
type Dataset struct {
	pts  []float64 // flat row-major storage, length n*d
	n, d int
}

// NewDataset builds a Dataset from per-point rows, flattening them into
// row-major storage. Rows must be non-empty and of equal length.
// Complexity: O(n*d).
func NewDataset(points [][]float64) (*Dataset, error) {
	// Validate shape before allocating.
	if len(points) == 0 || len(points[0]) == 0 {
		return nil, ErrEmptyDataset
	}
	d := len(points[0])
	for _, row := range points {
		if len(row) != d {
			return nil, ErrRaggedDataset
		}
	}

	// Flatten into one contiguous slice.
	flat := make([]float64, 0, len(points)*d)
	for _, row := range points {
		flat = append(flat, row...)
	}

	return &Dataset{pts: flat, n: len(points), d: d}, nil
}

// Len returns the number of points N.
func (ds *Dataset) Len() int { return ds.n }

// Dims returns the dimensionality D.
func (ds *Dataset) Dims() int { return ds.d }

// Row returns point i as a read-only view into the backing storage.
// Callers must not mutate the returned slice.
func (ds *Dataset) Row(i int) []float64 {
	return ds.pts[i*ds.d : (i+1)*ds.d]
}

// Flat returns the full row-major backing slice as a read-only view.
// Callers must not mutate the returned slice.
func (ds *Dataset) Flat() []float64 { return ds.pts }
