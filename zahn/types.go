package zahn

import (
	"errors"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/mstclust/cluster"
	"github.com/katalvlaran/mstclust/spatial"
)

// Sentinel errors for the divisive engine.
var (
	// ErrNilInput indicates a nil dataset or forest.
	ErrNilInput = errors.New("zahn: dataset and forest must be non-nil")

	// ErrShapeMismatch indicates the forest was built over a different
	// number of nodes than the dataset has points.
	ErrShapeMismatch = errors.New("zahn: forest size must match dataset length")
)

// Defaults for the engine's configuration surface.
const (
	// DefaultCuttingCoefficient scales the mean edge weight in criteria 1 and 2.
	DefaultCuttingCoefficient = 2.5

	// DefaultExponent is the fuzziness exponent fed to the hyper-volume kernel.
	DefaultExponent = 2.0

	// DefaultHVTolerance is the minimal split hyper-volume sum criterion 3
	// must exceed before a cut is applied.
	DefaultHVTolerance = 1e-4

	// Unbounded disables the maximum cluster-count bound.
	Unbounded = -1
)

// Option configures a Model at construction time; the configuration is
// not mutable afterwards.
type Option func(*Model)

// WithCuttingCoefficient sets the inconsistency coefficient for criteria 1 and 2.
func WithCuttingCoefficient(c float64) Option {
	return func(m *Model) { m.cuttingCoeff = c }
}

// WithExponent sets the fuzziness exponent used by hyper-volume statistics.
func WithExponent(exp float64) Option {
	return func(m *Model) { m.exponent = exp }
}

// WithHVTolerance sets the minimal split hyper-volume sum for criterion 3.
func WithHVTolerance(tol float64) Option {
	return func(m *Model) { m.hvTolerance = tol }
}

// WithMaxClusters bounds the number of clusters the engine may produce;
// pass Unbounded (the default) to keep cutting while criteria fire.
func WithMaxClusters(limit int) Option {
	return func(m *Model) { m.maxClusters = limit }
}

// WithFirstCriterion enables or disables the global mean-weight criterion.
func WithFirstCriterion(enabled bool) Option {
	return func(m *Model) { m.useFirst = enabled }
}

// WithSecondCriterion enables or disables the local-neighborhood criterion.
func WithSecondCriterion(enabled bool) Option {
	return func(m *Model) { m.useSecond = enabled }
}

// WithThirdCriterion enables or disables the split-quality criterion.
func WithThirdCriterion(enabled bool) Option {
	return func(m *Model) { m.useThird = enabled }
}

// WithLogger routes per-iteration debug logging to the given logger.
// The default logger discards everything.
func WithLogger(log logrus.FieldLogger) Option {
	return func(m *Model) { m.log = log }
}

// Model is the divisive clustering engine. It implements cluster.Model;
// Apply mutates the supplied forest in place and returns the resulting
// hard partition. A Model is reusable across datasets; its cached spatial
// index is rebuilt whenever the dataset identity changes.
type Model struct {
	cuttingCoeff float64
	exponent     float64
	hvTolerance  float64
	maxClusters  int
	useFirst     bool
	useSecond    bool
	useThird     bool
	log          logrus.FieldLogger

	// Lazily built KD-tree for criterion 2, cached for the engine's
	// lifetime and keyed to the dataset it was built over.
	tree     *spatial.KDTree
	treeData *cluster.Dataset
}

// NewModel creates a divisive engine with all three criteria enabled and
// the documented defaults, then applies the given options.
func NewModel(opts ...Option) *Model {
	quiet := logrus.New()
	quiet.SetOutput(io.Discard)

	m := &Model{
		cuttingCoeff: DefaultCuttingCoefficient,
		exponent:     DefaultExponent,
		hvTolerance:  DefaultHVTolerance,
		maxClusters:  Unbounded,
		useFirst:     true,
		useSecond:    true,
		useThird:     true,
		log:          quiet,
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}
