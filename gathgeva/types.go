package gathgeva

import (
	"errors"
	"io"

	"github.com/sirupsen/logrus"
)

// Sentinel errors for the fuzzy refinement engine.
var (
	// ErrNoPartition indicates Apply was invoked without a prior partition.
	ErrNoPartition = errors.New("gathgeva: a prior partition matrix is required")

	// ErrNilInput indicates a nil dataset.
	ErrNilInput = errors.New("gathgeva: dataset must be non-nil")

	// ErrShapeMismatch indicates the partition's point count differs from
	// the dataset's.
	ErrShapeMismatch = errors.New("gathgeva: partition columns must match dataset length")

	// ErrBadExponent indicates a fuzziness exponent not greater than 1.
	ErrBadExponent = errors.New("gathgeva: fuzziness exponent must be > 1")

	// ErrNoConvergence indicates the iteration cap was reached before the
	// partition movement fell under the tolerance.
	ErrNoConvergence = errors.New("gathgeva: no convergence within the iteration cap")
)

// Defaults for the engine's configuration surface.
const (
	// DefaultTolerance is the Frobenius distance between consecutive
	// partitions under which iteration stops.
	DefaultTolerance = 1e-4

	// DefaultExponent is the fuzziness exponent m.
	DefaultExponent = 2.0

	// DefaultMaxIterations caps the refinement loop; the textbook update
	// rule has no cap, the implementation needs a safety valve.
	DefaultMaxIterations = 300
)

// Option configures a Model at construction time; the configuration is
// not mutable afterwards.
type Option func(*Model)

// WithTolerance sets the convergence tolerance on the Frobenius distance
// between consecutive partitions.
func WithTolerance(tol float64) Option {
	return func(m *Model) { m.tolerance = tol }
}

// WithExponent sets the fuzziness exponent m (> 1).
func WithExponent(exp float64) Option {
	return func(m *Model) { m.exponent = exp }
}

// WithMaxIterations sets the safety-valve iteration cap.
func WithMaxIterations(limit int) Option {
	return func(m *Model) { m.maxIter = limit }
}

// WithLogger routes per-iteration debug logging to the given logger.
// The default logger discards everything.
func WithLogger(log logrus.FieldLogger) Option {
	return func(m *Model) { m.log = log }
}

// Model is the fuzzy refinement engine. It implements cluster.Model;
// Apply mutates the supplied partition in place and returns it.
type Model struct {
	tolerance float64
	exponent  float64
	maxIter   int
	log       logrus.FieldLogger
}

// NewModel creates a refinement engine with the documented defaults, then
// applies the given options.
func NewModel(opts ...Option) *Model {
	quiet := logrus.New()
	quiet.SetOutput(io.Discard)

	m := &Model{
		tolerance: DefaultTolerance,
		exponent:  DefaultExponent,
		maxIter:   DefaultMaxIterations,
		log:       quiet,
	}
	for _, opt := range opts {
		opt(m)
	}

	return m
}
