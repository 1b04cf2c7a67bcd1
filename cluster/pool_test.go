package cluster_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/mstclust/cluster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// squareTasks builds one independent task per input value.
func squareTasks(values []float64) []cluster.Task[float64] {
	tasks := make([]cluster.Task[float64], len(values))
	for i, v := range values {
		tasks[i] = func(_ *cluster.SharedContext) (float64, error) {
			return v * v, nil
		}
	}

	return tasks
}

// TestRunBatch_Validation verifies the worker-count precondition.
func TestRunBatch_Validation(t *testing.T) {
	_, err := cluster.RunBatch(nil, 0, squareTasks([]float64{1}))
	assert.ErrorIs(t, err, cluster.ErrBadWorkers)
}

// TestRunBatch_OrderMatchesSubmission verifies results land at their
// submission index for both the sequential and the concurrent path.
func TestRunBatch_OrderMatchesSubmission(t *testing.T) {
	values := []float64{3, 1, 4, 1, 5, 9, 2, 6}
	sc := &cluster.SharedContext{Exponent: 2}

	want := []float64{9, 1, 16, 1, 25, 81, 4, 36}
	for _, workers := range []int{1, 2, 4, 16} {
		got, err := cluster.RunBatch(sc, workers, squareTasks(values))
		require.NoError(t, err)
		assert.Equal(t, want, got, "workers=%d", workers)
	}
}

// TestRunBatch_WorkerCountInvariance verifies one worker and many workers
// produce bit-identical results on the same inputs.
func TestRunBatch_WorkerCountInvariance(t *testing.T) {
	values := make([]float64, 100)
	for i := range values {
		values[i] = float64(i) * 0.37
	}

	seq, err := cluster.RunBatch(nil, 1, squareTasks(values))
	require.NoError(t, err)
	par, err := cluster.RunBatch(nil, 8, squareTasks(values))
	require.NoError(t, err)
	assert.Equal(t, seq, par)
}

// TestRunBatch_FailurePropagation verifies a single failing task fails the
// whole batch and no partial results are returned.
func TestRunBatch_FailurePropagation(t *testing.T) {
	boom := errors.New("task exploded")
	tasks := []cluster.Task[int]{
		func(*cluster.SharedContext) (int, error) { return 1, nil },
		func(*cluster.SharedContext) (int, error) { return 0, boom },
		func(*cluster.SharedContext) (int, error) { return 3, nil },
	}

	for _, workers := range []int{1, 4} {
		got, err := cluster.RunBatch(nil, workers, tasks)
		assert.ErrorIs(t, err, boom, "workers=%d", workers)
		assert.Nil(t, got, "workers=%d", workers)
	}
}

// TestRunBatch_EmptyBatch verifies a batch of zero tasks completes cleanly.
func TestRunBatch_EmptyBatch(t *testing.T) {
	got, err := cluster.RunBatch[int](nil, 3, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

// TestRunBatch_SharedContextVisible verifies every task observes the same
// published dataset reference without copying.
func TestRunBatch_SharedContextVisible(t *testing.T) {
	ds, err := cluster.NewDataset([][]float64{{1}, {2}, {3}})
	require.NoError(t, err)
	sc := &cluster.SharedContext{Data: ds, Exponent: 2}

	tasks := make([]cluster.Task[float64], ds.Len())
	for i := range tasks {
		tasks[i] = func(sc *cluster.SharedContext) (float64, error) {
			return sc.Data.Row(i)[0], nil
		}
	}

	got, err := cluster.RunBatch(sc, 2, tasks)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, got)
}
