package cluster

import (
	"errors"

	"golang.org/x/sync/errgroup"
)

// ErrBadWorkers indicates a worker count below 1.
var ErrBadWorkers = errors.New("cluster: worker count must be >= 1")

// SharedContext is the read-mostly bundle published once to every task of
// one batch: the dataset, an optional partition, and scalar configuration.
// It is populated before the batch starts and must not be mutated until
// RunBatch returns; tasks read it in place and return fresh results instead
// of writing back into it.
type SharedContext struct {
	// Data is the dataset shared by all tasks, accessed without copying.
	Data *Dataset

	// Partition is the current membership matrix, when the computation
	// needs one (fuzzy refinement); nil otherwise.
	Partition *Partition

	// Exponent is the fuzziness exponent the tasks' kernels apply.
	Exponent float64
}

// Task is one independent unit of a batch. It receives the batch's shared
// context and returns a freshly computed result.
type Task[R any] func(sc *SharedContext) (R, error)

// RunBatch executes every task against the shared context across at most
// workers goroutines and blocks until all complete (full barrier — no
// streaming, no partial results). The returned slice matches submission
// order: results[i] belongs to tasks[i], so output is bit-identical for
// any worker count. Any task error fails the whole batch; remaining
// started tasks still finish before the error is returned.
// Complexity: O(len(tasks)) scheduling overhead on top of the task work.
func RunBatch[R any](sc *SharedContext, workers int, tasks []Task[R]) ([]R, error) {
	// Validate the requested pool size.
	if workers < 1 {
		return nil, ErrBadWorkers
	}

	results := make([]R, len(tasks))

	// Single worker: plain sequential execution, semantically identical
	// to the concurrent path.
	if workers == 1 {
		for i, task := range tasks {
			r, err := task(sc)
			if err != nil {
				return nil, err
			}
			results[i] = r
		}

		return results, nil
	}

	// Bounded fork/join: errgroup caps concurrency at the worker count,
	// waits for every started task, and keeps the first error.
	var g errgroup.Group
	g.SetLimit(workers)
	for i, task := range tasks {
		g.Go(func() error {
			r, err := task(sc)
			if err != nil {
				return err
			}
			results[i] = r

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
