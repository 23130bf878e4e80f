// Package parallel provides the batch-return dispatcher: every partition is
// evaluated in its own goroutine into its own result slot, and the slots are
// concatenated in partition order once all goroutines have terminated.
//
// Because partitions are ascending and each worker emits its values in
// ascending order, the collection returned by Find is ascending by value.
package parallel

import (
	"sync"

	"github.com/sourcegraph/conc/panics"

	"github.com/exascience/primesearch"
)

// Do receives zero or more thunks and executes them in parallel.
//
// Each thunk is invoked in its own goroutine, and Do returns only
// when all thunks have terminated, returning the left-most error
// value that is different from nil.
//
// If a thunk panics, the corresponding goroutine recovers the panic and
// onPanic is called with the index of the thunk and the recovered value as
// an error. The error returned by onPanic takes the place of the error of
// that thunk.
func Do(onPanic func(i int, recovered error) error, thunks ...func() error) error {
	if len(thunks) == 0 {
		return nil
	}
	errs := make([]error, len(thunks))
	var wg sync.WaitGroup
	wg.Add(len(thunks))
	for i, thunk := range thunks {
		go func() {
			defer wg.Done()
			var err error
			if recovered := panics.Try(func() { err = thunk() }); recovered != nil {
				err = onPanic(i, recovered.AsError())
			}
			errs[i] = err
		}()
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// Find validates and partitions r into count partitions, and evaluates pred
// for every value of r, with one goroutine per partition.
//
// On invalid input Find returns the validation error without starting any
// goroutine. If a worker panics, Find waits for all other workers, discards
// every result, and returns a ThreadFailure error for the left-most failed
// partition.
func Find(count uint64, r primesearch.SearchRange, pred primesearch.Predicate) ([]primesearch.CheckedValue, error) {
	partitions, err := primesearch.Partitions(r, count)
	if err != nil {
		return nil, err
	}
	return Run(partitions, pred)
}

// Run evaluates pred over already computed partitions, one goroutine per
// partition, and concatenates the results in the order of partitions.
func Run(partitions []primesearch.Partition, pred primesearch.Predicate) ([]primesearch.CheckedValue, error) {
	slots := make([][]primesearch.CheckedValue, len(partitions))
	thunks := make([]func() error, len(partitions))
	for i, p := range partitions {
		thunks[i] = func() error {
			slots[i] = primesearch.Evaluate(p, pred)
			return nil
		}
	}
	err := Do(func(i int, recovered error) error {
		return primesearch.NewThreadFailure(partitions[i], recovered)
	}, thunks...)
	if err != nil {
		return nil, err
	}
	return Concat(slots), nil
}

// Concat joins the given slices in order into one newly allocated slice.
func Concat(slots [][]primesearch.CheckedValue) []primesearch.CheckedValue {
	var size int
	for _, slot := range slots {
		size += len(slot)
	}
	result := make([]primesearch.CheckedValue, 0, size)
	for _, slot := range slots {
		result = append(result, slot...)
	}
	return result
}
