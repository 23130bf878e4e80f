// Package sequential provides sequential implementations of the
// dispatchers provided by the parallel, stream and pool packages. This
// is useful for testing and debugging.
//
// It is not recommended to use the implementations of this package
// for any other purpose, because they are almost certainly too
// slow for large search ranges.
package sequential

import (
	"github.com/sourcegraph/conc/panics"

	"github.com/exascience/primesearch"
)

// Find validates and partitions r into count partitions, and evaluates pred
// for every value of r, one partition after the other in the calling
// goroutine. The result is ascending by value.
//
// A panicking predicate is reported as a ThreadFailure error for the
// partition that was being evaluated, just like the parallel dispatchers do.
func Find(count uint64, r primesearch.SearchRange, pred primesearch.Predicate) ([]primesearch.CheckedValue, error) {
	partitions, err := primesearch.Partitions(r, count)
	if err != nil {
		return nil, err
	}
	return Run(partitions, pred)
}

// Run evaluates pred over already computed partitions, in order.
func Run(partitions []primesearch.Partition, pred primesearch.Predicate) (result []primesearch.CheckedValue, err error) {
	for _, p := range partitions {
		var values []primesearch.CheckedValue
		if recovered := panics.Try(func() { values = primesearch.Evaluate(p, pred) }); recovered != nil {
			return nil, primesearch.NewThreadFailure(p, recovered.AsError())
		}
		result = append(result, values...)
	}
	return result, nil
}
