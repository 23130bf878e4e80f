// Package primesearch provides the building blocks for searching a numeric
// range for primes in parallel. The range is divided into contiguous,
// non-overlapping partitions of near-equal size, each partition is handed to
// its own worker goroutine, and the per-value results of all workers are
// gathered into one collection.
//
// The package itself contains the validation and partitioning logic as well
// as the worker that evaluates a predicate over one partition. The actual
// dispatchers live in subpackages:
//
// primesearch/parallel dispatches one goroutine per partition and returns the
// results of all partitions concatenated in partition order, so that the
// output is ascending by value. This is the default strategy.
//
// primesearch/stream dispatches one goroutine per partition that sends each
// result through a shared channel as soon as it is computed. The output
// follows arrival order.
//
// primesearch/pool runs partitions on a bounded number of goroutines, queueing
// the excess partitions.
//
// primesearch/sequential provides a sequential implementation of the same
// operations, for testing and debugging purposes.
//
// primesearch/finder selects one of these strategies, and adds logging and
// metrics around each search.
//
// All ranges in this module are inclusive on both ends: the search range
// [1, 20] contains the twenty values 1, 2, ..., 20.
package primesearch
