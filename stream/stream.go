// Package stream provides the streaming-channel dispatcher: every partition
// is evaluated in its own goroutine, and each result is sent through one
// shared channel as soon as it is computed.
//
// The collection returned by Find follows arrival order. Values of one
// partition arrive in ascending order, but values of different partitions
// interleave arbitrarily.
package stream

import (
	"github.com/sourcegraph/conc/panics"
	"golang.org/x/sync/errgroup"

	"github.com/exascience/primesearch"
)

// Find validates and partitions r into count partitions, and evaluates pred
// for every value of r, with one goroutine per partition.
//
// On invalid input Find returns the validation error without starting any
// goroutine. If a worker panics, Find still waits for all other workers,
// discards every result, and returns a ThreadFailure error.
func Find(count uint64, r primesearch.SearchRange, pred primesearch.Predicate) ([]primesearch.CheckedValue, error) {
	partitions, err := primesearch.Partitions(r, count)
	if err != nil {
		return nil, err
	}
	return Run(partitions, pred)
}

// Run evaluates pred over already computed partitions, one producer
// goroutine per partition, and collects the results in arrival order.
func Run(partitions []primesearch.Partition, pred primesearch.Predicate) ([]primesearch.CheckedValue, error) {
	out := make(chan primesearch.CheckedValue, len(partitions))

	var values []primesearch.CheckedValue
	drained := make(chan struct{})
	go func() {
		defer close(drained)
		for v := range out {
			values = append(values, v)
		}
	}()

	var g errgroup.Group
	for _, p := range partitions {
		g.Go(func() error {
			if recovered := panics.Try(func() { primesearch.Emit(p, pred, out) }); recovered != nil {
				return primesearch.NewThreadFailure(p, recovered.AsError())
			}
			return nil
		})
	}
	err := g.Wait()
	// all producers are done, so the drain loop terminates
	close(out)
	<-drained

	if err != nil {
		return nil, err
	}
	return values, nil
}
