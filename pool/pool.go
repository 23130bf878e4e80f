/*
Package pool provides a pooled-worker dispatcher that bounds the number of
partitions evaluated at the same time.

Partitions submitted while all workers are busy wait until a worker becomes
available. Every submitted partition is evaluated exactly once, and Wait
blocks until all of them have been evaluated.
*/
package pool

import (
	"errors"
	"runtime"
	"sync"

	"github.com/sourcegraph/conc/panics"
	concpool "github.com/sourcegraph/conc/pool"

	"github.com/exascience/primesearch"
)

// ErrClosed is returned by Submit after Wait has been called.
var ErrClosed = errors.New("pool: submit after wait")

/*
A Pool evaluates a predicate over submitted partitions on at most Size
goroutines at a time.

A Pool must be created with New, and must not be reused after Wait.
*/
type Pool struct {
	pred    primesearch.Predicate
	size    int
	workers *concpool.ErrorPool

	mutex  sync.Mutex
	slots  []*[]primesearch.CheckedValue
	closed bool
}

// New returns a pool that runs at most size workers at a time. If size is
// <= 0, runtime.GOMAXPROCS(0) is used instead.
func New(size int, pred primesearch.Predicate) *Pool {
	if size <= 0 {
		size = runtime.GOMAXPROCS(0)
	}
	return &Pool{
		pred:    pred,
		size:    size,
		workers: concpool.New().WithErrors().WithFirstError().WithMaxGoroutines(size),
	}
}

// Size returns the maximum number of concurrently running workers.
func (p *Pool) Size() int {
	return p.size
}

// Submit queues part for evaluation. Submit blocks while all workers are
// busy. It returns ErrClosed if Wait has already been called.
func (p *Pool) Submit(part primesearch.Partition) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if p.closed {
		return ErrClosed
	}
	slot := new([]primesearch.CheckedValue)
	p.slots = append(p.slots, slot)
	pred := p.pred
	p.workers.Go(func() error {
		if recovered := panics.Try(func() { *slot = primesearch.Evaluate(part, pred) }); recovered != nil {
			return primesearch.NewThreadFailure(part, recovered.AsError())
		}
		return nil
	})
	return nil
}

// Wait closes the pool for further submissions and waits for every
// submitted partition to be evaluated. The results are returned in
// submission order. If any worker failed, Wait returns the first
// ThreadFailure error and no results.
func (p *Pool) Wait() ([]primesearch.CheckedValue, error) {
	p.mutex.Lock()
	p.closed = true
	p.mutex.Unlock()

	if err := p.workers.Wait(); err != nil {
		return nil, err
	}
	var size int
	for _, slot := range p.slots {
		size += len(*slot)
	}
	result := make([]primesearch.CheckedValue, 0, size)
	for _, slot := range p.slots {
		result = append(result, *slot...)
	}
	return result, nil
}

// Find validates and partitions r into count partitions, and evaluates pred
// for every value of r on a pool of size workers. The result is ascending by
// value, since partitions are submitted in ascending order.
func Find(size int, count uint64, r primesearch.SearchRange, pred primesearch.Predicate) ([]primesearch.CheckedValue, error) {
	partitions, err := primesearch.Partitions(r, count)
	if err != nil {
		return nil, err
	}
	return Run(size, partitions, pred)
}

// Run evaluates pred over already computed partitions on a new pool of size
// workers, and returns the results in the order of partitions.
func Run(size int, partitions []primesearch.Partition, pred primesearch.Predicate) ([]primesearch.CheckedValue, error) {
	p := New(size, pred)
	for _, part := range partitions {
		// a fresh pool is never closed
		_ = p.Submit(part)
	}
	return p.Wait()
}
