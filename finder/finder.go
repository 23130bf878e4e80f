/*
Package finder is the front end of the prime search: it selects a dispatch
strategy, and adds logging and metrics around each search.

The batch strategy is the default. It returns values in ascending order.
The stream strategy returns values in arrival order, unless sorting was
requested with WithSorted. The pool strategy bounds the number of
concurrently running workers. The sequential strategy runs every partition
in the calling goroutine.
*/
package finder

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/exascience/primesearch"
	"github.com/exascience/primesearch/internal/metrics"
	"github.com/exascience/primesearch/parallel"
	"github.com/exascience/primesearch/pkg/logger"
	"github.com/exascience/primesearch/pool"
	"github.com/exascience/primesearch/prime"
	"github.com/exascience/primesearch/sequential"
	"github.com/exascience/primesearch/sort"
	"github.com/exascience/primesearch/stream"
)

// A Strategy names a way to dispatch and aggregate workers.
type Strategy string

const (
	Batch      Strategy = "batch"
	Stream     Strategy = "stream"
	Pooled     Strategy = "pool"
	Sequential Strategy = "sequential"
)

// Strategies lists all supported strategies.
var Strategies = []Strategy{Batch, Stream, Pooled, Sequential}

// ParseStrategy returns the strategy named s.
func ParseStrategy(s string) (Strategy, error) {
	for _, strategy := range Strategies {
		if string(strategy) == s {
			return strategy, nil
		}
	}
	return "", fmt.Errorf("unknown strategy %q, expected one of %v", s, Strategies)
}

// A Finder runs searches with a fixed configuration. It is safe for
// concurrent use.
type Finder struct {
	strategy Strategy
	poolSize int
	sorted   bool
	pred     primesearch.Predicate
	logger   logger.Logger
	metrics  *metrics.Metrics
}

type Option func(*Finder)

func WithStrategy(strategy Strategy) Option {
	return func(f *Finder) {
		f.strategy = strategy
	}
}

// WithPoolSize sets the number of workers of the pool strategy. A size <= 0
// selects runtime.GOMAXPROCS(0).
func WithPoolSize(size int) Option {
	return func(f *Finder) {
		f.poolSize = size
	}
}

// WithSorted requests ascending output from the stream strategy. The other
// strategies are always ascending.
func WithSorted(sorted bool) Option {
	return func(f *Finder) {
		f.sorted = sorted
	}
}

// WithPredicate replaces prime.IsPrime.
func WithPredicate(pred primesearch.Predicate) Option {
	return func(f *Finder) {
		f.pred = pred
	}
}

func WithLogger(l logger.Logger) Option {
	return func(f *Finder) {
		f.logger = l
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(f *Finder) {
		f.metrics = m
	}
}

// New returns a Finder using the batch strategy, prime.IsPrime, and no
// logging, unless overridden by opts.
func New(opts ...Option) *Finder {
	f := &Finder{
		strategy: Batch,
		pred:     prime.IsPrime,
		logger:   logger.NewNoopLogger(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *Finder) Strategy() Strategy {
	return f.strategy
}

// Find checks every value from lower to upper, both included, using count
// partitions. See primesearch.Validate for the accepted inputs. Either all
// values are returned, or none and an error.
func (f *Finder) Find(count, lower, upper uint64) ([]primesearch.CheckedValue, error) {
	r := primesearch.NewSearchRange(lower, upper)
	log := f.logger.With(
		zap.String("run_id", uuid.NewString()),
		zap.String("strategy", string(f.strategy)),
		zap.Stringer("range", r),
		zap.Uint64("partitions", count),
	)

	partitions, err := primesearch.Partitions(r, count)
	if err != nil {
		log.Warn("search rejected", zap.Error(err))
		f.metrics.Observe(string(f.strategy), 0, nil, 0, err)
		return nil, err
	}

	log.Debug("search started")
	start := time.Now()
	values, err := f.run(partitions)
	elapsed := time.Since(start)
	f.metrics.Observe(string(f.strategy), len(partitions), values, elapsed, err)

	if err != nil {
		var perr *primesearch.Error
		if errors.As(err, &perr) && perr.Kind == primesearch.ThreadFailure {
			log.Error("worker failed", zap.Stringer("partition", perr.Partition), zap.Error(err))
		} else {
			log.Error("search failed", zap.Error(err))
		}
		return nil, err
	}

	log.Info("search finished", zap.Int("values", len(values)), zap.Duration("elapsed", elapsed))
	return values, nil
}

func (f *Finder) run(partitions []primesearch.Partition) ([]primesearch.CheckedValue, error) {
	switch f.strategy {
	case Batch:
		return parallel.Run(partitions, f.pred)
	case Stream:
		values, err := stream.Run(partitions, f.pred)
		if err == nil && f.sorted {
			sort.Values(values)
		}
		return values, err
	case Pooled:
		return pool.Run(f.poolSize, partitions, f.pred)
	case Sequential:
		return sequential.Run(partitions, f.pred)
	default:
		return nil, fmt.Errorf("unknown strategy %q", f.strategy)
	}
}
