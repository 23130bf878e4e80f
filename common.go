package primesearch

import (
	"fmt"
	"iter"
	"math"

	"github.com/exascience/primesearch/internal"
)

type (
	// A Predicate is a pure function that is evaluated independently for
	// each value of a search range.
	Predicate func(n uint64) bool

	// A SearchRange is the inclusive interval [Start, End] to be scanned.
	SearchRange struct {
		Start uint64
		End   uint64
	}

	// A Partition is one contiguous, non-empty sub-interval [Start, End] of
	// a SearchRange. Index is the 1-based position of the partition among
	// all partitions of its range.
	Partition struct {
		Index uint64
		Start uint64
		End   uint64
	}

	// A CheckedValue pairs a value with the result of the predicate for
	// that value.
	CheckedValue struct {
		Value uint64
		Prime bool
	}
)

// NewSearchRange returns the search range from lower to upper, both
// included.
func NewSearchRange(lower, upper uint64) SearchRange {
	return SearchRange{Start: lower, End: upper}
}

// Size returns the number of values in r. The size of the full range
// [0, math.MaxUint64] does not fit in 64 bits, so Size saturates at
// math.MaxUint64. Size returns 0 if r is inverted.
func (r SearchRange) Size() uint64 {
	if r.Start > r.End {
		return 0
	}
	if hi, lo := internal.RangeSize(r.Start, r.End); hi == 0 {
		return lo
	}
	return math.MaxUint64
}

func (r SearchRange) String() string {
	return fmt.Sprintf("[%d, %d]", r.Start, r.End)
}

// Len returns the number of values in p, saturating at math.MaxUint64.
func (p Partition) Len() uint64 {
	return SearchRange{Start: p.Start, End: p.End}.Size()
}

// Values returns an iterator over the values of p in ascending order.
func (p Partition) Values() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		if p.Start > p.End {
			return
		}
		for v := p.Start; ; v++ {
			if !yield(v) || v == p.End {
				return
			}
		}
	}
}

func (p Partition) String() string {
	return fmt.Sprintf("#%d[%d, %d]", p.Index, p.Start, p.End)
}

/*
DefaultPartitions determines a partition count for r when the caller does
not want to pick one.

The result is runtime.GOMAXPROCS(0), reduced to the number of values in r
if r is smaller than that. DefaultPartitions returns 0 for an inverted
range, which Validate subsequently rejects.
*/
func DefaultPartitions(r SearchRange) uint64 {
	if r.Start > r.End {
		return 0
	}
	return internal.ComputeNofPartitions(r.Start, r.End, 0)
}
