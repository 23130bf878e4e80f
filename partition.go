package primesearch

import (
	"github.com/exascience/primesearch/internal"
)

// MaxPartitions is the largest count for which Partitions materializes the
// partitions of a range. PartitionAt has no such limit.
const MaxPartitions = 1 << 24

/*
Partitions divides r into count contiguous partitions, after validating the
request with Validate.

Each partition but the last holds floor(size/count) values, where size is
the number of values in r; the last partition additionally absorbs the
remainder size mod count. The partitions are returned in ascending order,
each starting right after the end of its predecessor, so that together they
cover r exactly once. For count == 1 the single partition equals r.

The result only depends on r and count. A count that passes Validate but
is larger than MaxPartitions is rejected with a PartitionLimit error.
*/
func Partitions(r SearchRange, count uint64) ([]Partition, error) {
	if err := Validate(count, r); err != nil {
		return nil, err
	}
	if count > MaxPartitions {
		return nil, &Error{Kind: PartitionLimit, Count: count, Range: r}
	}
	partitions := make([]Partition, 0, count)
	for i := uint64(1); i <= count; i++ {
		p, err := PartitionAt(r, i, count)
		if err != nil {
			return nil, err
		}
		partitions = append(partitions, p)
	}
	return partitions, nil
}

// PartitionAt computes the partition with the given 1-based index among
// count partitions of r. It returns a PartitionIndex error if index is not
// within 1..count.
func PartitionAt(r SearchRange, index, count uint64) (Partition, error) {
	if index == 0 || index > count {
		return Partition{}, &Error{Kind: PartitionIndex, Count: count, Range: r, Index: index}
	}
	switch {
	case r.Start > r.End:
		return Partition{}, &Error{Kind: InvertedRange, Count: count, Range: r}
	case count-1 > r.End-r.Start:
		return Partition{}, &Error{Kind: PartitionCountExceedsRange, Count: count, Range: r}
	case count == 1:
		return Partition{Index: 1, Start: r.Start, End: r.End}, nil
	}
	step, _ := internal.Step(r.Start, r.End, count)
	// offsets are 1-based: the first value of r has offset 1
	lower := step*(index-1) + 1
	var upper uint64
	if index == count {
		upper = r.End - r.Start + 1
	} else {
		upper = step * index
	}
	return Partition{
		Index: index,
		Start: r.Start + lower - 1,
		End:   r.Start + upper - 1,
	}, nil
}
