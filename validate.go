package primesearch

/*
Validate checks that count partitions can be carved out of r. It returns
nil if they can, and an *Error describing the first failing check
otherwise.

The checks are, in order: count must not be 0; r.Start must not be greater
than r.End; r.Start must not equal r.End, since a single value has no
meaningful parallel decomposition; and count must not exceed the number of
values in r, so that every partition receives at least one value.

A single value range is reported as EmptyRange even when count also
exceeds its size.
*/
func Validate(count uint64, r SearchRange) error {
	switch {
	case count == 0:
		return &Error{Kind: ZeroPartitions, Count: count, Range: r}
	case r.Start > r.End:
		return &Error{Kind: InvertedRange, Count: count, Range: r}
	case r.Start == r.End:
		return &Error{Kind: EmptyRange, Count: count, Range: r}
	case count-1 > r.End-r.Start:
		return &Error{Kind: PartitionCountExceedsRange, Count: count, Range: r}
	}
	return nil
}
