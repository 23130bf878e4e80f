package primesearch

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	for _, tc := range []struct {
		name  string
		count uint64
		r     SearchRange
		err   error
	}{
		{name: "valid", count: 2, r: NewSearchRange(1, 100)},
		{name: "one_partition", count: 1, r: NewSearchRange(1, 2)},
		{name: "one_value_per_partition", count: 100, r: NewSearchRange(1, 100)},
		{name: "whole_domain", count: math.MaxUint64, r: NewSearchRange(0, math.MaxUint64)},
		{name: "zero_partitions", count: 0, r: NewSearchRange(1, 100), err: ErrZeroPartitions},
		{name: "zero_partitions_wins", count: 0, r: NewSearchRange(9, 1), err: ErrZeroPartitions},
		{name: "too_many_partitions", count: 101, r: NewSearchRange(1, 100), err: ErrPartitionCountExceedsRange},
		{name: "inverted", count: 2, r: NewSearchRange(9, 1), err: ErrInvertedRange},
		{name: "empty", count: 1, r: NewSearchRange(5, 5), err: ErrEmptyRange},
		{name: "empty_any_count", count: 7, r: NewSearchRange(5, 5), err: ErrEmptyRange},
	} {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate(tc.count, tc.r)
			if tc.err == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.err)
			var perr *Error
			require.ErrorAs(t, err, &perr)
			require.Equal(t, tc.r, perr.Range)
			require.Equal(t, tc.count, perr.Count)
		})
	}
}

func TestErrorMessages(t *testing.T) {
	require.EqualError(t, Validate(0, NewSearchRange(1, 2)), "there must be at least one partition")
	require.EqualError(t, Validate(3, NewSearchRange(1, 2)), "partition count 3 exceeds the 2 values of search range [1, 2]")
	require.EqualError(t, Validate(1, NewSearchRange(2, 1)), "search range start must be smaller than search range end: [2, 1]")
	require.EqualError(t, Validate(1, NewSearchRange(2, 2)), "search range start and end can not be equal: [2, 2]")

	_, err := PartitionAt(NewSearchRange(1, 10), 3, 2)
	require.EqualError(t, err, "partition index 3 out of bounds for 2 partitions")
}

func TestThreadFailureUnwraps(t *testing.T) {
	cause := &Error{Kind: EmptyRange}
	err := NewThreadFailure(Partition{Index: 2, Start: 11, End: 20}, cause)
	require.ErrorIs(t, err, ErrThreadFailure)
	require.ErrorIs(t, err, ErrEmptyRange)
	require.Contains(t, err.Error(), "worker for partition #2[11, 20] failed")
	require.NotErrorIs(t, err, ErrZeroPartitions)
}

func TestErrorKindString(t *testing.T) {
	require.Equal(t, "ThreadFailure", ThreadFailure.String())
	require.Equal(t, "PartitionLimit", PartitionLimit.String())
	require.Equal(t, "ErrorKind(42)", ErrorKind(42).String())
}
