package internal

import (
	"fmt"
	"math/bits"
	"runtime"
)

// RangeSize returns the number of values in the inclusive range [start,
// end] as the 128-bit quantity hi:lo. hi is 1 only for [0, math.MaxUint64].
//
// RangeSize panics if end < start.
func RangeSize(start, end uint64) (hi, lo uint64) {
	if end < start {
		panic(fmt.Sprintf("invalid range: %v:%v", start, end))
	}
	lo, hi = bits.Add64(end-start, 1, 0)
	return
}

// ComputeNofPartitions limits n to the size of the range [start, end]. If n
// is 0, runtime.GOMAXPROCS(0) is used instead.
func ComputeNofPartitions(start, end uint64, n uint64) uint64 {
	if n == 0 {
		n = uint64(runtime.GOMAXPROCS(0))
	}
	if span := end - start; end >= start && n-1 > span {
		n = span + 1
	}
	return n
}

// Step divides the size of the range [start, end] by count, returning the
// quotient and the remainder. count must be at least 2 when the range covers
// all 64-bit values.
func Step(start, end, count uint64) (step, rem uint64) {
	hi, lo := RangeSize(start, end)
	return bits.Div64(hi, lo, count)
}
