/*
Package sort restores numeric order on collections of checked values, such
as the arrival-ordered output of the stream package.
*/
package sort

import (
	"slices"

	"github.com/exascience/primesearch"
	"github.com/exascience/primesearch/parallel"
)

const qsortGrainSize = 0x500

func less(values []primesearch.CheckedValue, i, j int) bool {
	return values[i].Value < values[j].Value
}

func compare(a, b primesearch.CheckedValue) int {
	switch {
	case a.Value < b.Value:
		return -1
	case a.Value > b.Value:
		return 1
	}
	return 0
}

func medianOfThree(values []primesearch.CheckedValue, l, m, r int) int {
	if less(values, l, m) {
		if less(values, m, r) {
			return m
		} else if less(values, l, r) {
			return r
		}
	} else if less(values, r, m) {
		return m
	} else if less(values, r, l) {
		return r
	}
	return l
}

func pseudoMedianOfNine(values []primesearch.CheckedValue, index, size int) int {
	offset := size / 8
	return medianOfThree(values,
		medianOfThree(values, index, index+offset, index+offset*2),
		medianOfThree(values, index+offset*3, index+offset*4, index+offset*5),
		medianOfThree(values, index+offset*6, index+offset*7, index+size-1),
	)
}

// IsSorted reports whether values is ascending by value.
func IsSorted(values []primesearch.CheckedValue) bool {
	return slices.IsSortedFunc(values, compare)
}

/*
Values sorts values in place, ascending by value, using a parallel
quicksort.

Small collections, and sub-ranges below a grain size, are sorted
sequentially.
*/
func Values(values []primesearch.CheckedValue) {
	size := len(values)
	if size < qsortGrainSize {
		slices.SortFunc(values, compare)
		return
	}
	var pSort func(int, int)
	pSort = func(index, size int) {
		if size < qsortGrainSize {
			slices.SortFunc(values[index:index+size], compare)
			return
		}
		m := pseudoMedianOfNine(values, index, size)
		if m > index {
			values[index], values[m] = values[m], values[index]
		}
		i, j := index, index+size
	outer:
		for {
			for {
				j--
				if !less(values, index, j) {
					break
				}
			}
			for {
				if i == j {
					break outer
				}
				i++
				if !less(values, i, index) {
					break
				}
			}
			if i == j {
				break outer
			}
			values[i], values[j] = values[j], values[i]
		}
		values[j], values[index] = values[index], values[j]
		i = j + 1
		if err := parallel.Do(
			func(_ int, recovered error) error { return recovered },
			func() error { pSort(index, j-index); return nil },
			func() error { pSort(i, index+size-i); return nil },
		); err != nil {
			panic(err)
		}
	}
	if !IsSorted(values) {
		pSort(0, size)
	}
}
