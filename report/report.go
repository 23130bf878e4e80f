/*
Package report renders the results of a search for humans.

A Printer writes one line per checked value, optionally colored, and can
summarize how evenly a search range was spread over its partitions.
*/
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"gonum.org/v1/gonum/stat"

	"github.com/exascience/primesearch"
)

// A Printer writes checked values to an io.Writer.
type Printer struct {
	out      io.Writer
	prime    *color.Color
	notPrime *color.Color
}

// NewPrinter returns a printer writing to out. If colored is true, primes
// are highlighted in green and the word "not" in red, regardless of whether
// out is a terminal.
func NewPrinter(out io.Writer, colored bool) *Printer {
	p := &Printer{
		out:      out,
		prime:    color.New(color.FgGreen),
		notPrime: color.New(color.FgRed),
	}
	for _, c := range []*color.Color{p.prime, p.notPrime} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Print writes one line per value, in the order given.
func (p *Printer) Print(values []primesearch.CheckedValue) error {
	for _, v := range values {
		var err error
		if v.Prime {
			_, err = fmt.Fprintf(p.out, "%s is prime.\n", p.prime.Sprint(strconv.FormatUint(v.Value, 10)))
		} else {
			_, err = fmt.Fprintf(p.out, "%d is %s prime.\n", v.Value, p.notPrime.Sprint("not"))
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// A Summary describes the outcome of one search.
type Summary struct {
	Values     int
	Primes     int
	Density    float64
	Partitions int
	// MeanSize and StdDevSize describe the number of values per partition.
	MeanSize   float64
	StdDevSize float64
	MinSize    uint64
	MaxSize    uint64
}

// Summarize computes a Summary of values, which were produced from the
// given partitions.
func Summarize(values []primesearch.CheckedValue, partitions []primesearch.Partition) Summary {
	s := Summary{Values: len(values), Partitions: len(partitions)}
	for _, v := range values {
		if v.Prime {
			s.Primes++
		}
	}
	if s.Values > 0 {
		s.Density = float64(s.Primes) / float64(s.Values)
	}
	if len(partitions) == 0 {
		return s
	}
	sizes := make([]float64, len(partitions))
	s.MinSize = partitions[0].Len()
	for i, part := range partitions {
		n := part.Len()
		sizes[i] = float64(n)
		s.MinSize = min(s.MinSize, n)
		s.MaxSize = max(s.MaxSize, n)
	}
	if len(sizes) == 1 {
		s.MeanSize = sizes[0]
		return s
	}
	s.MeanSize, s.StdDevSize = stat.MeanStdDev(sizes, nil)
	return s
}

// PrintSummary writes s in a human-readable form.
func (p *Printer) PrintSummary(s Summary) error {
	_, err := fmt.Fprintf(p.out,
		"%d values checked, %d primes (density %.4f)\n%d partitions, size mean %.2f stddev %.2f min %d max %d\n",
		s.Values, s.Primes, s.Density,
		s.Partitions, s.MeanSize, s.StdDevSize, s.MinSize, s.MaxSize,
	)
	return err
}
