package primesearch

import (
	"fmt"
)

// An ErrorKind classifies why a search failed.
type ErrorKind int

const (
	// ZeroPartitions reports a partition count of 0.
	ZeroPartitions ErrorKind = iota + 1
	// PartitionCountExceedsRange reports more partitions than values.
	PartitionCountExceedsRange
	// InvertedRange reports a range whose start is greater than its end.
	InvertedRange
	// EmptyRange reports a range whose start equals its end.
	EmptyRange
	// PartitionIndex reports a partition index outside 1..count. It
	// signals a programming defect rather than bad input.
	PartitionIndex
	// ThreadFailure reports a worker that did not run to completion.
	ThreadFailure
	// PartitionLimit reports a valid partition count that is larger than
	// MaxPartitions, so that the partitions can not all be materialized.
	PartitionLimit
)

func (k ErrorKind) String() string {
	switch k {
	case ZeroPartitions:
		return "ZeroPartitions"
	case PartitionCountExceedsRange:
		return "PartitionCountExceedsRange"
	case InvertedRange:
		return "InvertedRange"
	case EmptyRange:
		return "EmptyRange"
	case PartitionIndex:
		return "PartitionIndex"
	case ThreadFailure:
		return "ThreadFailure"
	case PartitionLimit:
		return "PartitionLimit"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is the error type returned by all operations of this module.
//
// Errors compare equal under errors.Is when their kinds match, so callers
// can test against the Err* values below. The recovered panic of a failed
// worker can be accessed via errors.Unwrap.
type Error struct {
	Kind      ErrorKind
	Count     uint64
	Range     SearchRange
	Partition Partition
	Index     uint64
	cause     error
}

var (
	ErrZeroPartitions             = &Error{Kind: ZeroPartitions}
	ErrPartitionCountExceedsRange = &Error{Kind: PartitionCountExceedsRange}
	ErrInvertedRange              = &Error{Kind: InvertedRange}
	ErrEmptyRange                 = &Error{Kind: EmptyRange}
	ErrPartitionIndex             = &Error{Kind: PartitionIndex}
	ErrThreadFailure              = &Error{Kind: ThreadFailure}
	ErrPartitionLimit             = &Error{Kind: PartitionLimit}
)

// NewThreadFailure returns a ThreadFailure error for the worker of p.
func NewThreadFailure(p Partition, cause error) *Error {
	return &Error{Kind: ThreadFailure, Partition: p, Index: p.Index, cause: cause}
}

func (e *Error) Error() string {
	switch e.Kind {
	case ZeroPartitions:
		return "there must be at least one partition"
	case PartitionCountExceedsRange:
		return fmt.Sprintf("partition count %d exceeds the %d values of search range %v", e.Count, e.Range.Size(), e.Range)
	case InvertedRange:
		return fmt.Sprintf("search range start must be smaller than search range end: %v", e.Range)
	case EmptyRange:
		return fmt.Sprintf("search range start and end can not be equal: %v", e.Range)
	case PartitionIndex:
		return fmt.Sprintf("partition index %d out of bounds for %d partitions", e.Index, e.Count)
	case ThreadFailure:
		if e.cause == nil {
			return fmt.Sprintf("worker for partition %v failed", e.Partition)
		}
		return fmt.Sprintf("worker for partition %v failed: %v", e.Partition, e.cause)
	case PartitionLimit:
		return fmt.Sprintf("partition count %d exceeds the limit of %d partitions", e.Count, MaxPartitions)
	default:
		return e.Kind.String()
	}
}

func (e *Error) Unwrap() error { return e.cause }

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}
