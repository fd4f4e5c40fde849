package seqs

import (
	"iter"
	"slices"

	"seqkit/sliceutil"
)

// Partition splits seq into the elements that satisfy predicate and the elements
// that do not, keeping the original relative order in both.
//
// seq is drained exactly once into a buffer and both results are filtered from
// that buffer, so single-use sequences are safe to pass.
func Partition[T any](seq iter.Seq[T], predicate func(T) bool) (matched, unmatched []T) {
	return sliceutil.Partition(slices.Collect(seq), predicate)
}

// TryPartition is like Partition, but predicate may return an error.
// The first error stops evaluation and is returned as is.
func TryPartition[T any](seq iter.Seq[T], predicate func(T) (bool, error)) ([]T, []T, error) {
	return sliceutil.TryPartition(slices.Collect(seq), predicate)
}
