package seqs

import (
	"fmt"
	"iter"

	"seqkit/sliceutil"
)

// ErrInvalidArgument is returned by Batches for a non-positive size.
var ErrInvalidArgument = sliceutil.ErrInvalidArgument

// maxBatchPrealloc bounds the capacity reserved for a batch before its elements
// arrive. Larger batches grow by append.
const maxBatchPrealloc = 1024

// Batches groups the elements of seq into batches of the given size.
// The last batch may be smaller if there are not enough elements; an empty
// batch is never yielded.
//
// Elements are pulled from seq only as each batch is requested, and each yielded
// batch is a new slice the consumer may keep.
func Batches[T any](seq iter.Seq[T], size int) (iter.Seq[[]T], error) {
	if size <= 0 {
		return nil, fmt.Errorf("batch size must be positive, got %d: %w", size, ErrInvalidArgument)
	}

	batchCap := min(size, maxBatchPrealloc)

	return func(yield func([]T) bool) {
		var batch []T

		for v := range seq {
			batch = append(batch, v)
			if len(batch) == size {
				if !yield(batch) {
					return
				}
				batch = make([]T, 0, batchCap)
			}
		}
		if len(batch) > 0 {
			yield(batch)
		}
	}, nil
}
