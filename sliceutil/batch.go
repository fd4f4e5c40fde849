package sliceutil

import (
	"errors"
	"fmt"
	"iter"
)

// ErrInvalidArgument is returned when a size or count argument is out of range.
var ErrInvalidArgument = errors.New("invalid argument")

func checkBatchSize(size int) error {
	if size <= 0 {
		return fmt.Errorf("batch size must be positive, got %d: %w", size, ErrInvalidArgument)
	}
	return nil
}

// Batches returns a lazy sequence of contiguous batches of collection, each holding
// size elements except the last, which holds the remainder. An empty collection
// yields no batches.
//
// Batches share the backing array of collection. Their capacity is capped at their
// length, so appending to a batch never overwrites the next one.
//
// A non-positive size is rejected with ErrInvalidArgument before anything is produced.
func Batches[T any](collection []T, size int) (iter.Seq[[]T], error) {
	if err := checkBatchSize(size); err != nil {
		return nil, err
	}

	return func(yield func([]T) bool) {
		rest := collection
		for len(rest) > 0 {
			end := min(size, len(rest))
			if !yield(rest[:end:end]) {
				return
			}
			rest = rest[end:]
		}
	}, nil
}

// Chunk is the eager form of Batches: it collects every batch up front.
func Chunk[T any](collection []T, size int) ([][]T, error) {
	seq, err := Batches(collection, size)
	if err != nil {
		return nil, err
	}

	// len/size rounded up, without the overflow of (len+size-1)/size
	n := len(collection) / size
	if len(collection)%size != 0 {
		n++
	}
	res := make([][]T, 0, n)
	for batch := range seq {
		res = append(res, batch)
	}
	return res, nil
}
