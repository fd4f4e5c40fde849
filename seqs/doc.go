/*
Package seqs provides partitioning and batching for Go 1.23+ iterators (iter.Seq).

  - [Partition] and [TryPartition] split a sequence by predicate into two ordered slices.
    The sequence is drained once, so single-use iterators are fine.
  - [Batches] groups a sequence lazily into fixed-size slices, the last one holding the
    remainder.

For data that is already a slice, the sliceutil package offers the same operations
without the intermediate buffer.

# Error Handling

A non-positive batch size is rejected before iteration starts with an error wrapping
[ErrInvalidArgument]:

	batches, err := seqs.Batches(input, size)
	if errors.Is(err, seqs.ErrInvalidArgument) {
		// ...
	}

Predicate errors from [TryPartition] are returned as is.
*/
package seqs
