package seqs_test

import (
	"fmt"
	"slices"

	"seqkit/seqs"
)

func ExamplePartition() {
	input := slices.Values([]int{1, 2, 3, 4, 5})

	even, odd := seqs.Partition(input, func(v int) bool {
		return v%2 == 0
	})

	fmt.Println(even, odd)

	// Output:
	// [2 4] [1 3 5]
}

func ExampleBatches() {
	input := slices.Values([]string{"a", "b", "c", "d", "e"})

	batches, err := seqs.Batches(input, 2)
	if err != nil {
		fmt.Println(err)
		return
	}

	for b := range batches {
		fmt.Println(b)
	}

	// Output:
	// [a b]
	// [c d]
	// [e]
}

func ExampleBatches_invalidSize() {
	_, err := seqs.Batches(slices.Values([]int{1}), 0)
	fmt.Println(err)

	// Output:
	// batch size must be positive, got 0: invalid argument
}
