package sliceutil

// Partition splits collection into the elements that satisfy predicate and the
// elements that do not. Both results keep the original relative order and are
// freshly allocated, so neither aliases collection.
//
// predicate is called exactly once per element, in order. The verdicts are
// recorded on the first pass so both results can be allocated at their exact size.
func Partition[T any](collection []T, predicate func(T) bool) (matched, unmatched []T) {
	if len(collection) == 0 {
		return []T{}, []T{}
	}

	keep := make([]bool, len(collection))
	n := 0
	for i, v := range collection {
		if predicate(v) {
			keep[i] = true
			n++
		}
	}
	return split(collection, keep, n)
}

// TryPartition is like Partition, but predicate may return an error.
// Returns immediately upon encountering an error; later elements are not evaluated.
func TryPartition[T any](collection []T, predicate func(T) (bool, error)) ([]T, []T, error) {
	if len(collection) == 0 {
		return []T{}, []T{}, nil
	}

	keep := make([]bool, len(collection))
	n := 0
	for i, v := range collection {
		ok, err := predicate(v)
		if err != nil {
			return nil, nil, err
		}
		if ok {
			keep[i] = true
			n++
		}
	}
	matched, unmatched := split(collection, keep, n)
	return matched, unmatched, nil
}

// split copies collection into two exactly sized slices according to keep.
// n is the number of true entries in keep.
func split[T any](collection []T, keep []bool, n int) ([]T, []T) {
	matched := make([]T, 0, n)
	unmatched := make([]T, 0, len(collection)-n)
	for i, v := range collection {
		if keep[i] {
			matched = append(matched, v)
		} else {
			unmatched = append(unmatched, v)
		}
	}
	return matched, unmatched
}
