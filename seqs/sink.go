package seqs

import (
	"cmp"
	"iter"
)

// Reduce aggregates the elements of seq using the reducer function, starting
// from the initial value.
func Reduce[T, R any](seq iter.Seq[T], initial R, reducer func(R, T) R) R {
	acc := initial
	for v := range seq {
		acc = reducer(acc, v)
	}
	return acc
}

// First returns the first element of seq, or false when it is empty.
func First[T any](seq iter.Seq[T]) (T, bool) {
	for v := range seq {
		return v, true
	}
	var zero T
	return zero, false
}

// Last drains seq and returns its final element, or false when it is empty.
func Last[T any](seq iter.Seq[T]) (T, bool) {
	var last T
	found := false
	for v := range seq {
		last = v
		found = true
	}
	return last, found
}

// Any reports whether any element satisfies the predicate. It stops at the
// first match.
func Any[T any](seq iter.Seq[T], predicate func(T) bool) bool {
	for v := range seq {
		if predicate(v) {
			return true
		}
	}
	return false
}

// All reports whether every element satisfies the predicate. It stops at the
// first failure.
func All[T any](seq iter.Seq[T], predicate func(T) bool) bool {
	for v := range seq {
		if !predicate(v) {
			return false
		}
	}
	return true
}

// Count drains seq and returns the number of elements.
func Count[T any](seq iter.Seq[T]) int {
	count := 0
	for range seq {
		count++
	}
	return count
}

// Sum adds up the elements of seq.
func Sum[T cmp.Ordered](seq iter.Seq[T]) T {
	var total T
	for v := range seq {
		total += v
	}
	return total
}

// Min returns the smallest element of seq, or false when it is empty.
func Min[T cmp.Ordered](seq iter.Seq[T]) (T, bool) {
	var best T
	found := false
	for v := range seq {
		if !found || v < best {
			best = v
			found = true
		}
	}
	return best, found
}

// Max returns the largest element of seq, or false when it is empty.
func Max[T cmp.Ordered](seq iter.Seq[T]) (T, bool) {
	var best T
	found := false
	for v := range seq {
		if !found || v > best {
			best = v
			found = true
		}
	}
	return best, found
}
