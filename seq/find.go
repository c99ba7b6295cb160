package seq

// Contains checks if the target value exists in any present slot.
// Works for comparable types.
func Contains[T comparable](src *Seq[T], target T) bool {
	return ContainsFunc(src, func(v T) bool { return v == target })
}

// ContainsFunc checks if any present element satisfies the predicate.
// Useful for non-comparable types or custom matching logic.
func ContainsFunc[T any](src *Seq[T], predicate func(T) bool) bool {
	for _, sl := range src.slots {
		if sl.present && predicate(sl.val) {
			return true
		}
	}
	return false
}

// Find searches for the first present element that satisfies the predicate.
// Returns the element and true if found, otherwise the zero value and false.
func Find[T any](src *Seq[T], predicate func(value T, index int, src *Seq[T]) bool) (T, bool) {
	i := FindIndex(src, predicate)
	if i < 0 {
		var zero T
		return zero, false
	}
	return src.slots[i].val, true
}

// FindIndex searches for the index of the first present element that
// satisfies the predicate. Returns -1 if none does.
func FindIndex[T any](src *Seq[T], predicate func(value T, index int, src *Seq[T]) bool) int {
	for i, sl := range src.slots {
		if !sl.present {
			continue
		}
		if predicate(sl.val, i, src) {
			return i
		}
	}
	return -1
}

// Reduce aggregates the present elements of src using the accumulator
// function, starting from the initial value. Holes never reach the
// accumulator.
func Reduce[T any, R any](src *Seq[T], accumulator func(acc R, value T, index int) R, initial R) R {
	result := initial
	for i, sl := range src.slots {
		if sl.present {
			result = accumulator(result, sl.val, i)
		}
	}
	return result
}

// ForEach invokes fn once per present element, in index order.
func ForEach[T any](src *Seq[T], fn func(value T, index int, src *Seq[T])) {
	for i, sl := range src.slots {
		if sl.present {
			fn(sl.val, i, src)
		}
	}
}

// ForEachWith is ForEach with an explicit receiver threaded into the callback.
func ForEachWith[C any, T any](src *Seq[T], recv C, fn func(recv C, value T, index int, src *Seq[T])) {
	ForEach(src, func(v T, i int, s *Seq[T]) {
		fn(recv, v, i, s)
	})
}
