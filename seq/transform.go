package seq

// ==========================================
//  Transforms (value, index, source callbacks)
// ==========================================

// Map transforms each present element of src, producing a sequence of the
// same length. Absent slots stay absent at the same index; transform is never
// invoked on them.
func Map[T any, R any](src *Seq[T], transform func(value T, index int, src *Seq[T]) R) *Seq[R] {
	res := &Seq[R]{slots: make([]slot[R], len(src.slots))}
	for i, sl := range src.slots {
		if !sl.present {
			continue // hole stays a hole
		}
		res.slots[i] = slot[R]{val: transform(sl.val, i, src), present: true}
	}
	return res
}

// MapWith is Map with an explicit receiver threaded into the callback as its
// first parameter, standing in for a dynamically bound "this".
func MapWith[C any, T any, R any](src *Seq[T], recv C, transform func(recv C, value T, index int, src *Seq[T]) R) *Seq[R] {
	return Map(src, func(v T, i int, s *Seq[T]) R {
		return transform(recv, v, i, s)
	})
}

// Filter returns a new dense sequence containing, in original relative order,
// every present element for which the predicate returns true. Absent slots
// never reach the predicate.
func Filter[T any](src *Seq[T], predicate func(value T, index int, src *Seq[T]) bool) *Seq[T] {
	if len(src.slots) == 0 {
		return Of[T]()
	}

	// Heuristic pre-allocation of capacity
	res := make([]slot[T], 0, len(src.slots)/2)
	for i, sl := range src.slots {
		if !sl.present {
			continue
		}
		if predicate(sl.val, i, src) {
			res = append(res, sl)
		}
	}
	return &Seq[T]{slots: res}
}

// FilterWith is Filter with an explicit receiver threaded into the predicate.
func FilterWith[C any, T any](src *Seq[T], recv C, predicate func(recv C, value T, index int, src *Seq[T]) bool) *Seq[T] {
	return Filter(src, func(v T, i int, s *Seq[T]) bool {
		return predicate(recv, v, i, s)
	})
}

// Slice extracts the contiguous run of indices [start, end) as a new dense
// sequence. It takes 0, 1, or 2 bounds: Slice(s) copies the whole sequence,
// Slice(s, start) runs to the end, Slice(s, start, end) uses both. Negative
// bounds count from the end; all bounds are clamped into range, never
// rejected. Absent slots inside the range are copied through as zero values,
// not preserved as holes: extraction is value-copying.
func Slice[T any](src *Seq[T], bounds ...int) *Seq[T] {
	if len(bounds) > 2 {
		panic("seq.Slice: at most two bounds")
	}

	length := len(src.slots)
	start, end := 0, length
	if len(bounds) >= 1 {
		start = clampIndex(bounds[0], length)
	}
	if len(bounds) == 2 {
		end = clampIndex(bounds[1], length)
	}
	if start >= end {
		return Of[T]()
	}

	res := make([]slot[T], 0, end-start)
	for i := start; i < end; i++ {
		res = append(res, slot[T]{val: src.slots[i].val, present: true})
	}
	return &Seq[T]{slots: res}
}

// clampIndex normalizes a slice bound: negative values count back from
// length, and the result always lands in [0, length].
func clampIndex(idx, length int) int {
	if idx < 0 {
		return max(length+idx, 0)
	}
	return min(idx, length)
}

// FlatMap maps each present element to a sequence and concatenates the
// results one level deep: Flatten(Map(src, transform)). A callback returning
// nil or an empty sequence contributes nothing for that element.
func FlatMap[T any, R any](src *Seq[T], transform func(value T, index int, src *Seq[T]) *Seq[R]) *Seq[R] {
	return Flatten(Map(src, transform))
}

// FlatMapWith is FlatMap with an explicit receiver threaded into the callback.
func FlatMapWith[C any, T any, R any](src *Seq[T], recv C, transform func(recv C, value T, index int, src *Seq[T]) *Seq[R]) *Seq[R] {
	return Flatten(MapWith(src, recv, transform))
}

// Flatten splices exactly one level of nesting into a new dense sequence:
// each present, non-nil element contributes its own present elements
// individually, in order. Nested sequences below the first level stay nested.
// Source holes and nil elements contribute nothing.
func Flatten[T any](src *Seq[*Seq[T]]) *Seq[T] {
	res := make([]slot[T], 0, len(src.slots))
	for _, sl := range src.slots {
		if !sl.present || sl.val == nil {
			continue
		}
		for _, inner := range sl.val.slots {
			if inner.present {
				res = append(res, inner)
			}
		}
	}
	return &Seq[T]{slots: res}
}

// Concat returns a new sequence holding the slots of every input in order.
// Unlike Flatten, holes are preserved positionally and the result length is
// the sum of the input lengths.
func Concat[T any](seqs ...*Seq[T]) *Seq[T] {
	total := 0
	for _, s := range seqs {
		total += len(s.slots)
	}
	res := make([]slot[T], 0, total)
	for _, s := range seqs {
		res = append(res, s.slots...)
	}
	return &Seq[T]{slots: res}
}
