package seqs

import (
	"iter"

	"gaps/seq"
)

// Collect drains src into a new dense sequence.
func Collect[T any](src iter.Seq[T]) *seq.Seq[T] {
	var values []T
	for v := range src {
		values = append(values, v)
	}
	return seq.FromSlice(values)
}

// CollectIndexed drains an (index, value) stream into a sequence, placing
// each value at its original index. Indices that never appear stay absent,
// so a sequence rebuilt from Seq.All keeps its hole layout.
func CollectIndexed[T any](src iter.Seq2[int, T]) *seq.Seq[T] {
	res := seq.New[T](0)
	for i, v := range src {
		res.Set(i, v)
	}
	return res
}
