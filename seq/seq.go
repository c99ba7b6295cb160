package seq

import (
	"fmt"
	"iter"
	"strings"
)

// slot is a tagged optional: a value plus a presence flag.
type slot[T any] struct {
	val     T
	present bool
}

// Seq is an ordered, 0-indexed, finite sequence whose slots are either
// present (holding a value of type T) or absent ("holes"). Length always
// equals one more than the highest assigned index, even when that slot is
// itself absent, so a sequence can be longer than its number of values.
//
// Set and Unset shape a sequence during construction; none of the transform
// functions in this package ever mutate their source.
type Seq[T any] struct {
	slots []slot[T]
}

// New returns an all-absent sequence of the given length.
// A negative length is treated as 0.
func New[T any](length int) *Seq[T] {
	if length < 0 {
		length = 0
	}
	return &Seq[T]{slots: make([]slot[T], length)}
}

// Of returns a dense sequence holding the given values in order.
func Of[T any](values ...T) *Seq[T] {
	s := &Seq[T]{slots: make([]slot[T], len(values))}
	for i, v := range values {
		s.slots[i] = slot[T]{val: v, present: true}
	}
	return s
}

// FromSlice returns a dense sequence copying the elements of collection.
func FromSlice[T any](collection []T) *Seq[T] {
	return Of(collection...)
}

// Len returns the length of the sequence, counting absent slots.
func (s *Seq[T]) Len() int {
	return len(s.slots)
}

// Count returns the number of present slots.
func (s *Seq[T]) Count() int {
	n := 0
	for _, sl := range s.slots {
		if sl.present {
			n++
		}
	}
	return n
}

// Holes returns the number of absent slots.
func (s *Seq[T]) Holes() int {
	return len(s.slots) - s.Count()
}

// Get retrieves the value at index i and whether the slot is present.
// Out-of-range indices return the zero value and false; they never panic.
func (s *Seq[T]) Get(i int) (T, bool) {
	if i < 0 || i >= len(s.slots) {
		var zero T
		return zero, false
	}
	sl := s.slots[i]
	return sl.val, sl.present
}

// At returns the value at index i, or the zero value when the slot is absent
// or out of range. This is the value-copying read used by Slice, which does
// not distinguish holes from stored zero values.
func (s *Seq[T]) At(i int) T {
	v, _ := s.Get(i)
	return v
}

// IsHole reports whether index i lies within the length but holds no value.
func (s *Seq[T]) IsHole(i int) bool {
	return i >= 0 && i < len(s.slots) && !s.slots[i].present
}

// Set assigns the slot at index i. Setting at or beyond the current length
// grows the sequence so that Len() == i+1, leaving the intervening slots
// absent. A negative index panics.
func (s *Seq[T]) Set(i int, v T) {
	if i < 0 {
		panic("seq.Set: negative index")
	}
	for len(s.slots) <= i {
		s.slots = append(s.slots, slot[T]{})
	}
	s.slots[i] = slot[T]{val: v, present: true}
}

// Unset makes the slot at index i absent without changing the length.
// Out-of-range indices are ignored.
func (s *Seq[T]) Unset(i int) {
	if i < 0 || i >= len(s.slots) {
		return
	}
	s.slots[i] = slot[T]{}
}

// Clone returns an independent copy of the sequence.
func (s *Seq[T]) Clone() *Seq[T] {
	c := &Seq[T]{slots: make([]slot[T], len(s.slots))}
	copy(c.slots, s.slots)
	return c
}

// ToSlice returns a dense copy of the sequence as a plain Go slice, with
// absent slots flattened to the zero value.
func (s *Seq[T]) ToSlice() []T {
	res := make([]T, len(s.slots))
	for i, sl := range s.slots {
		res[i] = sl.val
	}
	return res
}

// String renders the sequence like a slice, marking absent slots with "_".
func (s *Seq[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, sl := range s.slots {
		if i > 0 {
			b.WriteByte(' ')
		}
		if sl.present {
			fmt.Fprintf(&b, "%v", sl.val)
		} else {
			b.WriteByte('_')
		}
	}
	b.WriteByte(']')
	return b.String()
}

// Values yields the present values in index order.
func (s *Seq[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, sl := range s.slots {
			if sl.present && !yield(sl.val) {
				return
			}
		}
	}
}

// All yields (index, value) pairs for the present slots in index order.
// Holes are skipped, so consecutive indices may not be contiguous.
func (s *Seq[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, sl := range s.slots {
			if sl.present && !yield(i, sl.val) {
				return
			}
		}
	}
}

// Equal reports whether two sequences have the same length, the same hole
// layout, and equal values in every present slot.
func Equal[T comparable](a, b *Seq[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal with a caller-supplied element comparison, allowing the
// two sequences to have different element types.
func EqualFunc[T, U any](a *Seq[T], b *Seq[U], eq func(T, U) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i, sl := range a.slots {
		other := b.slots[i]
		if sl.present != other.present {
			return false
		}
		if sl.present && !eq(sl.val, other.val) {
			return false
		}
	}
	return true
}
