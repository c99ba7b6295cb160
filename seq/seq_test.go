package seq_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gaps/seq"
)

// sparse builds [1 _ 3 _ 5] for the hole-related tests.
func sparse() *seq.Seq[int] {
	s := seq.New[int](0)
	s.Set(0, 1)
	s.Set(2, 3)
	s.Set(4, 5)
	return s
}

func TestNew(t *testing.T) {
	s := seq.New[int](3)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 0, s.Count())
	assert.Equal(t, 3, s.Holes())
	for i := 0; i < 3; i++ {
		assert.True(t, s.IsHole(i))
	}

	// negative length clamps to zero
	assert.Equal(t, 0, seq.New[int](-5).Len())
}

func TestOf(t *testing.T) {
	s := seq.Of(1, 2, 3)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 3, s.Count())
	assert.Equal(t, 0, s.Holes())

	v, ok := s.Get(1)
	assert.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestFromSliceCopies(t *testing.T) {
	input := []int{1, 2, 3}
	s := seq.FromSlice(input)
	input[0] = 99
	assert.Equal(t, 1, s.At(0))
}

func TestSetGrowsToHighestIndex(t *testing.T) {
	s := seq.New[string](0)
	s.Set(4, "e")

	// length is one more than the highest assigned index
	require.Equal(t, 5, s.Len())
	assert.Equal(t, 1, s.Count())
	for i := 0; i < 4; i++ {
		assert.True(t, s.IsHole(i), "index %d should be a hole", i)
	}

	v, ok := s.Get(4)
	assert.True(t, ok)
	assert.Equal(t, "e", v)

	assert.PanicsWithValue(t, "seq.Set: negative index", func() {
		s.Set(-1, "x")
	})
}

func TestUnset(t *testing.T) {
	s := seq.Of(1, 2, 3)
	s.Unset(1)

	assert.Equal(t, 3, s.Len(), "length unchanged")
	assert.True(t, s.IsHole(1))
	assert.Equal(t, 2, s.Count())

	// out of range is a no-op
	s.Unset(-1)
	s.Unset(10)
	assert.Equal(t, 3, s.Len())
}

func TestGetAt(t *testing.T) {
	s := sparse()

	v, ok := s.Get(2)
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	_, ok = s.Get(1)
	assert.False(t, ok, "hole reads as absent")
	_, ok = s.Get(-1)
	assert.False(t, ok)
	_, ok = s.Get(99)
	assert.False(t, ok)

	assert.Equal(t, 0, s.At(1), "At flattens holes to the zero value")
	assert.Equal(t, 0, s.At(99))
	assert.Equal(t, 5, s.At(4))
}

func TestCloneIsIndependent(t *testing.T) {
	s := sparse()
	c := s.Clone()

	require.True(t, seq.Equal(s, c))
	c.Set(1, 42)
	assert.True(t, s.IsHole(1), "mutating the clone must not touch the source")
	assert.False(t, c.IsHole(1))
}

func TestToSlice(t *testing.T) {
	got := sparse().ToSlice()
	want := []int{1, 0, 3, 0, 5}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ToSlice mismatch (-want +got):\n%s", diff)
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "[1 _ 3 _ 5]", sparse().String())
	assert.Equal(t, "[]", seq.Of[int]().String())
}

func TestValuesSkipsHoles(t *testing.T) {
	var got []int
	for v := range sparse().Values() {
		got = append(got, v)
	}
	assert.Equal(t, []int{1, 3, 5}, got)
}

func TestAllKeepsOriginalIndices(t *testing.T) {
	type pair struct{ I, V int }
	var got []pair
	for i, v := range sparse().All() {
		got = append(got, pair{i, v})
	}
	want := []pair{{0, 1}, {2, 3}, {4, 5}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("All mismatch (-want +got):\n%s", diff)
	}
}

func TestEqual(t *testing.T) {
	assert.True(t, seq.Equal(sparse(), sparse()))
	assert.True(t, seq.Equal(seq.Of[int](), seq.New[int](0)))

	// same values, different hole layout
	dense := seq.Of(1, 0, 3, 0, 5)
	assert.False(t, seq.Equal(sparse(), dense))

	// hole layout matches but a value differs
	other := sparse()
	other.Set(4, 6)
	assert.False(t, seq.Equal(sparse(), other))

	// different lengths
	assert.False(t, seq.Equal(seq.Of(1), seq.Of(1, 2)))
}

func TestEqualFunc(t *testing.T) {
	a := seq.Of(1, 2, 3)
	b := seq.Of("1", "2", "3")
	ok := seq.EqualFunc(a, b, func(x int, y string) bool {
		return len(y) == 1 && int(y[0]-'0') == x
	})
	assert.True(t, ok)
}
