package typeflow

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Test_TypeSet_SmallToDenseCrossover seeds seven distinct indices over
// seven calls to cross the small-set threshold (6) and checks that
// all seven members still report, with identical observable
// membership regardless of representation.
func Test_TypeSet_SmallToDenseCrossover(t *testing.T) {
	var s typeSet

	for i := 0; i < 7; i++ {
		changed := s.add(i, 100)
		require.True(t, changed)
	}

	require.NotNil(t, s.dense, "seventh insertion should have promoted to dense")
	require.Equal(t, 7, s.size())

	for i := 0; i < 7; i++ {
		require.True(t, s.contains(i), "expected index %d to be a member", i)
	}

	seen := map[int]bool{}
	s.enumerate(func(i int) { seen[i] = true })
	require.Len(t, seen, 7)
}

func Test_TypeSet_AddIsIdempotent(t *testing.T) {
	var s typeSet

	require.True(t, s.add(3, 10))
	require.False(t, s.add(3, 10))
	require.Equal(t, 1, s.size())
}

func Test_TypeSet_SmallFormEnumerationOrder(t *testing.T) {
	var s typeSet
	order := []int{4, 1, 3}
	for _, i := range order {
		s.add(i, 10)
	}

	var got []int
	s.enumerate(func(i int) { got = append(got, i) })
	require.Equal(t, order, got, "small form enumerates in insertion order")
}

func Test_TypeSet_DenseFormEnumerationIsAscending(t *testing.T) {
	var s typeSet
	for _, i := range []int{9, 2, 5, 0, 1, 3, 8} { // 7 elements: forces dense
		s.add(i, 20)
	}

	var got []int
	s.enumerate(func(i int) { got = append(got, i) })

	for k := 1; k < len(got); k++ {
		require.Less(t, got[k-1], got[k])
	}
}

func Test_TypeSet_NeverShrinksFromDenseBackToSmall(t *testing.T) {
	var s typeSet
	for i := 0; i < 8; i++ {
		s.add(i, 20)
	}
	require.NotNil(t, s.dense)

	// Re-adding members already present shouldn't touch the
	// representation or the count.
	s.add(0, 20)
	require.NotNil(t, s.dense)
	require.Equal(t, 8, s.size())
}
