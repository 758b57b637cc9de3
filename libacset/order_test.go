package libacset_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/acset-systems/goacset/libacset"
)

func TestOrderingIsPermutation(t *testing.T) {
	s := labeledGraphSchema(t)
	ord := s.Ordering()

	require.ElementsMatch(t, []int32{0, 1}, ord.Tables)
	require.ElementsMatch(t, []int32{0, 1}, ord.Arrows)
	require.ElementsMatch(t, []int32{0}, ord.Attrs)
}

func TestOrderingDeterministic(t *testing.T) {
	build := func() *libacset.Schema {
		s := libacset.NewSchema()
		require.NoError(t, s.AddTable("A"))
		require.NoError(t, s.AddTable("B"))
		require.NoError(t, s.AddTable("C"))
		require.NoError(t, s.AddArrow("f", "A", "B"))
		require.NoError(t, s.AddArrow("g", "B", "C"))
		require.NoError(t, s.AddArrow("h", "A", "C"))
		return s
	}
	s1 := build()
	s2 := build()
	require.Equal(t, s1.Ordering(), s2.Ordering())
}

func TestOrderingCached(t *testing.T) {
	s := graphSchema(t)
	require.Same(t, s.Ordering(), s.Ordering())
}
