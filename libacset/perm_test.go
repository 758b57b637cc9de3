package libacset_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/acset-systems/goacset/libacset"
)

// graphSchema returns the plain directed-multigraph schema: V, E, src, tgt.
func graphSchema(t *testing.T) *libacset.Schema {
	s := libacset.NewSchema()
	require.NoError(t, s.AddTable("V"))
	require.NoError(t, s.AddTable("E"))
	require.NoError(t, s.AddArrow("src", "E", "V"))
	require.NoError(t, s.AddArrow("tgt", "E", "V"))
	return s
}

// mkGraph builds a graph instance from a directed edge list.
func mkGraph(t *testing.T, s *libacset.Schema, nv int, edges [][2]int) *libacset.ACSet {
	g := libacset.NewACSet(s)
	require.NoError(t, g.SetSize("V", nv))
	require.NoError(t, g.SetSize("E", len(edges)))
	src := make([]int, len(edges))
	tgt := make([]int, len(edges))
	for i, e := range edges {
		src[i] = e[0]
		tgt[i] = e[1]
	}
	require.NoError(t, g.SetImg("src", src...))
	require.NoError(t, g.SetImg("tgt", tgt...))
	require.NoError(t, g.Validate())
	return g
}

func cycle4(t *testing.T, s *libacset.Schema) *libacset.ACSet {
	return mkGraph(t, s, 4, [][2]int{{1, 2}, {2, 3}, {3, 4}, {4, 1}})
}

func TestComposeInvert(t *testing.T) {
	s := graphSchema(t)
	g := cycle4(t, s)

	// Rotate vertices by one, edges follow.
	rot := libacset.Perm{
		{2, 3, 4, 1},
		{2, 3, 4, 1},
	}
	require.True(t, rot.IsPerm())

	id := libacset.IdentityPerm(g)
	require.True(t, libacset.Compose(rot, libacset.Invert(rot)).Equal(id))
	require.True(t, libacset.Compose(libacset.Invert(rot), rot).Equal(id))

	rot2 := libacset.Compose(rot, rot)
	require.Equal(t, int32(3), rot2[0][0])
	require.Equal(t, int32(1), rot2[0][2])
}

func TestIsPerm(t *testing.T) {
	require.True(t, libacset.Perm{{1, 2, 3}}.IsPerm())
	require.False(t, libacset.Perm{{1, 1, 3}}.IsPerm())
	require.False(t, libacset.Perm{{0, 1, 2}}.IsPerm())
	require.False(t, libacset.Perm{{1, 2, 4}}.IsPerm())
}

// Apply must satisfy img'[P[s][i]] = P[t][img[i]] for every arrow and element.
func TestApplyCorrectness(t *testing.T) {
	s := graphSchema(t)
	g := mkGraph(t, s, 4, [][2]int{{1, 2}, {2, 3}, {3, 4}, {4, 2}})

	P := libacset.Perm{
		{3, 1, 4, 2},
		{2, 4, 1, 3},
	}
	applied, err := libacset.Apply(g, P)
	require.NoError(t, err)

	for _, name := range []string{"src", "tgt"} {
		orig := g.Img(g.Schema.ArrowIndex(name))
		got := applied.Img(g.Schema.ArrowIndex(name))
		for i := range orig {
			require.Equal(t, P[0][orig[i]-1], got[P[1][i]-1], "arrow %s element %d", name, i+1)
		}
	}
}

func TestApplyRejectsNonPerm(t *testing.T) {
	s := graphSchema(t)
	g := cycle4(t, s)

	_, err := libacset.Apply(g, libacset.Perm{{1, 1, 3, 4}, {1, 2, 3, 4}})
	require.Error(t, err)

	_, err = libacset.Apply(g, libacset.Perm{{1, 2, 3, 4}})
	require.Error(t, err)
}

func TestIsAutomorphism(t *testing.T) {
	s := graphSchema(t)
	g := cycle4(t, s)

	rot := libacset.Perm{
		{2, 3, 4, 1},
		{2, 3, 4, 1},
	}
	require.True(t, libacset.IsAutomorphism(g, rot))

	// A vertex transposition alone breaks the cycle.
	swap := libacset.Perm{
		{2, 1, 3, 4},
		{1, 2, 3, 4},
	}
	require.False(t, libacset.IsAutomorphism(g, swap))
}
