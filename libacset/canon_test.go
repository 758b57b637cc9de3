package libacset_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/acset-systems/goacset/goacset"
	"github.com/acset-systems/goacset/libacset"
)

// labeledGraphSchema adds a string attribute column on edges.
func labeledGraphSchema(t *testing.T) *libacset.Schema {
	s := libacset.NewSchema()
	require.NoError(t, s.AddTable("V"))
	require.NoError(t, s.AddTable("E"))
	require.NoError(t, s.AddArrow("src", "E", "V"))
	require.NoError(t, s.AddArrow("tgt", "E", "V"))
	require.NoError(t, s.AddAttr("dec", "E", "Label"))
	return s
}

func mkLabeled(t *testing.T, s *libacset.Schema, nv int, src, tgt []int, dec []string) *libacset.ACSet {
	g := libacset.NewACSet(s)
	require.NoError(t, g.SetSize("V", nv))
	require.NoError(t, g.SetSize("E", len(src)))
	require.NoError(t, g.SetImg("src", src...))
	require.NoError(t, g.SetImg("tgt", tgt...))
	vals := make([]goacset.AttrVal, len(dec))
	for i, d := range dec {
		vals[i] = goacset.StrVal(d)
	}
	require.NoError(t, g.SetAttrs("dec", vals...))
	require.NoError(t, g.Validate())
	return g
}

// Two labeled 4-cycles that differ only by a vertex relabeling.
func TestLabeledCycleVertexRelabel(t *testing.T) {
	s := labeledGraphSchema(t)
	g := mkLabeled(t, s, 4, []int{1, 2, 3, 4}, []int{2, 3, 4, 1}, []string{"a", "b", "c", "d"})
	h := mkLabeled(t, s, 4, []int{1, 3, 2, 4}, []int{3, 2, 4, 1}, []string{"a", "b", "c", "d"})

	gh, err := libacset.CanonicalHash(g)
	require.NoError(t, err)
	hh, err := libacset.CanonicalHash(h)
	require.NoError(t, err)
	require.Equal(t, gh, hh)

	iso, err := libacset.IsIsomorphic(g, h)
	require.NoError(t, err)
	require.True(t, iso)
}

// Rotating the labels around the same cycle is a label permutation realized
// by a vertex rotation: hashes must agree.
func TestLabeledCycleLabelRotation(t *testing.T) {
	s := labeledGraphSchema(t)
	g := mkLabeled(t, s, 4, []int{1, 2, 3, 4}, []int{2, 3, 4, 1}, []string{"a", "b", "c", "d"})
	h := mkLabeled(t, s, 4, []int{1, 2, 3, 4}, []int{2, 3, 4, 1}, []string{"b", "c", "d", "a"})

	gh, err := libacset.CanonicalHash(g)
	require.NoError(t, err)
	hh, err := libacset.CanonicalHash(h)
	require.NoError(t, err)
	require.Equal(t, gh, hh)
}

// Mismatched label multisets can never be isomorphic.
func TestLabeledCycleMismatchedMultisets(t *testing.T) {
	s := labeledGraphSchema(t)
	g := mkLabeled(t, s, 4, []int{1, 2, 3, 4}, []int{2, 3, 4, 1}, []string{"a", "a", "b", "c"})
	h := mkLabeled(t, s, 4, []int{1, 2, 3, 4}, []int{2, 3, 4, 1}, []string{"a", "b", "c", "d"})

	gh, err := libacset.CanonicalHash(g)
	require.NoError(t, err)
	hh, err := libacset.CanonicalHash(h)
	require.NoError(t, err)
	require.NotEqual(t, gh, hh)

	iso, err := libacset.IsIsomorphic(g, h)
	require.NoError(t, err)
	require.False(t, iso)
}

// twoLoopSchema: one table with two self-loop arrows.
func twoLoopSchema(t *testing.T) *libacset.Schema {
	s := libacset.NewSchema()
	require.NoError(t, s.AddTable("V"))
	require.NoError(t, s.AddArrow("e1", "V", "V"))
	require.NoError(t, s.AddArrow("e2", "V", "V"))
	return s
}

func TestTwoLoops(t *testing.T) {
	s := twoLoopSchema(t)

	mk := func(n int, e1, e2 []int) *libacset.ACSet {
		g := libacset.NewACSet(s)
		require.NoError(t, g.SetSize("V", n))
		require.NoError(t, g.SetImg("e1", e1...))
		require.NoError(t, g.SetImg("e2", e2...))
		require.NoError(t, g.Validate())
		return g
	}

	// A single vertex fixed by both loops: trivially equal.
	a := mk(1, []int{1}, []int{1})
	b := mk(1, []int{1}, []int{1})
	ah, err := libacset.CanonicalHash(a)
	require.NoError(t, err)
	bh, err := libacset.CanonicalHash(b)
	require.NoError(t, err)
	require.Equal(t, ah, bh)

	// A transposition pair vs two separate fixed loops: not isomorphic.
	c := mk(2, []int{2, 1}, []int{2, 1})
	d := mk(2, []int{1, 1}, []int{2, 2})
	ch, err := libacset.CanonicalHash(c)
	require.NoError(t, err)
	dh, err := libacset.CanonicalHash(d)
	require.NoError(t, err)
	require.NotEqual(t, ch, dh)
}

// hartkeRadcliffe builds the nine-vertex example graph from Hartke and
// Radcliffe's exposition of McKay's algorithm, each undirected edge stored as
// a pair of opposite directed edges.
func hartkeRadcliffe(t *testing.T, s *libacset.Schema, relabel []int) *libacset.ACSet {
	und := [][2]int{
		{1, 7}, {1, 8}, {2, 5}, {2, 6}, {3, 6}, {3, 8},
		{4, 5}, {4, 7}, {5, 9}, {6, 9}, {7, 9}, {8, 9},
	}
	var edges [][2]int
	for _, e := range und {
		a, b := e[0], e[1]
		if relabel != nil {
			a, b = relabel[a-1], relabel[b-1]
		}
		edges = append(edges, [2]int{a, b}, [2]int{b, a})
	}
	return mkGraph(t, s, 9, edges)
}

func TestHartkeRadcliffe(t *testing.T) {
	s := graphSchema(t)
	g := hartkeRadcliffe(t, s, nil)
	h := hartkeRadcliffe(t, s, []int{9, 4, 2, 7, 1, 8, 6, 3, 5})

	gh, err := libacset.CanonicalHash(g)
	require.NoError(t, err)
	hh, err := libacset.CanonicalHash(h)
	require.NoError(t, err)
	require.Equal(t, gh, hh)

	autos, _, err := libacset.Autos(g, goacset.DefaultSearchOpts)
	require.NoError(t, err)
	require.Greater(t, len(closure(autos)), 1, "the example graph has nontrivial symmetry")
}

// A random joint vertex/edge permutation of a fixed 7-vertex/17-edge graph
// must never change the canonical hash.
func TestRandomPermutationInvariance(t *testing.T) {
	s := graphSchema(t)

	rng := rand.New(rand.NewSource(271828))
	var edges [][2]int
	seen := map[[2]int]bool{}
	for len(edges) < 17 {
		e := [2]int{rng.Intn(7) + 1, rng.Intn(7) + 1}
		if seen[e] {
			continue
		}
		seen[e] = true
		edges = append(edges, e)
	}
	g := mkGraph(t, s, 7, edges)

	want, err := libacset.CanonicalHash(g)
	require.NoError(t, err)

	for trial := 0; trial < 5; trial++ {
		P := libacset.Perm{
			randPerm(rng, 7),
			randPerm(rng, 17),
		}
		permuted, err := libacset.Apply(g, P)
		require.NoError(t, err)

		got, err := libacset.CanonicalHash(permuted)
		require.NoError(t, err)
		require.Equal(t, want, got, "trial %d", trial)
	}
}

func randPerm(rng *rand.Rand, n int) []int32 {
	p := rng.Perm(n)
	col := make([]int32, n)
	for i, v := range p {
		col[i] = int32(v + 1)
	}
	return col
}

// The canonical representative is itself canonical, and stable across calls.
func TestCanonicalIdempotent(t *testing.T) {
	s := graphSchema(t)
	g := mkGraph(t, s, 5, [][2]int{{1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 1}})

	c1, err := libacset.CanonicalIso(g)
	require.NoError(t, err)
	c2, err := libacset.CanonicalIso(c1)
	require.NoError(t, err)
	require.True(t, c1.Equal(c2))

	c3, err := libacset.CanonicalIso(g)
	require.NoError(t, err)
	require.True(t, c1.Equal(c3))
}

// Hash soundness with attribute relabeling: applying an automorphism-shaped
// permutation never changes the hash of an attributed instance.
func TestAttributedHashSoundness(t *testing.T) {
	s := labeledGraphSchema(t)
	g := mkLabeled(t, s, 4, []int{1, 2, 3, 4}, []int{2, 3, 4, 1}, []string{"x", "x", "y", "y"})

	want, err := libacset.CanonicalHash(g)
	require.NoError(t, err)

	P := libacset.Perm{
		{3, 4, 1, 2},
		{3, 4, 1, 2},
	}
	permuted, err := libacset.Apply(g, P)
	require.NoError(t, err)
	got, err := libacset.CanonicalHash(permuted)
	require.NoError(t, err)
	require.Equal(t, want, got)
}
