package libacset_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/acset-systems/goacset/libacset"
	"github.com/acset-systems/goacset/libacset/def"
)

func TestInstanceDefRoundTrip(t *testing.T) {
	s := labeledGraphSchema(t)
	g := mkLabeled(t, s, 3, []int{1, 2, 3}, []int{2, 3, 1}, []string{"p", "q", "r"})

	buf, err := g.ExportDef().Marshal()
	require.NoError(t, err)

	var d def.InstanceDef
	require.NoError(t, d.Unmarshal(buf))

	back, err := libacset.ACSetFromDef(s, &d)
	require.NoError(t, err)
	require.True(t, g.Equal(back))
}

func TestCanonicSetDedupesIsoClasses(t *testing.T) {
	s := graphSchema(t)
	g := cycle4(t, s)
	h := mkGraph(t, s, 4, [][2]int{{2, 3}, {3, 4}, {4, 1}, {1, 2}}) // relabeled cycle
	path := mkGraph(t, s, 4, [][2]int{{1, 2}, {2, 3}, {3, 4}})

	set := libacset.NewCanonicSet()
	defer set.Close()

	require.True(t, set.TryAdd(libacset.NewCanonic(g)))
	require.False(t, set.TryAdd(libacset.NewCanonic(h)), "isomorphic instance must be rejected")
	require.True(t, set.TryAdd(libacset.NewCanonic(path)))
}
