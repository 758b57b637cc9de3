package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/acset-systems/goacset/goacset"
	"github.com/acset-systems/goacset/libacset"
	"github.com/acset-systems/goacset/libacset/catalog"
	"github.com/acset-systems/goacset/libacset/def"
)

func openTestCatalog(t *testing.T) (goacset.CatalogContext, goacset.Catalog) {
	ctx := goacset.NewCatalogContext()
	cat, err := catalog.OpenCatalog(ctx, goacset.CatalogOpts{})
	require.NoError(t, err)
	return ctx, cat
}

func testGraphs(t *testing.T) (g, h, other *libacset.ACSet) {
	s := libacset.NewSchema()
	require.NoError(t, s.AddTable("V"))
	require.NoError(t, s.AddTable("E"))
	require.NoError(t, s.AddArrow("src", "E", "V"))
	require.NoError(t, s.AddArrow("tgt", "E", "V"))

	mk := func(nv int, edges [][2]int) *libacset.ACSet {
		x := libacset.NewACSet(s)
		require.NoError(t, x.SetSize("V", nv))
		require.NoError(t, x.SetSize("E", len(edges)))
		src := make([]int, len(edges))
		tgt := make([]int, len(edges))
		for i, e := range edges {
			src[i] = e[0]
			tgt[i] = e[1]
		}
		require.NoError(t, x.SetImg("src", src...))
		require.NoError(t, x.SetImg("tgt", tgt...))
		return x
	}

	g = mk(3, [][2]int{{1, 2}, {2, 3}, {3, 1}})
	h = mk(3, [][2]int{{2, 3}, {3, 1}, {1, 2}}) // same triangle, edges renumbered
	other = mk(3, [][2]int{{1, 2}, {2, 3}})
	return
}

func TestCatalogTryAdd(t *testing.T) {
	ctx, cat := openTestCatalog(t)
	g, h, other := testGraphs(t)

	added, err := cat.TryAdd(libacset.NewCanonic(g))
	require.NoError(t, err)
	require.True(t, added)

	added, err = cat.TryAdd(libacset.NewCanonic(h))
	require.NoError(t, err)
	require.False(t, added, "isomorphic instance is already cataloged")

	added, err = cat.TryAdd(libacset.NewCanonic(other))
	require.NoError(t, err)
	require.True(t, added)

	require.EqualValues(t, 2, cat.NumCanonic())

	found, err := cat.Contains(libacset.NewCanonic(h))
	require.NoError(t, err)
	require.True(t, found)

	require.NoError(t, cat.Close())
	ctx.Close()
	<-ctx.Done()
}

func TestCatalogSelect(t *testing.T) {
	ctx, cat := openTestCatalog(t)
	defer func() {
		cat.Close()
		ctx.Close()
		<-ctx.Done()
	}()

	g, _, other := testGraphs(t)
	for _, x := range []*libacset.ACSet{g, other} {
		_, err := cat.TryAdd(libacset.NewCanonic(x))
		require.NoError(t, err)
	}

	hits := 0
	err := cat.Select(func(hash uint64, defBytes []byte) bool {
		var d def.InstanceDef
		require.NoError(t, d.Unmarshal(defBytes))
		require.Len(t, d.Sizes, 2)
		require.NotZero(t, hash)
		hits++
		return true
	})
	require.NoError(t, err)
	require.Equal(t, 2, hits)
}

func TestCatalogReadOnlyNeedsPath(t *testing.T) {
	ctx := goacset.NewCatalogContext()
	_, err := catalog.OpenCatalog(ctx, goacset.CatalogOpts{ReadOnly: true})
	require.ErrorIs(t, err, goacset.ErrBadCatalogParam)
	ctx.Close()
	<-ctx.Done()
}
