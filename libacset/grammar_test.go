package libacset_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/acset-systems/goacset/goacset"
	"github.com/acset-systems/goacset/libacset"
)

const cycleDoc = `
schema Gr {
    table V
    table E
    arrow src : E -> V
    arrow tgt : E -> V
    attr  dec : E -> Label
}

acset C4 : Gr {
    V = 4
    E = 4
    src = [1 2 3 4]
    tgt = [2 3 4 1]
    dec = ["a" "b" "c" "d"]
}

acset C4b : Gr {
    V = 4
    E = 4
    src = [1 3 2 4]
    tgt = [3 2 4 1]
    dec = ["a" "b" "c" "d"]
}
`

func TestParseDocument(t *testing.T) {
	schemas, acsets, err := libacset.ParseDocument(cycleDoc)
	require.NoError(t, err)
	require.Contains(t, schemas, "Gr")
	require.Len(t, acsets, 2)

	g := acsets["C4"]
	require.NotNil(t, g)
	require.Equal(t, int32(4), g.Size(g.Schema.TableIndex("V")))
	require.Equal(t, []int32{1, 2, 3, 4}, g.Img(g.Schema.ArrowIndex("src")))
	require.Equal(t, goacset.StrVal("b"), g.AttrCol(g.Schema.AttrIndex("dec"))[1])
}

func TestParsedInstancesAreIsomorphic(t *testing.T) {
	_, acsets, err := libacset.ParseDocument(cycleDoc)
	require.NoError(t, err)

	iso, err := libacset.IsIsomorphic(acsets["C4"], acsets["C4b"])
	require.NoError(t, err)
	require.True(t, iso)
}

func TestParseErrors(t *testing.T) {
	_, _, err := libacset.ParseDocument(`acset X : Nope { V = 1 }`)
	require.ErrorIs(t, err, goacset.ErrBadExpr)

	_, _, err = libacset.ParseDocument(`
schema S { table V table V }`)
	require.ErrorIs(t, err, goacset.ErrInvalidSchema)

	_, _, err = libacset.ParseDocument(`
schema S { table V arrow f : V -> W }`)
	require.ErrorIs(t, err, goacset.ErrInvalidSchema)

	_, _, err = libacset.ParseDocument(`
schema S {
    table V
    table E
    arrow src : E -> V
    arrow tgt : E -> V
}
acset X : S {
    V = 2
    E = 1
    src = [1]
    tgt = [3]
}`)
	require.ErrorIs(t, err, goacset.ErrInvalidInstance)
}
