package goacset_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/acset-systems/goacset/goacset"
)

func TestMix64Deterministic(t *testing.T) {
	sum := func(vals ...int64) uint64 {
		var mix goacset.Mix64
		mix.Reset()
		for _, v := range vals {
			mix.WriteInt(v)
		}
		return mix.Sum64()
	}

	require.Equal(t, sum(1, 2, 3), sum(1, 2, 3))
	require.NotEqual(t, sum(1, 2, 3), sum(3, 2, 1))
	require.NotEqual(t, sum(1, 2), sum(1, 2, 0))
}

func TestHashBytes(t *testing.T) {
	require.Equal(t, goacset.HashBytes([]byte("acset")), goacset.HashBytes([]byte("acset")))
	require.NotEqual(t, goacset.HashBytes([]byte("acset")), goacset.HashBytes([]byte("acsets")))
}

func TestAttrValOrdering(t *testing.T) {
	require.Negative(t, goacset.StrVal("a").Compare(goacset.StrVal("b")))
	require.Zero(t, goacset.StrVal("a").Compare(goacset.StrVal("a")))
	require.Positive(t, goacset.IntVal(7).Compare(goacset.IntVal(-2)))

	require.NotEqual(t,
		goacset.StrVal("1").AppendEncoding(nil),
		goacset.IntVal(1).AppendEncoding(nil),
		"values of different domains must encode distinctly")
}
