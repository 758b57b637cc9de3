package libacset

import (
	"fmt"

	"github.com/acset-systems/goacset/goacset"
)

// Perm is a per-table bijection, indexed by the table's position in schema
// order.  Perm[t][i-1] is the (one-based) image of element i of table t.
type Perm [][]int32

// IdentityPerm returns the identity permutation shaped like g.
func IdentityPerm(g *ACSet) Perm {
	P := make(Perm, len(g.Schema.Tables))
	for ti := range P {
		n := g.sizes[ti]
		col := make([]int32, n)
		for i := int32(0); i < n; i++ {
			col[i] = i + 1
		}
		P[ti] = col
	}
	return P
}

// Compose returns R with R[t][i] = Q[t][P[t][i]]: P applied first, then Q.
// Shape mismatches are programmer errors.
func Compose(P, Q Perm) Perm {
	if len(P) != len(Q) {
		panic("perm compose: table count mismatch")
	}
	R := make(Perm, len(P))
	for ti := range P {
		if len(P[ti]) != len(Q[ti]) {
			panic(fmt.Sprintf("perm compose: table %d length mismatch", ti))
		}
		col := make([]int32, len(P[ti]))
		for i, v := range P[ti] {
			col[i] = Q[ti][v-1]
		}
		R[ti] = col
	}
	return R
}

// Invert returns the per-table inverse of P.
// Panics if any component is not a bijection.
func Invert(P Perm) Perm {
	R := make(Perm, len(P))
	for ti := range P {
		col := make([]int32, len(P[ti]))
		for i, v := range P[ti] {
			if v < 1 || int(v) > len(col) || col[v-1] != 0 {
				panic(fmt.Sprintf("perm invert: table %d component is not a bijection", ti))
			}
			col[v-1] = int32(i + 1)
		}
		R[ti] = col
	}
	return R
}

// IsPerm returns true if every component of P is a bijection of 1..n_t.
func (P Perm) IsPerm() bool {
	for _, col := range P {
		seen := make([]bool, len(col))
		for _, v := range col {
			if v < 1 || int(v) > len(col) || seen[v-1] {
				return false
			}
			seen[v-1] = true
		}
	}
	return true
}

// Equal reports per-table, per-element equality.
func (P Perm) Equal(Q Perm) bool {
	if len(P) != len(Q) {
		return false
	}
	for ti := range P {
		if len(P[ti]) != len(Q[ti]) {
			return false
		}
		for i, v := range P[ti] {
			if v != Q[ti][i] {
				return false
			}
		}
	}
	return true
}

// Clone returns a deep copy of P.
func (P Perm) Clone() Perm {
	R := make(Perm, len(P))
	for ti, col := range P {
		R[ti] = append([]int32{}, col...)
	}
	return R
}

// Restrict returns P's component for a single table.
func (P Perm) Restrict(ti int32) []int32 {
	return P[ti]
}

// Apply relabels g by P: for each arrow a: s -> t,
// img'[P[s][i]] = P[t][img[i]], and attribute values travel with their
// source element.  Returns an error if P is not a valid permutation of g;
// callers are responsible for passing an automorphism when identity of the
// result matters.
func Apply(g *ACSet, P Perm) (*ACSet, error) {
	if len(P) != len(g.Schema.Tables) {
		return nil, goacset.ErrNotPermutation
	}
	for ti := range P {
		if int32(len(P[ti])) != g.sizes[ti] {
			return nil, goacset.ErrNotPermutation
		}
	}
	if !P.IsPerm() {
		return nil, goacset.ErrNotAutomorphism
	}

	out := NewACSet(g.Schema)
	copy(out.sizes, g.sizes)

	for ai, a := range g.Schema.Arrows {
		src := P[a.Src]
		tgt := P[a.Tgt]
		col := make([]int32, len(g.imgs[ai]))
		for i, v := range g.imgs[ai] {
			col[src[i]-1] = tgt[v-1]
		}
		out.imgs[ai] = col
	}

	for ai, a := range g.Schema.Attrs {
		src := P[a.Src]
		col := make([]goacset.AttrVal, len(g.attrs[ai]))
		for i, v := range g.attrs[ai] {
			col[src[i]-1] = v
		}
		out.attrs[ai] = col
	}

	return out, nil
}

// IsAutomorphism reports whether Apply(g, P) equals g.
func IsAutomorphism(g *ACSet, P Perm) bool {
	applied, err := Apply(g, P)
	if err != nil {
		return false
	}
	return applied.Equal(g)
}
