package libacset

import (
	"sort"

	"github.com/acset-systems/goacset/goacset"
)

// Coloring assigns every element a color, per table.  Colors are dense:
// C[t] takes values 1..k_t with every color in that range present.
type Coloring [][]int32

// NewUniformColoring colors every element of every table 1.
func NewUniformColoring(g *ACSet) Coloring {
	C := make(Coloring, len(g.Schema.Tables))
	for ti := range C {
		col := make([]int32, g.sizes[ti])
		for i := range col {
			col[i] = 1
		}
		C[ti] = col
	}
	return C
}

func (C Coloring) Clone() Coloring {
	cp := make(Coloring, len(C))
	for ti, col := range C {
		cp[ti] = append([]int32{}, col...)
	}
	return cp
}

// NumColors returns the number of distinct colors on table ti.
func (C Coloring) NumColors(ti int32) int32 {
	max := int32(0)
	for _, c := range C[ti] {
		if c > max {
			max = c
		}
	}
	return max
}

// TotalColors sums the per-table distinct color counts.  Strictly monotone
// under refinement until the fixed point, which bounds the round count.
func (C Coloring) TotalColors() int32 {
	total := int32(0)
	for ti := range C {
		total += C.NumColors(int32(ti))
	}
	return total
}

// IsDiscrete returns true if every color class is a singleton.
func (C Coloring) IsDiscrete() bool {
	for ti, col := range C {
		if C.NumColors(int32(ti)) != int32(len(col)) {
			return false
		}
	}
	return true
}

// ToPerm reads a discrete coloring as a permutation: element i of table t is
// sent to position C[t][i].  Panics if C is not discrete.
func (C Coloring) ToPerm() Perm {
	P := make(Perm, len(C))
	for ti, col := range C {
		pcol := append([]int32{}, col...)
		P[ti] = pcol
	}
	if !P.IsPerm() {
		panic("coloring is not discrete")
	}
	return P
}

// Indicator hashes the coloring to 64 bits.  Used only to order search paths;
// refinement itself never compares hashes.
//
// The hash covers per-table color histograms, not element-indexed vectors:
// nodes related by an automorphism carry permuted colorings and must still
// agree on their indicator, or order-pruning would break canonicity.
func (C Coloring) Indicator() uint64 {
	var mix goacset.Mix64
	mix.Reset()
	for ti, col := range C {
		mix.WriteInt(int64(len(col)))
		k := C.NumColors(int32(ti))
		counts := make([]int64, k)
		for _, c := range col {
			counts[c-1]++
		}
		for _, n := range counts {
			mix.WriteInt(n)
		}
	}
	return mix.Sum64()
}

// Permuted returns the coloring relabeled by P: out[t][P[t][i]] = C[t][i].
func (C Coloring) Permuted(P Perm) Coloring {
	out := make(Coloring, len(C))
	for ti, col := range C {
		ocol := make([]int32, len(col))
		for i, c := range col {
			ocol[P[ti][i]-1] = c
		}
		out[ti] = ocol
	}
	return out
}

func (C Coloring) equal(other Coloring) bool {
	for ti, col := range C {
		for i, c := range col {
			if c != other[ti][i] {
				return false
			}
		}
	}
	return true
}

// Refine iterates color refinement from C to the unique coarsest equitable
// coloring refining it.  C itself is not mutated.
//
// Each round recomputes, for every element, the tuple
// (previous color, per-incoming-arrow multiset of source colors,
// per-outgoing-arrow target color) and renumbers by sorting the full tuples.
// Tuples are compared for equality directly, so the result does not depend on
// any hash function.
func Refine(g *ACSet, C Coloring) Coloring {
	cur := C.Clone()
	total := cur.TotalColors()

	for {
		next := refineOnce(g, cur)
		nextTotal := next.TotalColors()
		if nextTotal == total {
			return next
		}
		cur = next
		total = nextTotal
	}
}

// colorKey is the ColorData tuple of one element, flattened to int32s with a
// fixed per-table layout so lexicographic comparison equals tuple comparison.
type colorKey struct {
	elem int32 // zero-based element index
	key  []int32
}

func refineOnce(g *ACSet, C Coloring) Coloring {
	s := g.Schema
	out := make(Coloring, len(C))

	for ti := range s.Tables {
		n := g.sizes[ti]
		keys := make([]colorKey, n)

		in := s.incoming(int32(ti))
		outArrows := s.outgoing(int32(ti))

		for i := int32(0); i < n; i++ {
			key := []int32{C[ti][i]}

			// Incoming arrows a: s -> t contribute the multiset of source
			// colors over preimg_a[i], as a dense count vector.
			for _, ai := range in {
				srcTable := s.Arrows[ai].Src
				counts := make([]int32, C.NumColors(srcTable))
				for _, e := range g.Preimage(ai, i+1) {
					counts[C[srcTable][e-1]-1]++
				}
				key = append(key, counts...)
			}

			// Outgoing arrows b: t -> u contribute the single target color.
			for _, bi := range outArrows {
				tgtTable := s.Arrows[bi].Tgt
				key = append(key, C[tgtTable][g.imgs[bi][i]-1])
			}

			keys[i] = colorKey{elem: i, key: key}
		}

		// Canonical dense renumbering: sort by full tuple, rank distinct
		// tuples.  Keys begin with the previous color, so new colors refine
		// the old partition.
		sort.Slice(keys, func(a, b int) bool {
			return keyLess(keys[a].key, keys[b].key)
		})

		col := make([]int32, n)
		rank := int32(0)
		for ki, k := range keys {
			if ki == 0 || keyLess(keys[ki-1].key, k.key) {
				rank++
			}
			col[k.elem] = rank
		}
		out[ti] = col
	}

	return out
}

func keyLess(a, b []int32) bool {
	// Within one table all keys have identical layout and length.
	for i, av := range a {
		if av != b[i] {
			return av < b[i]
		}
	}
	return false
}
