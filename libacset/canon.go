package libacset

import (
	"sort"

	"github.com/acset-systems/goacset/goacset"
	"github.com/acset-systems/goacset/libacset/def"
)

// runSearch validates g, lowers it and expands the full search tree.
func runSearch(g *ACSet, opts goacset.SearchOpts) (*SearchTree, *ACSet, []ValueTable, error) {
	if g == nil {
		return nil, nil, nil, goacset.ErrNilACSet
	}
	if err := g.Validate(); err != nil {
		return nil, nil, nil, err
	}
	pseudo, vts, err := Lower(g)
	if err != nil {
		return nil, nil, nil, err
	}
	st := newSearchTree(pseudo, opts)
	st.run()
	if len(st.Leaves()) == 0 {
		// The identity branch always terminates in a discrete leaf.
		return nil, nil, nil, goacset.ErrEmptyIsos
	}
	return st, pseudo, vts, nil
}

// Autos returns automorphisms of g discovered by the search, plus the search
// tree.  The identity is always included; under pruning the set may be a
// proper generating subset of the full group.
func Autos(g *ACSet, opts goacset.SearchOpts) ([]Perm, *SearchTree, error) {
	st, pseudo, vts, err := runSearch(g, opts)
	if err != nil {
		return nil, nil, err
	}

	leaves := st.Leaves()
	ref := Invert(leaves[0].Saturated.ToPerm())

	nOrig := len(g.Schema.Tables)
	seen := make(map[string]bool, len(leaves))
	var out []Perm

	for _, l := range leaves {
		gamma := Compose(l.Saturated.ToPerm(), ref)
		if !IsAutomorphism(pseudo, gamma) {
			continue
		}
		P := Perm(gamma[:nOrig]).Clone()
		if vts != nil && !IsAutomorphism(g, P) {
			continue // permutes attribute values; not an automorphism of g
		}
		key := string(appendPermKey(nil, P))
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, P)
	}

	return out, st, nil
}

func appendPermKey(buf []byte, P Perm) []byte {
	for _, col := range P {
		buf = appendI32(buf, int32(len(col)))
		for _, v := range col {
			buf = appendI32(buf, v)
		}
	}
	return buf
}

// CanonicalIso returns the canonical representative of g's iso class: the
// lexicographically minimal relabeling over all leaf colorings, attribute
// columns compared first, then arrow images, in the schema ordering
// heuristic's order.
func CanonicalIso(g *ACSet) (*ACSet, error) {
	st, pseudo, vts, err := runSearch(g, goacset.DefaultSearchOpts)
	if err != nil {
		return nil, err
	}

	var candidates []*ACSet
	for _, l := range st.Leaves() {
		applied, err := Apply(pseudo, l.Saturated.ToPerm())
		if err != nil {
			return nil, err
		}
		if vts != nil {
			applied = LiftInto(applied, g, vts)
		}
		candidates = append(candidates, applied)
	}
	if len(candidates) == 0 {
		return nil, goacset.ErrEmptyIsos
	}

	ord := g.Schema.Ordering()
	sort.SliceStable(candidates, func(i, j int) bool {
		return canonicalLess(candidates[i], candidates[j], ord)
	})
	return candidates[0], nil
}

// canonicalLess compares two relabelings of the same instance by the sort key
// kappa: attribute columns first, then arrow image columns.
func canonicalLess(x, y *ACSet, ord *Ordering) bool {
	for _, ai := range ord.Attrs {
		xcol, ycol := x.attrs[ai], y.attrs[ai]
		for i := range xcol {
			if d := xcol[i].Compare(ycol[i]); d != 0 {
				return d < 0
			}
		}
	}
	for _, ai := range ord.Arrows {
		xcol, ycol := x.imgs[ai], y.imgs[ai]
		for i := range xcol {
			if xcol[i] != ycol[i] {
				return xcol[i] < ycol[i]
			}
		}
	}
	return false
}

// CanonicalHash hashes the canonical representative's stable encoding.
// Equal hashes are implied for all members of one iso class.
func CanonicalHash(g *ACSet) (uint64, error) {
	canon, err := CanonicalIso(g)
	if err != nil {
		return 0, err
	}
	return goacset.HashBytes(canon.AppendEncoding(nil)), nil
}

// IsIsomorphic compares two instances over the same schema shape by their
// canonical encodings.
func IsIsomorphic(g, h *ACSet) (bool, error) {
	gc, err := CanonicalIso(g)
	if err != nil {
		return false, err
	}
	hc, err := CanonicalIso(h)
	if err != nil {
		return false, err
	}
	genc := gc.AppendEncoding(nil)
	henc := hc.AppendEncoding(nil)
	if len(genc) != len(henc) {
		return false, nil
	}
	for i := range genc {
		if genc[i] != henc[i] {
			return false, nil
		}
	}
	return true, nil
}

// Canonic lazily computes and caches the canonical form of one instance.
// It implements goacset.CanonicForm for catalogs and canonic sets.
type Canonic struct {
	g    *ACSet
	form *ACSet
	hash uint64
	err  error
	done bool
}

func NewCanonic(g *ACSet) *Canonic {
	return &Canonic{g: g}
}

func (cf *Canonic) resolve() {
	if cf.done {
		return
	}
	cf.done = true
	cf.form, cf.err = CanonicalIso(cf.g)
	if cf.err == nil {
		cf.hash = goacset.HashBytes(cf.form.AppendEncoding(nil))
	}
}

// Form returns the canonical representative.
func (cf *Canonic) Form() (*ACSet, error) {
	cf.resolve()
	return cf.form, cf.err
}

func (cf *Canonic) CanonicHash() (uint64, error) {
	cf.resolve()
	return cf.hash, cf.err
}

func (cf *Canonic) AppendCanonicEncoding(buf []byte) ([]byte, error) {
	cf.resolve()
	if cf.err != nil {
		return nil, cf.err
	}
	return cf.form.AppendEncoding(buf), nil
}

// CanonicInstanceDef returns the canonical representative's wire form.
// Catalogs store this as the value record for an iso class.
func (cf *Canonic) CanonicInstanceDef() (*def.InstanceDef, error) {
	cf.resolve()
	if cf.err != nil {
		return nil, cf.err
	}
	return cf.form.ExportDef(), nil
}
