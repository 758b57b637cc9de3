package libacset

import (
	"sort"

	"github.com/acset-systems/goacset/goacset"
)

// ValueTable holds the distinct attribute values of one domain, sorted by the
// domain's total order.  Element j of the synthetic table stands for Vals[j-1].
type ValueTable struct {
	Dom  string
	Vals []goacset.AttrVal
}

func (vt *ValueTable) rankOf(v goacset.AttrVal) int32 {
	idx := sort.Search(len(vt.Vals), func(i int) bool {
		return vt.Vals[i].Compare(v) >= 0
	})
	return int32(idx + 1)
}

// Lower converts an attributed instance to a pure one: each attribute domain
// becomes a synthetic table of its distinct sorted values, and each attribute
// arrow becomes an ordinary arrow into that table carrying value ranks.
//
// Pure inputs are returned as-is with no value tables.
// The automorphism search only ever sees the lowered structure.
func Lower(g *ACSet) (*ACSet, []ValueTable, error) {
	if g.Schema.IsPure() {
		return g, nil, nil
	}

	// Distinct sorted values per domain, domains in order of first appearance
	// among the attribute arrows.
	var vts []ValueTable
	vtIdx := make(map[string]int)
	for ai, a := range g.Schema.Attrs {
		di, ok := vtIdx[a.Dom]
		if !ok {
			di = len(vts)
			vtIdx[a.Dom] = di
			vts = append(vts, ValueTable{Dom: a.Dom})
		}
		for _, v := range g.attrs[ai] {
			vt := &vts[di]
			idx := sort.Search(len(vt.Vals), func(i int) bool {
				return vt.Vals[i].Compare(v) >= 0
			})
			if idx < len(vt.Vals) && vt.Vals[idx].Compare(v) == 0 {
				continue
			}
			vt.Vals = append(vt.Vals, nil)
			copy(vt.Vals[idx+1:], vt.Vals[idx:])
			vt.Vals[idx] = v
		}
	}

	// Same tables and arrows, plus one table per domain; attribute arrows
	// become ordinary arrows of the same name.  Domain tables are prefixed
	// with '@', which expression-language identifiers cannot contain; a
	// declared table of the same name makes Lower fail with ErrInvalidSchema.
	ps := NewSchema()
	for _, t := range g.Schema.Tables {
		if err := ps.AddTable(t); err != nil {
			return nil, nil, err
		}
	}
	for _, vt := range vts {
		if err := ps.AddTable("@" + vt.Dom); err != nil {
			return nil, nil, err
		}
	}
	for _, a := range g.Schema.Arrows {
		if err := ps.AddArrow(a.Name, g.Schema.Tables[a.Src], g.Schema.Tables[a.Tgt]); err != nil {
			return nil, nil, err
		}
	}
	for _, a := range g.Schema.Attrs {
		if err := ps.AddArrow(a.Name, g.Schema.Tables[a.Src], "@"+a.Dom); err != nil {
			return nil, nil, err
		}
	}

	p := NewACSet(ps)
	for ti := range g.Schema.Tables {
		p.sizes[ti] = g.sizes[ti]
	}
	for di, vt := range vts {
		p.sizes[len(g.Schema.Tables)+di] = int32(len(vt.Vals))
	}

	// Copy ordinary arrow data, then append the rank columns.
	for ai := range g.Schema.Arrows {
		p.imgs[ai] = append([]int32{}, g.imgs[ai]...)
	}
	base := len(g.Schema.Arrows)
	for ai, a := range g.Schema.Attrs {
		vt := &vts[vtIdx[a.Dom]]
		col := make([]int32, len(g.attrs[ai]))
		for i, v := range g.attrs[ai] {
			col[i] = vt.rankOf(v)
		}
		p.imgs[base+ai] = col
	}

	return p, vts, nil
}

// LiftInto reverses Lower for one relabeled pseudo instance: it deep-copies
// orig, overlays the ordinary arrow columns from p, and replaces each rank in
// an attribute column by its domain value.
func LiftInto(p *ACSet, orig *ACSet, vts []ValueTable) *ACSet {
	out := orig.Clone()

	for ai := range orig.Schema.Arrows {
		copy(out.imgs[ai], p.imgs[ai])
	}

	vtIdx := make(map[string]int)
	for di, vt := range vts {
		vtIdx[vt.Dom] = di
	}
	base := len(orig.Schema.Arrows)
	for ai, a := range orig.Schema.Attrs {
		vt := &vts[vtIdx[a.Dom]]
		for i, rank := range p.imgs[base+ai] {
			out.attrs[ai][i] = vt.Vals[rank-1]
		}
	}

	return out
}
