package libacset

import (
	"fmt"

	"github.com/acset-systems/goacset/goacset"
)

// ACSet is an instance of a Schema: a size per table, an image column per
// arrow and a value column per attribute arrow.  Elements are one-based.
//
// The instance is read-only to the automorphism engine; mutators invalidate
// the lazily built preimage index.
type ACSet struct {
	Schema *Schema

	sizes  []int32
	imgs   [][]int32          // per arrow; imgs[a][i-1] in 1..size(tgt)
	attrs  [][]goacset.AttrVal // per attribute arrow
	preimg [][][]int32        // lazy; preimg[a][j-1] = sorted elements i with imgs[a][i-1] == j
}

func NewACSet(s *Schema) *ACSet {
	return &ACSet{
		Schema: s,
		sizes:  make([]int32, len(s.Tables)),
		imgs:   make([][]int32, len(s.Arrows)),
		attrs:  make([][]goacset.AttrVal, len(s.Attrs)),
	}
}

func (g *ACSet) onChanged() {
	g.preimg = nil
}

// SetSize declares the number of elements of the named table.
func (g *ACSet) SetSize(table string, n int) error {
	ti := g.Schema.TableIndex(table)
	if ti < 0 {
		return fmt.Errorf("%w: unknown table %q", goacset.ErrInvalidInstance, table)
	}
	if n < 0 {
		return fmt.Errorf("%w: negative size for table %q", goacset.ErrInvalidInstance, table)
	}
	g.sizes[ti] = int32(n)
	g.onChanged()
	return nil
}

// SetImg assigns the image column of the named arrow (one-based element IDs).
func (g *ACSet) SetImg(arrow string, img ...int) error {
	ai := g.Schema.ArrowIndex(arrow)
	if ai < 0 {
		return fmt.Errorf("%w: unknown arrow %q", goacset.ErrInvalidInstance, arrow)
	}
	col := make([]int32, len(img))
	for i, v := range img {
		col[i] = int32(v)
	}
	g.imgs[ai] = col
	g.onChanged()
	return nil
}

// SetAttrs assigns the value column of the named attribute arrow.
func (g *ACSet) SetAttrs(attr string, vals ...goacset.AttrVal) error {
	ai := g.Schema.AttrIndex(attr)
	if ai < 0 {
		return fmt.Errorf("%w: unknown attr %q", goacset.ErrInvalidInstance, attr)
	}
	g.attrs[ai] = append([]goacset.AttrVal{}, vals...)
	g.onChanged()
	return nil
}

func (g *ACSet) Size(ti int32) int32            { return g.sizes[ti] }
func (g *ACSet) Img(ai int32) []int32           { return g.imgs[ai] }
func (g *ACSet) AttrCol(ai int32) []goacset.AttrVal { return g.attrs[ai] }

// Validate checks column lengths and image ranges.
// Fatal on entry to the automorphism search.
func (g *ACSet) Validate() error {
	if g == nil {
		return goacset.ErrNilACSet
	}
	for ai, a := range g.Schema.Arrows {
		col := g.imgs[ai]
		if int32(len(col)) != g.sizes[a.Src] {
			return fmt.Errorf("%w: arrow %q has %d entries, table %q has %d elements",
				goacset.ErrInvalidInstance, a.Name, len(col), g.Schema.Tables[a.Src], g.sizes[a.Src])
		}
		nTgt := g.sizes[a.Tgt]
		for i, v := range col {
			if v < 1 || v > nTgt {
				return fmt.Errorf("%w: arrow %q maps element %d out of range (%d not in 1..%d)",
					goacset.ErrInvalidInstance, a.Name, i+1, v, nTgt)
			}
		}
	}
	for ai, a := range g.Schema.Attrs {
		col := g.attrs[ai]
		if int32(len(col)) != g.sizes[a.Src] {
			return fmt.Errorf("%w: attr %q has %d entries, table %q has %d elements",
				goacset.ErrInvalidInstance, a.Name, len(col), g.Schema.Tables[a.Src], g.sizes[a.Src])
		}
	}
	return nil
}

// Preimage returns the elements of src(a) mapping to element j of tgt(a).
// The index is built on first use and reused until the instance mutates.
func (g *ACSet) Preimage(ai, j int32) []int32 {
	if g.preimg == nil {
		g.buildPreimages()
	}
	return g.preimg[ai][j-1]
}

func (g *ACSet) buildPreimages() {
	pre := make([][][]int32, len(g.Schema.Arrows))
	for ai, a := range g.Schema.Arrows {
		buckets := make([][]int32, g.sizes[a.Tgt])
		for i, j := range g.imgs[ai] {
			buckets[j-1] = append(buckets[j-1], int32(i+1))
		}
		pre[ai] = buckets
	}
	g.preimg = pre
}

// Clone returns a deep copy sharing only the (immutable) schema.
func (g *ACSet) Clone() *ACSet {
	cp := NewACSet(g.Schema)
	copy(cp.sizes, g.sizes)
	for ai, col := range g.imgs {
		cp.imgs[ai] = append([]int32{}, col...)
	}
	for ai, col := range g.attrs {
		cp.attrs[ai] = append([]goacset.AttrVal{}, col...)
	}
	return cp
}

// Equal reports field-for-field equality (attribute values via Compare).
func (g *ACSet) Equal(other *ACSet) bool {
	if g.Schema != other.Schema {
		return false
	}
	for ti := range g.sizes {
		if g.sizes[ti] != other.sizes[ti] {
			return false
		}
	}
	for ai, col := range g.imgs {
		ocol := other.imgs[ai]
		for i, v := range col {
			if v != ocol[i] {
				return false
			}
		}
	}
	for ai, col := range g.attrs {
		ocol := other.attrs[ai]
		for i, v := range col {
			if v.Compare(ocol[i]) != 0 {
				return false
			}
		}
	}
	return true
}

// AppendEncoding appends a stable binary rendering of the instance:
// table sizes, then attribute columns, then arrow images, in schema order.
// The encoding is the serialization hashed by CanonicalHash.
func (g *ACSet) AppendEncoding(buf []byte) []byte {
	for _, n := range g.sizes {
		buf = appendI32(buf, n)
	}
	for _, col := range g.attrs {
		buf = appendI32(buf, int32(len(col)))
		for _, v := range col {
			buf = v.AppendEncoding(buf)
		}
	}
	for _, col := range g.imgs {
		buf = appendI32(buf, int32(len(col)))
		for _, v := range col {
			buf = appendI32(buf, v)
		}
	}
	return buf
}

func appendI32(buf []byte, v int32) []byte {
	return append(buf,
		byte(v>>24),
		byte(v>>16),
		byte(v>>8),
		byte(v))
}
