package libacset

import (
	"strconv"

	"github.com/acset-systems/goacset/goacset"
	"github.com/acset-systems/goacset/libacset/def"
)

// ExportDef renders the instance as its wire form.
func (g *ACSet) ExportDef() *def.InstanceDef {
	out := &def.InstanceDef{
		Sizes: make([]int64, len(g.sizes)),
	}
	for ti, n := range g.sizes {
		out.Sizes[ti] = int64(n)
	}
	for _, col := range g.attrs {
		ac := &def.AttrCol{Values: make([][]byte, len(col))}
		for i, v := range col {
			ac.Values[i] = v.AppendEncoding(nil)
		}
		out.Attrs = append(out.Attrs, ac)
	}
	for _, col := range g.imgs {
		ic := &def.ImgCol{Values: make([]int64, len(col))}
		for i, v := range col {
			ic.Values[i] = int64(v)
		}
		out.Imgs = append(out.Imgs, ic)
	}
	return out
}

// ACSetFromDef rebuilds an instance of schema s from its wire form.
func ACSetFromDef(s *Schema, d *def.InstanceDef) (*ACSet, error) {
	g := NewACSet(s)
	if len(d.Sizes) != len(s.Tables) || len(d.Imgs) != len(s.Arrows) || len(d.Attrs) != len(s.Attrs) {
		return nil, goacset.ErrSchemaMismatch
	}
	for ti, n := range d.Sizes {
		g.sizes[ti] = int32(n)
	}
	for ai, ic := range d.Imgs {
		col := make([]int32, len(ic.Values))
		for i, v := range ic.Values {
			col[i] = int32(v)
		}
		g.imgs[ai] = col
	}
	for ai, ac := range d.Attrs {
		col := make([]goacset.AttrVal, len(ac.Values))
		for i, b := range ac.Values {
			v, err := decodeAttrVal(b)
			if err != nil {
				return nil, err
			}
			col[i] = v
		}
		g.attrs[ai] = col
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

func decodeAttrVal(b []byte) (goacset.AttrVal, error) {
	if len(b) == 0 {
		return nil, goacset.ErrUnmarshal
	}
	switch b[0] {
	case 's':
		if len(b) < 5 {
			return nil, goacset.ErrUnmarshal
		}
		return goacset.StrVal(b[5:]), nil
	case 'i':
		n, err := strconv.ParseInt(string(b[1:]), 10, 64)
		if err != nil {
			return nil, goacset.ErrUnmarshal
		}
		return goacset.IntVal(n), nil
	}
	return nil, goacset.ErrUnmarshal
}
