package libacset

import (
	"fmt"

	"github.com/acset-systems/goacset/goacset"
)

// Arrow is a typed homomorphism between two tables, stored by table index.
type Arrow struct {
	Name string
	Src  int32
	Tgt  int32
}

// AttrArrow is a typed attribute column from a table into a value domain.
type AttrArrow struct {
	Name string
	Src  int32
	Dom  string
}

// Schema declares the tables, arrows and attribute arrows of an acset.
// It is immutable for the duration of an automorphism computation: build it
// once with AddTable / AddArrow / AddAttr, then share it read-only.
type Schema struct {
	Tables []string
	Arrows []Arrow
	Attrs  []AttrArrow

	byName map[string]int32 // table name -> index
	names  map[string]bool  // all declared names (uniqueness check)
	order  *Ordering        // lazily computed, see order.go
}

func NewSchema() *Schema {
	return &Schema{
		byName: make(map[string]int32),
		names:  make(map[string]bool),
	}
}

func (s *Schema) addName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", goacset.ErrInvalidSchema)
	}
	if s.names[name] {
		return fmt.Errorf("%w: duplicate name %q", goacset.ErrInvalidSchema, name)
	}
	s.names[name] = true
	return nil
}

func (s *Schema) AddTable(name string) error {
	if err := s.addName(name); err != nil {
		return err
	}
	if len(s.Tables) >= goacset.MaxTables {
		return fmt.Errorf("%w: too many tables", goacset.ErrInvalidSchema)
	}
	s.byName[name] = int32(len(s.Tables))
	s.Tables = append(s.Tables, name)
	s.order = nil
	return nil
}

func (s *Schema) AddArrow(name, src, tgt string) error {
	si, ok := s.byName[src]
	if !ok {
		return fmt.Errorf("%w: arrow %q: unknown src table %q", goacset.ErrInvalidSchema, name, src)
	}
	ti, ok := s.byName[tgt]
	if !ok {
		return fmt.Errorf("%w: arrow %q: unknown tgt table %q", goacset.ErrInvalidSchema, name, tgt)
	}
	if err := s.addName(name); err != nil {
		return err
	}
	s.Arrows = append(s.Arrows, Arrow{Name: name, Src: si, Tgt: ti})
	s.order = nil
	return nil
}

func (s *Schema) AddAttr(name, src, dom string) error {
	si, ok := s.byName[src]
	if !ok {
		return fmt.Errorf("%w: attr %q: unknown src table %q", goacset.ErrInvalidSchema, name, src)
	}
	if dom == "" {
		return fmt.Errorf("%w: attr %q: empty domain", goacset.ErrInvalidSchema, name)
	}
	if err := s.addName(name); err != nil {
		return err
	}
	s.Attrs = append(s.Attrs, AttrArrow{Name: name, Src: si, Dom: dom})
	s.order = nil
	return nil
}

// TableIndex returns the index of the named table, or -1.
func (s *Schema) TableIndex(name string) int32 {
	if ti, ok := s.byName[name]; ok {
		return ti
	}
	return -1
}

// ArrowIndex returns the index of the named arrow, or -1.
func (s *Schema) ArrowIndex(name string) int32 {
	for ai, a := range s.Arrows {
		if a.Name == name {
			return int32(ai)
		}
	}
	return -1
}

// AttrIndex returns the index of the named attribute arrow, or -1.
func (s *Schema) AttrIndex(name string) int32 {
	for ai, a := range s.Attrs {
		if a.Name == name {
			return int32(ai)
		}
	}
	return -1
}

// IsPure returns true if this schema declares no attribute arrows.
func (s *Schema) IsPure() bool {
	return len(s.Attrs) == 0
}

// incoming returns the indices of arrows whose target is table ti,
// in schema order.
func (s *Schema) incoming(ti int32) []int32 {
	var in []int32
	for ai, a := range s.Arrows {
		if a.Tgt == ti {
			in = append(in, int32(ai))
		}
	}
	return in
}

// outgoing returns the indices of arrows whose source is table ti,
// in schema order.
func (s *Schema) outgoing(ti int32) []int32 {
	var out []int32
	for ai, a := range s.Arrows {
		if a.Src == ti {
			out = append(out, int32(ai))
		}
	}
	return out
}
