package libacset

import (
	"fmt"

	"github.com/alecthomas/participle/v2"

	"github.com/acset-systems/goacset/goacset"
)

// The acset expression language declares schemas and instances in text:
//
//	schema Gr {
//	    table V
//	    table E
//	    arrow src : E -> V
//	    arrow tgt : E -> V
//	    attr  dec : E -> Label
//	}
//
//	acset C4 : Gr {
//	    V = 4
//	    E = 4
//	    src = [1 2 3 4]
//	    tgt = [2 3 4 1]
//	    dec = ["a" "b" "c" "d"]
//	}

type Document struct {
	Decls []*Decl `@@*`
}

type Decl struct {
	Schema *SchemaDecl `"schema" @@`
	Acset  *AcsetDecl  `| "acset" @@`
}

type SchemaDecl struct {
	Name  string        `@Ident`
	Items []*SchemaItem `"{" @@* "}"`
}

type SchemaItem struct {
	Table string     `"table" @Ident`
	Arrow *ArrowDecl `| "arrow" @@`
	Attr  *ArrowDecl `| "attr" @@`
}

type ArrowDecl struct {
	Name string `@Ident ":"`
	Src  string `@Ident "-" ">"`
	Tgt  string `@Ident`
}

type AcsetDecl struct {
	Name   string       `@Ident ":"`
	Schema string       `@Ident`
	Items  []*AcsetItem `"{" @@* "}"`
}

type AcsetItem struct {
	Name string   `@Ident "="`
	Size *int64   `( @Int`
	List *ValList `| "[" @@ "]" )`
}

type ValList struct {
	Ints []int64  `( @Int+`
	Strs []string `| @String+ )?`
}

var parseDocument = participle.MustBuild[Document](participle.Unquote("String"))

// ParseDocument parses an acset expression document into schemas and
// instances.  Instances are returned keyed by their declared name.
func ParseDocument(src string) (map[string]*Schema, map[string]*ACSet, error) {
	doc, err := parseDocument.ParseString("", src)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", goacset.ErrBadExpr, err)
	}

	schemas := make(map[string]*Schema)
	acsets := make(map[string]*ACSet)

	for _, decl := range doc.Decls {
		switch {
		case decl.Schema != nil:
			s, err := buildSchema(decl.Schema)
			if err != nil {
				return nil, nil, err
			}
			if _, dup := schemas[decl.Schema.Name]; dup {
				return nil, nil, fmt.Errorf("%w: duplicate schema %q", goacset.ErrBadExpr, decl.Schema.Name)
			}
			schemas[decl.Schema.Name] = s

		case decl.Acset != nil:
			s, ok := schemas[decl.Acset.Schema]
			if !ok {
				return nil, nil, fmt.Errorf("%w: acset %q references unknown schema %q",
					goacset.ErrBadExpr, decl.Acset.Name, decl.Acset.Schema)
			}
			g, err := buildACSet(s, decl.Acset)
			if err != nil {
				return nil, nil, err
			}
			if _, dup := acsets[decl.Acset.Name]; dup {
				return nil, nil, fmt.Errorf("%w: duplicate acset %q", goacset.ErrBadExpr, decl.Acset.Name)
			}
			acsets[decl.Acset.Name] = g
		}
	}

	return schemas, acsets, nil
}

func buildSchema(decl *SchemaDecl) (*Schema, error) {
	s := NewSchema()
	for _, item := range decl.Items {
		var err error
		switch {
		case item.Table != "":
			err = s.AddTable(item.Table)
		case item.Arrow != nil:
			err = s.AddArrow(item.Arrow.Name, item.Arrow.Src, item.Arrow.Tgt)
		case item.Attr != nil:
			err = s.AddAttr(item.Attr.Name, item.Attr.Src, item.Attr.Tgt)
		}
		if err != nil {
			return nil, err
		}
	}
	return s, nil
}

func buildACSet(s *Schema, decl *AcsetDecl) (*ACSet, error) {
	g := NewACSet(s)
	for _, item := range decl.Items {
		switch {
		case s.TableIndex(item.Name) >= 0:
			if item.Size == nil {
				return nil, fmt.Errorf("%w: table %q expects a size", goacset.ErrBadExpr, item.Name)
			}
			if err := g.SetSize(item.Name, int(*item.Size)); err != nil {
				return nil, err
			}

		case s.ArrowIndex(item.Name) >= 0:
			if item.List == nil || len(item.List.Strs) > 0 {
				return nil, fmt.Errorf("%w: arrow %q expects an int list", goacset.ErrBadExpr, item.Name)
			}
			img := make([]int, len(item.List.Ints))
			for i, v := range item.List.Ints {
				img[i] = int(v)
			}
			if err := g.SetImg(item.Name, img...); err != nil {
				return nil, err
			}

		case s.AttrIndex(item.Name) >= 0:
			if item.List == nil {
				return nil, fmt.Errorf("%w: attr %q expects a value list", goacset.ErrBadExpr, item.Name)
			}
			var vals []goacset.AttrVal
			for _, v := range item.List.Strs {
				vals = append(vals, goacset.StrVal(v))
			}
			for _, v := range item.List.Ints {
				vals = append(vals, goacset.IntVal(v))
			}
			if err := g.SetAttrs(item.Name, vals...); err != nil {
				return nil, err
			}

		default:
			return nil, fmt.Errorf("%w: %q names no table, arrow or attr of schema %q",
				goacset.ErrBadExpr, item.Name, decl.Schema)
		}
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}
