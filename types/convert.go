package types

import "github.com/gongahkia/yuho-sub002/ast"

var basicNames = map[string]BasicKind{
	"int":      Int,
	"float":    Float,
	"bool":     Bool,
	"string":   String,
	"money":    Money,
	"date":     Date,
	"duration": Duration,
	"percent":  Percent,
}

// Convert turns a type annotation into a semantic type. Names that are
// not built in are resolved through lookup, which returns nil for
// names it does not know, turning the annotation invalid.
func Convert(t ast.Type, lookup func(string) Type) Type {
	switch t := t.(type) {
	case *ast.NamedType:
		if kind, ok := basicNames[t.Name.Name]; ok {
			return Typ[kind]
		}

		if typ := lookup(t.Name.Name); typ != nil {
			return typ
		}
		return Typ[Invalid]
	case *ast.UnionType:
		alts := make([]Type, len(t.Types))
		for i, alt := range t.Types {
			alts[i] = Convert(alt, lookup)
		}
		return NewUnion(alts...)
	}

	return Typ[Invalid]
}
