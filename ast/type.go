package ast

import "github.com/gongahkia/yuho-sub002/token"

// Type is a node representing a type.
type Type interface {
	Node
	isType()
}

// NamedType is a type with a name, either one of the builtin types or a
// user defined struct or enum.
type NamedType struct {
	// Name of the type.
	Name *Ident
}

func (*NamedType) isType()          {}
func (t *NamedType) Pos() token.Pos { return t.Name.Pos() }
func (t *NamedType) End() token.Pos { return t.Name.End() }

// UnionType is a type formed by two or more alternatives separated by
// pipes, e.g. `bool | string`.
type UnionType struct {
	// Types is the list of alternatives, in source order.
	Types []Type
}

func (*UnionType) isType()          {}
func (t *UnionType) Pos() token.Pos { return t.Types[0].Pos() }
func (t *UnionType) End() token.Pos { return t.Types[len(t.Types)-1].End() }
