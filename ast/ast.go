package ast

import "github.com/gongahkia/yuho-sub002/token"

// Node is a node of the AST.
type Node interface {
	// Pos is the starting position of the node.
	Pos() token.Pos
	// End is the position of the first character after the node.
	End() token.Pos
}

// Module is the root node of a parsed ".yh" file.
type Module struct {
	// Name of the module, which is the file name without its extension.
	Name string
	// Path is the location of the file the module was parsed from.
	Path string
	// Imports is the list of "referencing" declarations of the module.
	Imports []*ReferencingDecl
	// Decls is the list of declarations of the module, in source order.
	Decls []Decl
}

func (m *Module) Pos() token.Pos {
	if len(m.Imports) > 0 {
		return m.Imports[0].Pos()
	}
	if len(m.Decls) > 0 {
		return m.Decls[0].Pos()
	}
	return token.NoPos
}

func (m *Module) End() token.Pos {
	if len(m.Decls) > 0 {
		return m.Decls[len(m.Decls)-1].End()
	}
	if len(m.Imports) > 0 {
		return m.Imports[len(m.Imports)-1].End()
	}
	return token.NoPos
}
