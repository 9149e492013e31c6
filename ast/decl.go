package ast

import "github.com/gongahkia/yuho-sub002/token"

// Decl is a declaration node. Scope blocks and function bodies contain
// declarations, so statement-position expressions are declarations too.
type Decl interface {
	Node
	isDecl()
}

// ReferencingDecl is a node representing a "referencing ... from ..."
// import declaration. It contains the symbols being imported and the
// module they come from.
type ReferencingDecl struct {
	// Referencing is the position of the "referencing" keyword.
	Referencing token.Pos
	// Symbols is the list of imported symbols.
	Symbols []*Ident
	// Module the symbols are imported from.
	Module *Ident
}

func (*ReferencingDecl) isDecl()          {}
func (d *ReferencingDecl) Pos() token.Pos { return d.Referencing }
func (d *ReferencingDecl) End() token.Pos { return d.Module.End() }

// ScopeDecl is a node representing a "scope" block, which groups a set
// of declarations under a name.
type ScopeDecl struct {
	// ScopePos is the position of the "scope" keyword.
	ScopePos token.Pos
	// Name of the scope.
	Name *Ident
	// Lbrace is the position of the opening brace.
	Lbrace token.Pos
	// Rbrace is the position of the closing brace.
	Rbrace token.Pos
	// Decls is the list of declarations inside the scope.
	Decls []Decl
}

func (*ScopeDecl) isDecl()          {}
func (d *ScopeDecl) Pos() token.Pos { return d.ScopePos }
func (d *ScopeDecl) End() token.Pos { return d.Rbrace + 1 }

// StructDecl is a node representing a struct definition.
type StructDecl struct {
	// StructPos is the position of the "struct" keyword.
	StructPos token.Pos
	// Name of the struct.
	Name *Ident
	// Lbrace is the position of the opening brace.
	Lbrace token.Pos
	// Rbrace is the position of the closing brace.
	Rbrace token.Pos
	// Fields of the struct.
	Fields []*Field
}

func (*StructDecl) isDecl()          {}
func (d *StructDecl) Pos() token.Pos { return d.StructPos }
func (d *StructDecl) End() token.Pos { return d.Rbrace + 1 }

// Field is a typed name. Structs use it for their fields and functions
// for their parameters.
type Field struct {
	// Type of the field.
	Type Type
	// Name of the field.
	Name *Ident
}

func (f *Field) Pos() token.Pos { return f.Type.Pos() }
func (f *Field) End() token.Pos { return f.Name.End() }

// EnumDecl is a node representing an enum definition with its variants.
type EnumDecl struct {
	// EnumPos is the position of the "enum" keyword.
	EnumPos token.Pos
	// Name of the enum.
	Name *Ident
	// Lbrace is the position of the opening brace.
	Lbrace token.Pos
	// Rbrace is the position of the closing brace.
	Rbrace token.Pos
	// Variants of the enum.
	Variants []*Ident
}

func (*EnumDecl) isDecl()          {}
func (d *EnumDecl) Pos() token.Pos { return d.EnumPos }
func (d *EnumDecl) End() token.Pos { return d.Rbrace + 1 }

// FuncDecl is a node representing a function declaration. The return
// type precedes the "func" keyword and may be absent, in which case the
// function returns nothing.
type FuncDecl struct {
	// Return is the optional return type of the function.
	Return Type
	// FuncPos is the position of the "func" keyword.
	FuncPos token.Pos
	// Name of the function.
	Name *Ident
	// Params is the list of parameters of the function.
	Params []*Field
	// Lbrace is the position of the opening brace of the body.
	Lbrace token.Pos
	// Rbrace is the position of the closing brace of the body.
	Rbrace token.Pos
	// Body is the list of statements of the function.
	Body []Decl
}

func (*FuncDecl) isDecl() {}
func (d *FuncDecl) Pos() token.Pos {
	if d.Return != nil {
		return d.Return.Pos()
	}
	return d.FuncPos
}
func (d *FuncDecl) End() token.Pos { return d.Rbrace + 1 }

// VariableDecl is a node representing a typed variable declaration with
// an optional initial value, e.g. `int x := 42;`.
type VariableDecl struct {
	// Type of the variable.
	Type Type
	// Name of the variable.
	Name *Ident
	// Assign is the position of the ":=" token, or NoPos if the
	// declaration has no value.
	Assign token.Pos
	// Value is the initial value, if any.
	Value Expr
}

func (*VariableDecl) isDecl()          {}
func (d *VariableDecl) Pos() token.Pos { return d.Type.Pos() }
func (d *VariableDecl) End() token.Pos {
	if d.Value != nil {
		return d.Value.End()
	}
	return d.Name.End()
}

// ExprStmt is an expression in statement position, e.g. a match
// expression standing on its own inside a scope or function body.
type ExprStmt struct {
	// Expr is the expression.
	Expr Expr
}

func (*ExprStmt) isDecl()          {}
func (d *ExprStmt) Pos() token.Pos { return d.Expr.Pos() }
func (d *ExprStmt) End() token.Pos { return d.Expr.End() }

// BadDecl is a placeholder for a declaration that could not be parsed.
// It is only produced when the parser runs in recovery mode.
type BadDecl struct {
	// StartPos is the position of the first token of the declaration.
	StartPos token.Pos
	// EndPos is the position where the parser gave up.
	EndPos token.Pos
}

func (*BadDecl) isDecl()          {}
func (d *BadDecl) Pos() token.Pos { return d.StartPos }
func (d *BadDecl) End() token.Pos { return d.EndPos }
