package ast

import "github.com/gongahkia/yuho-sub002/token"

// Pattern is a node representing a pattern in a case arm.
type Pattern interface {
	Node
	isPattern()
}

// VarPattern is a pattern matching against a name. The name refers to
// an enum variant if one is in scope, otherwise it binds the value.
type VarPattern struct {
	// Name of the pattern.
	Name *Ident
}

func (*VarPattern) isPattern()       {}
func (p *VarPattern) Pos() token.Pos { return p.Name.Pos() }
func (p *VarPattern) End() token.Pos { return p.Name.End() }

// AnythingPattern is the wildcard pattern "_", which matches anything
// without binding it.
type AnythingPattern struct {
	// Underscore is the position of the "_" token.
	Underscore token.Pos
}

func (*AnythingPattern) isPattern()       {}
func (p *AnythingPattern) Pos() token.Pos { return p.Underscore }
func (p *AnythingPattern) End() token.Pos { return p.Underscore + 1 }

// LiteralPattern is a pattern matching against a literal value.
type LiteralPattern struct {
	// Literal to match against.
	Literal *BasicLit
}

func (*LiteralPattern) isPattern()       {}
func (p *LiteralPattern) Pos() token.Pos { return p.Literal.Pos() }
func (p *LiteralPattern) End() token.Pos { return p.Literal.End() }

// SelectorPattern is a pattern matching against a qualified enum
// variant, e.g. `Verdict.Guilty`.
type SelectorPattern struct {
	// Enum is the name of the enum type.
	Enum *Ident
	// Variant is the name of the variant.
	Variant *Ident
}

func (*SelectorPattern) isPattern()       {}
func (p *SelectorPattern) Pos() token.Pos { return p.Enum.Pos() }
func (p *SelectorPattern) End() token.Pos { return p.Variant.End() }
