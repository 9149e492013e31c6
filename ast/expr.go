package ast

import (
	"unicode/utf8"

	"github.com/gongahkia/yuho-sub002/token"
)

// Expr is an expression node.
type Expr interface {
	Node
	isExpr()
}

// Ident represents an identifier, which is a name for something.
type Ident struct {
	NamePos *token.Position
	Name    string
}

func NewIdent(name string, pos *token.Position) *Ident {
	return &Ident{pos, name}
}

func (i *Ident) Pos() token.Pos { return i.NamePos.Offset }
func (i *Ident) End() token.Pos { return i.Pos() + token.Pos(utf8.RuneCountInString(i.Name)) }
func (*Ident) isExpr()          {}
func (i *Ident) String() string { return i.Name }

// BasicLit represents a basic literal.
type BasicLit struct {
	Position *token.Position
	Type     BasicLitType
	Value    string
}

func (b *BasicLit) Pos() token.Pos { return b.Position.Offset }
func (b *BasicLit) End() token.Pos { return b.Pos() + token.Pos(utf8.RuneCountInString(b.Value)) }
func (*BasicLit) isExpr()          {}

// BasicLitType is the type of a literal.
type BasicLitType byte

const (
	// Error is an invalid literal.
	Error BasicLitType = iota
	// Int is an integer literal.
	Int
	// Float is a floating point number literal.
	Float
	// String is a string literal.
	String
	// Bool is a boolean literal.
	Bool
	// Money is a money literal.
	Money
	// Percent is a percentage literal.
	Percent
	// Date is a date literal.
	Date
	// Duration is a duration literal.
	Duration
)

func (t BasicLitType) String() string {
	switch t {
	case Int:
		return "int"
	case Float:
		return "float"
	case String:
		return "string"
	case Bool:
		return "bool"
	case Money:
		return "money"
	case Percent:
		return "percent"
	case Date:
		return "date"
	case Duration:
		return "duration"
	default:
		return "error"
	}
}

// SelectorExpr represents a field access, e.g. `accused.age` or an enum
// variant reference `Verdict.Guilty`.
type SelectorExpr struct {
	// Expr is the expression being accessed.
	Expr Expr
	// Selector is the name of the field or variant.
	Selector *Ident
}

func (e *SelectorExpr) Pos() token.Pos { return e.Expr.Pos() }
func (e *SelectorExpr) End() token.Pos { return e.Selector.End() }
func (*SelectorExpr) isExpr()          {}

// UnaryExpr represents a prefix operator applied to an expression.
type UnaryExpr struct {
	// Op is the operator.
	Op *Ident
	// Expr the operator is applied to.
	Expr Expr
}

func (e *UnaryExpr) Pos() token.Pos { return e.Op.Pos() }
func (e *UnaryExpr) End() token.Pos { return e.Expr.End() }
func (*UnaryExpr) isExpr()          {}

// BinaryExpr represents an infix operator applied to two expressions.
type BinaryExpr struct {
	// Op is the operator.
	Op *Ident
	// Lhs is the expression at the left side of the operator.
	Lhs Expr
	// Rhs is the expression at the right side of the operator.
	Rhs Expr
}

func (e *BinaryExpr) Pos() token.Pos { return e.Lhs.Pos() }
func (e *BinaryExpr) End() token.Pos { return e.Rhs.End() }
func (*BinaryExpr) isExpr()          {}

// CallExpr represents a function call.
type CallExpr struct {
	// Func is the function being called.
	Func Expr
	// Lparen is the position of the opening parenthesis.
	Lparen token.Pos
	// Rparen is the position of the closing parenthesis.
	Rparen token.Pos
	// Args is the list of call arguments.
	Args []Expr
}

func (e *CallExpr) Pos() token.Pos { return e.Func.Pos() }
func (e *CallExpr) End() token.Pos { return e.Rparen + 1 }
func (*CallExpr) isExpr()          {}

// StructLit represents a struct literal, e.g. `Party { name := "x" }`.
type StructLit struct {
	// Name of the struct type.
	Name *Ident
	// Lbrace is the position of the opening brace.
	Lbrace token.Pos
	// Rbrace is the position of the closing brace.
	Rbrace token.Pos
	// Fields is the list of field assignments.
	Fields []*FieldAssign
}

func (e *StructLit) Pos() token.Pos { return e.Name.Pos() }
func (e *StructLit) End() token.Pos { return e.Rbrace + 1 }
func (*StructLit) isExpr()          {}

// FieldAssign gives a value to a field in a struct literal.
type FieldAssign struct {
	// Field being assigned.
	Field *Ident
	// Assign is the position of the ":=" token.
	Assign token.Pos
	// Expr is the value given to the field.
	Expr Expr
}

func (n *FieldAssign) Pos() token.Pos { return n.Field.Pos() }
func (n *FieldAssign) End() token.Pos { return n.Expr.End() }

// MatchExpr represents a match expression with its case arms. The
// scrutinee is optional: a match without one is a chain of guarded
// cases, like a cond.
type MatchExpr struct {
	// MatchPos is the position of the "match" keyword.
	MatchPos token.Pos
	// Scrutinee is the expression being matched, if any.
	Scrutinee Expr
	// Lbrace is the position of the opening brace.
	Lbrace token.Pos
	// Rbrace is the position of the closing brace.
	Rbrace token.Pos
	// Arms is the list of case arms.
	Arms []*CaseArm
}

func (e *MatchExpr) Pos() token.Pos { return e.MatchPos }
func (e *MatchExpr) End() token.Pos { return e.Rbrace + 1 }
func (*MatchExpr) isExpr()          {}

// CaseArm is one arm of a match expression.
type CaseArm struct {
	// CasePos is the position of the "case" keyword.
	CasePos token.Pos
	// Pattern of the arm.
	Pattern Pattern
	// Guard is the optional "where" condition.
	Guard Expr
	// Consequence is the position of the "consequence" keyword.
	Consequence token.Pos
	// Expr is the result of the arm.
	Expr Expr
}

func (a *CaseArm) Pos() token.Pos { return a.CasePos }
func (a *CaseArm) End() token.Pos { return a.Expr.End() }

// PassExpr is the "pass" literal, the explicit no-consequence value.
type PassExpr struct {
	// PassPos is the position of the "pass" keyword.
	PassPos token.Pos
}

func (e *PassExpr) Pos() token.Pos { return e.PassPos }
func (e *PassExpr) End() token.Pos { return e.PassPos + 4 }
func (*PassExpr) isExpr()          {}

// ParensExpr is an expression between parenthesis.
type ParensExpr struct {
	// Lparen is the position of the opening parenthesis.
	Lparen token.Pos
	// Rparen is the position of the closing parenthesis.
	Rparen token.Pos
	// Expr between the parenthesis.
	Expr Expr
}

func (e *ParensExpr) Pos() token.Pos { return e.Lparen }
func (e *ParensExpr) End() token.Pos { return e.Rparen + 1 }
func (*ParensExpr) isExpr()          {}

// BadExpr is a placeholder for an expression that could not be parsed.
// It is only produced when the parser runs in recovery mode.
type BadExpr struct {
	// StartPos is the position of the first token of the expression.
	StartPos token.Pos
	// EndPos is the position where the parser gave up.
	EndPos token.Pos
}

func (e *BadExpr) Pos() token.Pos { return e.StartPos }
func (e *BadExpr) End() token.Pos { return e.EndPos }
func (*BadExpr) isExpr()          {}
