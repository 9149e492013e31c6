package check

import (
	"github.com/gongahkia/yuho-sub002/ast"
	"github.com/gongahkia/yuho-sub002/diagnostic"
	"github.com/gongahkia/yuho-sub002/token"
	"github.com/gongahkia/yuho-sub002/types"
)

var invalid = types.Typ[types.Invalid]

// expr returns the type of an expression, diagnosing anything wrong
// with it. Subexpressions that are already invalid never produce a
// second diagnostic.
func (c *checker) expr(e ast.Expr) types.Type {
	switch e := e.(type) {
	case *ast.Ident:
		b, ok := c.env.lookup(e.Name)
		if !ok {
			c.error(e, diagnostic.UndefinedName(e.Name))
			return invalid
		}
		return c.bindingType(b)
	case *ast.BasicLit:
		return litType(e.Type)
	case *ast.ParensExpr:
		return c.expr(e.Expr)
	case *ast.PassExpr:
		// pass has no value of its own, it fits wherever it appears
		return invalid
	case *ast.UnaryExpr:
		return c.unary(e)
	case *ast.BinaryExpr:
		return c.binary(e)
	case *ast.SelectorExpr:
		return c.selector(e)
	case *ast.CallExpr:
		return c.call(e)
	case *ast.StructLit:
		return c.structLit(e)
	case *ast.MatchExpr:
		return c.match(e)
	}

	return invalid
}

func litType(t ast.BasicLitType) types.Type {
	switch t {
	case ast.Int:
		return types.Typ[types.Int]
	case ast.Float:
		return types.Typ[types.Float]
	case ast.String:
		return types.Typ[types.String]
	case ast.Bool:
		return types.Typ[types.Bool]
	case ast.Money:
		return types.Typ[types.Money]
	case ast.Percent:
		return types.Typ[types.Percent]
	case ast.Date:
		return types.Typ[types.Date]
	case ast.Duration:
		return types.Typ[types.Duration]
	}
	return invalid
}

func (c *checker) unary(e *ast.UnaryExpr) types.Type {
	t := c.expr(e.Expr)
	if types.IsInvalid(t) {
		return invalid
	}

	switch e.Op.Name {
	case "!":
		if !types.IsBasic(t, types.Bool) {
			c.error(e, diagnostic.InvalidOperand("!", t.String()))
			return invalid
		}
		return types.Typ[types.Bool]
	case "-":
		if !types.IsNumeric(t) {
			c.error(e, diagnostic.InvalidOperand("-", t.String()))
			return invalid
		}
		return t
	}

	return invalid
}

func (c *checker) binary(e *ast.BinaryExpr) types.Type {
	lhs := c.expr(e.Lhs)
	rhs := c.expr(e.Rhs)
	if types.IsInvalid(lhs) || types.IsInvalid(rhs) {
		return invalid
	}

	result := binaryResult(e.Op.Name, lhs, rhs)
	if result == nil {
		c.error(e, diagnostic.InvalidOperands(e.Op.Name, lhs.String(), rhs.String()))
		return invalid
	}
	return result
}

func (c *checker) selector(e *ast.SelectorExpr) types.Type {
	// Enum.Variant comes first, the enum name is not a value
	if id, ok := e.Expr.(*ast.Ident); ok {
		if b, ok := c.env.lookup(id.Name); ok && b.isType() {
			if enum, ok := c.bindingType(b).(*types.Enum); ok {
				if !enum.HasVariant(e.Selector.Name) {
					c.error(e.Selector, diagnostic.UnknownField(enum.Name, e.Selector.Name))
					return invalid
				}
				return enum
			}
		}
	}

	t := c.expr(e.Expr)
	if types.IsInvalid(t) {
		return invalid
	}

	s, ok := t.(*types.Struct)
	if !ok {
		c.error(e, diagnostic.NotAStruct(t.String()))
		return invalid
	}

	field := s.Field(e.Selector.Name)
	if field == nil {
		c.error(e.Selector, diagnostic.UnknownField(s.Name, e.Selector.Name))
		return invalid
	}
	return field.Type
}

func (c *checker) call(e *ast.CallExpr) types.Type {
	ft := c.expr(e.Func)
	args := make([]types.Type, len(e.Args))
	for i, arg := range e.Args {
		args[i] = c.expr(arg)
	}

	if types.IsInvalid(ft) {
		return invalid
	}

	fn, ok := ft.(*types.Func)
	if !ok {
		c.error(e.Func, diagnostic.NotCallable(exprName(e.Func)))
		return invalid
	}

	if len(args) != len(fn.Params) {
		c.error(e, diagnostic.WrongArgCount(fn.Name, len(fn.Params), len(args)))
	} else {
		for i := range args {
			if !types.AssignableTo(args[i], fn.Params[i]) {
				c.error(e.Args[i], diagnostic.TypeMismatch(fn.Params[i].String(), args[i].String()))
			}
		}
	}

	if fn.Return == nil {
		return invalid
	}
	return fn.Return
}

func (c *checker) structLit(lit *ast.StructLit) types.Type {
	b, ok := c.env.lookup(lit.Name.Name)
	if !ok {
		c.error(lit.Name, diagnostic.UndefinedName(lit.Name.Name))
		return invalid
	}

	s, isStruct := c.bindingType(b).(*types.Struct)
	if !isStruct || !b.isType() {
		c.error(lit.Name, diagnostic.NotAStruct(lit.Name.Name))
		return invalid
	}

	seen := make(map[string]*token.Position)
	for _, f := range lit.Fields {
		value := c.expr(f.Expr)

		if prev, ok := seen[f.Field.Name]; ok {
			c.error(f.Field, diagnostic.DuplicateDeclaration(f.Field.Name, prev))
			continue
		}
		seen[f.Field.Name] = f.Field.NamePos

		field := s.Field(f.Field.Name)
		if field == nil {
			c.error(f.Field, diagnostic.UnknownField(s.Name, f.Field.Name))
			continue
		}

		if !types.AssignableTo(value, field.Type) {
			c.error(f.Expr, diagnostic.TypeMismatch(field.Type.String(), value.String()))
		}
	}

	var missing []string
	for _, field := range s.Fields {
		if _, ok := seen[field.Name]; !ok {
			missing = append(missing, field.Name)
		}
	}
	if len(missing) > 0 {
		c.error(lit, diagnostic.MissingFields(s.Name, missing))
	}

	return s
}

func exprName(e ast.Expr) string {
	switch e := e.(type) {
	case *ast.Ident:
		return e.Name
	case *ast.SelectorExpr:
		return e.Selector.Name
	case *ast.ParensExpr:
		return exprName(e.Expr)
	}
	return "this"
}
