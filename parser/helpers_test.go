package parser

import (
	"io"
	"testing"

	"github.com/gongahkia/yuho-sub002/ast"
	"github.com/gongahkia/yuho-sub002/diagnostic"
	"github.com/gongahkia/yuho-sub002/source"
	"github.com/stretchr/testify/require"
)

type (
	DeclAssert    func(*testing.T, ast.Decl)
	ExprAssert    func(*testing.T, ast.Expr)
	TypeAssert    func(*testing.T, ast.Type)
	PatternAssert func(*testing.T, ast.Pattern)
	FieldAssert   func(*testing.T, *ast.Field)
	ArmAssert     func(*testing.T, *ast.CaseArm)
)

func testSession(files map[string]string) *Session {
	loader := source.NewMemLoader()
	for path, content := range files {
		loader.Add(path, content)
	}

	cm := source.NewCodeMap(loader)
	return NewSession(
		diagnostic.NewDiagnoser(cm, diagnostic.Writer(io.Discard, false, false)),
		cm,
	)
}

func parseTestFile(t *testing.T, src string, mode ParseMode) (*ast.Module, *Session) {
	t.Helper()
	sess := testSession(map[string]string{"test.yh": src})
	mod, err := ParseFile(sess, "test.yh", mode)
	require.NoError(t, err)
	require.NotNil(t, mod)
	return mod, sess
}

func parseTestExpr(t *testing.T, src string) ast.Expr {
	t.Helper()
	sess := testSession(map[string]string{"expr.yh": src})
	expr, err := ParseExpr(sess, "expr.yh")
	require.NoError(t, err)
	require.True(t, sess.IsOK(), "expected no diagnostics parsing %q", src)
	return expr
}

func Scope(name string, decls ...DeclAssert) DeclAssert {
	return func(t *testing.T, decl ast.Decl) {
		scope, ok := decl.(*ast.ScopeDecl)
		require.True(t, ok, "expected declaration to be a ScopeDecl, is %T", decl)
		require.Equal(t, name, scope.Name.Name)
		require.Len(t, scope.Decls, len(decls), "scope declarations")
		for i := range decls {
			decls[i](t, scope.Decls[i])
		}
	}
}

func Struct(name string, fields ...FieldAssert) DeclAssert {
	return func(t *testing.T, decl ast.Decl) {
		s, ok := decl.(*ast.StructDecl)
		require.True(t, ok, "expected declaration to be a StructDecl, is %T", decl)
		require.Equal(t, name, s.Name.Name)
		require.Len(t, s.Fields, len(fields), "struct fields")
		for i := range fields {
			fields[i](t, s.Fields[i])
		}
	}
}

func Field(typ TypeAssert, name string) FieldAssert {
	return func(t *testing.T, f *ast.Field) {
		typ(t, f.Type)
		require.Equal(t, name, f.Name.Name, "field name")
	}
}

func Enum(name string, variants ...string) DeclAssert {
	return func(t *testing.T, decl ast.Decl) {
		e, ok := decl.(*ast.EnumDecl)
		require.True(t, ok, "expected declaration to be an EnumDecl, is %T", decl)
		require.Equal(t, name, e.Name.Name)
		require.Len(t, e.Variants, len(variants), "enum variants")
		for i := range variants {
			require.Equal(t, variants[i], e.Variants[i].Name)
		}
	}
}

func Func(ret TypeAssert, name string, params []FieldAssert, body ...DeclAssert) DeclAssert {
	return func(t *testing.T, decl ast.Decl) {
		fn, ok := decl.(*ast.FuncDecl)
		require.True(t, ok, "expected declaration to be a FuncDecl, is %T", decl)
		require.Equal(t, name, fn.Name.Name)

		if ret == nil {
			require.Nil(t, fn.Return, "expected no return type")
		} else {
			ret(t, fn.Return)
		}

		require.Len(t, fn.Params, len(params), "function parameters")
		for i := range params {
			params[i](t, fn.Params[i])
		}

		require.Len(t, fn.Body, len(body), "function body")
		for i := range body {
			body[i](t, fn.Body[i])
		}
	}
}

func Variable(typ TypeAssert, name string, value ExprAssert) DeclAssert {
	return func(t *testing.T, decl ast.Decl) {
		v, ok := decl.(*ast.VariableDecl)
		require.True(t, ok, "expected declaration to be a VariableDecl, is %T", decl)
		require.Equal(t, name, v.Name.Name)
		typ(t, v.Type)

		if value == nil {
			require.Nil(t, v.Value, "expected no value")
		} else {
			require.NotNil(t, v.Value, "expected a value")
			value(t, v.Value)
		}
	}
}

func Stmt(expr ExprAssert) DeclAssert {
	return func(t *testing.T, decl ast.Decl) {
		s, ok := decl.(*ast.ExprStmt)
		require.True(t, ok, "expected declaration to be an ExprStmt, is %T", decl)
		expr(t, s.Expr)
	}
}

func BadDecl(t *testing.T, decl ast.Decl) {
	_, ok := decl.(*ast.BadDecl)
	require.True(t, ok, "expected declaration to be a BadDecl, is %T", decl)
}

func NamedType(name string) TypeAssert {
	return func(t *testing.T, typ ast.Type) {
		named, ok := typ.(*ast.NamedType)
		require.True(t, ok, "type is not a named type, is %T", typ)
		require.Equal(t, name, named.Name.Name, "type name")
	}
}

func UnionType(alts ...TypeAssert) TypeAssert {
	return func(t *testing.T, typ ast.Type) {
		union, ok := typ.(*ast.UnionType)
		require.True(t, ok, "type is not an union type, is %T", typ)
		require.Len(t, union.Types, len(alts), "union alternatives")
		for i := range alts {
			alts[i](t, union.Types[i])
		}
	}
}

func Identifier(name string) ExprAssert {
	return func(t *testing.T, expr ast.Expr) {
		ident, ok := expr.(*ast.Ident)
		require.True(t, ok, "expected expr to be Ident, is %T", expr)
		require.Equal(t, name, ident.Name)
	}
}

func Literal(kind ast.BasicLitType, val string) ExprAssert {
	return func(t *testing.T, expr ast.Expr) {
		lit, ok := expr.(*ast.BasicLit)
		require.True(t, ok, "expected expr to be BasicLit, is %T", expr)
		require.Equal(t, kind, lit.Type)
		require.Equal(t, val, lit.Value)
	}
}

func Pass(t *testing.T, expr ast.Expr) {
	_, ok := expr.(*ast.PassExpr)
	require.True(t, ok, "expected expr to be PassExpr, is %T", expr)
}

func BinaryOp(op string, lhs, rhs ExprAssert) ExprAssert {
	return func(t *testing.T, expr ast.Expr) {
		binary, ok := expr.(*ast.BinaryExpr)
		require.True(t, ok, "expected expr to be BinaryExpr, is %T", expr)
		require.Equal(t, op, binary.Op.Name, "op name")
		lhs(t, binary.Lhs)
		rhs(t, binary.Rhs)
	}
}

func UnaryOp(op string, operand ExprAssert) ExprAssert {
	return func(t *testing.T, expr ast.Expr) {
		unary, ok := expr.(*ast.UnaryExpr)
		require.True(t, ok, "expected expr to be UnaryExpr, is %T", expr)
		require.Equal(t, op, unary.Op.Name, "op name")
		operand(t, unary.Expr)
	}
}

func Parens(assert ExprAssert) ExprAssert {
	return func(t *testing.T, expr ast.Expr) {
		parens, ok := expr.(*ast.ParensExpr)
		require.True(t, ok, "expected expr to be ParensExpr, is %T", expr)
		assert(t, parens.Expr)
	}
}

func Call(fn ExprAssert, args ...ExprAssert) ExprAssert {
	return func(t *testing.T, expr ast.Expr) {
		call, ok := expr.(*ast.CallExpr)
		require.True(t, ok, "expected expr to be CallExpr, is %T", expr)
		fn(t, call.Func)
		require.Len(t, call.Args, len(args), "call arguments")
		for i := range args {
			args[i](t, call.Args[i])
		}
	}
}

func Selector(expr ExprAssert, field string) ExprAssert {
	return func(t *testing.T, e ast.Expr) {
		sel, ok := e.(*ast.SelectorExpr)
		require.True(t, ok, "expected expr to be SelectorExpr, is %T", e)
		expr(t, sel.Expr)
		require.Equal(t, field, sel.Selector.Name, "selector name")
	}
}

type fieldAssignAssert func(*testing.T, *ast.FieldAssign)

func StructLit(name string, fields ...fieldAssignAssert) ExprAssert {
	return func(t *testing.T, expr ast.Expr) {
		lit, ok := expr.(*ast.StructLit)
		require.True(t, ok, "expected expr to be StructLit, is %T", expr)
		require.Equal(t, name, lit.Name.Name)
		require.Len(t, lit.Fields, len(fields), "struct literal fields")
		for i := range fields {
			fields[i](t, lit.Fields[i])
		}
	}
}

func FieldAssign(name string, expr ExprAssert) fieldAssignAssert {
	return func(t *testing.T, f *ast.FieldAssign) {
		require.Equal(t, name, f.Field.Name, "field name")
		expr(t, f.Expr)
	}
}

func Match(scrutinee ExprAssert, arms ...ArmAssert) ExprAssert {
	return func(t *testing.T, expr ast.Expr) {
		m, ok := expr.(*ast.MatchExpr)
		require.True(t, ok, "expected expr to be MatchExpr, is %T", expr)

		if scrutinee == nil {
			require.Nil(t, m.Scrutinee, "expected no scrutinee")
		} else {
			require.NotNil(t, m.Scrutinee, "expected a scrutinee")
			scrutinee(t, m.Scrutinee)
		}

		require.Len(t, m.Arms, len(arms), "match arms")
		for i := range arms {
			arms[i](t, m.Arms[i])
		}
	}
}

func Arm(pattern PatternAssert, guard ExprAssert, expr ExprAssert) ArmAssert {
	return func(t *testing.T, arm *ast.CaseArm) {
		pattern(t, arm.Pattern)

		if guard == nil {
			require.Nil(t, arm.Guard, "expected no guard")
		} else {
			require.NotNil(t, arm.Guard, "expected a guard")
			guard(t, arm.Guard)
		}

		expr(t, arm.Expr)
	}
}

func VarPattern(name string) PatternAssert {
	return func(t *testing.T, pattern ast.Pattern) {
		v, ok := pattern.(*ast.VarPattern)
		require.True(t, ok, "expected a var pattern, is %T", pattern)
		require.Equal(t, name, v.Name.Name, "pattern name")
	}
}

func AnythingPattern(t *testing.T, pattern ast.Pattern) {
	_, ok := pattern.(*ast.AnythingPattern)
	require.True(t, ok, "expected an anything pattern, is %T", pattern)
}

func LiteralPattern(typ ast.BasicLitType, val string) PatternAssert {
	return func(t *testing.T, pattern ast.Pattern) {
		l, ok := pattern.(*ast.LiteralPattern)
		require.True(t, ok, "expected a literal pattern, is %T", pattern)
		require.Equal(t, typ, l.Literal.Type, "literal kind")
		require.Equal(t, val, l.Literal.Value, "literal value")
	}
}

func SelectorPattern(enum, variant string) PatternAssert {
	return func(t *testing.T, pattern ast.Pattern) {
		s, ok := pattern.(*ast.SelectorPattern)
		require.True(t, ok, "expected a selector pattern, is %T", pattern)
		require.Equal(t, enum, s.Enum.Name, "enum name")
		require.Equal(t, variant, s.Variant.Name, "variant name")
	}
}
