package ast

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrintModule(t *testing.T) {
	expected := `referencing Party from definitions;
enum Verdict {
	Guilty,
	NotGuilty
}
scope Cheating {
	int x := 42;
	match verdict {
		case Guilty := consequence "convicted";
		case _ := consequence pass;
	}
}
`

	require.Equal(t, expected, Print(testModule()))
}

func TestPrintExprs(t *testing.T) {
	cases := []struct {
		expr     Expr
		expected string
	}{
		{
			&BinaryExpr{
				Op:  testIdent("+"),
				Lhs: &BasicLit{Position: zeroPos(), Type: Int, Value: "1"},
				Rhs: &UnaryExpr{Op: testIdent("-"), Expr: testIdent("x")},
			},
			"1 + -x",
		},
		{
			&CallExpr{
				Func: testIdent("fine"),
				Args: []Expr{
					&SelectorExpr{Expr: testIdent("accused"), Selector: testIdent("age")},
					&BasicLit{Position: zeroPos(), Type: Money, Value: "$1,000.50"},
				},
			},
			"fine(accused.age, $1,000.50)",
		},
		{
			&StructLit{
				Name: testIdent("Party"),
				Fields: []*FieldAssign{
					{Field: testIdent("name"), Expr: &BasicLit{Position: zeroPos(), Type: String, Value: `"Tom"`}},
				},
			},
			`Party { name := "Tom" }`,
		},
		{
			&ParensExpr{Expr: &BinaryExpr{
				Op:  testIdent("||"),
				Lhs: testIdent("a"),
				Rhs: testIdent("b"),
			}},
			"(a || b)",
		},
	}

	for _, c := range cases {
		require.Equal(t, c.expected, Print(c.expr), c.expected)
	}
}

func TestPrintFuncDecl(t *testing.T) {
	fn := &FuncDecl{
		Return: &UnionType{Types: []Type{
			&NamedType{Name: testIdent("bool")},
			&NamedType{Name: testIdent("string")},
		}},
		Name: testIdent("verdict"),
		Params: []*Field{
			{Type: &NamedType{Name: testIdent("Party")}, Name: testIdent("accused")},
		},
		Body: []Decl{
			&VariableDecl{
				Type: &NamedType{Name: testIdent("bool")},
				Name: testIdent("guilty"),
			},
		},
	}

	expected := `bool | string func verdict(Party accused) {
	bool guilty;
}
`
	require.Equal(t, expected, Print(fn))
}
