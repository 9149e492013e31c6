package ast

import (
	"testing"

	"github.com/gongahkia/yuho-sub002/token"
	"github.com/stretchr/testify/require"
)

func zeroPos() *token.Position {
	return &token.Position{Source: "test", Offset: 0, Line: 1, Column: 1}
}

func testIdent(name string) *Ident {
	return NewIdent(name, zeroPos())
}

func testModule() *Module {
	return &Module{
		Name: "cheating",
		Path: "cheating.yh",
		Imports: []*ReferencingDecl{
			{
				Symbols: []*Ident{testIdent("Party")},
				Module:  testIdent("definitions"),
			},
		},
		Decls: []Decl{
			&EnumDecl{
				Name:     testIdent("Verdict"),
				Variants: []*Ident{testIdent("Guilty"), testIdent("NotGuilty")},
			},
			&ScopeDecl{
				Name: testIdent("Cheating"),
				Decls: []Decl{
					&VariableDecl{
						Type:  &NamedType{Name: testIdent("int")},
						Name:  testIdent("x"),
						Value: &BasicLit{Position: &token.Position{}, Type: Int, Value: "42"},
					},
					&ExprStmt{
						Expr: &MatchExpr{
							Scrutinee: testIdent("verdict"),
							Arms: []*CaseArm{
								{
									Pattern: &VarPattern{Name: testIdent("Guilty")},
									Expr:    &BasicLit{Position: &token.Position{}, Type: String, Value: `"convicted"`},
								},
								{
									Pattern: &AnythingPattern{},
									Expr:    &PassExpr{},
								},
							},
						},
					},
				},
			},
		},
	}
}

func TestWalk(t *testing.T) {
	require := require.New(t)

	var idents, matches, arms, patterns int
	WalkFunc(testModule(), func(n Node) bool {
		switch n.(type) {
		case *Ident:
			idents++
		case *MatchExpr:
			matches++
		case *CaseArm:
			arms++
		case *VarPattern, *AnythingPattern:
			patterns++
		}
		return true
	})

	require.Equal(10, idents)
	require.Equal(1, matches)
	require.Equal(2, arms)
	require.Equal(2, patterns)
}

func TestWalkPrune(t *testing.T) {
	var arms int
	WalkFunc(testModule(), func(n Node) bool {
		switch n.(type) {
		case *MatchExpr:
			return false
		case *CaseArm:
			arms++
		}
		return true
	})

	require.Equal(t, 0, arms)
}
