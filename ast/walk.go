package ast

import "fmt"

// Visitor is used to traverse an AST. Its method Visit will be invoked with
// every single node to visit during the traversal.
type Visitor interface {
	// Visit will be invoked with the node being visited. If it receives a
	// non-nil node and returns nil, the children of that node will not be
	// visited.
	// If it's called with a nil node, it means all children of a node have
	// been visited.
	Visit(Node) Visitor
}

func walkDecls(v Visitor, decls []Decl) {
	for _, d := range decls {
		Walk(v, d)
	}
}

func walkIdents(v Visitor, idents []*Ident) {
	for _, i := range idents {
		Walk(v, i)
	}
}

// Walk traverses an AST with the given node as a starting point in
// depth-first order. The first thing it will do is v.Visit(node) and, if
// the result is not nil, it will continue walking every non-nil child.
// After all the children have been visited, v.Visit(nil) will be
// performed so the visitor knows that all children have been visited.
func Walk(v Visitor, node Node) {
	if v = v.Visit(node); v == nil {
		return
	}

	switch node := node.(type) {
	case *Module:
		for _, i := range node.Imports {
			Walk(v, i)
		}

		walkDecls(v, node.Decls)

	// Decls
	case *ReferencingDecl:
		walkIdents(v, node.Symbols)
		Walk(v, node.Module)

	case *ScopeDecl:
		Walk(v, node.Name)
		walkDecls(v, node.Decls)

	case *StructDecl:
		Walk(v, node.Name)
		for _, f := range node.Fields {
			Walk(v, f)
		}

	case *Field:
		Walk(v, node.Type)
		Walk(v, node.Name)

	case *EnumDecl:
		Walk(v, node.Name)
		walkIdents(v, node.Variants)

	case *FuncDecl:
		if node.Return != nil {
			Walk(v, node.Return)
		}

		Walk(v, node.Name)
		for _, p := range node.Params {
			Walk(v, p)
		}

		walkDecls(v, node.Body)

	case *VariableDecl:
		Walk(v, node.Type)
		Walk(v, node.Name)
		if node.Value != nil {
			Walk(v, node.Value)
		}

	case *ExprStmt:
		Walk(v, node.Expr)

	case *BadDecl:
		// nothing to do

	// Types
	case *NamedType:
		Walk(v, node.Name)

	case *UnionType:
		for _, t := range node.Types {
			Walk(v, t)
		}

	// Patterns
	case *VarPattern:
		Walk(v, node.Name)

	case *AnythingPattern:
		// nothing to do

	case *LiteralPattern:
		Walk(v, node.Literal)

	case *SelectorPattern:
		Walk(v, node.Enum)
		Walk(v, node.Variant)

	// Exprs
	case *Ident, *BasicLit, *PassExpr, *BadExpr:
		// nothing to do

	case *SelectorExpr:
		Walk(v, node.Expr)
		Walk(v, node.Selector)

	case *UnaryExpr:
		Walk(v, node.Op)
		Walk(v, node.Expr)

	case *BinaryExpr:
		Walk(v, node.Op)
		Walk(v, node.Lhs)
		Walk(v, node.Rhs)

	case *CallExpr:
		Walk(v, node.Func)
		for _, a := range node.Args {
			Walk(v, a)
		}

	case *StructLit:
		Walk(v, node.Name)
		for _, f := range node.Fields {
			Walk(v, f)
		}

	case *FieldAssign:
		Walk(v, node.Field)
		Walk(v, node.Expr)

	case *MatchExpr:
		if node.Scrutinee != nil {
			Walk(v, node.Scrutinee)
		}

		for _, a := range node.Arms {
			Walk(v, a)
		}

	case *CaseArm:
		Walk(v, node.Pattern)
		if node.Guard != nil {
			Walk(v, node.Guard)
		}

		Walk(v, node.Expr)

	case *ParensExpr:
		Walk(v, node.Expr)

	default:
		panic(fmt.Errorf("walk: unable to walk node of type %T", node))
	}

	v.Visit(nil)
}

type inspector func(Node) bool

func (i inspector) Visit(node Node) Visitor {
	if i(node) {
		return i
	}
	return nil
}

// WalkFunc traverses the AST in depth-first order. It works exactly the same
// way Walk does, only it uses a function to walk the AST instead of a Visitor.
func WalkFunc(node Node, fn func(Node) bool) {
	Walk(inspector(fn), node)
}
