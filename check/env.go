package check

import (
	"github.com/gongahkia/yuho-sub002/ast"
	"github.com/gongahkia/yuho-sub002/token"
	"github.com/gongahkia/yuho-sub002/types"
)

// binding is a name declared somewhere: a type, a function, a variable,
// a function parameter or a pattern variable.
type binding struct {
	name string
	pos  *token.Position
	// decl is nil for parameters and pattern variables, whose type is
	// known at declaration.
	decl ast.Decl
	// env the binding was declared in, so its type annotation resolves
	// against the right scope no matter where resolution is triggered
	// from.
	env *env

	typ       types.Type
	resolving bool
}

// isType reports whether the binding names a type rather than a value.
func (b *binding) isType() bool {
	switch b.decl.(type) {
	case *ast.StructDecl, *ast.EnumDecl:
		return true
	}
	return false
}

// env is a lexical scope.
type env struct {
	parent *env
	names  map[string]*binding
}

func newEnv(parent *env) *env {
	return &env{parent: parent, names: make(map[string]*binding)}
}

// declare adds a binding to this scope. When the name is already taken
// in this same scope it returns the previous binding and keeps it.
func (e *env) declare(b *binding) *binding {
	if prev, ok := e.names[b.name]; ok {
		return prev
	}

	e.names[b.name] = b
	return nil
}

// lookup finds a binding by name, walking enclosing scopes.
func (e *env) lookup(name string) (*binding, bool) {
	for s := e; s != nil; s = s.parent {
		if b, ok := s.names[name]; ok {
			return b, true
		}
	}
	return nil, false
}
