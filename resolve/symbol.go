package resolve

import "github.com/gongahkia/yuho-sub002/ast"

// SymbolKind is the kind of declaration a symbol points to.
type SymbolKind byte

const (
	// KindStruct is a struct definition.
	KindStruct SymbolKind = iota
	// KindEnum is an enum definition.
	KindEnum
	// KindFunc is a function declaration.
	KindFunc
	// KindVariable is a variable declaration.
	KindVariable
	// KindScope is a scope block.
	KindScope
)

func (k SymbolKind) String() string {
	switch k {
	case KindStruct:
		return "struct"
	case KindEnum:
		return "enum"
	case KindFunc:
		return "function"
	case KindVariable:
		return "variable"
	case KindScope:
		return "scope"
	}
	return "unknown"
}

// Symbol is a named top level declaration of a module.
type Symbol struct {
	// Name of the symbol.
	Name string
	// Kind of declaration it points to.
	Kind SymbolKind
	// Module the symbol was declared in.
	Module string
	// Decl is the declaration itself.
	Decl ast.Decl
}

// SymbolTable holds the symbols visible inside a module: its own top
// level declarations plus everything it imports.
type SymbolTable struct {
	module  string
	symbols map[string]*Symbol
	names   []string
}

// NewSymbolTable creates an empty symbol table for the given module.
func NewSymbolTable(module string) *SymbolTable {
	return &SymbolTable{
		module:  module,
		symbols: make(map[string]*Symbol),
	}
}

// Module returns the name of the module the table belongs to.
func (t *SymbolTable) Module() string {
	return t.module
}

// Insert adds the symbol to the table. It reports whether the symbol
// was inserted, which it is not when the name is already taken.
func (t *SymbolTable) Insert(sym *Symbol) bool {
	if _, ok := t.symbols[sym.Name]; ok {
		return false
	}

	t.symbols[sym.Name] = sym
	t.names = append(t.names, sym.Name)
	return true
}

// Lookup finds a symbol by name.
func (t *SymbolTable) Lookup(name string) (*Symbol, bool) {
	sym, ok := t.symbols[name]
	return sym, ok
}

// Names returns the symbol names in insertion order.
func (t *SymbolTable) Names() []string {
	return t.names
}

// Exports returns the symbols a module makes available to its
// importers, which are all its named top level declarations.
func Exports(mod *ast.Module) []*Symbol {
	var syms []*Symbol
	for _, decl := range mod.Decls {
		switch d := decl.(type) {
		case *ast.StructDecl:
			syms = append(syms, &Symbol{d.Name.Name, KindStruct, mod.Name, d})
		case *ast.EnumDecl:
			syms = append(syms, &Symbol{d.Name.Name, KindEnum, mod.Name, d})
		case *ast.FuncDecl:
			syms = append(syms, &Symbol{d.Name.Name, KindFunc, mod.Name, d})
		case *ast.VariableDecl:
			syms = append(syms, &Symbol{d.Name.Name, KindVariable, mod.Name, d})
		case *ast.ScopeDecl:
			syms = append(syms, &Symbol{d.Name.Name, KindScope, mod.Name, d})
		}
	}
	return syms
}
