package resolve

import (
	"path/filepath"
	"sort"
	"strings"

	"github.com/gongahkia/yuho-sub002/ast"
	"github.com/gongahkia/yuho-sub002/parser"
)

// fileExt is the extension of module source files.
const fileExt = ".yh"

// Resolver loads a module and, recursively, every module it
// references, checking along the way that each referenced symbol is
// actually exported. Modules are parsed once no matter how many times
// they are referenced.
type Resolver struct {
	sess       *parser.Session
	mode       parser.ParseMode
	searchDirs []string

	modules map[string]*ast.Module
	cache   map[string]*ast.Module
	stack   []string
	graph   *Graph
}

// NewResolver creates a resolver. Referenced modules are looked up
// first next to the file that references them and then in the given
// search directories, in order.
func NewResolver(sess *parser.Session, mode parser.ParseMode, searchDirs ...string) *Resolver {
	return &Resolver{
		sess:       sess,
		mode:       mode,
		searchDirs: searchDirs,
		modules:    make(map[string]*ast.Module),
		cache:      make(map[string]*ast.Module),
	}
}

// Result of resolving a module and everything it references.
type Result struct {
	// Entry is the module resolution started from.
	Entry *ast.Module
	// Modules indexes every loaded module by name.
	Modules map[string]*ast.Module
	// Order lists the module names with dependencies first, so
	// processing them in order guarantees referenced modules come
	// before their referencers.
	Order []string
	// Tables holds, per module, the symbols visible inside it: its own
	// top level declarations plus the ones it imports.
	Tables map[string]*SymbolTable
}

// Resolve loads the module at path along with its whole dependency
// closure. It fails atomically: a module that cannot be found, a
// symbol that is not exported, a colliding import or an import cycle
// aborts the resolution and nothing is returned.
func (r *Resolver) Resolve(path string) (*Result, error) {
	name := moduleName(path)
	r.graph = NewGraph(name)

	entry, err := r.load(path, name)
	if err != nil {
		return nil, err
	}

	order, err := r.graph.Resolve()
	if err != nil {
		return nil, err
	}

	tables, err := r.tables(order)
	if err != nil {
		return nil, err
	}

	return &Result{
		Entry:   entry,
		Modules: r.modules,
		Order:   order,
		Tables:  tables,
	}, nil
}

func (r *Resolver) load(path, name string) (*ast.Module, error) {
	r.stack = append(r.stack, name)
	defer func() {
		r.stack = r.stack[:len(r.stack)-1]
	}()

	// a cached module skips the parse, but its imports are walked again
	// so the dependency edges end up in this resolution's graph too
	mod, ok := r.cache[path]
	if !ok {
		var err error
		mod, err = parser.ParseFile(r.sess, path, r.mode)
		if err != nil {
			return nil, err
		}
	}

	for _, imp := range mod.Imports {
		depName := imp.Module.Name
		if i := index(r.stack, depName); i >= 0 {
			cycle := append([]string{}, r.stack[i:]...)
			return nil, &CircularImportError{Cycle: append(cycle, depName)}
		}

		depPath, err := r.find(path, name, depName)
		if err != nil {
			return nil, err
		}

		dep, err := r.load(depPath, depName)
		if err != nil {
			return nil, err
		}

		if err := checkImport(imp, dep); err != nil {
			return nil, err
		}

		r.graph.Add(depName, name)
	}

	r.cache[path] = mod
	r.modules[name] = mod
	return mod, nil
}

// find locates the source file of a referenced module, trying the
// directory of the referencing file before the search directories.
func (r *Resolver) find(importerPath, importer, dep string) (string, error) {
	candidates := []string{filepath.Join(filepath.Dir(importerPath), dep+fileExt)}
	for _, dir := range r.searchDirs {
		candidate := filepath.Join(dir, dep+fileExt)
		if candidate != candidates[0] {
			candidates = append(candidates, candidate)
		}
	}

	for _, candidate := range candidates {
		if err := r.sess.Add(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", &ModuleNotFoundError{
		Module:   dep,
		Importer: importer,
		Tried:    candidates,
	}
}

// checkImport verifies every symbol the referencing declaration asks
// for is exported by the referenced module.
func checkImport(imp *ast.ReferencingDecl, dep *ast.Module) error {
	exports := make(map[string]struct{})
	var available []string
	for _, sym := range Exports(dep) {
		if _, ok := exports[sym.Name]; ok {
			continue
		}
		exports[sym.Name] = struct{}{}
		available = append(available, sym.Name)
	}
	sort.Strings(available)

	for _, sym := range imp.Symbols {
		if _, ok := exports[sym.Name]; !ok {
			return &MissingSymbolError{
				Symbol:    sym.Name,
				Module:    dep.Name,
				Available: available,
			}
		}
	}

	return nil
}

func (r *Resolver) tables(order []string) (map[string]*SymbolTable, error) {
	tables := make(map[string]*SymbolTable, len(order))
	for _, name := range order {
		mod := r.modules[name]
		table := NewSymbolTable(name)

		// duplicated local declarations are a checker concern, the
		// first one wins here
		for _, sym := range Exports(mod) {
			table.Insert(sym)
		}

		for _, imp := range mod.Imports {
			dep := r.modules[imp.Module.Name]
			exports := make(map[string]*Symbol)
			for _, sym := range Exports(dep) {
				if _, ok := exports[sym.Name]; !ok {
					exports[sym.Name] = sym
				}
			}

			for _, ident := range imp.Symbols {
				sym := exports[ident.Name]
				if prev, ok := table.Lookup(sym.Name); ok {
					return nil, &DuplicateExportError{
						Symbol:  sym.Name,
						Modules: [2]string{prev.Module, sym.Module},
					}
				}
				table.Insert(sym)
			}
		}

		tables[name] = table
	}

	return tables, nil
}

func moduleName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func index(list []string, elem string) int {
	for i, e := range list {
		if e == elem {
			return i
		}
	}
	return -1
}
