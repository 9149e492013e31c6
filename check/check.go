package check

import (
	"github.com/gongahkia/yuho-sub002/ast"
	"github.com/gongahkia/yuho-sub002/diagnostic"
	"github.com/gongahkia/yuho-sub002/parser"
	"github.com/gongahkia/yuho-sub002/resolve"
	"github.com/gongahkia/yuho-sub002/token"
	"github.com/gongahkia/yuho-sub002/types"
)

// Check type checks every module of a resolution result, dependencies
// first, so a module always sees the already checked types of what it
// imports. Problems are reported through the session's diagnoser. It
// reports whether the modules are free of errors; warnings do not
// count.
func Check(sess *parser.Session, result *resolve.Result) bool {
	c := &checker{
		sess:    sess,
		result:  result,
		exports: make(map[string]map[string]*binding),
	}

	for _, name := range result.Order {
		c.module(result.Modules[name])
	}

	return !sess.HasErrors()
}

type checker struct {
	sess   *parser.Session
	result *resolve.Result

	mod *ast.Module
	env *env

	// exports holds the top level bindings of every checked module, so
	// importers can pull in their types without recomputing them.
	exports map[string]map[string]*binding
}

func (c *checker) module(mod *ast.Module) {
	c.mod = mod
	c.env = newEnv(nil)

	if table := c.result.Tables[mod.Name]; table != nil {
		for _, name := range table.Names() {
			sym, _ := table.Lookup(name)
			if sym.Module == mod.Name {
				continue
			}

			if b := c.exports[sym.Module][name]; b != nil {
				c.env.declare(b)
			}
		}
	}

	c.collect(mod.Decls)
	for _, decl := range mod.Decls {
		c.decl(decl)
	}

	c.exports[mod.Name] = c.env.names
}

// collect declares every name of the declaration list in the current
// scope before anything is checked, so declarations can reference each
// other regardless of order.
func (c *checker) collect(decls []ast.Decl) {
	for _, decl := range decls {
		name := declName(decl)
		if name == nil {
			continue
		}

		b := &binding{
			name: name.Name,
			pos:  name.NamePos,
			decl: decl,
			env:  c.env,
		}
		if prev := c.env.declare(b); prev != nil {
			c.error(name, diagnostic.DuplicateDeclaration(name.Name, prev.pos))
		}
	}
}

func declName(decl ast.Decl) *ast.Ident {
	switch d := decl.(type) {
	case *ast.StructDecl:
		return d.Name
	case *ast.EnumDecl:
		return d.Name
	case *ast.FuncDecl:
		return d.Name
	case *ast.VariableDecl:
		return d.Name
	case *ast.ScopeDecl:
		return d.Name
	}
	return nil
}

// decl checks a declaration. It returns the type of expression
// statements, nil for everything else.
func (c *checker) decl(decl ast.Decl) types.Type {
	switch d := decl.(type) {
	case *ast.StructDecl:
		c.force(d.Name.Name, decl)

		seen := make(map[string]*token.Position)
		for _, f := range d.Fields {
			if prev, ok := seen[f.Name.Name]; ok {
				c.error(f.Name, diagnostic.DuplicateDeclaration(f.Name.Name, prev))
				continue
			}
			seen[f.Name.Name] = f.Name.NamePos
		}
	case *ast.EnumDecl:
		c.force(d.Name.Name, decl)

		seen := make(map[string]*token.Position)
		for _, v := range d.Variants {
			if prev, ok := seen[v.Name]; ok {
				c.error(v, diagnostic.DuplicateDeclaration(v.Name, prev))
				continue
			}
			seen[v.Name] = v.NamePos
		}
	case *ast.FuncDecl:
		fn, _ := c.force(d.Name.Name, decl).(*types.Func)
		c.funcBody(d, fn)
	case *ast.VariableDecl:
		declared := c.force(d.Name.Name, decl)
		if declared == nil {
			// a duplicate that lost its name, check it on its own
			declared = c.convertType(d.Type)
		}

		if d.Value != nil {
			found := c.expr(d.Value)
			if !types.AssignableTo(found, declared) {
				c.error(d.Value, diagnostic.TypeMismatch(declared.String(), found.String()))
			}
		}
	case *ast.ScopeDecl:
		c.env = newEnv(c.env)
		c.collect(d.Decls)
		for _, nested := range d.Decls {
			c.decl(nested)
		}
		c.env = c.env.parent
	case *ast.ExprStmt:
		return c.expr(d.Expr)
	}

	return nil
}

// force resolves the type of the binding the declaration owns. It
// returns nil when the declaration lost its name to an earlier
// duplicate.
func (c *checker) force(name string, decl ast.Decl) types.Type {
	b, ok := c.env.lookup(name)
	if !ok || b.decl != decl {
		return nil
	}
	return c.bindingType(b)
}

// bindingType resolves and memoizes the type of a binding. Recursive
// types resolve to the invalid type.
func (c *checker) bindingType(b *binding) types.Type {
	if b.typ != nil {
		return b.typ
	}

	if b.resolving {
		b.typ = types.Typ[types.Invalid]
		return b.typ
	}
	b.resolving = true
	defer func() { b.resolving = false }()

	outer := c.env
	if b.env != nil {
		c.env = b.env
	}
	defer func() { c.env = outer }()

	switch d := b.decl.(type) {
	case *ast.StructDecl:
		fields := make([]*types.Field, len(d.Fields))
		for i, f := range d.Fields {
			fields[i] = &types.Field{Name: f.Name.Name, Type: c.convertType(f.Type)}
		}
		b.typ = types.NewStruct(d.Name.Name, fields)
	case *ast.EnumDecl:
		variants := make([]string, len(d.Variants))
		for i, v := range d.Variants {
			variants[i] = v.Name
		}
		b.typ = types.NewEnum(d.Name.Name, variants)
	case *ast.FuncDecl:
		params := make([]types.Type, len(d.Params))
		for i, p := range d.Params {
			params[i] = c.convertType(p.Type)
		}

		var ret types.Type
		if d.Return != nil {
			ret = c.convertType(d.Return)
		}
		b.typ = &types.Func{Name: d.Name.Name, Params: params, Return: ret}
	case *ast.VariableDecl:
		b.typ = c.convertType(d.Type)
	default:
		b.typ = types.Typ[types.Invalid]
	}

	return b.typ
}

// convertType resolves a type annotation against the current scope,
// reporting names that do not exist or do not name a type.
func (c *checker) convertType(t ast.Type) types.Type {
	switch t := t.(type) {
	case *ast.NamedType:
		return types.Convert(t, func(name string) types.Type {
			b, ok := c.env.lookup(name)
			if !ok {
				c.error(t, diagnostic.UndefinedName(name))
				return types.Typ[types.Invalid]
			}

			if !b.isType() {
				c.error(t, diagnostic.NotAType(name))
				return types.Typ[types.Invalid]
			}
			return c.bindingType(b)
		})
	case *ast.UnionType:
		alts := make([]types.Type, len(t.Types))
		for i, alt := range t.Types {
			alts[i] = c.convertType(alt)
		}
		return types.NewUnion(alts...)
	}

	return types.Typ[types.Invalid]
}

func (c *checker) funcBody(d *ast.FuncDecl, fn *types.Func) {
	c.env = newEnv(c.env)
	defer func() { c.env = c.env.parent }()

	for i, p := range d.Params {
		var typ types.Type = types.Typ[types.Invalid]
		if fn != nil && i < len(fn.Params) {
			typ = fn.Params[i]
		}

		b := &binding{name: p.Name.Name, pos: p.Name.NamePos, typ: typ}
		if prev := c.env.declare(b); prev != nil {
			c.error(p.Name, diagnostic.DuplicateDeclaration(p.Name.Name, prev.pos))
		}
	}

	c.collect(d.Body)
	var last types.Type
	for _, decl := range d.Body {
		last = c.decl(decl)
	}

	// the value of a function is its trailing expression, which has to
	// produce the declared return type
	if fn != nil && fn.Return != nil && len(d.Body) > 0 && last != nil {
		if stmt, ok := d.Body[len(d.Body)-1].(*ast.ExprStmt); ok {
			if !types.AssignableTo(last, fn.Return) {
				c.error(stmt.Expr, diagnostic.TypeMismatch(fn.Return.String(), last.String()))
			}
		}
	}
}

func (c *checker) error(n ast.Node, msg diagnostic.Msg) {
	c.diagnose(diagnostic.Error, n, msg)
}

func (c *checker) warn(n ast.Node, msg diagnostic.Msg) {
	c.diagnose(diagnostic.Warn, n, msg)
}

func (c *checker) diagnose(severity diagnostic.Severity, n ast.Node, msg diagnostic.Msg) {
	src := c.sess.Source(c.mod.Path)
	if src == nil {
		return
	}

	c.sess.DiagnoseRegion(
		c.mod.Path,
		severity,
		msg,
		src.Position(n.Pos()),
		src.Position(n.End()),
	)
}
