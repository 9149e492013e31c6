package check

import (
	"sort"

	"github.com/gongahkia/yuho-sub002/ast"
	"github.com/gongahkia/yuho-sub002/diagnostic"
	"github.com/gongahkia/yuho-sub002/types"
)

// match checks a match expression: that every pattern fits the
// scrutinee, that guards are booleans, that the arms cover every
// possible value, and that no arm hides behind an earlier catch-all.
// Its type is the union of the arm types.
func (c *checker) match(m *ast.MatchExpr) types.Type {
	var scrutinee types.Type
	if m.Scrutinee != nil {
		scrutinee = c.expr(m.Scrutinee)
	}

	covered := make(map[string]bool)
	var coversAll, unreachable bool
	var armTypes []types.Type

	for _, arm := range m.Arms {
		if unreachable {
			c.warn(arm, diagnostic.UnreachableArm())
		}

		c.env = newEnv(c.env)
		catchAll := c.pattern(arm.Pattern, scrutinee, covered, arm.Guard == nil)

		if arm.Guard != nil {
			guard := c.expr(arm.Guard)
			if !types.IsInvalid(guard) && !types.IsBasic(guard, types.Bool) {
				c.error(arm.Guard, diagnostic.TypeMismatch("bool", guard.String()))
			}
		}

		armTypes = append(armTypes, c.expr(arm.Expr))
		c.env = c.env.parent

		if catchAll {
			coversAll = true
			unreachable = true
		}
	}

	c.exhaustive(m, scrutinee, covered, coversAll)

	var valid []types.Type
	for _, t := range armTypes {
		if !types.IsInvalid(t) {
			valid = append(valid, t)
		}
	}
	if len(valid) == 0 {
		return invalid
	}
	return types.NewUnion(valid...)
}

// pattern checks a single pattern against the scrutinee type, binding
// pattern variables in the current scope and recording which values an
// unconditional arm covers. It reports whether the arm matches
// anything at all.
func (c *checker) pattern(pattern ast.Pattern, scrutinee types.Type, covered map[string]bool, unconditional bool) bool {
	switch p := pattern.(type) {
	case *ast.AnythingPattern:
		return unconditional
	case *ast.VarPattern:
		// a name that is a variant of the scrutinee's enum matches that
		// variant, anything else binds the value
		if enum, ok := scrutinee.(*types.Enum); ok && enum.HasVariant(p.Name.Name) {
			if unconditional {
				covered[p.Name.Name] = true
			}
			return false
		}

		typ := scrutinee
		if typ == nil {
			typ = invalid
		}
		c.env.declare(&binding{name: p.Name.Name, pos: p.Name.NamePos, typ: typ})
		return unconditional
	case *ast.LiteralPattern:
		lt := litType(p.Literal.Type)
		if known(scrutinee) && !types.AssignableTo(lt, scrutinee) {
			c.error(p, diagnostic.TypeMismatch(scrutinee.String(), lt.String()))
			return false
		}

		if unconditional && types.IsBasic(lt, types.Bool) {
			covered[p.Literal.Value] = true
		}
	case *ast.SelectorPattern:
		b, ok := c.env.lookup(p.Enum.Name)
		if !ok {
			c.error(p.Enum, diagnostic.UndefinedName(p.Enum.Name))
			return false
		}

		enum, isEnum := c.bindingType(b).(*types.Enum)
		if !isEnum || !b.isType() {
			c.error(p.Enum, diagnostic.NotAType(p.Enum.Name))
			return false
		}

		if !enum.HasVariant(p.Variant.Name) {
			c.error(p.Variant, diagnostic.UnknownField(enum.Name, p.Variant.Name))
			return false
		}

		if known(scrutinee) && !scrutinee.Equal(enum) {
			c.error(p, diagnostic.TypeMismatch(scrutinee.String(), enum.String()))
			return false
		}

		if unconditional {
			covered[p.Variant.Name] = true
		}
	}

	return false
}

// exhaustive warns about a match that does not cover every value of
// its scrutinee. Booleans and enums can be covered case by case,
// anything else needs a catch-all arm. Like unreachable arms, this is
// a warning, not an error.
func (c *checker) exhaustive(m *ast.MatchExpr, scrutinee types.Type, covered map[string]bool, coversAll bool) {
	if coversAll || (scrutinee != nil && types.IsInvalid(scrutinee)) {
		return
	}

	if scrutinee == nil {
		c.warn(m, diagnostic.Inexhaustive(nil))
		return
	}

	switch s := scrutinee.(type) {
	case *types.Basic:
		if s.Kind == types.Bool {
			var missing []string
			for _, lit := range []string{"TRUE", "FALSE"} {
				if !covered[lit] {
					missing = append(missing, lit)
				}
			}
			if len(missing) > 0 {
				c.warn(m, diagnostic.Inexhaustive(missing))
			}
			return
		}

		c.warn(m, diagnostic.Inexhaustive(nil))
	case *types.Enum:
		var missing []string
		for _, variant := range s.Variants {
			if !covered[variant] {
				missing = append(missing, s.Name+"."+variant)
			}
		}

		if len(missing) > 0 {
			sort.Strings(missing)
			c.warn(m, diagnostic.Inexhaustive(missing))
		}
	default:
		c.warn(m, diagnostic.Inexhaustive(nil))
	}
}

// known reports whether the scrutinee has a usable type to check
// patterns against.
func known(t types.Type) bool {
	return t != nil && !types.IsInvalid(t)
}
