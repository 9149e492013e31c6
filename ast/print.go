package ast

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Print renders the node back as source text. The output parses to the
// same tree, positions aside.
func Print(node Node) string {
	var buf bytes.Buffer
	Fprint(&buf, node)
	return buf.String()
}

// Fprint renders the node as source text into the given writer.
func Fprint(w io.Writer, node Node) error {
	p := &printer{w: w}
	p.node(node)
	return p.err
}

type printer struct {
	w      io.Writer
	indent int
	err    error
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err == nil {
		_, p.err = fmt.Fprintf(p.w, format, args...)
	}
}

func (p *printer) line(format string, args ...interface{}) {
	p.printf("%s", strings.Repeat("\t", p.indent))
	p.printf(format, args...)
	p.printf("\n")
}

func (p *printer) node(node Node) {
	switch node := node.(type) {
	case *Module:
		for _, imp := range node.Imports {
			p.node(imp)
		}

		for _, d := range node.Decls {
			p.node(d)
		}

	case *ReferencingDecl:
		p.line("referencing %s from %s;", idents(node.Symbols), node.Module)

	case *ScopeDecl:
		p.line("scope %s {", node.Name)
		p.indent++
		for _, d := range node.Decls {
			p.node(d)
		}
		p.indent--
		p.line("}")

	case *StructDecl:
		p.line("struct %s {", node.Name)
		p.indent++
		for _, f := range node.Fields {
			p.line("%s %s,", typeString(f.Type), f.Name)
		}
		p.indent--
		p.line("}")

	case *EnumDecl:
		p.line("enum %s {", node.Name)
		p.indent++
		for i, v := range node.Variants {
			if i < len(node.Variants)-1 {
				p.line("%s,", v)
			} else {
				p.line("%s", v)
			}
		}
		p.indent--
		p.line("}")

	case *FuncDecl:
		var params []string
		for _, param := range node.Params {
			params = append(params, typeString(param.Type)+" "+param.Name.Name)
		}

		if node.Return != nil {
			p.line("%s func %s(%s) {", typeString(node.Return), node.Name, strings.Join(params, ", "))
		} else {
			p.line("func %s(%s) {", node.Name, strings.Join(params, ", "))
		}

		p.indent++
		for _, d := range node.Body {
			p.node(d)
		}
		p.indent--
		p.line("}")

	case *VariableDecl:
		if node.Value != nil {
			p.line("%s %s := %s;", typeString(node.Type), node.Name, exprString(node.Value))
		} else {
			p.line("%s %s;", typeString(node.Type), node.Name)
		}

	case *ExprStmt:
		if m, ok := node.Expr.(*MatchExpr); ok {
			p.match(m)
		} else {
			p.line("%s;", exprString(node.Expr))
		}

	case *MatchExpr:
		p.match(node)

	case *BadDecl:
		// nothing can be printed back

	case Expr:
		p.printf("%s", exprString(node))

	case Type:
		p.printf("%s", typeString(node))

	default:
		p.err = fmt.Errorf("print: unable to print node of type %T", node)
	}
}

func (p *printer) match(m *MatchExpr) {
	if m.Scrutinee != nil {
		p.line("match %s {", exprString(m.Scrutinee))
	} else {
		p.line("match {")
	}

	p.indent++
	for _, arm := range m.Arms {
		if arm.Guard != nil {
			p.line("case %s where %s := consequence %s;",
				patternString(arm.Pattern), exprString(arm.Guard), exprString(arm.Expr))
		} else {
			p.line("case %s := consequence %s;",
				patternString(arm.Pattern), exprString(arm.Expr))
		}
	}
	p.indent--
	p.line("}")
}

func idents(list []*Ident) string {
	var names []string
	for _, i := range list {
		names = append(names, i.Name)
	}
	return strings.Join(names, ", ")
}

func typeString(t Type) string {
	switch t := t.(type) {
	case *NamedType:
		return t.Name.Name
	case *UnionType:
		var parts []string
		for _, alt := range t.Types {
			parts = append(parts, typeString(alt))
		}
		return strings.Join(parts, " | ")
	default:
		return fmt.Sprintf("<%T>", t)
	}
}

func patternString(pat Pattern) string {
	switch pat := pat.(type) {
	case *VarPattern:
		return pat.Name.Name
	case *AnythingPattern:
		return "_"
	case *LiteralPattern:
		return pat.Literal.Value
	case *SelectorPattern:
		return pat.Enum.Name + "." + pat.Variant.Name
	default:
		return fmt.Sprintf("<%T>", pat)
	}
}

func exprString(e Expr) string {
	switch e := e.(type) {
	case *Ident:
		return e.Name
	case *BasicLit:
		return e.Value
	case *PassExpr:
		return "pass"
	case *SelectorExpr:
		return exprString(e.Expr) + "." + e.Selector.Name
	case *UnaryExpr:
		return e.Op.Name + exprString(e.Expr)
	case *BinaryExpr:
		return exprString(e.Lhs) + " " + e.Op.Name + " " + exprString(e.Rhs)
	case *ParensExpr:
		return "(" + exprString(e.Expr) + ")"
	case *CallExpr:
		var args []string
		for _, a := range e.Args {
			args = append(args, exprString(a))
		}
		return exprString(e.Func) + "(" + strings.Join(args, ", ") + ")"
	case *StructLit:
		var fields []string
		for _, f := range e.Fields {
			fields = append(fields, f.Field.Name+" := "+exprString(f.Expr))
		}
		return e.Name.Name + " { " + strings.Join(fields, ", ") + " }"
	case *MatchExpr:
		// a match in expression position renders inline
		var buf bytes.Buffer
		p := &printer{w: &buf}
		p.match(e)
		return strings.TrimSuffix(buf.String(), "\n")
	case *BadExpr:
		return "<bad expression>"
	default:
		return fmt.Sprintf("<%T>", e)
	}
}
