package parser

import (
	"github.com/gongahkia/yuho-sub002/ast"
	"github.com/gongahkia/yuho-sub002/diagnostic"
	"github.com/gongahkia/yuho-sub002/operator"
	"github.com/gongahkia/yuho-sub002/token"
)

func parseExpr(p *parser) ast.Expr {
	return parseBinaryExpr(p, parseUnary(p), 0)
}

func parseBinaryExpr(p *parser, lhs ast.Expr, minPrec uint) ast.Expr {
	for p.is(token.Op) {
		info := p.opInfo(p.tok.Value)
		if info == nil {
			p.errorMessage(p.tok.Position, "I ran into an unexpected operator %q.", p.tok.Value)
			panic(bailout{})
		}

		if info.Precedence < minPrec {
			return lhs
		}

		op := parseOp(p)
		rhs := parseUnary(p)

		for p.is(token.Op) {
			next := p.opInfo(p.tok.Value)
			if next == nil {
				break
			}

			if next.Precedence > info.Precedence ||
				(next.Associativity == operator.Right &&
					next.Precedence == info.Precedence) {
				rhs = parseBinaryExpr(p, rhs, next.Precedence)
			} else {
				break
			}
		}

		lhs = &ast.BinaryExpr{Op: op, Lhs: lhs, Rhs: rhs}
	}

	return lhs
}

func parseUnary(p *parser) ast.Expr {
	if p.is(token.Op) && (p.tok.Value == "-" || p.tok.Value == "!") {
		return &ast.UnaryExpr{
			Op:   parseOp(p),
			Expr: parseUnary(p),
		}
	}

	return parseTerm(p)
}

func parseTerm(p *parser) ast.Expr {
	switch p.tok.Type {
	case token.Int, token.Float, token.String, token.True, token.False,
		token.Money, token.Percent, token.Date, token.Duration:
		return parseLiteral(p)
	case token.Pass:
		return &ast.PassExpr{PassPos: p.expect(token.Pass)}
	case token.Match:
		return parseMatch(p)
	case token.LeftParen:
		lparen := p.expect(token.LeftParen)
		prev := p.structLitOK
		p.structLitOK = true
		expr := parseExpr(p)
		p.structLitOK = prev
		return parsePostfix(p, &ast.ParensExpr{
			Lparen: lparen,
			Expr:   expr,
			Rparen: p.expect(token.RightParen),
		})
	case token.Identifier:
		return parsePostfix(p, parseIdentifier(p))
	case token.EOF:
		p.regionError(p.tok.Position, diagnostic.UnexpectedEOF())
		panic(bailout{})
	default:
		p.errorMessage(p.tok.Position, "I was expecting an expression, but I found %s instead.", p.tok.Type)
		panic(bailout{})
	}
}

func parseIdentifier(p *parser) *ast.Ident {
	name := "_"
	pos := p.tok.Position
	if p.is(token.Identifier) {
		name = p.tok.Value
		p.next()
	} else {
		p.expect(token.Identifier)
	}

	return ast.NewIdent(name, pos)
}

func parseOp(p *parser) *ast.Ident {
	name := "_"
	pos := p.tok.Position
	if p.is(token.Op) {
		name = p.tok.Value
		p.next()
	} else {
		p.expect(token.Op)
	}

	return ast.NewIdent(name, pos)
}

func parseLiteral(p *parser) *ast.BasicLit {
	var typ ast.BasicLitType
	switch p.tok.Type {
	case token.Int:
		typ = ast.Int
	case token.Float:
		typ = ast.Float
	case token.String:
		typ = ast.String
	case token.True, token.False:
		typ = ast.Bool
	case token.Money:
		typ = ast.Money
	case token.Percent:
		typ = ast.Percent
	case token.Date:
		typ = ast.Date
	case token.Duration:
		typ = ast.Duration
	}

	lit := &ast.BasicLit{
		Position: p.tok.Position,
		Type:     typ,
		Value:    p.tok.Value,
	}
	p.next()
	return lit
}

// parsePostfix parses the chain of field accesses, calls and struct
// literals hanging off a term.
func parsePostfix(p *parser, expr ast.Expr) ast.Expr {
	for {
		switch {
		case p.is(token.Dot):
			p.next()
			expr = &ast.SelectorExpr{Expr: expr, Selector: parseIdentifier(p)}
		case p.is(token.LeftParen):
			expr = parseCall(p, expr)
		case p.is(token.LeftBrace) && p.structLitOK:
			ident, ok := expr.(*ast.Ident)
			if !ok {
				return expr
			}
			expr = parseStructLit(p, ident)
		default:
			return expr
		}
	}
}

func parseCall(p *parser, fn ast.Expr) *ast.CallExpr {
	call := &ast.CallExpr{Func: fn, Lparen: p.expect(token.LeftParen)}

	prev := p.structLitOK
	p.structLitOK = true
	for !p.is(token.RightParen) && !p.is(token.EOF) {
		call.Args = append(call.Args, parseExpr(p))
		if !p.is(token.RightParen) {
			p.expect(token.Comma)
		}
	}
	p.structLitOK = prev

	call.Rparen = p.expect(token.RightParen)
	return call
}

func parseStructLit(p *parser, name *ast.Ident) *ast.StructLit {
	lit := &ast.StructLit{Name: name, Lbrace: p.expect(token.LeftBrace)}

	prev := p.structLitOK
	p.structLitOK = true
	for !p.is(token.RightBrace) && !p.is(token.EOF) {
		field := &ast.FieldAssign{Field: parseIdentifier(p)}
		field.Assign = p.expect(token.Assign)
		field.Expr = parseExpr(p)
		lit.Fields = append(lit.Fields, field)

		if p.is(token.Comma) {
			p.next()
		} else if !p.is(token.RightBrace) {
			p.expect(token.Comma)
		}
	}
	p.structLitOK = prev

	lit.Rbrace = p.expect(token.RightBrace)
	return lit
}

func parseMatch(p *parser) *ast.MatchExpr {
	m := &ast.MatchExpr{MatchPos: p.expect(token.Match)}

	if !p.is(token.LeftBrace) {
		// the brace after the scrutinee opens the case block, so a
		// struct literal needs parenthesis here
		prev := p.structLitOK
		p.structLitOK = false
		m.Scrutinee = parseExpr(p)
		p.structLitOK = prev
	}

	m.Lbrace = p.expect(token.LeftBrace)
	for p.is(token.Case) {
		m.Arms = append(m.Arms, parseCaseArm(p))
	}

	m.Rbrace = p.expect(token.RightBrace)
	return m
}

func parseCaseArm(p *parser) *ast.CaseArm {
	arm := &ast.CaseArm{CasePos: p.expect(token.Case)}
	arm.Pattern = parsePattern(p)

	if p.is(token.Where) {
		p.next()
		arm.Guard = parseExpr(p)
	}

	p.expect(token.Assign)
	arm.Consequence = p.expect(token.Consequence)
	arm.Expr = parseExpr(p)
	p.expect(token.Semicolon)
	return arm
}
