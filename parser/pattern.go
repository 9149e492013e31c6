package parser

import (
	"github.com/gongahkia/yuho-sub002/ast"
	"github.com/gongahkia/yuho-sub002/token"
)

func parsePattern(p *parser) ast.Pattern {
	switch p.tok.Type {
	case token.Int, token.Float, token.String, token.True, token.False,
		token.Money, token.Percent, token.Date, token.Duration:
		return &ast.LiteralPattern{Literal: parseLiteral(p)}
	case token.Identifier:
		if p.tok.Value == "_" {
			return &ast.AnythingPattern{Underscore: p.expect(token.Identifier)}
		}

		name := parseIdentifier(p)
		if p.is(token.Dot) {
			p.next()
			return &ast.SelectorPattern{Enum: name, Variant: parseIdentifier(p)}
		}

		return &ast.VarPattern{Name: name}
	default:
		p.errorMessage(p.tok.Position, "I was expecting a pattern, but I found %s instead.", p.tok.Type)
		panic(bailout{})
	}
}
