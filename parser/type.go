package parser

import (
	"github.com/gongahkia/yuho-sub002/ast"
	"github.com/gongahkia/yuho-sub002/token"
)

func parseType(p *parser) ast.Type {
	first := parseNamedType(p)
	if !p.is(token.Pipe) {
		return first
	}

	union := &ast.UnionType{Types: []ast.Type{first}}
	for p.is(token.Pipe) {
		p.next()
		union.Types = append(union.Types, parseNamedType(p))
	}

	return union
}

func parseNamedType(p *parser) ast.Type {
	pos := p.tok.Position
	name := p.tok.Value
	p.expectOneOf(token.TypeName, token.Identifier)
	return &ast.NamedType{Name: ast.NewIdent(name, pos)}
}
