package parser

import (
	"github.com/gongahkia/yuho-sub002/ast"
	"github.com/gongahkia/yuho-sub002/token"
)

func parseModuleFile(p *parser, name, path string) *ast.Module {
	mod := &ast.Module{Name: name, Path: path}

	for p.is(token.Referencing) {
		p.startRegion()
		mod.Imports = append(mod.Imports, parseReferencing(p))
		p.endRegion()
	}

	for !p.is(token.EOF) {
		p.startRegion()
		if p.is(token.Referencing) {
			p.errorMessage(p.tok.Position, "referencing declarations must appear before everything else in the file.")
			mod.Imports = append(mod.Imports, parseReferencing(p))
		} else {
			mod.Decls = append(mod.Decls, parseDeclRecovering(p))
		}
		p.endRegion()
	}

	return mod
}

func parseReferencing(p *parser) *ast.ReferencingDecl {
	decl := &ast.ReferencingDecl{Referencing: p.expect(token.Referencing)}
	decl.Symbols = append(decl.Symbols, parseIdentifier(p))
	for p.is(token.Comma) {
		p.next()
		decl.Symbols = append(decl.Symbols, parseIdentifier(p))
	}

	p.expect(token.From)
	decl.Module = parseIdentifier(p)
	p.expect(token.Semicolon)
	return decl
}

func parseDecl(p *parser) ast.Decl {
	switch p.tok.Type {
	case token.Scope:
		return parseScope(p)
	case token.Struct:
		return parseStruct(p)
	case token.Enum:
		return parseEnum(p)
	case token.Func:
		return parseFunc(p, nil)
	case token.Match:
		m := parseMatch(p)
		if p.is(token.Semicolon) {
			p.next()
		}
		return &ast.ExprStmt{Expr: m}
	case token.Pass:
		expr := parseExpr(p)
		p.expect(token.Semicolon)
		return &ast.ExprStmt{Expr: expr}
	case token.TypeName:
		return parseTypedDecl(p)
	case token.Identifier:
		// a name followed by another name or a pipe declares something
		// of a user defined type, anything else is an expression
		switch p.peek().Type {
		case token.Identifier, token.Pipe, token.Func:
			return parseTypedDecl(p)
		}

		expr := parseExpr(p)
		p.expect(token.Semicolon)
		return &ast.ExprStmt{Expr: expr}
	default:
		p.errorExpectedOneOf(p.tok,
			token.Scope, token.Struct, token.Enum, token.Func,
			token.Match, token.TypeName, token.Identifier)
		return nil
	}
}

// parseTypedDecl parses the declarations that start with a type: a
// variable declaration or a function declaration with a return type.
func parseTypedDecl(p *parser) ast.Decl {
	typ := parseType(p)
	if p.is(token.Func) {
		return parseFunc(p, typ)
	}

	decl := &ast.VariableDecl{
		Type:   typ,
		Name:   parseIdentifier(p),
		Assign: token.NoPos,
	}

	if p.is(token.Assign) {
		decl.Assign = p.expect(token.Assign)
		decl.Value = parseExpr(p)
	}

	p.expect(token.Semicolon)
	return decl
}

func parseScope(p *parser) *ast.ScopeDecl {
	decl := &ast.ScopeDecl{ScopePos: p.expect(token.Scope)}
	decl.Name = parseIdentifier(p)
	decl.Lbrace = p.expect(token.LeftBrace)

	for !p.is(token.RightBrace) && !p.is(token.EOF) {
		decl.Decls = append(decl.Decls, parseDeclRecovering(p))
	}

	decl.Rbrace = p.expect(token.RightBrace)
	return decl
}

func parseStruct(p *parser) *ast.StructDecl {
	decl := &ast.StructDecl{StructPos: p.expect(token.Struct)}
	decl.Name = parseIdentifier(p)
	decl.Lbrace = p.expect(token.LeftBrace)

	for !p.is(token.RightBrace) && !p.is(token.EOF) {
		decl.Fields = append(decl.Fields, &ast.Field{
			Type: parseType(p),
			Name: parseIdentifier(p),
		})

		// trailing comma before the closing brace is fine
		if p.is(token.Comma) {
			p.next()
		} else if !p.is(token.RightBrace) {
			p.expect(token.Comma)
		}
	}

	decl.Rbrace = p.expect(token.RightBrace)
	return decl
}

func parseEnum(p *parser) *ast.EnumDecl {
	decl := &ast.EnumDecl{EnumPos: p.expect(token.Enum)}
	decl.Name = parseIdentifier(p)
	decl.Lbrace = p.expect(token.LeftBrace)

	for !p.is(token.RightBrace) && !p.is(token.EOF) {
		decl.Variants = append(decl.Variants, parseIdentifier(p))
		if p.is(token.Comma) {
			p.next()
		} else if !p.is(token.RightBrace) {
			p.expect(token.Comma)
		}
	}

	decl.Rbrace = p.expect(token.RightBrace)
	return decl
}

func parseFunc(p *parser, ret ast.Type) *ast.FuncDecl {
	decl := &ast.FuncDecl{Return: ret, FuncPos: p.expect(token.Func)}
	decl.Name = parseIdentifier(p)

	p.expect(token.LeftParen)
	for !p.is(token.RightParen) && !p.is(token.EOF) {
		decl.Params = append(decl.Params, &ast.Field{
			Type: parseType(p),
			Name: parseIdentifier(p),
		})

		if !p.is(token.RightParen) {
			p.expect(token.Comma)
		}
	}
	p.expect(token.RightParen)

	decl.Lbrace = p.expect(token.LeftBrace)
	for !p.is(token.RightBrace) && !p.is(token.EOF) {
		decl.Body = append(decl.Body, parseDeclRecovering(p))
	}

	decl.Rbrace = p.expect(token.RightBrace)
	return decl
}
