package parser

import (
	"fmt"
	"unicode/utf8"

	"github.com/gongahkia/yuho-sub002/ast"
	"github.com/gongahkia/yuho-sub002/diagnostic"
	"github.com/gongahkia/yuho-sub002/operator"
	"github.com/gongahkia/yuho-sub002/scanner"
	"github.com/gongahkia/yuho-sub002/token"
)

type parser struct {
	sess     *Session
	scanner  *scanner.Scanner
	fileName string
	mode     ParseMode
	opTable  *operator.Table

	tok       *token.Token
	regions   []*token.Position
	lexFailed bool

	// structLitOK controls whether a "{" after an identifier starts a
	// struct literal. It is off while parsing a match scrutinee, where
	// the brace opens the case block instead.
	structLitOK bool
}

func newParser(sess *Session) *parser {
	return &parser{
		sess:        sess,
		opTable:     operator.BuiltinTable(),
		structLitOK: true,
	}
}

type bailout struct{}

func (p *parser) init(fileName string, s *scanner.Scanner, mode ParseMode) {
	p.scanner = s
	p.fileName = fileName
	p.mode = mode

	p.next()
}

func (p *parser) next() {
	p.tok = p.scanner.Next()
	if p.is(token.Error) {
		// the scanner cannot produce anything after an error, so this
		// is always fatal
		if !p.lexFailed {
			p.lexFailed = true
			p.regionError(p.tok.Position, diagnostic.ParseError(p.tok.Value))
		}
		panic(bailout{})
	}
}

func (p *parser) peek() *token.Token {
	return p.scanner.Peek()
}

func (p *parser) expect(typ token.Type) token.Pos {
	pos := p.tok.Position
	if p.tok.Type != typ {
		p.errorExpected(p.tok, typ)
	}

	p.next()
	return pos.Offset
}

func (p *parser) expectOneOf(types ...token.Type) token.Pos {
	pos := p.tok.Position
	var found bool
	for _, t := range types {
		if p.tok.Type == t {
			found = true
		}
	}

	if !found {
		p.errorExpectedOneOf(p.tok, types...)
	}

	p.next()
	return pos.Offset
}

func (p *parser) is(typ token.Type) bool {
	return p.tok.Type == typ
}

func (p *parser) opInfo(name string) *operator.OpInfo {
	return p.opTable.Lookup(name)
}

func (p *parser) startRegion() {
	p.regions = append(p.regions, p.tok.Position)
}

func (p *parser) endRegion() {
	p.regions = p.regions[:len(p.regions)-1]
}

func (p *parser) regionStart() *token.Position {
	if len(p.regions) == 0 {
		return &token.Position{Offset: token.NoPos, Line: 1}
	}
	return p.regions[len(p.regions)-1]
}

func (p *parser) region(start *token.Position) []string {
	src := p.sess.Source(p.fileName)
	if src == nil {
		return nil
	}

	return src.Region(
		start.Offset,
		p.tok.Offset+token.Pos(utf8.RuneCountInString(p.tok.Value)),
	)
}

func (p *parser) regionError(pos *token.Position, msg diagnostic.Msg) {
	start := p.regionStart()
	p.sess.Diagnose(p.fileName, diagnostic.NewRegionDiagnostic(
		diagnostic.Error,
		msg,
		start,
		pos,
		p.region(start),
	))
}

func (p *parser) errorExpected(t *token.Token, typ token.Type) {
	if t.Type == token.EOF {
		p.regionError(t.Position, diagnostic.UnexpectedEOF(typ))
		panic(bailout{})
	}

	p.errorExpectedOneOf(t, typ)
}

// errorExpectedOneOf diagnoses an unexpected token and stops. In
// recovery mode the caller syncs to the next statement and goes on.
func (p *parser) errorExpectedOneOf(t *token.Token, types ...token.Type) {
	p.regionError(t.Position, diagnostic.Expecting(t.Type, types...))
	panic(bailout{})
}

func (p *parser) errorMessage(pos *token.Position, msg string, args ...interface{}) {
	p.regionError(pos, diagnostic.ParseError(fmt.Sprintf(msg, args...)))
}

// sync discards tokens until the start of the next statement, that is,
// just after a ";" or just before a "}". Used in recovery mode to keep
// parsing after a broken declaration.
func (p *parser) sync() {
	for {
		switch p.tok.Type {
		case token.Semicolon:
			p.next()
			return
		case token.RightBrace, token.EOF:
			return
		}
		p.next()
	}
}

// parseDeclRecovering parses a declaration, and in recovery mode it
// turns a fatal error into a BadDecl after syncing to the next
// statement boundary.
func parseDeclRecovering(p *parser) (decl ast.Decl) {
	if !p.mode.Is(Recover) {
		return parseDecl(p)
	}

	start := p.tok.Position.Offset
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bailout); !ok {
				panic(r)
			}

			if p.is(token.EOF) || p.is(token.Error) {
				panic(bailout{})
			}

			p.sync()
			decl = &ast.BadDecl{StartPos: start, EndPos: p.tok.Offset}
		}
	}()

	return parseDecl(p)
}
