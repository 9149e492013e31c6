package parser

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/gongahkia/yuho-sub002/ast"
	"github.com/gongahkia/yuho-sub002/scanner"
)

// ParseMode configures the behavior of the parser.
type ParseMode uint

const (
	// Recover makes the parser sync to the next statement after a fatal
	// error instead of stopping, producing a partial AST plus every
	// diagnostic. Meant for editors and other tools that want as much
	// of the tree as they can get.
	Recover ParseMode = 1 << iota
)

// Is reports whether the given mode is active.
func (m ParseMode) Is(mode ParseMode) bool {
	return m&mode > 0
}

// ErrFatal is returned when parsing stopped because of an error it
// could not get past. The details are in the session's diagnoser.
var ErrFatal = errors.New("parsing stopped on a fatal error")

// ParseFile parses the ".yh" file at the given path, loaded through the
// session's code map. Syntax problems are reported to the session's
// diagnoser.
func ParseFile(sess *Session, path string, mode ParseMode) (mod *ast.Module, err error) {
	if err := sess.Add(path); err != nil {
		return nil, fmt.Errorf("cannot load %s: %w", path, err)
	}

	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bailout); !ok {
				panic(r)
			}

			mod, err = nil, fmt.Errorf("%s: %w", path, ErrFatal)
		}
	}()

	p := newParser(sess)
	p.init(path, scanner.New(path, sess.Source(path).Reader()), mode)
	return parseModuleFile(p, moduleName(path), path), nil
}

// ParseModule parses a module read from r, registered in the session's
// code map under the given path so diagnostics can quote it. The path
// does not have to exist on disk.
func ParseModule(sess *Session, path string, r io.Reader, mode ParseMode) (mod *ast.Module, err error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}
	sess.AddSource(path, string(content))

	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bailout); !ok {
				panic(r)
			}

			mod, err = nil, fmt.Errorf("%s: %w", path, ErrFatal)
		}
	}()

	p := newParser(sess)
	p.init(path, scanner.New(path, sess.Source(path).Reader()), mode)
	return parseModuleFile(p, moduleName(path), path), nil
}

// ParseExpr parses the content of the given path as a single
// expression. Meant for tests and tooling.
func ParseExpr(sess *Session, path string) (expr ast.Expr, err error) {
	if err := sess.Add(path); err != nil {
		return nil, fmt.Errorf("cannot load %s: %w", path, err)
	}

	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(bailout); !ok {
				panic(r)
			}

			expr, err = nil, fmt.Errorf("%s: %w", path, ErrFatal)
		}
	}()

	p := newParser(sess)
	p.init(path, scanner.New(path, sess.Source(path).Reader()), 0)
	return parseExpr(p), nil
}

func moduleName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}
