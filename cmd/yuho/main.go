package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/gongahkia/yuho-sub002/ast"
	"github.com/gongahkia/yuho-sub002/check"
	"github.com/gongahkia/yuho-sub002/diagnostic"
	"github.com/gongahkia/yuho-sub002/parser"
	"github.com/gongahkia/yuho-sub002/resolve"
	"github.com/gongahkia/yuho-sub002/scanner"
	"github.com/gongahkia/yuho-sub002/source"
	"github.com/gongahkia/yuho-sub002/token"
)

var (
	noColor    = flag.Bool("no-color", false, "disable colored output")
	noWarnings = flag.Bool("no-warnings", false, "hide warnings")
)

const helpText = `yuho - tools for working with yuho statute modules

usage:
  yuho check <file.yh>   parse and type check a module and everything it references
  yuho parse <file.yh>   print the module formatted back from its syntax tree
  yuho scan <file.yh>    print the token stream of a file

check looks for a yuho.json manifest in the parent directories of the file to
find the source directories referenced modules are searched in.`

func main() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, helpText)
	}
	flag.Parse()

	args := flag.Args()
	if len(args) != 2 {
		flag.Usage()
		os.Exit(2)
	}

	var err error
	switch args[0] {
	case "check":
		err = runCheck(args[1])
	case "parse":
		err = runParse(args[1])
	case "scan":
		err = runScan(args[1])
	default:
		flag.Usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}

func newSession(root string) *parser.Session {
	cm := source.NewCodeMap(source.NewFsLoader(root))
	return parser.NewSession(
		diagnostic.NewDiagnoser(cm, diagnostic.Stderr(!*noWarnings, !*noColor)),
		cm,
	)
}

func runCheck(path string) error {
	manifest, err := resolve.LoadManifest(path)
	if err != nil {
		return err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	var searchDirs []string
	root := filepath.Dir(abs)
	if manifest != nil {
		root = manifest.Root()
		searchDirs = manifest.SearchDirs()
	}

	sess := newSession(root)
	resolver := resolve.NewResolver(sess, parser.Recover, searchDirs...)

	result, err := resolver.Resolve(abs)
	if err != nil {
		sess.Emit()
		return err
	}

	ok := check.Check(sess, result)
	if err := sess.Emit(); err != nil {
		return err
	}

	if !ok {
		return fmt.Errorf("%s has errors", path)
	}

	fmt.Println(color.GreenString("ok"), fmt.Sprintf("%s (%d modules)", path, len(result.Order)))
	return nil
}

func runParse(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	sess := newSession(filepath.Dir(abs))
	mod, err := parser.ParseFile(sess, abs, 0)
	if err != nil {
		sess.Emit()
		return err
	}

	return ast.Fprint(os.Stdout, mod)
}

func runScan(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	s := scanner.New(path, f)
	for {
		t := s.Next()
		if t == nil || t.Type == token.EOF {
			return nil
		}

		fmt.Printf(
			"LINE: %4d POS: %4d TYPE: %-12s %s\n",
			t.Line,
			t.Column,
			t.Type,
			t.Value,
		)

		if t.Type == token.Error {
			return fmt.Errorf("%s: scanning stopped", path)
		}
	}
}
