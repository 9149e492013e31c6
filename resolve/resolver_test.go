package resolve

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/gongahkia/yuho-sub002/diagnostic"
	"github.com/gongahkia/yuho-sub002/parser"
	"github.com/gongahkia/yuho-sub002/source"
	"github.com/stretchr/testify/require"
)

func testResolver(files map[string]string, searchDirs ...string) (*Resolver, *parser.Session) {
	loader := source.NewMemLoader()
	for path, content := range files {
		loader.Add(path, content)
	}

	cm := source.NewCodeMap(loader)
	sess := parser.NewSession(
		diagnostic.NewDiagnoser(cm, diagnostic.Writer(io.Discard, false, false)),
		cm,
	)
	return NewResolver(sess, 0, searchDirs...), sess
}

const testDefinitions = `
struct Party {
	string name,
	int age,
}

enum Verdict {
	Guilty,
	NotGuilty
}
`

func TestResolve(t *testing.T) {
	r, sess := testResolver(map[string]string{
		"definitions.yh": testDefinitions,
		"cheating.yh": `
referencing Party, Verdict from definitions;

scope Cheating {
	Party accused;
}
`,
	})

	result, err := r.Resolve("cheating.yh")
	require.NoError(t, err)
	require.True(t, sess.IsOK())

	require.Equal(t, "cheating", result.Entry.Name)
	require.Equal(t, []string{"definitions", "cheating"}, result.Order)
	require.Len(t, result.Modules, 2)

	table := result.Tables["cheating"]
	require.NotNil(t, table)

	party, ok := table.Lookup("Party")
	require.True(t, ok)
	require.Equal(t, KindStruct, party.Kind)
	require.Equal(t, "definitions", party.Module)

	verdict, ok := table.Lookup("Verdict")
	require.True(t, ok)
	require.Equal(t, KindEnum, verdict.Kind)

	local, ok := table.Lookup("Cheating")
	require.True(t, ok)
	require.Equal(t, KindScope, local.Kind)
	require.Equal(t, "cheating", local.Module)
}

func TestResolveSharedDependency(t *testing.T) {
	r, _ := testResolver(map[string]string{
		"common.yh": `int shared := 1;`,
		"b.yh": `
referencing shared from common;
int b := shared;
`,
		"c.yh": `
referencing shared from common;
int c := shared;
`,
		"a.yh": `
referencing b from b;
referencing c from c;
int a := b + c;
`,
	})

	result, err := r.Resolve("a.yh")
	require.NoError(t, err)
	require.Equal(t, []string{"common", "b", "c", "a"}, result.Order)
	require.Len(t, result.Modules, 4)
}

func TestResolveIdempotent(t *testing.T) {
	r, sess := testResolver(map[string]string{
		"definitions.yh": testDefinitions,
		"cheating.yh": `
referencing Party, Verdict from definitions;

scope Cheating {
	Party accused;
}
`,
	})

	first, err := r.Resolve("cheating.yh")
	require.NoError(t, err)
	second, err := r.Resolve("cheating.yh")
	require.NoError(t, err)
	require.True(t, sess.IsOK())

	require.Equal(t, first.Order, second.Order)
	require.Equal(t, first.Modules, second.Modules)
	require.Equal(t, first.Tables, second.Tables)
}

func TestResolveCycle(t *testing.T) {
	r, _ := testResolver(map[string]string{
		"a.yh": `
referencing b from b;
int a := 1;
`,
		"b.yh": `
referencing a from a;
int b := 2;
`,
	})

	_, err := r.Resolve("a.yh")
	var cycle *CircularImportError
	require.ErrorAs(t, err, &cycle)
	require.Equal(t, []string{"a", "b", "a"}, cycle.Cycle)
}

func TestResolveSelfReference(t *testing.T) {
	r, _ := testResolver(map[string]string{
		"a.yh": `
referencing a from a;
int a := 1;
`,
	})

	_, err := r.Resolve("a.yh")
	var cycle *CircularImportError
	require.ErrorAs(t, err, &cycle)
	require.Equal(t, []string{"a", "a"}, cycle.Cycle)
}

func TestResolveModuleNotFound(t *testing.T) {
	r, _ := testResolver(map[string]string{
		"a.yh": `
referencing Ghost from ghost;
int a := 1;
`,
	})

	_, err := r.Resolve("a.yh")
	var notFound *ModuleNotFoundError
	require.ErrorAs(t, err, &notFound)
	require.Equal(t, "ghost", notFound.Module)
	require.Equal(t, "a", notFound.Importer)
	require.Contains(t, notFound.Tried, "ghost.yh")
}

func TestResolveSearchDirs(t *testing.T) {
	r, _ := testResolver(map[string]string{
		"statutes/cheating.yh": `
referencing Party from definitions;

Party accused;
`,
		"common/definitions.yh": testDefinitions,
	}, "common")

	result, err := r.Resolve("statutes/cheating.yh")
	require.NoError(t, err)
	require.Equal(t, []string{"definitions", "cheating"}, result.Order)
}

func TestResolveMissingSymbol(t *testing.T) {
	r, _ := testResolver(map[string]string{
		"definitions.yh": testDefinitions,
		"cheating.yh": `
referencing Party, Sentence from definitions;
`,
	})

	_, err := r.Resolve("cheating.yh")
	var missing *MissingSymbolError
	require.ErrorAs(t, err, &missing)
	require.Equal(t, "Sentence", missing.Symbol)
	require.Equal(t, "definitions", missing.Module)
	require.Equal(t, []string{"Party", "Verdict"}, missing.Available)
}

func TestResolveDuplicateExport(t *testing.T) {
	r, _ := testResolver(map[string]string{
		"one.yh": `
struct Party {
	string name,
}
`,
		"two.yh": `
enum Party {
	First,
	Second
}
`,
		"main.yh": `
referencing Party from one;
referencing Party from two;
`,
	})

	_, err := r.Resolve("main.yh")
	var dup *DuplicateExportError
	require.ErrorAs(t, err, &dup)
	require.Equal(t, "Party", dup.Symbol)
	require.Equal(t, [2]string{"one", "two"}, dup.Modules)
}

func TestResolveImportShadowsLocal(t *testing.T) {
	r, _ := testResolver(map[string]string{
		"one.yh": `
struct Party {
	string name,
}
`,
		"main.yh": `
referencing Party from one;

enum Party {
	First
}
`,
	})

	_, err := r.Resolve("main.yh")
	var dup *DuplicateExportError
	require.ErrorAs(t, err, &dup)
	require.Equal(t, "Party", dup.Symbol)
	require.Equal(t, [2]string{"main", "one"}, dup.Modules)
}

func TestResolveParseFailure(t *testing.T) {
	r, _ := testResolver(map[string]string{
		"broken.yh": `int x := "unclosed;`,
	})

	_, err := r.Resolve("broken.yh")
	require.ErrorIs(t, err, parser.ErrFatal)
}

func TestExports(t *testing.T) {
	r, _ := testResolver(map[string]string{
		"defs.yh": `
struct Party {
	string name,
}

enum Verdict {
	Guilty
}

money fine := $100;

bool func guilty(Party accused) {
	pass;
}

scope Cheating {
	int hidden := 1;
}
`,
	})

	result, err := r.Resolve("defs.yh")
	require.NoError(t, err)

	syms := Exports(result.Entry)
	require.Len(t, syms, 5)

	kinds := map[string]SymbolKind{}
	for _, sym := range syms {
		kinds[sym.Name] = sym.Kind
	}
	require.Equal(t, map[string]SymbolKind{
		"Party":    KindStruct,
		"Verdict":  KindEnum,
		"fine":     KindVariable,
		"guilty":   KindFunc,
		"Cheating": KindScope,
	}, kinds)

	// declarations nested inside the scope are not exported
	_, ok := result.Tables["defs"].Lookup("hidden")
	require.False(t, ok)
}

func TestGraphResolveOrder(t *testing.T) {
	g := NewGraph("a")
	g.Add("b", "a")
	g.Add("c", "a")
	g.Add("d", "b")
	g.Add("d", "c")

	order, err := g.Resolve()
	require.NoError(t, err)
	require.Equal(t, []string{"d", "b", "c", "a"}, order)
}

func TestGraphResolveCycle(t *testing.T) {
	g := NewGraph("a")
	g.Add("b", "a")
	g.Add("c", "b")
	g.Add("a", "c")

	_, err := g.Resolve()
	var cycle *CircularImportError
	require.ErrorAs(t, err, &cycle)
	require.Equal(t, []string{"a", "b", "c", "a"}, cycle.Cycle)
}

func TestLoadManifest(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(root, ManifestName),
		[]byte(`{"source-directories": ["common", "statutes"]}`),
		0644,
	))

	nested := filepath.Join(root, "statutes", "theft")
	require.NoError(t, os.MkdirAll(nested, 0755))
	file := filepath.Join(nested, "theft.yh")
	require.NoError(t, os.WriteFile(file, []byte("int x := 1;"), 0644))

	m, err := LoadManifest(file)
	require.NoError(t, err)
	require.NotNil(t, m)
	require.Equal(t, root, m.Root())
	require.Equal(t, []string{
		filepath.Join(root, "common"),
		filepath.Join(root, "statutes"),
	}, m.SearchDirs())
}

func TestLoadManifestMissing(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "lonely.yh")
	require.NoError(t, os.WriteFile(file, []byte("int x := 1;"), 0644))

	m, err := LoadManifest(file)
	require.NoError(t, err)
	require.Nil(t, m)
}

func TestLoadManifestBadJSON(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(root, ManifestName),
		[]byte(`{"source-directories": `),
		0644,
	))
	file := filepath.Join(root, "a.yh")
	require.NoError(t, os.WriteFile(file, []byte("int x := 1;"), 0644))

	_, err := LoadManifest(file)
	require.Error(t, err)
}
