package operator

// Table is the implementation of an operator table. It contains the
// operators and their info. The language has a fixed operator set, so
// the table is immutable.
type Table struct {
	ops map[string]*OpInfo
}

// BuiltinTable creates a new operator table with all the builtin
// operators loaded.
func BuiltinTable() *Table {
	ops := make(map[string]*OpInfo, len(builtinOps))
	for _, op := range builtinOps {
		ops[op.name] = &OpInfo{op.assoc, op.prec}
	}
	return &Table{ops}
}

var builtinOps = []struct {
	name  string
	assoc Associativity
	prec  uint
}{
	{"*", Left, 7},
	{"/", Left, 7},
	{"%", Left, 7},
	{"+", Left, 6},
	{"-", Left, 6},
	{"<", Left, 5},
	{">", Left, 5},
	{"<=", Left, 5},
	{">=", Left, 5},
	{"==", Left, 4},
	{"!=", Left, 4},
	{"&&", Left, 3},
	{"||", Left, 2},
}

// Lookup finds an operator and returns its info. Will return nil if the
// operator does not exist.
func (t *Table) Lookup(name string) *OpInfo {
	return t.ops[name]
}

// OpInfo contains the info about an operator.
type OpInfo struct {
	// Associativity of the operator.
	Associativity Associativity
	// Precedence of the operator.
	Precedence uint
}

// Associativity is the type of associativity of the operator.
type Associativity byte

const (
	// Left associativity.
	Left Associativity = iota
	// Right associativity.
	Right
)
