package token

// Token is the smallest part in which the code can be divided and still
// makes sense on its own.
type Token struct {
	Type  Type
	Value string
	*Position
}

// Pos is an absolute byte offset in a source file.
type Pos int

// NoPos means the position is not set.
const NoPos Pos = -1

// Position represents the position of the token in a file.
type Position struct {
	Source string
	Offset Pos
	Line   int
	Column int
}

// New creates a new token of type t at the given offset, line and column.
func New(t Type, source string, offset, column, line int, val string) *Token {
	return &Token{
		Type:  t,
		Value: val,
		Position: &Position{
			Source: source,
			Offset: Pos(offset),
			Line:   line,
			Column: column,
		},
	}
}

// Type is the type of a token.
type Type uint

const (
	// Error is an error occurred while scanning, value is the text of the error.
	Error Type = iota
	// EOF is the end of the input.
	EOF
	// Comment is a user comment.
	Comment
	// Identifier is a user defined name (variables, structs, fields, ...).
	Identifier
	// Int is an integer number.
	Int
	// Float is a floating point number.
	Float
	// String is a quoted string literal.
	String
	// Money is a money literal, e.g. "$1,000.50".
	Money
	// Percent is a percentage literal, e.g. "25%".
	Percent
	// Date is a date literal in ISO 8601 form, e.g. "2024-01-31".
	Date
	// Duration is a duration literal, e.g. "5 days" or "1 year, 2 months".
	Duration
	// Op is a symbolic operator, e.g. "+", "&&" or "==".
	Op
	// Assign is the assignment marker ":=".
	Assign
	// LeftParen is the left parenthesis "(".
	LeftParen
	// RightParen is the right parenthesis ")".
	RightParen
	// LeftBracket is the left bracket "[".
	LeftBracket
	// RightBracket is the right bracket "]".
	RightBracket
	// LeftBrace is the left brace "{".
	LeftBrace
	// RightBrace is the right brace "}".
	RightBrace
	// Comma is the comma character ",".
	Comma
	// Dot is the dot character ".".
	Dot
	// Colon is the colon character ":".
	Colon
	// Semicolon is the statement terminator ";".
	Semicolon
	// Pipe is the union type separator "|".
	Pipe
	// Arrow is the return type marker "->".
	Arrow

	// Keywords

	Scope
	Struct
	Enum
	Func
	Match
	Case
	Consequence
	Referencing
	From
	Where
	Pass
	True
	False
	// TypeName is a builtin type keyword; the value carries which one
	// ("int", "money", ...).
	TypeName
)

var typeStrings = map[Type]string{
	Error:        "error",
	EOF:          "end of file",
	Comment:      "comment",
	Identifier:   "identifier",
	Int:          "integer",
	Float:        "float",
	String:       "string",
	Money:        "money literal",
	Percent:      "percent literal",
	Date:         "date literal",
	Duration:     "duration literal",
	Op:           "operator",
	Assign:       `":="`,
	LeftParen:    `"("`,
	RightParen:   `")"`,
	LeftBracket:  `"["`,
	RightBracket: `"]"`,
	LeftBrace:    `"{"`,
	RightBrace:   `"}"`,
	Comma:        `","`,
	Dot:          `"."`,
	Colon:        `":"`,
	Semicolon:    `";"`,
	Pipe:         `"|"`,
	Arrow:        `"->"`,
	Scope:        `"scope"`,
	Struct:       `"struct"`,
	Enum:         `"enum"`,
	Func:         `"func"`,
	Match:        `"match"`,
	Case:         `"case"`,
	Consequence:  `"consequence"`,
	Referencing:  `"referencing"`,
	From:         `"from"`,
	Where:        `"where"`,
	Pass:         `"pass"`,
	True:         `"TRUE"`,
	False:        `"FALSE"`,
	TypeName:     "type name",
}

func (t Type) String() string {
	if s, ok := typeStrings[t]; ok {
		return s
	}
	return "unknown"
}
