package diagnostic

import (
	"fmt"
	"strings"

	"github.com/gongahkia/yuho-sub002/token"
)

// UnexpectedEOF returns a diagnostic message saying that EOF was not expected,
// but one of the given token types.
func UnexpectedEOF(expecting ...token.Type) Msg {
	return &parseError{&unexpectedEOF{typeList(expecting)}}
}

type parseError struct {
	err Msg
}

func (e *parseError) String() string {
	return "I ran into something unexpected parsing your code: " + e.err.String()
}

type unexpectedEOF struct {
	expecting typeList
}

func (e *unexpectedEOF) String() string {
	return fmt.Sprintf("Unexpected end of file, I was expecting %s instead", e.expecting)
}

// Expecting returns a diagnostic message saying that the found token was not
// what the parser was expecting.
func Expecting(found token.Type, expecting ...token.Type) Msg {
	return &parseError{
		&errExpecting{
			found,
			typeList(expecting),
		},
	}
}

type errExpecting struct {
	found     token.Type
	expecting typeList
}

func (e *errExpecting) String() string {
	return fmt.Sprintf("I found %s, but I was expecting %s instead", e.found, e.expecting)
}

// ParseError returns a custom parse diagnostic message.
func ParseError(msg string) Msg {
	return &parseError{&msgErr{msg}}
}

type msgErr struct {
	msg string
}

func (m *msgErr) String() string {
	return m.msg
}

type typeList []token.Type

func (tl typeList) String() string {
	if len(tl) == 0 {
		return "nothing"
	}

	if len(tl) == 1 {
		return fmt.Sprint(tl[0])
	}

	var types = make([]string, len(tl)-1)
	for i, t := range tl[:len(tl)-1] {
		types[i] = fmt.Sprint(t)
	}

	return fmt.Sprintf(
		"%s or %s",
		strings.Join(types, ", "),
		tl[len(tl)-1],
	)
}

// TypeMismatch returns a diagnostic message saying that a value of one type
// appeared where another type was required.
func TypeMismatch(expected, found string) Msg {
	return &typeMismatch{expected, found}
}

type typeMismatch struct {
	expected string
	found    string
}

func (e *typeMismatch) String() string {
	return fmt.Sprintf("I found a value of type %s, but I needed %s here", e.found, e.expected)
}

// UndefinedName returns a diagnostic message saying that a name is not
// defined anywhere visible.
func UndefinedName(name string) Msg {
	return &undefinedName{name}
}

type undefinedName struct {
	name string
}

func (e *undefinedName) String() string {
	return fmt.Sprintf("I cannot find anything named %q", e.name)
}

// DuplicateDeclaration returns a diagnostic message saying that a name was
// declared twice, pointing at the previous declaration.
func DuplicateDeclaration(name string, prev *token.Position) Msg {
	return &duplicateDeclaration{name, prev}
}

type duplicateDeclaration struct {
	name string
	prev *token.Position
}

func (e *duplicateDeclaration) String() string {
	if e.prev == nil {
		return fmt.Sprintf("%q is declared more than once", e.name)
	}
	return fmt.Sprintf(
		"%q is declared more than once, the first declaration is at line %d, column %d",
		e.name, e.prev.Line, e.prev.Column,
	)
}

// NotAType returns a diagnostic message saying that a name used as a type
// names a value instead.
func NotAType(name string) Msg {
	return &notAType{name}
}

type notAType struct {
	name string
}

func (e *notAType) String() string {
	return fmt.Sprintf("%q is not a type", e.name)
}

// UnknownField returns a diagnostic message saying that a struct has no such
// field.
func UnknownField(typ, field string) Msg {
	return &unknownField{typ, field}
}

type unknownField struct {
	typ   string
	field string
}

func (e *unknownField) String() string {
	return fmt.Sprintf("%s has no field named %q", e.typ, e.field)
}

// NotAStruct returns a diagnostic message saying that field access or a
// struct literal was used on something that is not a struct.
func NotAStruct(typ string) Msg {
	return &notAStruct{typ}
}

type notAStruct struct {
	typ string
}

func (e *notAStruct) String() string {
	return fmt.Sprintf("%s is not a struct, so it has no fields", e.typ)
}

// NotCallable returns a diagnostic message saying that something that is not
// a function was called.
func NotCallable(name string) Msg {
	return &notCallable{name}
}

type notCallable struct {
	name string
}

func (e *notCallable) String() string {
	return fmt.Sprintf("%q is not a function, I cannot call it", e.name)
}

// WrongArgCount returns a diagnostic message saying that a function was
// called with the wrong number of arguments.
func WrongArgCount(name string, want, got int) Msg {
	return &wrongArgCount{name, want, got}
}

type wrongArgCount struct {
	name      string
	want, got int
}

func (e *wrongArgCount) String() string {
	return fmt.Sprintf("%q takes %d arguments, but I found %d", e.name, e.want, e.got)
}

// InvalidOperands returns a diagnostic message saying that an operator was
// applied to operands it does not accept.
func InvalidOperands(op, lhs, rhs string) Msg {
	return &invalidOperands{op, lhs, rhs}
}

type invalidOperands struct {
	op       string
	lhs, rhs string
}

func (e *invalidOperands) String() string {
	return fmt.Sprintf("I cannot apply %q to values of type %s and %s", e.op, e.lhs, e.rhs)
}

// InvalidOperand returns a diagnostic message saying that an unary operator
// was applied to an operand it does not accept.
func InvalidOperand(op, typ string) Msg {
	return &invalidOperand{op, typ}
}

type invalidOperand struct {
	op  string
	typ string
}

func (e *invalidOperand) String() string {
	return fmt.Sprintf("I cannot apply %q to a value of type %s", e.op, e.typ)
}

// MissingFields returns a diagnostic message saying that a struct literal
// leaves some fields without a value.
func MissingFields(typ string, fields []string) Msg {
	return &missingFields{typ, fields}
}

type missingFields struct {
	typ    string
	fields []string
}

func (e *missingFields) String() string {
	return fmt.Sprintf(
		"this %s literal is missing a value for %s",
		e.typ,
		strings.Join(e.fields, ", "),
	)
}

// Inexhaustive returns a diagnostic message saying that a match does not
// cover all the possible values of its scrutinee.
func Inexhaustive(missing []string) Msg {
	return &inexhaustive{missing}
}

type inexhaustive struct {
	missing []string
}

func (e *inexhaustive) String() string {
	if len(e.missing) == 0 {
		return "this match does not cover all possible values, consider adding a wildcard case"
	}
	return fmt.Sprintf(
		"this match does not cover all possible values, it is missing %s",
		strings.Join(e.missing, ", "),
	)
}

// UnreachableArm returns a diagnostic message saying that a case arm can
// never match because of an earlier wildcard.
func UnreachableArm() Msg {
	return &unreachableArm{}
}

type unreachableArm struct{}

func (e *unreachableArm) String() string {
	return "this case can never match, an earlier wildcard case already matches everything"
}
