package types

import "strings"

// Type is the semantic type of an expression or declaration.
type Type interface {
	// String returns the type the way it is written in source.
	String() string
	// Equal reports whether both types are the same type.
	Equal(Type) bool
	isType()
}

// BasicKind identifies one of the built in types.
type BasicKind byte

const (
	// Invalid marks a type that could not be determined. It spreads
	// through expressions without producing further diagnostics.
	Invalid BasicKind = iota
	// Int is a whole number.
	Int
	// Float is a decimal number.
	Float
	// Bool is TRUE or FALSE.
	Bool
	// String is a text value.
	String
	// Money is a monetary amount.
	Money
	// Date is a calendar date.
	Date
	// Duration is a span of time.
	Duration
	// Percent is a percentage.
	Percent
)

// Basic is one of the built in types.
type Basic struct {
	Kind BasicKind
	name string
}

// Typ holds the predeclared basic types indexed by kind.
var Typ = [...]*Basic{
	Invalid:  {Invalid, "invalid type"},
	Int:      {Int, "int"},
	Float:    {Float, "float"},
	Bool:     {Bool, "bool"},
	String:   {String, "string"},
	Money:    {Money, "money"},
	Date:     {Date, "date"},
	Duration: {Duration, "duration"},
	Percent:  {Percent, "percent"},
}

func (b *Basic) String() string {
	return b.name
}

func (b *Basic) Equal(other Type) bool {
	o, ok := other.(*Basic)
	return ok && b.Kind == o.Kind
}

// Field is a named struct field.
type Field struct {
	Name string
	Type Type
}

// Struct is a user defined record type. Two structs are the same type
// only if they are the same declaration, which in a flat module space
// means the same name.
type Struct struct {
	Name   string
	Fields []*Field

	fields map[string]*Field
}

// NewStruct creates a struct type. When two fields share a name the
// first one wins, the duplicate is reported elsewhere.
func NewStruct(name string, fields []*Field) *Struct {
	s := &Struct{
		Name:   name,
		Fields: fields,
		fields: make(map[string]*Field, len(fields)),
	}

	for _, f := range fields {
		if _, ok := s.fields[f.Name]; !ok {
			s.fields[f.Name] = f
		}
	}
	return s
}

// Field finds a field by name, or nil.
func (s *Struct) Field(name string) *Field {
	return s.fields[name]
}

func (s *Struct) String() string {
	return s.Name
}

func (s *Struct) Equal(other Type) bool {
	o, ok := other.(*Struct)
	return ok && s.Name == o.Name
}

// Enum is a user defined type with a closed set of variants.
type Enum struct {
	Name     string
	Variants []string

	variants map[string]struct{}
}

// NewEnum creates an enum type.
func NewEnum(name string, variants []string) *Enum {
	e := &Enum{
		Name:     name,
		Variants: variants,
		variants: make(map[string]struct{}, len(variants)),
	}

	for _, v := range variants {
		e.variants[v] = struct{}{}
	}
	return e
}

// HasVariant reports whether the enum declares the variant.
func (e *Enum) HasVariant(name string) bool {
	_, ok := e.variants[name]
	return ok
}

func (e *Enum) String() string {
	return e.Name
}

func (e *Enum) Equal(other Type) bool {
	o, ok := other.(*Enum)
	return ok && e.Name == o.Name
}

// Func is the type of a function.
type Func struct {
	Name   string
	Params []Type
	// Return is nil for functions declared without a return type.
	Return Type
}

func (f *Func) String() string {
	params := make([]string, len(f.Params))
	for i, p := range f.Params {
		params[i] = p.String()
	}

	var sb strings.Builder
	if f.Return != nil {
		sb.WriteString(f.Return.String())
		sb.WriteRune(' ')
	}
	sb.WriteString("func(")
	sb.WriteString(strings.Join(params, ", "))
	sb.WriteRune(')')
	return sb.String()
}

func (f *Func) Equal(other Type) bool {
	o, ok := other.(*Func)
	if !ok || len(f.Params) != len(o.Params) {
		return false
	}

	for i := range f.Params {
		if !f.Params[i].Equal(o.Params[i]) {
			return false
		}
	}

	if f.Return == nil || o.Return == nil {
		return f.Return == o.Return
	}
	return f.Return.Equal(o.Return)
}

// Union is a type admitting values of any of its alternatives.
type Union struct {
	Alts []Type
}

// NewUnion builds a union out of the alternatives, flattening nested
// unions and dropping duplicates. A union of one collapses to the
// alternative itself.
func NewUnion(alts ...Type) Type {
	var flat []Type
	for _, alt := range alts {
		if u, ok := alt.(*Union); ok {
			flat = append(flat, u.Alts...)
		} else {
			flat = append(flat, alt)
		}
	}

	var uniq []Type
	for _, alt := range flat {
		var seen bool
		for _, u := range uniq {
			if u.Equal(alt) {
				seen = true
				break
			}
		}
		if !seen {
			uniq = append(uniq, alt)
		}
	}

	if len(uniq) == 1 {
		return uniq[0]
	}
	return &Union{Alts: uniq}
}

// Has reports whether the union admits the type as one of its
// alternatives.
func (u *Union) Has(t Type) bool {
	for _, alt := range u.Alts {
		if alt.Equal(t) {
			return true
		}
	}
	return false
}

func (u *Union) String() string {
	alts := make([]string, len(u.Alts))
	for i, alt := range u.Alts {
		alts[i] = alt.String()
	}
	return strings.Join(alts, " | ")
}

// Equal for unions ignores the order alternatives were written in.
func (u *Union) Equal(other Type) bool {
	o, ok := other.(*Union)
	if !ok || len(u.Alts) != len(o.Alts) {
		return false
	}

	for _, alt := range u.Alts {
		if !o.Has(alt) {
			return false
		}
	}
	return true
}

func (*Basic) isType()  {}
func (*Struct) isType() {}
func (*Enum) isType()   {}
func (*Func) isType()   {}
func (*Union) isType()  {}
