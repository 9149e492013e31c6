package types

import (
	"testing"

	"github.com/gongahkia/yuho-sub002/ast"
	"github.com/gongahkia/yuho-sub002/token"
	"github.com/stretchr/testify/require"
)

func typeName(name string) *ast.NamedType {
	return &ast.NamedType{Name: ast.NewIdent(name, &token.Position{})}
}

func TestBasicEqual(t *testing.T) {
	require.True(t, Typ[Int].Equal(Typ[Int]))
	require.False(t, Typ[Int].Equal(Typ[Float]))
	require.False(t, Typ[Money].Equal(NewStruct("money", nil)))
}

func TestStructField(t *testing.T) {
	party := NewStruct("Party", []*Field{
		{"name", Typ[String]},
		{"age", Typ[Int]},
	})

	require.Equal(t, "Party", party.String())
	require.Equal(t, Typ[Int], party.Field("age").Type)
	require.Nil(t, party.Field("height"))

	require.True(t, party.Equal(NewStruct("Party", nil)))
	require.False(t, party.Equal(NewStruct("Witness", nil)))
}

func TestEnumVariants(t *testing.T) {
	verdict := NewEnum("Verdict", []string{"Guilty", "NotGuilty"})
	require.True(t, verdict.HasVariant("Guilty"))
	require.False(t, verdict.HasVariant("Hung"))
	require.True(t, verdict.Equal(NewEnum("Verdict", nil)))
}

func TestFuncEqual(t *testing.T) {
	a := &Func{Name: "a", Params: []Type{Typ[Int]}, Return: Typ[Bool]}
	b := &Func{Name: "b", Params: []Type{Typ[Int]}, Return: Typ[Bool]}
	c := &Func{Name: "c", Params: []Type{Typ[Int]}}

	require.True(t, a.Equal(b), "names do not matter, shapes do")
	require.False(t, a.Equal(c))
	require.Equal(t, "bool func(int)", a.String())
	require.Equal(t, "func(int)", c.String())
}

func TestNewUnion(t *testing.T) {
	u := NewUnion(Typ[Bool], Typ[String])
	require.Equal(t, "bool | string", u.String())

	// nested unions flatten, duplicates collapse
	flat := NewUnion(u, Typ[Bool], Typ[Int])
	require.Equal(t, "bool | string | int", flat.String())

	// a union of one is just the type
	require.Equal(t, Type(Typ[Bool]), NewUnion(Typ[Bool], Typ[Bool]))
}

func TestUnionEqualIgnoresOrder(t *testing.T) {
	a := NewUnion(Typ[Bool], Typ[String])
	b := NewUnion(Typ[String], Typ[Bool])
	c := NewUnion(Typ[String], Typ[Int])

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
}

func TestConvert(t *testing.T) {
	party := NewStruct("Party", nil)
	lookup := func(name string) Type {
		if name == "Party" {
			return party
		}
		return nil
	}

	typ := Convert(typeName("money"), lookup)
	require.Equal(t, Type(Typ[Money]), typ)

	typ = Convert(typeName("Party"), lookup)
	require.Equal(t, Type(party), typ)

	typ = Convert(typeName("Unknown"), lookup)
	require.True(t, IsInvalid(typ))

	typ = Convert(&ast.UnionType{Types: []ast.Type{
		typeName("bool"),
		typeName("string"),
	}}, lookup)
	require.Equal(t, "bool | string", typ.String())
}

func TestAssignableTo(t *testing.T) {
	union := NewUnion(Typ[Bool], Typ[String])

	cases := []struct {
		value, target Type
		ok            bool
	}{
		{Typ[Int], Typ[Int], true},
		{Typ[Int], Typ[Float], true},
		{Typ[Float], Typ[Int], false},
		{Typ[Money], Typ[Float], false},
		{Typ[Bool], union, true},
		// int widens to float, but the union has no float
		{Typ[Int], union, false},
		{union, union, true},
		{Typ[Invalid], Typ[Date], true},
		{Typ[Date], Typ[Invalid], true},
	}

	for _, c := range cases {
		require.Equal(t, c.ok, AssignableTo(c.value, c.target),
			"%s assignable to %s", c.value, c.target)
	}
}

func TestIsNumericAndOrdered(t *testing.T) {
	require.True(t, IsNumeric(Typ[Money]))
	require.True(t, IsNumeric(Typ[Duration]))
	require.False(t, IsNumeric(Typ[Date]))
	require.False(t, IsNumeric(NewStruct("Party", nil)))

	require.True(t, IsOrdered(Typ[Date]))
	require.True(t, IsOrdered(Typ[String]))
	require.False(t, IsOrdered(Typ[Bool]))
}
