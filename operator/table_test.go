package operator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuiltinTable(t *testing.T) {
	require := require.New(t)
	table := BuiltinTable()

	for _, op := range builtinOps {
		info := table.Lookup(op.name)
		require.NotNil(info, op.name)
		require.Equal(op.prec, info.Precedence, op.name)
		require.Equal(op.assoc, info.Associativity, op.name)
	}

	require.Nil(table.Lookup("++"))
	require.Nil(table.Lookup("="))
}

func TestPrecedenceOrder(t *testing.T) {
	require := require.New(t)
	table := BuiltinTable()

	// arithmetic binds tighter than comparison, comparison tighter than
	// equality, equality tighter than boolean connectives
	require.True(table.Lookup("*").Precedence > table.Lookup("+").Precedence)
	require.True(table.Lookup("+").Precedence > table.Lookup("<").Precedence)
	require.True(table.Lookup("<").Precedence > table.Lookup("==").Precedence)
	require.True(table.Lookup("==").Precedence > table.Lookup("&&").Precedence)
	require.True(table.Lookup("&&").Precedence > table.Lookup("||").Precedence)
}
