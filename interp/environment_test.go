package interp

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mamba-lang/go-mamba/errors"
)

func TestDeclareAndLookup(t *testing.T) {
	env := NewEnvironment(nil)

	require.Nil(t, env.Declare("x", SymbolVariable, &Integer{Value: 1}))

	val, ok := env.Lookup("x")
	require.True(t, ok)
	require.Equal(t, int64(1), val.(*Integer).Value)

	_, ok = env.Lookup("y")
	require.False(t, ok)
}

func TestDuplicateDeclarationSameScope(t *testing.T) {
	env := NewEnvironment(nil)
	require.Nil(t, env.Declare("f", SymbolFunction, &Function{Name: "f"}))

	err := env.Declare("f", SymbolFunction, &Function{Name: "f"})
	require.NotNil(t, err)
	require.Equal(t, errors.DuplicateSymbol, err.Kind)
	require.Equal(t, "Cannot redeclare function 'f'", err.Message)
}

func TestShadowingVariablesIsAllowed(t *testing.T) {
	root := NewEnvironment(nil)
	require.Nil(t, root.Declare("x", SymbolVariable, &Integer{Value: 1}))

	child := root.Child()
	require.Nil(t, child.Declare("x", SymbolVariable, &Integer{Value: 2}))

	val, ok := child.Lookup("x")
	require.True(t, ok)
	require.Equal(t, int64(2), val.(*Integer).Value)

	// The outer binding is untouched.
	val, ok = root.Lookup("x")
	require.True(t, ok)
	require.Equal(t, int64(1), val.(*Integer).Value)
}

func TestShadowingBuiltinFails(t *testing.T) {
	root := NewEnvironment(nil)
	declareBuiltins(root)

	child := root.Child()
	err := child.Declare("int", SymbolVariable, &Integer{Value: 3})
	require.NotNil(t, err)
	require.Equal(t, errors.DuplicateSymbol, err.Kind)
	require.Equal(t, "Cannot redeclare builtin 'int'", err.Message)
}

func TestAssignWalksOutward(t *testing.T) {
	root := NewEnvironment(nil)
	require.Nil(t, root.Declare("count", SymbolVariable, &Integer{Value: 0}))

	child := root.Child()
	require.Nil(t, child.Assign("count", &Integer{Value: 5}))

	val, ok := root.Lookup("count")
	require.True(t, ok)
	require.Equal(t, int64(5), val.(*Integer).Value)
}

func TestAssignDeclaresLocallyWhenUnbound(t *testing.T) {
	root := NewEnvironment(nil)
	child := root.Child()

	require.Nil(t, child.Assign("local", &Integer{Value: 7}))

	_, ok := root.Lookup("local")
	require.False(t, ok)
	_, ok = child.Lookup("local")
	require.True(t, ok)
}

func TestAssignToBuiltinFails(t *testing.T) {
	root := NewEnvironment(nil)
	declareBuiltins(root)

	err := root.Child().Assign("str", &Integer{Value: 1})
	require.NotNil(t, err)
	require.Equal(t, errors.DuplicateSymbol, err.Kind)
	require.Equal(t, "Cannot redeclare builtin 'str'", err.Message)
}

func TestKindOf(t *testing.T) {
	root := NewEnvironment(nil)
	declareBuiltins(root)
	require.Nil(t, root.Declare("x", SymbolVariable, nilValue))

	kind, ok := root.KindOf("int")
	require.True(t, ok)
	require.Equal(t, SymbolBuiltin, kind)

	kind, ok = root.KindOf("x")
	require.True(t, ok)
	require.Equal(t, SymbolVariable, kind)

	_, ok = root.KindOf("missing")
	require.False(t, ok)
}
